package dto

// 加入大厅的请求，code 是一次性加入码
type JoinRequest struct {
	Code       string `json:"code"`
	PlayerName string `json:"player_name"`
}

type VotePlayerRequest struct {
	VoteFor int `json:"vote_for"`
}

type VoteYesNoRequest struct {
	Vote bool `json:"vote"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
