package game

import (
	"fmt"

	"go.uber.org/zap"
)

// 服务器状态
const (
	SERVER_STARTING_UP = "starting_up"
	SERVER_WAITING     = "waiting_for_players"
	SERVER_IN_PROGRESS = "in_progress"
)

// 投票类型
const (
	VOTE_PLAYER = "player"
	VOTE_YES_NO = "yes_no"
)

// Vote 是单个玩家在当前投票轮中投出的一票
// Kind 为 player 时 TargetID 有效，为 yes_no 时 Approve 有效
type Vote struct {
	Kind     string `json:"kind"`
	TargetID int    `json:"target_id,omitempty"`
	Approve  bool   `json:"approve,omitempty"`
}

// State 是唯一的游戏状态聚合，整个进程只有一份
// 所有变更操作都假定调用方已经串行化（见 service.GameService）
type State struct {
	TurnStatus string
	TurnNumber int

	Players    map[int]*Player
	Hands      map[int][]*Card
	Structures map[int][]*Card

	ResourceDeck      []*Card
	MinorDisasterDeck []*Card
	MajorDisasterDeck []*Card
	EventDeck         []*Card

	// 弃牌堆：结算过的事件牌、翻开过的灾难牌
	// 以及被替换掉的手牌都会落到这里
	// 保证每张牌任意时刻都恰好属于一个容器
	ResourceDiscard []*Card
	EventDiscard    []*Card
	DisasterDiscard []*Card

	// 只允许追加的公开日志，插入顺序即时间顺序
	GameLog []string

	// 当前翻开的事件牌和灾难牌，各至多一张
	RevealedEvent    *Card
	RevealedDisaster *Card

	// 投票人 ID 到所投票的映射，每轮投票开始时清空
	Votes map[int]Vote

	serverStatus string
	lobbySize    int
	playerCodes  map[string]struct{}
	rolePool     RolePool
	started      bool
}

// NewState 创建初始聚合
// codes 是一次性加入码的池，每个码只能被消耗一次
func NewState(codes []string) *State {
	codeSet := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		codeSet[c] = struct{}{}
	}

	return &State{
		TurnStatus:   STATUS_LOBBY,
		Players:      make(map[int]*Player),
		Hands:        make(map[int][]*Card),
		Structures:   make(map[int][]*Card),
		GameLog:      make([]string, 0),
		Votes:        make(map[int]Vote),
		serverStatus: SERVER_STARTING_UP,
		playerCodes:  codeSet,
		rolePool:     NewRolePool(),
	}
}

// OpenLobby 设置期望的玩家人数并开放大厅
// 只应在任何玩家加入之前调用一次
func (s *State) OpenLobby(size int) {
	s.lobbySize = size
	s.serverStatus = SERVER_WAITING
}

// ServerStatus 返回当前的服务器状态
func (s *State) ServerStatus() string {
	return s.serverStatus
}

// LobbySize 返回大厅开放时设置的期望人数
func (s *State) LobbySize() int {
	return s.lobbySize
}

// ConsumePlayerCode 尝试消耗一个一次性加入码
// 码存在时移除并返回 true，否则返回 false 且无任何变更
func (s *State) ConsumePlayerCode(code string) bool {
	if _, ok := s.playerCodes[code]; !ok {
		return false
	}

	delete(s.playerCodes, code)

	return true
}

// AddPlayer 注册玩家并初始化其空手牌和空建筑堆
// 注册人数达到大厅人数时同步触发开局
func (s *State) AddPlayer(p *Player) error {
	s.Players[p.ID] = p
	s.Hands[p.ID] = make([]*Card, 0)
	s.Structures[p.ID] = make([]*Card, 0)

	if len(s.Players) == s.lobbySize {
		return s.startGame()
	}

	return nil
}

// IPToPlayerID 把远端地址映射到从该地址加入的玩家
func (s *State) IPToPlayerID(addr string) (int, bool) {
	for _, p := range s.Players {
		if p.Addr == addr {
			return p.ID, true
		}
	}

	return 0, false
}

// startGame 开局：分配身份、构建四个牌堆、给每人发 5 张资源牌，
// 然后进入第一回合。大厅满员后只会执行一次，不可重入
func (s *State) startGame() error {
	if s.started {
		zap.L().Warn("忽略重复的开局调用")
		return nil
	}
	s.started = true

	for _, p := range s.Players {
		p.Role = s.rolePool.Allocate(s.Players)
	}

	s.ResourceDeck = BuildResourceDeck()
	s.MinorDisasterDeck = BuildMinorDisasterDeck()
	s.MajorDisasterDeck = BuildMajorDisasterDeck()
	s.EventDeck = BuildEventDeck(len(s.Players))

	// 每人从资源牌堆顶拿 5 张作为起始手牌
	// 这一步就是第一回合的抽牌阶段，所以开局直接进入事件揭示
	for id := range s.Players {
		n := len(s.ResourceDeck)
		s.Hands[id] = append([]*Card(nil), s.ResourceDeck[n-5:]...)
		s.ResourceDeck = s.ResourceDeck[:n-5]
	}

	s.serverStatus = SERVER_IN_PROGRESS

	zap.L().Info(
		"大厅满员，游戏开始",
		zap.Int("player_count", len(s.Players)),
	)

	return s.eventRevealPhase()
}

// DrawCards 从资源牌堆顶抽至多 count 张牌，作为该玩家的新手牌
// 原有手牌整体移入资源弃牌堆（弃旧换新语义）
// 牌堆不足时抽到多少算多少，绝不报错
func (s *State) DrawCards(count, playerID int) {
	if _, ok := s.Players[playerID]; !ok {
		// 内部调用传入未知玩家属于编程错误
		panic(fmt.Sprintf("DrawCards: 未知的玩家 ID %d", playerID))
	}

	if remaining := len(s.ResourceDeck); count > remaining {
		count = remaining
	}

	s.ResourceDiscard = append(s.ResourceDiscard, s.Hands[playerID]...)

	n := len(s.ResourceDeck)
	s.Hands[playerID] = append([]*Card(nil), s.ResourceDeck[n-count:]...)
	s.ResourceDeck = s.ResourceDeck[:n-count]
}

// dealCards 从资源牌堆顶给玩家追加 count 张牌，不替换原有手牌
// 事件效果发的"额外"牌走这里
func (s *State) dealCards(count, playerID int) {
	for x := 0; x < count; x++ {
		card := popCard(&s.ResourceDeck)
		if card == nil {
			return
		}

		s.Hands[playerID] = append(s.Hands[playerID], card)
	}
}

// Log 向公开日志追加一条记录
func (s *State) Log(msg string) {
	s.GameLog = append(s.GameLog, msg)
}

// aliveCount 返回存活玩家数
func (s *State) aliveCount() int {
	count := 0
	for _, p := range s.Players {
		if p.Alive {
			count++
		}
	}

	return count
}

// structureCount 统计玩家建筑堆中指定内部名称的牌数
func (s *State) structureCount(internalName string, playerID int) int {
	total := 0
	for _, card := range s.Structures[playerID] {
		if card.InternalName == internalName {
			total++
		}
	}

	return total
}

// canVote 校验当前回合是否在等待指定类型的投票，以及投票人资格
// 回合不在对应的等待状态、投票人未注册或已出局时一律拒绝
// 这保证了选票只会出现在它所属的投票轮里
func (s *State) canVote(voterID int, kind string) bool {
	switch kind {
	case VOTE_PLAYER:
		if s.TurnStatus != STATUS_VOTING_PLAYER && s.TurnStatus != STATUS_GIVE_CARD_FOREIGN_AID {
			return false
		}
	case VOTE_YES_NO:
		if s.TurnStatus != STATUS_VOTING_YES_NO {
			return false
		}
	}

	p, ok := s.Players[voterID]

	return ok && p.Alive
}

// SubmitVoteForPlayer 记录一张指向目标玩家的票
// 以下情况拒绝并不做任何变更：当前回合不在等待指向玩家的投票、
// 投票人未注册或已出局、投票人已投过票、
// 目标玩家本轮已经被其他票指向过
// 记录成功后如果本轮投票已齐，同步触发结算
func (s *State) SubmitVoteForPlayer(voterID, targetID int) (bool, error) {
	if !s.canVote(voterID, VOTE_PLAYER) {
		return false, nil
	}

	if _, ok := s.Votes[voterID]; ok {
		return false, nil
	}

	for _, v := range s.Votes {
		if v.Kind == VOTE_PLAYER && v.TargetID == targetID {
			return false, nil
		}
	}

	s.Votes[voterID] = Vote{Kind: VOTE_PLAYER, TargetID: targetID}

	return true, s.resolveVotesIfComplete()
}

// SubmitVoteYesNo 记录一张赞成/反对票
// 当前回合不在等待表决、投票人未注册或已出局、
// 或投票人已投过票时拒绝
func (s *State) SubmitVoteYesNo(voterID int, approve bool) (bool, error) {
	if !s.canVote(voterID, VOTE_YES_NO) {
		return false, nil
	}

	if _, ok := s.Votes[voterID]; ok {
		return false, nil
	}

	s.Votes[voterID] = Vote{Kind: VOTE_YES_NO, Approve: approve}

	return true, s.resolveVotesIfComplete()
}
