package game

// ViewState 是某个观察者视角下的主观游戏视图
// 牌堆和弃牌堆对任何观察者都只暴露张数，从不暴露内容和顺序
type ViewState struct {
	TurnStatus string `json:"turn_status"`
	TurnNumber int    `json:"turn_number"`

	Players     map[int]*Player `json:"players"`
	PlayerHands map[int][]*Card `json:"player_hands"`
	Structures  map[int][]*Card `json:"structures"`

	ResourceDeckSize      int `json:"resource_deck_size"`
	MinorDisasterDeckSize int `json:"minor_disaster_deck_size"`
	MajorDisasterDeckSize int `json:"major_disaster_deck_size"`
	EventDeckSize         int `json:"event_deck_size"`

	ResourceDiscardSize int `json:"resource_discard_size"`
	EventDiscardSize    int `json:"event_discard_size"`
	DisasterDiscardSize int `json:"disaster_discard_size"`

	Log []string `json:"log"`

	RevealedEvent    *Card `json:"revealed_event,omitempty"`
	RevealedDisaster *Card `json:"revealed_disaster,omitempty"`

	Votes map[int]Vote `json:"votes"`
}

// Subjective 导出 viewerID 视角下的主观视图
// 其他玩家的手牌牌面和身份会被遮蔽，观察者自己的信息原样保留
// 绝不改动源状态（先深拷贝再遮蔽）
// viewerID 不对应任何玩家时返回完全遮蔽的视图，无需特判
func (s *State) Subjective(viewerID int) *ViewState {
	view := &ViewState{
		TurnStatus: s.TurnStatus,
		TurnNumber: s.TurnNumber,

		Players:     make(map[int]*Player, len(s.Players)),
		PlayerHands: make(map[int][]*Card, len(s.Hands)),
		Structures:  make(map[int][]*Card, len(s.Structures)),

		ResourceDeckSize:      len(s.ResourceDeck),
		MinorDisasterDeckSize: len(s.MinorDisasterDeck),
		MajorDisasterDeckSize: len(s.MajorDisasterDeck),
		EventDeckSize:         len(s.EventDeck),

		ResourceDiscardSize: len(s.ResourceDiscard),
		EventDiscardSize:    len(s.EventDiscard),
		DisasterDiscardSize: len(s.DisasterDiscard),

		Log: append([]string(nil), s.GameLog...),

		RevealedEvent:    copyCard(s.RevealedEvent),
		RevealedDisaster: copyCard(s.RevealedDisaster),

		Votes: make(map[int]Vote, len(s.Votes)),
	}

	for id, p := range s.Players {
		cp := *p
		cp.Addr = ""

		if id != viewerID {
			cp.Role = ROLE_UNKNOWN
		}

		view.Players[id] = &cp
	}

	for id, hand := range s.Hands {
		cards := make([]*Card, 0, len(hand))

		for _, card := range hand {
			cp := *card

			if id != viewerID {
				cp.Name = "Unknown"
				cp.InternalName = "unknown"
			}

			cards = append(cards, &cp)
		}

		view.PlayerHands[id] = cards
	}

	// 建筑堆是公开信息，不做遮蔽
	for id, pile := range s.Structures {
		cards := make([]*Card, 0, len(pile))
		for _, card := range pile {
			cards = append(cards, copyCard(card))
		}

		view.Structures[id] = cards
	}

	for voterID, v := range s.Votes {
		view.Votes[voterID] = v
	}

	return view
}

func copyCard(card *Card) *Card {
	if card == nil {
		return nil
	}

	cp := *card

	return &cp
}
