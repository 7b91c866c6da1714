package game

import "sync/atomic"

// 资源牌的内部名称
const (
	CARD_CONCRETE = "concrete"
	CARD_STEEL    = "steel"
	CARD_URANIUM  = "uranium"
	CARD_NUKE     = "nuke"
	// 建筑牌，放入玩家的建筑堆后每回合提供额外抽牌
	CARD_DRILL = "drill"
)

// 事件牌的内部名称，内部名称驱动事件结算的分发
const (
	EVENT_FOREIGN_AID          = "foreign_aid"
	EVENT_INTERNATIONAL_GRANT  = "international_grant"
	EVENT_CONSERVATION_EFFORT  = "conservation_effort"
	EVENT_DEEP_SEA_EXPLORATION = "deep_sea_exploration"
	EVENT_MILITARISATION       = "militarisation"
	EVENT_INVESTIGATION        = "international_investigation"
	EVENT_EARLY_WARNING_SYSTEM = "early_warning_system"
)

// Card 是一张不可变的牌
// 任意时刻恰好属于一个容器（某个牌堆、某个手牌或某个建筑堆）
// 在容器之间移动即所有权转移，绝不复制
type Card struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	InternalName string `json:"internal_name"`
}

// 进程级的牌 ID 计数器，单调递增，绝不复用
var cardIDCounter atomic.Int64

// NewCard 分配下一个全局牌 ID 并构造一张牌
func NewCard(name, internalName string) *Card {
	return &Card{
		ID:           int(cardIDCounter.Add(1)) - 1,
		Name:         name,
		InternalName: internalName,
	}
}

// EventKind 是事件牌效果的标签枚举
// 用枚举分发结算逻辑，未知的内部名称会落到 EventUnknown
// 从而被显式上报，而不是静默忽略
type EventKind int

const (
	EventUnknown EventKind = iota
	EventForeignAid
	EventInternationalGrant
	EventConservationEffort
	EventDeepSeaExploration
	EventMilitarisation
	EventInvestigation
	EventEarlyWarningSystem
)

// EventKindOf 把事件牌的内部名称解析为枚举
func EventKindOf(internalName string) EventKind {
	switch internalName {
	case EVENT_FOREIGN_AID:
		return EventForeignAid
	case EVENT_INTERNATIONAL_GRANT:
		return EventInternationalGrant
	case EVENT_CONSERVATION_EFFORT:
		return EventConservationEffort
	case EVENT_DEEP_SEA_EXPLORATION:
		return EventDeepSeaExploration
	case EVENT_MILITARISATION:
		return EventMilitarisation
	case EVENT_INVESTIGATION:
		return EventInvestigation
	case EVENT_EARLY_WARNING_SYSTEM:
		return EventEarlyWarningSystem
	default:
		return EventUnknown
	}
}
