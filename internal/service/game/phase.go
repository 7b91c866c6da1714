package game

import (
	"fmt"

	"go.uber.org/zap"
)

// 回合按固定的阶段流水线推进：
// 抽牌 -> 事件揭示 -> 事件结算 -> [投票等待] -> 回合结束 -> 下一回合抽牌
// 每个阶段由上一个阶段同步调用，没有任何外部调度
const (
	STATUS_LOBBY        = "status_lobby"
	STATUS_DRAW         = "status_draw"
	STATUS_EVENT_REVEAL = "status_event_reveal"
	// 对外援助的发牌对象由玩家投票决定
	STATUS_GIVE_CARD_FOREIGN_AID = "status_give_card_foreign_aid"
	STATUS_VOTING_PLAYER         = "status_voting_player"
	STATUS_VOTING_YES_NO         = "status_voting_yes_no"
)

// drawPhase 抽牌阶段：每名玩家抽 钻井数+1 张资源牌
// 抽牌替换原有手牌（见 DrawCards），然后无条件进入事件揭示
func (s *State) drawPhase() error {
	s.TurnStatus = STATUS_DRAW

	for id := range s.Players {
		numDrills := s.structureCount(CARD_DRILL, id)
		s.DrawCards(numDrills+1, id)
	}

	return s.eventRevealPhase()
}

// eventRevealPhase 事件揭示阶段：从事件牌堆顶翻开一张牌
// 如果已有未结算的事件则不再翻新牌（幂等），然后进入事件结算
func (s *State) eventRevealPhase() error {
	s.TurnStatus = STATUS_EVENT_REVEAL

	if s.RevealedEvent == nil {
		if len(s.EventDeck) == 0 {
			// 事件牌堆耗尽，把事件弃牌堆洗回去
			s.EventDeck = s.EventDiscard
			s.EventDiscard = nil
			shuffleCards(s.EventDeck)

			s.Log("The event deck has been reshuffled.")
			zap.L().Info("事件牌堆耗尽，已重洗弃牌堆")
		}

		card := popCard(&s.EventDeck)
		if card == nil {
			// 事件牌只在牌堆、弃牌堆和翻开位之间流转，
			// 重洗后两个牌堆仍同时为空说明状态已被破坏
			return fmt.Errorf("事件牌全部丢失，无法翻开新事件")
		}

		s.RevealedEvent = card

		s.Log(fmt.Sprintf("Event revealed: %s.", s.RevealedEvent.Name))
	}

	return s.eventResolutionPhase()
}

// eventResolutionPhase 事件结算阶段：按翻开事件的种类分发
// 投票类事件把回合状态置为对应的等待投票状态
// 深海勘探立即生效，不产生等待状态
// 未知的事件种类是显式错误，绝不静默跳过
func (s *State) eventResolutionPhase() error {
	switch EventKindOf(s.RevealedEvent.InternalName) {
	case EventForeignAid:
		s.TurnStatus = STATUS_GIVE_CARD_FOREIGN_AID

	case EventInternationalGrant, EventMilitarisation, EventInvestigation:
		s.TurnStatus = STATUS_VOTING_PLAYER

	case EventConservationEffort, EventEarlyWarningSystem:
		s.TurnStatus = STATUS_VOTING_YES_NO

	case EventDeepSeaExploration:
		// 立即结算：每人额外摸一张牌，不等待投票
		s.Log("Everyone draws a card due to deep-sea discoveries.")

		for id := range s.Players {
			s.dealCards(1, id)
		}

		return s.endTurn()

	default:
		return fmt.Errorf("无法结算的事件牌：%s", s.RevealedEvent.InternalName)
	}

	return nil
}

// endTurn 回合收尾：回合数自增，翻开的事件牌和灾难牌移入弃牌堆，
// 清空投票，然后开始下一回合的抽牌阶段
func (s *State) endTurn() error {
	s.TurnNumber++

	if s.RevealedEvent != nil {
		s.EventDiscard = append(s.EventDiscard, s.RevealedEvent)
		s.RevealedEvent = nil
	}

	if s.RevealedDisaster != nil {
		s.DisasterDiscard = append(s.DisasterDiscard, s.RevealedDisaster)
		s.RevealedDisaster = nil
	}

	s.Votes = make(map[int]Vote)

	zap.L().Debug("回合结束", zap.Int("turn_number", s.TurnNumber))

	return s.drawPhase()
}

// resolveVotesIfComplete 在每次成功投票后调用
// 所有存活玩家都投过票时结算本轮投票，否则什么都不做
func (s *State) resolveVotesIfComplete() error {
	if len(s.Votes) < s.aliveCount() {
		return nil
	}

	switch s.TurnStatus {
	case STATUS_VOTING_YES_NO:
		return s.resolveYesNoVote()

	case STATUS_VOTING_PLAYER, STATUS_GIVE_CARD_FOREIGN_AID:
		return s.resolvePlayerVote()
	}

	return nil
}

// resolveYesNoVote 按严格多数裁定赞成/反对投票，然后结束回合
func (s *State) resolveYesNoVote() error {
	approvals := 0
	for _, v := range s.Votes {
		if v.Approve {
			approvals++
		}
	}

	approved := approvals*2 > s.aliveCount()

	if err := s.enactYesNoOutcome(approved); err != nil {
		return err
	}

	return s.endTurn()
}

// resolvePlayerVote 统计指向各玩家的票数
// 有唯一的最高票目标时执行事件效果并结束回合
// 平票则清空投票、记录一次重投，停留在当前等待状态
func (s *State) resolvePlayerVote() error {
	voteCount := make(map[int]int)
	for _, v := range s.Votes {
		voteCount[v.TargetID]++
	}

	maxVotes := 0
	var leaders []int

	for targetID, count := range voteCount {
		if count > maxVotes {
			maxVotes = count
			leaders = []int{targetID}
		} else if count == maxVotes {
			leaders = append(leaders, targetID)
		}
	}

	if len(leaders) != 1 {
		s.Votes = make(map[int]Vote)
		s.Log("The vote produced no majority; a re-vote is called.")

		zap.L().Info("投票未产生多数，重新投票")

		return nil
	}

	if err := s.enactPlayerVoteOutcome(leaders[0]); err != nil {
		return err
	}

	return s.endTurn()
}

// enactPlayerVoteOutcome 对多数票指向的玩家执行当前事件的效果
func (s *State) enactPlayerVoteOutcome(targetID int) error {
	target, ok := s.Players[targetID]
	if !ok {
		// 票面指向未注册的玩家属于编程错误：
		// 合法的投票入口不可能写入这样的票
		panic(fmt.Sprintf("enactPlayerVoteOutcome: 未知的玩家 ID %d", targetID))
	}

	switch EventKindOf(s.RevealedEvent.InternalName) {
	case EventForeignAid:
		s.dealCards(2, targetID)
		s.Log(fmt.Sprintf("%s receives 2 cards of foreign aid.", target.Name))

	case EventInternationalGrant:
		s.dealCards(3, targetID)
		s.Log(fmt.Sprintf("%s receives a 3-card international grant.", target.Name))

	case EventMilitarisation:
		if disaster := popCard(&s.MinorDisasterDeck); disaster != nil {
			s.RevealedDisaster = disaster
			s.Log(fmt.Sprintf("Militarisation provokes %s against %s.", disaster.Name, target.Name))
		} else {
			s.Log("Militarisation provokes nothing: no disasters remain.")
		}

	case EventInvestigation:
		s.Log(fmt.Sprintf("An international investigation reveals that %s is the %s.", target.Name, target.Role))

	default:
		panic(fmt.Sprintf("enactPlayerVoteOutcome: 事件 %s 不接受指向玩家的投票", s.RevealedEvent.InternalName))
	}

	return nil
}

// enactYesNoOutcome 执行赞成/反对投票的结果
func (s *State) enactYesNoOutcome(approved bool) error {
	switch EventKindOf(s.RevealedEvent.InternalName) {
	case EventConservationEffort:
		if !approved {
			s.Log("The conservation effort is voted down.")
			return nil
		}

		s.Log("The conservation effort passes; everyone draws a card.")

		for id := range s.Players {
			s.dealCards(1, id)
		}

	case EventEarlyWarningSystem:
		if !approved {
			s.Log("The early warning system is voted down.")
			return nil
		}

		// 预警：窥视大型灾难牌堆顶，只公布名字，牌留在原地
		if n := len(s.MajorDisasterDeck); n > 0 {
			s.Log(fmt.Sprintf("The early warning system forecasts: %s.", s.MajorDisasterDeck[n-1].Name))
		} else {
			s.Log("The early warning system forecasts nothing: no disasters remain.")
		}

	default:
		panic(fmt.Sprintf("enactYesNoOutcome: 事件 %s 不接受赞成/反对投票", s.RevealedEvent.InternalName))
	}

	return nil
}
