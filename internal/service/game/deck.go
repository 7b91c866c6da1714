package game

import "math/rand/v2"

// 所有牌堆均以切片末尾为堆顶（抽牌点）

// shuffleCards 对牌堆做均匀随机洗牌（Fisher–Yates）
func shuffleCards(cards []*Card) {
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// popCard 从牌堆顶取走一张牌，牌堆为空时返回 nil
func popCard(deck *[]*Card) *Card {
	d := *deck
	if len(d) == 0 {
		return nil
	}

	top := d[len(d)-1]
	*deck = d[:len(d)-1]

	return top
}

// BuildResourceDeck 构建资源牌堆：
// 混凝土和钢材各 50 张，铀 8 张，黑市核弹头 2 张
func BuildResourceDeck() []*Card {
	deck := make([]*Card, 0, 110)

	for x := 0; x < 50; x++ {
		deck = append(deck, NewCard("Concrete", CARD_CONCRETE))
		deck = append(deck, NewCard("Steel", CARD_STEEL))
	}

	for x := 0; x < 8; x++ {
		deck = append(deck, NewCard("Uranium", CARD_URANIUM))
	}

	for x := 0; x < 2; x++ {
		deck = append(deck, NewCard("Black Market Nuclear Warhead", CARD_NUKE))
	}

	shuffleCards(deck)

	return deck
}

// BuildEventDeck 构建事件牌堆
// 玩家人数不超过 4 人时额外加入 6 张深海勘探
func BuildEventDeck(playerCount int) []*Card {
	deck := make([]*Card, 0, 17)

	if playerCount <= 4 {
		for x := 0; x < 6; x++ {
			deck = append(deck, NewCard("Deep-sea Exploration", EVENT_DEEP_SEA_EXPLORATION))
		}
	}

	for x := 0; x < 2; x++ {
		deck = append(deck, NewCard("Foreign Aid", EVENT_FOREIGN_AID))
		deck = append(deck, NewCard("International Grant", EVENT_INTERNATIONAL_GRANT))
		deck = append(deck, NewCard("Conservation Effort", EVENT_CONSERVATION_EFFORT))
		deck = append(deck, NewCard("Militarisation", EVENT_MILITARISATION))
		deck = append(deck, NewCard("International Investigation", EVENT_INVESTIGATION))
	}

	// 唯一的一张预警系统
	deck = append(deck, NewCard("Early Warning System", EVENT_EARLY_WARNING_SYSTEM))

	shuffleCards(deck)

	return deck
}

// BuildMinorDisasterDeck 构建小型灾难牌堆，各一张
func BuildMinorDisasterDeck() []*Card {
	deck := []*Card{
		NewCard("Tectonic Shift", "tectonic_shift"),
		NewCard("Drought", "drought"),
		NewCard("Territorial Dispute", "land_dispute"),
		NewCard("Political Instability", "regional_instability"),
	}

	shuffleCards(deck)

	return deck
}

// BuildMajorDisasterDeck 构建大型灾难牌堆，各一张
func BuildMajorDisasterDeck() []*Card {
	deck := []*Card{
		NewCard("Super Typhoon", "hypercane"),
		NewCard("Asteroid Strike", "meteor"),
		NewCard("Hostage Situation", "hostage_situation"),
	}

	shuffleCards(deck)

	return deck
}
