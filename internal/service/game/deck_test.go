package game

import (
	"slices"
	"testing"
)

func countByInternalName(deck []*Card) map[string]int {
	counts := make(map[string]int)
	for _, card := range deck {
		counts[card.InternalName]++
	}

	return counts
}

func TestBuildResourceDeck_Composition(t *testing.T) {
	deck := BuildResourceDeck()

	if len(deck) != 110 {
		t.Fatalf("resource deck size want 110 got %d", len(deck))
	}

	counts := countByInternalName(deck)

	want := map[string]int{
		CARD_CONCRETE: 50,
		CARD_STEEL:    50,
		CARD_URANIUM:  8,
		CARD_NUKE:     2,
	}

	for name, n := range want {
		if counts[name] != n {
			t.Fatalf("resource deck %s count want %d got %d", name, n, counts[name])
		}
	}
}

func TestBuildEventDeck_DeepSeaOnlyInSmallGames(t *testing.T) {
	small := BuildEventDeck(4)
	if len(small) != 17 {
		t.Fatalf("event deck size for 4 players want 17 got %d", len(small))
	}

	if got := countByInternalName(small)[EVENT_DEEP_SEA_EXPLORATION]; got != 6 {
		t.Fatalf("deep-sea copies for 4 players want 6 got %d", got)
	}

	large := BuildEventDeck(5)
	if len(large) != 11 {
		t.Fatalf("event deck size for 5 players want 11 got %d", len(large))
	}

	if got := countByInternalName(large)[EVENT_DEEP_SEA_EXPLORATION]; got != 0 {
		t.Fatalf("deep-sea copies for 5 players want 0 got %d", got)
	}

	counts := countByInternalName(large)

	for _, name := range []string{
		EVENT_FOREIGN_AID,
		EVENT_INTERNATIONAL_GRANT,
		EVENT_CONSERVATION_EFFORT,
		EVENT_MILITARISATION,
		EVENT_INVESTIGATION,
	} {
		if counts[name] != 2 {
			t.Fatalf("event %s copies want 2 got %d", name, counts[name])
		}
	}

	if counts[EVENT_EARLY_WARNING_SYSTEM] != 1 {
		t.Fatalf("early warning system copies want 1 got %d", counts[EVENT_EARLY_WARNING_SYSTEM])
	}
}

func TestShuffleCards_PreservesMultiset(t *testing.T) {
	deck := BuildResourceDeck()

	before := make([]int, 0, len(deck))
	for _, card := range deck {
		before = append(before, card.ID)
	}

	shuffleCards(deck)

	after := make([]int, 0, len(deck))
	for _, card := range deck {
		after = append(after, card.ID)
	}

	slices.Sort(before)
	slices.Sort(after)

	if !slices.Equal(before, after) {
		t.Fatalf("shuffle must be a permutation of the same cards")
	}
}

func TestCardIDs_PairwiseDistinctAcrossDecks(t *testing.T) {
	seen := make(map[int]bool)

	decks := [][]*Card{
		BuildResourceDeck(),
		BuildEventDeck(4),
		BuildMinorDisasterDeck(),
		BuildMajorDisasterDeck(),
	}

	for _, deck := range decks {
		for _, card := range deck {
			if seen[card.ID] {
				t.Fatalf("card id %d allocated twice", card.ID)
			}
			seen[card.ID] = true
		}
	}
}

func TestPopCard(t *testing.T) {
	a := NewCard("A", "a")
	b := NewCard("B", "b")
	deck := []*Card{a, b}

	if got := popCard(&deck); got != b {
		t.Fatalf("popCard must take from the end of the deck")
	}

	if got := popCard(&deck); got != a {
		t.Fatalf("popCard second draw want a got %v", got)
	}

	if got := popCard(&deck); got != nil {
		t.Fatalf("popCard on empty deck want nil got %v", got)
	}
}
