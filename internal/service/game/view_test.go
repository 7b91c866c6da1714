package game

import (
	"testing"
)

func TestSubjective_RedactsOtherPlayers(t *testing.T) {
	st := newLobbyState(t, []string{"Alice", "Bob"}, []string{"a", "b"})

	var viewerID, otherID int
	for id, p := range st.Players {
		if p.Name == "Alice" {
			viewerID = id
		} else {
			otherID = id
		}
	}

	view := st.Subjective(viewerID)

	// 自己的信息原样保留
	if view.Players[viewerID].Role == ROLE_UNKNOWN {
		t.Fatalf("the viewer's own role must not be redacted")
	}

	for i, card := range view.PlayerHands[viewerID] {
		want := st.Hands[viewerID][i]
		if card.Name != want.Name || card.InternalName != want.InternalName {
			t.Fatalf("the viewer's own hand must not be redacted")
		}
	}

	// 其他玩家的身份和手牌牌面被遮蔽
	if view.Players[otherID].Role != ROLE_UNKNOWN {
		t.Fatalf("another player's role must be redacted, got %s", view.Players[otherID].Role)
	}

	if len(view.PlayerHands[otherID]) != len(st.Hands[otherID]) {
		t.Fatalf("hand sizes stay visible, want %d got %d", len(st.Hands[otherID]), len(view.PlayerHands[otherID]))
	}

	for _, card := range view.PlayerHands[otherID] {
		if card.Name != "Unknown" || card.InternalName != "unknown" {
			t.Fatalf("another player's hand card faces must be redacted, got %s/%s", card.Name, card.InternalName)
		}
	}

	// 地址只属于传输层，任何视图都不携带
	for _, p := range view.Players {
		if p.Addr != "" {
			t.Fatalf("player addresses must never appear in a view")
		}
	}
}

func TestSubjective_DecksExposeOnlyCounts(t *testing.T) {
	st := newLobbyState(t, []string{"Alice", "Bob"}, []string{"a", "b"})

	for id := range st.Players {
		view := st.Subjective(id)

		if view.ResourceDeckSize != len(st.ResourceDeck) ||
			view.EventDeckSize != len(st.EventDeck) ||
			view.MinorDisasterDeckSize != len(st.MinorDisasterDeck) ||
			view.MajorDisasterDeckSize != len(st.MajorDisasterDeck) {
			t.Fatalf("deck sizes must match the aggregate")
		}
	}
}

func TestSubjective_UnknownViewerIsFullyRedacted(t *testing.T) {
	st := newLobbyState(t, []string{"Alice", "Bob"}, []string{"a", "b"})

	view := st.Subjective(-1)

	for id, p := range view.Players {
		if p.Role != ROLE_UNKNOWN {
			t.Fatalf("player %d role must be redacted for an unknown viewer", id)
		}
	}

	for id, hand := range view.PlayerHands {
		for _, card := range hand {
			if card.Name != "Unknown" {
				t.Fatalf("player %d hand must be redacted for an unknown viewer", id)
			}
		}
	}
}

func TestSubjective_DoesNotMutateSource(t *testing.T) {
	st := newLobbyState(t, []string{"Alice", "Bob"}, []string{"a", "b"})

	type handCard struct {
		id           int
		name         string
		internalName string
	}

	before := make(map[int][]handCard)
	for id, hand := range st.Hands {
		for _, card := range hand {
			before[id] = append(before[id], handCard{card.ID, card.Name, card.InternalName})
		}
	}

	rolesBefore := make(map[int]string)
	for id, p := range st.Players {
		rolesBefore[id] = p.Role
	}

	for id := range st.Players {
		view := st.Subjective(id)

		// 篡改视图不应影响源状态
		for _, p := range view.Players {
			p.Role = "tampered"
		}
		for _, hand := range view.PlayerHands {
			for _, card := range hand {
				card.Name = "tampered"
			}
		}
	}
	st.Subjective(-1)

	for id, hand := range st.Hands {
		for i, card := range hand {
			want := before[id][i]
			if card.ID != want.id || card.Name != want.name || card.InternalName != want.internalName {
				t.Fatalf("projection mutated player %d's hand", id)
			}
		}
	}

	for id, p := range st.Players {
		if p.Role != rolesBefore[id] {
			t.Fatalf("projection mutated player %d's role", id)
		}
	}
}
