package service

import (
	"testing"

	"doomsday-be/internal/service/game"
)

func TestGameService_JoinFlow(t *testing.T) {
	svc := NewGameService(2, []string{"a", "b"})

	if got := svc.Status(); got != game.SERVER_WAITING {
		t.Fatalf("status after opening the lobby want %s got %s", game.SERVER_WAITING, got)
	}

	if _, err := svc.Join("Mallory", "10.0.0.9", "wrong"); err == nil {
		t.Fatalf("an invalid code must be rejected")
	}

	view, err := svc.Join("Alice", "10.0.0.1", "a")
	if err != nil {
		t.Fatalf("join with a valid code failed: %v", err)
	}

	if len(view.Players) != 1 {
		t.Fatalf("the first joiner must see one registered player, got %d", len(view.Players))
	}

	// 加入码一次性生效
	if _, err := svc.Join("Eve", "10.0.0.2", "a"); err == nil {
		t.Fatalf("a consumed code must be rejected")
	}

	if _, err := svc.Join("Bob", "10.0.0.2", "b"); err != nil {
		t.Fatalf("second join failed: %v", err)
	}

	if got := svc.Status(); got != game.SERVER_IN_PROGRESS {
		t.Fatalf("status after filling the lobby want %s got %s", game.SERVER_IN_PROGRESS, got)
	}

	// 大厅已关闭，后续加入一律拒绝
	if _, err := svc.Join("Late", "10.0.0.3", "c"); err == nil {
		t.Fatalf("joins after the game started must be rejected")
	}
}

func TestGameService_SubjectiveStateByAddr(t *testing.T) {
	svc := NewGameService(2, []string{"a", "b"})

	if _, err := svc.Join("Alice", "10.0.1.1", "a"); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if _, err := svc.Join("Bob", "10.0.1.2", "b"); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	view := svc.SubjectiveStateByAddr("10.0.1.1")

	found := false
	for _, p := range view.Players {
		if p.Name == "Alice" && p.Role != game.ROLE_UNKNOWN {
			found = true
		}
	}

	if !found {
		t.Fatalf("the view resolved from Alice's address must show her role")
	}

	// 未知地址拿到完全遮蔽的视图
	stranger := svc.SubjectiveStateByAddr("192.168.0.1")
	for _, p := range stranger.Players {
		if p.Role != game.ROLE_UNKNOWN {
			t.Fatalf("an unknown address must get a fully redacted view")
		}
	}
}

func TestGameService_VoteByAddr(t *testing.T) {
	svc := NewGameService(2, []string{"a", "b"})

	if err := svc.VoteYesNo("10.0.2.1", true); err == nil {
		t.Fatalf("a vote from an unregistered address must be rejected")
	}

	if _, err := svc.Join("Alice", "10.0.2.1", "a"); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if _, err := svc.Join("Bob", "10.0.2.2", "b"); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	// 此时要么在等待投票，要么深海勘探已立即结算；
	// 只断言投票入口对未注册地址的拒绝语义
	if err := svc.VoteForPlayer("192.168.0.1", 0); err == nil {
		t.Fatalf("a vote from an unknown address must be rejected")
	}
}

func TestGameService_WatchNotify(t *testing.T) {
	svc := NewGameService(2, []string{"a", "b"})

	_, notifyCh, cancel := svc.Watch("10.0.3.1")
	defer cancel()

	if _, err := svc.Join("Alice", "10.0.3.1", "a"); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	select {
	case <-notifyCh:
	default:
		t.Fatalf("a state mutation must signal registered watchers")
	}
}
