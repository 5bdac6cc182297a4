package entity

import (
	"testing"

	"github.com/samdwyer/townmap/internal/gamedata"
)

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "none"},
		{ActionGreet, "greet"},
		{ActionTrade, "trade"},
		{Action(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestPlayerIdentity(t *testing.T) {
	p1 := NewPlayer(1, 2)
	p2 := NewPlayer(1, 2)

	if p1.ID() == "" || p1.ID() == p2.ID() {
		t.Errorf("Players should have distinct non-empty IDs, got %q and %q", p1.ID(), p2.ID())
	}
	if !p1.Blocking() {
		t.Error("Player should block its tile")
	}

	p1.MoveTo(5, 6)
	if x, y := p1.Position(); x != 5 || y != 6 {
		t.Errorf("Position() = (%d,%d), want (5,6)", x, y)
	}
}

func TestNewNPC(t *testing.T) {
	post := &gamedata.BuildingDef{Kind: gamedata.KindTradingPost, Name: "Trading Post"}
	npc := NewNPC("Trader", 3, 4, ActionTrade, post)

	if npc.Action != ActionTrade || npc.Building != post {
		t.Errorf("NewNPC did not keep action/building: %+v", npc)
	}
	if x, y := npc.Position(); x != 3 || y != 4 {
		t.Errorf("Position() = (%d,%d), want (3,4)", x, y)
	}
	if npc.Glyph() != 'N' || !npc.Blocking() {
		t.Errorf("NPC glyph/blocking unexpected: %c %v", npc.Glyph(), npc.Blocking())
	}
}
