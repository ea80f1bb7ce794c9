package sandbox

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rvyne/strider/internal/input"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMovePulseEngagesAndExpires(t *testing.T) {
	kb := NewKeyboard()
	kb.HandleKey(key('w'))

	if _, v := kb.MoveAxis(); v != 1 {
		t.Fatalf("vertical axis = %v right after press, want 1", v)
	}

	// Force the deadline into the past instead of sleeping through it.
	kb.mu.Lock()
	kb.forwardUntil = time.Now().Add(-time.Millisecond)
	kb.mu.Unlock()

	if _, v := kb.MoveAxis(); v != 0 {
		t.Fatalf("vertical axis = %v after pulse expiry, want 0", v)
	}
}

func TestOpposedKeysCancel(t *testing.T) {
	kb := NewKeyboard()
	kb.HandleKey(key('a'))
	kb.HandleKey(key('d'))

	if h, _ := kb.MoveAxis(); h != 0 {
		t.Fatalf("horizontal axis = %v with both keys held, want 0", h)
	}
}

func TestArrowKeysMapLikeWASD(t *testing.T) {
	kb := NewKeyboard()
	kb.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	kb.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))

	h, v := kb.MoveAxis()
	if h != 1 || v != -1 {
		t.Fatalf("axes = (%v,%v), want (1,-1)", h, v)
	}
}

func TestButtonEdgeReadsOnce(t *testing.T) {
	kb := NewKeyboard()
	kb.HandleKey(key(' '))

	if !kb.ButtonEdge(input.ButtonJump) {
		t.Fatal("jump edge lost")
	}
	if kb.ButtonEdge(input.ButtonJump) {
		t.Fatal("jump edge read twice")
	}

	kb.HandleKey(key('e'))
	if !kb.ButtonEdge(input.ButtonAbility) {
		t.Fatal("ability edge lost")
	}
	if kb.ButtonEdge("unknown") {
		t.Fatal("unknown button reported pressed")
	}
}
