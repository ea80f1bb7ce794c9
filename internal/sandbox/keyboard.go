package sandbox

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rvyne/strider/internal/input"
)

// movePulse is how long a key press keeps its axis engaged. Terminals only
// deliver repeats, not key-up events, so held movement is modeled as a
// deadline refreshed by every press.
const movePulse = 180 * time.Millisecond

// Keyboard adapts tcell key events into an input.Source. The tcell event
// loop writes from its own goroutine; the tick loop reads.
type Keyboard struct {
	mu sync.Mutex

	forwardUntil  time.Time
	backwardUntil time.Time
	leftUntil     time.Time
	rightUntil    time.Time

	jumpPressed    bool
	abilityPressed bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// HandleKey records one key event. Unrelated keys are ignored.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) {
	k.mu.Lock()
	defer k.mu.Unlock()

	deadline := time.Now().Add(movePulse)
	switch ev.Key() {
	case tcell.KeyUp:
		k.forwardUntil = deadline
	case tcell.KeyDown:
		k.backwardUntil = deadline
	case tcell.KeyLeft:
		k.leftUntil = deadline
	case tcell.KeyRight:
		k.rightUntil = deadline
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			k.forwardUntil = deadline
		case 's', 'S':
			k.backwardUntil = deadline
		case 'a', 'A':
			k.leftUntil = deadline
		case 'd', 'D':
			k.rightUntil = deadline
		case ' ':
			k.jumpPressed = true
		case 'e', 'E':
			k.abilityPressed = true
		}
	}
}

// MoveAxis implements input.Source.
func (k *Keyboard) MoveAxis() (float64, float64) {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := time.Now()
	var h, v float64
	if now.Before(k.forwardUntil) {
		v += 1
	}
	if now.Before(k.backwardUntil) {
		v -= 1
	}
	if now.Before(k.rightUntil) {
		h += 1
	}
	if now.Before(k.leftUntil) {
		h -= 1
	}
	return h, v
}

// ButtonEdge implements input.Source. Each press reads true exactly once.
func (k *Keyboard) ButtonEdge(name string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch name {
	case input.ButtonJump:
		pressed := k.jumpPressed
		k.jumpPressed = false
		return pressed
	case input.ButtonAbility:
		pressed := k.abilityPressed
		k.abilityPressed = false
		return pressed
	default:
		return false
	}
}
