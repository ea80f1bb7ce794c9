package locomotion

import (
	"github.com/rvyne/strider/internal/event"
)

const (
	TriggerJump = "jump"
	TriggerHit  = "hit"

	EventAnimationSpeed    = "animation.speed"
	EventAnimationGrounded = "animation.grounded"
	EventAnimationTrigger  = "animation.trigger"
)

// Animator is the external animation collaborator: it receives a smoothed
// speed scalar, the grounded flag, and discrete triggers.
type Animator interface {
	SetSpeed(speed float64)
	SetGrounded(grounded bool)
	Trigger(name string)
}

// NopAnimator is used when no animation layer is attached.
type NopAnimator struct{}

func (NopAnimator) SetSpeed(float64) {}
func (NopAnimator) SetGrounded(bool) {}
func (NopAnimator) Trigger(string)   {}

// BusAnimator fans animation signals out on an event bus, so any number of
// listeners (HUD, sound, recording) can follow the character.
type BusAnimator struct {
	Bus *event.Bus
}

func (a BusAnimator) SetSpeed(speed float64) {
	a.Bus.Publish(EventAnimationSpeed, speed)
}

func (a BusAnimator) SetGrounded(grounded bool) {
	a.Bus.Publish(EventAnimationGrounded, grounded)
}

func (a BusAnimator) Trigger(name string) {
	a.Bus.Publish(EventAnimationTrigger, name)
}
