// Package input assembles per-tick locomotion intents from an input device
// and a camera basis. It carries no movement logic of its own.
package input

import (
	"github.com/rvyne/strider/internal/locomotion"
	"github.com/rvyne/strider/internal/physics"
)

const (
	ButtonJump    = "jump"
	ButtonAbility = "ability"
)

// Source is the active input device for a player.
type Source interface {
	// MoveAxis returns the raw horizontal/vertical axes, each in [-1,1].
	MoveAxis() (horizontal, vertical float64)
	// ButtonEdge is true only for the tick the named button went down.
	ButtonEdge(name string) bool
}

// Camera supplies the basis used to turn stick axes into a world direction.
type Camera interface {
	Forward() physics.Vec3
	Right() physics.Vec3
}

// BuildIntent applies the per-axis deadzone and combines the surviving axes
// through the camera basis, with the camera forward projected onto the
// horizontal plane. Zero surviving input yields a zero intent.
func BuildIntent(src Source, cam Camera, deadzone float64) locomotion.InputIntent {
	if src == nil {
		return locomotion.InputIntent{}
	}

	h, v := src.MoveAxis()
	h = applyDeadzone(h, deadzone)
	v = applyDeadzone(v, deadzone)

	intent := locomotion.InputIntent{
		Jump:    src.ButtonEdge(ButtonJump),
		Ability: src.ButtonEdge(ButtonAbility),
	}

	if h == 0 && v == 0 {
		return intent
	}

	forward := physics.Vec3{Z: 1}
	right := physics.Vec3{X: 1}
	if cam != nil {
		if f := cam.Forward().Horizontal().Normalized(); !f.IsZero() {
			forward = f
		}
		if r := cam.Right().Horizontal().Normalized(); !r.IsZero() {
			right = r
		}
	}

	combined := right.Scale(h).Add(forward.Scale(v))
	intent.MoveDirection = combined.Normalized()

	magnitude := combined.Length()
	if magnitude > 1 {
		magnitude = 1
	}
	intent.Magnitude = magnitude
	return intent
}

func applyDeadzone(axis, deadzone float64) float64 {
	if axis > -deadzone && axis < deadzone {
		return 0
	}
	if axis > 1 {
		return 1
	}
	if axis < -1 {
		return -1
	}
	return axis
}

// FixedCamera is a camera basis that only rotates about the vertical axis.
type FixedCamera struct {
	YawDeg float64
}

func (c FixedCamera) Forward() physics.Vec3 {
	return physics.DirectionFromYawDeg(c.YawDeg)
}

func (c FixedCamera) Right() physics.Vec3 {
	return physics.DirectionFromYawDeg(c.YawDeg + 90)
}
