package sandbox

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rvyne/strider/internal/locomotion"
	"github.com/rvyne/strider/internal/terrain"
)

const hudRows = 2

// heightRamp shades terrain from low to high.
var heightRamp = []rune(" .:-=+*#%@")

var (
	styleGrass = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleRock  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSand  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleIce   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	stylePlay  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func materialStyle(m terrain.Material) tcell.Style {
	switch m.Name {
	case terrain.Ice.Name:
		return styleIce
	case terrain.Rock.Name:
		return styleRock
	case terrain.Sand.Name:
		return styleSand
	default:
		return styleGrass
	}
}

// headingRune picks an arrow for the character's facing.
func headingRune(yawDeg float64) rune {
	yaw := yawDeg
	for yaw < 0 {
		yaw += 360
	}
	for yaw >= 360 {
		yaw -= 360
	}
	switch {
	case yaw < 22.5 || yaw >= 337.5:
		return '^' // +Z, drawn as screen-up
	case yaw < 67.5:
		return '/'
	case yaw < 112.5:
		return '>'
	case yaw < 157.5:
		return '\\'
	case yaw < 202.5:
		return 'v'
	case yaw < 247.5:
		return '/'
	case yaw < 292.5:
		return '<'
	default:
		return '\\'
	}
}

// draw renders the terrain viewport centered on the character plus the HUD.
func (s *Sandbox) draw(out locomotion.Output) {
	s.screen.Clear()
	width, height := s.screen.Size()
	viewH := height - hudRows
	if viewH < 1 || width < 1 {
		s.screen.Show()
		return
	}

	body := s.ctrl.Body()
	minHeight, maxHeight := s.minHeight, s.maxHeight

	// One screen cell per terrain unit; world +Z points up the screen.
	for row := 0; row < viewH; row++ {
		for col := 0; col < width; col++ {
			wx := body.Position.X + float64(col-width/2)
			wz := body.Position.Z + float64(viewH/2-row)
			if wx < 0 || wz < 0 || wx > s.field.Width() || wz > s.field.Depth() {
				continue
			}
			h := s.field.SurfaceHeight(wx, wz)
			shade := 0.0
			if maxHeight > minHeight {
				shade = (h - minHeight) / (maxHeight - minHeight)
			}
			idx := int(shade * float64(len(heightRamp)-1))
			if idx < 0 {
				idx = 0
			} else if idx >= len(heightRamp) {
				idx = len(heightRamp) - 1
			}
			style := materialStyle(s.field.MaterialAt(wx, wz))
			s.screen.SetContent(col, hudRows+row, heightRamp[idx], nil, style)
		}
	}

	// Character marker with its heading next to it.
	s.screen.SetContent(width/2, hudRows+viewH/2, '@', nil, stylePlay)
	s.screen.SetContent(width/2+1, hudRows+viewH/2, headingRune(body.YawDeg), nil, stylePlay)

	hud := fmt.Sprintf("state=%s speed=%.2f anim=%.2f pos=(%.1f %.1f %.1f)",
		out.State, body.Velocity.HorizontalLength(), out.AnimationSpeed,
		body.Position.X, body.Position.Y, body.Position.Z)
	ground := fmt.Sprintf("grounded=%t slope=%.1f friction=%.2f camera=%.0f  [wasd move, space jump, e dash, [/] camera, q quit]",
		out.Ground.Grounded, out.Ground.SlopeAngleDeg, out.Ground.SurfaceFriction, s.currentCamera().YawDeg)
	drawText(s.screen, 0, 0, styleHUD, hud)
	drawText(s.screen, 0, 1, styleHUD, ground)

	s.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
