// Package sandbox runs the interactive terminal playground: a fixed-timestep
// loop driving the locomotion controller over procedural terrain, rendered
// top-down with tcell.
package sandbox

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rvyne/strider/internal/config"
	"github.com/rvyne/strider/internal/event"
	"github.com/rvyne/strider/internal/input"
	"github.com/rvyne/strider/internal/locomotion"
	"github.com/rvyne/strider/internal/physics"
	"github.com/rvyne/strider/internal/terrain"
)

const cameraYawStep = 15.0

type Sandbox struct {
	cfg      *config.Config
	screen   tcell.Screen
	field    *terrain.Heightfield
	ctrl     *locomotion.Controller
	keyboard *Keyboard
	bus      *event.Bus

	// camera is written by the tcell event goroutine and read by the tick
	// loop.
	camMu  sync.Mutex
	camera input.FixedCamera

	minHeight float64
	maxHeight float64
}

// New builds the whole playground: terrain, rigid body, controller, and the
// tcell screen. The caller owns the config watcher, if any.
func New(cfg *config.Config) (*Sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	field := terrain.Generate(cfg.Terrain)
	start := physics.Vec3{X: field.Width() / 2, Z: field.Depth() / 3}
	start.Y = field.SurfaceHeight(start.X, start.Z)

	bus := event.NewBus()
	body := physics.NewRigidBody(start)
	ctrl := locomotion.NewController(body, field, cfg.Motion, nil, locomotion.BusAnimator{Bus: bus})

	s := &Sandbox{
		cfg:      cfg,
		screen:   screen,
		field:    field,
		ctrl:     ctrl,
		keyboard: NewKeyboard(),
		camera:   input.FixedCamera{YawDeg: cfg.Sandbox.CameraYawDeg},
		bus:      bus,
	}
	s.scanHeightRange()

	bus.Subscribe(locomotion.EventAnimationTrigger, func(payload any) {
		if name, ok := payload.(string); ok {
			slog.Debug("animation trigger", "name", name)
		}
	})
	return s, nil
}

func (s *Sandbox) scanHeightRange() {
	s.minHeight = math.Inf(1)
	s.maxHeight = math.Inf(-1)
	for z := 0.0; z <= s.field.Depth(); z++ {
		for x := 0.0; x <= s.field.Width(); x++ {
			h := s.field.SurfaceHeight(x, z)
			s.minHeight = math.Min(s.minHeight, h)
			s.maxHeight = math.Max(s.maxHeight, h)
		}
	}
}

// Run drives the loop until ctx is done or the player quits. reloads may be
// nil; new configs arriving there are applied at the next tick boundary.
func (s *Sandbox) Run(ctx context.Context, reloads <-chan *config.Config) error {
	defer s.screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.pollEvents(cancel)

	dt := 1 / s.cfg.Sandbox.TickRate
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	slog.Info("sandbox started",
		"terrain", fmt.Sprintf("%.0fx%.0f", s.field.Width(), s.field.Depth()),
		"seed", s.cfg.Terrain.Seed,
		"tick_rate", s.cfg.Sandbox.TickRate)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cfg := <-reloads:
			// A nil reloads channel never fires; live reload is optional.
			s.applyConfig(cfg)
		case <-ticker.C:
			s.tick(dt)
		}
	}
}

func (s *Sandbox) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	s.cfg.Motion = cfg.Motion
	s.ctrl.SetParameters(cfg.Motion)
	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}
	slog.Info("motion parameters reloaded")
}

func (s *Sandbox) currentCamera() input.FixedCamera {
	s.camMu.Lock()
	defer s.camMu.Unlock()
	return s.camera
}

func (s *Sandbox) turnCamera(deltaDeg float64) {
	s.camMu.Lock()
	defer s.camMu.Unlock()
	s.camera.YawDeg += deltaDeg
}

func (s *Sandbox) tick(dt float64) {
	intent := input.BuildIntent(s.keyboard, s.currentCamera(), s.cfg.Motion.Deadzone)

	if intent.Ability {
		dash := s.ctrl.Body().Facing().Scale(s.cfg.Sandbox.AbilityImpulse)
		s.ctrl.ApplyExternalForce(dash)
	}

	out := s.ctrl.Tick(intent, dt)
	physics.Step(s.ctrl.Body(), s.field, dt)
	s.draw(out)
}

func (s *Sandbox) pollEvents(cancel context.CancelFunc) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				cancel()
				return
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
				cancel()
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == '[':
				s.turnCamera(-cameraYawStep)
			case ev.Key() == tcell.KeyRune && ev.Rune() == ']':
				s.turnCamera(cameraYawStep)
			default:
				s.keyboard.HandleKey(ev)
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}
