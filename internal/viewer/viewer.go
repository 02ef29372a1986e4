// Package viewer runs the lollipop widget in an SDL2 desktop window.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/lollipop/internal/config"
	"github.com/Faultbox/lollipop/internal/engine/debug"
	"github.com/Faultbox/lollipop/internal/engine/input"
	"github.com/Faultbox/lollipop/internal/engine/window"
	"github.com/Faultbox/lollipop/internal/host"
	"github.com/Faultbox/lollipop/internal/logger"
)

// idleDelay throttles the loop while nothing needs presenting.
const idleDelay = 10 * time.Millisecond

var keyActions = map[sdl.Scancode]host.Action{
	sdl.SCANCODE_LEFT:     host.ActionYawLeft,
	sdl.SCANCODE_RIGHT:    host.ActionYawRight,
	sdl.SCANCODE_UP:       host.ActionPitchUp,
	sdl.SCANCODE_DOWN:     host.ActionPitchDown,
	sdl.SCANCODE_PAGEUP:   host.ActionRollLeft,
	sdl.SCANCODE_PAGEDOWN: host.ActionRollRight,
	sdl.SCANCODE_R:        host.ActionReset,
	sdl.SCANCODE_ESCAPE:   host.ActionQuit,
}

// Viewer is the desktop host.
type Viewer struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	input    *input.Input
	ctrl     *host.Controller
	snapshot *debug.SnapshotWriter
	log      *zap.Logger
}

// New opens the window and builds the widget.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
	}
	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.ctrl, err = host.NewController(cfg.Widget, v.log)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create widget: %w", err)
	}

	v.input = input.New()
	v.snapshot = debug.NewSnapshotWriter(cfg.Snapshot.OutputDir, cfg.Snapshot.Prefix)

	return v, nil
}

// Run processes events and presents frames until the window closes.
func (v *Viewer) Run() error {
	v.running = true
	v.log.Info("starting event loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}
		for _, ev := range v.input.Events() {
			v.handle(ev)
		}
		if !v.running {
			break
		}

		img, fresh := v.ctrl.Frame(v.window.GetSize())
		if !fresh {
			time.Sleep(idleDelay)
			continue
		}
		if err := v.window.Present(img); err != nil {
			return fmt.Errorf("present error: %w", err)
		}
	}

	return nil
}

func (v *Viewer) handle(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		v.log.Debug("window resized", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
		v.ctrl.Invalidate()
	case input.EventMouseMove:
		v.ctrl.PointerMove(ev.MouseX, ev.MouseY)
	case input.EventMouseLeave:
		v.ctrl.PointerLeave()
	case input.EventMouseDown:
		if ev.Button == sdl.BUTTON_LEFT {
			if sel, ok := v.ctrl.Click(ev.MouseX, ev.MouseY); ok {
				v.window.SetTitle(fmt.Sprintf("%s - %s", v.cfg.Window.Title, sel.Label))
			}
		}
	case input.EventKeyDown:
		if ev.Key == sdl.SCANCODE_F12 {
			v.saveSnapshot()
			return
		}
		if a, ok := keyActions[ev.Key]; ok {
			v.running = v.ctrl.Handle(a)
		}
	}
}

func (v *Viewer) saveSnapshot() {
	img, _ := v.ctrl.Frame(v.window.GetSize())
	path, err := v.snapshot.Save(img)
	if err != nil {
		v.log.Error("snapshot failed", zap.Error(err))
		return
	}
	v.log.Info("snapshot saved", zap.String("path", path))
}

// Close releases the widget and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.ctrl != nil {
		_ = v.ctrl.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
