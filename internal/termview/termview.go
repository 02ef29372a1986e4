// Package termview runs the lollipop widget inside a terminal. Each cell
// shows two vertically stacked pixels using the upper half block glyph.
package termview

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/lollipop/internal/config"
	"github.com/Faultbox/lollipop/internal/host"
)

const halfBlock = '▀'

const helpText = "arrows rotate  pgup/pgdn roll  r reset  q quit"

var keyActions = map[tcell.Key]host.Action{
	tcell.KeyLeft:   host.ActionYawLeft,
	tcell.KeyRight:  host.ActionYawRight,
	tcell.KeyUp:     host.ActionPitchUp,
	tcell.KeyDown:   host.ActionPitchDown,
	tcell.KeyPgUp:   host.ActionRollLeft,
	tcell.KeyPgDn:   host.ActionRollRight,
	tcell.KeyEscape: host.ActionQuit,
	tcell.KeyCtrlC:  host.ActionQuit,
}

var runeActions = map[rune]host.Action{
	'r': host.ActionReset,
	'R': host.ActionReset,
	'q': host.ActionQuit,
	'Q': host.ActionQuit,
}

// Viewer is the terminal host.
type Viewer struct {
	screen   tcell.Screen
	ctrl     *host.Controller
	interval time.Duration
	log      *zap.Logger

	buttons     tcell.ButtonMask
	statusDirty bool
}

// New builds the widget for screen. A nil screen selects the real terminal.
func New(cfg *config.Config, screen tcell.Screen, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("screen init failed: %w", err)
		}
	}

	ctrl, err := host.NewController(cfg.Widget, log)
	if err != nil {
		return nil, err
	}

	return &Viewer{
		screen:      screen,
		ctrl:        ctrl,
		interval:    cfg.Terminal.FrameInterval,
		log:         log,
		statusDirty: true,
	}, nil
}

// Run owns the terminal until the user quits or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	if err := v.screen.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer v.screen.Fini()
	v.screen.EnableMouse()
	v.screen.HideCursor()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	// PollEvent returns nil once the screen is finalized
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	v.log.Info("terminal viewer started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !v.handleEvent(ev) {
				v.log.Info("terminal viewer stopped")
				return nil
			}
		case <-ticker.C:
			v.draw()
		}
	}
}

// Close releases the widget.
func (v *Viewer) Close() error {
	return v.ctrl.Close()
}

// pixelArea returns the canvas size: all columns, two pixels per row, with
// the last row kept for the status line.
func (v *Viewer) pixelArea() (int, int) {
	cols, rows := v.screen.Size()
	return cols, max(rows-1, 0) * 2
}

// cellToPixel maps a cell to the centre of its two-pixel block.
func cellToPixel(x, y int) (float32, float32) {
	return float32(x) + 0.5, float32(y*2) + 1
}

func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a, ok := keyActions[ev.Key()]
		if ev.Key() == tcell.KeyRune {
			a, ok = runeActions[ev.Rune()]
		}
		if ok {
			return v.ctrl.Handle(a)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		btn := ev.Buttons()
		_, rows := v.screen.Size()
		if y >= rows-1 {
			v.ctrl.PointerLeave()
			v.buttons = btn
			break
		}
		px, py := cellToPixel(x, y)
		v.ctrl.PointerMove(px, py)
		if btn&tcell.Button1 != 0 && v.buttons&tcell.Button1 == 0 {
			if _, ok := v.ctrl.Click(px, py); ok {
				v.statusDirty = true
			}
		}
		v.buttons = btn

	case *tcell.EventResize:
		v.screen.Sync()
		v.statusDirty = true
	}
	return true
}

func (v *Viewer) draw() {
	img, fresh := v.ctrl.Frame(v.pixelArea())
	if !fresh && !v.statusDirty {
		return
	}
	if fresh {
		blit(v.screen, img)
	}
	v.drawStatus()
	v.statusDirty = false
	v.screen.Show()
}

func (v *Viewer) drawStatus() {
	cols, rows := v.screen.Size()
	if rows == 0 {
		return
	}
	status := helpText
	if sel, ok := v.ctrl.Selection(); ok {
		status = fmt.Sprintf("face %s  %s", sel.Label, helpText)
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		v.screen.SetContent(x, rows-1, r, nil, style)
	}
}

// blit copies img to the screen, two pixel rows per cell row.
func blit(s tcell.Screen, img *image.RGBA) {
	b := img.Bounds()
	for y := 0; y+1 < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			top := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			bottom := img.RGBAAt(b.Min.X+x, b.Min.Y+y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
}
