// Package host drives a lollipop widget for an interactive frontend: it owns
// the software canvas, coalesces redraw requests and maps key actions to
// orientation changes. The SDL and terminal viewers both sit on top of it.
package host

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/lollipop/internal/config"
	"github.com/Faultbox/lollipop/internal/engine/raster"
	"github.com/Faultbox/lollipop/internal/lollipop"
)

// Action is a frontend-independent command.
type Action int

const (
	ActionNone Action = iota
	ActionYawLeft
	ActionYawRight
	ActionPitchUp
	ActionPitchDown
	ActionRollLeft
	ActionRollRight
	ActionReset
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionYawLeft:
		return "yaw-left"
	case ActionYawRight:
		return "yaw-right"
	case ActionPitchUp:
		return "pitch-up"
	case ActionPitchDown:
		return "pitch-down"
	case ActionRollLeft:
		return "roll-left"
	case ActionRollRight:
		return "roll-right"
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// Background is the color behind the cube.
var Background = color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}

// Controller couples a widget with the canvas it renders into.
type Controller struct {
	widget *lollipop.Widget
	text   *raster.Text
	canvas *raster.Canvas

	home mgl32.Quat
	step float32

	dirty    bool
	last     lollipop.Selection
	selected bool

	// SnapOnSelect turns the view to face the clicked face.
	SnapOnSelect bool

	log *zap.Logger
}

// NewController builds the widget from cfg. log may be nil.
func NewController(cfg config.WidgetConfig, log *zap.Logger) (*Controller, error) {
	if log == nil {
		log = zap.NewNop()
	}
	text, err := raster.NewText(cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("loading label font: %w", err)
	}

	c := &Controller{
		text:         text,
		canvas:       raster.NewCanvas(0, 0),
		home:         lollipop.FromEuler(cfg.Yaw, cfg.Pitch, cfg.Roll),
		step:         cfg.StepDeg,
		dirty:        true,
		SnapOnSelect: true,
		log:          log,
	}
	c.widget = lollipop.New(lollipop.Config{
		Layout:    text,
		MinMargin: cfg.MinMargin,
		Logger:    log.Named("widget"),
	})
	c.widget.OnRedraw(func() { c.dirty = true })
	c.widget.OnSelect(c.onSelect)
	c.widget.SetOrientation(c.home)

	return c, nil
}

// Close releases the label font.
func (c *Controller) Close() error {
	return c.text.Close()
}

// Widget exposes the driven widget.
func (c *Controller) Widget() *lollipop.Widget {
	return c.widget
}

// Selection returns the last selected face, if any.
func (c *Controller) Selection() (lollipop.Selection, bool) {
	return c.last, c.selected
}

// Dirty reports whether the next Frame call will repaint.
func (c *Controller) Dirty() bool {
	return c.dirty
}

func (c *Controller) onSelect(sel lollipop.Selection) {
	c.last, c.selected = sel, true
	if c.SnapOnSelect {
		c.widget.SetOrientation(sel.Face.ViewOrientation())
	}
}

// Handle applies a, returning false for ActionQuit.
func (c *Controller) Handle(a Action) bool {
	q := c.widget.Orientation()
	switch a {
	case ActionYawLeft:
		q = lollipop.Rotate(q, lollipop.AxisY, -c.step)
	case ActionYawRight:
		q = lollipop.Rotate(q, lollipop.AxisY, c.step)
	case ActionPitchUp:
		q = lollipop.Rotate(q, lollipop.AxisX, -c.step)
	case ActionPitchDown:
		q = lollipop.Rotate(q, lollipop.AxisX, c.step)
	case ActionRollLeft:
		q = lollipop.Rotate(q, lollipop.AxisZ, -c.step)
	case ActionRollRight:
		q = lollipop.Rotate(q, lollipop.AxisZ, c.step)
	case ActionReset:
		q = c.home
	case ActionQuit:
		return false
	default:
		return true
	}
	c.log.Debug("action", zap.Stringer("action", a))
	c.widget.SetOrientation(q)
	return true
}

// PointerMove forwards pointer motion in canvas pixels.
func (c *Controller) PointerMove(x, y float32) {
	c.widget.PointerMove(x, y)
}

// PointerLeave forwards the pointer leaving the drawing area.
func (c *Controller) PointerLeave() {
	c.widget.PointerLeave()
}

// Click forwards a primary button press in canvas pixels. When the view
// snaps to the selected face the hover is re-evaluated at (x, y).
func (c *Controller) Click(x, y float32) (lollipop.Selection, bool) {
	sel, ok := c.widget.Click(x, y)
	if ok && c.SnapOnSelect {
		c.widget.PointerMove(x, y)
	}
	return sel, ok
}

// Invalidate forces the next Frame call to repaint.
func (c *Controller) Invalidate() {
	c.dirty = true
}

// Frame repaints the canvas at width x height when a redraw is pending or
// the size changed. It reports whether the returned image is new.
func (c *Controller) Frame(width, height int) (*image.RGBA, bool) {
	if w, h := c.canvas.Size(); !c.dirty && w == width && h == height {
		return c.canvas.Image(), false
	}
	c.canvas.Resize(width, height)
	c.canvas.Reset(Background)
	c.widget.Render(c.canvas, width, height)
	c.dirty = false
	return c.canvas.Image(), true
}
