package lollipop

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// DefaultSize is the preferred content width and height in pixels.
const DefaultSize = 100

// DefaultMinMargin is the smallest label margin, used when labels measure
// smaller or no text layout is available.
const DefaultMinMargin = 5

// Selection is emitted when a face is clicked.
type Selection struct {
	Face FaceID
	// Label is the canonical signed label, e.g. "+X".
	Label string
}

// Config holds widget construction parameters.
type Config struct {
	// Layout measures and draws face labels. Nil disables labels.
	Layout TextLayout
	// MinMargin overrides DefaultMinMargin when positive.
	MinMargin float32
	// Logger receives hover and selection events. Nil disables logging.
	Logger *zap.Logger
}

// Widget is the axes lollipop component. All methods must be called from the
// host's single UI thread.
type Widget struct {
	orientation mgl32.Quat
	layout      TextLayout
	margin      float32

	hovered  FaceID
	hovering bool

	// Viewport of the last Render call.
	width  int
	height int

	onRedraw func()
	onSelect func(Selection)

	log *zap.Logger
}

// New creates a widget showing the identity orientation.
func New(cfg Config) *Widget {
	w := &Widget{
		orientation: mgl32.QuatIdent(),
		layout:      cfg.Layout,
		margin:      DefaultMinMargin,
		log:         cfg.Logger,
	}
	if cfg.MinMargin > 0 {
		w.margin = cfg.MinMargin
	}
	if w.log == nil {
		w.log = zap.NewNop()
	}
	w.margin = labelMargin(w.layout, w.margin)
	return w
}

// labelMargin grows margin to fit the widest or tallest axis letter.
func labelMargin(layout TextLayout, margin float32) float32 {
	if layout == nil {
		return margin
	}
	for _, ax := range []Axis{AxisX, AxisY, AxisZ} {
		layout.SetText(ax.String())
		w, h := layout.PixelExtents()
		margin = max(margin, w, h)
	}
	return margin
}

// OnRedraw registers the host callback that schedules a repaint.
// Requests may repeat before the repaint happens.
func (w *Widget) OnRedraw(fn func()) {
	w.onRedraw = fn
}

// OnSelect registers the consumer of click selections.
func (w *Widget) OnSelect(fn func(Selection)) {
	w.onSelect = fn
}

func (w *Widget) requestRedraw() {
	if w.onRedraw != nil {
		w.onRedraw()
	}
}

// SetOrientation replaces the view orientation and requests a redraw.
// q must be a unit quaternion; it is not validated.
func (w *Widget) SetOrientation(q mgl32.Quat) {
	w.orientation = q
	w.requestRedraw()
}

// Orientation returns the current view orientation.
func (w *Widget) Orientation() mgl32.Quat {
	return w.orientation
}

// Margin returns the label margin in pixels.
func (w *Widget) Margin() float32 {
	return w.margin
}

// Hovered returns the face under the pointer, if any.
func (w *Widget) Hovered() (FaceID, bool) {
	return w.hovered, w.hovering
}

// Viewport returns the size passed to the last Render call.
func (w *Widget) Viewport() (width, height int) {
	return w.width, w.height
}

// transform is shared by Render and FaceAt so that painted and hit regions
// always coincide.
func (w *Widget) transform(width, height int) Transformed {
	return TransformCube(w.orientation, Scale(width, height, w.margin))
}

// Render draws the cube into target for a width x height viewport and
// remembers the viewport for hit-testing.
func (w *Widget) Render(target DrawTarget, width, height int) {
	w.width = width
	w.height = height

	t := w.transform(width, height)
	target.Translate(float32(width)/2, float32(height)/2)
	faces := paint(target, w.layout, &t, w.hovered, w.hovering)

	if ce := w.log.Check(zap.DebugLevel, "rendered"); ce != nil {
		ce.Write(zap.Int("width", width), zap.Int("height", height), zap.Int("faces", len(faces)))
	}
}

// FaceAt returns the visible face under the viewport point (x, y).
// It reports false until Render has run with a non-empty viewport.
func (w *Widget) FaceAt(x, y float32) (FaceID, bool) {
	if w.width <= 0 || w.height <= 0 {
		return 0, false
	}
	t := w.transform(w.width, w.height)
	p := mgl32.Vec2{x - float32(w.width)/2, y - float32(w.height)/2}
	return t.HitTest(p)
}

// PointerMove updates the hovered face and requests a redraw when it changes.
func (w *Widget) PointerMove(x, y float32) {
	id, ok := w.FaceAt(x, y)
	if ok == w.hovering && (!ok || id == w.hovered) {
		return
	}
	w.hovered, w.hovering = id, ok
	if ok {
		w.log.Debug("hover", zap.Stringer("face", id))
	} else {
		w.log.Debug("hover cleared")
	}
	w.requestRedraw()
}

// PointerLeave clears the hovered face.
func (w *Widget) PointerLeave() {
	if !w.hovering {
		return
	}
	w.hovered, w.hovering = 0, false
	w.log.Debug("hover cleared", zap.String("reason", "leave"))
	w.requestRedraw()
}

// Click hit-tests (x, y) and emits a Selection when a face is hit.
// It does not depend on, or change, the hover state.
func (w *Widget) Click(x, y float32) (Selection, bool) {
	id, ok := w.FaceAt(x, y)
	if !ok {
		return Selection{}, false
	}
	sel := Selection{Face: id, Label: id.String()}
	w.log.Info("face selected", zap.Int("face_id", int(id)), zap.String("face", sel.Label))
	if w.onSelect != nil {
		w.onSelect(sel)
	}
	return sel, true
}
