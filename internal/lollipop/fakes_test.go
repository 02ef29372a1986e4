package lollipop

import "github.com/go-gl/mathgl/mgl32"

// paintOp is a filled or stroked path captured by recordingTarget.
type paintOp struct {
	points []mgl32.Vec2
	color  Color
	width  float32
}

type shownText struct {
	text  string
	x, y  float32
	color Color
}

// recordingTarget is a DrawTarget that keeps everything it is asked to draw.
type recordingTarget struct {
	origin    mgl32.Vec2
	path      []mgl32.Vec2
	closed    bool
	color     Color
	lineWidth float32

	fills   []paintOp
	strokes []paintOp
	texts   []shownText
}

func (r *recordingTarget) Translate(dx, dy float32) {
	r.origin = r.origin.Add(mgl32.Vec2{dx, dy})
}

func (r *recordingTarget) MoveTo(x, y float32) {
	r.path = append(r.path[:0], mgl32.Vec2{x, y})
	r.closed = false
}

func (r *recordingTarget) LineTo(x, y float32) {
	r.path = append(r.path, mgl32.Vec2{x, y})
}

func (r *recordingTarget) ClosePath() {
	r.closed = true
}

func (r *recordingTarget) FillPreserve() {
	r.fills = append(r.fills, paintOp{
		points: append([]mgl32.Vec2(nil), r.path...),
		color:  r.color,
	})
}

func (r *recordingTarget) Stroke() {
	r.strokes = append(r.strokes, paintOp{
		points: append([]mgl32.Vec2(nil), r.path...),
		color:  r.color,
		width:  r.lineWidth,
	})
	r.path = r.path[:0]
	r.closed = false
}

func (r *recordingTarget) SetSourceRGBA(cr, cg, cb, ca float32) {
	r.color = Color{cr, cg, cb, ca}
}

func (r *recordingTarget) SetLineWidth(w float32) {
	r.lineWidth = w
}

// monoLayout measures every rune as charW x lineH pixels.
type monoLayout struct {
	charW, lineH float32
	text         string
	measured     []string
}

func (m *monoLayout) SetText(text string) {
	m.text = text
}

func (m *monoLayout) PixelExtents() (float32, float32) {
	m.measured = append(m.measured, m.text)
	return m.charW * float32(len([]rune(m.text))), m.lineH
}

func (m *monoLayout) ShowAt(target DrawTarget, x, y float32) {
	rt, ok := target.(*recordingTarget)
	if !ok {
		return
	}
	rt.texts = append(rt.texts, shownText{text: m.text, x: x, y: y, color: rt.color})
}

// counter counts redraw requests.
type counter struct {
	n int
}

func (c *counter) inc() {
	c.n++
}
