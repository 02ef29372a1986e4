package lollipop

// DrawTarget is the drawing surface a host hands to Render.
// It follows the usual current-path model: path calls build a path, FillPreserve
// paints it and keeps it, Stroke paints the outline and clears it.
type DrawTarget interface {
	// Translate moves the origin of subsequent path coordinates.
	Translate(dx, dy float32)
	MoveTo(x, y float32)
	LineTo(x, y float32)
	ClosePath()
	FillPreserve()
	Stroke()
	SetSourceRGBA(r, g, b, a float32)
	SetLineWidth(w float32)
}

// TextLayout measures and draws short single-line labels in a bold face.
// A layout is cheap to keep around; it is not tied to a single DrawTarget.
type TextLayout interface {
	SetText(text string)
	// PixelExtents returns the logical width and height of the current text.
	PixelExtents() (w, h float32)
	// ShowAt draws the current text with its top-left corner at (x, y), in
	// target's current color and coordinate system.
	ShowAt(target DrawTarget, x, y float32)
}

// Paint parameters.
const (
	LineWidth = 1.5
	FillAlpha = 0.7
	HoverGain = 1.4
)

// paint draws the visible faces of t into target, farthest first. The origin
// of target must already be at the viewport center.
func paint(target DrawTarget, layout TextLayout, t *Transformed, hovered FaceID, hovering bool) []DepthFace {
	target.SetLineWidth(LineWidth)

	faces := t.VisibleFaces()
	for _, df := range faces {
		f := df.Face
		color := FaceColor(f)
		if hovering && f.ID == hovered {
			color = color.Brighten(HoverGain)
		}

		q := t.Quad(f)
		target.MoveTo(q[0].X(), q[0].Y())
		target.LineTo(q[1].X(), q[1].Y())
		target.LineTo(q[2].X(), q[2].Y())
		target.LineTo(q[3].X(), q[3].Y())
		target.ClosePath()
		setSource(target, color.WithAlpha(FillAlpha))
		target.FillPreserve()

		setSource(target, ColorBlack)
		target.Stroke()

		if f.Label == "" || layout == nil {
			continue
		}
		layout.SetText(f.Label)
		w, h := layout.PixelExtents()
		c := t.Centroid(f)
		setSource(target, ColorBlack)
		layout.ShowAt(target, c.X()-w/2, c.Y()-h/2)
	}
	return faces
}

func setSource(target DrawTarget, c Color) {
	target.SetSourceRGBA(c.R, c.G, c.B, c.A)
}
