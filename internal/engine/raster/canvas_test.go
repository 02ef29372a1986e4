package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lollipop/internal/lollipop"
)

var white = color.RGBA{255, 255, 255, 255}

func square(c *Canvas, x0, y0, x1, y1 float32) {
	c.MoveTo(x0, y0)
	c.LineTo(x1, y0)
	c.LineTo(x1, y1)
	c.LineTo(x0, y1)
	c.ClosePath()
}

func assertNear(t *testing.T, want, got color.RGBA, tol int) {
	t.Helper()
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			return -d
		}
		return d
	}
	ok := diff(want.R, got.R) <= tol && diff(want.G, got.G) <= tol &&
		diff(want.B, got.B) <= tol && diff(want.A, got.A) <= tol
	assert.True(t, ok, "want %v, got %v", want, got)
}

func TestFillPreserveKeepsPath(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Reset(white)

	square(c, 5, 5, 15, 15)
	c.SetSourceRGBA(1, 0, 0, 1)
	c.FillPreserve()

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c.Image().RGBAAt(10, 10))
	assert.Equal(t, white, c.Image().RGBAAt(2, 2))
	require.Len(t, c.paths, 1, "fill keeps the path for stroking")

	c.SetSourceRGBA(0, 0, 0, 1)
	c.SetLineWidth(2)
	c.Stroke()
	assert.Empty(t, c.paths)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, c.Image().RGBAAt(5, 10))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c.Image().RGBAAt(10, 10), "stroke leaves the interior")
}

func TestFillBlendsAlpha(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Reset(white)

	square(c, 0, 0, 10, 10)
	c.SetSourceRGBA(0, 0, 1, 0.5)
	c.FillPreserve()

	assertNear(t, color.RGBA{127, 127, 255, 255}, c.Image().RGBAAt(5, 5), 2)
}

func TestTranslate(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Reset(white)
	c.Translate(10, 10)

	square(c, -2, -2, 2, 2)
	c.SetSourceRGBA(0, 1, 0, 1)
	c.FillPreserve()

	assert.Equal(t, color.RGBA{0, 255, 0, 255}, c.Image().RGBAAt(10, 10))
	assert.Equal(t, white, c.Image().RGBAAt(1, 1))

	c.Reset(white)
	square(c, 0, 0, 4, 4)
	c.FillPreserve()
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, c.Image().RGBAAt(1, 1), "reset restores origin and color")
}

func TestStrokeSegmentOverlapSaturates(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Reset(white)
	c.SetLineWidth(2)

	// Two strokes crossing at (10, 10).
	c.MoveTo(2, 10)
	c.LineTo(18, 10)
	c.MoveTo(10, 2)
	c.LineTo(10, 18)
	c.SetSourceRGBA(0, 0, 0, 1)
	c.Stroke()

	assert.Equal(t, color.RGBA{0, 0, 0, 255}, c.Image().RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, c.Image().RGBAAt(10, 9))
	assert.Equal(t, white, c.Image().RGBAAt(4, 4))
}

func TestResize(t *testing.T) {
	c := NewCanvas(10, 10)
	img := c.Image()
	c.Resize(10, 10)
	assert.Same(t, img, c.Image())

	c.Resize(30, 15)
	w, h := c.Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 15, h)

	c.Resize(-1, 5)
	w, _ = c.Size()
	assert.Zero(t, w)

	// Drawing on an empty canvas is a no-op and drops the path
	c.MoveTo(0, 0)
	c.LineTo(3, 0)
	c.LineTo(3, 3)
	c.ClosePath()
	assert.NotPanics(t, c.FillPreserve)
	assert.NotPanics(t, c.Stroke)
	assert.Empty(t, c.paths)
}

func TestSetSourceClamps(t *testing.T) {
	c := NewCanvas(1, 1)
	c.SetSourceRGBA(-1, 0.5, 2, 1)
	assert.Equal(t, color.NRGBA{0, 128, 255, 255}, c.color)
}

func TestWidgetRendersIntoCanvas(t *testing.T) {
	text, err := NewText(DefaultFontSize)
	require.NoError(t, err)
	defer text.Close()

	w := lollipop.New(lollipop.Config{Layout: text})
	c := NewCanvas(200, 200)
	c.Reset(white)
	w.Render(c, 200, 200)

	// Identity: the -Z face fills the middle, blended at 70% over white.
	base := lollipop.FaceColor(lollipop.FaceFor(lollipop.AxisZ, false))
	blend := func(v float32) uint8 {
		return uint8(v*255*lollipop.FillAlpha + 255*(1-lollipop.FillAlpha) + 0.5)
	}
	want := color.RGBA{blend(base.R), blend(base.G), blend(base.B), 255}
	assertNear(t, want, c.Image().RGBAAt(140, 140), 3)

	// Corners stay background.
	assert.Equal(t, white, c.Image().RGBAAt(1, 1))

	// The label darkens some pixels around the center.
	dark := 0
	for y := 85; y < 115; y++ {
		for x := 85; x < 115; x++ {
			p := c.Image().RGBAAt(x, y)
			if p.R < 40 && p.G < 40 && p.B < 40 {
				dark++
			}
		}
	}
	assert.Positive(t, dark)
}
