// Package raster provides a software drawing surface for the lollipop widget,
// built on golang.org/x/image/vector.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/Faultbox/lollipop/internal/lollipop"
)

var _ lollipop.DrawTarget = (*Canvas)(nil)

type point struct {
	x, y float32
}

type subpath struct {
	points []point
	closed bool
}

// Canvas is an RGBA image with a current path, color, line width and origin.
type Canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer

	ox, oy    float32
	paths     []subpath
	color     color.NRGBA
	lineWidth float32
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:       vector.NewRasterizer(width, height),
		color:     color.NRGBA{A: 255},
		lineWidth: 1,
	}
}

// Image returns the backing image. It is reused across frames.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the backing image when the size changes.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if w, h := c.Size(); w == width && h == height {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Reset fills the canvas with bg and clears the path, origin and color.
func (c *Canvas) Reset(bg color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	c.ox, c.oy = 0, 0
	c.paths = c.paths[:0]
	c.color = color.NRGBA{A: 255}
	c.lineWidth = 1
}

// Translate moves the origin.
func (c *Canvas) Translate(dx, dy float32) {
	c.ox += dx
	c.oy += dy
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float32) {
	c.paths = append(c.paths, subpath{points: []point{{c.ox + x, c.oy + y}}})
}

// LineTo extends the current subpath, starting one if there is none.
func (c *Canvas) LineTo(x, y float32) {
	if len(c.paths) == 0 {
		c.MoveTo(x, y)
		return
	}
	sp := &c.paths[len(c.paths)-1]
	sp.points = append(sp.points, point{c.ox + x, c.oy + y})
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if len(c.paths) == 0 {
		return
	}
	c.paths[len(c.paths)-1].closed = true
}

// SetSourceRGBA sets the paint color. Components are clamped to [0, 1].
func (c *Canvas) SetSourceRGBA(r, g, b, a float32) {
	c.color = color.NRGBA{R: to8(r), G: to8(g), B: to8(b), A: to8(a)}
}

// SetLineWidth sets the stroke width in pixels.
func (c *Canvas) SetLineWidth(w float32) {
	c.lineWidth = w
}

// FillPreserve paints the interior of the current path and keeps the path.
func (c *Canvas) FillPreserve() {
	if !c.beginRaster() {
		return
	}
	for _, sp := range c.paths {
		if len(sp.points) < 3 {
			continue
		}
		c.ras.MoveTo(sp.points[0].x, sp.points[0].y)
		for _, p := range sp.points[1:] {
			c.ras.LineTo(p.x, p.y)
		}
		c.ras.ClosePath()
	}
	c.drawRaster()
}

// Stroke paints the outline of the current path and clears it.
// Segments become rectangles of the line width; vertices get square joins.
func (c *Canvas) Stroke() {
	half := c.lineWidth / 2
	if half <= 0 || !c.beginRaster() {
		c.paths = c.paths[:0]
		return
	}

	for _, sp := range c.paths {
		n := len(sp.points)
		for i := 0; i+1 < n; i++ {
			c.addSegment(sp.points[i], sp.points[i+1], half)
		}
		if sp.closed && n > 2 {
			c.addSegment(sp.points[n-1], sp.points[0], half)
		}
		for _, p := range sp.points {
			c.addJoin(p, half)
		}
	}
	c.drawRaster()
	c.paths = c.paths[:0]
}

// beginRaster readies the rasterizer, reporting false for an empty canvas.
func (c *Canvas) beginRaster() bool {
	w, h := c.Size()
	if w == 0 || h == 0 {
		return false
	}
	c.ras.Reset(w, h)
	return true
}

func (c *Canvas) drawRaster() {
	c.ras.DrawOp = draw.Over
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(c.color), image.Point{})
}

// addSegment adds the rectangle around a-b. All shapes share one winding so
// overlaps saturate instead of cancelling.
func (c *Canvas) addSegment(a, b point, half float32) {
	dx, dy := b.x-a.x, b.y-a.y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half
	c.ras.MoveTo(a.x+nx, a.y+ny)
	c.ras.LineTo(b.x+nx, b.y+ny)
	c.ras.LineTo(b.x-nx, b.y-ny)
	c.ras.LineTo(a.x-nx, a.y-ny)
	c.ras.ClosePath()
}

func (c *Canvas) addJoin(p point, half float32) {
	c.ras.MoveTo(p.x-half, p.y-half)
	c.ras.LineTo(p.x-half, p.y+half)
	c.ras.LineTo(p.x+half, p.y+half)
	c.ras.LineTo(p.x+half, p.y-half)
	c.ras.ClosePath()
}

// origin returns the current translation.
func (c *Canvas) origin() (float32, float32) {
	return c.ox, c.oy
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
