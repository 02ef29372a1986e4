package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/lollipop/internal/lollipop"
)

var _ lollipop.TextLayout = (*Text)(nil)

// DefaultFontSize is the label size in pixels.
const DefaultFontSize = 13

// Text is a single-line bold text layout backed by the Go Bold font.
type Text struct {
	face font.Face
	text string
}

// NewText creates a layout with a Go Bold face of size pixels.
func NewText(size float64) (*Text, error) {
	if size <= 0 {
		size = DefaultFontSize
	}
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return &Text{face: face}, nil
}

// Close releases the font face.
func (t *Text) Close() error {
	return t.face.Close()
}

// SetText replaces the layout text.
func (t *Text) SetText(text string) {
	t.text = text
}

// PixelExtents returns the advance width and line height of the text.
func (t *Text) PixelExtents() (float32, float32) {
	adv := font.MeasureString(t.face, t.text)
	return float32(adv.Ceil()), float32(t.face.Metrics().Height.Ceil())
}

// ShowAt draws the text with its top-left corner at (x, y). Only *Canvas
// targets can receive glyphs; other targets are left untouched.
func (t *Text) ShowAt(target lollipop.DrawTarget, x, y float32) {
	c, ok := target.(*Canvas)
	if !ok || t.text == "" {
		return
	}
	ox, oy := c.origin()
	ascent := t.face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.color),
		Face: t.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6((ox + x) * 64),
			Y: fixed.Int26_6((oy+y)*64) + ascent,
		},
	}
	d.DrawString(t.text)
}
