package termview

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Faultbox/lollipop/internal/config"
	"github.com/Faultbox/lollipop/internal/lollipop"
)

func newSimViewer(t *testing.T, cols, rows int) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(cols, rows)
	t.Cleanup(sim.Fini)

	v, err := New(config.Default(), sim, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })
	return v, sim
}

func TestCellToPixel(t *testing.T) {
	x, y := cellToPixel(0, 0)
	assert.Equal(t, float32(0.5), x)
	assert.Equal(t, float32(1), y)

	x, y = cellToPixel(10, 7)
	assert.Equal(t, float32(10.5), x)
	assert.Equal(t, float32(15), y)
}

func TestBlitHalfBlocks(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	defer sim.Fini()
	sim.SetSize(4, 4)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	blit(sim, img)

	r, _, style, _ := sim.GetContent(0, 0)
	assert.Equal(t, halfBlock, r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)

	_, _, style, _ = sim.GetContent(1, 0)
	fg, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), bg)
}

func TestPixelAreaReservesStatusLine(t *testing.T) {
	v, _ := newSimViewer(t, 80, 41)
	w, h := v.pixelArea()
	assert.Equal(t, 80, w)
	assert.Equal(t, 80, h)
}

func TestMouseClickSelectsFace(t *testing.T) {
	v, sim := newSimViewer(t, 80, 41)
	v.draw()

	// Hover first: motion alone never selects
	assert.True(t, v.handleEvent(tcell.NewEventMouse(40, 20, tcell.ButtonNone, tcell.ModNone)))
	id, ok := v.ctrl.Widget().Hovered()
	require.True(t, ok)
	assert.Equal(t, lollipop.FaceNegZ, id)
	_, ok = v.ctrl.Selection()
	assert.False(t, ok)

	assert.True(t, v.handleEvent(tcell.NewEventMouse(40, 20, tcell.Button1, tcell.ModNone)))
	sel, ok := v.ctrl.Selection()
	require.True(t, ok)
	assert.Equal(t, "-Z", sel.Label)

	v.draw()
	_, rows := sim.Size()
	var line []rune
	for x := 0; x < 6; x++ {
		r, _, _, _ := sim.GetContent(x, rows-1)
		line = append(line, r)
	}
	assert.Equal(t, "face -", string(line))
}

func TestHeldButtonClicksOnce(t *testing.T) {
	v, _ := newSimViewer(t, 80, 41)
	v.draw()

	// Press outside the cube, then drag onto it with the button held
	v.handleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	v.handleEvent(tcell.NewEventMouse(40, 20, tcell.Button1, tcell.ModNone))
	_, ok := v.ctrl.Selection()
	assert.False(t, ok, "only the press edge clicks")

	v.handleEvent(tcell.NewEventMouse(40, 20, tcell.ButtonNone, tcell.ModNone))
	v.handleEvent(tcell.NewEventMouse(40, 20, tcell.Button1, tcell.ModNone))
	_, ok = v.ctrl.Selection()
	assert.True(t, ok)
}

func TestMouseOnStatusLineClearsHover(t *testing.T) {
	v, _ := newSimViewer(t, 80, 41)
	v.draw()

	v.handleEvent(tcell.NewEventMouse(40, 20, tcell.ButtonNone, tcell.ModNone))
	_, ok := v.ctrl.Widget().Hovered()
	require.True(t, ok)

	v.handleEvent(tcell.NewEventMouse(40, 40, tcell.ButtonNone, tcell.ModNone))
	_, ok = v.ctrl.Widget().Hovered()
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	v, _ := newSimViewer(t, 80, 41)

	before := v.ctrl.Widget().Orientation()
	assert.True(t, v.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.NotEqual(t, before, v.ctrl.Widget().Orientation())

	assert.True(t, v.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.True(t, before.ApproxEqualThreshold(v.ctrl.Widget().Orientation(), 1e-5))

	assert.True(t, v.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.False(t, v.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, v.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRunStopsOnCancel(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	v, err := New(config.Default(), sim, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer v.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, v.Run(ctx))
}
