// Package window owns the SDL2 window and the streaming texture that
// software-rendered frames are presented through.
package window

import (
	"fmt"
	"image"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/lollipop/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window wraps an SDL2 window, its renderer and one streaming texture
// sized to the last presented frame.
type Window struct {
	config   Config
	log      *zap.Logger
	win      *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	texW     int
	texH     int
}

// New creates a resizable window with an accelerated renderer.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
		log:    logger.Named("window"),
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	var err error
	w.win, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE),
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.win, -1, flags)
	if err != nil {
		w.win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the texture, renderer and window, then shuts SDL down.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.texture != nil {
		_ = w.texture.Destroy()
	}
	if w.renderer != nil {
		_ = w.renderer.Destroy()
	}
	if w.win != nil {
		_ = w.win.Destroy()
	}

	sdl.Quit()
}

// Present uploads img into the streaming texture and shows it stretched
// over the whole window.
func (w *Window) Present(img *image.RGBA) error {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	if err := w.ensureTexture(b.Dx(), b.Dy()); err != nil {
		return err
	}

	pixels, pitch, err := w.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("locking texture: %w", err)
	}
	rowBytes := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(pixels[y*pitch:y*pitch+rowBytes], src[:rowBytes])
	}
	w.texture.Unlock()

	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

func (w *Window) ensureTexture(width, height int) error {
	if w.texture != nil && w.texW == width && w.texH == height {
		return nil
	}
	if w.texture != nil {
		_ = w.texture.Destroy()
		w.texture = nil
	}

	tex, err := w.renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_RGBA32),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(width),
		int32(height),
	)
	if err != nil {
		return fmt.Errorf("SDL_CreateTexture %dx%d failed: %w", width, height, err)
	}
	w.texture, w.texW, w.texH = tex, width, height
	w.log.Debug("texture resized", zap.Int("width", width), zap.Int("height", height))
	return nil
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.win.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}
