package wavemenu

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS prints the current FPS and TPS in the top-left corner.
	ShowFPS bool
}

// Host is a ready-made application shell: an ebiten.Game that owns the
// wave surface, the frame queue that drives it, the resize notifications
// fired from Layout and the open/closed menu toggle.
//
// For full control, build a WaveAnimator yourself and call FrameQueue.Tick
// from your own Update.
type Host struct {
	menu MenuConfig
	open bool
	box  Rect

	resize   ResizeHub
	frames   FrameQueue
	surface  *ImageSurface
	animator *WaveAnimator
	slide    *PanelSlide

	// ClearColor fills the screen before the surface is drawn. The zero
	// value leaves the screen untouched.
	ClearColor Color
	// OnDraw runs after the surface is drawn; use it for menu content.
	OnDraw func(screen *ebiten.Image)
	// ShowFPS prints FPS and TPS on top of everything else.
	ShowFPS bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	screenshotQueue []string
	script          *ScriptRunner
	updateFunc      func() error
}

// NewHost creates a closed menu host. A nil clock means time.Now.
func NewHost(menu MenuConfig, clock Clock) *Host {
	h := &Host{
		menu:          menu,
		surface:       NewImageSurface(0, 0),
		ScreenshotDir: "screenshots",
	}
	h.animator = NewWaveAnimator(Options{
		Container: ContainerFunc(h.bounds),
		Surface:   h.surface,
		Scheduler: &h.frames,
		Resize:    &h.resize,
		Clock:     clock,
	})
	return h
}

func (h *Host) bounds() (width, height float64) {
	return h.box.Width, h.box.Height
}

// Animator returns the host's wave animator.
func (h *Host) Animator() *WaveAnimator {
	return h.animator
}

// Surface returns the offscreen surface the wave is painted into.
func (h *Host) Surface() *ImageSurface {
	return h.surface
}

// Frames returns the frame queue ticked once per Update.
func (h *Host) Frames() *FrameQueue {
	return &h.frames
}

// MenuConfig returns the configuration used for the next open.
func (h *Host) MenuConfig() MenuConfig {
	return h.menu
}

// SetMenuConfig replaces the configuration. An open menu keeps running with
// the settings it was opened with; the new ones apply from the next open.
func (h *Host) SetMenuConfig(cfg MenuConfig) {
	h.menu = cfg
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (h *Host) SetUpdateFunc(fn func() error) {
	h.updateFunc = fn
}

// IsOpen reports whether the menu is open.
func (h *Host) IsOpen() bool {
	return h.open
}

// OpenMenu starts the wave reveal and the content slide. Opening an open
// menu does nothing.
func (h *Host) OpenMenu() error {
	if h.open {
		return nil
	}
	cfg := h.menu.Animation
	if err := h.animator.Activate(cfg); err != nil {
		return fmt.Errorf("open menu: %w", err)
	}
	h.slide = NewPanelSlide(cfg.PanelWidth, cfg.Duration, nil)
	h.open = true
	return nil
}

// CloseMenu stops the animation and clears the surface.
func (h *Host) CloseMenu() {
	if !h.open {
		return
	}
	h.animator.Deactivate()
	h.slide = nil
	h.open = false
}

// Toggle opens a closed menu and closes an open one.
func (h *Host) Toggle() error {
	if h.open {
		h.CloseMenu()
		return nil
	}
	return h.OpenMenu()
}

// ContentX returns the x coordinate where menu content starts, including
// the slide-in offset while the menu is opening.
func (h *Host) ContentX() float64 {
	x := h.box.X + h.menu.ContentMargin
	if h.slide != nil {
		x += h.slide.Offset()
	}
	return x
}

// Resize sets the container box size and notifies resize subscribers when
// it changed.
func (h *Host) Resize(width, height int) {
	fw, fh := float64(width), float64(height)
	if fw == h.box.Width && fh == h.box.Height {
		return
	}
	h.box.Width, h.box.Height = fw, fh
	h.resize.Notify()
}

// Layout implements ebiten.Game. The container tracks the window size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Update implements ebiten.Game: it advances the script runner, the content
// slide and every pending frame callback.
func (h *Host) Update() error {
	if h.script != nil {
		if err := h.script.step(h); err != nil {
			return err
		}
	}
	if h.slide != nil {
		h.slide.Update(float32(1.0 / float64(ebiten.TPS())))
	}
	h.frames.Tick()
	if h.updateFunc != nil {
		return h.updateFunc()
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.ClearColor.A > 0 {
		screen.Fill(h.ClearColor.toRGBA())
	}
	if img := h.surface.Image(); img != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(h.box.X, h.box.Y)
		screen.DrawImage(img, &op)
	}
	if h.OnDraw != nil {
		h.OnDraw(screen)
	}
	if h.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	h.flushScreenshots(screen)
}

// Dispose closes the animator, releasing its resize subscription, and frees
// the surface. The host must not be used afterwards.
func (h *Host) Dispose() {
	_ = h.animator.Close()
	h.surface.Dispose()
	h.open = false
	h.slide = nil
}

// Run opens a window and runs h as the game until the window closes.
func Run(h *Host, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	h.ShowFPS = cfg.ShowFPS
	defer h.Dispose()
	return ebiten.RunGame(h)
}
