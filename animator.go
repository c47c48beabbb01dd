package wavemenu

import (
	"errors"
	"fmt"
	"time"
)

// ErrClosed is returned by Activate after Close.
var ErrClosed = errors.New("wavemenu: animator closed")

// Clock returns the current wall-clock time.
type Clock func() time.Time

// Options wires a WaveAnimator to its host. Container, Surface and
// Scheduler are required.
type Options struct {
	Container Container
	Surface   Surface
	Scheduler FrameScheduler
	// Resize, when set, is subscribed for the animator's lifetime.
	Resize ResizeNotifier
	// Clock defaults to time.Now.
	Clock Clock
}

// WaveAnimator paints the wave reveal onto a Surface, one frame per
// scheduler callback, and clears it again on Deactivate.
//
// All methods must be called from the goroutine that drives the scheduler.
type WaveAnimator struct {
	container Container
	surface   Surface
	scheduler FrameScheduler
	now       Clock
	resize    CallbackHandle
	closed    bool
	debug     bool

	// Current run. gen changes on every Activate and Deactivate; a
	// scheduled callback carrying a stale gen does nothing.
	cfg    AnimationConfig
	color  Color
	start  time.Time
	active bool
	gen    uint64
	phase  Phase
}

// NewWaveAnimator creates an inactive animator and subscribes it to resize
// notifications. Call Close to release the subscription.
func NewWaveAnimator(opts Options) *WaveAnimator {
	if opts.Container == nil || opts.Surface == nil || opts.Scheduler == nil {
		panic("wavemenu: NewWaveAnimator requires Container, Surface and Scheduler")
	}
	a := &WaveAnimator{
		container: opts.Container,
		surface:   opts.Surface,
		scheduler: opts.Scheduler,
		now:       opts.Clock,
	}
	if a.now == nil {
		a.now = time.Now
	}
	if opts.Resize != nil {
		a.resize = opts.Resize.OnResize(a.onResize)
	}
	return a
}

// SetDebugMode enables or disables per-frame stats and warnings on stderr.
func (a *WaveAnimator) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// Active reports whether a run is live. A run stays live after painting its
// Complete frame, until Deactivate or the next Activate.
func (a *WaveAnimator) Active() bool {
	return a.active
}

// Phase returns the phase of the most recent frame of the current run.
func (a *WaveAnimator) Phase() Phase {
	return a.phase
}

// Config returns the configuration captured by the current run.
func (a *WaveAnimator) Config() AnimationConfig {
	return a.cfg
}

// Activate starts a new run with cfg, superseding any run in progress. The
// first frame is painted on the next scheduler callback. cfg is copied; later
// changes to the caller's value do not affect the run.
func (a *WaveAnimator) Activate(cfg AnimationConfig) error {
	if a.closed {
		return ErrClosed
	}
	c, err := ParseColor(cfg.FillColor)
	if err != nil {
		return fmt.Errorf("activate: %w", err)
	}

	a.gen++
	a.cfg = cfg
	a.color = c
	a.start = a.now()
	a.active = true
	a.phase = PhaseStart
	a.schedule(a.gen)
	return nil
}

// Deactivate stops the current run and clears the surface. Callbacks
// already queued for the run become no-ops.
func (a *WaveAnimator) Deactivate() {
	a.active = false
	a.gen++
	a.Measure()
	a.surface.Clear()
}

// Close deactivates the animator and releases its resize subscription. It
// is safe to call more than once and always returns nil.
func (a *WaveAnimator) Close() error {
	if a.closed {
		return nil
	}
	a.Deactivate()
	a.resize.Remove()
	a.closed = true
	return nil
}

// Measure copies the container's current box onto the surface and returns
// the resulting pixel size.
func (a *WaveAnimator) Measure() (width, height int) {
	w, h := a.container.Bounds()
	width, height = int(max(w, 0)), int(max(h, 0))
	a.surface.Resize(width, height)
	return width, height
}

// onResize re-measures the surface. A settled run gets its final frame
// back, since resizing may have discarded the surface's pixels.
func (a *WaveAnimator) onResize() {
	w, h := a.Measure()
	if !a.active || a.phase != PhaseComplete || w == 0 || h == 0 {
		return
	}
	sil := Geometry(a.elapsed(), a.cfg, float64(h))
	if err := a.paint(&sil); err != nil && a.debug {
		debugWarn("resize repaint: %v", err)
	}
}

func (a *WaveAnimator) schedule(gen uint64) {
	a.scheduler.RequestFrame(func() { a.frame(gen) })
}

// elapsed returns the milliseconds since the current run started.
func (a *WaveAnimator) elapsed() float64 {
	return millis(a.now().Sub(a.start))
}

// frame is the scheduler callback for run gen.
func (a *WaveAnimator) frame(gen uint64) {
	if gen != a.gen || !a.active {
		return
	}

	var stats frameStats
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	elapsed := a.elapsed()
	w, h := a.Measure()
	sil := Geometry(elapsed, a.cfg, float64(h))
	a.phase = sil.Phase

	if a.debug {
		stats = frameStats{run: gen, phase: sil.Phase, elapsed: elapsed, edge: sil.Edge, width: w, height: h}
		stats.measureTime = time.Since(t0)
		t0 = time.Now()
	}

	var err error
	if w == 0 || h == 0 {
		err = ErrEmptySurface
	} else {
		err = a.paint(&sil)
	}

	if a.debug {
		stats.paintTime = time.Since(t0)
		stats.err = err
		debugLog(stats)
	}

	// A Complete frame that did not land is retried next frame.
	if sil.Phase != PhaseComplete || err != nil {
		a.schedule(gen)
	}
}

// paint clears the surface and fills the silhouette.
func (a *WaveAnimator) paint(sil *Silhouette) error {
	a.surface.Clear()
	return a.surface.FillPath(&sil.Path, sil.Rule, a.color)
}
