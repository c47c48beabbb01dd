// Package wavemenu renders the wave-shaped reveal behind a sliding side menu
// on [Ebitengine].
//
// When the menu opens, a wave sweeps from the left edge of the surface to
// the panel width, wobbles around it, and settles into a solid panel. When
// the menu closes the surface is cleared.
//
// # Quick start
//
// The simplest way to get started is [Run] with a [Host], which owns the
// surface, the frame loop and the open/closed toggle:
//
//	host := wavemenu.NewHost(wavemenu.DefaultMenuConfig(), nil)
//	host.SetUpdateFunc(func() error {
//		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
//			return host.Toggle()
//		}
//		return nil
//	})
//	wavemenu.Run(host, wavemenu.RunConfig{Title: "Menu", Width: 640, Height: 480})
//
// For full control, create a [WaveAnimator] with your own [Surface],
// [Container] and [FrameScheduler], and tick a [FrameQueue] from your
// game's Update:
//
//	surface := wavemenu.NewImageSurface(0, 0)
//	var frames wavemenu.FrameQueue
//	var resize wavemenu.ResizeHub
//	anim := wavemenu.NewWaveAnimator(wavemenu.Options{
//		Container: wavemenu.ContainerFunc(func() (float64, float64) { return 320, 480 }),
//		Surface:   surface,
//		Scheduler: &frames,
//		Resize:    &resize,
//	})
//	defer anim.Close()
//	anim.Activate(wavemenu.DefaultAnimationConfig())
//
// # Phases
//
// Every frame is derived from the time elapsed since [WaveAnimator.Activate]:
//
//   - Start, the first half of the duration: the leading edge sweeps from 0
//     to the panel width.
//   - Debounce, the second half: the edge overshoots, undershoots and
//     overshoots again by the wave amplitude in six equal stages.
//   - Complete: a plain rectangle; no more frames are requested.
//
// [Geometry] and [Classify] expose the same math as pure functions.
//
// [Ebitengine]: https://ebitengine.org
package wavemenu
