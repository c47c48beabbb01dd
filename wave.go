package wavemenu

import (
	"image/color"
	"time"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at fill time.
type Color struct {
	R, G, B, A float64
}

// ColorTransparent is fully transparent black.
var ColorTransparent = Color{}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point used for path coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Phase is the temporal stage of an animation run.
type Phase uint8

const (
	PhaseStart    Phase = iota // wave sweeps from x=0 to the panel width
	PhaseDebounce              // leading edge wobbles around the panel width
	PhaseComplete              // terminal solid rectangle, no rescheduling
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseDebounce:
		return "debounce"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// FillRule selects how a path's interior is determined when filling.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota // nonzero winding
	FillRuleEvenOdd                 // even-odd parity
)

// AnimationConfig describes one wave run. It is copied by value at
// Activate; changing the caller's copy afterwards does not affect a run in
// progress.
type AnimationConfig struct {
	// PanelWidth is the horizontal extent of the fully revealed panel.
	PanelWidth float64
	// WaveAmplitude is the horizontal overshoot during the debounce phase.
	WaveAmplitude float64
	// Duration is the total animation time. Zero or negative completes
	// immediately.
	Duration time.Duration
	// FillColor is a hex color string such as "#757575".
	FillColor string
}

// DefaultAnimationConfig returns the stock menu background settings.
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		PanelWidth:    200,
		WaveAmplitude: 20,
		Duration:      800 * time.Millisecond,
		FillColor:     "#757575",
	}
}

// millis converts a duration to fractional milliseconds.
func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
