package wavemenu

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// slideFraction is how far left of its resting place, as a fraction of the
// panel width, the menu content starts when the menu opens.
const slideFraction = 0.2

// PanelSlide moves the menu content in from the left while the wave opens.
// Call Update(dt) each frame and read Offset. There is no global manager;
// the owner drives it.
type PanelSlide struct {
	tween  *gween.Tween
	offset float64
	Done   bool
}

// NewPanelSlide creates a slide from -0.2*panelWidth to 0 over duration
// using the easing function. A nil fn means linear. A non-positive duration
// yields a slide that is already done.
func NewPanelSlide(panelWidth float64, duration time.Duration, fn ease.TweenFunc) *PanelSlide {
	if duration <= 0 {
		return &PanelSlide{Done: true}
	}
	if fn == nil {
		fn = ease.Linear
	}
	from := -slideFraction * panelWidth
	return &PanelSlide{
		tween:  gween.New(float32(from), 0, float32(duration.Seconds()), fn),
		offset: from,
	}
}

// Update advances the slide by dt seconds.
func (s *PanelSlide) Update(dt float32) {
	if s.Done || s.tween == nil {
		return
	}
	val, finished := s.tween.Update(dt)
	s.offset = float64(val)
	if finished {
		s.offset = 0
		s.Done = true
	}
}

// Offset returns the current horizontal offset in pixels (<= 0).
func (s *PanelSlide) Offset() float64 {
	return s.offset
}
