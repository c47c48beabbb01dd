package wavemenu

import "math"

// debounceStages is the number of equal slices the debounce half is cut into.
const debounceStages = 6

// startSpreadFloor keeps the start-phase curve from collapsing at the edge.
const startSpreadFloor = 0.5

// Silhouette is the filled shape for one frame.
type Silhouette struct {
	Phase Phase
	// Edge is the leading edge: the sweep position during Start, the
	// wobbling shift during Debounce and the panel width once Complete.
	Edge float64
	// Spread scales Edge to the corner x during Start; 1 otherwise.
	Spread float64
	Path   Path
	Rule   FillRule
}

// Classify returns the phase an animation is in after elapsed milliseconds
// of a run lasting duration milliseconds. Negative elapsed is Start; a
// non-positive duration is always Complete.
func Classify(elapsed, duration float64) Phase {
	if duration <= 0 || elapsed >= duration {
		return PhaseComplete
	}
	if elapsed < duration/2 {
		return PhaseStart
	}
	return PhaseDebounce
}

// Geometry computes the silhouette for a surface of the given height after
// elapsed milliseconds. It keeps no state: every frame is derived from the
// absolute elapsed time.
func Geometry(elapsed float64, cfg AnimationConfig, height float64) Silhouette {
	s := Silhouette{Spread: 1, Rule: FillRuleEvenOdd}
	s.Phase = Classify(elapsed, millis(cfg.Duration))
	switch s.Phase {
	case PhaseStart:
		s.Edge, s.Spread = startEdge(elapsed, cfg)
		wavePath(&s.Path, s.Edge*s.Spread, s.Edge, height)
	case PhaseDebounce:
		s.Edge = debounceShift(elapsed, cfg)
		wavePath(&s.Path, s.Edge, cfg.PanelWidth, height)
	default:
		s.Edge = cfg.PanelWidth
		s.Path.MoveTo(0, 0)
		s.Path.LineTo(cfg.PanelWidth, 0)
		s.Path.LineTo(cfg.PanelWidth, height)
		s.Path.LineTo(0, height)
		s.Path.Close()
	}
	return s
}

// wavePath builds the closed wave outline: corners at x=edge, curve bulging
// through (ctrlX, height/2).
func wavePath(p *Path, edge, ctrlX, height float64) {
	p.MoveTo(0, 0)
	p.LineTo(edge, 0)
	p.QuadTo(ctrlX, height/2, edge, height)
	p.LineTo(0, height)
	p.Close()
}

// startEdge returns the leading edge and the curve spread during the
// opening sweep. The edge reaches PanelWidth exactly at half the duration.
func startEdge(elapsed float64, cfg AnimationConfig) (edge, spread float64) {
	progress := elapsed / millis(cfg.Duration) * 2
	if progress < 0 {
		progress = 0
	}
	return progress * cfg.PanelWidth, max(progress, startSpreadFloor)
}

// debounceShift returns the wobbling edge position during the second half.
// Stages 0-1 overshoot and return, 2-3 undershoot and return, 4-5 overshoot
// and return, landing on PanelWidth at the end of stage 5.
func debounceShift(elapsed float64, cfg AnimationConfig) float64 {
	half := millis(cfg.Duration) / 2
	stageTime := half / debounceStages
	t := elapsed - half
	stage := int(math.Floor(t / stageTime))
	stage = max(0, min(stage, debounceStages-1))
	inStage := t - stageTime*float64(stage)
	amp := cfg.WaveAmplitude
	speed := amp * debounceStages / half

	shift := cfg.PanelWidth
	switch stage {
	case 0, 4:
		shift += speed * inStage
	case 1, 5:
		shift += amp - speed*inStage
	case 2:
		shift -= speed * inStage
	case 3:
		shift += speed*inStage - amp
	}
	return shift
}
