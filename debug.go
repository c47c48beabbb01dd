package wavemenu

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// debugOutput receives debug-mode diagnostics.
var debugOutput io.Writer = os.Stderr

// frameStats holds per-frame timing and geometry.
// Only populated when the animator's debug flag is set.
type frameStats struct {
	run         uint64
	phase       Phase
	elapsed     float64
	edge        float64
	width       int
	height      int
	measureTime time.Duration
	paintTime   time.Duration
	err         error
}

// debugLog prints one frame's stats, or a warning when the frame was skipped.
func debugLog(stats frameStats) {
	switch {
	case errors.Is(stats.err, ErrEmptySurface):
		debugWarn("surface is %dx%d, %s frame skipped (run %d)",
			stats.width, stats.height, stats.phase, stats.run)
		return
	case stats.err != nil:
		debugWarn("%s frame failed (run %d): %v", stats.phase, stats.run, stats.err)
		return
	}
	_, _ = fmt.Fprintf(debugOutput,
		"[wavemenu] run %d | %s | elapsed: %.1fms | edge: %.1f | surface: %dx%d | measure: %v | paint: %v\n",
		stats.run, stats.phase, stats.elapsed, stats.edge, stats.width, stats.height,
		stats.measureTime, stats.paintTime)
}

func debugWarn(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOutput, "[wavemenu] warning: "+format+"\n", args...)
}
