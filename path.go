package wavemenu

import "github.com/hajimehoshi/ebiten/v2/vector"

// PathOp identifies a path command.
type PathOp uint8

const (
	PathMoveTo PathOp = iota // start a new subpath at Points[0]
	PathLineTo               // straight segment to Points[0]
	PathQuadTo               // quadratic curve with control Points[0] ending at Points[1]
	PathClose                // close the current subpath
)

// PathCommand is one recorded drawing command.
type PathCommand struct {
	Op     PathOp
	Points [2]Vec2
}

// Path is a recorded sequence of move, line, quadratic and close commands.
// The zero value is an empty path ready for use.
type Path struct {
	cmds []PathCommand
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, PathCommand{Op: PathMoveTo, Points: [2]Vec2{{x, y}}})
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, PathCommand{Op: PathLineTo, Points: [2]Vec2{{x, y}}})
}

// QuadTo adds a quadratic Bézier curve through control point (cx, cy)
// ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.cmds = append(p.cmds, PathCommand{Op: PathQuadTo, Points: [2]Vec2{{cx, cy}, {x, y}}})
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() {
	p.cmds = append(p.cmds, PathCommand{Op: PathClose})
}

// Reset empties the path, keeping its backing storage.
func (p *Path) Reset() {
	p.cmds = p.cmds[:0]
}

// Commands returns the recorded commands. The returned slice MUST NOT be mutated.
func (p *Path) Commands() []PathCommand {
	return p.cmds
}

// Len returns the number of recorded commands.
func (p *Path) Len() int {
	return len(p.cmds)
}

// Bounds returns the axis-aligned box of every point the path references,
// control points included.
func (p *Path) Bounds() Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for i := range p.cmds {
		cmd := &p.cmds[i]
		n := 1
		switch cmd.Op {
		case PathClose:
			continue
		case PathQuadTo:
			n = 2
		}
		for j := 0; j < n; j++ {
			pt := cmd.Points[j]
			if first {
				minX, maxX, minY, maxY = pt.X, pt.X, pt.Y, pt.Y
				first = false
				continue
			}
			minX = min(minX, pt.X)
			maxX = max(maxX, pt.X)
			minY = min(minY, pt.Y)
			maxY = max(maxY, pt.Y)
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// vectorPath replays the commands onto an ebiten vector.Path.
func (p *Path) vectorPath() *vector.Path {
	var vp vector.Path
	for i := range p.cmds {
		cmd := &p.cmds[i]
		a, b := cmd.Points[0], cmd.Points[1]
		switch cmd.Op {
		case PathMoveTo:
			vp.MoveTo(float32(a.X), float32(a.Y))
		case PathLineTo:
			vp.LineTo(float32(a.X), float32(a.Y))
		case PathQuadTo:
			vp.QuadTo(float32(a.X), float32(a.Y), float32(b.X), float32(b.Y))
		case PathClose:
			vp.Close()
		}
	}
	return &vp
}
