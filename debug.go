package meshwarp

import "fmt"

// debugCheck panics with a descriptive message when g breaks the lattice
// invariant. Only active in debug mode.
func (e *Engine) debugCheck(g *Grid, op string) {
	if !e.debug {
		return
	}
	if !g.valid() {
		panic(fmt.Sprintf("meshwarp debug: %s left %dx%d grid with %d points, %d reference, %d relative",
			op, g.rows, g.cols, len(g.points), len(g.reference), len(g.relative)))
	}
	for i, p := range g.points {
		if !finite(p.X) || !finite(p.Y) {
			panic(fmt.Sprintf("meshwarp debug: %s left non-finite point %d (%v)", op, i, p))
		}
	}
}
