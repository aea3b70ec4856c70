package graph

import (
	"math"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/veqgo/veq"
)

// Point is a sample of the equation in domain coordinates.
type Point struct {
	X, Y float64
}

// Sampler samples an equation across a viewport, one sample per column.
type Sampler struct {
	// Workers is the number of goroutines evaluating samples. Values less
	// than 2 sample sequentially. Parallel sampling is safe because
	// evaluation is pure and the expression is immutable.
	Workers int
}

// Sample evaluates e once per column at time t and gathers the finite
// samples into polylines. A new polyline starts after every sample that is
// NaN, infinite, or far enough outside the viewport that drawing through it
// would paint a spurious vertical line at an asymptote.
func (s Sampler) Sample(e *veq.Expr, v Viewport, cols int, t float64) [][]Point {
	ys := make([]float64, cols)
	dx := v.Dx(cols)
	if s.Workers > 1 {
		var wg sync.WaitGroup
		per := (cols + s.Workers - 1) / s.Workers
		for lo := 0; lo < cols; lo += per {
			hi := lo + per
			if hi > cols {
				hi = cols
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					ys[i] = e.Evaluate(v.Domain[0]+dx*float64(i), t)
				}
			}(lo, hi)
		}
		wg.Wait()
	} else {
		for i := range ys {
			ys[i] = e.Evaluate(v.Domain[0]+dx*float64(i), t)
		}
	}

	// Anything this far beyond the range is treated as off to infinity;
	// splitting there keeps asymptotes from drawing as vertical lines.
	blowup := 4 * v.Height()
	var lines [][]Point
	var cur []Point
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) || y > v.Range[1]+blowup || y < v.Range[0]-blowup {
			if len(cur) > 0 {
				lines = append(lines, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, Point{X: v.Domain[0] + dx*float64(i), Y: y})
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	log.Debug().
		Int("cols", cols).
		Float64("t", t).
		Int("segments", len(lines)).
		Msg("sampled equation")
	return lines
}
