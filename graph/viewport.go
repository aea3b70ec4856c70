// Package graph turns a parsed equation into drawable geometry. It samples
// an expression across a viewport's visible domain and splits the resulting
// polyline wherever the equation is undefined, leaving the actual pixel
// pushing to whatever front end is in use.
package graph

// Viewport is the visible portion of the plane: the x interval (domain) and
// y interval (range) being displayed.
type Viewport struct {
	Domain [2]float64
	Range  [2]float64
}

// Width returns the extent of the visible domain.
func (v *Viewport) Width() float64 {
	return v.Domain[1] - v.Domain[0]
}

// Height returns the extent of the visible range.
func (v *Viewport) Height() float64 {
	return v.Range[1] - v.Range[0]
}

// Zoom grows the viewport by half of by on every side. Negative by zooms in.
// Zooming in stops before either interval would collapse.
func (v *Viewport) Zoom(by float64) {
	if v.Domain[0]-by/2 >= v.Domain[1]+by/2 || v.Range[0]-by/2 >= v.Range[1]+by/2 {
		return
	}
	v.Domain[0] -= by / 2
	v.Domain[1] += by / 2
	v.Range[0] -= by / 2
	v.Range[1] += by / 2
}

// Shift pans the viewport by dx horizontally and dy vertically.
func (v *Viewport) Shift(dx, dy float64) {
	v.Domain[0] += dx
	v.Domain[1] += dx
	v.Range[0] += dy
	v.Range[1] += dy
}

// Dx returns the width of one column when the domain is divided into cols
// columns.
func (v *Viewport) Dx(cols int) float64 {
	return v.Width() / float64(cols)
}

// X returns the domain value at the left edge of column col.
func (v *Viewport) X(col, cols int) float64 {
	return v.Domain[0] + v.Dx(cols)*float64(col)
}

// Row maps a range value to a row coordinate with 0 at the top of the
// viewport and rows at the bottom. Values outside the range map outside
// [0, rows).
func (v *Viewport) Row(y float64, rows int) float64 {
	h := float64(rows)
	return h + (0-h)/v.Height()*(y-v.Range[0])
}

// Col maps a domain value to a column coordinate with 0 at the left edge.
func (v *Viewport) Col(x float64, cols int) float64 {
	return (x - v.Domain[0]) / v.Width() * float64(cols)
}
