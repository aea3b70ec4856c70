package graph

import "strconv"

// Marks is a collection of points the user has saved off the curve.
type Marks struct {
	// Precision is the number of digits after the decimal point in labels.
	Precision int

	pts []Point
}

// Save records a point.
func (m *Marks) Save(p Point) {
	m.pts = append(m.pts, p)
}

// Clear forgets all saved points.
func (m *Marks) Clear() {
	m.pts = nil
}

// Points returns the saved points in the order they were saved.
func (m *Marks) Points() []Point {
	return m.pts
}

// Label formats a point as a coordinate pair at the configured precision.
func (m *Marks) Label(p Point) string {
	return "(" + strconv.FormatFloat(p.X, 'f', m.Precision, 64) +
		", " + strconv.FormatFloat(p.Y, 'f', m.Precision, 64) + ")"
}
