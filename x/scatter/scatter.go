// Package scatter provides Scatter, an ordered 2D point series with optional
// axis labels, used throughout x/nfc and x/dsp to carry time- and
// frequency-domain samples between pipeline stages.
package scatter

import "fmt"

// Point is a single sample: X is a signed integer coordinate (nanoseconds
// for time-domain series, signed Hz for spectra), Y is a real amplitude.
type Point struct {
	X int64
	Y float64
}

// Scatter is a fixed-length, ordered sequence of points plus optional axis
// names. Points are ordered by sample index, not necessarily by X value:
// the FFT emits negative frequencies in the upper half of its output, so X
// is not required to be monotonic.
type Scatter struct {
	Points []Point
	XName  string
	YName  string
}

// New allocates a Scatter of the given length with zeroed points.
func New(size int) Scatter {
	return Scatter{Points: make([]Point, size)}
}

// NewFrom builds a Scatter from parallel X/Y slices of equal length.
func NewFrom(x []int64, y []float64) Scatter {
	if len(x) != len(y) {
		panic("scatter.NewFrom: x and y must have equal length")
	}
	points := make([]Point, len(x))
	for i := range points {
		points[i] = Point{X: x[i], Y: y[i]}
	}
	return Scatter{Points: points}
}

// Len returns the number of points in the series.
func (s Scatter) Len() int {
	return len(s.Points)
}

// X returns the X coordinate of the i-th point.
func (s Scatter) X(i int) int64 {
	return s.Points[i].X
}

// Y returns the Y coordinate of the i-th point.
func (s Scatter) Y(i int) float64 {
	return s.Points[i].Y
}

// SetX sets the X coordinate of the i-th point.
func (s Scatter) SetX(i int, x int64) {
	s.Points[i].X = x
}

// SetY sets the Y coordinate of the i-th point.
func (s Scatter) SetY(i int, y float64) {
	s.Points[i].Y = y
}

// WithNames attaches axis labels and returns the receiver for chaining.
// Labels are metadata only; the core pipeline never reads them.
func (s Scatter) WithNames(xName, yName string) Scatter {
	s.XName = xName
	s.YName = yName
	return s
}

// Clone returns a deep copy so the caller may mutate it independently of s.
func (s Scatter) Clone() Scatter {
	out := Scatter{
		Points: make([]Point, len(s.Points)),
		XName:  s.XName,
		YName:  s.YName,
	}
	copy(out.Points, s.Points)
	return out
}

// AxisNames returns the series' axis labels, falling back to "X_i"/"Y_i"
// (i being the series' position among its siblings) when a label was never
// set, matching the CSV collaborator's header convention.
func (s Scatter) AxisNames(i int) (x, y string) {
	x, y = s.XName, s.YName
	if x == "" {
		x = fmt.Sprintf("X_%d", i)
	}
	if y == "" {
		y = fmt.Sprintf("Y_%d", i)
	}
	return x, y
}
