package regression

import "fmt"

// Model represents a candidate regression line y = M*x + B.
//
// A Model is an immutable value: every gradient step produces a new Model
// rather than mutating the previous one. The zero value is the flat line
// through the origin, the conventional starting point for descent.
type Model struct {
	// M is the slope of the line.
	M float64
	// B is the intercept of the line.
	B float64
}

// Predict returns the model's predicted Y value for the given X.
func (m Model) Predict(x float64) float64 {
	return m.M*x + m.B
}

// Segment evaluates the model at the two X endpoints and returns the
// resulting line segment. This is the mapping plotting consumers use to
// render a Model as a drawable line.
func (m Model) Segment(x0, x1 float64) Segment {
	return Segment{
		X0: x0, Y0: m.Predict(x0),
		X1: x1, Y1: m.Predict(x1),
	}
}

// String returns a string representation of the model.
func (m Model) String() string {
	return fmt.Sprintf("Model{M: %g, B: %g}", m.M, m.B)
}

// Segment is a drawable line segment: the model evaluated at two X
// endpoints.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Trajectory is the ordered sequence of Models produced by repeated
// application of the gradient step, one Model per completed step. The seed
// model is not included unless the caller opts in with WithSeedRecorded.
type Trajectory []Model

// Last returns the final model of the trajectory. The second return value
// is false if the trajectory is empty.
func (t Trajectory) Last() (Model, bool) {
	if len(t) == 0 {
		return Model{}, false
	}

	return t[len(t)-1], true
}

// Segments maps every model in the trajectory to a line segment over the
// given X range, in trajectory order. Useful for rendering the descent as
// an animation of converging lines.
func (t Trajectory) Segments(x0, x1 float64) []Segment {
	segments := make([]Segment, len(t))
	for i, m := range t {
		segments[i] = m.Segment(x0, x1)
	}

	return segments
}
