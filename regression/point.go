package regression

import "fmt"

// Point is a single observation: an independent value X paired with the
// dependent value Y. Points are plain values with no identity beyond their
// fields; a dataset is an ordered []Point slice.
//
// Datasets are read-only inputs. No function in this package mutates the
// points it is given.
type Point struct {
	X float64
	Y float64
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
