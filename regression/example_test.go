package regression_test

import (
	"fmt"
	"log"

	"github.com/arloliu/descent/regression"
)

// ExampleStep demonstrates a single gradient descent update from the
// flat-line seed.
func ExampleStep() {
	points := []regression.Point{
		{X: 30, Y: 45},
		{X: 40, Y: 60},
		{X: 100, Y: 150},
	}

	next, err := regression.Step(regression.Model{}, points, 0.0001)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("m=%.4f b=%.4f\n", next.M, next.B)

	// Output:
	// m=0.6250 b=0.0085
}

// ExampleDescend demonstrates running a fixed number of steps and
// inspecting the recorded trajectory.
func ExampleDescend() {
	points := []regression.Point{
		{X: 30, Y: 45},
		{X: 40, Y: 60},
		{X: 100, Y: 150},
	}

	trajectory, err := regression.Descend(regression.Model{}, points, 0.0001, 10)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("steps recorded: %d\n", len(trajectory))
	fmt.Printf("first model: m=%.4f b=%.4f\n", trajectory[0].M, trajectory[0].B)

	// Output:
	// steps recorded: 10
	// first model: m=0.6250 b=0.0085
}

// ExampleModel_Segment demonstrates the projection plotting consumers use
// to draw a model.
func ExampleModel_Segment() {
	model := regression.Model{M: 1.5, B: 0}

	segment := model.Segment(0, 100)
	fmt.Printf("(%.1f, %.1f) -> (%.1f, %.1f)\n", segment.X0, segment.Y0, segment.X1, segment.Y1)

	// Output:
	// (0.0, 0.0) -> (100.0, 150.0)
}
