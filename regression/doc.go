// Package regression implements single-variable linear regression trained
// by batch gradient descent.
//
// The package centers on two small pure functions: Step, which computes one
// gradient descent update from a model and a dataset, and Descend, which
// applies Step a fixed number of times and records the resulting Trajectory
// of models for inspection or visualization.
//
// # Basic Usage
//
// Run descent from the conventional flat-line seed:
//
//	points := []regression.Point{{X: 30, Y: 45}, {X: 40, Y: 60}, {X: 100, Y: 150}}
//
//	trajectory, err := regression.Descend(regression.Model{}, points, 0.0001, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	final, _ := trajectory.Last()
//	fmt.Printf("y = %.4f*x + %.4f\n", final.M, final.B)
//
// # Single Steps
//
// Step exposes the update rule directly for callers that drive their own
// iteration:
//
//	next, err := regression.Step(current, points, 0.0001)
//
// Each step averages the per-point gradient contributions over the dataset
// and moves both parameters against the gradient, scaled by the learning
// rate. Steps are pure: the dataset and the input model are never mutated.
//
// # Learning Rate
//
// The learning rate is a fixed positive scalar. Values that are too large
// make the iteration oscillate and diverge; the package deliberately does
// not detect this, and non-finite values propagate through subsequent steps
// as ordinary float64 arithmetic. Tune the rate, do not expect the library
// to rescue it.
//
// # Fit Quality
//
// RSS, MSE, RMSE, and RSquared measure how well a model fits a dataset,
// and Summarize bundles all four. FitExact computes the closed-form least
// squares optimum for comparison against the descent result.
//
// # Visualization Support
//
// Trajectory.Segments maps every recorded model to a drawable line segment
// over an X range, which is the form plotting and animation consumers want.
// The blob package can persist a full training session (dataset plus
// trajectory) to a compact binary format for offline replay.
package regression
