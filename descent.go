// Package descent provides single-variable linear regression trained by
// batch gradient descent, with full trajectory capture for visualization.
//
// The core is deliberately small: a pure gradient step function and an
// iteration driver that applies it a fixed number of times, recording every
// intermediate model. The recorded trajectory is the product - plotting and
// animation consumers map each model to a line segment to show the fit
// converging.
//
// # Basic Usage
//
// Training from the conventional flat-line seed:
//
//	import "github.com/arloliu/descent"
//
//	points := []regression.Point{{X: 30, Y: 45}, {X: 40, Y: 60}, {X: 100, Y: 150}}
//
//	trajectory, err := descent.Train(points, 0.0001, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	final, _ := trajectory.Last()
//	fmt.Printf("y = %.4f*x + %.4f\n", final.M, final.B)
//
// Persisting a session for offline replay:
//
//	data, err := descent.EncodeSession(points, trajectory, 0.0001)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session, err := descent.DecodeSession(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	segments := session.Models().Segments(0, 100)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the regression
// and blob packages, simplifying the most common use cases. For custom seed
// models, early-stopping tolerances, parallel accumulation, or fine-grained
// encoder control, use those packages directly.
package descent

import (
	"github.com/arloliu/descent/blob"
	"github.com/arloliu/descent/format"
	"github.com/arloliu/descent/regression"
)

var defaultSessionOptions = []blob.EncoderOption{
	blob.WithLittleEndian(),
	blob.WithCompression(format.CompressionZstd),
}

// Train runs batch gradient descent from the flat-line seed model (m=0,
// b=0) and returns the trajectory of models, one per step.
//
// Parameters:
//   - points: Non-empty dataset of (x, y) observations
//   - learningRate: Positive step size scalar, conventionally small (e.g. 0.0001)
//   - iterations: Number of gradient steps to run
//   - opts: Optional regression.TrainOption values
//
// Returns:
//   - regression.Trajectory: One model per completed step
//   - error: Validation errors from the regression package
func Train(points []regression.Point, learningRate float64, iterations int, opts ...regression.TrainOption) (regression.Trajectory, error) {
	return regression.Descend(regression.Model{}, points, learningRate, iterations, opts...)
}

// EncodeSession serializes a training session (dataset, trajectory, and
// learning rate) into a session blob with default settings: little-endian
// byte order and Zstd compression.
//
// For other codecs or byte orders, use blob.NewEncoder directly.
func EncodeSession(points []regression.Point, trajectory regression.Trajectory, learningRate float64, opts ...blob.EncoderOption) ([]byte, error) {
	encOpts := make([]blob.EncoderOption, 0, len(defaultSessionOptions)+len(opts))
	encOpts = append(encOpts, defaultSessionOptions...)
	encOpts = append(encOpts, opts...)

	enc, err := blob.NewEncoder(encOpts...)
	if err != nil {
		return nil, err
	}

	enc.SetLearningRate(learningRate)
	enc.AddPoints(points)
	enc.AddModels(trajectory)

	return enc.Finish()
}

// DecodeSession parses a session blob produced by EncodeSession or
// blob.Encoder.
func DecodeSession(data []byte) (*blob.Session, error) {
	return blob.Decode(data)
}
