package regression

import (
	"fmt"
	"math"
	"runtime"

	"github.com/arloliu/descent/errs"
	"github.com/arloliu/descent/internal/options"
)

// Descend runs batch gradient descent for a fixed number of iterations,
// threading each step's output model into the next step, and returns the
// trajectory of models, one per completed step.
//
// Parameters:
//   - model: Seed model for the first step (Model{} is the conventional flat line)
//   - points: Non-empty dataset to descend against
//   - learningRate: Positive step size scalar
//   - iterations: Number of steps to run; zero yields an empty trajectory
//   - opts: Optional TrainOption values (tolerance stop, parallel threshold, seed recording)
//
// Returns:
//   - Trajectory: Ordered models, one per completed step (plus the seed with WithSeedRecorded)
//   - error: ErrInvalidIterations, ErrInvalidLearningRate, ErrEmptyDataset, or option errors
//
// A zero iteration count is valid and returns an empty (or seed-only)
// trajectory; a negative count is rejected. The driver adds no error
// handling beyond input validation - divergence from an oversized learning
// rate shows up as non-finite models in the trajectory, not as an error.
func Descend(model Model, points []Point, learningRate float64, iterations int, opts ...TrainOption) (Trajectory, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidIterations, iterations)
	}
	if learningRate <= 0 || math.IsNaN(learningRate) {
		return nil, fmt.Errorf("%w: %g", errs.ErrInvalidLearningRate, learningRate)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: descent requires at least one point", errs.ErrEmptyDataset)
	}

	cfg := defaultTrainConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	trajectory := make(Trajectory, 0, iterations+1)
	if cfg.recordSeed {
		trajectory = append(trajectory, model)
	}

	parallel := cfg.parallelThreshold > 0 && len(points) >= cfg.parallelThreshold
	workers := runtime.GOMAXPROCS(0)

	current := model
	for i := 0; i < iterations; i++ {
		var (
			next Model
			err  error
		)
		if parallel {
			next, err = stepParallel(current, points, learningRate, workers)
		} else {
			next, err = Step(current, points, learningRate)
		}
		if err != nil {
			return nil, err
		}

		trajectory = append(trajectory, next)

		if cfg.tolerance > 0 && updateMagnitude(current, next) < cfg.tolerance {
			break
		}

		current = next
	}

	return trajectory, nil
}

// updateMagnitude returns the Euclidean distance between two consecutive
// models in parameter space.
func updateMagnitude(prev, next Model) float64 {
	return math.Hypot(next.M-prev.M, next.B-prev.B)
}
