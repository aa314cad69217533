package regression

import (
	"fmt"

	"github.com/arloliu/descent/internal/options"
)

// TrainConfig holds the optional knobs for the descent driver. All fields
// default to off, leaving Descend with the literal fixed-count behavior.
type TrainConfig struct {
	tolerance         float64
	parallelThreshold int
	recordSeed        bool
}

func defaultTrainConfig() TrainConfig {
	return TrainConfig{}
}

// TrainOption is a functional option for TrainConfig.
type TrainOption = options.Option[*TrainConfig]

// WithTolerance enables early stopping: descent stops after the step whose
// parameter update magnitude (Euclidean distance between consecutive
// models) drops below tol. The stopping step's model is still recorded.
//
// A non-positive tolerance is rejected; omit the option to disable early
// stopping.
func WithTolerance(tol float64) TrainOption {
	return options.New(func(cfg *TrainConfig) error {
		if tol <= 0 {
			return fmt.Errorf("tolerance must be positive, got %g", tol)
		}
		cfg.tolerance = tol

		return nil
	})
}

// WithParallelThreshold enables parallel gradient accumulation for datasets
// with at least n points. The accumulation is an order-independent
// reduction, so chunked parallel summation only perturbs floating-point
// rounding, not the mathematical result.
//
// Small datasets gain nothing from goroutine fan-out, so the threshold
// should stay in the tens of thousands.
func WithParallelThreshold(n int) TrainOption {
	return options.New(func(cfg *TrainConfig) error {
		if n <= 0 {
			return fmt.Errorf("parallel threshold must be positive, got %d", n)
		}
		cfg.parallelThreshold = n

		return nil
	})
}

// WithSeedRecorded prepends the seed model to the returned trajectory, so
// plotting consumers can render the starting line before the first step.
func WithSeedRecorded() TrainOption {
	return options.NoError(func(cfg *TrainConfig) {
		cfg.recordSeed = true
	})
}
