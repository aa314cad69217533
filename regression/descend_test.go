package regression

import (
	"errors"
	"math"
	"testing"

	"github.com/arloliu/descent/errs"
)

// TestDescendTrajectoryLength verifies one recorded model per step.
func TestDescendTrajectoryLength(t *testing.T) {
	trajectory, err := Descend(Model{}, sampleDataset(), 0.0001, 10)
	if err != nil {
		t.Fatalf("Descend failed: %v", err)
	}

	if len(trajectory) != 10 {
		t.Fatalf("expected 10 models, got %d", len(trajectory))
	}

	// First recorded model must equal a single Step from the seed.
	first, err := Step(Model{}, sampleDataset(), 0.0001)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if trajectory[0] != first {
		t.Errorf("trajectory[0] = %v, expected %v", trajectory[0], first)
	}
}

// TestDescendMonotonicRSS verifies that with a well-chosen learning rate
// the residual sum of squares never increases across steps.
func TestDescendMonotonicRSS(t *testing.T) {
	points := sampleDataset()

	trajectory, err := Descend(Model{}, points, 0.0001, 12, WithSeedRecorded())
	if err != nil {
		t.Fatalf("Descend failed: %v", err)
	}

	for i := 1; i < len(trajectory); i++ {
		before := RSS(points, trajectory[i-1])
		after := RSS(points, trajectory[i])
		if after > before {
			t.Errorf("step %d increased RSS: %v -> %v", i, before, after)
		}
	}
}

// TestDescendDiminishingUpdates verifies that the slope update magnitude
// strictly decreases once past the first couple of iterations.
func TestDescendDiminishingUpdates(t *testing.T) {
	trajectory, err := Descend(Model{}, sampleDataset(), 0.0001, 10)
	if err != nil {
		t.Fatalf("Descend failed: %v", err)
	}

	prevDelta := math.Inf(1)
	for i := 2; i < len(trajectory); i++ {
		delta := math.Abs(trajectory[i].M - trajectory[i-1].M)
		if delta >= prevDelta {
			t.Errorf("step %d: |ΔM| did not decrease: %v -> %v", i, prevDelta, delta)
		}
		prevDelta = delta
	}
}

// TestDescendZeroIterations verifies that zero iterations is valid and
// yields an empty trajectory.
func TestDescendZeroIterations(t *testing.T) {
	trajectory, err := Descend(Model{}, sampleDataset(), 0.0001, 0)
	if err != nil {
		t.Fatalf("Descend failed: %v", err)
	}
	if len(trajectory) != 0 {
		t.Errorf("expected empty trajectory, got %d models", len(trajectory))
	}
}

// TestDescendInvalidInputs exercises the validation failures.
func TestDescendInvalidInputs(t *testing.T) {
	points := sampleDataset()

	if _, err := Descend(Model{}, points, 0.0001, -1); !errors.Is(err, errs.ErrInvalidIterations) {
		t.Errorf("expected ErrInvalidIterations, got %v", err)
	}

	if _, err := Descend(Model{}, points, 0, 10); !errors.Is(err, errs.ErrInvalidLearningRate) {
		t.Errorf("expected ErrInvalidLearningRate for zero rate, got %v", err)
	}
	if _, err := Descend(Model{}, points, -0.1, 10); !errors.Is(err, errs.ErrInvalidLearningRate) {
		t.Errorf("expected ErrInvalidLearningRate for negative rate, got %v", err)
	}
	if _, err := Descend(Model{}, points, math.NaN(), 10); !errors.Is(err, errs.ErrInvalidLearningRate) {
		t.Errorf("expected ErrInvalidLearningRate for NaN rate, got %v", err)
	}

	if _, err := Descend(Model{}, nil, 0.0001, 10); !errors.Is(err, errs.ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

// TestDescendSeedRecorded verifies the optional seed prepend.
func TestDescendSeedRecorded(t *testing.T) {
	seed := Model{M: 0.1, B: 0.2}

	trajectory, err := Descend(seed, sampleDataset(), 0.0001, 5, WithSeedRecorded())
	if err != nil {
		t.Fatalf("Descend failed: %v", err)
	}

	if len(trajectory) != 6 {
		t.Fatalf("expected 6 models (seed + 5 steps), got %d", len(trajectory))
	}
	if trajectory[0] != seed {
		t.Errorf("trajectory[0] = %v, expected seed %v", trajectory[0], seed)
	}
}

// TestDescendTolerance verifies the optional early stop.
func TestDescendTolerance(t *testing.T) {
	// A tolerance far above any update magnitude stops after the first step.
	trajectory, err := Descend(Model{}, sampleDataset(), 0.0001, 10, WithTolerance(1000))
	if err != nil {
		t.Fatalf("Descend failed: %v", err)
	}
	if len(trajectory) != 1 {
		t.Errorf("expected early stop after 1 step, got %d models", len(trajectory))
	}

	// A tiny tolerance must not cut the fixed-count run short.
	trajectory, err = Descend(Model{}, sampleDataset(), 0.0001, 10, WithTolerance(1e-300))
	if err != nil {
		t.Fatalf("Descend failed: %v", err)
	}
	if len(trajectory) != 10 {
		t.Errorf("expected all 10 steps, got %d models", len(trajectory))
	}

	if _, err = Descend(Model{}, sampleDataset(), 0.0001, 10, WithTolerance(-1)); err == nil {
		t.Error("expected error for negative tolerance")
	}
}

// TestDescendParallelMatchesSequential verifies that parallel accumulation
// agrees with the sequential path up to floating-point rounding.
func TestDescendParallelMatchesSequential(t *testing.T) {
	points := make([]Point, 1000)
	for i := range points {
		x := float64(i)
		points[i] = Point{X: x, Y: 1.5*x + 3 + math.Sin(x)}
	}

	sequential, err := Descend(Model{}, points, 1e-7, 8)
	if err != nil {
		t.Fatalf("Descend failed: %v", err)
	}
	parallel, err := Descend(Model{}, points, 1e-7, 8, WithParallelThreshold(1))
	if err != nil {
		t.Fatalf("Descend failed: %v", err)
	}

	if len(sequential) != len(parallel) {
		t.Fatalf("trajectory lengths differ: %d vs %d", len(sequential), len(parallel))
	}
	for i := range sequential {
		if math.Abs(sequential[i].M-parallel[i].M) > 1e-9 ||
			math.Abs(sequential[i].B-parallel[i].B) > 1e-9 {
			t.Errorf("step %d differs: %v vs %v", i, sequential[i], parallel[i])
		}
	}
}

// TestTrajectorySegments verifies the plotting projection.
func TestTrajectorySegments(t *testing.T) {
	trajectory := Trajectory{
		{M: 1.5, B: 0},
		{M: 2, B: 1},
	}

	segments := trajectory.Segments(0, 100)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}

	want := Segment{X0: 0, Y0: 0, X1: 100, Y1: 150}
	if segments[0] != want {
		t.Errorf("segments[0] = %v, expected %v", segments[0], want)
	}
}

// TestTrajectoryLast covers the empty and non-empty cases.
func TestTrajectoryLast(t *testing.T) {
	var empty Trajectory
	if _, ok := empty.Last(); ok {
		t.Error("Last on empty trajectory should report false")
	}

	trajectory := Trajectory{{M: 1, B: 2}, {M: 3, B: 4}}
	last, ok := trajectory.Last()
	if !ok || last != (Model{M: 3, B: 4}) {
		t.Errorf("Last() = %v, %v", last, ok)
	}
}
