package regression

import (
	"fmt"
	"sync"

	"github.com/arloliu/descent/errs"
)

// Residual returns the signed error of the model at the given point:
// predicted value minus actual value.
//
// The sign convention matters: the gradient terms below are derived from
// this residual, and together with the subtraction in the update step it
// makes each step move the model toward lower squared error.
func Residual(p Point, m Model) float64 {
	return m.M*p.X + m.B - p.Y
}

// Step performs one batch gradient descent step and returns the updated
// model.
//
// The gradient of the summed squared residual is averaged over the dataset,
// so the step magnitude is independent of dataset size: duplicating every
// point does not double the step. The textbook factor of 2 from the
// derivative is folded into the learning rate, since only the sign and
// proportionality of the update matter for convergence.
//
// Step is a pure function: identical inputs produce identical outputs, the
// dataset and input model are never modified, and it is safe to call
// concurrently.
//
// Parameters:
//   - model: Current model (slope and intercept)
//   - points: Non-empty dataset to descend against
//   - learningRate: Positive step size scalar, conventionally small (e.g. 0.0001)
//
// Returns:
//   - Model: The updated model
//   - error: ErrEmptyDataset if points is empty
//
// An oversized learning rate makes the iteration diverge and eventually
// produce non-finite values. That is a tuning concern, not an error: Step
// propagates NaN/Inf through ordinary float64 arithmetic without failing.
func Step(model Model, points []Point, learningRate float64) (Model, error) {
	if len(points) == 0 {
		return Model{}, fmt.Errorf("%w: gradient step requires at least one point", errs.ErrEmptyDataset)
	}

	mGrad, bGrad := accumulate(model, points)

	return Model{
		M: model.M - learningRate*mGrad,
		B: model.B - learningRate*bGrad,
	}, nil
}

// accumulate sums the averaged per-point gradient contributions
// sequentially, in dataset order.
func accumulate(model Model, points []Point) (mGrad, bGrad float64) {
	n := float64(len(points))
	for _, p := range points {
		e := Residual(p, model)
		bGrad += e / n
		mGrad += p.X * e / n
	}

	return mGrad, bGrad
}

// stepParallel is the parallel variant of Step used by Descend for large
// datasets. The gradient accumulation is an order-independent reduction, so
// the dataset is split into fixed chunks summed by separate goroutines.
// Chunk partials are combined in chunk order, keeping the result
// deterministic for identical inputs (though the rounding may differ
// slightly from the sequential accumulation).
func stepParallel(model Model, points []Point, learningRate float64, workers int) (Model, error) {
	if len(points) == 0 {
		return Model{}, fmt.Errorf("%w: gradient step requires at least one point", errs.ErrEmptyDataset)
	}

	if workers < 2 || len(points) < workers {
		return Step(model, points, learningRate)
	}

	n := float64(len(points))
	chunkSize := (len(points) + workers - 1) / workers

	type partial struct {
		mGrad float64
		bGrad float64
	}
	partials := make([]partial, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= len(points) {
			break
		}
		end := min(start+chunkSize, len(points))

		wg.Add(1)
		go func(w int, chunk []Point) {
			defer wg.Done()

			var mg, bg float64
			for _, p := range chunk {
				e := Residual(p, model)
				bg += e / n
				mg += p.X * e / n
			}
			partials[w] = partial{mGrad: mg, bGrad: bg}
		}(w, points[start:end])
	}
	wg.Wait()

	var mGrad, bGrad float64
	for _, pt := range partials {
		mGrad += pt.mGrad
		bGrad += pt.bGrad
	}

	return Model{
		M: model.M - learningRate*mGrad,
		B: model.B - learningRate*bGrad,
	}, nil
}
