package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/descent/errs"
)

// FitExact computes the ordinary least squares line for the dataset in
// closed form.
//
// This is the analytic optimum the gradient descent trajectory converges
// toward; comparing Descend's final model against FitExact shows how far a
// fixed iteration budget got.
//
// Parameters:
//   - points: Non-empty dataset with at least two distinct X values
//
// Returns:
//   - Model: The least squares line
//   - error: ErrEmptyDataset for an empty dataset, ErrDegenerateDataset
//     when all X values are identical (the slope is undetermined)
func FitExact(points []Point) (Model, error) {
	n := len(points)
	if n == 0 {
		return Model{}, fmt.Errorf("%w: least squares fit requires points", errs.ErrEmptyDataset)
	}

	var sumX, sumY, sumXY, sumX2 float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	denom := sumX2 - float64(n)*meanX*meanX
	if math.Abs(denom) < 1e-12 {
		return Model{}, fmt.Errorf("%w: all X values are identical", errs.ErrDegenerateDataset)
	}

	m := (sumXY - float64(n)*meanX*meanY) / denom
	b := meanY - m*meanX

	return Model{M: m, B: b}, nil
}
