package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/descent/errs"
)

// RSS returns the residual sum of squares of the model over the dataset.
// An empty dataset has RSS 0.
func RSS(points []Point, m Model) float64 {
	sum := 0.0
	for _, p := range points {
		e := Residual(p, m)
		sum += e * e
	}

	return sum
}

// MSE returns the mean squared error of the model over the dataset,
// or 0 for an empty dataset.
func MSE(points []Point, m Model) float64 {
	if len(points) == 0 {
		return 0
	}

	return RSS(points, m) / float64(len(points))
}

// RMSE returns the root mean square error of the model over the dataset.
//
// RMSE is in the same units as Y, which makes it the most readable of the
// error metrics when eyeballing fit quality.
func RMSE(points []Point, m Model) float64 {
	return math.Sqrt(MSE(points, m))
}

// RSquared returns the coefficient of determination of the model over the
// dataset.
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squared residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// Returns 0 when the dataset is empty or all Y values are identical
// (SS_tot of zero leaves R² undefined).
func RSquared(points []Point, m Model) float64 {
	if len(points) == 0 {
		return 0
	}

	meanY := 0.0
	for _, p := range points {
		meanY += p.Y
	}
	meanY /= float64(len(points))

	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares
	for _, p := range points {
		ssTot += (p.Y - meanY) * (p.Y - meanY)
		e := Residual(p, m)
		ssRes += e * e
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// Summary bundles the fit statistics of a model over a dataset.
type Summary struct {
	// RSS is the residual sum of squares.
	RSS float64
	// MSE is the mean squared error.
	MSE float64
	// RMSE is the root mean square error.
	RMSE float64
	// RSquared is the coefficient of determination (0-1, higher is better).
	RSquared float64
}

// String returns a string representation of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("Summary{RSS: %.4f, MSE: %.4f, RMSE: %.4f, R²: %.4f}",
		s.RSS, s.MSE, s.RMSE, s.RSquared)
}

// Summarize computes all fit statistics of the model over the dataset in a
// single pass per metric.
//
// Returns:
//   - Summary: The computed statistics
//   - error: ErrEmptyDataset if points is empty
func Summarize(points []Point, m Model) (Summary, error) {
	if len(points) == 0 {
		return Summary{}, fmt.Errorf("%w: nothing to summarize", errs.ErrEmptyDataset)
	}

	rss := RSS(points, m)
	mse := rss / float64(len(points))

	return Summary{
		RSS:      rss,
		MSE:      mse,
		RMSE:     math.Sqrt(mse),
		RSquared: RSquared(points, m),
	}, nil
}
