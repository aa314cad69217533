// Package errs defines the sentinel errors shared across descent packages.
//
// All errors are plain sentinel values so callers can classify failures with
// errors.Is. Call sites typically wrap them with additional context:
//
//	return fmt.Errorf("%w: dataset has %d points", errs.ErrEmptyDataset, 0)
package errs

import "errors"

// Training errors.
var (
	// ErrEmptyDataset is returned when a gradient step or fit is requested
	// on a dataset with no points. The averaging step divides by the point
	// count, so an empty dataset has no defined gradient.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrInvalidLearningRate is returned when the learning rate is zero,
	// negative, or not finite.
	ErrInvalidLearningRate = errors.New("invalid learning rate")

	// ErrInvalidIterations is returned when a negative iteration count is
	// passed to the descent driver.
	ErrInvalidIterations = errors.New("invalid iteration count")

	// ErrDegenerateDataset is returned by the closed-form fit when all X
	// values are identical, which leaves the slope undetermined.
	ErrDegenerateDataset = errors.New("degenerate dataset")
)

// Session blob errors.
var (
	// ErrInvalidHeaderSize is returned when the session header is not the
	// expected fixed size.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber is returned when the header magic number does
	// not identify a descent session blob.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidCompressionType is returned when the header carries an
	// unknown compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrChecksumMismatch is returned when the payload checksum stored in
	// the header does not match the payload bytes.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrPayloadTruncated is returned when the decompressed payload is
	// shorter than the counts in the header require.
	ErrPayloadTruncated = errors.New("payload truncated")

	// ErrNoModelsAdded is returned by the encoder when Finish is called
	// without any model having been added.
	ErrNoModelsAdded = errors.New("no models added")

	// ErrEncoderFinished is returned when an encoder is reused after
	// Finish has been called.
	ErrEncoderFinished = errors.New("encoder already finished")
)
