package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/descent/compress"
	"github.com/arloliu/descent/errs"
	"github.com/arloliu/descent/internal/hash"
	"github.com/arloliu/descent/internal/options"
	"github.com/arloliu/descent/regression"
	"github.com/arloliu/descent/section"
)

// Encoder builds a session blob from a dataset and a trajectory.
//
// Typical usage:
//
//	enc, err := blob.NewEncoder(blob.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	enc.SetLearningRate(0.0001)
//	enc.AddPoints(points)
//	enc.AddModels(trajectory)
//	data, err := enc.Finish()
//
// An Encoder is single-use: Finish seals it, and further calls return
// ErrEncoderFinished. Encoders are not safe for concurrent use.
type Encoder struct {
	header   *section.Header
	points   []regression.Point
	models   []regression.Model
	finished bool
}

// NewEncoder creates a session encoder with the given options.
// The defaults are little-endian byte order and no compression.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	enc := &Encoder{
		header: section.NewHeader(),
	}

	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

// SetLearningRate records the learning rate the trajectory was trained
// with. Stored as session metadata so replay consumers can label the run.
func (e *Encoder) SetLearningRate(learningRate float64) {
	e.header.LearningRate = learningRate
}

// AddPoint appends a single dataset point to the session.
func (e *Encoder) AddPoint(p regression.Point) {
	e.points = append(e.points, p)
}

// AddPoints appends dataset points to the session.
func (e *Encoder) AddPoints(points []regression.Point) {
	e.points = append(e.points, points...)
}

// AddModel appends a single trajectory model to the session.
func (e *Encoder) AddModel(m regression.Model) {
	e.models = append(e.models, m)
}

// AddModels appends trajectory models to the session, in order.
func (e *Encoder) AddModels(models []regression.Model) {
	e.models = append(e.models, models...)
}

// Finish serializes the session and returns the complete blob bytes.
//
// The payload is laid out as columnar float64 columns (all X, all Y, all M,
// all B), compressed with the configured codec, and checksummed with
// xxHash64. The header records the counts, the learning rate, and the
// checksum.
//
// Returns:
//   - []byte: The complete session blob (header + payload)
//   - error: ErrEncoderFinished on reuse, ErrNoModelsAdded when the
//     trajectory is empty, or codec errors
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	if len(e.models) == 0 {
		return nil, fmt.Errorf("%w: session needs at least one trajectory model", errs.ErrNoModelsAdded)
	}

	e.finished = true

	engine := e.header.Flag.GetEndianEngine()

	raw := make([]byte, 0, (2*len(e.points)+2*len(e.models))*8)
	for _, p := range e.points {
		raw = engine.AppendUint64(raw, math.Float64bits(p.X))
	}
	for _, p := range e.points {
		raw = engine.AppendUint64(raw, math.Float64bits(p.Y))
	}
	for _, m := range e.models {
		raw = engine.AppendUint64(raw, math.Float64bits(m.M))
	}
	for _, m := range e.models {
		raw = engine.AppendUint64(raw, math.Float64bits(m.B))
	}

	codec, err := compress.CreateCodec(e.header.Flag.Compression(), "payload")
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	e.header.PointCount = uint32(len(e.points))
	e.header.ModelCount = uint32(len(e.models))
	e.header.PayloadSize = uint32(len(payload))
	e.header.Checksum = hash.Checksum(payload)

	data := make([]byte, 0, section.HeaderSize+len(payload))
	data = append(data, e.header.Bytes()...)
	data = append(data, payload...)

	return data, nil
}
