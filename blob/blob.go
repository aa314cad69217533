package blob

import (
	"github.com/arloliu/descent/format"
	"github.com/arloliu/descent/regression"
)

// Session is a decoded training session: the dataset a trajectory was
// trained against, the trajectory itself, and the learning rate used.
//
// A Session is read-only. The accessor methods return internal slices
// without copying; callers must not modify them.
type Session struct {
	points       []regression.Point
	models       regression.Trajectory
	learningRate float64
	compression  format.CompressionType
}

// Points returns the dataset stored in the session.
func (s *Session) Points() []regression.Point {
	return s.points
}

// Models returns the trajectory stored in the session.
func (s *Session) Models() regression.Trajectory {
	return s.models
}

// LearningRate returns the learning rate the trajectory was trained with.
func (s *Session) LearningRate() float64 {
	return s.learningRate
}

// Compression returns the compression type the payload was stored with.
func (s *Session) Compression() format.CompressionType {
	return s.compression
}
