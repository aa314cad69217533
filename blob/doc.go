// Package blob encodes and decodes descent training sessions to a compact
// binary format.
//
// A session blob captures everything a visualization consumer needs to
// replay a descent run without re-executing it: the dataset, the full model
// trajectory, and the learning rate. The payload stores the float64 fields
// as columnar sections (all X, all Y, all M, all B), which compresses far
// better than interleaved records because consecutive trajectory values
// change slowly.
//
// # Encoding
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
// # Decoding
//
//	session, err := blob.Decode(data)
//	if err != nil {
//	    return err
//	}
//	for _, segment := range session.Models().Segments(0, 100) {
//	    draw(segment)
//	}
//
// # Integrity
//
// The header stores an xxHash64 checksum of the compressed payload, checked
// before decompression so corrupted blobs fail fast with
// errs.ErrChecksumMismatch rather than feeding garbage to the codec.
package blob
