// Package section defines the binary layout of descent session blobs.
//
// A session blob starts with a fixed 32-byte Header followed by a single
// payload section holding the dataset and trajectory as columnar float64
// columns, optionally compressed. The header records the payload counts,
// the learning rate the trajectory was trained with, and an xxHash64
// checksum for integrity validation.
package section
