package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/descent/errs"
	"github.com/arloliu/descent/format"
	"github.com/arloliu/descent/regression"
)

func testPoints() []regression.Point {
	return []regression.Point{
		{X: 30, Y: 45},
		{X: 40, Y: 60},
		{X: 100, Y: 150},
	}
}

func testModels() regression.Trajectory {
	return regression.Trajectory{
		{M: 0.625, B: 0.0085},
		{M: 0.989, B: 0.0134},
		{M: 1.2, B: 0.016},
	}
}

func encodeTestSession(t *testing.T, opts ...EncoderOption) []byte {
	t.Helper()

	enc, err := NewEncoder(opts...)
	require.NoError(t, err)

	enc.SetLearningRate(0.0001)
	enc.AddPoints(testPoints())
	enc.AddModels(testModels())

	data, err := enc.Finish()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	return data
}

func TestSessionRoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			data := encodeTestSession(t, WithCompression(compression))

			session, err := Decode(data)
			require.NoError(t, err)

			require.Equal(t, testPoints(), session.Points())
			require.Equal(t, testModels(), session.Models())
			require.Equal(t, 0.0001, session.LearningRate())
			require.Equal(t, compression, session.Compression())
		})
	}
}

func TestSessionRoundTripBigEndian(t *testing.T) {
	data := encodeTestSession(t, WithBigEndian(), WithCompression(format.CompressionLZ4))

	session, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, testPoints(), session.Points())
	require.Equal(t, testModels(), session.Models())
}

func TestSessionRoundTripNoPoints(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	enc.AddModels(testModels())

	data, err := enc.Finish()
	require.NoError(t, err)

	session, err := Decode(data)
	require.NoError(t, err)
	require.Empty(t, session.Points())
	require.Equal(t, testModels(), session.Models())
}

func TestEncoderSingleAdds(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	for _, p := range testPoints() {
		enc.AddPoint(p)
	}
	for _, m := range testModels() {
		enc.AddModel(m)
	}

	data, err := enc.Finish()
	require.NoError(t, err)

	session, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, testPoints(), session.Points())
	require.Equal(t, testModels(), session.Models())
}

func TestEncoderNoModels(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	enc.AddPoints(testPoints())

	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrNoModelsAdded)
}

func TestEncoderReuse(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	enc.AddModels(testModels())

	_, err = enc.Finish()
	require.NoError(t, err)

	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

func TestEncoderInvalidCompression(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(0xFF)))
	require.Error(t, err)
}

func TestDecodeTruncatedHeader(t *testing.T) {
	data := encodeTestSession(t)

	_, err := Decode(data[:16])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestDecodeInvalidMagic(t *testing.T) {
	data := encodeTestSession(t)

	corrupted := append([]byte{}, data...)
	corrupted[1] ^= 0xFF

	_, err := Decode(corrupted)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestDecodeChecksumMismatch(t *testing.T) {
	data := encodeTestSession(t)

	corrupted := append([]byte{}, data...)
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err := Decode(corrupted)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDecodeTruncatedPayload(t *testing.T) {
	data := encodeTestSession(t)

	_, err := Decode(data[:len(data)-8])
	require.ErrorIs(t, err, errs.ErrPayloadTruncated)
}
