package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsbon/jsbon/errs"
	"github.com/jsbon/jsbon/format"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	stream := []byte{0x41, 0x00, 0x00, 0x30, 0x00}

	for _, kind := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(kind.String(), func(t *testing.T) {
			archived, err := Write(stream, kind)
			require.NoError(t, err)

			got, err := Read(archived)
			require.NoError(t, err)
			assert.Equal(t, stream, got)
		})
	}
}

func TestWriteWithStats_ReportsSizes(t *testing.T) {
	stream := make([]byte, 256) // repetitive zero buffer, compresses well

	archived, stats, err := WriteWithStats(stream, format.CompressionZstd)
	require.NoError(t, err)

	assert.Equal(t, format.CompressionZstd, stats.Algorithm)
	assert.Equal(t, int64(len(stream)), stats.OriginalSize)
	assert.Less(t, stats.CompressedSize, stats.OriginalSize)
	assert.InDelta(t, stats.Ratio, stats.CompressionRatio(), 1e-9)

	got, err := Read(archived)
	require.NoError(t, err)
	assert.Equal(t, stream, got)
}

func TestRead_BadMagic(t *testing.T) {
	archived, err := Write([]byte{1, 2, 3}, format.CompressionNone)
	require.NoError(t, err)

	archived[0] = 'X'

	_, err = Read(archived)
	require.ErrorIs(t, err, errs.ErrInvalidData)
}

func TestRead_CorruptedCRC(t *testing.T) {
	archived, err := Write([]byte{1, 2, 3, 4, 5}, format.CompressionNone)
	require.NoError(t, err)

	archived[len(archived)-1] ^= 0xFF

	_, err = Read(archived)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestRead_Truncated(t *testing.T) {
	_, err := Read([]byte{'J', 'S'})
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestRead_VersionMismatch(t *testing.T) {
	archived, err := Write([]byte{1, 2, 3}, format.CompressionNone)
	require.NoError(t, err)

	archived[4] = 99

	_, err = Read(archived)
	require.ErrorIs(t, err, errs.ErrVersionMismatch)
}
