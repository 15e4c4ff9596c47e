package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsbon/jsbon/format"
)

func allCodecs() map[format.CompressionType]Codec {
	return map[format.CompressionType]Codec{
		format.CompressionNone: NewNoOpCompressor(),
		format.CompressionZstd: NewZstdCompressor(),
		format.CompressionS2:   NewS2Compressor(),
		format.CompressionLZ4:  NewLZ4Compressor(),
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := []byte("a JSBON stream pretending to be archived: \x00\x01\x02 repeated repeated repeated")

	for kind, codec := range allCodecs() {
		t.Run(kind.String(), func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for kind, codec := range allCodecs() {
		t.Run(kind.String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Empty(t, decompressed)
		})
	}
}

func TestNoOpCompressor_ReturnsInputUnchanged(t *testing.T) {
	c := NewNoOpCompressor()
	data := []byte("unchanged")

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, compressed)
}

func TestCreateCodec(t *testing.T) {
	for _, kind := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		c, err := CreateCodec(kind, "archive")
		require.NoError(t, err)
		assert.NotNil(t, c)
	}

	_, err := CreateCodec(format.CompressionType(99), "archive")
	require.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	c, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	assert.NotNil(t, c)

	_, err = GetCodec(format.CompressionType(99))
	require.Error(t, err)
}

func TestCompressionStats_Ratio(t *testing.T) {
	stats := CompressionStats{OriginalSize: 100, CompressedSize: 40}
	assert.InDelta(t, 0.4, stats.CompressionRatio(), 1e-9)
	assert.InDelta(t, 60.0, stats.SpaceSavings(), 1e-9)

	empty := CompressionStats{}
	assert.Equal(t, 0.0, empty.CompressionRatio())
}

func TestLZ4Compressor_LargeDecompression(t *testing.T) {
	c := NewLZ4Compressor()

	data := make([]byte, 256*1024)
	for i := range data {
		data[i] = byte(i % 7)
	}

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}
