package statistic

import (
	"bytes"
	"fauna/internal/statistic/interfaces"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompressor(t *testing.T) interfaces.CompressorInterface {
	t.Helper()
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestZstdCompression_SnapshotRoundtrip(t *testing.T) {
	c := newTestCompressor(t)

	snapshot := []byte(`{"version":1,"entries":{"animalViews":"[{\"name\":\"Lion\",\"timestamp\":1760000000000,\"count\":2}]","quizStats":"{\"totalQuizzes\":3}"}}`)
	frame, err := c.Compress(snapshot)
	require.NoError(t, err)
	assert.NotEqual(t, snapshot, frame)

	decoded, err := c.Decompress(frame)
	require.NoError(t, err)
	assert.Equal(t, snapshot, decoded)
}

func TestZstdCompression_EmptySnapshot(t *testing.T) {
	c := newTestCompressor(t)

	frame, err := c.Compress(nil)
	require.NoError(t, err)

	decoded, err := c.Decompress(frame)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestZstdCompression_FullHistoryShrinks(t *testing.T) {
	c := newTestCompressor(t)

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < 100; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"name":"Snow Leopard","timestamp":1760000000000,"count":12}`)
	}
	buf.WriteByte(']')

	frame, err := c.Compress(buf.Bytes())
	require.NoError(t, err)
	assert.Less(t, len(frame), buf.Len()/4)

	decoded, err := c.Decompress(frame)
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), decoded)
}

func TestZstdCompression_RejectsCorruptFrames(t *testing.T) {
	c := newTestCompressor(t)

	for _, frame := range [][]byte{
		[]byte("plain json is not a frame"),
		{0xff, 0xfe, 0xfd, 0xfc, 0x00, 0x01},
	} {
		_, err := c.Decompress(frame)
		assert.ErrorContains(t, err, "decode snapshot")
	}
}

func TestZstdCompression_TruncatedFrame(t *testing.T) {
	c := newTestCompressor(t)

	frame, err := c.Compress(bytes.Repeat([]byte(`{"count":1}`), 500))
	require.NoError(t, err)

	_, err = c.Decompress(frame[:len(frame)/2])
	assert.Error(t, err)
}
