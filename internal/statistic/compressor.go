package statistic

import (
	"fauna/internal/statistic/interfaces"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// maxSnapshotSize bounds a decoded store snapshot. A history of 100 view
// records plus quiz stats is a few kilobytes.
const maxSnapshotSize = 64 << 20

// ZstdCompression frames store snapshots written by FileStore.
type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *ZstdCompression) Compress(snapshot []byte) ([]byte, error) {
	return z.encoder.EncodeAll(snapshot, make([]byte, 0, len(snapshot)/2)), nil
}

func (z *ZstdCompression) Decompress(frame []byte) ([]byte, error) {
	out, err := z.decoder.DecodeAll(frame, nil)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return out, nil
}

// Close releases encoder and decoder goroutines. The compressor is unusable afterwards.
func (z *ZstdCompression) Close() {
	_ = z.encoder.Close()
	z.decoder.Close()
}

func NewZstdCompressor() (interfaces.CompressorInterface, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(maxSnapshotSize),
	)
	if err != nil {
		_ = encoder.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}
