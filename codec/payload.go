package codec

import (
	"hash/crc32"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// The zstd encoder and decoder are safe for concurrent EncodeAll/DecodeAll
// calls, so every frame shares one of each.
var (
	zstdEncoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	})
	zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(0),
			zstd.WithDecoderMaxMemory(MaxPayloadSize))
	})
)

func compressPayload(payload []byte) ([]byte, error) {
	enc, err := zstdEncoder()
	if err != nil {
		return nil, err
	}
	return enc.EncodeAll(payload, make([]byte, 0, len(payload)/2)), nil
}

// decompressPayload refuses output larger than MaxPayloadSize.
func decompressPayload(payload []byte) ([]byte, error) {
	dec, err := zstdDecoder()
	if err != nil {
		return nil, err
	}
	out, err := dec.DecodeAll(payload, nil)
	if err != nil {
		return nil, err
	}
	if len(out) > MaxPayloadSize {
		return nil, &FrameError{Reason: "decompressed payload exceeds maximum", Offset: -1}
	}
	return out, nil
}

func checksum(payload []byte) uint32 {
	return crc32.ChecksumIEEE(payload)
}

func verifyChecksum(payload []byte, want uint32) error {
	if got := checksum(payload); got != want {
		return &CRCMismatchError{Expected: want, Got: got}
	}
	return nil
}
