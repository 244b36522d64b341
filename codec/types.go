// Package codec implements the binary encoding of transcoded glyph values.
//
// A frame is a fixed header followed by a msgpack payload:
//
//	magic    4 bytes  "UFOG"
//	version  1 byte   (must be 1)
//	flags    1 byte   FlagHasCRC | FlagCompressed
//	length   4 bytes  big-endian payload length
//	crc      4 bytes  big-endian CRC-32 IEEE of the payload, if FlagHasCRC
//	payload  length bytes, zstd-compressed if FlagCompressed
//
// The payload encodes a value graph with fixed-width msgpack types: int64
// and uint64 keep their signedness, reals are float64, maps are written in
// insertion order. Frames may be concatenated into a stream.
package codec

import (
	"fmt"
)

// Magic identifies a frame.
const Magic = "UFOG"

// Version is the frame format version.
const Version uint8 = 1

// MaxPayloadSize is the largest payload accepted by the decoder (64 MiB).
const MaxPayloadSize = 64 * 1024 * 1024

// headerSize is the frame header length without the optional CRC.
const headerSize = len(Magic) + 1 + 1 + 4

// Flags for frames.
type Flags uint8

const (
	FlagHasCRC     Flags = 0x01 // CRC-32 is present
	FlagCompressed Flags = 0x02 // Payload is zstd-compressed
)

// known is the set of flags this version understands.
const known = FlagHasCRC | FlagCompressed

// Options control frame encoding.
type Options struct {
	CRC      bool // Append a CRC-32 of the payload
	Compress bool // zstd-compress the payload
}

// FrameError is returned for malformed frames.
type FrameError struct {
	Reason string
	Offset int
}

func (e *FrameError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("codec: %s at offset %d", e.Reason, e.Offset)
	}
	return fmt.Sprintf("codec: %s", e.Reason)
}

// CRCMismatchError is returned when CRC verification fails.
type CRCMismatchError struct {
	Expected uint32
	Got      uint32
}

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("codec: CRC mismatch: expected %08x, got %08x", e.Expected, e.Got)
}
