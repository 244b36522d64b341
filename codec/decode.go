package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/madig/readwrite-ufo-glif/value"
)

// Decode parses exactly one frame.
func Decode(data []byte) (*value.Value, error) {
	r := NewReader(bytes.NewReader(data))
	v, err := r.Next()
	if err == io.EOF {
		return nil, &FrameError{Reason: "empty input", Offset: 0}
	}
	if err != nil {
		return nil, err
	}
	if r.offset != len(data) {
		return nil, &FrameError{Reason: "trailing data after frame", Offset: r.offset}
	}
	return v, nil
}

// Reader reads frames from an io.Reader.
type Reader struct {
	r      *bufio.Reader
	offset int
}

// NewReader creates a frame reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next reads and decodes the next frame. It returns io.EOF when the input
// ends cleanly between frames.
func (r *Reader) Next() (*value.Value, error) {
	payload, err := r.NextFrame()
	if err != nil {
		return nil, err
	}
	return decodePayload(payload)
}

// NextFrame reads the next frame and returns its verified, decompressed
// msgpack payload.
func (r *Reader) NextFrame() ([]byte, error) {
	start := r.offset
	header := make([]byte, headerSize)
	n, err := io.ReadFull(r.r, header)
	r.offset += n
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, &FrameError{Reason: "truncated header", Offset: start}
	}

	if string(header[:len(Magic)]) != Magic {
		return nil, &FrameError{Reason: "bad magic", Offset: start}
	}
	if v := header[len(Magic)]; v != Version {
		return nil, &FrameError{Reason: fmt.Sprintf("unsupported version %d", v), Offset: start + len(Magic)}
	}
	flags := Flags(header[len(Magic)+1])
	if flags&^known != 0 {
		return nil, &FrameError{Reason: fmt.Sprintf("unknown flags %#02x", uint8(flags)), Offset: start + len(Magic) + 1}
	}
	length := binary.BigEndian.Uint32(header[len(Magic)+2:])
	if length > MaxPayloadSize {
		return nil, &FrameError{Reason: fmt.Sprintf("payload of %d bytes exceeds maximum", length), Offset: start + len(Magic) + 2}
	}

	var crc uint32
	if flags&FlagHasCRC != 0 {
		var raw [4]byte
		n, err := io.ReadFull(r.r, raw[:])
		r.offset += n
		if err != nil {
			return nil, &FrameError{Reason: "truncated CRC", Offset: start + headerSize}
		}
		crc = binary.BigEndian.Uint32(raw[:])
	}

	payload := make([]byte, length)
	n, err = io.ReadFull(r.r, payload)
	r.offset += n
	if err != nil {
		return nil, &FrameError{Reason: "truncated payload", Offset: r.offset}
	}

	if flags&FlagHasCRC != 0 {
		if err := verifyChecksum(payload, crc); err != nil {
			return nil, err
		}
	}
	if flags&FlagCompressed != 0 {
		payload, err = decompressPayload(payload)
		if err != nil {
			return nil, fmt.Errorf("codec: decompress payload: %w", err)
		}
	}
	return payload, nil
}

func decodePayload(payload []byte) (*value.Value, error) {
	br := bytes.NewReader(payload)
	v, err := decodeValue(msgpack.NewDecoder(br), br)
	if err != nil {
		return nil, fmt.Errorf("codec: decode payload: %w", err)
	}
	if br.Len() != 0 {
		return nil, &FrameError{Reason: fmt.Sprintf("%d bytes left after payload value", br.Len()), Offset: -1}
	}
	return v, nil
}

var errNil = errors.New("nil has no value representation")

// decodeValue reads one value. br is the reader underneath dec; its
// remaining length bounds every container size read from the payload.
func decodeValue(dec *msgpack.Decoder, br *bytes.Reader) (*value.Value, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case c == msgpcode.Nil:
		return nil, errNil
	case c == msgpcode.False || c == msgpcode.True:
		b, err := dec.DecodeBool()
		if err != nil {
			return nil, err
		}
		return value.Bool(b), nil
	case c == msgpcode.Uint64:
		n, err := dec.DecodeUint64()
		if err != nil {
			return nil, err
		}
		return value.Uint(n), nil
	case msgpcode.IsFixedNum(c), c == msgpcode.Int8, c == msgpcode.Int16, c == msgpcode.Int32, c == msgpcode.Int64,
		c == msgpcode.Uint8, c == msgpcode.Uint16, c == msgpcode.Uint32:
		n, err := dec.DecodeInt64()
		if err != nil {
			return nil, err
		}
		return value.Int(n), nil
	case c == msgpcode.Float || c == msgpcode.Double:
		f, err := dec.DecodeFloat64()
		if err != nil {
			return nil, err
		}
		return value.Real(f), nil
	case msgpcode.IsString(c):
		s, err := dec.DecodeString()
		if err != nil {
			return nil, err
		}
		return value.String(s), nil
	case msgpcode.IsBin(c):
		b, err := dec.DecodeBytes()
		if err != nil {
			return nil, err
		}
		return value.Bytes(b), nil
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		if n > br.Len() {
			return nil, &FrameError{Reason: fmt.Sprintf("array of %d items exceeds %d remaining payload bytes", n, br.Len()), Offset: -1}
		}
		items := make([]*value.Value, 0, n)
		for i := 0; i < n; i++ {
			item, err := decodeValue(dec, br)
			if err != nil {
				return nil, fmt.Errorf("seq[%d]: %w", i, err)
			}
			items = append(items, item)
		}
		return value.Seq(items...), nil
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		if n > br.Len()/2 {
			return nil, &FrameError{Reason: fmt.Sprintf("map of %d entries exceeds %d remaining payload bytes", n, br.Len()), Offset: -1}
		}
		m := value.Map()
		for i := 0; i < n; i++ {
			key, err := dec.DecodeString()
			if err != nil {
				return nil, fmt.Errorf("map key %d: %w", i, err)
			}
			if m.Has(key) {
				return nil, fmt.Errorf("duplicate map key %q", key)
			}
			v, err := decodeValue(dec, br)
			if err != nil {
				return nil, fmt.Errorf("map[%q]: %w", key, err)
			}
			m.Set(key, v)
		}
		return m, nil
	}
	return nil, fmt.Errorf("unsupported msgpack code %#02x", c)
}
