package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/madig/readwrite-ufo-glif/transcode"
	"github.com/madig/readwrite-ufo-glif/ufo"
	"github.com/madig/readwrite-ufo-glif/value"
)

// Encode serializes v into a single frame.
func Encode(v *value.Value, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, opts).WriteValue(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeGlyph transcodes g and serializes the result into a single frame.
func EncodeGlyph(g *ufo.Glyph, opts Options) ([]byte, error) {
	v, err := transcode.Glyph(g)
	if err != nil {
		return nil, err
	}
	return Encode(v, opts)
}

// Writer writes frames to an io.Writer.
type Writer struct {
	w    io.Writer
	opts Options
}

// NewWriter creates a frame writer.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{w: w, opts: opts}
}

// WriteValue encodes v and writes it as one frame.
func (w *Writer) WriteValue(v *value.Value) error {
	var payload bytes.Buffer
	if err := encodeValue(msgpack.NewEncoder(&payload), v); err != nil {
		return err
	}
	return w.WriteFrame(payload.Bytes())
}

// WriteFrame writes an already encoded msgpack payload as one frame,
// applying the writer's compression and CRC options.
func (w *Writer) WriteFrame(payload []byte) error {
	var flags Flags
	if w.opts.Compress {
		compressed, err := compressPayload(payload)
		if err != nil {
			return fmt.Errorf("codec: compress payload: %w", err)
		}
		payload = compressed
		flags |= FlagCompressed
	}
	if len(payload) > MaxPayloadSize {
		return &FrameError{Reason: fmt.Sprintf("payload of %d bytes exceeds maximum", len(payload)), Offset: -1}
	}
	if w.opts.CRC {
		flags |= FlagHasCRC
	}

	header := make([]byte, 0, headerSize+4)
	header = append(header, Magic...)
	header = append(header, Version, byte(flags))
	header = binary.BigEndian.AppendUint32(header, uint32(len(payload)))
	if w.opts.CRC {
		header = binary.BigEndian.AppendUint32(header, checksum(payload))
	}

	if _, err := w.w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

func encodeValue(enc *msgpack.Encoder, v *value.Value) error {
	if v == nil {
		return fmt.Errorf("codec: nil value")
	}
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		return enc.EncodeString(s)
	case value.KindInt:
		n, _ := v.AsInt()
		return enc.EncodeInt64(n)
	case value.KindUint:
		n, _ := v.AsUint()
		return enc.EncodeUint64(n)
	case value.KindReal:
		f, _ := v.AsReal()
		return enc.EncodeFloat64(f)
	case value.KindBool:
		b, _ := v.AsBool()
		return enc.EncodeBool(b)
	case value.KindBytes:
		b, _ := v.AsBytes()
		return enc.EncodeBytes(b)
	case value.KindSeq:
		items, _ := v.AsSeq()
		if err := enc.EncodeArrayLen(len(items)); err != nil {
			return err
		}
		for i, item := range items {
			if err := encodeValue(enc, item); err != nil {
				return fmt.Errorf("seq[%d]: %w", i, err)
			}
		}
		return nil
	case value.KindMap:
		entries, _ := v.AsMap()
		if err := enc.EncodeMapLen(len(entries)); err != nil {
			return err
		}
		for _, e := range entries {
			if err := enc.EncodeString(e.Key); err != nil {
				return err
			}
			if err := encodeValue(enc, e.Value); err != nil {
				return fmt.Errorf("map[%q]: %w", e.Key, err)
			}
		}
		return nil
	}
	return fmt.Errorf("codec: unknown kind %s", v.Kind())
}
