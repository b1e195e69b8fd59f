package record

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/kbukum/querykit/errors"
	"github.com/kbukum/querykit/stream"
)

// Codec selects the wire format DecodeSource reads.
type Codec int

const (
	CodecJSON Codec = iota
	CodecMsgpack
)

func (c Codec) String() string {
	switch c {
	case CodecJSON:
		return "json"
	case CodecMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// decoder is the shared surface of json.Decoder and msgpack.Decoder.
type decoder interface {
	Decode(v any) error
}

// DecodeSource adapts a byte stream of concatenated documents into a
// one-shot record source. Each document decodes to one value (objects
// become Records); decoding stops cleanly at end of input and fails
// with DECODE_FAILED on malformed data. The reader is not closed.
func DecodeSource(r io.Reader, codec Codec) stream.Iterator[any] {
	var dec decoder
	switch codec {
	case CodecJSON:
		dec = json.NewDecoder(r)
	case CodecMsgpack:
		dec = msgpack.NewDecoder(r)
	default:
		return stream.Fail[any](errors.InvalidInput("codec", "unknown codec"))
	}
	return &decodeIter{dec: dec, format: codec.String()}
}

type decodeIter struct {
	dec    decoder
	format string
	done   bool
}

func (it *decodeIter) Next(_ context.Context) (any, bool, error) {
	if it.done {
		return nil, false, nil
	}
	var v any
	if err := it.dec.Decode(&v); err != nil {
		it.done = true
		if stderrors.Is(err, io.EOF) {
			return nil, false, nil
		}
		return nil, false, errors.DecodeFailed(it.format, err)
	}
	return v, true, nil
}

func (it *decodeIter) Close() error { return nil }
