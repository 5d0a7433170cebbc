// Package codec reads and writes dictionary records in their binary
// encoding (MessagePack) and bounds how much input a single decode may
// consume.
package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// DefaultLimit is the largest encoded record Decode accepts.
const DefaultLimit int64 = 5_000_000

// ErrLimitExceeded is wrapped by Decode when a record needs more input than
// the limit allows.
var ErrLimitExceeded = errors.New("codec: size limit exceeded")

// ReadError reports a failure of the underlying reader, as opposed to a
// problem with the encoded data.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Decode decodes one record from r into v, reading at most limit bytes. When
// r is an io.ByteScanner it is left positioned right after the record;
// otherwise it is buffered and may be read past the record.
func Decode(r io.Reader, limit int64, v any) error {
	src, ok := r.(byteReader)
	if !ok {
		src = bufio.NewReader(r)
	}
	lr := &limitedReader{r: src, n: limit}
	dec := msgpack.NewDecoder(lr)
	err := dec.Decode(v)
	switch {
	case lr.err != nil:
		return &ReadError{Err: lr.err}
	case lr.exceeded:
		return fmt.Errorf("%w: record is larger than %d bytes", ErrLimitExceeded, limit)
	case err != nil:
		return err
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	return Decode(bytes.NewReader(data), DefaultLimit, v)
}

func Encode(w io.Writer, v any) error {
	return msgpack.NewEncoder(w).Encode(v)
}

func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
