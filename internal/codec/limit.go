package codec

import (
	"errors"
	"io"
)

type byteReader interface {
	io.Reader
	io.ByteScanner
}

// limitedReader hands out at most n bytes and remembers why reading stopped,
// so Decode can tell a broken source from a broken record. It implements
// io.ByteScanner so the msgpack decoder consumes it without extra buffering.
type limitedReader struct {
	r        byteReader
	n        int64
	exceeded bool
	err      error
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.n <= 0 {
		l.exceeded = true
		return 0, ErrLimitExceeded
	}
	if int64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err := l.r.Read(p)
	l.n -= int64(n)
	l.note(err)
	return n, err
}

func (l *limitedReader) ReadByte() (byte, error) {
	if l.n <= 0 {
		l.exceeded = true
		return 0, ErrLimitExceeded
	}
	b, err := l.r.ReadByte()
	if err == nil {
		l.n--
	}
	l.note(err)
	return b, err
}

func (l *limitedReader) UnreadByte() error {
	if err := l.r.UnreadByte(); err != nil {
		return err
	}
	l.n++
	return nil
}

func (l *limitedReader) note(err error) {
	if err == nil || l.err != nil {
		return
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return
	}
	l.err = err
}
