package dictionary

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/sagerenn/hyphenation/internal/codec"
	"github.com/sagerenn/hyphenation/internal/resources"
	"github.com/sagerenn/hyphenation/lang"
)

// FromPath reads the dictionary stored at path and checks that it is for l.
func FromPath[T Dictionary](l lang.Language, path string) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	d, err := FromReader[T](l, bufio.NewReader(f))
	if ioErr, ok := err.(*IOError); ok && ioErr.Path == "" {
		ioErr.Path = path
	}
	return d, err
}

// AnyFromPath reads the dictionary stored at path, whatever its language.
func AnyFromPath[T Dictionary](path string) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	d, err := AnyFromReader[T](bufio.NewReader(f))
	if ioErr, ok := err.(*IOError); ok && ioErr.Path == "" {
		ioErr.Path = path
	}
	return d, err
}

// FromReader decodes a dictionary from r and checks that it is for l.
func FromReader[T Dictionary](l lang.Language, r io.Reader) (T, error) {
	d, err := AnyFromReader[T](r)
	if err != nil {
		return d, err
	}
	if err := Validate(l, LanguageOf(d)); err != nil {
		var zero T
		return zero, err
	}
	return d, nil
}

// AnyFromReader decodes a dictionary from r without checking which language
// it is for. Records larger than codec.DefaultLimit are rejected, and so are
// records that carry no language at all.
func AnyFromReader[T Dictionary](r io.Reader) (T, error) {
	var d T
	if err := codec.Decode(r, codec.DefaultLimit, &d); err != nil {
		var zero T
		return zero, liftDecode(err)
	}
	// A nil record, a nil language or a missing key all leave the zero value.
	if !LanguageOf(d).Valid() {
		var zero T
		return zero, &DeserializationError{Err: errNoLanguage}
	}
	return d, nil
}

// ResourceTable resolves embedded resources by exact name.
type ResourceTable interface {
	Lookup(name string) ([]byte, bool)
}

// FromTable loads the dictionary of kind T for l from table. The resource
// name already encodes l, the language is checked all the same.
func FromTable[T Dictionary](table ResourceTable, l lang.Language) (T, error) {
	var zero T
	data, ok := table.Lookup(resources.Name(l.Code(), KindFor[T]().String()))
	if !ok {
		return zero, ErrResource
	}
	return FromReader[T](l, bytes.NewReader(data))
}

// Encode writes d in the encoding read by the loaders.
func Encode[T Dictionary](w io.Writer, d T) error {
	return codec.Encode(w, d)
}
