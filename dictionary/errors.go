package dictionary

import (
	"errors"
	"fmt"

	"github.com/sagerenn/hyphenation/internal/codec"
	"github.com/sagerenn/hyphenation/lang"
)

// Sentinel errors, one per failure kind. Every error returned by this
// package matches exactly one of them with errors.Is.
var (
	// ErrDeserialization: the input is not a well-formed dictionary.
	ErrDeserialization = errors.New("dictionary could not be deserialized")
	// ErrIO: the dictionary source could not be opened or read.
	ErrIO = errors.New("dictionary could not be read")
	// ErrLanguageMismatch: the dictionary is for another language.
	ErrLanguageMismatch = errors.New("loaded a dictionary for the wrong language")
	// ErrResource: no embedded dictionary exists under the computed name.
	ErrResource = errors.New("embedded dictionary could not be retrieved")
)

// ErrSizeLimit is wrapped by deserialization errors caused by records larger
// than the decoder accepts.
var ErrSizeLimit = codec.ErrLimitExceeded

var errNoLanguage = errors.New("record has no language")

// ErrorKind is the closed set of failure kinds reported by KindOf.
type ErrorKind uint8

const (
	Deserialization ErrorKind = iota + 1
	IO
	LanguageMismatch
	Resource
)

func (k ErrorKind) String() string {
	switch k {
	case Deserialization:
		return "deserialization"
	case IO:
		return "io"
	case LanguageMismatch:
		return "language_mismatch"
	case Resource:
		return "resource"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// KindOf classifies err. It reports false for errors that did not originate
// in this package.
func KindOf(err error) (ErrorKind, bool) {
	switch {
	case err == nil:
		return 0, false
	case errors.Is(err, ErrDeserialization):
		return Deserialization, true
	case errors.Is(err, ErrIO):
		return IO, true
	case errors.Is(err, ErrLanguageMismatch):
		return LanguageMismatch, true
	case errors.Is(err, ErrResource):
		return Resource, true
	}
	return 0, false
}

// DeserializationError wraps a codec failure.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return e.Err.Error()
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// IOError wraps a failure to open or read a dictionary source.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// LanguageMismatchError reports a dictionary whose language is not the one
// the caller asked for.
type LanguageMismatchError struct {
	Expected lang.Language
	Found    lang.Language
}

func (e *LanguageMismatchError) Error() string {
	return fmt.Sprintf("language mismatch: attempted to load a dictionary for `%s`, but found a dictionary for `%s` instead", e.Expected, e.Found)
}

func (e *LanguageMismatchError) Is(target error) bool {
	return target == ErrLanguageMismatch
}

// liftDecode converts a codec failure into the matching kind.
func liftDecode(err error) error {
	if err == nil {
		return nil
	}
	var readErr *codec.ReadError
	if errors.As(err, &readErr) {
		return &IOError{Op: "read", Err: readErr.Err}
	}
	return &DeserializationError{Err: err}
}
