package dictionary

import (
	"fmt"

	"github.com/sagerenn/hyphenation/lang"
)

// Standard holds the patterns of a dictionary that only breaks words, never
// alters their spelling.
type Standard struct {
	Language   lang.Language      `msgpack:"language"`
	Patterns   map[string][]uint8 `msgpack:"patterns"`
	Exceptions map[string][]int   `msgpack:"exceptions"`
	Minima     Minima             `msgpack:"minima"`
}

// Extended dictionaries may also describe non-standard breaks, where the
// spelling around the break changes.
type Extended struct {
	Language   lang.Language    `msgpack:"language"`
	Patterns   map[string]Tally `msgpack:"patterns"`
	Exceptions map[string][]int `msgpack:"exceptions"`
	Minima     Minima           `msgpack:"minima"`
}

// Minima are the shortest word fragments allowed before and after a break.
type Minima struct {
	_msgpack struct{} `msgpack:",as_array"`

	Left  int
	Right int
}

// Tally is the score of an extended pattern, with an optional substitution.
type Tally struct {
	Standard    []uint8      `msgpack:"standard"`
	Alternative *Alternative `msgpack:"alternative"`
}

// Alternative replaces the letters in [Start, End) of the matched word with
// Substitution when breaking at Index of the substitution.
type Alternative struct {
	Start        int    `msgpack:"start"`
	End          int    `msgpack:"end"`
	Substitution string `msgpack:"substitution"`
	Index        int    `msgpack:"index"`
}

// Dictionary is satisfied by the two dictionary variants.
type Dictionary interface {
	Standard | Extended
}

// Kind names a dictionary variant in configuration and resource names.
type Kind uint8

const (
	KindStandard Kind = iota + 1
	KindExtended
)

// KindFor reports the kind of dictionary T.
func KindFor[T Dictionary]() Kind {
	var d T
	switch any(d).(type) {
	case Extended:
		return KindExtended
	default:
		return KindStandard
	}
}

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindExtended:
		return "extended"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "standard":
		return KindStandard, nil
	case "extended":
		return KindExtended, nil
	default:
		return 0, fmt.Errorf("unknown dictionary kind %q", s)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if k != KindStandard && k != KindExtended {
		return nil, fmt.Errorf("invalid dictionary kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// LanguageOf returns the language recorded in d.
func LanguageOf[T Dictionary](d T) lang.Language {
	switch v := any(d).(type) {
	case Standard:
		return v.Language
	case Extended:
		return v.Language
	}
	return 0
}
