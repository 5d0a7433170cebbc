//go:build embed_all

package dictionary

import (
	"github.com/sagerenn/hyphenation/internal/resources"
	"github.com/sagerenn/hyphenation/lang"
)

// FromEmbedded loads the dictionary of kind T for l from the dictionaries
// compiled into the binary.
func FromEmbedded[T Dictionary](l lang.Language) (T, error) {
	return FromTable[T](resources.Embedded, l)
}
