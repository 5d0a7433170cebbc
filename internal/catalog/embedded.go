//go:build embed_all

package catalog

import "github.com/sagerenn/hyphenation/internal/resources"

func init() {
	embedded = resources.Embedded
}
