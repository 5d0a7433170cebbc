//go:build embed_all

package resources

import (
	"embed"
	"io/fs"
)

//go:embed dictionaries/*.bincode
var bundled embed.FS

// Embedded holds the dictionaries compiled into the binary.
var Embedded = func() Table {
	sub, err := fs.Sub(bundled, "dictionaries")
	if err != nil {
		panic(err)
	}
	return NewTable(sub)
}()
