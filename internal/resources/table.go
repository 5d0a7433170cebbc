// Package resources resolves dictionaries bundled as named byte blobs.
package resources

import (
	"io/fs"
	"sort"
	"strings"
)

// Extension is the file extension of bundled dictionaries.
const Extension = ".bincode"

// Name returns the resource name of the dictionary of the given kind for the
// language with the given short code.
func Name(code, kind string) string {
	return code + "." + kind + Extension
}

// Table is a read-only set of resources keyed by exact file name.
type Table struct {
	fsys fs.FS
}

func NewTable(fsys fs.FS) Table {
	return Table{fsys: fsys}
}

// Lookup returns the bytes of the resource called name. Names are matched
// exactly and must not contain a directory.
func (t Table) Lookup(name string) ([]byte, bool) {
	if t.fsys == nil || !fs.ValidPath(name) || name == "." || strings.ContainsRune(name, '/') {
		return nil, false
	}
	data, err := fs.ReadFile(t.fsys, name)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Names lists the resources in the table, sorted.
func (t Table) Names() []string {
	if t.fsys == nil {
		return nil
	}
	entries, err := fs.ReadDir(t.fsys, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}
