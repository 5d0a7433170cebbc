package catalog

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/sagerenn/hyphenation/dictionary"
	"github.com/sagerenn/hyphenation/internal/config"
	"github.com/sagerenn/hyphenation/lang"
)

var (
	ErrNotConfigured     = errors.New("no dictionary configured")
	ErrEmbeddingDisabled = errors.New("embedded dictionaries are not compiled in (build with -tags embed_all)")
	ErrChecksumMismatch  = errors.New("checksum mismatch")
)

// embedded is set in builds that compile dictionaries in.
var embedded dictionary.ResourceTable

// Source describes where the dictionary for one language and kind lives.
type Source struct {
	Language lang.Language
	Kind     dictionary.Kind
	Path     string
	BLAKE3   string
	Embedded bool
}

func sourceFrom(d config.DictConfig) Source {
	return Source{
		Language: d.Language,
		Kind:     d.Kind,
		Path:     d.Path,
		BLAKE3:   strings.ToLower(strings.TrimSpace(d.BLAKE3)),
		Embedded: d.Embedded,
	}
}

func (s Source) String() string {
	if s.Embedded {
		return s.Language.Code() + "." + s.Kind.String() + " (embedded)"
	}
	return s.Language.Code() + "." + s.Kind.String() + " (" + s.Path + ")"
}

// Entry is a loaded dictionary. Exactly one of Standard and Extended is set,
// according to Source.Kind.
type Entry struct {
	Source   Source
	Digest   string
	Standard *dictionary.Standard
	Extended *dictionary.Extended
}

type xzFile struct {
	*xz.Reader
	f *os.File
}

func (x xzFile) Close() error {
	return x.f.Close()
}

// Open opens a dictionary file, decompressing it when its name ends in .xz.
// Failures are reported with the dictionary error kinds.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &dictionary.IOError{Op: "open", Path: path, Err: err}
	}
	if !strings.HasSuffix(strings.ToLower(path), ".xz") {
		return f, nil
	}
	zr, err := xz.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, &dictionary.DeserializationError{Err: fmt.Errorf("xz: %w", err)}
	}
	return xzFile{Reader: zr, f: f}, nil
}

// Load reads and verifies the dictionary described by src.
func Load(ctx context.Context, src Source) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	entry := Entry{Source: src}
	switch src.Kind {
	case dictionary.KindExtended:
		d, digest, err := loadAs[dictionary.Extended](src)
		if err != nil {
			return Entry{}, err
		}
		entry.Extended, entry.Digest = &d, digest
	case dictionary.KindStandard:
		d, digest, err := loadAs[dictionary.Standard](src)
		if err != nil {
			return Entry{}, err
		}
		entry.Standard, entry.Digest = &d, digest
	default:
		return Entry{}, fmt.Errorf("%s: unsupported dictionary kind %v", src.Language.Code(), src.Kind)
	}
	return entry, nil
}

func loadAs[T dictionary.Dictionary](src Source) (T, string, error) {
	var (
		zero   T
		d      T
		digest string
		err    error
	)
	if src.Embedded {
		d, digest, err = loadEmbedded[T](src)
	} else {
		d, digest, err = loadFile[T](src)
	}
	if err != nil {
		return zero, "", err
	}
	if src.BLAKE3 != "" && src.BLAKE3 != digest {
		return zero, digest, fmt.Errorf("%w: %s: want %s, got %s", ErrChecksumMismatch, src, src.BLAKE3, digest)
	}
	return d, digest, nil
}

func loadFile[T dictionary.Dictionary](src Source) (T, string, error) {
	return readFile(src.Path, func(r io.Reader) (T, error) {
		return dictionary.FromReader[T](src.Language, r)
	})
}

// readFile decodes the file at path with decode and hashes all of its
// content, including anything after the record.
func readFile[T dictionary.Dictionary](path string, decode func(io.Reader) (T, error)) (T, string, error) {
	var zero T
	rc, err := Open(path)
	if err != nil {
		return zero, "", err
	}
	defer rc.Close()
	h := blake3.New()
	d, err := decode(io.TeeReader(rc, h))
	if err != nil {
		return zero, "", fmt.Errorf("%s: %w", path, err)
	}
	if _, err := io.Copy(h, rc); err != nil {
		return zero, "", &dictionary.IOError{Op: "read", Path: path, Err: err}
	}
	return d, hex.EncodeToString(h.Sum(nil)), nil
}

// Sniff decodes the dictionary file at path without checking its language.
// The returned entry's source carries the language found in the file.
func Sniff(path string, kind dictionary.Kind) (Entry, error) {
	entry := Entry{Source: Source{Kind: kind, Path: path}}
	switch kind {
	case dictionary.KindExtended:
		d, digest, err := readFile(path, dictionary.AnyFromReader[dictionary.Extended])
		if err != nil {
			return Entry{}, err
		}
		entry.Extended, entry.Digest, entry.Source.Language = &d, digest, d.Language
	case dictionary.KindStandard:
		d, digest, err := readFile(path, dictionary.AnyFromReader[dictionary.Standard])
		if err != nil {
			return Entry{}, err
		}
		entry.Standard, entry.Digest, entry.Source.Language = &d, digest, d.Language
	default:
		return Entry{}, fmt.Errorf("unsupported dictionary kind %v", kind)
	}
	return entry, nil
}

type digestTable struct {
	table dictionary.ResourceTable
	sum   string
}

func (t *digestTable) Lookup(name string) ([]byte, bool) {
	data, ok := t.table.Lookup(name)
	if ok {
		sum := blake3.Sum256(data)
		t.sum = hex.EncodeToString(sum[:])
	}
	return data, ok
}

func loadEmbedded[T dictionary.Dictionary](src Source) (T, string, error) {
	var zero T
	if embedded == nil {
		return zero, "", ErrEmbeddingDisabled
	}
	table := &digestTable{table: embedded}
	d, err := dictionary.FromTable[T](table, src.Language)
	if err != nil {
		return zero, "", err
	}
	return d, table.sum, nil
}

// Digest returns the hex BLAKE3 digest of everything read from r.
func Digest(r io.Reader) (string, error) {
	h := blake3.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
