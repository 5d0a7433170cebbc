package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/sagerenn/hyphenation/dictionary"
	"github.com/sagerenn/hyphenation/internal/config"
	"github.com/sagerenn/hyphenation/internal/observability"
	"github.com/sagerenn/hyphenation/lang"
)

func encode[T dictionary.Dictionary](t *testing.T, d T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := dictionary.Encode(&buf, d); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func standard(l lang.Language) dictionary.Standard {
	return dictionary.Standard{
		Language:   l,
		Patterns:   map[string][]uint8{"hyph": {0, 0, 3, 0, 0}},
		Exceptions: map[string][]int{"table": {2}},
		Minima:     dictionary.Minima{Left: 2, Right: 3},
	}
}

func extended(l lang.Language) dictionary.Extended {
	return dictionary.Extended{
		Language: l,
		Patterns: map[string]dictionary.Tally{
			"ssz": {Standard: []uint8{0, 0, 1, 0}, Alternative: &dictionary.Alternative{End: 3, Substitution: "szsz", Index: 2}},
		},
		Minima: dictionary.Minima{Left: 2, Right: 2},
	}
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeXZ(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return writeFile(t, dir, name, buf.Bytes())
}

func digestOf(t *testing.T, data []byte) string {
	t.Helper()
	sum, err := Digest(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return sum
}

func TestGetLoadsAndCaches(t *testing.T) {
	dir := t.TempDir()
	data := encode(t, standard(lang.EnglishUS))
	path := writeFile(t, dir, "en-us.standard.bincode", data)
	cfg := config.Default()
	cfg.Dictionaries = []config.DictConfig{{Language: lang.EnglishUS, Kind: dictionary.KindStandard, Path: path}}
	c, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	e, err := c.Get(ctx, lang.EnglishUS, dictionary.KindStandard)
	if err != nil {
		t.Fatal(err)
	}
	if e.Standard == nil || e.Standard.Language != lang.EnglishUS || e.Extended != nil {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e.Digest != digestOf(t, data) {
		t.Fatalf("digest %s does not match file", e.Digest)
	}

	// Served from the cache once loaded.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	d, err := c.Standard(ctx, lang.EnglishUS)
	if err != nil {
		t.Fatalf("expected cached dictionary: %v", err)
	}
	if d.Language != lang.EnglishUS {
		t.Fatalf("got %v", d.Language)
	}
}

func TestGetXZ(t *testing.T) {
	dir := t.TempDir()
	data := encode(t, extended(lang.Hungarian))
	path := writeXZ(t, dir, "hu.extended.bincode.xz", data)
	cfg := config.Default()
	cfg.Dictionaries = []config.DictConfig{{Language: lang.Hungarian, Kind: dictionary.KindExtended, Path: path, BLAKE3: digestOf(t, data)}}
	c, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	d, err := c.Extended(context.Background(), lang.Hungarian)
	if err != nil {
		t.Fatal(err)
	}
	if d.Patterns["ssz"].Alternative == nil {
		t.Fatalf("unexpected dictionary %+v", d)
	}
}

func TestGetErrors(t *testing.T) {
	dir := t.TempDir()
	gb := writeFile(t, dir, "en-gb.standard.bincode", encode(t, standard(lang.EnglishGB)))
	fr := writeFile(t, dir, "fr.standard.bincode", encode(t, standard(lang.French)))
	corrupt := writeFile(t, dir, "it.standard.bincode.xz", []byte("not xz at all"))
	cfg := config.Default()
	cfg.Dictionaries = []config.DictConfig{
		{Language: lang.EnglishUS, Kind: dictionary.KindStandard, Path: gb},
		{Language: lang.French, Kind: dictionary.KindStandard, Path: fr, BLAKE3: "00ff"},
		{Language: lang.German1996, Kind: dictionary.KindStandard, Path: filepath.Join(dir, "missing")},
		{Language: lang.Italian, Kind: dictionary.KindStandard, Path: corrupt},
	}
	c, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if _, err := c.Standard(ctx, lang.EnglishUS); !errors.Is(err, dictionary.ErrLanguageMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	if _, err := c.Standard(ctx, lang.French); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
	if _, err := c.Standard(ctx, lang.German1996); !errors.Is(err, dictionary.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
	if _, err := c.Standard(ctx, lang.Italian); !errors.Is(err, dictionary.ErrDeserialization) {
		t.Fatalf("expected deserialization error, got %v", err)
	}
	if _, err := c.Extended(ctx, lang.French); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected not configured, got %v", err)
	}
}

func TestDuplicateSource(t *testing.T) {
	cfg := config.Default()
	cfg.Dictionaries = []config.DictConfig{
		{Language: lang.Dutch, Kind: dictionary.KindStandard, Path: "a"},
		{Language: lang.Dutch, Kind: dictionary.KindExtended, Path: "b"},
		{Language: lang.Dutch, Kind: dictionary.KindStandard, Path: "c"},
	}
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected duplicate error")
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Dictionaries = []config.DictConfig{
		{Language: lang.EnglishUS, Kind: dictionary.KindStandard, Path: writeFile(t, dir, "a", encode(t, standard(lang.EnglishUS)))},
		{Language: lang.Hungarian, Kind: dictionary.KindExtended, Path: writeFile(t, dir, "b", encode(t, extended(lang.Hungarian)))},
		{Language: lang.Polish, Kind: dictionary.KindStandard, Path: writeFile(t, dir, "c", encode(t, standard(lang.Slovak)))},
		{Language: lang.Czech, Kind: dictionary.KindStandard, Path: filepath.Join(dir, "missing")},
	}
	c, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	res := c.LoadAll(context.Background())
	if len(res.Entries) != 2 || len(res.Errs) != 2 {
		t.Fatalf("expected 2 entries and 2 errors, got %d/%d: %v", len(res.Entries), len(res.Errs), res.Errs)
	}
	if res.Entries[0].Source.Language != lang.EnglishUS || res.Entries[1].Source.Language != lang.Hungarian {
		t.Fatal("entries must keep configuration order")
	}
	if !errors.Is(res.Errs[0], dictionary.ErrLanguageMismatch) || !errors.Is(res.Errs[1], dictionary.ErrIO) {
		t.Fatalf("unexpected errors %v", res.Errs)
	}
}

func TestConcurrentGet(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Dictionaries = []config.DictConfig{
		{Language: lang.EnglishUS, Kind: dictionary.KindStandard, Path: writeFile(t, dir, "a", encode(t, standard(lang.EnglishUS)))},
	}
	c, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = c.Standard(context.Background(), lang.EnglishUS)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, Source{Language: lang.EnglishUS, Kind: dictionary.KindStandard, Path: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestSniff(t *testing.T) {
	dir := t.TempDir()
	data := encode(t, extended(lang.German1996))
	path := writeXZ(t, dir, "unknown.bincode.xz", data)
	e, err := Sniff(path, dictionary.KindExtended)
	if err != nil {
		t.Fatal(err)
	}
	if e.Source.Language != lang.German1996 || e.Extended == nil || e.Digest != digestOf(t, data) {
		t.Fatalf("unexpected entry %+v", e)
	}
	if _, err := Sniff(path, dictionary.KindStandard); !errors.Is(err, dictionary.ErrDeserialization) {
		t.Fatalf("expected deserialization error for the wrong kind, got %v", err)
	}
}

func TestFailureKey(t *testing.T) {
	cases := map[string]error{
		"":                  nil,
		"language_mismatch": fmt.Errorf("load: %w", &dictionary.LanguageMismatchError{Expected: lang.Dutch, Found: lang.Danish}),
		"resource":          dictionary.ErrResource,
		"io":                &dictionary.IOError{Op: "open", Err: os.ErrNotExist},
		"checksum":          fmt.Errorf("%w: nl.standard", ErrChecksumMismatch),
		"other":             context.Canceled,
	}
	for want, err := range cases {
		if got := failureKey(err); got != want {
			t.Fatalf("failureKey(%v) = %q, want %q", err, got, want)
		}
	}
}

func TestChecksumFailureCounted(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Dictionaries = []config.DictConfig{{
		Language: lang.Dutch,
		Kind:     dictionary.KindStandard,
		Path:     writeFile(t, dir, "nl", encode(t, standard(lang.Dutch))),
		BLAKE3:   "00ff",
	}}
	c, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	count := func() string {
		if v := observability.LoadFailures.Get("checksum"); v != nil {
			return v.String()
		}
		return "0"
	}
	before := count()
	if _, err := c.Standard(context.Background(), lang.Dutch); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
	if count() == before {
		t.Fatal("checksum failure was not counted")
	}
}

func TestEntriesAreShared(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Dictionaries = []config.DictConfig{
		{Language: lang.EnglishUS, Kind: dictionary.KindStandard, Path: writeFile(t, dir, "a", encode(t, standard(lang.EnglishUS)))},
	}
	c, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	first, err := c.Get(ctx, lang.EnglishUS, dictionary.KindStandard)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Get(ctx, lang.EnglishUS, dictionary.KindStandard)
	if err != nil {
		t.Fatal(err)
	}
	if first.Standard != second.Standard {
		t.Fatal("cached entries must share one dictionary")
	}
}
