// Package catalog keeps the dictionaries named in the configuration and
// loads them on demand, with an LRU of recently used ones.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/sagerenn/hyphenation/dictionary"
	"github.com/sagerenn/hyphenation/internal/cache"
	"github.com/sagerenn/hyphenation/internal/config"
	"github.com/sagerenn/hyphenation/internal/observability"
	"github.com/sagerenn/hyphenation/lang"
)

type key struct {
	lang lang.Language
	kind dictionary.Kind
}

func (k key) String() string {
	return k.lang.Code() + "." + k.kind.String()
}

// Catalog maps each configured language and kind to its dictionary source
// and caches the dictionaries it has loaded. It is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	sources map[key]Source
	order   []Source
	cache   *cache.Cache[key, Entry]
	flight  singleflight.Group
	log     *observability.Logger
}

// Result is the outcome of LoadAll, in configuration order.
type Result struct {
	Entries []Entry
	Errs    []error
}

// New builds a catalog from the dictionaries listed in cfg. Nothing is loaded
// until it is asked for.
func New(cfg config.Config, log *observability.Logger) (*Catalog, error) {
	if log == nil {
		log = observability.Discard()
	}
	c := &Catalog{
		sources: make(map[key]Source, len(cfg.Dictionaries)),
		cache:   cache.New[key, Entry](cfg.Cache.Capacity, cfg.Cache.TTL),
		log:     log,
	}
	for _, d := range cfg.Dictionaries {
		if err := c.Add(sourceFrom(d)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add registers a source. A language may have one source per kind.
func (c *Catalog) Add(src Source) error {
	if !src.Language.Valid() {
		return errors.New("source has no language")
	}
	if src.Kind == 0 {
		src.Kind = dictionary.KindStandard
	}
	k := key{lang: src.Language, kind: src.Kind}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.sources[k]; exists {
		return fmt.Errorf("duplicate dictionary source: %s", k)
	}
	c.sources[k] = src
	c.order = append(c.order, src)
	return nil
}

func (c *Catalog) Sources() []Source {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Source, 0, len(c.order))
	out = append(out, c.order...)
	return out
}

// Get returns the dictionary of the given kind for l, loading it when it is
// not cached. Concurrent calls for the same dictionary share one load.
// The returned entry is shared with the cache and every other caller, so its
// dictionaries must be treated as read-only.
func (c *Catalog) Get(ctx context.Context, l lang.Language, kind dictionary.Kind) (Entry, error) {
	k := key{lang: l, kind: kind}
	if e, ok := c.cache.Get(k); ok {
		return e, nil
	}
	c.mu.RLock()
	src, ok := c.sources[k]
	c.mu.RUnlock()
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotConfigured, k)
	}
	v, err, _ := c.flight.Do(k.String(), func() (any, error) {
		if e, ok := c.cache.Get(k); ok {
			return e, nil
		}
		e, err := c.load(ctx, src)
		if err != nil {
			return Entry{}, err
		}
		c.cache.Set(k, e)
		return e, nil
	})
	if err != nil {
		return Entry{}, err
	}
	return v.(Entry), nil
}

// Standard returns the standard dictionary for l. Its maps are shared with
// the cache and must not be modified.
func (c *Catalog) Standard(ctx context.Context, l lang.Language) (dictionary.Standard, error) {
	e, err := c.Get(ctx, l, dictionary.KindStandard)
	if err != nil {
		return dictionary.Standard{}, err
	}
	return *e.Standard, nil
}

// Extended returns the extended dictionary for l. Its maps are shared with
// the cache and must not be modified.
func (c *Catalog) Extended(ctx context.Context, l lang.Language) (dictionary.Extended, error) {
	e, err := c.Get(ctx, l, dictionary.KindExtended)
	if err != nil {
		return dictionary.Extended{}, err
	}
	return *e.Extended, nil
}

// LoadAll loads every configured source in parallel and caches the ones that
// load. Failures are collected, not fatal.
func (c *Catalog) LoadAll(ctx context.Context) Result {
	sources := c.Sources()
	entries := make([]Entry, len(sources))
	errs := make([]error, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			e, err := c.Get(gctx, src.Language, src.Kind)
			if err != nil {
				errs[i] = fmt.Errorf("load %s: %w", src, err)
				return nil
			}
			entries[i] = e
			return nil
		})
	}
	_ = g.Wait()

	res := Result{Entries: make([]Entry, 0, len(sources))}
	for i := range sources {
		if errs[i] != nil {
			res.Errs = append(res.Errs, errs[i])
			continue
		}
		res.Entries = append(res.Entries, entries[i])
	}
	return res
}

// failureKey names the kind of a load failure for logs and metrics. It is
// empty when err is nil.
func failureKey(err error) string {
	if err == nil {
		return ""
	}
	if k, ok := dictionary.KindOf(err); ok {
		return k.String()
	}
	if errors.Is(err, ErrChecksumMismatch) {
		return "checksum"
	}
	return "other"
}

func (c *Catalog) load(ctx context.Context, src Source) (Entry, error) {
	start := time.Now()
	e, err := Load(ctx, src)
	failure := failureKey(err)
	observability.RecordLoad(failure)
	if err != nil {
		c.log.Error("dictionary load failed",
			"language", src.Language.Code(),
			"kind", src.Kind.String(),
			"failure", failure,
			"error", err,
		)
		return Entry{}, err
	}
	c.log.Info("dictionary loaded",
		"language", src.Language.Code(),
		"kind", src.Kind.String(),
		"embedded", src.Embedded,
		"path", src.Path,
		"blake3", e.Digest,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return e, nil
}
