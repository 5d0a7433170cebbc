package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sagerenn/hyphenation/dictionary"
	"github.com/sagerenn/hyphenation/lang"
)

type Config struct {
	Log          LogConfig    `toml:"log"`
	Cache        CacheConfig  `toml:"cache"`
	Dictionaries []DictConfig `toml:"dictionaries"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type CacheConfig struct {
	Capacity int           `toml:"capacity"`
	TTL      time.Duration `toml:"ttl"`
}

type DictConfig struct {
	Language lang.Language   `toml:"language"`
	Kind     dictionary.Kind `toml:"kind"`
	Path     string          `toml:"path"`
	BLAKE3   string          `toml:"blake3"`
	Embedded bool            `toml:"embedded"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Cache: CacheConfig{
			Capacity: 32,
			TTL:      0,
		},
		Dictionaries: nil,
	}
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config path is required")
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Cache.Capacity <= 0 {
		cfg.Cache.Capacity = 32
	}
	for i := range cfg.Dictionaries {
		if cfg.Dictionaries[i].Kind == 0 {
			cfg.Dictionaries[i].Kind = dictionary.KindStandard
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every dictionary entry names a language and a source.
func (c Config) Validate() error {
	var errs []error
	for i, d := range c.Dictionaries {
		switch {
		case !d.Language.Valid():
			errs = append(errs, fmt.Errorf("dictionaries[%d]: missing language", i))
		case strings.TrimSpace(d.Path) == "" && !d.Embedded:
			errs = append(errs, fmt.Errorf("dictionaries[%d] (%s): either path or embedded is required", i, d.Language.Code()))
		case d.Path != "" && d.Embedded:
			errs = append(errs, fmt.Errorf("dictionaries[%d] (%s): path and embedded are exclusive", i, d.Language.Code()))
		}
	}
	return errors.Join(errs...)
}
