// Package config resolves run defaults from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/alexiusacademia/aci318/internal/search"
	"github.com/alexiusacademia/aci318/internal/section"
)

// Environment keys.
const (
	EnvFc           = "ACI318_FC"
	EnvFy           = "ACI318_FY"
	EnvEs           = "ACI318_ES"
	EnvCover        = "ACI318_COVER"
	EnvSideCover    = "ACI318_SIDE_COVER"
	EnvClearSpacing = "ACI318_CLEAR_SPACING"
	EnvWorkers      = "ACI318_WORKERS"
)

// DefaultFile is the .env file read when no other is named.
const DefaultFile = ".env"

// Config holds the defaults that commands start from before flags apply.
type Config struct {
	Fc           float64 // psi
	Fy           float64 // psi
	Es           float64 // psi
	Cover        float64 // tension and compression cover (in)
	SideCover    float64 // in
	ClearSpacing float64 // in
	Workers      int     // 0 = GOMAXPROCS
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Fc:           section.DefaultFc,
		Fy:           section.DefaultFy,
		Es:           aci.Es,
		Cover:        section.DefaultCover,
		SideCover:    section.DefaultCover,
		ClearSpacing: section.DefaultClearSpacing,
	}
}

// Load resolves the configuration from the process environment, then the
// named .env files, then the built-in defaults, in that order of
// precedence. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultFile}
	}
	fromFile := map[string]string{}
	for _, f := range files {
		values, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range values {
			if _, ok := fromFile[k]; !ok {
				fromFile[k] = v
			}
		}
	}
	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fromFile[key]
		return v, ok
	})
}

// FromLookup builds a configuration from a key lookup; unset keys keep
// their defaults.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	floats := []struct {
		key string
		dst *float64
	}{
		{EnvFc, &c.Fc},
		{EnvFy, &c.Fy},
		{EnvEs, &c.Es},
		{EnvCover, &c.Cover},
		{EnvSideCover, &c.SideCover},
		{EnvClearSpacing, &c.ClearSpacing},
	}
	for _, f := range floats {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.key, err)
		}
		if x <= 0 {
			return Config{}, fmt.Errorf("%s must be positive, got %g", f.key, x)
		}
		*f.dst = x
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		if n < 0 {
			return Config{}, fmt.Errorf("%s must not be negative, got %d", EnvWorkers, n)
		}
		c.Workers = n
	}
	return c, nil
}

// SectionOptions returns the section options carrying these defaults.
func (c Config) SectionOptions() []section.Option {
	return []section.Option{
		section.WithMaterials(c.Fc, c.Fy),
		section.WithSteelModulus(c.Es),
		section.WithCovers(c.Cover, c.Cover, c.SideCover),
		section.WithClearSpacing(c.ClearSpacing),
	}
}

// Search returns the default search configuration with these defaults
// applied.
func (c Config) Search() search.Config {
	s := search.DefaultConfig()
	s.Fc, s.Fy, s.Es = c.Fc, c.Fy, c.Es
	s.TensionCover, s.CompressionCover = c.Cover, c.Cover
	s.SideCover = c.SideCover
	s.ClearSpacing = c.ClearSpacing
	s.Workers = c.Workers
	return s
}
