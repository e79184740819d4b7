// Package config resolves runtime settings for the blockfall hosts.
//
// Values are layered: built-in defaults, then an optional .env file, then
// BLOCKFALL_* environment variables, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting a host needs to build an engine and its
// collaborators.
type Config struct {
	Width  int
	Height int
	// Seed drives the piece randomizer. Zero picks a random seed.
	Seed uint64

	StoreKind string
	StorePath string

	Headless     bool
	Debug        bool
	TickInterval time.Duration
	Locale       string
	// Games is the number of games a headless replay plays.
	Games int
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Width:        10,
		Height:       20,
		StoreKind:    "file",
		StorePath:    "blockfall-scores.json",
		TickInterval: time.Second / 60,
		Locale:       "en",
		Games:        1,
	}
}

// Environment variable names.
const (
	EnvWidth    = "BLOCKFALL_WIDTH"
	EnvHeight   = "BLOCKFALL_HEIGHT"
	EnvSeed     = "BLOCKFALL_SEED"
	EnvStore    = "BLOCKFALL_STORE"
	EnvPath     = "BLOCKFALL_STORE_PATH"
	EnvHeadless = "BLOCKFALL_HEADLESS"
	EnvDebug    = "BLOCKFALL_DEBUG"
	EnvTick     = "BLOCKFALL_TICK"
	EnvLocale   = "BLOCKFALL_LOCALE"
	EnvGames    = "BLOCKFALL_GAMES"
)

// Load reads the .env file in the working directory if present, then the
// environment, then parses args (without the program name).
func Load(name string, args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: reading .env: %w", err)
	}
	return Parse(name, args, os.LookupEnv)
}

// LoadFiles is Load with explicit dotenv files. Missing files are an error.
func LoadFiles(name string, args []string, files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("config: reading %v: %w", files, err)
	}
	return Parse(name, args, os.LookupEnv)
}

// Parse applies lookup and then args on top of Default.
func Parse(name string, args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Board width in columns.")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Board height in rows.")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Randomizer seed; 0 picks one.")
	flags.StringVar(&cfg.StoreKind, "store", cfg.StoreKind, "High score backend: memory, file or sqlite.")
	flags.StringVar(&cfg.StorePath, "store-path", cfg.StorePath, "Path for the file or sqlite backend.")
	flags.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Skip render systems.")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the debug inspector.")
	flags.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Frame interval for driven hosts.")
	flags.StringVar(&cfg.Locale, "locale", cfg.Locale, "HUD language.")
	flags.IntVar(&cfg.Games, "games", cfg.Games, "Games to play in a replay run.")
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
		{EnvGames, &c.Games},
	}
	for _, v := range ints {
		raw, ok := lookup(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %s: %w", v.key, err)
		}
		*v.dst = n
	}

	if raw, ok := lookup(EnvSeed); ok && raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		c.Seed = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvHeadless, &c.Headless},
		{EnvDebug, &c.Debug},
	}
	for _, v := range bools {
		raw, ok := lookup(v.key)
		if !ok || raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("config: %s: %w", v.key, err)
		}
		*v.dst = b
	}

	if raw, ok := lookup(EnvTick); ok && raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTick, err)
		}
		c.TickInterval = d
	}

	if raw, ok := lookup(EnvStore); ok && raw != "" {
		c.StoreKind = raw
	}
	if raw, ok := lookup(EnvPath); ok && raw != "" {
		c.StorePath = raw
	}
	if raw, ok := lookup(EnvLocale); ok && raw != "" {
		c.Locale = raw
	}
	return nil
}

// Validate reports the first setting an engine or host would reject.
func (c Config) Validate() error {
	switch {
	case c.Width < 4 || c.Height < 4:
		return fmt.Errorf("config: board %dx%d too small, need at least 4x4", c.Width, c.Height)
	case c.TickInterval <= 0:
		return fmt.Errorf("config: tick interval must be positive, got %s", c.TickInterval)
	case c.Games < 1:
		return fmt.Errorf("config: games must be at least 1, got %d", c.Games)
	}
	switch c.StoreKind {
	case "memory":
	case "file", "sqlite":
		if c.StorePath == "" {
			return fmt.Errorf("config: store %q needs a path", c.StoreKind)
		}
	default:
		return fmt.Errorf("config: unknown store %q", c.StoreKind)
	}
	return nil
}
