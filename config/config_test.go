package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/config"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Parse("blockfall", nil, env(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	vars := env(map[string]string{
		config.EnvWidth:  "12",
		config.EnvHeight: "24",
		config.EnvSeed:   "7",
		config.EnvStore:  "memory",
		config.EnvTick:   "10ms",
		config.EnvDebug:  "true",
	})

	cfg, err := config.Parse("blockfall", []string{"-width", "8", "-locale", "es"}, vars)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Width)
	assert.Equal(t, 24, cfg.Height)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "memory", cfg.StoreKind)
	assert.Equal(t, 10*time.Millisecond, cfg.TickInterval)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "es", cfg.Locale)
}

func TestInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"non-numeric width", map[string]string{config.EnvWidth: "wide"}, nil},
		{"negative seed", map[string]string{config.EnvSeed: "-1"}, nil},
		{"bad bool", map[string]string{config.EnvHeadless: "maybe"}, nil},
		{"bad duration", map[string]string{config.EnvTick: "soon"}, nil},
		{"tiny board", nil, []string{"-width", "3"}},
		{"zero tick", nil, []string{"-tick", "0s"}},
		{"no games", nil, []string{"-games", "0"}},
		{"unknown store", nil, []string{"-store", "redis"}},
		{"sqlite without path", nil, []string{"-store", "sqlite", "-store-path", ""}},
		{"unknown flag", nil, []string{"-colour"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse("blockfall", tc.args, env(tc.env))
			assert.Error(t, err)
		})
	}
}

func TestLoadFilesReadsDotenv(t *testing.T) {
	// Register cleanup for the variables godotenv is about to set.
	for _, key := range []string{config.EnvHeight, config.EnvStore, config.EnvPath} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	content := "BLOCKFALL_HEIGHT=30\nBLOCKFALL_STORE=sqlite\nBLOCKFALL_STORE_PATH=" + filepath.Join(dir, "hs.db") + "\n"
	require.NoError(t, os.WriteFile(dotenv, []byte(content), 0644))

	cfg, err := config.LoadFiles("blockfall", []string{"-headless"}, dotenv)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, "sqlite", cfg.StoreKind)
	assert.Equal(t, filepath.Join(dir, "hs.db"), cfg.StorePath)
	assert.True(t, cfg.Headless)

	_, err = config.LoadFiles("blockfall", nil, filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}
