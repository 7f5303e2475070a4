package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rscript/internal/adapters/config"
	"go.trai.ch/rscript/internal/core/domain"
)

// isolate points the user directories at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	for _, key := range []string{"CONFIG", "CACHE_DIR", "MAX_CACHE_AGE", "CARGO", "LOG_FILE", "LOG_MAX_SIZE", "LOG_MAX_BACKUPS"} {
		t.Setenv("RSCRIPT_"+key, "")
		require.NoError(t, os.Unsetenv("RSCRIPT_"+key))
	}
	return home
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_Defaults(t *testing.T) {
	home := isolate(t)

	settings, err := config.NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "cache", "rscript"), settings.CacheDir)
	assert.Equal(t, domain.DefaultMaxCacheAge, settings.MaxCacheAge)
	assert.Equal(t, "cargo", settings.Cargo)
	assert.Empty(t, settings.LogFile)
	assert.Equal(t, 10, settings.LogMaxSize)
	assert.Equal(t, 3, settings.LogMaxBackups)
}

func TestLoader_UserConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, "config", "rscript", "config.yaml"), `
cache_dir: /var/tmp/rs
max_cache_age: 72h
cargo: /opt/cargo/bin/cargo
log_file: /var/log/rscript.log
`)

	settings, err := config.NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/tmp/rs", settings.CacheDir)
	assert.Equal(t, 72*time.Hour, settings.MaxCacheAge)
	assert.Equal(t, "/opt/cargo/bin/cargo", settings.Cargo)
	assert.Equal(t, "/var/log/rscript.log", settings.LogFile)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.yaml")
	writeConfig(t, path, "max_cache_age: 1h\nlog_max_size: 5\n")

	t.Setenv("RSCRIPT_CONFIG", path)
	t.Setenv("RSCRIPT_MAX_CACHE_AGE", "90")
	t.Setenv("RSCRIPT_LOG_MAX_BACKUPS", "7")

	settings, err := config.NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, settings.MaxCacheAge)
	assert.Equal(t, 5, settings.LogMaxSize)
	assert.Equal(t, 7, settings.LogMaxBackups)
}

func TestLoader_RelativeCacheDirIsMadeAbsolute(t *testing.T) {
	isolate(t)
	t.Setenv("RSCRIPT_CACHE_DIR", "relative/cache")

	settings, err := config.NewLoader().Load()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "relative", "cache"), settings.CacheDir)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "negative age",
			content:     "max_cache_age: -5m\n",
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "empty cargo",
			content:     "cargo: \"  \"\n",
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "bad duration",
			content:     "max_cache_age: soon\n",
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:        "bad yaml",
			content:     "cargo: [unterminated\n",
			errContains: domain.ErrConfigParseFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolate(t)
			path := filepath.Join(home, "config.yaml")
			writeConfig(t, path, tt.content)

			_, err := config.NewLoaderWithFile(path).Load()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestLoader_MissingExplicitFile(t *testing.T) {
	home := isolate(t)

	_, err := config.NewLoaderWithFile(filepath.Join(home, "absent.yaml")).Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
