// Package config loads user settings for rscript.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// EnvPrefix is the prefix of environment variables that override settings.
	EnvPrefix = "RSCRIPT"

	// EnvConfigFile names an explicit config file, replacing the default location.
	EnvConfigFile = "RSCRIPT_CONFIG"
)

// Setting keys.
const (
	KeyCacheDir      = "cache_dir"
	KeyMaxCacheAge   = "max_cache_age"
	KeyCargo         = "cargo"
	KeyLogFile       = "log_file"
	KeyLogMaxSize    = "log_max_size"
	KeyLogMaxBackups = "log_max_backups"
)

// Loader implements ports.ConfigLoader using viper.
type Loader struct {
	configFile string
}

// NewLoader creates a Loader reading the config file named by RSCRIPT_CONFIG,
// or config.yaml in the user config directory.
func NewLoader() *Loader {
	return &Loader{configFile: os.Getenv(EnvConfigFile)}
}

// NewLoaderWithFile creates a Loader reading the given config file, which must exist.
func NewLoaderWithFile(path string) *Loader {
	return &Loader{configFile: path}
}

// Load reads settings from defaults, the config file and RSCRIPT_* variables, in increasing priority.
func (l *Loader) Load() (*domain.Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := l.readConfigFile(v); err != nil {
		return nil, err
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings, viper.DecodeHook(durationDecodeHook())); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if err := validate(&settings); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(settings.CacheDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "key", KeyCacheDir)
	}
	settings.CacheDir = abs

	return &settings, nil
}

func (l *Loader) readConfigFile(v *viper.Viper) error {
	path := l.configFile
	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(dir, domain.AppName, domain.ConfigFileName)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	if dir, err := os.UserCacheDir(); err == nil {
		v.SetDefault(KeyCacheDir, filepath.Join(dir, domain.AppName))
	} else {
		v.SetDefault(KeyCacheDir, "")
	}
	v.SetDefault(KeyMaxCacheAge, domain.DefaultMaxCacheAge)
	v.SetDefault(KeyCargo, domain.DefaultCargo)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogMaxSize, 10)
	v.SetDefault(KeyLogMaxBackups, 3)
}

func validate(s *domain.Settings) error {
	s.Cargo = strings.TrimSpace(s.Cargo)
	switch {
	case strings.TrimSpace(s.CacheDir) == "":
		return zerr.With(domain.ErrInvalidConfig, "key", KeyCacheDir)
	case s.MaxCacheAge < 0:
		return zerr.With(zerr.With(domain.ErrInvalidConfig, "key", KeyMaxCacheAge), "value", s.MaxCacheAge.String())
	case s.Cargo == "":
		return zerr.With(domain.ErrInvalidConfig, "key", KeyCargo)
	case s.LogMaxSize < 0:
		return zerr.With(domain.ErrInvalidConfig, "key", KeyLogMaxSize)
	case s.LogMaxBackups < 0:
		return zerr.With(domain.ErrInvalidConfig, "key", KeyLogMaxBackups)
	}
	return nil
}

// durationDecodeHook accepts Go duration strings ("72h") or plain seconds.
func durationDecodeHook() mapstructure.DecodeHookFunc {
	targetType := reflect.TypeOf(time.Duration(0))

	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != targetType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			v = strings.TrimSpace(v)
			if v == "" {
				return time.Duration(0), nil
			}
			if parsed, err := time.ParseDuration(v); err == nil {
				return parsed, nil
			}
			if seconds, err := strconv.ParseFloat(v, 64); err == nil {
				return time.Duration(seconds * float64(time.Second)), nil
			}
			return nil, zerr.With(domain.ErrInvalidConfig, "value", v)
		case int:
			return time.Duration(v) * time.Second, nil
		case int64:
			return time.Duration(v) * time.Second, nil
		case float64:
			return time.Duration(v * float64(time.Second)), nil
		case time.Duration:
			return v, nil
		default:
			return data, nil
		}
	}
}
