package domain

import "time"

// Settings are the user-level options read from the config file and environment.
type Settings struct {
	CacheDir      string        `mapstructure:"cache_dir"`
	MaxCacheAge   time.Duration `mapstructure:"max_cache_age"`
	Cargo         string        `mapstructure:"cargo"`
	LogFile       string        `mapstructure:"log_file"`
	LogMaxSize    int           `mapstructure:"log_max_size"`
	LogMaxBackups int           `mapstructure:"log_max_backups"`
}

// Layout returns the cache layout rooted at CacheDir.
func (s *Settings) Layout() CacheLayout {
	return CacheLayout{Root: s.CacheDir}
}
