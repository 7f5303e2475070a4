package domain

import "time"

// CacheEntry describes one package directory in the cache.
type CacheEntry struct {
	ID            string       `yaml:"id"`
	Source        string       `yaml:"source"`
	Debug         bool         `yaml:"debug"`
	Deps          []Dependency `yaml:"deps,omitempty"`
	LastValidated time.Time    `yaml:"last_validated"`
	Age           string       `yaml:"age"`
}
