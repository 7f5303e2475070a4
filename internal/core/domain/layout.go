package domain

import (
	"path/filepath"
	"time"
)

const (
	// AppName is used for cache and config directory names.
	AppName = "rscript"

	// ProjectsDirName is the name of the generated package cache directory.
	ProjectsDirName = "projects"

	// BinariesDirName is the name of the shared build output directory.
	BinariesDirName = "binaries"

	// MetadataFileName is the name of the per-package metadata file.
	MetadataFileName = "metadata.json"

	// ManifestFileName is the name of the generated package manifest.
	ManifestFileName = "Cargo.toml"

	// ScriptExt is the extension of generated script files.
	ScriptExt = ".rs"

	// ConfigFileName is the name of the user configuration file.
	ConfigFileName = "config.yaml"

	// TempFilePattern is the pattern for temp files created next to their destination.
	TempFilePattern = ".rscript-*.tmp"

	// IDDigestLen is the maximum length of a package fingerprint.
	IDDigestLen = 24

	// DefaultMaxCacheAge is how long an unused package is kept before eviction.
	DefaultMaxCacheAge = 7 * 24 * time.Hour

	// DefaultCargo is the build tool invoked when none is configured.
	DefaultCargo = "cargo"

	// BenchToolchain is the toolchain selected for benchmarks when none is given.
	BenchToolchain = "nightly"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// ScriptExtensions are tried, in order, when a script name has no extension.
var ScriptExtensions = []string{".ers", ".rs"}

// CacheLayout describes the directories under the cache root.
type CacheLayout struct {
	Root string
}

// ProjectsDir returns the directory holding one package directory per fingerprint.
func (l CacheLayout) ProjectsDir() string {
	return filepath.Join(l.Root, ProjectsDirName)
}

// BinariesDir returns the build output directory shared by all packages.
func (l CacheLayout) BinariesDir() string {
	return filepath.Join(l.Root, BinariesDirName)
}

// PackageDir returns the cache-managed package directory for a fingerprint.
func (l CacheLayout) PackageDir(id string) string {
	return filepath.Join(l.ProjectsDir(), id)
}

// MetadataPath returns the metadata file path inside a package directory.
func MetadataPath(pkgDir string) string {
	return filepath.Join(pkgDir, MetadataFileName)
}
