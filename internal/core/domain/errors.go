package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyDependencyName is returned when a dependency spec has no package name.
	ErrEmptyDependencyName = zerr.New("cannot have empty dependency package name")

	// ErrEmptyDependencyVersion is returned when a dependency spec has an empty version.
	ErrEmptyDependencyVersion = zerr.New("cannot have empty dependency version")

	// ErrDuplicateDependency is returned when the same dependency name is given twice.
	ErrDuplicateDependency = zerr.New("duplicated dependency")

	// ErrConflictingBuildKind is returned when both test and bench builds are requested.
	ErrConflictingBuildKind = zerr.New("cannot run tests and benchmarks at the same time")

	// ErrScriptNotFound is returned when the script cannot be found under any accepted name.
	ErrScriptNotFound = zerr.New("could not find script")

	// ErrScriptReadFailed is returned when the script file exists but cannot be read.
	ErrScriptReadFailed = zerr.New("failed to read script")

	// ErrNoScript is returned when neither a script nor an expression was given.
	ErrNoScript = zerr.New("no script or expression specified")

	// ErrWatchRequiresFile is returned when watch mode is requested for an expression.
	ErrWatchRequiresFile = zerr.New("watch mode requires a script file")

	// ErrWorkingDirFailed is returned when the current working directory cannot be determined.
	ErrWorkingDirFailed = zerr.New("failed to determine working directory")

	// ErrRenderFailed is returned when the manifest or script cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render package")

	// ErrEmbeddedManifestInvalid is returned when a manifest fragment embedded in a script cannot be parsed.
	ErrEmbeddedManifestInvalid = zerr.New("invalid embedded manifest")

	// ErrPackageCreateFailed is returned when the package directory cannot be created.
	ErrPackageCreateFailed = zerr.New("failed to create package directory")

	// ErrFileWriteFailed is returned when a package file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write package file")

	// ErrStoreReadFailed is returned when the package metadata cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read package metadata")

	// ErrStoreUnmarshalFailed is returned when the package metadata cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal package metadata")

	// ErrStoreMarshalFailed is returned when the package metadata cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal package metadata")

	// ErrStoreWriteFailed is returned when the package metadata cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write package metadata")

	// ErrCacheMiss is returned when a package directory holds no metadata.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrCacheReadFailed is returned when the cache root cannot be listed.
	ErrCacheReadFailed = zerr.New("failed to read cache directory")

	// ErrCacheClearFailed is returned when the compiled artifact cache cannot be removed.
	ErrCacheClearFailed = zerr.New("failed to clear binary cache")

	// ErrCommandStartFailed is returned when the build tool cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start build tool")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")

	// ErrUnknownFormat is returned when an unsupported output format is requested.
	ErrUnknownFormat = zerr.New("unknown output format")
)
