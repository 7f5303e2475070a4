package ports

import "go.trai.ch/rscript/internal/core/domain"

// PackageStore owns the on-disk package directories.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PackageStore interface {
	// Materialize writes the manifest, the script and finally the metadata described by the plan.
	// On failure a cache-managed directory is removed; a user-specified one is left alone.
	Materialize(plan *domain.Plan) error

	// LoadMetadata reads the metadata of a package directory.
	// It returns domain.ErrCacheMiss when no metadata file exists.
	LoadMetadata(dir string) (*domain.Metadata, error)

	// PersistMetadata atomically writes the metadata of a package directory.
	PersistMetadata(dir string, meta domain.Metadata) error

	// AtomicOverwrite replaces the file at path unless content hashes to previousHash.
	// An empty previousHash never matches.
	AtomicOverwrite(path, content, previousHash string) (domain.Overwrite, error)
}
