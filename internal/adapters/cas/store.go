// Package cas implements the on-disk package cache.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.PackageStore with one directory per package.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new PackageStore.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Materialize writes the manifest, the script and the metadata described by the plan.
func (s *Store) Materialize(plan *domain.Plan) (err error) {
	if err := os.MkdirAll(plan.PkgDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageCreateFailed.Error()), "path", plan.PkgDir)
	}

	defer func() {
		if err == nil || !plan.UsingCache {
			return
		}
		s.logger.Debug("removing partially written package " + plan.PkgDir)
		if rmErr := os.RemoveAll(plan.PkgDir); rmErr != nil {
			s.logger.Warn(fmt.Sprintf("failed to remove package %s: %v", plan.PkgDir, rmErr))
		}
	}()

	var old domain.Metadata
	if plan.OldMetadata != nil {
		old = *plan.OldMetadata
	}

	manifest, err := s.AtomicOverwrite(plan.ManifestPath(), plan.Manifest, old.ManifestHash)
	if err != nil {
		return err
	}
	s.logChange(plan.ManifestPath(), manifest)

	// A forced build always rewrites the script so its mtime moves and the build tool recompiles.
	prevScript := old.ScriptHash
	if plan.ForceCompile {
		prevScript = ""
	}
	script, err := s.AtomicOverwrite(plan.ScriptPath(), plan.Script, prevScript)
	if err != nil {
		return err
	}
	s.logChange(plan.ScriptPath(), script)

	if !plan.EmitMetadata {
		return nil
	}
	return s.PersistMetadata(plan.PkgDir, plan.Metadata)
}

func (s *Store) logChange(path string, res domain.Overwrite) {
	if res.Changed {
		s.logger.Debug("wrote " + path)
		return
	}
	s.logger.Debug("unchanged " + path)
}

// LoadMetadata reads the metadata of a package directory.
func (s *Store) LoadMetadata(dir string) (*domain.Metadata, error) {
	return readMetadata(dir)
}

// PersistMetadata writes the metadata of a package directory.
func (s *Store) PersistMetadata(dir string, meta domain.Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := writeAtomic(domain.MetadataPath(dir), data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "dir", dir)
	}
	return nil
}

// AtomicOverwrite replaces the file at path unless content hashes to previousHash.
func (s *Store) AtomicOverwrite(path, content, previousHash string) (domain.Overwrite, error) {
	hash := domain.HashContent(content)
	if previousHash != "" && hash == previousHash {
		return domain.Overwrite{Changed: false, Hash: hash}, nil
	}

	if err := writeAtomic(path, []byte(content)); err != nil {
		return domain.Overwrite{}, zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return domain.Overwrite{Changed: true, Hash: hash}, nil
}

func readMetadata(dir string) (*domain.Metadata, error) {
	//nolint:gosec // Path is constructed from the cache root and a fingerprint
	data, err := os.ReadFile(domain.MetadataPath(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCacheMiss
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var meta domain.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return &meta, nil
}

// writeAtomic writes data to a temp file next to path and renames it into place.
// Readers see either the old file or the complete new one.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory")
	}

	tmpFile, err := os.CreateTemp(dir, domain.TempFilePattern)
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write temp file")
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to sync temp file")
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to rename temp file")
	}

	return nil
}
