package fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver locates script files on disk.
type Resolver struct {
	workDir func() (string, error)
}

// NewResolver creates a new Resolver that resolves relative names against the
// process working directory.
func NewResolver() *Resolver {
	return &Resolver{workDir: os.Getwd}
}

// NewResolverAt creates a new Resolver that resolves relative names against dir.
func NewResolverAt(dir string) *Resolver {
	return &Resolver{workDir: func() (string, error) { return dir, nil }}
}

// Resolve finds the script called name and reads it.
// The name is tried as given first. If it has no extension, each of
// domain.ScriptExtensions is appended in turn.
func (r *Resolver) Resolve(name string) (domain.FileInput, error) {
	wd, err := r.workDir()
	if err != nil {
		return domain.FileInput{}, zerr.Wrap(err, domain.ErrWorkingDirFailed.Error())
	}

	for _, candidate := range candidates(name) {
		path := candidate
		if !filepath.IsAbs(path) {
			path = filepath.Join(wd, path)
		}
		path = filepath.Clean(path)

		f, err := os.Open(path) //nolint:gosec // Script paths are user supplied by design
		if err != nil {
			continue
		}
		return read(path, f)
	}

	return domain.FileInput{}, zerr.With(domain.ErrScriptNotFound, "name", name)
}

// read consumes f, which was opened from the absolute path.
func read(path string, f *os.File) (domain.FileInput, error) {
	defer func() {
		_ = f.Close()
	}()

	content, err := io.ReadAll(f)
	if err != nil {
		return domain.FileInput{}, zerr.With(zerr.Wrap(err, domain.ErrScriptReadFailed.Error()), "path", path)
	}

	return domain.FileInput{
		Name:    stem(path),
		AbsPath: path,
		Content: string(content),
	}, nil
}

func candidates(name string) []string {
	out := []string{name}
	if filepath.Ext(name) != "" {
		return out
	}
	for _, ext := range domain.ScriptExtensions {
		out = append(out, name+ext)
	}
	return out
}

func stem(path string) string {
	base := filepath.Base(path)
	if s := strings.TrimSuffix(base, filepath.Ext(base)); s != "" {
		return s
	}
	return "unknown"
}
