package domain

import (
	"hash"
	"path/filepath"
	"strings"
)

// Input is a resolved script source. It is implemented by FileInput and ExprInput only.
type Input interface {
	// SafeName returns a filename-safe name for the input.
	SafeName() string
	// Path returns the absolute script path, or "" for expressions.
	Path() string
	// BaseDir returns the directory relative references are resolved against.
	BaseDir() string
	// Body returns the script source text.
	Body() string

	writeFingerprint(h hash.Hash, deps []Dependency)
}

// FileInput is a script read from disk.
type FileInput struct {
	// Name is the file stem of the script.
	Name string
	// AbsPath is the absolute path of the script.
	AbsPath string
	// Content is the script source.
	Content string
}

// SafeName returns the file stem.
func (f FileInput) SafeName() string { return f.Name }

// Path returns the absolute script path.
func (f FileInput) Path() string { return f.AbsPath }

// BaseDir returns the directory containing the script.
func (f FileInput) BaseDir() string { return filepath.Dir(f.AbsPath) }

// Body returns the script source.
func (f FileInput) Body() string { return f.Content }

// The slot of a file depends on where it lives, not on what it contains.
func (f FileInput) writeFingerprint(h hash.Hash, _ []Dependency) {
	_, _ = h.Write([]byte(f.AbsPath))
}

// ExprInput is an inline expression given on the command line.
type ExprInput struct {
	// Content is the expression text.
	Content string
	// WorkDir is the working directory at the time the expression was resolved.
	WorkDir string
}

// SafeName returns "expr".
func (e ExprInput) SafeName() string { return "expr" }

// Path returns "" since expressions have no file.
func (e ExprInput) Path() string { return "" }

// BaseDir returns the working directory captured at resolution time.
func (e ExprInput) BaseDir() string { return e.WorkDir }

// Body returns the expression text.
func (e ExprInput) Body() string { return e.Content }

func (e ExprInput) writeFingerprint(h hash.Hash, deps []Dependency) {
	for _, dep := range deps {
		_, _ = h.Write([]byte("dep="))
		_, _ = h.Write([]byte(dep.Name))
		_, _ = h.Write([]byte("="))
		_, _ = h.Write([]byte(dep.Version))
		_, _ = h.Write([]byte(";"))
	}
	_, _ = h.Write([]byte(e.Content))
}

// PackageName derives a valid package identifier from a safe name.
// A leading digit is escaped with an underscore, ASCII uppercase letters are
// lowered and any character outside [0-9a-z_-] becomes an underscore.
func PackageName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 1)

	for i, c := range name {
		switch {
		case i == 0 && c >= '0' && c <= '9':
			b.WriteByte('_')
			b.WriteRune(c)
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c == '_', c == '-':
			b.WriteRune(c)
		case c >= 'A' && c <= 'Z':
			b.WriteRune(c + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}
