package ports

import "go.trai.ch/rscript/internal/core/domain"

// Renderer produces the manifest and script text of a generated package.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render returns the manifest and the script body for the input.
	// deps and prelude must already be sorted.
	Render(
		input domain.Input,
		deps []domain.Dependency,
		prelude []string,
		id string,
		env domain.ScriptEnv,
	) (manifest, script string, err error)
}
