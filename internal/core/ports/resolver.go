package ports

import "go.trai.ch/rscript/internal/core/domain"

// ScriptResolver locates and reads script files.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ScriptResolver interface {
	// Resolve finds the script by name, trying the known extensions when it has none.
	Resolve(name string) (domain.FileInput, error)
}
