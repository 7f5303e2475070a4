// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/rscript/internal/core/domain"
)

// Executor defines the interface for running the build tool.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command with the inherited standard streams and waits for it.
	//
	// A non-zero exit of the command is not an error: the exit code is returned as is.
	// An error is returned only when the command could not be started.
	Execute(ctx context.Context, cmd domain.Command) (int, error)
}
