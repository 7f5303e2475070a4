// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rscript/internal/adapters/cas"
	_ "go.trai.ch/rscript/internal/adapters/config"
	_ "go.trai.ch/rscript/internal/adapters/fs"
	_ "go.trai.ch/rscript/internal/adapters/logger"
	_ "go.trai.ch/rscript/internal/adapters/manifest"
	_ "go.trai.ch/rscript/internal/adapters/shell"
	_ "go.trai.ch/rscript/internal/adapters/telemetry"
	_ "go.trai.ch/rscript/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/rscript/internal/app"
	_ "go.trai.ch/rscript/internal/engine/invoker"
	_ "go.trai.ch/rscript/internal/engine/planner"
)
