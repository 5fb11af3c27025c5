// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fixit/internal/adapters/cache"
	_ "go.trai.ch/fixit/internal/adapters/config"
	_ "go.trai.ch/fixit/internal/adapters/explain"
	_ "go.trai.ch/fixit/internal/adapters/fs"
	_ "go.trai.ch/fixit/internal/adapters/httpapi"
	_ "go.trai.ch/fixit/internal/adapters/i18n"
	_ "go.trai.ch/fixit/internal/adapters/logger"
	_ "go.trai.ch/fixit/internal/adapters/store"
	_ "go.trai.ch/fixit/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/fixit/internal/app"
	_ "go.trai.ch/fixit/internal/engine/verifier"
)
