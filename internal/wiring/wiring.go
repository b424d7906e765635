// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/glance/internal/adapters/config"
	_ "go.trai.ch/glance/internal/adapters/decoder"
	_ "go.trai.ch/glance/internal/adapters/fs"
	_ "go.trai.ch/glance/internal/adapters/logger"
	_ "go.trai.ch/glance/internal/adapters/metrics"
	_ "go.trai.ch/glance/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/glance/internal/app"
)
