// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/buildinfo/internal/adapters/artifactory"
	_ "go.trai.ch/buildinfo/internal/adapters/config"
	_ "go.trai.ch/buildinfo/internal/adapters/docstore"
	_ "go.trai.ch/buildinfo/internal/adapters/environment"
	_ "go.trai.ch/buildinfo/internal/adapters/localcache"
	_ "go.trai.ch/buildinfo/internal/adapters/lockfile"
	_ "go.trai.ch/buildinfo/internal/adapters/logger"
	_ "go.trai.ch/buildinfo/internal/adapters/session"
	_ "go.trai.ch/buildinfo/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/buildinfo/internal/app"
)
