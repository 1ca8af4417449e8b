// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/unexpire/internal/adapters/config"
	_ "go.trai.ch/unexpire/internal/adapters/fs"
	_ "go.trai.ch/unexpire/internal/adapters/logger"
	_ "go.trai.ch/unexpire/internal/adapters/version"
	// Register app nodes.
	_ "go.trai.ch/unexpire/internal/app"
)
