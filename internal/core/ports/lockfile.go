package ports

import "go.trai.ch/buildinfo/internal/core/domain"

// LockfileLoader defines the interface for loading a dependency lockfile.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileLoader interface {
	// Load reads and parses the lockfile at path.
	Load(path string) (*domain.Lockfile, error)
}
