package ports

import "go.trai.ch/buildinfo/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks

// SettingsLoader resolves the runtime configuration.
type SettingsLoader interface {
	// Load resolves settings for a process started in cwd.
	Load(cwd string) (domain.Settings, error)
}
