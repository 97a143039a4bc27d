package ports

// EnvironmentReader exposes the process environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentReader interface {
	// Environ returns the environment as "KEY=VALUE" strings.
	Environ() []string
}
