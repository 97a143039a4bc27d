package domain

// Environment variables read by the settings loader.
const (
	EnvCacheRoot   = "BUILDINFO_CACHE_ROOT"
	EnvConanHome   = "CONAN_USER_HOME"
	EnvUser        = "BUILDINFO_USER"
	EnvPassword    = "BUILDINFO_PASSWORD"
	EnvAPIKey      = "BUILDINFO_APIKEY"
	EnvURL         = "BUILDINFO_URL"
	EnvParallelism = "BUILDINFO_PARALLELISM"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	// CacheRoot is the local package cache directory.
	CacheRoot string
	// URL is the default artifact repository used by publish.
	URL string
	// Credentials are the default repository credentials. Command flags override them.
	Credentials Credentials
	// Parallelism bounds concurrent metadata lookups. Zero means one per CPU.
	Parallelism int
}
