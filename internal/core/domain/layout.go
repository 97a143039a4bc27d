package domain

import "path/filepath"

const (
	// CacheDirName is the name of the package cache directory inside the user home.
	CacheDirName = ".conan"

	// DataDirName is the directory holding recipe folders inside the cache root.
	DataDirName = "data"

	// MetadataFileName is the per-recipe metadata file inside the cache.
	MetadataFileName = "metadata.json"

	// RemotesFileName is the remotes registry file inside the cache root.
	RemotesFileName = "remotes.json"

	// PropertiesFileName is the session properties file inside the cache root.
	PropertiesFileName = "artifacts.properties"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "buildinfo.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheRoot returns the package cache root for the given user home.
func DefaultCacheRoot(home string) string {
	return filepath.Join(home, CacheDirName)
}

// RecipeDir returns the cache folder of a recipe below root.
func RecipeDir(root string, ref PackageReference) string {
	user, channel := "_", "_"
	if ref.HasUserChannel() {
		user, channel = ref.User, ref.Channel
	}
	return filepath.Join(root, DataDirName, ref.Name, ref.Version, user, channel)
}

// PropertiesPath returns the session properties file below root.
func PropertiesPath(root string) string {
	return filepath.Join(root, PropertiesFileName)
}
