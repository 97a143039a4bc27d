// Package config resolves the runtime settings of buildinfo.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DotEnvFileName is the optional file of environment defaults next to the working directory.
const DotEnvFileName = ".env"

// Loader implements ports.SettingsLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves settings in order: buildinfo.yaml found by walking up from cwd,
// then the .env file in cwd, then the process environment.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	var settings domain.Settings

	if path, ok := findConfigFile(cwd); ok {
		if err := l.applyFile(&settings, path); err != nil {
			return domain.Settings{}, err
		}
	}

	if err := loadDotEnv(filepath.Join(cwd, DotEnvFileName)); err != nil {
		return domain.Settings{}, err
	}

	if err := applyEnv(&settings); err != nil {
		return domain.Settings{}, err
	}

	if settings.CacheRoot == "" {
		root, err := defaultCacheRoot()
		if err != nil {
			return domain.Settings{}, err
		}
		settings.CacheRoot = root
	}

	return settings, nil
}

func findConfigFile(cwd string) (string, bool) {
	dir := cwd
	for {
		path := filepath.Join(dir, domain.ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (l *Loader) applyFile(settings *domain.Settings, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is found by walking up from the working directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.Password != "" || file.APIKey != "" {
		l.Logger.Warn("credentials stored in " + domain.ConfigFileName + ", prefer " +
			domain.EnvPassword + " or " + domain.EnvAPIKey)
	}

	if file.CacheRoot != "" {
		settings.CacheRoot = file.CacheRoot
		if !filepath.IsAbs(file.CacheRoot) {
			settings.CacheRoot = filepath.Join(filepath.Dir(path), file.CacheRoot)
		}
	}
	settings.URL = file.URL
	settings.Credentials = domain.Credentials{User: file.User, Password: file.Password, APIKey: file.APIKey}
	settings.Parallelism = file.Parallelism

	return nil
}

// loadDotEnv exports the variables of path that are not already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

func applyEnv(settings *domain.Settings) error {
	if v := os.Getenv(domain.EnvCacheRoot); v != "" {
		settings.CacheRoot = v
	}
	if v := os.Getenv(domain.EnvURL); v != "" {
		settings.URL = v
	}

	settings.Credentials = settings.Credentials.Override(domain.Credentials{
		User:     os.Getenv(domain.EnvUser),
		Password: os.Getenv(domain.EnvPassword),
		APIKey:   os.Getenv(domain.EnvAPIKey),
	})

	if v := os.Getenv(domain.EnvParallelism); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "read environment"), domain.EnvParallelism, v)
		}
		settings.Parallelism = n
	}

	return nil
}

// defaultCacheRoot is <CONAN_USER_HOME or user home>/.conan.
func defaultCacheRoot() (string, error) {
	home := os.Getenv(domain.EnvConanHome)
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", zerr.Wrap(err, "resolve home directory")
		}
	}
	return domain.DefaultCacheRoot(home), nil
}
