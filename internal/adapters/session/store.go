// Package session persists the active build session in the artifacts properties file.
package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.SessionStore.
type Store struct {
	path string
}

// NewStore creates a Store for the properties file below the cache root.
func NewStore(cacheRoot string) *Store {
	return &Store{path: domain.PropertiesPath(cacheRoot)}
}

// Path returns the properties file location.
func (s *Store) Path() string {
	return s.path
}

// Start records session, replacing the file content.
func (s *Store) Start(session domain.Session) error {
	if session.Name == "" || session.Number == "" || multiline(session.Name) || multiline(session.Number) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidSession, "start session"), "path", s.path)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSessionWriteFailed.Error()), "path", s.path)
	}

	// Values stay unquoted; the package manager reads them verbatim.
	content := domain.BuildNameProperty + "=" + session.Name + "\n" +
		domain.BuildNumberProperty + "=" + session.Number + "\n"
	if err := os.WriteFile(s.path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSessionWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// Stop empties the properties file.
func (s *Store) Stop() error {
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSessionWriteFailed.Error()), "path", s.path)
	}
	if err := os.WriteFile(s.path, nil, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSessionWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// Current returns the recorded session, or a zero session when the file is missing or empty.
func (s *Store) Current() (domain.Session, error) {
	props, err := godotenv.Read(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, zerr.With(zerr.Wrap(err, domain.ErrSessionReadFailed.Error()), "path", s.path)
	}

	return domain.Session{
		Name:   props[domain.BuildNameProperty],
		Number: props[domain.BuildNumberProperty],
	}, nil
}

func multiline(v string) bool {
	return strings.ContainsAny(v, "\r\n")
}
