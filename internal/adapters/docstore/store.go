// Package docstore reads and writes build-info documents as indented JSON files.
package docstore

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

const indent = "    "

// Store implements ports.DocumentStore.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read loads the document at path.
func (s *Store) Read(path string) (*domain.BuildInfo, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}

	var doc domain.BuildInfo
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "path", path)
	}
	return &doc, nil
}

// Encode serializes doc as JSON indented by four spaces with a trailing newline.
func (s *Store) Encode(doc *domain.BuildInfo) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDocumentMarshalFailed.Error())
	}
	return append(data, '\n'), nil
}

// Write stores doc at path through a temporary file and a rename.
// The file is left untouched when it already holds the same content.
func (s *Store) Write(path string, doc *domain.BuildInfo) error {
	data, err := s.Encode(doc)
	if err != nil {
		return err
	}

	if same, err := sameContent(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", path)
	} else if same {
		return nil
	}

	if err := writeAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", path)
	}
	return nil
}

// sameContent compares the xxhash digest of the file at path with that of data.
func sameContent(path string, data []byte) (bool, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return false, err
	}
	return hasher.Sum64() == xxhash.Sum64(data), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
