package ports

import "go.trai.ch/buildinfo/internal/core/domain"

// DocumentStore defines the interface for reading and writing build-info documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DocumentStore interface {
	// Read loads the document at path.
	Read(path string) (*domain.BuildInfo, error)

	// Write stores doc at path. The file is replaced atomically.
	Write(path string, doc *domain.BuildInfo) error

	// Encode serializes doc in the on-disk format.
	Encode(doc *domain.BuildInfo) ([]byte, error)
}

// SessionStore persists the active build session.
type SessionStore interface {
	// Start records a new session, replacing any previous one.
	Start(session domain.Session) error

	// Stop clears the recorded session.
	Stop() error

	// Current returns the recorded session. It returns a zero session when none is recorded.
	Current() (domain.Session, error)
}
