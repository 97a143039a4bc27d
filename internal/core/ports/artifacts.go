// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/buildinfo/internal/core/domain"
)

// ArtifactResolver returns the artifacts known for a package reference.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactResolver interface {
	// Resolve returns the recipe or package artifacts of ref, labelled according to naming.
	//
	// Implementations may perform network I/O to complete the set, so ctx bounds the call.
	Resolve(
		ctx context.Context,
		ref domain.PackageReference,
		kind domain.ArtifactKind,
		naming domain.Naming,
	) (domain.ArtifactSet, error)
}

// PackageCache reads package metadata recorded by the local package cache.
type PackageCache interface {
	// Checksums returns the stored-file checksums of the recipe of ref, or of the package
	// ref.PackageID when kind is domain.KindPackage.
	Checksums(ref domain.PackageReference, kind domain.ArtifactKind) (domain.ChecksumTable, error)

	// RemoteURL returns the base URL of the remote the recipe of ref was retrieved from.
	RemoteURL(ref domain.PackageReference) (string, error)
}

// ArtifactRepository talks to the artifact repository service.
type ArtifactRepository interface {
	// FileChecksum returns the checksums the repository holds for the file at path.
	// baseURL is the scheme and host of the repository.
	FileChecksum(ctx context.Context, baseURL, path string, creds domain.Credentials) (domain.Checksum, error)

	// PublishBuildInfo uploads a serialized build-info document.
	PublishBuildInfo(ctx context.Context, baseURL string, body []byte, creds domain.Credentials) error
}
