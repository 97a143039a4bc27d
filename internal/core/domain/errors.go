package domain

import "go.trai.ch/zerr"

// Sentinels are wrapped with zerr.Wrap before metadata is attached, since zerr.With
// copies an *zerr.Error instead of wrapping it and would drop it from the errors.Is chain.
var (
	// ErrInvalidReference is returned when a lockfile package reference cannot be parsed.
	ErrInvalidReference = zerr.New("invalid package reference")

	// ErrMissingNode is returned when a lockfile node requires a uid that is not in the graph.
	ErrMissingNode = zerr.New("lockfile node not found")

	// ErrGraphCycle is returned when the lockfile dependency graph contains a cycle.
	ErrGraphCycle = zerr.New("cycle detected in lockfile graph")

	// ErrAuthentication is returned when the artifact repository rejects the configured credentials.
	ErrAuthentication = zerr.New("authentication rejected by artifact repository")

	// ErrResolution is returned when the artifact repository answers a metadata lookup with a failure.
	ErrResolution = zerr.New("failed to resolve artifact metadata")

	// ErrPublishFailed is returned when the artifact repository refuses a build-info document.
	ErrPublishFailed = zerr.New("failed to publish build info")

	// ErrRepositoryRequestFailed is returned when a request to the artifact repository cannot be sent.
	ErrRepositoryRequestFailed = zerr.New("failed to send request to artifact repository")

	// ErrRepositoryParseFailed is returned when an artifact repository response cannot be decoded.
	ErrRepositoryParseFailed = zerr.New("failed to parse artifact repository response")

	// ErrArtifactConflict is returned when two documents record different contents under one artifact identity.
	ErrArtifactConflict = zerr.New("conflicting artifacts under the same identity")

	// ErrIncompatibleDocuments is returned when merging documents that belong to different build sessions.
	ErrIncompatibleDocuments = zerr.New("build info documents belong to different builds")

	// ErrNoActiveSession is returned when a document is created without a started build session.
	ErrNoActiveSession = zerr.New("no build session started, run 'buildinfo start' first")

	// ErrInvalidSession is returned when a session is started with an empty build name or number.
	ErrInvalidSession = zerr.New("build name and number must not be empty")

	// ErrSessionReadFailed is returned when the session properties file cannot be read.
	ErrSessionReadFailed = zerr.New("failed to read session properties")

	// ErrSessionWriteFailed is returned when the session properties file cannot be written.
	ErrSessionWriteFailed = zerr.New("failed to write session properties")

	// ErrLockfileReadFailed is returned when the lockfile cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileParseFailed is returned when the lockfile cannot be parsed.
	ErrLockfileParseFailed = zerr.New("failed to parse lockfile")

	// ErrMetadataNotFound is returned when the local cache holds no metadata for a recipe.
	ErrMetadataNotFound = zerr.New("package metadata not found in local cache")

	// ErrMetadataReadFailed is returned when package metadata cannot be read or decoded.
	ErrMetadataReadFailed = zerr.New("failed to read package metadata")

	// ErrPackageNotInCache is returned when the recipe metadata does not list the requested package id.
	ErrPackageNotInCache = zerr.New("package not found in local cache")

	// ErrRemoteNotFound is returned when a recipe's remote is not in the remotes registry.
	ErrRemoteNotFound = zerr.New("remote not found in registry")

	// ErrRemotesReadFailed is returned when the remotes registry cannot be read.
	ErrRemotesReadFailed = zerr.New("failed to read remotes registry")

	// ErrDocumentReadFailed is returned when a build-info document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read build info document")

	// ErrDocumentParseFailed is returned when a build-info document cannot be decoded.
	ErrDocumentParseFailed = zerr.New("failed to parse build info document")

	// ErrDocumentMarshalFailed is returned when a build-info document cannot be encoded.
	ErrDocumentMarshalFailed = zerr.New("failed to marshal build info document")

	// ErrDocumentWriteFailed is returned when a build-info document cannot be written.
	ErrDocumentWriteFailed = zerr.New("failed to write build info document")

	// ErrNoDocuments is returned when an update is requested without input documents.
	ErrNoDocuments = zerr.New("no build info documents given")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidURL is returned when a repository URL is not absolute.
	ErrInvalidURL = zerr.New("invalid artifact repository url")

	// ErrBuildInfoCreateFailed is returned when creating a build-info document fails.
	ErrBuildInfoCreateFailed = zerr.New("build info creation failed")
)
