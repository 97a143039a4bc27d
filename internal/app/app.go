// Package app implements the application layer for buildinfo.
package app

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/buildinfo/internal/build"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports"
	"go.trai.ch/buildinfo/internal/engine/assembler"
	"go.trai.ch/buildinfo/internal/engine/builder"
	"go.trai.ch/buildinfo/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	logger    ports.Logger
	lockfiles ports.LockfileLoader
	cache     ports.PackageCache
	repo      ports.ArtifactRepository
	sessions  ports.SessionStore
	documents ports.DocumentStore
	env       ports.EnvironmentReader
	tracer    ports.Tracer
	settings  domain.Settings
	now       func() time.Time
}

// New creates a new App instance.
func New(
	log ports.Logger,
	lockfiles ports.LockfileLoader,
	cache ports.PackageCache,
	repo ports.ArtifactRepository,
	sessions ports.SessionStore,
	documents ports.DocumentStore,
	env ports.EnvironmentReader,
	tracer ports.Tracer,
	settings domain.Settings,
) *App {
	return &App{
		logger:    log,
		lockfiles: lockfiles,
		cache:     cache,
		repo:      repo,
		sessions:  sessions,
		documents: documents,
		env:       env,
		tracer:    tracer,
		settings:  settings,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for the start timestamp of created documents.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Start opens a build session.
func (a *App) Start(name, number string) error {
	if err := a.sessions.Start(domain.Session{Name: name, Number: number}); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("started build %s #%s", name, number))
	return nil
}

// Stop closes the build session.
func (a *App) Stop() error {
	return a.sessions.Stop()
}

// CreateOptions configuration for the Create method.
type CreateOptions struct {
	Lockfile    string
	Output      string
	MultiModule bool
	SkipEnv     bool
	Credentials domain.Credentials
}

// Create builds a document from the lockfile and writes it to the output path.
// Nothing is written unless every module was resolved.
func (a *App) Create(ctx context.Context, opts CreateOptions) (err error) {
	ctx, span := a.tracer.Start(ctx, "create")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	session, err := a.sessions.Current()
	if err != nil {
		return err
	}
	if session.IsZero() {
		return zerr.Wrap(domain.ErrNoActiveSession, "create build info")
	}

	lockfile, err := a.lockfiles.Load(opts.Lockfile)
	if err != nil {
		return err
	}
	span.SetAttribute("nodes", lockfile.Len())

	res := resolver.New(a.cache, a.repo, a.settings.Credentials.Override(opts.Credentials))
	b := builder.New(res, a.tracer, builder.Options{
		MultiModule: opts.MultiModule,
		Parallelism: a.settings.Parallelism,
	})

	modules, err := b.Build(ctx, lockfile)
	if err != nil {
		return zerr.Wrap(err, domain.ErrBuildInfoCreateFailed.Error())
	}

	doc, err := assembler.New(a.env, build.Version).WithClock(a.now).Assemble(session, modules, opts.SkipEnv)
	if err != nil {
		return err
	}

	if err := a.documents.Write(opts.Output, doc); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("wrote %d modules to %s", len(doc.Modules), opts.Output))
	return nil
}

// UpdateOptions configuration for the Update method.
type UpdateOptions struct {
	Inputs []string
	Output string
}

// Update merges the input documents into the output path.
// A conflict in any document aborts the whole batch and nothing is written.
func (a *App) Update(ctx context.Context, opts UpdateOptions) (err error) {
	_, span := a.tracer.Start(ctx, "merge")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if len(opts.Inputs) == 0 {
		return zerr.Wrap(domain.ErrNoDocuments, "update build info")
	}
	span.SetAttribute("documents", len(opts.Inputs))

	docs := make([]*domain.BuildInfo, 0, len(opts.Inputs))
	for _, path := range opts.Inputs {
		doc, err := a.documents.Read(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	merged, err := domain.MergeAll(docs...)
	if err != nil {
		return err
	}

	if err := a.documents.Write(opts.Output, &merged); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("merged %d documents into %s", len(docs), opts.Output))
	return nil
}

// PublishOptions configuration for the Publish method.
type PublishOptions struct {
	Input       string
	URL         string
	Credentials domain.Credentials
}

// Publish uploads a document to the artifact repository.
func (a *App) Publish(ctx context.Context, opts PublishOptions) error {
	url := opts.URL
	if url == "" {
		url = a.settings.URL
	}
	if url == "" {
		return zerr.Wrap(domain.ErrInvalidURL, "publish build info")
	}

	doc, err := a.documents.Read(opts.Input)
	if err != nil {
		return err
	}

	body, err := a.documents.Encode(doc)
	if err != nil {
		return err
	}

	if err := a.repo.PublishBuildInfo(ctx, url, body, a.settings.Credentials.Override(opts.Credentials)); err != nil {
		return zerr.With(err, "build", doc.Name+" #"+doc.Number)
	}

	a.logger.Info(fmt.Sprintf("published build %s #%s", doc.Name, doc.Number))
	return nil
}
