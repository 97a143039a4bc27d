package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildinfo/internal/adapters/telemetry"
	"go.trai.ch/buildinfo/internal/app"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/buildinfo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	logger   *mocks.MockLogger
	sessions *mocks.MockSessionStore
	provider ComponentProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		logger:   mocks.NewMockLogger(ctrl),
		sessions: mocks.NewMockSessionStore(ctrl),
	}
	application := app.New(
		f.logger,
		mocks.NewMockLockfileLoader(ctrl),
		mocks.NewMockPackageCache(ctrl),
		mocks.NewMockArtifactRepository(ctrl),
		f.sessions,
		mocks.NewMockDocumentStore(ctrl),
		mocks.NewMockEnvironmentReader(ctrl),
		telemetry.NewNoOpTracer(),
		domain.Settings{},
	)
	f.provider = func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: f.logger}, func() {}, nil
	}
	return f
}

func TestRun_Success(t *testing.T) {
	f := newFixture(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), f.provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	f := newFixture(t)
	stopErr := errors.New("file is locked")
	f.sessions.EXPECT().Stop().Return(stopErr)
	f.logger.EXPECT().Error(stopErr)

	exitCode := run(context.Background(), []string{"stop"}, new(bytes.Buffer), f.provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_UnknownCommand(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"deploy"}, new(bytes.Buffer), f.provider)
	assert.Equal(t, 1, exitCode)
}
