package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Daisey666/envfile/internal/app"
	"github.com/Daisey666/envfile/internal/core/domain"
	"github.com/Daisey666/envfile/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testProvider(ctrl *gomock.Controller) (ComponentProvider, *mocks.MockManifestLoader, *mocks.MockLogger) {
	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockStore := mocks.NewMockLockStore(ctrl)
	mockWatcher := mocks.NewMockWatcher(ctrl)

	application := app.New(mockLoader, mockLogger, mockStore, mockWatcher)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}
	return provider, mockLoader, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, _, _ := testProvider(ctrl)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, mockLoader, mockLogger := testProvider(ctrl)

	mockLoader.EXPECT().Load("environment.yml").Return(nil, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any())

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"show", "environment.yml"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_ValidationFailureIsSilent verifies that validation failures change
// only the exit code: the findings were already printed by the command.
func TestRun_ValidationFailureIsSilent(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	provider, mockLoader, _ := testProvider(ctrl)

	broken := &domain.Manifest{}
	mockLoader.EXPECT().Load("environment.yml").Return(broken, nil)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"validate", "environment.yml"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.NotContains(t, stderr.String(), "Error:")
}

func TestSilentFailure(t *testing.T) {
	assert.True(t, silentFailure(domain.ErrValidationFailed))
	assert.True(t, silentFailure(domain.ErrManifestsDiffer))
	assert.False(t, silentFailure(errors.New("other")))
	assert.False(t, silentFailure(domain.ErrLockDrift))
}
