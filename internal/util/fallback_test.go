package util

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderCall_MockModeWhenLiveMissing(t *testing.T) {
	got, err := ProviderCall[string]{
		Name: "test",
		Mock: func() string { return "mock" },
	}.Do(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "mock", got)
}

func TestProviderCall_LiveResult(t *testing.T) {
	got, err := ProviderCall[int]{
		Name: "test",
		Live: func(context.Context) (int, error) { return 42, nil },
		Mock: func() int { return 1 },
	}.Do(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestProviderCall_FailClosed(t *testing.T) {
	boom := errors.New("boom")
	_, err := ProviderCall[int]{
		Name: "test",
		Live: func(context.Context) (int, error) { return 0, boom },
		Mock: func() int { return 1 },
	}.Do(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestProviderCall_Degrade(t *testing.T) {
	got, err := ProviderCall[int]{
		Name:    "test",
		Live:    func(context.Context) (int, error) { return 0, errors.New("boom") },
		Mock:    func() int { return 7 },
		Degrade: true,
	}.Do(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestProviderCall_NothingConfigured(t *testing.T) {
	_, err := ProviderCall[int]{Name: "test"}.Do(context.Background())
	assert.ErrorIs(t, err, ErrNoProvider)
}
