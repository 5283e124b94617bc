package stream

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegistryTracksLiveSessions(t *testing.T) {
	registry := NewRegistry()
	require.Empty(t, registry.List())

	store := &fakeStore{}
	first := NewSession("user-1", store, newFrameRecorder(), registry, testConfig())
	second := NewSession("user-2", store, newFrameRecorder(), registry, testConfig())

	registry.Register(first)
	registry.Register(second)

	summaries := registry.List()
	require.Len(t, summaries, 2)

	// Oldest session first.
	require.Equal(t, first.ID(), summaries[0].SessionID)
	require.Equal(t, "user-1", summaries[0].RecipientID)
	require.Equal(t, second.ID(), summaries[1].SessionID)

	registry.Unregister(first.ID())

	summaries = registry.List()
	require.Len(t, summaries, 1)
	require.Equal(t, second.ID(), summaries[0].SessionID)
}

func TestRegistryUnregisterUnknownSessionIsHarmless(t *testing.T) {
	registry := NewRegistry()
	registry.Unregister("no-such-session")
	require.Empty(t, registry.List())
}

func TestSessionUnregistersItselfWhenDone(t *testing.T) {
	registry := NewRegistry()
	store := &fakeStore{}
	recorder := newFrameRecorder()

	cfg := testConfig()
	cfg.MaxLifetime = 30 * time.Millisecond
	session := NewSession("user-1", store, recorder, registry, cfg)

	done := runSession(session, context.Background())

	require.Eventually(t, func() bool {
		return len(registry.List()) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, waitDone(t, done))
	require.Empty(t, registry.List())
}
