package server

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/cyberjet/internal/loop/config"
)

func TestLeaderboardOrdering(t *testing.T) {
	b := NewLeaderboard(3)

	assert.Equal(t, 1, b.Add("ann", 50))
	assert.Equal(t, 1, b.Add("bob", 80))
	assert.Equal(t, 3, b.Add("cid", 50), "ties rank after earlier results")
	assert.Equal(t, 0, b.Add("dan", 40), "board is full")
	assert.Equal(t, 2, b.Add("eve", 60))

	entries := b.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, "eve", entries[1].Username)
	assert.Equal(t, "ann", entries[2].Username)
}

func TestLeaderboardIgnoresZero(t *testing.T) {
	b := NewLeaderboard(3)
	assert.Equal(t, 0, b.Add("ann", 0))
	assert.Empty(t, b.Entries())

	assert.Equal(t, 0, NewLeaderboard(0).Add("ann", 10))
}

func TestLeaderboardEntriesIsCopy(t *testing.T) {
	b := NewLeaderboard(3)
	b.Add("ann", 10)

	entries := b.Entries()
	entries[0].Score = 999

	assert.Equal(t, 10, b.Entries()[0].Score)
}

func TestTruncateUsername(t *testing.T) {
	assert.Equal(t, "anonymous", TruncateUsername(""))
	assert.Equal(t, "pilot", TruncateUsername("pilot"))

	long := TruncateUsername(strings.Repeat("x", 40))
	assert.Equal(t, config.MaxUsernameLength, len([]rune(long)))
	assert.True(t, strings.HasSuffix(long, "…"))
}

func TestRegisterAndUnregister(t *testing.T) {
	s := NewServer()
	h := s.RegisterClient("pilot")
	require.NotEqual(t, uuid.Nil, h.ID)

	s.step()
	assert.Equal(t, 1, s.GetSnapshot().Players)
	assert.Equal(t, 1, s.PlayerCount())

	s.UnregisterClient(h.ID)
	s.step()
	assert.Equal(t, 0, s.GetSnapshot().Players)

	_, ok := <-h.EventsCh
	assert.False(t, ok, "events channel is closed on unregister")
}

func TestReportScoreUpdatesLeaderboard(t *testing.T) {
	s := NewServer()
	h := s.RegisterClient("pilot")
	s.step()

	s.ReportScore(h.ID, 120)
	s.step()

	snap := s.GetSnapshot()
	require.Len(t, snap.TopScores, 1)
	assert.Equal(t, "pilot", snap.TopScores[0].Username)
	assert.Equal(t, 120, snap.TopScores[0].Score)

	select {
	case ev := <-h.EventsCh:
		assert.Equal(t, EventTopScore, ev.Type)
		assert.Equal(t, 1, ev.Rank)
	default:
		t.Fatal("expected a top score event")
	}
}

func TestReportScoreFromUnknownClient(t *testing.T) {
	s := NewServer()
	s.ReportScore(uuid.New(), 500)
	s.step()

	assert.Empty(t, s.GetSnapshot().TopScores)
}

func TestShutdownNotifiesClients(t *testing.T) {
	s := NewServer()
	h := s.RegisterClient("pilot")
	s.step()

	start := time.Now()
	s.Shutdown(50 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	ev := <-h.EventsCh
	assert.Equal(t, EventServerShutdown, ev.Type)
}

func TestRunStopsOnCancel(t *testing.T) {
	s := NewServer()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	s.RegisterClient("pilot")
	require.Eventually(t, func() bool {
		return s.GetSnapshot().Players == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestScoreReportedBeforeLeavingIsKept(t *testing.T) {
	s := NewServer()
	h := s.RegisterClient("pilot")
	s.step()

	s.ReportScore(h.ID, 420)
	s.UnregisterClient(h.ID)
	s.step()

	snap := s.GetSnapshot()
	require.Len(t, snap.TopScores, 1)
	assert.Equal(t, "pilot", snap.TopScores[0].Username)
	assert.Equal(t, 420, snap.TopScores[0].Score)
	assert.Equal(t, 0, snap.Players)
}

func TestWholeSessionWithinOneStep(t *testing.T) {
	s := NewServer()
	h := s.RegisterClient("pilot")
	s.ReportScore(h.ID, 90)
	s.UnregisterClient(h.ID)
	s.step()

	snap := s.GetSnapshot()
	require.Len(t, snap.TopScores, 1)
	assert.Equal(t, 90, snap.TopScores[0].Score)
	assert.Equal(t, 0, snap.Players)
}

func TestSendsDoNotBlockAfterRunReturns(t *testing.T) {
	s := NewServer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Run(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 40 {
			h := s.RegisterClient("late")
			s.UnregisterClient(h.ID)
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("register/unregister blocked after the hub stopped")
	}
}
