package server

import (
	"slices"
	"unicode/utf8"

	"github.com/tomz197/cyberjet/internal/loop/config"
)

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	seq      uint64 // Earlier results rank first when scores are equal
}

// HubSnapshot is an immutable view of the hub for rendering.
type HubSnapshot struct {
	Players   int
	TopScores []TopScoreEntry // Top N scores for leaderboard display
}

// Leaderboard keeps the best finished games of the process lifetime.
type Leaderboard struct {
	entries []TopScoreEntry
	limit   int
	nextSeq uint64
}

// NewLeaderboard creates a leaderboard holding at most limit entries.
func NewLeaderboard(limit int) *Leaderboard {
	return &Leaderboard{
		entries: make([]TopScoreEntry, 0, limit+1),
		limit:   limit,
	}
}

// Add records a finished game. It returns the 1-based rank the score
// reached, or 0 when it did not make the board.
func (l *Leaderboard) Add(username string, score int) int {
	if score <= 0 || l.limit <= 0 {
		return 0
	}
	l.nextSeq++
	entry := TopScoreEntry{
		Username: TruncateUsername(username),
		Score:    score,
		seq:      l.nextSeq,
	}

	i, _ := slices.BinarySearchFunc(l.entries, entry, compareEntries)
	if i >= l.limit {
		return 0
	}
	l.entries = slices.Insert(l.entries, i, entry)
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
	return i + 1
}

// Entries returns a copy of the board, best first.
func (l *Leaderboard) Entries() []TopScoreEntry {
	return slices.Clone(l.entries)
}

// compareEntries orders by score descending, then by arrival.
func compareEntries(a, b TopScoreEntry) int {
	if a.Score != b.Score {
		return b.Score - a.Score
	}
	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}

// TruncateUsername shortens a username to the display limit.
func TruncateUsername(name string) string {
	if name == "" {
		return "anonymous"
	}
	if utf8.RuneCountInString(name) <= config.MaxUsernameLength {
		return name
	}
	runes := []rune(name)
	return string(runes[:config.MaxUsernameLength-1]) + "…"
}
