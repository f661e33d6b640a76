// Package testutil provides shared test helpers for setting up vaults, rule
// sets, and frozen clocks.
package testutil

import (
	"regexp"
	"testing"
	"time"

	"github.com/scottidler/obsidian-bookmark/internal/classify"
	"github.com/scottidler/obsidian-bookmark/internal/note"
	"github.com/scottidler/obsidian-bookmark/internal/storage"
)

// TestVault creates a temporary vault directory with a storage.Provider.
func TestVault(t *testing.T) (string, storage.Provider) {
	t.Helper()
	vaultDir := t.TempDir()
	store, err := storage.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}
	return vaultDir, store
}

// TestRules returns a compiled shorts/youtube/default rule set mirroring a
// typical configuration.
func TestRules(t *testing.T) []classify.Rule {
	t.Helper()
	return []classify.Rule{
		{Name: "shorts", Pattern: regexp.MustCompile(`youtube\.com/shorts/`), Resolution: "720p", Folder: "shorts"},
		{Name: "youtube", Pattern: regexp.MustCompile(`(youtube\.com/watch\?|youtu\.be/)`), Resolution: "SD", Folder: "youtube"},
		{Name: "default", Pattern: regexp.MustCompile(`^https?://`), Resolution: "SD", Folder: "links"},
	}
}

// FixedClock returns a clock frozen at Friday 2024-06-14 23:41 UTC.
func FixedClock(t *testing.T) *note.Clock {
	t.Helper()
	fixed := time.Date(2024, 6, 14, 23, 41, 0, 0, time.UTC)
	return &note.Clock{
		Location: time.UTC,
		Now:      func() time.Time { return fixed },
	}
}
