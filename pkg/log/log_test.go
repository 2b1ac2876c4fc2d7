package log

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWriteRetrieve(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "events.db")
	if err := Init(dbPath); err != nil {
		t.Fatal(err)
	}
	defer Close()

	Info().Str("phase", "first").Msg("hello")
	Info().Str("phase", "second").Msg("world")

	entries, err := GetLastNLogs(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Chronological order: oldest first.
	if !strings.Contains(entries[0].Event, "first") {
		t.Errorf("first entry out of order: %s", entries[0].Event)
	}
	if !strings.Contains(entries[1].Event, "world") {
		t.Errorf("second entry missing message: %s", entries[1].Event)
	}

	if err := Init(dbPath); err == nil {
		t.Error("second Init should fail while store is open")
	}
}

func TestLevelEventsReachStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "levels.db")
	if err := Init(dbPath); err != nil {
		t.Fatal(err)
	}
	defer Close()

	Debug().Msg("level debug")
	Info().Msg("level info")
	Warn().Msg("level warn")
	Error().Msg("level error")
	Printf("formatted %d", 7)

	entries, err := GetLastNLogs(10)
	if err != nil {
		t.Fatal(err)
	}
	// No level filter is set, so debug through error all reach the store.
	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}
	for i, want := range []string{"level debug", "level info", "level warn", "level error", "formatted 7"} {
		if !strings.Contains(entries[i].Event, want) {
			t.Errorf("entry %d: %s does not contain %q", i, entries[i].Event, want)
		}
	}
}

func TestLevelEventsBeforeInitAreNoOps(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatal(err)
	}
	// The default logger is a Nop; events must be safe to emit with no
	// store or console configured.
	Debug().Msg("dropped")
	Info().Str("k", "v").Msg("dropped")
	Warn().Msg("dropped")
	Error().Msg("dropped")
	Printf("dropped %s", "too")
}

func TestRetrieveBeforeInit(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := GetLastNLogs(5); err != ErrNotInitialized {
		t.Errorf("got %v, want ErrNotInitialized", err)
	}
}
