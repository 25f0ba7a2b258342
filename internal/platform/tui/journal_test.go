package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
	_ "github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

func journalStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []struct {
		game  string
		score int
	}{{"dodge", 1}, {"dodge_classic", 2}, {"dodge", 3}} {
		run := core.RunLog{Seed: 1, TickRate: 60, Ticks: 100, Score: r.score, Reason: "collision", Duration: time.Second}
		if _, err := store.SaveRun(r.game, run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func updateJournal(t *testing.T, m JournalModel, msg tea.Msg) (JournalModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	jm, ok := next.(JournalModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return jm, cmd
}

func TestJournalFilters(t *testing.T) {
	m := NewJournalModel(journalStore(t), "", 100, 30)
	if got := len(m.table.Rows()); got != 3 {
		t.Fatalf("all filter shows %d runs, want 3", got)
	}

	m, _ = updateJournal(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.filters[m.cursor].gameID != "dodge" {
		t.Fatalf("filter = %q, want dodge", m.filters[m.cursor].gameID)
	}
	if got := len(m.table.Rows()); got != 2 {
		t.Errorf("dodge filter shows %d runs, want 2", got)
	}

	m, _ = updateJournal(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after shift+tab, want 0", m.cursor)
	}
}

func TestJournalStartsOnVariant(t *testing.T) {
	m := NewJournalModel(journalStore(t), "dodge_classic", 100, 30)
	if got := len(m.table.Rows()); got != 1 {
		t.Errorf("dodge_classic filter shows %d runs, want 1", got)
	}
}

func TestJournalSelectRun(t *testing.T) {
	m := NewJournalModel(journalStore(t), "dodge", 100, 30)
	m, cmd := updateJournal(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Error("enter did not quit the browser")
	}
	sel := m.Selected()
	if sel == nil {
		t.Fatal("no run selected")
	}
	if sel.GameID != "dodge" || sel.Score != 3 {
		t.Errorf("selected %+v, want newest dodge run", sel)
	}
}

func TestJournalEmpty(t *testing.T) {
	m := NewJournalModel(nil, "", 100, 30)
	m, _ = updateJournal(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != nil {
		t.Error("selected a run from an empty journal")
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID = %q", got)
	}
}
