package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/photo-organizer/internal/config"
	"github.com/handiism/photo-organizer/internal/model"
	"github.com/handiism/photo-organizer/internal/organizer"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNextMode(t *testing.T) {
	tests := []struct {
		current string
		want    model.Mode
	}{
		{"daily", model.ModeMonthly},
		{"monthly", model.ModeCompact},
		{"compact", model.ModeFlat},
		{"flat", model.ModeDaily},
		{"bogus", model.ModeDaily},
	}

	for _, tt := range tests {
		if got := nextMode(tt.current); got != tt.want {
			t.Errorf("nextMode(%q) = %v, want %v", tt.current, got, tt.want)
		}
	}
}

func TestModel_TypingAndFocus(t *testing.T) {
	m := NewModel("")

	m = update(t, m, keys("/in"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, keys("/lib"))

	if got := m.source.Value(); got != "/in" {
		t.Errorf("source = %q, want %q", got, "/in")
	}
	if got := m.library.Value(); got != "/lib" {
		t.Errorf("library = %q, want %q", got, "/lib")
	}
}

func TestModel_Toggles(t *testing.T) {
	m := NewModel("")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusOptions {
		t.Fatalf("focus = %d, want options", m.focus)
	}

	for _, k := range []string{"m", "m", "n", "c", "d", "v", "+"} {
		m = update(t, m, keys(k))
	}

	s := m.settings
	if s.Mode != "compact" {
		t.Errorf("Mode = %q, want %q", s.Mode, "compact")
	}
	if !s.Rename || !s.DryRun || !s.Verbose {
		t.Errorf("toggles = %+v, want rename, dry run and verbose on", s)
	}
	if s.Action != "copy" {
		t.Errorf("Action = %q, want %q", s.Action, "copy")
	}
	if s.Limit != 26 {
		t.Errorf("Limit = %d, want 26", s.Limit)
	}
	if m.source.Value() != "" {
		t.Errorf("option keys leaked into the source input: %q", m.source.Value())
	}
}

func TestModel_EnterNeedsBothPaths(t *testing.T) {
	m := NewModel("")
	m = update(t, m, keys("/in"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != StateInput {
		t.Errorf("state = %v, want StateInput", m.state)
	}
}

func TestModel_StartSavesSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	m := NewModel(path)
	m.source.SetValue(dir)
	m.library.SetValue(filepath.Join(dir, "lib"))
	m.settings.DryRun = true
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != StateRunning {
		t.Fatalf("state = %v, want StateRunning", m.state)
	}
	saved, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if saved.SourceDir != dir || !saved.DryRun {
		t.Errorf("saved settings = %+v, want source %q and dry run", saved, dir)
	}
}

func TestModel_RunDone(t *testing.T) {
	m := NewModel("")
	m.state = StateRunning
	m.org = organizer.New(&model.RunConfig{}, nil)

	done := update(t, m, RunDoneMsg{Summary: organizer.Summary{Discovered: 2, Transferred: 1, Skipped: 1}})
	if done.state != StateComplete {
		t.Fatalf("state = %v, want StateComplete", done.state)
	}
	if view := done.View(); !strings.Contains(view, "Processed 2 files: 1 transferred") {
		t.Errorf("View() missing summary line:\n%s", view)
	}

	failed := update(t, m, RunDoneMsg{Err: organizer.ErrSourceMissing})
	if failed.state != StateError || !errors.Is(failed.err, organizer.ErrSourceMissing) {
		t.Errorf("state = %v, err = %v, want StateError with ErrSourceMissing", failed.state, failed.err)
	}
}

func TestModel_VerboseFilter(t *testing.T) {
	m := NewModel("")
	m = update(t, m, ProgressMsg{Event: organizer.ProgressEvent{Message: "detail", Level: organizer.LevelVerbose}})
	m = update(t, m, ProgressMsg{Event: organizer.ProgressEvent{Message: "warn", Level: organizer.LevelWarning}})

	if len(m.logs) != 1 || m.logs[0].Message != "warn" {
		t.Errorf("logs = %+v, want only the warning", m.logs)
	}
}
