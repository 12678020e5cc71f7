package app

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSetup(m SetupModel, msgs ...tea.Msg) (SetupModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(SetupModel)
	}
	return m, cmd
}

func TestSetupEntersPath(t *testing.T) {
	m := NewSetup("/repo")

	var msgs []tea.Msg
	for _, r := range "worktrees" {
		msgs = append(msgs, runes(string(r)))
	}
	msgs = append(msgs, keyEnter)

	m, cmd := updateSetup(m, msgs...)
	if cmd == nil {
		t.Fatal("Expected quit command on enter")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}

	path, err := m.Result()
	if err != nil {
		t.Fatalf("Result() error: %v", err)
	}
	if path != "worktrees" {
		t.Errorf("Expected worktrees, got %q", path)
	}
}

func TestSetupRequiresInput(t *testing.T) {
	m, cmd := updateSetup(NewSetup("/repo"), runes(" "), keyEnter)
	if cmd != nil {
		t.Error("Expected blank input to be rejected")
	}
	if _, err := m.Result(); !errors.Is(err, ErrSetupCancelled) {
		t.Errorf("Expected unfinished setup to report cancellation, got %v", err)
	}
}

func TestSetupCancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyEsc, keyCtrlC} {
		m, cmd := updateSetup(NewSetup("/repo"), runes("x"), msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, err := m.Result(); !errors.Is(err, ErrSetupCancelled) {
			t.Errorf("%s: expected ErrSetupCancelled, got %v", msg, err)
		}
	}
}

func TestSetupTrimsPath(t *testing.T) {
	m, _ := updateSetup(NewSetup("/repo"), runes(" wt "), keyEnter)
	path, err := m.Result()
	if err != nil {
		t.Fatalf("Result() error: %v", err)
	}
	if path != "wt" {
		t.Errorf("Expected wt, got %q", path)
	}
}

func TestSetupView(t *testing.T) {
	m, _ := updateSetup(NewSetup("/repo"), tea.WindowSizeMsg{Width: 120, Height: 40})
	v := m.View()
	for _, want := range []string{"WORKTREE PATH", "/repo", "relative to the repository root"} {
		if !strings.Contains(v, want) {
			t.Errorf("Setup view missing %q:\n%s", want, v)
		}
	}
}
