package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/gitsy/internal/lineedit"
	"github.com/henri123lemoine/gitsy/internal/ui"
)

// ErrSetupCancelled is returned when the user leaves the setup prompt
// without entering a path.
var ErrSetupCancelled = errors.New("setup cancelled by user")

// SetupModel prompts for the worktree path on first run.
type SetupModel struct {
	repoRoot string
	input    lineedit.Buffer
	keys     KeyMap

	width  int
	height int

	done      bool
	cancelled bool
}

// NewSetup creates a setup prompt for the repository at repoRoot.
func NewSetup(repoRoot string) SetupModel {
	return SetupModel{
		repoRoot: repoRoot,
		keys:     DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if strings.TrimSpace(m.input.Value()) == "" {
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
		m.input = editLine(m.keys, m.input, msg)
	}
	return m, nil
}

// View renders the prompt.
func (m SetupModel) View() string {
	before, after := m.input.Split()
	return ui.RenderSetup(ui.SetupParams{
		RepoRoot: m.repoRoot,
		Input:    ui.Input{Before: before, After: after},
		Width:    m.width,
		Height:   m.height,
	})
}

// Result returns the entered path once the prompt has finished.
func (m SetupModel) Result() (string, error) {
	if m.cancelled || !m.done {
		return "", ErrSetupCancelled
	}
	return strings.TrimSpace(m.input.Value()), nil
}

// RunSetup runs the setup prompt as its own program and returns the
// entered worktree path.
func RunSetup(repoRoot string, opts ...tea.ProgramOption) (string, error) {
	final, err := tea.NewProgram(NewSetup(repoRoot), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("setup: %w", err)
	}
	setup, ok := final.(SetupModel)
	if !ok {
		return "", fmt.Errorf("setup: unexpected model %T", final)
	}
	return setup.Result()
}
