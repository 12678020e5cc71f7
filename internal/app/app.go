package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/gitsy/internal/debug"
	"github.com/henri123lemoine/gitsy/internal/lineedit"
	"github.com/henri123lemoine/gitsy/internal/ui"
)

// Screen is the active screen.
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenCreateBranch
	ScreenDeleteBranch
	ScreenConfirmDelete
)

func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "MainMenu"
	case ScreenCreateBranch:
		return "CreateBranch"
	case ScreenDeleteBranch:
		return "DeleteBranch"
	case ScreenConfirmDelete:
		return "ConfirmDelete"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// NoBranchesText is the status shown when the workspace holds no branch worktrees.
const NoBranchesText = "No branches with worktrees found"

// PendingDeletion is the branch awaiting confirmation on ScreenConfirmDelete.
type PendingDeletion struct {
	Branch    string
	Index     int // position in the loaded branch list
	OutOfSync bool
}

// Model is the main application model.
type Model struct {
	ctx           context.Context
	gateway       Gateway
	workspaceRoot string

	screen Screen
	menu   Menu
	input  lineedit.Buffer

	// Delete flow
	branches  []string
	visible   []int // indexes into branches passing the filter
	cursor    int   // index into visible
	filter    lineedit.Buffer
	filtering bool
	pending   *PendingDeletion

	status *Status

	// Gateway call in flight
	busy      bool
	busyLabel string
	spinner   spinner.Model

	// UI
	width  int
	height int
	keys   KeyMap

	shouldQuit bool
}

// New creates a new Model. Gateway calls run with ctx.
func New(ctx context.Context, gw Gateway, workspaceRoot string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.SpinnerStyle

	return Model{
		ctx:           ctx,
		gateway:       gw,
		workspaceRoot: workspaceRoot,
		screen:        ScreenMainMenu,
		menu:          NewMenu(DefaultMenuItems),
		spinner:       s,
		keys:          DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Handle quit globally
		if key.Matches(msg, m.keys.Quit) {
			debug.Logf("quit requested on %s", m.screen)
			m.shouldQuit = true
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		return m.handleKeyPress(msg)

	case BranchesLoadedMsg:
		m.busy = false
		if msg.Err != nil {
			m.status = errorStatus(fmt.Errorf("failed to list worktrees: %w", msg.Err))
			return m, nil
		}
		if len(msg.Branches) == 0 {
			m.status = &Status{Kind: StatusError, Text: NoBranchesText}
			return m, nil
		}
		m.branches = msg.Branches
		m.filter.Reset()
		m.filtering = false
		m.cursor = 0
		m.pending = nil
		m.applyFilter()
		m.setScreen(ScreenDeleteBranch)
		return m, nil

	case WorktreeCreatedMsg:
		m.busy = false
		if msg.Err != nil {
			m.status = errorStatus(msg.Err)
			return m, nil
		}
		m.status = successStatus("Successfully created worktree for branch '%s'", msg.Branch)
		m.input.Reset()
		return m, nil

	case SyncCheckedMsg:
		m.busy = false
		if msg.Err != nil {
			m.status = errorStatus(fmt.Errorf("failed to check sync status of '%s': %w", msg.Branch, msg.Err))
			return m, nil
		}
		m.pending = &PendingDeletion{
			Branch:    msg.Branch,
			Index:     msg.Index,
			OutOfSync: !msg.InSync,
		}
		m.setScreen(ScreenConfirmDelete)
		return m, nil

	case WorktreeDeletedMsg:
		m.busy = false
		m.pending = nil
		if msg.Err != nil {
			m.status = errorStatus(fmt.Errorf("failed to delete worktree for branch '%s': %w", msg.Branch, msg.Err))
		} else {
			m.status = successStatus("Successfully deleted worktree for branch '%s'", msg.Branch)
		}
		m.setScreen(ScreenMainMenu)
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles key presses based on the current screen.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case ScreenMainMenu:
		return m.handleMenuKeys(msg)
	case ScreenCreateBranch:
		return m.handleCreateKeys(msg)
	case ScreenDeleteBranch:
		if m.filtering {
			return m.handleFilterKeys(msg)
		}
		return m.handleDeleteKeys(msg)
	case ScreenConfirmDelete:
		return m.handleConfirmKeys(msg)
	}
	return m, nil
}

// handleMenuKeys handles key presses on the main menu.
func (m Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.menu.Previous()
	case key.Matches(msg, m.keys.Down):
		m.menu.Next()
	case key.Matches(msg, m.keys.Select):
		switch m.menu.Selected() {
		case MenuCreate:
			m.input.Reset()
			m.status = nil
			m.setScreen(ScreenCreateBranch)
		case MenuDelete:
			m.status = nil
			return m.startBusy("Loading branches...", listBranches(m.ctx, m.gateway))
		case MenuExit:
			m.shouldQuit = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleCreateKeys handles key presses while entering a branch name.
func (m Model) handleCreateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.status = nil
		m.setScreen(ScreenMainMenu)
		return m, nil
	case key.Matches(msg, m.keys.Select):
		branch := m.input.Value()
		if branch == "" {
			return m, nil
		}
		return m.startBusy("Creating worktree...", createWorktree(m.ctx, m.gateway, branch))
	}

	m.input = editLine(m.keys, m.input, msg)
	return m, nil
}

// handleDeleteKeys handles key presses on the branch list.
func (m Model) handleDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.status = nil
		m.clearFilter()
		m.setScreen(ScreenMainMenu)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
	case key.Matches(msg, m.keys.Select):
		if len(m.visible) == 0 {
			return m, nil
		}
		index := m.visible[m.cursor]
		m.status = nil
		return m.startBusy("Checking sync status...", checkSync(m.ctx, m.gateway, m.branches[index], index))
	}
	return m, nil
}

// handleFilterKeys handles key presses while typing a filter.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.clearFilter()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		return m, nil
	case tea.KeyUp:
		m.moveCursor(-1)
		return m, nil
	case tea.KeyDown:
		m.moveCursor(1)
		return m, nil
	}

	before := m.filter.Value()
	m.filter = editLine(m.keys, m.filter, msg)
	if m.filter.Value() != before {
		m.applyFilter()
	}
	return m, nil
}

// handleConfirmKeys handles key presses on the delete confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		if m.pending == nil {
			return m, nil
		}
		return m.startBusy("Deleting worktree...", deleteWorktree(m.ctx, m.gateway, m.pending.Branch))
	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Back):
		m.pending = nil
		m.setScreen(ScreenDeleteBranch)
	}
	return m, nil
}

func (m *Model) setScreen(s Screen) {
	if m.screen != s {
		debug.Logf("screen %s -> %s", m.screen, s)
	}
	m.screen = s
}

func (m Model) startBusy(label string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy = true
	m.busyLabel = label
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// moveCursor moves the selection over the visible branches, wrapping at both ends.
func (m *Model) moveCursor(delta int) {
	n := len(m.visible)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

func (m *Model) clearFilter() {
	m.filter.Reset()
	m.filtering = false
	m.applyFilter()
}

// branchSource implements fuzzy.Source for branch name matching.
type branchSource []string

func (b branchSource) String(i int) string {
	return b[i]
}

func (b branchSource) Len() int {
	return len(b)
}

// applyFilter recomputes the visible branches using fuzzy matching.
func (m *Model) applyFilter() {
	visible := make([]int, 0, len(m.branches))
	query := m.filter.Value()
	if query == "" {
		for i := range m.branches {
			visible = append(visible, i)
		}
	} else {
		for _, match := range fuzzy.FindFrom(query, branchSource(m.branches)) {
			visible = append(visible, match.Index)
		}
	}
	m.visible = visible

	// Ensure cursor is in bounds
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the UI.
func (m Model) View() string {
	p := ui.Params{
		Screen:        int(m.screen),
		WorkspaceRoot: m.workspaceRoot,
		MenuItems:     m.menu.Items(),
		MenuSelected:  m.menu.Selected(),
		BranchTotal:   len(m.branches),
		Filtering:     m.filtering,
		Width:         m.width,
		Height:        m.height,
	}

	before, after := m.input.Split()
	p.Input = ui.Input{Before: before, After: after}

	before, after = m.filter.Split()
	p.Filter = ui.Input{Before: before, After: after}

	for _, i := range m.visible {
		p.Branches = append(p.Branches, m.branches[i])
	}
	p.BranchSelected = m.cursor

	if m.pending != nil {
		p.PendingBranch = m.pending.Branch
		p.OutOfSync = m.pending.OutOfSync
	}
	if m.status != nil {
		p.Status = &ui.Status{Text: m.status.Text, IsError: m.status.IsError()}
	}
	if m.busy {
		p.Busy = m.spinner.View() + " " + m.busyLabel
	}

	return ui.Render(p)
}

// Screen returns the active screen.
func (m Model) Screen() Screen {
	return m.screen
}

// Status returns the current status message, or nil.
func (m Model) Status() *Status {
	return m.status
}

// Pending returns the branch awaiting delete confirmation, or nil.
func (m Model) Pending() *PendingDeletion {
	return m.pending
}

// Branches returns the loaded workspace branches.
func (m Model) Branches() []string {
	return m.branches
}

// InputValue returns the branch name being typed.
func (m Model) InputValue() string {
	return m.input.Value()
}

// Busy reports whether a gateway call is in flight.
func (m Model) Busy() bool {
	return m.busy
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Commands

func listBranches(ctx context.Context, gw Gateway) tea.Cmd {
	return func() tea.Msg {
		branches, err := gw.ListWorkspaceBranches(ctx)
		return BranchesLoadedMsg{Branches: branches, Err: err}
	}
}

func createWorktree(ctx context.Context, gw Gateway, branch string) tea.Cmd {
	return func() tea.Msg {
		err := gw.Create(ctx, branch)
		return WorktreeCreatedMsg{Branch: branch, Err: err}
	}
}

func checkSync(ctx context.Context, gw Gateway, branch string, index int) tea.Cmd {
	return func() tea.Msg {
		inSync, err := gw.IsInSync(ctx, branch)
		return SyncCheckedMsg{Branch: branch, Index: index, InSync: inSync, Err: err}
	}
}

func deleteWorktree(ctx context.Context, gw Gateway, branch string) tea.Cmd {
	return func() tea.Msg {
		err := gw.Remove(ctx, branch)
		return WorktreeDeletedMsg{Branch: branch, Err: err}
	}
}
