package ui

import "fmt"

// Screen constants (matching app.Screen)
const (
	ScreenMainMenu = iota
	ScreenCreateBranch
	ScreenDeleteBranch
	ScreenConfirmDelete
)

// AppTitle heads every frame.
const AppTitle = "Gitsy - Git Worktree Manager"

// Input is a line of text split at the cursor.
type Input struct {
	Before string
	After  string
}

// Value returns the whole line.
func (in Input) Value() string {
	return in.Before + in.After
}

// Status is a status message to display.
type Status struct {
	Text    string
	IsError bool
}

// Params contains all state needed to project the main screens.
type Params struct {
	Screen        int
	WorkspaceRoot string

	MenuItems    []string
	MenuSelected int

	// Branches are the branches passing the filter.
	Branches       []string
	BranchSelected int
	BranchTotal    int
	Filter         Input
	Filtering      bool

	Input Input

	PendingBranch string
	OutOfSync     bool

	Status *Status
	Busy   string

	Width  int
	Height int
}

// SetupParams contains the state of the first-run prompt.
type SetupParams struct {
	RepoRoot string
	Input    Input
	Width    int
	Height   int
}

// Item is one row of a selectable list.
type Item struct {
	Label    string
	Selected bool
}

// Line is a line of panel text.
type Line struct {
	Text    string
	Warning bool
	Label   string // optional emphasized prefix
}

// Panel is the main content box of a frame.
type Panel struct {
	Title  string
	Text   []Line
	Items  []Item
	Empty  string // shown instead of Items when there are none
	Input  *Input
	Filter *Input
	Notes  []Line
}

// Frame describes one screen independent of layout.
type Frame struct {
	Title    string
	Subtitle string
	Panel    Panel
	Status   *Status
	Busy     string
	Hint     string
}

// Project maps application state to a Frame.
func Project(p Params) Frame {
	f := Frame{
		Title:    AppTitle,
		Subtitle: p.WorkspaceRoot,
		Status:   p.Status,
		Busy:     p.Busy,
	}

	switch p.Screen {
	case ScreenCreateBranch:
		in := p.Input
		f.Panel = Panel{Title: "Enter new branch name", Input: &in}
		f.Hint = "Type branch name and press Enter to create, Esc to cancel"

	case ScreenDeleteBranch:
		f.Panel = Panel{Title: "Select branch to delete", Items: items(p.Branches, p.BranchSelected)}
		if p.Filtering || p.Filter.Value() != "" {
			filter := p.Filter
			f.Panel.Filter = &filter
			f.Panel.Title = fmt.Sprintf("Select branch to delete (%d/%d)", len(p.Branches), p.BranchTotal)
		}
		if len(p.Branches) == 0 {
			f.Panel.Empty = "No matching branches"
		}
		if p.Filtering {
			f.Hint = "Type to filter, ↑/↓ to navigate, Enter to keep, Esc to clear"
		} else {
			f.Hint = "Use ↑/↓ or j/k to navigate, Enter to delete, / to filter, Esc to cancel"
		}

	case ScreenConfirmDelete:
		f.Panel = Panel{Title: "Confirm Delete", Text: confirmText(p.PendingBranch, p.OutOfSync)}
		f.Hint = "Press Y to confirm, N or Esc to cancel"

	default:
		f.Panel = Panel{Title: "Main Menu", Items: items(p.MenuItems, p.MenuSelected)}
		f.Hint = "Use ↑/↓ or j/k to navigate, Enter to select, Ctrl+C to quit"
	}

	return f
}

// ProjectSetup maps the first-run prompt to a Frame.
func ProjectSetup(p SetupParams) Frame {
	in := p.Input
	return Frame{
		Title: AppTitle,
		Panel: Panel{
			Title: "Worktree Path",
			Text: []Line{
				{Text: "Enter the path where gitsy worktrees will be stored (Press Enter to confirm, Ctrl+C to cancel):"},
			},
			Input: &in,
			Notes: []Line{
				{Label: "Git Repository: ", Text: p.RepoRoot},
				{},
				{Text: "The path can be absolute or relative to the repository root."},
			},
		},
		Hint: "Enter to confirm, Esc or Ctrl+C to cancel",
	}
}

func items(labels []string, selected int) []Item {
	out := make([]Item, len(labels))
	for i, l := range labels {
		out[i] = Item{Label: l, Selected: i == selected}
	}
	return out
}

func confirmText(branch string, outOfSync bool) []Line {
	first := Line{Text: fmt.Sprintf("Branch '%s' is in sync with origin.", branch)}
	if outOfSync {
		first = Line{Text: fmt.Sprintf("WARNING: Branch '%s' is NOT in sync with origin!", branch), Warning: true}
	}
	return []Line{
		first,
		{},
		{Text: "Are you sure you want to delete this worktree? (y/N)"},
	}
}
