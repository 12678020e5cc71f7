package app

// Main menu entries, in display order.
const (
	MenuCreate = iota
	MenuDelete
	MenuExit
)

// DefaultMenuItems are the main menu labels.
var DefaultMenuItems = []string{"Create new branch", "Delete a branch", "Exit"}

// Menu is an ordered list of labels with a cyclic selection.
type Menu struct {
	items    []string
	selected int
}

// NewMenu returns a menu over items with the first one selected.
func NewMenu(items []string) Menu {
	return Menu{items: items}
}

// Items returns the menu labels.
func (m Menu) Items() []string {
	return m.items
}

// Selected returns the selected index.
func (m Menu) Selected() int {
	return m.selected
}

// Next selects the following item, wrapping to the first.
func (m *Menu) Next() {
	if len(m.items) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.items)
}

// Previous selects the preceding item, wrapping to the last.
func (m *Menu) Previous() {
	if len(m.items) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
}
