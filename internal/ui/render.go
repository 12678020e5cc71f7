package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// Render draws the main screens.
func Render(p Params) string {
	return Draw(Project(p), p.Width)
}

// RenderSetup draws the first-run prompt.
func RenderSetup(p SetupParams) string {
	return Draw(ProjectSetup(p), p.Width)
}

// Draw renders a Frame at the given terminal width.
func Draw(f Frame, width int) string {
	// Graceful degradation for small or unknown terminal sizes
	if width < MinWidth {
		width = MinWidth
	}
	contentWidth := width - 6 // box borders and padding

	var b strings.Builder

	b.WriteString(TitleStyle.Render(f.Title) + "\n")
	if f.Subtitle != "" {
		b.WriteString(PathStyle.Render(f.Subtitle) + "\n")
	}
	b.WriteString(divider(contentWidth) + "\n\n")

	b.WriteString(renderPanel(f.Panel, contentWidth))

	if f.Busy != "" {
		b.WriteString("\n\n" + f.Busy)
	}

	if f.Status != nil {
		b.WriteString("\n\n" + renderStatus(*f.Status, contentWidth))
	}

	if f.Hint != "" {
		b.WriteString("\n\n" + divider(contentWidth) + "\n")
		b.WriteString(HelpStyle.Render(f.Hint))
	}

	return wrapInBox(b.String(), width)
}

// renderPanel renders the titled content of a frame.
func renderPanel(p Panel, width int) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(strings.ToUpper(p.Title)) + "\n\n")

	for _, l := range p.Text {
		b.WriteString(renderLine(l, width) + "\n")
	}
	if len(p.Text) > 0 && p.Input != nil {
		b.WriteString("\n")
	}

	if p.Filter != nil {
		b.WriteString(PathStyle.Render("/") + " " + renderInput(*p.Filter) + "\n\n")
	}

	if p.Input != nil {
		b.WriteString(InputStyle.Width(width-4).Render(renderInput(*p.Input)) + "\n")
	}

	for _, item := range p.Items {
		if item.Selected {
			b.WriteString(SelectedStyle.Render(SymbolCursor+" "+item.Label) + "\n")
		} else {
			b.WriteString(NormalStyle.Render("  "+item.Label) + "\n")
		}
	}
	if len(p.Items) == 0 && p.Empty != "" {
		b.WriteString(HelpStyle.Render(p.Empty) + "\n")
	}

	if len(p.Notes) > 0 {
		b.WriteString("\n")
		for _, l := range p.Notes {
			b.WriteString(renderLine(l, width) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderLine(l Line, width int) string {
	text := l.Text
	if l.Warning {
		text = WarningStyle.Render(text)
	}
	if l.Label != "" {
		text = LabelStyle.Render(l.Label) + text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// renderInput draws a line with a block cursor.
func renderInput(in Input) string {
	cursor := " "
	after := in.After
	if after != "" {
		r := []rune(after)
		cursor = string(r[0])
		after = string(r[1:])
	}
	return in.Before + CursorStyle.Render(cursor) + after
}

func renderStatus(s Status, width int) string {
	if s.IsError {
		return ErrorStyle.Width(width).Render("Error: " + s.Text)
	}
	return SuccessStyle.Width(width).Render(s.Text)
}

func divider(width int) string {
	return DividerStyle.Render(strings.Repeat(SymbolDivider, max(width, 1)))
}

// wrapInBox wraps content in a bordered box.
func wrapInBox(content string, width int) string {
	// Don't force height - let content determine size
	return BoxStyle.Width(width - 2).Render(content)
}
