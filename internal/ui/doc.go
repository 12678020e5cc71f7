// Package ui turns application state into what is drawn on the terminal.
//
// Project and ProjectSetup are pure: they map state to a Frame, a
// layout-independent description of the screen. Render and RenderSetup
// draw a Frame with lipgloss.
package ui
