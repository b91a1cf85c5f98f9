// Package ui provides the colour theme shared by the stderr presentation
// layer. Themes are expressed as lipgloss colours; NO_COLOR and --no-color
// select a theme that renders plain text.
package ui
