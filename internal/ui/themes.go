package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for stderr output.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for headers and labels.
	Primary lipgloss.TerminalColor
	// Secondary is used for less prominent elements.
	Secondary lipgloss.TerminalColor
	// Success indicates completed stages.
	Success lipgloss.TerminalColor
	// Warning is used for slow or skipped stages.
	Warning lipgloss.TerminalColor
	// Error indicates failed stages.
	Error lipgloss.TerminalColor
	// Info is used for values such as durations.
	Info lipgloss.TerminalColor
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("39"),  // Bright blue
		Secondary: lipgloss.Color("245"), // Grey
		Success:   lipgloss.Color("82"),  // Bright green
		Warning:   lipgloss.Color("220"), // Yellow
		Error:     lipgloss.Color("196"), // Red
		Info:      lipgloss.Color("141"), // Purple
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   lipgloss.Color("27"),
		Secondary: lipgloss.Color("240"),
		Success:   lipgloss.Color("28"),
		Warning:   lipgloss.Color("130"),
		Error:     lipgloss.Color("124"),
		Info:      lipgloss.Color("54"),
	}

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{
		Name:      "none",
		Primary:   lipgloss.NoColor{},
		Secondary: lipgloss.NoColor{},
		Success:   lipgloss.NoColor{},
		Warning:   lipgloss.NoColor{},
		Error:     lipgloss.NoColor{},
		Info:      lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// Styles builds the styles of the theme. Bold and underline are dropped for
// NoColorTheme so its output is plain text.
func (t Theme) Styles() Styles {
	plain := t.Name == "none"
	header := lipgloss.NewStyle().Foreground(t.Primary)
	if !plain {
		header = header.Bold(true).Underline(true)
	}
	return Styles{
		Header:  header,
		Label:   lipgloss.NewStyle().Foreground(t.Primary),
		Value:   lipgloss.NewStyle().Foreground(t.Info),
		Muted:   lipgloss.NewStyle().Foreground(t.Secondary),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
	}
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "none". Unknown names default to dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/).
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}
