package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Info      = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Current image
	FileName = lipgloss.NewStyle().
			Bold(true).
			Foreground(White)

	FolderName = lipgloss.NewStyle().
			Foreground(Info)

	Progress = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Placeholder shown instead of a preview
	Placeholder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Foreground(Muted).
			Padding(1, 4)

	MissingBox = Placeholder.
			BorderForeground(Error).
			Foreground(Error)

	// Counters
	CounterDeleted = lipgloss.NewStyle().Foreground(Error).Bold(true)
	CounterSkipped = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	CounterMissing = lipgloss.NewStyle().Foreground(Muted).Bold(true)

	Done = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary).
		MarginBottom(1)

	// List rows
	Selected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Current = lipgloss.NewStyle().
		Foreground(Secondary)

	// Labels
	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
