package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"imgcurate/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToReviewMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("imgcurate Help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Review images one at a time: keep, delete or go back"))
	b.WriteString("\n\n")

	b.WriteString(styles.Label.Render("Review"))
	b.WriteString("\n")
	b.WriteString(helpLine("← / ↑ / b", "Back to the previous image"))
	b.WriteString(helpLine("↓ / space / s", "Skip (keep the file)"))
	b.WriteString(helpLine("→ / delete / d", "Delete the file and its index entry"))
	b.WriteString("\n")

	b.WriteString(styles.Label.Render("Tools"))
	b.WriteString("\n")
	b.WriteString(helpLine("o", "Open in external viewer"))
	b.WriteString(helpLine("y", "Copy image path"))
	b.WriteString(helpLine("a", "Toggle auto-reconcile of missing files"))
	b.WriteString(helpLine("f", "Folders overview"))
	b.WriteString("\n")

	b.WriteString(styles.Label.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("  Deletions are saved to the index immediately."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

// padRight pads s with spaces to length terminal cells
func padRight(s string, length int) string {
	return runewidth.FillRight(s, length)
}
