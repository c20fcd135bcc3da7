package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"imgcurate/internal/adapters/tui/styles"
	"imgcurate/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders the enabled key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderCounters renders the deleted/skipped/missing tallies
func RenderCounters(c domain.Counters) string {
	return strings.Join([]string{
		styles.HelpDesc.Render("Deleted:") + " " + styles.CounterDeleted.Render(fmt.Sprint(c.Deleted)),
		styles.HelpDesc.Render("Skipped:") + " " + styles.CounterSkipped.Render(fmt.Sprint(c.Skipped)),
		styles.HelpDesc.Render("Missing:") + " " + styles.CounterMissing.Render(fmt.Sprint(c.Missing)),
	}, "   ")
}

// RenderLabelValue renders a label: value pair
func RenderLabelValue(label, value string) string {
	return fmt.Sprintf("%s %s",
		styles.Label.Render(label+":"),
		value,
	)
}

// ViewBuilder accumulates the lines of a view
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates an empty view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

func (v *ViewBuilder) styled(style lipgloss.Style, text string) *ViewBuilder {
	return v.Line(style.Render(text))
}

// Title adds the view title
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	return v.styled(styles.Title, title)
}

// Subtitle adds a subtitle line
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	return v.styled(styles.Subtitle, subtitle)
}

// Muted adds a line of muted text
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.styled(styles.MutedText, text)
}

// Line adds text as-is
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteByte('\n')
	return v
}

// BlankLine adds an empty line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	return v.Line("")
}

// Message adds the status message, if any
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	return v.Line(RenderMessage(message, isError))
}

// Help ends the view with a key help line
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteByte('\n')
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// String returns the view wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
