package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"imgcurate/internal/adapters/tui/styles"
	"imgcurate/internal/domain"
)

// FoldersKeyMap defines key bindings for the folders overview
type FoldersKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Close    key.Binding
}

var FoldersKeys = FoldersKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "f", "q", "enter"),
		key.WithHelp("esc/f", "back to review"),
	),
}

// folderRowsReserved is the height taken by the title, footer and padding
const folderRowsReserved = 9

// FolderRow is one line of the folders overview
type FolderRow struct {
	Folder string
	Images int
}

// FoldersModel lists the folders still in the index with their image counts
type FoldersModel struct {
	ViewState
	rows      []FolderRow
	current   string
	total     int
	paginator *Paginator
}

// NewFoldersModel creates a new folders overview
func NewFoldersModel() *FoldersModel {
	return &FoldersModel{
		paginator: NewPaginator(10),
	}
}

// Load replaces the rows with the folders of idx and places the cursor on
// current, the folder under review
func (m *FoldersModel) Load(idx *domain.ImageIndex, current string) {
	m.rows = m.rows[:0]
	m.total = 0
	m.current = current

	cursor := 0
	for i, folder := range idx.Folders() {
		n := len(idx.Files(folder))
		m.rows = append(m.rows, FolderRow{Folder: folder, Images: n})
		m.total += n
		if folder == current {
			cursor = i
		}
	}

	m.paginator.SetTotal(len(m.rows))
	m.paginator.SetCursor(cursor)
}

// Rows returns the loaded rows
func (m *FoldersModel) Rows() []FolderRow {
	return m.rows
}

// SetSize updates the view dimensions and the page size
func (m *FoldersModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(height - folderRowsReserved)
}

// Init initializes the folders view
func (m *FoldersModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the folders view
func (m *FoldersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, FoldersKeys.Close):
			return m, func() tea.Msg { return SwitchToReviewMsg{} }
		case key.Matches(msg, FoldersKeys.Up):
			m.paginator.CursorUp()
		case key.Matches(msg, FoldersKeys.Down):
			m.paginator.CursorDown()
		case key.Matches(msg, FoldersKeys.NextPage):
			m.paginator.NextPage()
		case key.Matches(msg, FoldersKeys.PrevPage):
			m.paginator.PrevPage()
		}
	}

	return m, nil
}

// View renders the folders overview
func (m *FoldersModel) View() string {
	v := NewViewBuilder().Title("Folders")
	v.Subtitle(fmt.Sprintf("%d folders, %d images left in the index", len(m.rows), m.total))
	v.BlankLine()

	if len(m.rows) == 0 {
		v.Muted("The index is empty.")
		return v.Help(FoldersKeys.Close).String()
	}

	width := m.ContentWidth(80)
	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		v.Line(m.renderRow(m.rows[i], i == m.paginator.Cursor(), width))
	}

	if m.paginator.TotalPages() > 1 {
		v.BlankLine()
		v.Muted(fmt.Sprintf("Page %d of %d", m.paginator.CurrentPage(), m.paginator.TotalPages()))
	}

	return v.Help(FoldersKeys.Up, FoldersKeys.Down, FoldersKeys.NextPage, FoldersKeys.PrevPage, FoldersKeys.Close).String()
}

func (m *FoldersModel) renderRow(row FolderRow, selected bool, width int) string {
	marker := "  "
	if row.Folder == m.current {
		marker = "▶ "
	}

	count := fmt.Sprintf("%5d", row.Images)
	name := padRight(Truncate(row.Folder, max(width-len(count)-4, 1)), max(width-len(count)-3, 1))
	text := marker + name + " " + count

	switch {
	case selected:
		return styles.Selected.Render(text)
	case row.Folder == m.current:
		return styles.Current.Render(text)
	default:
		return text
	}
}
