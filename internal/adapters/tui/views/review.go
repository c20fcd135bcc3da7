package views

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"imgcurate/internal/adapters/tui/styles"
	"imgcurate/internal/application/review"
	"imgcurate/internal/domain"
	"imgcurate/internal/ports"
)

// ReviewKeyMap defines key bindings for the review view
type ReviewKeyMap struct {
	Back      key.Binding
	Skip      key.Binding
	Delete    key.Binding
	Open      key.Binding
	Copy      key.Binding
	Reconcile key.Binding
	Folders   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var ReviewKeys = ReviewKeyMap{
	Back: key.NewBinding(
		key.WithKeys("left", "up", "b"),
		key.WithHelp("←/b", "back"),
	),
	Skip: key.NewBinding(
		key.WithKeys("down", " ", "s"),
		key.WithHelp("↓/space", "skip"),
	),
	Delete: key.NewBinding(
		key.WithKeys("right", "delete", "d"),
		key.WithHelp("→/del", "delete"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Reconcile: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "auto-reconcile"),
	),
	Folders: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "folders"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// reservedRows is the height taken by everything around the preview
const reservedRows = 14

// ReviewOptions configures the review view
type ReviewOptions struct {
	ConfirmDelete bool
	Logger        *slog.Logger
}

// ReviewModel drives a review session: every key press runs one session
// operation as a command and renders the state it returns
type ReviewModel struct {
	ViewState
	session   *review.Session
	lib       ports.Library
	previewer ports.Previewer
	logger    *slog.Logger
	root      string

	// state and index are snapshots taken on the goroutine that ran the
	// last session operation; rendering never reads the session directly
	state   review.State
	index   *domain.ImageIndex
	busy    bool
	confirm ConfirmationModel
	spinner spinner.Model

	confirmDelete bool

	folderSize  int64
	sizeErr     error
	sizeLoading bool

	previewPath    string
	preview        string
	previewErr     error
	previewLoading bool
	info           *domain.ImageInfo
}

// NewReviewModel creates a review view over an opened session. state is the
// state returned when the session was opened.
func NewReviewModel(session *review.Session, state review.State, lib ports.Library, previewer ports.Previewer, opts ReviewOptions) *ReviewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewModel{
		session:       session,
		lib:           lib,
		previewer:     previewer,
		logger:        logger,
		root:          session.Root(),
		state:         state,
		index:         session.Index(),
		confirm:       NewConfirmationModel(),
		spinner:       s,
		confirmDelete: opts.ConfirmDelete,
	}
}

type stateMsg struct {
	state review.State
	index *domain.ImageIndex
	err   error
}

type folderSizeMsg struct {
	size int64
	err  error
}

type previewMsg struct {
	path    string
	preview string
	info    *domain.ImageInfo
	err     error
}

type confirmDeleteMsg struct{}

type cancelDeleteMsg struct{}

type copiedMsg struct {
	path string
	err  error
}

// Init starts measuring the library and renders the first preview
func (m *ReviewModel) Init() tea.Cmd {
	m.sizeLoading = true
	return tea.Batch(m.measureFolder(), m.refreshPreview(true), m.spinner.Tick)
}

// Update handles messages for the review view
func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, m.refreshPreview(true)

	case spinner.TickMsg:
		if m.spinning() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case folderSizeMsg:
		m.sizeLoading = false
		m.folderSize = msg.size
		m.sizeErr = msg.err
		return m, nil

	case stateMsg:
		m.busy = false
		m.state = msg.state
		if msg.index != nil {
			m.index = msg.index
		}
		if msg.err != nil {
			m.logger.Warn("Review operation failed", "error", msg.err)
			m.SetMessage(msg.err.Error(), true)
		}
		return m, m.refreshPreview(false)

	case previewMsg:
		if msg.path != m.previewPath {
			return m, nil // Stale render for an image no longer shown
		}
		m.previewLoading = false
		m.preview = msg.preview
		m.info = msg.info
		m.previewErr = msg.err
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.SetMessage(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.SetMessage("Copied "+msg.path, false)
		}
		return m, nil

	case confirmDeleteMsg:
		m.confirm.Dismiss()
		return m, m.run(m.session.Delete)

	case cancelDeleteMsg:
		m.confirm.Dismiss()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *ReviewModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.busy {
		return nil
	}

	if m.confirm.Active {
		_, cmd := m.confirm.HandleKeyMsg(msg,
			func() tea.Msg { return confirmDeleteMsg{} },
			func() tea.Msg { return cancelDeleteMsg{} },
		)
		return cmd
	}

	m.ClearMessage()
	exhausted := m.state.Exhausted()

	switch {
	case key.Matches(msg, ReviewKeys.Quit):
		return tea.Quit

	case key.Matches(msg, ReviewKeys.Back):
		return m.run(m.session.Back)

	case key.Matches(msg, ReviewKeys.Skip):
		if exhausted {
			return nil
		}
		return m.run(m.session.Skip)

	case key.Matches(msg, ReviewKeys.Delete):
		if exhausted {
			return nil
		}
		if m.confirmDelete {
			m.confirm.Ask(m.state.Entry)
			return nil
		}
		return m.run(m.session.Delete)

	case key.Matches(msg, ReviewKeys.Open):
		if m.state.Path == "" {
			return nil
		}
		path := m.state.Path
		return func() tea.Msg { return OpenViewerMsg{Path: path} }

	case key.Matches(msg, ReviewKeys.Copy):
		if m.state.Path == "" {
			return nil
		}
		path := m.state.Path
		return func() tea.Msg {
			return copiedMsg{path: path, err: clipboard.WriteAll(path)}
		}

	case key.Matches(msg, ReviewKeys.Reconcile):
		enabled := !m.state.AutoReconcile
		if enabled {
			m.SetMessage("Auto-reconcile on: missing files are dropped from the index", false)
		} else {
			m.SetMessage("Auto-reconcile off", false)
		}
		return m.run(func() (review.State, error) {
			return m.session.SetAutoReconcile(enabled)
		})

	case key.Matches(msg, ReviewKeys.Folders):
		return func() tea.Msg { return SwitchToFoldersMsg{} }

	case key.Matches(msg, ReviewKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return nil
}

// run executes one session operation off the update loop. Input is ignored
// until its state arrives.
func (m *ReviewModel) run(op func() (review.State, error)) tea.Cmd {
	m.busy = true
	session := m.session
	return tea.Batch(
		func() tea.Msg {
			state, err := op()
			return stateMsg{state: state, index: session.Index(), err: err}
		},
		m.spinner.Tick,
	)
}

func (m *ReviewModel) measureFolder() tea.Cmd {
	lib := m.lib
	return func() tea.Msg {
		size, err := lib.Size(context.Background())
		return folderSizeMsg{size: size, err: err}
	}
}

// refreshPreview starts rendering the current image when it changed, or
// always when force is set (the window was resized)
func (m *ReviewModel) refreshPreview(force bool) tea.Cmd {
	path := m.state.Path
	if path == "" {
		m.previewPath = ""
		m.preview = ""
		m.info = nil
		m.previewErr = nil
		m.previewLoading = false
		return nil
	}
	if path == m.previewPath && !force {
		return nil
	}
	if m.previewer == nil {
		return nil
	}

	m.previewPath = path
	m.previewLoading = true
	width, height := m.previewBox()
	previewer := m.previewer

	return tea.Batch(
		func() tea.Msg {
			out, err := previewer.Render(path, width, height)
			info, infoErr := previewer.Describe(path)
			if err == nil && infoErr != nil {
				err = infoErr
			}
			return previewMsg{path: path, preview: out, info: info, err: err}
		},
		m.spinner.Tick,
	)
}

// previewBox returns the columns and rows available for the image
func (m *ReviewModel) previewBox() (int, int) {
	width := m.ContentWidth(60)
	height := 20
	if m.Height > 0 {
		height = m.Height - reservedRows
	}
	return max(width, 10), max(height, 4)
}

func (m *ReviewModel) spinning() bool {
	return m.busy || m.sizeLoading || m.previewLoading
}

// State returns the last state received from the session
func (m *ReviewModel) State() review.State {
	return m.state
}

// Index returns the index as of the last completed session operation
func (m *ReviewModel) Index() *domain.ImageIndex {
	return m.index
}

// Session returns the underlying review session
func (m *ReviewModel) Session() *review.Session {
	return m.session
}

// View renders the review view
func (m *ReviewModel) View() string {
	v := NewViewBuilder().Title("imgcurate")
	width := m.ContentWidth(80)

	v.Subtitle(Truncate(m.root, width))
	v.Line(RenderLabelValue("Folder size", m.renderFolderSize()))
	v.BlankLine()

	if m.state.Exhausted() {
		return m.viewDone(v)
	}

	entry := m.state.Entry
	progress := fmt.Sprintf("Image %d of %d", m.state.Position(), m.state.Total)
	remaining := fmt.Sprintf("Remaining: %d", m.state.Remaining)
	v.Line(styles.Progress.Render(progress) + "   " + styles.MutedText.Render(remaining))

	name := styles.FolderName.Render(Truncate(entry.Folder, width/2)+"/") +
		styles.FileName.Render(Truncate(entry.Filename, width/2))
	v.Line(name)
	v.BlankLine()

	v.Line(m.renderPreview(width))
	if info := m.renderInfo(); info != "" {
		v.Muted(info)
	}
	v.BlankLine()

	v.Line(RenderCounters(m.state.Counters))
	if m.state.AutoReconcile {
		v.Muted("auto-reconcile on")
	}
	v.Message(m.Message, m.MessageErr)

	if m.confirm.Active {
		v.BlankLine()
		v.Line(m.confirm.View("Delete"))
		return v.String()
	}

	return v.Help(
		ReviewKeys.Back, ReviewKeys.Skip, ReviewKeys.Delete, ReviewKeys.Open,
		ReviewKeys.Copy, ReviewKeys.Folders, ReviewKeys.Help, ReviewKeys.Quit,
	).String()
}

func (m *ReviewModel) viewDone(v *ViewBuilder) string {
	v.Line(styles.Done.Render("All Done!"))
	v.Line("You've reviewed all images.")
	v.BlankLine()
	v.Line(RenderCounters(m.state.Counters))
	v.Message(m.Message, m.MessageErr)

	back := ReviewKeys.Back
	back.SetEnabled(m.state.Cursor > 0)
	return v.Help(back, ReviewKeys.Folders, ReviewKeys.Quit).String()
}

func (m *ReviewModel) renderFolderSize() string {
	switch {
	case m.sizeLoading:
		return m.spinner.View() + " measuring"
	case m.sizeErr != nil:
		return styles.ErrorMsg.Render("unavailable")
	default:
		return FormatMB(m.folderSize)
	}
}

func (m *ReviewModel) renderPreview(width int) string {
	if m.state.Missing {
		return styles.MissingBox.Render(Truncate("Image not found: "+m.state.Entry.String(), width-10))
	}

	switch {
	case m.previewLoading:
		return styles.Placeholder.Render(m.spinner.View() + " Loading preview")
	case m.previewErr != nil && m.preview == "":
		msg := "Preview unavailable"
		if errors.Is(m.previewErr, fs.ErrPermission) {
			msg = "Permission denied"
		}
		return styles.Placeholder.Render(msg)
	case m.preview == "":
		return styles.Placeholder.Render("No preview")
	default:
		return m.preview
	}
}

func (m *ReviewModel) renderInfo() string {
	if m.info == nil {
		return ""
	}

	var parts []string
	if m.info.Format != "" {
		parts = append(parts, strings.ToUpper(m.info.Format))
	}
	if m.info.Width > 0 && m.info.Height > 0 {
		parts = append(parts, fmt.Sprintf("%d×%d", m.info.Width, m.info.Height))
	}
	parts = append(parts, FormatMB(m.info.Size))
	if !m.info.Taken.IsZero() {
		parts = append(parts, "taken "+m.info.Taken.Format("2006-01-02 15:04"))
	}
	return strings.Join(parts, " · ")
}
