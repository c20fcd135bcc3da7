package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"imgcurate/internal/adapters/tui/views"
	"imgcurate/internal/application/review"
	"imgcurate/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewReview ViewState = iota
	ViewFolders
	ViewHelp
)

// Options configures the TUI application
type Options struct {
	ConfirmDelete bool
	Logger        *slog.Logger
}

// App is the main TUI application model
type App struct {
	viewer ports.ImageViewer
	logger *slog.Logger

	state   ViewState
	review  *views.ReviewModel
	folders *views.FoldersModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application over an opened review session
func NewApp(session *review.Session, state review.State, lib ports.Library, previewer ports.Previewer, viewer ports.ImageViewer, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &App{
		viewer:  viewer,
		logger:  logger,
		state:   ViewReview,
		review: views.NewReviewModel(session, state, lib, previewer, views.ReviewOptions{
			ConfirmDelete: opts.ConfirmDelete,
			Logger:        logger,
		}),
		folders: views.NewFoldersModel(),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.review.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.folders.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		_, cmd := a.review.Update(msg)
		return a, cmd

	// View switching messages
	case views.SwitchToFoldersMsg:
		a.state = ViewFolders
		a.folders.Load(a.review.Index(), a.review.State().Entry.Folder)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToReviewMsg:
		a.state = ViewReview
		return a, nil

	case views.OpenViewerMsg:
		return a, a.openViewer(msg.Path)

	case viewerFinishedMsg:
		if msg.err != nil {
			a.logger.Warn("Image viewer failed", "error", msg.err)
			a.review.SetMessage("Viewer: "+msg.err.Error(), true)
		}
		return a, nil
	}

	// Background results always belong to the review view
	if _, ok := msg.(tea.KeyMsg); !ok || a.state == ViewReview {
		_, cmd := a.review.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewFolders:
		_, cmd = a.folders.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type viewerFinishedMsg struct{ err error }

func (a *App) openViewer(path string) tea.Cmd {
	if a.viewer == nil {
		return nil
	}

	cmd, err := a.viewer.Command(path)
	if err != nil {
		return func() tea.Msg {
			return viewerFinishedMsg{err: err}
		}
	}

	a.logger.Debug("Opening viewer", "path", path, "command", cmd.Args)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return viewerFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewFolders:
		return a.folders.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.review.View()
	}
}
