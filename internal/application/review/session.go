// Package review implements the image review workflow: a cursor over the
// flattened index with skip, delete and back operations. Every mutation of
// the index is saved before the operation returns.
package review

import (
	"errors"
	"log/slog"
	"slices"

	"imgcurate/internal/application"
	"imgcurate/internal/domain"
	"imgcurate/internal/ports"
)

// Option configures a Session
type Option func(*Session)

// WithAutoReconcile makes the session drop entries whose file is missing
// instead of stopping on them
func WithAutoReconcile(enabled bool) Option {
	return func(s *Session) {
		s.autoReconcile = enabled
	}
}

// WithLogger sets the logger used for deletion and reconciliation records
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// presentedMissing marks a missing entry already counted at a cursor position
type presentedMissing struct {
	entry  domain.Entry
	cursor int
}

// Session owns the index, the review queue, the cursor and the counters of
// one operator's pass over the library. It is not safe for concurrent use.
type Session struct {
	lib    ports.Library
	store  ports.IndexStore
	logger *slog.Logger

	index    *domain.ImageIndex
	queue    []domain.Entry
	cursor   int
	counters domain.Counters

	autoReconcile bool
	resolved      bool
	currentPath   string
	missing       *presentedMissing
}

// NewSession creates a session over idx. The queue is built once, here;
// call Resolve to present the first entry.
func NewSession(lib ports.Library, store ports.IndexStore, idx *domain.ImageIndex, opts ...Option) *Session {
	s := &Session{
		lib:    lib,
		store:  store,
		logger: slog.Default(),
		index:  idx,
		queue:  idx.Flatten(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the index from store, creates a session and resolves the first
// entry. A load failure returns a nil session. Errors from resolving (failed
// saves during reconciliation) are returned with a usable session.
func Open(lib ports.Library, store ports.IndexStore, opts ...Option) (*Session, State, error) {
	idx, err := store.Load()
	if err != nil {
		return nil, State{}, err
	}

	s := NewSession(lib, store, idx, opts...)
	s.logger.Info("Loaded index", "images", len(s.queue), "folders", idx.Len(), "location", store.Location())

	state, err := s.Resolve()
	return s, state, err
}

// Resolve presents the entry at the cursor, reconciling missing files on the
// way. Calling it again without another operation in between changes nothing.
func (s *Session) Resolve() (State, error) {
	err := s.resolve()
	return s.State(), err
}

// Skip moves past the current entry without touching the file or the index
func (s *Session) Skip() (State, error) {
	if err := s.ensureResolved(); err != nil {
		return s.State(), err
	}
	if s.cursor >= len(s.queue) {
		return s.State(), application.ErrExhausted
	}

	s.counters.Skipped++
	s.cursor++
	s.missing = nil

	err := s.resolve()
	return s.State(), err
}

// Delete removes the current file from disk (if present) and its entry from
// the index and the queue, then saves the index. The cursor stays put and so
// lands on the following entry. A failed file removal or save is returned
// but does not undo the in-memory removal.
func (s *Session) Delete() (State, error) {
	if err := s.ensureResolved(); err != nil {
		return s.State(), err
	}
	if s.cursor >= len(s.queue) {
		return s.State(), application.ErrExhausted
	}

	var errs []error
	entry := s.queue[s.cursor]
	path := s.lib.Path(entry)

	if s.lib.Exists(entry) {
		if err := s.lib.Remove(entry); err != nil {
			s.logger.Error("Failed to delete file", "path", path, "error", err)
			errs = append(errs, &application.FileDeleteError{Path: path, Err: err})
		} else {
			s.logger.Info("Deleted file", "path", path)
		}
	} else {
		s.logger.Info("File not found for deletion", "path", path)
	}

	s.removeAt(s.cursor)
	if err := s.persist(); err != nil {
		errs = append(errs, err)
	}
	s.counters.Deleted++
	s.missing = nil

	if err := s.resolve(); err != nil {
		errs = append(errs, err)
	}
	return s.State(), errors.Join(errs...)
}

// Back steps the cursor back one position. At the start of the queue it does
// nothing. The skipped counter drops by one whenever it is positive, whatever
// happened to the entry being returned to.
func (s *Session) Back() (State, error) {
	if s.cursor == 0 {
		return s.State(), nil
	}

	s.cursor--
	if s.counters.Skipped > 0 {
		s.counters.Skipped--
	}
	s.missing = nil

	err := s.resolve()
	return s.State(), err
}

// State returns the current snapshot
func (s *Session) State() State {
	state := State{
		Cursor:    s.cursor,
		Total:     len(s.queue),
		Remaining: len(s.queue) - s.cursor,
		Counters:  s.counters,

		AutoReconcile: s.autoReconcile,
	}

	if s.cursor >= len(s.queue) {
		state.Phase = PhaseExhausted
		return state
	}

	state.Phase = PhaseReviewing
	state.Entry = s.queue[s.cursor]
	if s.missing != nil && s.missing.cursor == s.cursor {
		state.Missing = true
	} else {
		state.Path = s.currentPath
	}
	return state
}

// Counters returns the session counters
func (s *Session) Counters() domain.Counters {
	return s.counters
}

// Queue returns a copy of the review queue
func (s *Session) Queue() []domain.Entry {
	return slices.Clone(s.queue)
}

// Index returns a copy of the session's index
func (s *Session) Index() *domain.ImageIndex {
	return s.index.Clone()
}

// Root returns the library root the session reviews
func (s *Session) Root() string {
	return s.lib.Root()
}

// SetAutoReconcile changes reconciliation for later resolves. Turning it on
// while a missing entry is presented reconciles that entry immediately.
func (s *Session) SetAutoReconcile(enabled bool) (State, error) {
	s.autoReconcile = enabled
	if !enabled || !s.resolved {
		return s.State(), nil
	}
	return s.Resolve()
}

func (s *Session) ensureResolved() error {
	if s.resolved {
		return nil
	}
	return s.resolve()
}

// resolve walks forward from the cursor until it finds an existing file, a
// missing file it must present, or the end of the queue
func (s *Session) resolve() error {
	s.resolved = true
	s.currentPath = ""

	var errs []error
	for s.cursor < len(s.queue) {
		entry := s.queue[s.cursor]
		if s.lib.Exists(entry) {
			s.missing = nil
			s.currentPath = s.lib.Path(entry)
			return errors.Join(errs...)
		}

		if s.missing == nil || s.missing.entry != entry || s.missing.cursor != s.cursor {
			s.counters.Missing++
			s.logger.Warn("Image missing", "folder", entry.Folder, "file", entry.Filename)
		}

		if !s.autoReconcile {
			s.missing = &presentedMissing{entry: entry, cursor: s.cursor}
			return errors.Join(errs...)
		}

		s.missing = nil
		s.removeAt(s.cursor)
		s.logger.Info("Removed missing entry", "folder", entry.Folder, "file", entry.Filename)
		if err := s.persist(); err != nil {
			errs = append(errs, err)
		}
	}

	s.missing = nil
	return errors.Join(errs...)
}

// removeAt drops the queue entry at i and its index record
func (s *Session) removeAt(i int) {
	s.index.Remove(s.queue[i])
	s.queue = slices.Delete(s.queue, i, i+1)
}

func (s *Session) persist() error {
	err := s.store.Save(s.index)
	if err == nil {
		return nil
	}
	if !errors.Is(err, application.ErrIndexPersist) {
		err = &application.PersistError{Location: s.store.Location(), Err: err}
	}
	s.logger.Error("Failed to save index", "location", s.store.Location(), "error", err)
	return err
}
