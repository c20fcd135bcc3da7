package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"imgcurate/internal/application/review"
	"imgcurate/internal/ports"
)

// Reviewer holds the single review session shared by all review tools.
// The session is opened on first use and reopened after the index is
// rebuilt or pruned.
type Reviewer struct {
	mu      sync.Mutex
	lib     ports.Library
	store   ports.IndexStore
	opts    []review.Option
	session *review.Session
}

// NewReviewer creates a reviewer over lib and store
func NewReviewer(lib ports.Library, store ports.IndexStore, opts ...review.Option) *Reviewer {
	return &Reviewer{lib: lib, store: store, opts: opts}
}

// open returns the session, loading the index on first use. Callers hold mu.
func (r *Reviewer) open() (*review.Session, review.State, error) {
	if r.session != nil {
		state, err := r.session.Resolve()
		return r.session, state, err
	}

	session, state, err := review.Open(r.lib, r.store, r.opts...)
	if session == nil {
		return nil, state, err
	}
	r.session = session
	return session, state, err
}

// reset drops the session. Callers hold mu.
func (r *Reviewer) reset() {
	r.session = nil
}

// RegisterReviewTools adds the review session tools to the MCP server.
func RegisterReviewTools(s *server.MCPServer, rev *Reviewer) {
	s.AddTool(reviewStateTool(), reviewHandler(rev, nil))
	s.AddTool(reviewSkipTool(), reviewHandler(rev, (*review.Session).Skip))
	s.AddTool(reviewDeleteTool(), reviewHandler(rev, (*review.Session).Delete))
	s.AddTool(reviewBackTool(), reviewHandler(rev, (*review.Session).Back))
}

func reviewStateTool() mcp.Tool {
	return mcp.NewTool("review_state",
		mcp.WithDescription("Show the image under review, the position in the queue and the deleted/skipped/missing counters. Starts a review on first call."),
	)
}

func reviewSkipTool() mcp.Tool {
	return mcp.NewTool("review_skip",
		mcp.WithDescription("Keep the current image and move to the next one."),
	)
}

func reviewDeleteTool() mcp.Tool {
	return mcp.NewTool("review_delete",
		mcp.WithDescription("Delete the current image file from disk, remove it from the index and save the index. Cannot be undone."),
	)
}

func reviewBackTool() mcp.Tool {
	return mcp.NewTool("review_back",
		mcp.WithDescription("Go back to the previous image in the queue."),
	)
}

// reviewHandler runs op on the shared session and reports the resulting
// state. A nil op only reports the current state.
func reviewHandler(rev *Reviewer, op func(*review.Session) (review.State, error)) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rev.mu.Lock()
		defer rev.mu.Unlock()

		session, state, err := rev.open()
		if session == nil {
			return toolError(err)
		}

		if op != nil {
			var opErr error
			state, opErr = op(session)
			err = errors.Join(err, opErr)
		}

		text := FormatState(state)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%v\n\n%s", err, text)), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

// FormatState renders a review state as plain text
func FormatState(state review.State) string {
	var sb strings.Builder

	if state.Exhausted() {
		sb.WriteString("All done! Every image has been reviewed.\n")
	} else {
		fmt.Fprintf(&sb, "Image %d of %d: %s\n", state.Position(), state.Total, state.Entry)
		if state.Missing {
			sb.WriteString("Image not found\n")
		} else {
			fmt.Fprintf(&sb, "Path: %s\n", state.Path)
		}
		fmt.Fprintf(&sb, "Remaining: %d\n", state.Remaining)
	}

	c := state.Counters
	fmt.Fprintf(&sb, "Deleted: %d  Skipped: %d  Missing: %d", c.Deleted, c.Skipped, c.Missing)
	return sb.String()
}
