package navhist

import (
	"github.com/dshills/navhist/persist"
	"github.com/dshills/navhist/undo"
)

// Option configures a Stack.
type Option func(*Stack)

// WithUndo attaches an undo coordinator. Every NavigateTo registers a
// whole-state snapshot action with it. Without a coordinator, navigation
// works normally but is not undoable.
func WithUndo(c *undo.Coordinator) Option {
	return func(s *Stack) {
		s.coord = c
	}
}

// WithGateway attaches a persistence gateway used by Save and Load.
// Without a gateway, Save and Load return ErrNoGateway.
func WithGateway(g persist.Gateway) Option {
	return func(s *Stack) {
		s.gateway = g
	}
}
