// Package navhist provides a bidirectional navigation history: an ordered
// sequence of visited entries with a movable cursor, browser-style
// forward-history truncation, optional undo/redo integration, and optional
// persistence of the sequence and cursor.
//
// # Stack
//
// A Stack is created empty and driven through NavigateTo, GoBack, GoForward,
// and Clear:
//
//	s := navhist.New()
//	s.NavigateTo(item.New("Home"))
//	s.NavigateTo(item.New("Settings"))
//	prev, _ := s.GoBack() // back on "Home"
//
// Navigating from anywhere but the newest entry discards the forward
// history first, the way a browser does.
//
// # Undo integration
//
// Attach an undo coordinator to make identity-changing navigation
// undoable:
//
//	coord, _ := undo.NewCoordinator(100)
//	s := navhist.New(navhist.WithUndo(coord))
//	s.NavigateTo(item.New("Home"))
//	coord.Undo() // stack is empty again
//
// Each NavigateTo registers a whole-state snapshot action: a deep
// before/after copy of the sequence and cursor. Because an action fully
// determines the resulting state, undo stays correct no matter how many
// operations happen between registration and undo. GoBack, GoForward, and
// Clear move or reset the cursor without entering the undo timeline.
//
// # Persistence
//
// Attach a persistence gateway to save and restore the stack:
//
//	gw := jsonfile.New("/path/to/history.json")
//	s := navhist.New(navhist.WithGateway(gw))
//	s.Save(ctx)
//	restored, _ := s.Load(ctx)
//
// # Notifications
//
// Subscribe receives a Change for every mutation, synchronously and in
// registration order. A listener must not mutate the stack from inside its
// own notification; the emitting call has not returned yet.
//
// # Concurrency
//
// A Stack assumes one logical owner drives all calls. Concurrent use
// without external serialization is undefined behavior; no internal
// locking is provided.
package navhist
