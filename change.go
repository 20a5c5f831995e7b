package navhist

import "github.com/dshills/navhist/item"

// ChangeKind identifies the navigation operation behind a Change.
type ChangeKind int

const (
	// ChangeNavigate indicates a new entry became current, either through
	// NavigateTo or a whole-state restore.
	ChangeNavigate ChangeKind = iota

	// ChangeBack indicates the cursor moved toward older entries.
	ChangeBack

	// ChangeForward indicates the cursor moved toward newer entries.
	ChangeForward

	// ChangeClear indicates the stack was emptied.
	ChangeClear
)

// String returns the change kind name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeNavigate:
		return "navigate"
	case ChangeBack:
		return "back"
	case ChangeForward:
		return "forward"
	case ChangeClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Change describes a navigation state transition.
// Previous and Current are nil when the stack had or has no current entry.
type Change struct {
	Kind     ChangeKind
	Previous *item.Item
	Current  *item.Item
}
