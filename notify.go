package navhist

// Listener receives navigation change notifications.
type Listener func(Change)

// listenerEntry pairs a subscription ID with its callback.
type listenerEntry struct {
	id uint64
	fn Listener
}

// Subscription represents an active change subscription.
type Subscription struct {
	id    uint64
	stack *Stack
}

// Unsubscribe removes this subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.stack == nil {
		return
	}
	s.stack.unsubscribe(s.id)
	s.stack = nil
}

// Subscribe registers a listener for every navigation change. Listeners
// run synchronously, in registration order, from within the mutating call;
// a listener must not re-enter the stack during its own notification.
func (s *Stack) Subscribe(fn Listener) *Subscription {
	id := s.nextSubID
	s.nextSubID++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	return &Subscription{id: id, stack: s}
}

func (s *Stack) unsubscribe(id uint64) {
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// emit delivers a change to all listeners in registration order.
// Delivery iterates a snapshot of the list so a listener that
// unsubscribes during its own notification cannot skip or repeat others.
func (s *Stack) emit(c Change) {
	snapshot := make([]listenerEntry, len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		l.fn(c)
	}
}
