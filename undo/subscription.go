package undo

// listener pairs a subscription ID with its callback.
type listener struct {
	id uint64
	fn func()
}

// Subscription represents an active state-change subscription.
type Subscription struct {
	id    uint64
	coord *Coordinator
}

// Unsubscribe removes this subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.coord == nil {
		return
	}
	s.coord.unsubscribe(s.id)
	s.coord = nil
}

// Subscribe registers a callback invoked after every change to the
// undo/redo stacks. The callback carries no payload; subscribers re-query
// CanUndo and CanRedo. Callbacks run synchronously, in registration order,
// from within the mutating call, and must not re-enter the coordinator.
func (c *Coordinator) Subscribe(fn func()) *Subscription {
	id := c.nextSubID
	c.nextSubID++
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	return &Subscription{id: id, coord: c}
}

func (c *Coordinator) unsubscribe(id uint64) {
	for i, l := range c.listeners {
		if l.id == id {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// notify invokes all listeners in registration order.
// Delivery iterates a snapshot of the list so a listener that
// unsubscribes during its own notification cannot skip or repeat others.
func (c *Coordinator) notify() {
	snapshot := make([]listener, len(c.listeners))
	copy(snapshot, c.listeners)
	for _, l := range snapshot {
		l.fn()
	}
}
