package queue

// Queue represents a bounded queue.
type Queue interface {
	// Enqueue adds an item without blocking. It reports whether the oldest item was dropped to make room.
	Enqueue(item interface{}) bool
	Size() int
	ReadAllMessages() []interface{}
	ClearQueue()
	// Notify is signalled after every enqueue. Signals are coalesced.
	Notify() <-chan struct{}
}
