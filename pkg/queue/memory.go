// queue package

package queue

import "sync"

const (
	// QueueBufferSize represents the default maximum size of a queue
	QueueBufferSize = 1024
)

// InMemoryQueue implements an in-memory queue that drops its oldest item when full.
type InMemoryQueue struct {
	ch     chan interface{}
	notify chan struct{}
	lock   sync.Mutex
}

// NewInMemoryQueue creates a new queue holding at most QueueBufferSize items.
func NewInMemoryQueue() *InMemoryQueue {
	return NewInMemoryQueueWithSize(QueueBufferSize)
}

// NewInMemoryQueueWithSize creates a new queue holding at most size items.
func NewInMemoryQueueWithSize(size int) *InMemoryQueue {
	if size < 1 {
		size = 1
	}
	return &InMemoryQueue{
		ch:     make(chan interface{}, size),
		notify: make(chan struct{}, 1),
	}
}

// Enqueue adds an item to the end of the queue.
func (q *InMemoryQueue) Enqueue(item interface{}) bool {
	q.lock.Lock()
	dropped := false
	if len(q.ch) == cap(q.ch) {
		<-q.ch
		dropped = true
	}
	q.ch <- item
	q.lock.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return dropped
}

// Size returns the current size of the queue.
func (q *InMemoryQueue) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.ch)
}

// ReadAllMessages reads all pending messages in the queue
func (q *InMemoryQueue) ReadAllMessages() []interface{} {
	q.lock.Lock()
	defer q.lock.Unlock()

	var messages []interface{}
	for len(q.ch) > 0 {
		messages = append(messages, <-q.ch)
	}

	return messages
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}
}

func (q *InMemoryQueue) Notify() <-chan struct{} {
	return q.notify
}
