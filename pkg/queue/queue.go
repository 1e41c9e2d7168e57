package queue

// Queue buffers input items between the host's input polling and the frame
// update that drains them.
type Queue interface {
	// Enqueue adds an item to the end of the queue.
	Enqueue(item interface{}) error
	// Size returns the number of pending items.
	Size() int
	// ReadAllMessages removes and returns every pending item in arrival order.
	ReadAllMessages() ([]interface{}, error)
	// ClearQueue drops every pending item.
	ClearQueue()
}
