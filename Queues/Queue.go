package Queues

// Queue is a first-in-first-out sequence of values.
type Queue[T any] interface {
	//Push item to the tail.
	Push(item T)
	//Pop the item at the head. Returns EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	//Peek at the head without removing it. Zero value when empty.
	Peek() T
	Empty() bool
	Size() uint
}

// ArrayQueue is a Queue backed by a circular slice.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the underlying slice to fit the content.
	Shrink()
	//Clear the queue without releasing the underlying slice.
	Clear()
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
