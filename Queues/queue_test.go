package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue_FIFO(t *testing.T) {
	for _, c := range []uint{0, 1, 3, 16} {
		q := MakeArrayQueue[int](c)
		for i := range 100 {
			q.Push(i)
		}
		if q.Size() != 100 || q.Peek() != 0 {
			t.Fatalf("cap %d: size %d, head %d", c, q.Size(), q.Peek())
		}
		for i := range 100 {
			if v, e := q.Pop(); e != nil || v != i {
				t.Fatalf("cap %d: popped (%d, %v), want %d", c, v, e, i)
			}
		}
		if !q.Empty() {
			t.Errorf("cap %d: queue not empty", c)
		}
	}
}

func TestArrayQueue_Wrap(t *testing.T) {
	q := MakeArrayQueue[int](4)
	next, want := 0, 0
	for round := range 50 {
		for range round%5 + 1 {
			q.Push(next)
			next++
		}
		for range round % 4 {
			if v, e := q.Pop(); e == nil {
				if v != want {
					t.Fatalf("round %d: popped %d, want %d", round, v, want)
				}
				want++
			}
		}
	}
	q.Shrink()
	for !q.Empty() {
		if v, _ := q.Pop(); v != want {
			t.Fatalf("after shrink popped %d, want %d", v, want)
		}
		want++
	}
	if want != next {
		t.Errorf("lost values: popped %d of %d", want, next)
	}
}

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[string](2)
	var ee *EmptyQueueError
	if _, e := q.Pop(); !errors.As(e, &ee) {
		t.Errorf("pop on empty queue gave %v", e)
	}
	if q.Peek() != "" {
		t.Error("peek on empty queue isn't the zero value")
	}
	q.Push("a")
	q.Push("b")
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Error("clear left values behind")
	}
	q.Push("c")
	if v, _ := q.Pop(); v != "c" {
		t.Errorf("popped %q after clear", v)
	}
}
