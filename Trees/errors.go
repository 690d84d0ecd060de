package Trees

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError through errors.Is.
var ErrNotFound = errors.New("value not in tree")

// NotFoundError is returned when removing a value that isn't in the tree.
type NotFoundError[T any] struct {
	V T
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("%v: %v", ErrNotFound, e.V)
}

func (e *NotFoundError[T]) Is(target error) bool {
	return target == ErrNotFound
}
