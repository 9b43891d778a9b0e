package lists

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoValues        = errors.New("list needs at least one value")
)

// IndexOutOfRangeError is returned by the positional operations when the
// requested index falls outside the bound allowed for that operation.
type IndexOutOfRangeError struct {
	Index int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range", e.Index)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func outOfRange(index int) error {
	return &IndexOutOfRangeError{Index: index}
}
