package lists

import "github.com/emirpasic/gods/containers"

var _ containers.IteratorWithIndex = (*Iterator)(nil)

// Iterator is a stateful forward iterator over a List. Begin rewinds it to
// before the current head, so it can be reused for a fresh traversal.
type Iterator struct {
	list    *List
	current *node
	index   int
	started bool
}

func (l *List) Iterator() *Iterator {
	return &Iterator{list: l, index: -1}
}

// Next moves to the next element and reports whether there was one.
func (it *Iterator) Next() bool {
	if !it.started {
		it.started = true
		it.current = it.list.head
	} else if it.current != nil {
		it.current = it.current.next
	}
	if it.current == nil {
		return false
	}
	it.index++
	return true
}

func (it *Iterator) Value() interface{} {
	if it.current == nil {
		return nil
	}
	return it.current.value
}

func (it *Iterator) Index() int {
	return it.index
}

func (it *Iterator) Begin() {
	it.current = nil
	it.index = -1
	it.started = false
}

func (it *Iterator) First() bool {
	it.Begin()
	return it.Next()
}

// NextTo advances until f matches, leaving the iterator on the match.
func (it *Iterator) NextTo(f func(index int, value interface{}) bool) bool {
	for it.Next() {
		if f(it.index, it.current.value) {
			return true
		}
	}
	return false
}
