// Package lists implements a singly linked list of ints with positional
// access. Every traversal is an explicit loop from the head, so deep lists
// never grow the stack.
package lists

import (
	"iter"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*List)(nil)

type node struct {
	value int
	next  *node
}

// List is a mutable ordered sequence of ints. The zero value is an empty
// list ready to use, but New refuses to build one from no values.
type List struct {
	head *node
}

// New builds a list holding values in order. It returns ErrNoValues when
// values is empty.
func New(values ...int) (*List, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	l := new(List)
	l.head = &node{value: values[0]}
	tail := l.head
	for _, v := range values[1:] {
		tail.next = &node{value: v}
		tail = tail.next
	}
	return l, nil
}

// nodeAt walks i links from the head. It returns nil when the chain ends
// first or i is negative.
func (l *List) nodeAt(i int) *node {
	if i < 0 {
		return nil
	}
	n := l.head
	for ; n != nil && i > 0; i-- {
		n = n.next
	}
	return n
}

func (l *List) Get(index int) (int, error) {
	n := l.nodeAt(index)
	if n == nil {
		return 0, outOfRange(index)
	}
	return n.value, nil
}

func (l *List) Set(index int, value int) error {
	n := l.nodeAt(index)
	if n == nil {
		return outOfRange(index)
	}
	n.value = value
	return nil
}

// Front returns the head value, or false for an empty list.
func (l *List) Front() (int, bool) {
	if l.head == nil {
		return 0, false
	}
	return l.head.value, true
}

func (l *List) AddAtHead(value int) {
	l.head = &node{value: value, next: l.head}
}

func (l *List) AddAtTail(value int) {
	e := &node{value: value}
	if l.head == nil {
		l.head = e
		return
	}
	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = e
}

// AddAtIndex inserts value so that it ends up at index. An index equal to
// the current length appends.
func (l *List) AddAtIndex(index int, value int) error {
	if index == 0 {
		l.AddAtHead(value)
		return nil
	}
	prev := l.nodeAt(index - 1)
	if prev == nil {
		return outOfRange(index)
	}
	prev.next = &node{value: value, next: prev.next}
	return nil
}

func (l *List) DeleteAtIndex(index int) error {
	if index < 0 || l.head == nil {
		return outOfRange(index)
	}
	if index == 0 {
		l.head = l.head.next
		return nil
	}
	prev := l.nodeAt(index - 1)
	if prev == nil || prev.next == nil {
		return outOfRange(index)
	}
	prev.next = prev.next.next
	return nil
}

// Len counts the nodes. It is O(n).
func (l *List) Len() int {
	c := 0
	for n := l.head; n != nil; n = n.next {
		c++
	}
	return c
}

// All returns an iterator over the values from head to tail. Each range
// over it starts again from the current head.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Ints returns the values as a slice, in order.
func (l *List) Ints() []int {
	res := make([]int, 0)
	for v := range l.All() {
		res = append(res, v)
	}
	return res
}

// String renders the list as "[5, 8, 1]", or "[]" when empty.
func (l *List) String() string {
	s := new(strings.Builder)
	s.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			s.WriteString(", ")
		}
		s.WriteString(strconv.Itoa(n.value))
	}
	s.WriteByte(']')
	return s.String()
}

// Empty, Size, Clear and Values satisfy containers.Container.

func (l *List) Empty() bool { return l.head == nil }

func (l *List) Size() int { return l.Len() }

func (l *List) Clear() { l.head = nil }

func (l *List) Values() []interface{} {
	res := make([]interface{}, 0)
	for v := range l.All() {
		res = append(res, v)
	}
	return res
}
