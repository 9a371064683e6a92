package list

import (
	"fmt"
	"io"
	"strings"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list that keeps a reference to its last node, so
// inserts at either end and removal at the head are O(1).
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use.
type List[T any] struct {
	head    *node[T]
	tail    *node[T]
	count   int
	tracker Tracker
}

func New[T any](opts ...Option) *List[T] {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &List[T]{tracker: cfg.tracker}
}

func (list *List[T]) newNode(v T, next *node[T]) *node[T] {
	if list.tracker != nil {
		list.tracker.Allocated()
	}
	return &node[T]{value: v, next: next}
}

func (list *List[T]) release(n *node[T]) {
	var zero T
	n.value = zero
	n.next = nil
	if list.tracker != nil {
		list.tracker.Released()
	}
}

func (list *List[T]) InsertFirst(v T) {
	n := list.newNode(v, list.head)
	list.head = n
	if list.tail == nil {
		list.tail = n
	}
	list.count++
}

// InsertLast appends v. On an empty list it behaves exactly like InsertFirst.
func (list *List[T]) InsertLast(v T) {
	if list.tail == nil {
		list.InsertFirst(v)
		return
	}
	n := list.newNode(v, nil)
	list.tail.next = n
	list.tail = n
	list.count++
}

// RemoveFirst drops the head element, doing nothing on an empty list.
func (list *List[T]) RemoveFirst() {
	if list.IsEmpty() {
		return
	}
	n := list.head
	list.head = n.next
	if list.head == nil {
		list.tail = nil
	}
	list.release(n)
	list.count--
}

// RemoveLast drops the tail element, doing nothing on an empty list.
// It walks from the head to find the new tail, so it is O(n).
func (list *List[T]) RemoveLast() {
	if list.IsEmpty() {
		return
	}
	if list.head == list.tail {
		n := list.head
		list.head, list.tail = nil, nil
		list.release(n)
		list.count--
		return
	}
	prev := list.head
	for prev.next != list.tail {
		prev = prev.next
	}
	n := list.tail
	prev.next = nil
	list.tail = prev
	list.release(n)
	list.count--
}

func (list *List[T]) IsEmpty() bool {
	return list.head == nil
}

func (list *List[T]) Size() int {
	return list.count
}

// Reverse relinks every node to point at its predecessor and swaps head and tail.
func (list *List[T]) Reverse() {
	var prev, next *node[T]
	cur := list.head
	for cur != nil {
		next = cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	list.head, list.tail = list.tail, list.head
}

// Clear releases every node from head to tail.
func (list *List[T]) Clear() {
	for !list.IsEmpty() {
		list.RemoveFirst()
	}
}

// Values returns a copy of the elements, head first.
func (list *List[T]) Values() []T {
	values := make([]T, 0, list.count)
	for n := list.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Display writes the elements as "[a b c ]", each followed by a single space,
// and a trailing newline if asked to.
func (list *List[T]) Display(w io.Writer, newline bool) error {
	_, err := io.WriteString(w, list.render(newline))
	return err
}

func (list *List[T]) String() string {
	return list.render(false)
}

func (list *List[T]) render(newline bool) string {
	var b strings.Builder
	b.WriteByte('[')
	for n := list.head; n != nil; n = n.next {
		fmt.Fprint(&b, n.value)
		b.WriteByte(' ')
	}
	b.WriteByte(']')
	if newline {
		b.WriteByte('\n')
	}
	return b.String()
}

// CompareFunc reports whether the list holds exactly the elements of values,
// in order, using eq to compare them.
func (list *List[T]) CompareFunc(values []T, eq func(a, b T) bool) bool {
	if len(values) != list.count {
		return false
	}
	i := 0
	for n := list.head; n != nil; n, i = n.next, i+1 {
		if !eq(n.value, values[i]) {
			return false
		}
	}
	return true
}

// CompareArray reports whether l holds exactly the elements of values, in order.
func CompareArray[T comparable](l *List[T], values []T) bool {
	return l.CompareFunc(values, func(a, b T) bool { return a == b })
}
