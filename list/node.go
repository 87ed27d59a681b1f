// Package list implements a singly-linked list stored as a recursive variant.
//
// A list is always one of three shapes: Empty, a single Terminal cell, or a
// Link cell that owns the rest of the list. There is no tail pointer and no
// length counter; Push walks to the deepest cell and Pop always works on the
// root cell.
package list

import (
	"github.com/qjpcpu/rlist/assert"
)

// Kind is the variant of a cell.
type Kind uint8

const (
	Empty Kind = iota
	Terminal
	Link
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Terminal:
		return "Terminal"
	case Link:
		return "Link"
	default:
		return "Kind(?)"
	}
}

// cell is sealed: only the variants below implement it.
type cell[T any] interface {
	kind() Kind
}

type empty[T any] struct{}

type terminal[T any] struct {
	item T
}

type link[T any] struct {
	item T
	rest *List[T]
}

// moved stands in for a cell that has been detached or handed to a cursor.
type moved[T any] struct{}

func (empty[T]) kind() Kind    { return Empty }
func (terminal[T]) kind() Kind { return Terminal }
func (*link[T]) kind() Kind    { return Link }
func (moved[T]) kind() Kind    { return Empty }

// List is a singly-linked list of values. The zero value is an empty list.
// A List must not be copied by value; use Clone.
type List[T any] struct {
	noCopy noCopy
	root   cell[T]
}

// noCopy lets go vet's copylocks check report List values being copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{root: empty[T]{}}
}

// From builds a list by pushing items in order.
func From[T any](items ...T) *List[T] {
	l := New[T]()
	for _, x := range items {
		l.Push(x)
	}
	return l
}

// Push appends x as the new tail.
func (l *List[T]) Push(x T) {
	switch c := l.cell().(type) {
	case empty[T]:
		l.tail(x)
	case terminal[T]:
		l.link(x)
	case *link[T]:
		c.rest.Push(x)
	}
}

// Pop removes the element held by the root cell. Once the list holds two or
// more elements that is the first element pushed, not the last.
func (l *List[T]) Pop() (T, bool) {
	var zero T
	switch c := l.cell().(type) {
	case empty[T]:
		return zero, false
	case terminal[T]:
		l.root = empty[T]{}
		return c.item, true
	case *link[T]:
		l.root = c.detach()
		return c.item, true
	}
	return zero, false
}

// tail turns an Empty or Link root into Terminal(x).
func (l *List[T]) tail(x T) {
	_, isTerminal := l.cell().(terminal[T])
	assert.ShouldBeTrue(!isTerminal, "list: tail on a Terminal cell would drop its item")
	l.root = terminal[T]{item: x}
}

// link turns Terminal(item) into Link(item, Terminal(x)).
func (l *List[T]) link(x T) {
	t, ok := l.cell().(terminal[T])
	assert.ShouldBeTruef(ok, "list: link on a %v cell", l.cell().kind())
	l.root = &link[T]{
		item: t.item,
		rest: &List[T]{root: terminal[T]{item: x}},
	}
}

// detach moves the remainder out of c and returns its root. c no longer
// reaches anything afterwards.
func (c *link[T]) detach() cell[T] {
	assert.ShouldBeTrue(c.rest != nil, "list: link cell already detached, its list was copied by value")
	rest := c.rest
	c.rest = nil
	next := rest.root
	rest.root = moved[T]{}
	return next
}

// cell returns the root, treating nil as Empty. It panics on a moved-from list.
func (l *List[T]) cell() cell[T] {
	switch c := l.root.(type) {
	case nil:
		return empty[T]{}
	case moved[T]:
		assert.Unreachable("list: use of a moved-from list")
		return c
	default:
		return c
	}
}
