package list

// Cursor walks a list front to back, consuming it. It cannot be restarted.
type Cursor[T any] struct {
	curr List[T]
}

// IntoIter hands the list's cells to a new cursor. The list is left moved-from
// and any further use of it panics.
func (l *List[T]) IntoIter() *Cursor[T] {
	c := &Cursor[T]{curr: List[T]{root: l.cell()}}
	l.root = moved[T]{}
	return c
}

// Next detaches the front element and keeps the rest as the cursor's state.
// After the last element it keeps returning false.
func (c *Cursor[T]) Next() (T, bool) {
	return c.curr.Pop()
}

// Remaining counts the elements not yet returned by Next.
func (c *Cursor[T]) Remaining() int {
	return c.curr.Len()
}
