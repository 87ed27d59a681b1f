package list

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is wrapped by every error Validate returns.
var ErrMalformed = errors.New("list: malformed structure")

// Kind returns the variant of the root cell.
func (l *List[T]) Kind() Kind {
	return l.cell().kind()
}

// IsEmpty reports whether the list holds no element.
func (l *List[T]) IsEmpty() bool {
	return l.Kind() == Empty
}

// Len walks the list and counts its elements.
func (l *List[T]) Len() (n int) {
	l.walk(func(Kind, T) { n++ })
	return
}

// Shape lists cell kinds from the root down to the deepest cell.
func (l *List[T]) Shape() []Kind {
	var kinds []Kind
	l.walk(func(k Kind, _ T) { kinds = append(kinds, k) })
	return kinds
}

// Validate checks that the cells form Empty, Terminal, or a Link chain that
// ends in exactly one Terminal.
func (l *List[T]) Validate() error {
	var depth int
	for cur := l; ; depth++ {
		switch c := cur.root.(type) {
		case nil, empty[T]:
			if depth > 0 {
				return fmt.Errorf("%w: empty cell at depth %d", ErrMalformed, depth)
			}
			return nil
		case terminal[T]:
			return nil
		case *link[T]:
			if c.rest == nil {
				return fmt.Errorf("%w: link without rest at depth %d", ErrMalformed, depth)
			}
			cur = c.rest
		case moved[T]:
			return fmt.Errorf("%w: moved-from cell at depth %d", ErrMalformed, depth)
		default:
			return fmt.Errorf("%w: unknown cell %T at depth %d", ErrMalformed, c, depth)
		}
	}
}

// Clone returns a deep copy sharing no cell with l.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	l.walk(func(_ Kind, item T) { out.Push(item) })
	return out
}

// Items returns the elements in front-to-back order without consuming l.
func (l *List[T]) Items() []T {
	items := make([]T, 0)
	l.walk(func(_ Kind, item T) { items = append(items, item) })
	return items
}

func (l *List[T]) String() string {
	var sb strings.Builder
	var open int
	l.walk(func(k Kind, item T) {
		switch k {
		case Link:
			fmt.Fprintf(&sb, "Link(%v, ", item)
			open++
		case Terminal:
			fmt.Fprintf(&sb, "Terminal(%v)", item)
		}
	})
	if sb.Len() == 0 {
		return Empty.String()
	}
	sb.WriteString(strings.Repeat(")", open))
	return sb.String()
}

// walk visits every cell from the root without detaching anything.
func (l *List[T]) walk(fn func(Kind, T)) {
	for cur := l; cur != nil; {
		switch c := cur.cell().(type) {
		case terminal[T]:
			fn(Terminal, c.item)
			return
		case *link[T]:
			fn(Link, c.item)
			cur = c.rest
		default:
			return
		}
	}
}
