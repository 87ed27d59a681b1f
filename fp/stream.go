package fp

// Iterator yields values until it returns false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// IteratorFunc adapts a function to Iterator.
type IteratorFunc[T any] func() (T, bool)

func (fn IteratorFunc[T]) Next() (T, bool) { return fn() }

// Stream is a lazy chain over an Iterator. Every combinator pulls from its
// source only when its own Next is called, and a Stream is single pass like
// the source it wraps.
type Stream[T any] struct {
	src Iterator[T]
}

// StreamOf wraps it as a Stream
func StreamOf[T any](it Iterator[T]) *Stream[T] {
	if s, ok := it.(*Stream[T]); ok {
		return s
	}
	return &Stream[T]{src: it}
}

// SliceOf streams the elements of a slice
func SliceOf[T any](items []T) *Stream[T] {
	var i int
	return StreamOf[T](IteratorFunc[T](func() (v T, ok bool) {
		if i >= len(items) {
			return
		}
		v, ok = items[i], true
		i++
		return
	}))
}

// Next pulls one element
func (s *Stream[T]) Next() (T, bool) {
	return s.src.Next()
}

// Filter keeps elements matching fn
// example: StreamOf(l.IntoIter()).Filter(func(i int) bool { return i%2 == 0 })
func (s *Stream[T]) Filter(fn func(T) bool) *Stream[T] {
	src := s.src
	return &Stream[T]{src: IteratorFunc[T](func() (T, bool) {
		for {
			v, ok := src.Next()
			if !ok || fn(v) {
				return v, ok
			}
		}
	})}
}

// Reject drops elements matching fn
func (s *Stream[T]) Reject(fn func(T) bool) *Stream[T] {
	return s.Filter(func(v T) bool { return !fn(v) })
}

// Take at most n elements
func (s *Stream[T]) Take(n int) *Stream[T] {
	src := s.src
	return &Stream[T]{src: IteratorFunc[T](func() (v T, ok bool) {
		if n <= 0 {
			return
		}
		n--
		return src.Next()
	})}
}

// Foreach drains the stream
func (s *Stream[T]) Foreach(fn func(T)) {
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		fn(v)
	}
}

// Collect drains the stream into a slice
func (s *Stream[T]) Collect() []T {
	out := make([]T, 0)
	s.Foreach(func(v T) { out = append(out, v) })
	return out
}

// Count drains the stream and returns how many elements it yielded
func (s *Stream[T]) Count() (n int) {
	s.Foreach(func(T) { n++ })
	return
}

// First element, pulling nothing past it
func (s *Stream[T]) First() Option[T] {
	if v, ok := s.Next(); ok {
		return Some(v)
	}
	return None[T]()
}

// Map convert stream by function
// example: Map(StreamOf(it), func(i int) string { return strconv.Itoa(i) })
func Map[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	return &Stream[U]{src: IteratorFunc[U](func() (out U, ok bool) {
		v, ok := s.Next()
		if !ok {
			return
		}
		return fn(v), true
	})}
}

// Reduce with initval and reduce function
// example: Reduce(StreamOf(it), 0, func(sum int, i int) int { return sum + i })
func Reduce[T, M any](s *Stream[T], initval M, fn func(M, T) M) M {
	memo := initval
	s.Foreach(func(v T) { memo = fn(memo, v) })
	return memo
}
