package fp

// Option holds a value or nothing
type Option[T any] struct {
	val  T
	some bool
}

// Some wraps v
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, some: true}
}

// None is the empty option
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf builds an option from a comma-ok pair, e.g. OptionOf[int](l.Pop())
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool { return o.some }

func (o Option[T]) IsNone() bool { return !o.some }

// Val returns the held value, zero for None
func (o Option[T]) Val() T { return o.val }

// OrElse returns the held value or def
func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.val
	}
	return def
}
