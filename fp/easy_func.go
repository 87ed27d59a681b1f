package fp

// Integer is any integer element type
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Even is a filter predicate
func Even[T Integer](v T) bool {
	return v%2 == 0
}

// Odd is a filter predicate
func Odd[T Integer](v T) bool {
	return v%2 != 0
}

// Equal return a function(v T) bool{ return v == elem }
func Equal[T comparable](elem T) func(T) bool {
	return func(v T) bool { return v == elem }
}
