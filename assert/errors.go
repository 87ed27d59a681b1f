package assert

import (
	"errors"
	"fmt"
)

// Violation is the panic value raised when an internal invariant is broken.
// It is never part of an API's error results.
type Violation struct {
	Msg string
}

func (v *Violation) Error() string {
	return "invariant violation: " + v.Msg
}

// ShouldBeTrue would panic if condition is false
func ShouldBeTrue(condition bool, msg ...interface{}) {
	if !condition {
		panic(&Violation{Msg: printMsg("should be true", msg...)})
	}
}

// ShouldBeTruef would panic if condition is false, with a formatted message
func ShouldBeTruef(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(&Violation{Msg: fmt.Sprintf(format, args...)})
	}
}

// ShouldBeNil would panic if err is not nil
func ShouldBeNil(err error, msg ...interface{}) {
	if err == nil {
		return
	}
	panic(&Violation{Msg: withErr(printMsg("", msg...), err)})
}

// ShouldBeNilf would panic if err is not nil, with a formatted message
func ShouldBeNilf(err error, format string, args ...interface{}) {
	if err == nil {
		return
	}
	panic(&Violation{Msg: withErr(fmt.Sprintf(format, args...), err)})
}

// Unreachable marks a branch the caller's dispatch must never take.
func Unreachable(msg ...interface{}) {
	panic(&Violation{Msg: printMsg("unreachable", msg...)})
}

// Catch runs fn and returns the violation it raised, if any.
// Panics that are not violations keep unwinding.
func Catch(fn func()) (v *Violation) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok || !errors.As(err, &v) {
				panic(r)
			}
		}
	}()
	fn()
	return
}

func printMsg(fallback string, msg ...interface{}) string {
	if len(msg) == 0 {
		return fallback
	}
	return fmt.Sprint(msg...)
}

func withErr(msg string, err error) string {
	s := fmt.Sprintf("[%T]%v", err, err)
	if msg == "" {
		return s
	}
	return msg + ": " + s
}
