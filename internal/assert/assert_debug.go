//go:build vecmath_debug

package assert

import "fmt"

// Enabled reports whether checks are compiled in.
const Enabled = true

// Error is the panic value raised by a failed check.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "vecmath: " + e.Msg }

func fail(format string, args ...any) {
	panic(&Error{Msg: fmt.Sprintf(format, args...)})
}

// NotNil panics if p is nil.
func NotNil[T any](p *T, name string) {
	if p == nil {
		fail("%s is nil", name)
	}
}

// MultipleOf panics unless n is a non-negative multiple of k.
func MultipleOf(n, k int, name string) {
	if n < 0 || n%k != 0 {
		fail("%s: length %d is not a multiple of %d", name, n, k)
	}
}

// MinLen panics if n is below want.
func MinLen(n, want int, name string) {
	if n < want {
		fail("%s: length %d, need at least %d", name, n, want)
	}
}
