// Package assert holds precondition checks for the raw kernel entry points.
//
// The checks compile to nothing unless the module is built with
// `-tags vecmath_debug`, so the hot paths keep their unchecked contract.
// A failed check panics with an *Error.
package assert
