// Package runtimex contains runtime extensions. This package is inspired to
// https://pkg.go.dev/github.com/m-lab/go/rtx, except that it's simpler.
package runtimex

import "github.com/pkg/errors"

// PanicOnError calls panic() if err is not nil. The panic value is an
// error wrapping err, so callers recovering it can use [errors.Is].
func PanicOnError(err error, message string) {
	if err != nil {
		panic(errors.Wrap(err, message))
	}
}

// Assert calls panic if assertion is false. The panic value is an error.
func Assert(assertion bool, message string) {
	if !assertion {
		panic(errors.New(message))
	}
}
