package testingx

import "fmt"

// RecoverError runs fn and returns the value it panicked with, if any. A nil
// return value means fn did not panic. Panic values that are not errors are
// converted to errors using their default format.
func RecoverError(fn func()) (err error) {
	defer func() {
		switch r := recover().(type) {
		case nil:
			// nothing
		case error:
			err = r
		default:
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return
}
