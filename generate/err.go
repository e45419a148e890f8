package generate

import (
	"github.com/ezrec/m68kspec/translate"
)

var f = translate.From

// ErrWrite indicates the output file that could not be written.
type ErrWrite struct {
	Path string
	Err  error
}

func (err *ErrWrite) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrWrite) Unwrap() error {
	return err.Err
}
