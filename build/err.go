package build

import (
	"github.com/ezrec/m68kspec/translate"
)

var f = translate.From

// ErrConfigUnknown is a configuration global that is not a known setting.
type ErrConfigUnknown string

func (err ErrConfigUnknown) Error() string {
	return f("unknown setting '%v'", string(err))
}

// ErrConfigType is a setting with a value of the wrong type.
type ErrConfigType struct {
	Name string
	Want string
	Have string
}

func (err ErrConfigType) Error() string {
	return f("setting '%v' expects %v, not %v", err.Name, err.Want, err.Have)
}

// ErrConfigValue is a setting with a value out of range.
type ErrConfigValue string

func (err ErrConfigValue) Error() string {
	return f("setting '%v' out of range", string(err))
}

// ErrSpecFile indicates the specification file an error was found in.
type ErrSpecFile struct {
	Path string
	Err  error
}

func (err *ErrSpecFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrSpecFile) Unwrap() error {
	return err.Err
}

// ErrLabelDuplicate is a test name used in two specification files.
// Hardware labels share a single namespace across the test suite.
type ErrLabelDuplicate struct {
	Label string
	Other string // Specification file that used the label first.
}

func (err ErrLabelDuplicate) Error() string {
	return f("test '%v' already defined in %v", err.Label, err.Other)
}

// ErrModuleDuplicate is two specification files generating the same module.
type ErrModuleDuplicate struct {
	Module string
	Other  string // Specification file that generated the module first.
}

func (err ErrModuleDuplicate) Error() string {
	return f("module '%v' already generated from %v", err.Module, err.Other)
}

// ErrModuleInvalid is a specification file name that does not make an
// identifier.
type ErrModuleInvalid string

func (err ErrModuleInvalid) Error() string {
	return f("module name '%v' is not an identifier", string(err))
}

// ErrModuleReserved is a specification file name that is a reserved word.
type ErrModuleReserved string

func (err ErrModuleReserved) Error() string {
	return f("module name '%v' is a reserved word", string(err))
}
