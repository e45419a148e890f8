package spec

import (
	"errors"

	"github.com/ezrec/m68kspec/translate"
)

var f = translate.From

var (
	// Classifier errors
	ErrLineSyntax     = errors.New(f("syntax error"))
	ErrContentMissing = errors.New(f("missing content, only the null terminator $00000000 may omit it"))
	ErrContentNull    = errors.New(f("null terminator $00000000 cannot carry content"))
	ErrStatusFlags    = errors.New(f("status flags expect 5 characters in ENZOC order, '-' for a clear flag"))
	ErrSourceCode     = errors.New(f("expected an instruction and at most one operand string"))

	// Assembler errors
	ErrTestNameExpected = errors.New(f("test name line expected"))
	ErrTestNameInvalid  = errors.New(f("test name invalid"))
	ErrTestNameReserved = errors.New(f("test name is a reserved word"))
	ErrTestDuplicate    = errors.New(f("test name duplicated"))
	ErrAssemblerDone    = errors.New(f("test case already closed"))
)

type ErrKeywordUnknown string

func (err ErrKeywordUnknown) Error() string {
	return f("unknown keyword '%v'", string(err))
}

type ErrContentInvalid string

func (err ErrContentInvalid) Error() string {
	return f("unable to parse content '%v'", string(err))
}

// ErrParseHex reports a token that is not a fixed width hexadecimal value.
type ErrParseHex struct {
	Token  string
	Digits int
}

func (err ErrParseHex) Error() string {
	return f("'%v' is not a %d digit hexadecimal value", err.Token, err.Digits)
}

// ErrCount reports a register, status or program counter line with the
// wrong number of values.
type ErrCount struct {
	What string
	Want int
	Have int
}

func (err ErrCount) Error() string {
	return f("%v: expected %d values, found %d", err.What, err.Want, err.Have)
}

// ErrState reports a line kind that the current section does not accept.
type ErrState struct {
	Kind  LineKind
	State State
}

func (err ErrState) Error() string {
	return f("unexpected %v in state %v", err.Kind, err.State)
}

type ErrFieldDuplicate Field

func (err ErrFieldDuplicate) Error() string {
	return f("%v set more than once", Field(err))
}

// ErrAddressDuplicate is a memory block starting at the same address as an
// earlier block of its section.
type ErrAddressDuplicate uint32

func (err ErrAddressDuplicate) Error() string {
	return f("memory block at $%08x listed more than once", uint32(err))
}

type ErrFieldMissing Field

func (err ErrFieldMissing) Error() string {
	return f("%v missing", Field(err))
}

// ErrSyntax locates an error in the specification source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
