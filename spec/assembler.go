// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package spec

import (
	"log"
	"slices"
)

// draft is a test case under construction. Single valued fields are nil
// until their line is seen.
type draft struct {
	arrangeData    *Registers
	arrangeAddress *Registers
	arrangeSR      *Status
	arrangeCode    *Block
	arrangeMem     []Block

	assertData    *Registers
	assertAddress *Registers
	assertSR      *Status
	assertPC      *uint32
	assertCode    *Disassembly
	assertMem     []Block
}

// Assembler is the section state machine for a single test case.
type Assembler struct {
	Verbose bool // If set, logs every state transition.

	head  ClassifiedLine
	name  string
	state State
	draft draft
}

// NewAssembler starts a test case at its test name line.
func NewAssembler(head ClassifiedLine) (asm *Assembler, err error) {
	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: head.LineNo, Line: head.Raw, Err: err}
		}
	}()

	name, ok := head.Line.(TestName)
	if !ok {
		err = ErrTestNameExpected
		return
	}

	if !Identifier(name.Name) {
		err = ErrTestNameInvalid
		return
	}

	if Reserved(name.Name) {
		err = ErrTestNameReserved
		return
	}

	asm = &Assembler{
		head:  head,
		name:  name.Name,
		state: STATE_GLOBAL,
	}

	return
}

// Name of the test case.
func (asm *Assembler) Name() string {
	return asm.name
}

// Label is the case normalized test case name.
func (asm *Assembler) Label() string {
	return normalize(asm.name)
}

// State is the current section state.
func (asm *Assembler) State() State {
	return asm.state
}

func (asm *Assembler) setState(state State) {
	if asm.Verbose && state != asm.state {
		log.Printf("%v: %v -> %v", asm.name, asm.state, state)
	}
	asm.state = state
}

// setOnce fills a single valued slot.
func setOnce[T any](slot **T, value T, field Field) error {
	if *slot != nil {
		return ErrFieldDuplicate(field)
	}
	*slot = &value
	return nil
}

// appendBlock adds a memory block to a list. Every block of a list must
// start at a distinct address.
func appendBlock(blocks *[]Block, blk Block) error {
	for _, other := range *blocks {
		if other.Address == blk.Address {
			return ErrAddressDuplicate(blk.Address)
		}
	}
	*blocks = append(*blocks, blk)
	return nil
}

// Feed advances the state machine by one line. A test name line closes the
// test case: done is returned true and the line is left for the caller to
// open the next test case with.
func (asm *Assembler) Feed(cl ClassifiedLine) (done bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: cl.LineNo, Line: cl.Raw, Err: err}
		}
	}()

	if asm.state == STATE_DONE {
		err = ErrAssemblerDone
		return
	}

	d := &asm.draft
	wrongState := func() error {
		return ErrState{Kind: cl.Kind(), State: asm.state}
	}

	switch line := cl.Line.(type) {
	case Blank:
		// no-op
	case TestName:
		asm.setState(STATE_DONE)
		done = true
	case KeywordLine:
		asm.setState(line.Keyword.State())
	case AddressWithBytes:
		switch asm.state {
		case STATE_ARRANGE_MEM:
			err = appendBlock(&d.arrangeMem, line.Block)
		case STATE_ASSERT_MEM:
			err = appendBlock(&d.assertMem, line.Block)
		case STATE_ARRANGE_AND_ASSERT_MEM:
			err = appendBlock(&d.arrangeMem, line.Block)
			if err != nil {
				return
			}
			err = appendBlock(&d.assertMem, line.Block)
		case STATE_ARRANGE_CODE:
			err = setOnce(&d.arrangeCode, line.Block, FIELD_ARRANGE_CODE)
			if err != nil {
				return
			}
			asm.setState(STATE_GLOBAL)
		default:
			err = wrongState()
		}
	case AddressTerminator:
		if !asm.state.Memory() {
			err = wrongState()
			return
		}
		asm.setState(STATE_GLOBAL)
	case DataRegisters:
		switch asm.state {
		case STATE_ARRANGE_REG:
			err = setOnce(&d.arrangeData, line.Registers, FIELD_ARRANGE_REG_DATA)
		case STATE_ASSERT_REG:
			err = setOnce(&d.assertData, line.Registers, FIELD_ASSERT_REG_DATA)
		default:
			err = wrongState()
		}
	case AddressRegisters:
		switch asm.state {
		case STATE_ARRANGE_REG:
			err = setOnce(&d.arrangeAddress, line.Registers, FIELD_ARRANGE_REG_ADDRESS)
		case STATE_ASSERT_REG:
			err = setOnce(&d.assertAddress, line.Registers, FIELD_ASSERT_REG_ADDRESS)
		default:
			err = wrongState()
		}
	case StatusFlags:
		err = asm.setStatus(Status(line.Flags.Word()), wrongState)
	case StatusRegister:
		err = asm.setStatus(Status(line.Word), wrongState)
	case ProgramCounter:
		if asm.state != STATE_ASSERT_REG {
			err = wrongState()
			return
		}
		err = setOnce(&d.assertPC, line.Address, FIELD_ASSERT_REG_PC)
	case SourceCode:
		if asm.state != STATE_ASSERT_CODE {
			err = wrongState()
			return
		}
		err = setOnce(&d.assertCode, line.Disassembly, FIELD_ASSERT_CODE)
	default:
		err = ErrLineSyntax
	}

	return
}

func (asm *Assembler) setStatus(sr Status, wrongState func() error) error {
	switch asm.state {
	case STATE_ARRANGE_REG:
		return setOnce(&asm.draft.arrangeSR, sr, FIELD_ARRANGE_REG_SR)
	case STATE_ASSERT_REG:
		return setOnce(&asm.draft.assertSR, sr, FIELD_ASSERT_REG_SR)
	}
	return wrongState()
}

// Finish closes the test case, checks that every mandatory field is
// present, and returns the assembled test case.
func (asm *Assembler) Finish() (tc TestCase, err error) {
	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: asm.head.LineNo, Line: asm.head.Raw, Err: err}
		}
	}()

	asm.setState(STATE_DONE)

	d := &asm.draft
	switch {
	case d.arrangeData == nil:
		err = ErrFieldMissing(FIELD_ARRANGE_REG_DATA)
	case d.arrangeAddress == nil:
		err = ErrFieldMissing(FIELD_ARRANGE_REG_ADDRESS)
	case d.arrangeSR == nil:
		err = ErrFieldMissing(FIELD_ARRANGE_REG_SR)
	case d.arrangeCode == nil:
		err = ErrFieldMissing(FIELD_ARRANGE_CODE)
	case d.assertData == nil:
		err = ErrFieldMissing(FIELD_ASSERT_REG_DATA)
	case d.assertAddress == nil:
		err = ErrFieldMissing(FIELD_ASSERT_REG_ADDRESS)
	case d.assertSR == nil:
		err = ErrFieldMissing(FIELD_ASSERT_REG_SR)
	case d.assertCode == nil:
		err = ErrFieldMissing(FIELD_ASSERT_CODE)
	}
	if err != nil {
		return
	}

	tc = TestCase{
		Name:           asm.name,
		LineNo:         asm.head.LineNo,
		ArrangeData:    *d.arrangeData,
		ArrangeAddress: *d.arrangeAddress,
		ArrangeSR:      *d.arrangeSR,
		ArrangeCode:    *d.arrangeCode,
		ArrangeMem:     slices.Clone(d.arrangeMem),
		AssertData:     *d.assertData,
		AssertAddress:  *d.assertAddress,
		AssertSR:       *d.assertSR,
		AssertCode:     *d.assertCode,
		AssertMem:      slices.Clone(d.assertMem),
	}
	if d.assertPC != nil {
		tc.AssertPC = *d.assertPC
		tc.HasAssertPC = true
	}

	return
}
