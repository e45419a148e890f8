package spec

// State is a section state of the test case assembler.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_GLOBAL                 = State(0) // GLOBAL
	STATE_ARRANGE_MEM            = State(1) // ARRANGE_MEM
	STATE_ARRANGE_REG            = State(2) // ARRANGE_REG
	STATE_ARRANGE_CODE           = State(3) // ARRANGE_CODE
	STATE_ASSERT_MEM             = State(4) // ASSERT_MEM
	STATE_ASSERT_REG             = State(5) // ASSERT_REG
	STATE_ASSERT_CODE            = State(6) // ASSERT_CODE
	STATE_ARRANGE_AND_ASSERT_MEM = State(7) // ARRANGE_AND_ASSERT_MEM
	STATE_DONE                   = State(8) // DONE
)

// Memory returns true for the states that accept memory blocks and the
// $00000000 terminator.
func (st State) Memory() bool {
	switch st {
	case STATE_ARRANGE_MEM, STATE_ASSERT_MEM, STATE_ARRANGE_AND_ASSERT_MEM:
		return true
	}
	return false
}
