package spec

// LineKind is the discriminator of a classified line.
type LineKind int

//go:generate go tool stringer -linecomment -type=LineKind
const (
	LINE_BLANK              = LineKind(0)  // blank line
	LINE_TEST_NAME          = LineKind(1)  // test name
	LINE_KEYWORD            = LineKind(2)  // keyword
	LINE_ADDRESS_TERMINATOR = LineKind(3)  // address terminator
	LINE_ADDRESS_WITH_BYTES = LineKind(4)  // address with bytes
	LINE_DATA_REGISTERS     = LineKind(5)  // data registers
	LINE_ADDRESS_REGISTERS  = LineKind(6)  // address registers
	LINE_STATUS_FLAGS       = LineKind(7)  // status flags
	LINE_STATUS_REGISTER    = LineKind(8)  // status register
	LINE_PROGRAM_COUNTER    = LineKind(9)  // program counter
	LINE_SOURCE_CODE        = LineKind(10) // source code
)

// Line is the content of one classified line. The set of implementations is
// closed; switch on the concrete type.
type Line interface {
	Kind() LineKind
	isLine()
}

// ClassifiedLine is a Line with its position in the source.
type ClassifiedLine struct {
	LineNo int    // 1-based line number.
	Raw    string // Line text as read, without line terminator.
	Line
}

type Blank struct{}

type TestName struct {
	Name string
}

type KeywordLine struct {
	Keyword Keyword
}

// AddressTerminator is the bare $00000000 line ending a memory section.
type AddressTerminator struct{}

type AddressWithBytes struct {
	Block
}

type DataRegisters struct {
	Registers Registers
}

type AddressRegisters struct {
	Registers Registers
}

// StatusFlags is an SR_FLAGS line.
type StatusFlags struct {
	Flags Flags
}

// StatusRegister is an SR line holding the raw status word.
type StatusRegister struct {
	Word uint16
}

type ProgramCounter struct {
	Address uint32
}

// SourceCode is an expected disassembly line.
type SourceCode struct {
	Disassembly
}

func (Blank) Kind() LineKind             { return LINE_BLANK }
func (TestName) Kind() LineKind          { return LINE_TEST_NAME }
func (KeywordLine) Kind() LineKind       { return LINE_KEYWORD }
func (AddressTerminator) Kind() LineKind { return LINE_ADDRESS_TERMINATOR }
func (AddressWithBytes) Kind() LineKind  { return LINE_ADDRESS_WITH_BYTES }
func (DataRegisters) Kind() LineKind     { return LINE_DATA_REGISTERS }
func (AddressRegisters) Kind() LineKind  { return LINE_ADDRESS_REGISTERS }
func (StatusFlags) Kind() LineKind       { return LINE_STATUS_FLAGS }
func (StatusRegister) Kind() LineKind    { return LINE_STATUS_REGISTER }
func (ProgramCounter) Kind() LineKind    { return LINE_PROGRAM_COUNTER }
func (SourceCode) Kind() LineKind        { return LINE_SOURCE_CODE }

func (Blank) isLine()             {}
func (TestName) isLine()          {}
func (KeywordLine) isLine()       {}
func (AddressTerminator) isLine() {}
func (AddressWithBytes) isLine()  {}
func (DataRegisters) isLine()     {}
func (AddressRegisters) isLine()  {}
func (StatusFlags) isLine()       {}
func (StatusRegister) isLine()    {}
func (ProgramCounter) isLine()    {}
func (SourceCode) isLine()        {}
