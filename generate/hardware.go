package generate

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ezrec/m68kspec/spec"
)

// Offsets of the pointers in the header of a hardware test case.
const (
	HW_OFFSET_NAME         = 0x00
	HW_OFFSET_ARRANGE_MEM  = 0x04
	HW_OFFSET_ARRANGE_REGS = 0x08
	HW_OFFSET_ARRANGE_CODE = 0x0c
	HW_OFFSET_ASSERT_MEM   = 0x10
	HW_OFFSET_ASSERT_REGS  = 0x14
	HW_OFFSET_ASSERT_CODE  = 0x18
)

var hwHeader = []struct {
	label  string
	offset int
}{
	{".name", HW_OFFSET_NAME},
	{".arrange_mem", HW_OFFSET_ARRANGE_MEM},
	{".arrange_regs", HW_OFFSET_ARRANGE_REGS},
	{".arrange_code", HW_OFFSET_ARRANGE_CODE},
	{".assert_mem", HW_OFFSET_ASSERT_MEM},
	{".assert_regs", HW_OFFSET_ASSERT_REGS},
	{".assert_code", HW_OFFSET_ASSERT_CODE},
}

const hwRegisterColumns = " ;    D0/A0     D1/A1     D2/A2     D3/A3     D4/A4     D5/A5     D6/A6     D7/A7"

// Hardware generates assembler test data for the hardware test runner.
type Hardware struct{}

// NewHardware returns a hardware test generator.
func NewHardware() *Hardware {
	return &Hardware{}
}

// Write renders every test case of the set as a labelled data block.
// The path is that of the generated file, and is recorded in its header.
func (gen *Hardware) Write(w io.Writer, path string, set *spec.TestSet) (err error) {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "; ----------------------T----------------------------------\n")
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "; Path: %v\n", path)
	fmt.Fprintf(out, "; This file is autogenerated from %v\n", set.Path)
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, " ;rts in case this source is run by mistake\n")
	fmt.Fprintf(out, " rts\n")
	fmt.Fprintf(out, "\n")

	for tc := range set.All() {
		gen.writeCase(out, tc)
	}

	err = out.Flush()

	return
}

func (gen *Hardware) writeCase(out *bufio.Writer, tc *spec.TestCase) {
	label := tc.Label()

	fmt.Fprintf(out, ";===========================================\n")
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "%v\n", label)
	for _, ptr := range hwHeader {
		fmt.Fprintf(out, " dc.l %v\t; $%02x\n", ptr.label, ptr.offset)
	}
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, ".name\n")
	fmt.Fprintf(out, " dc.b \"%v\",0\n", label)
	fmt.Fprintf(out, " even\n")
	fmt.Fprintf(out, "\n")

	writeMemTable(out, ".arrange_mem", tc.ArrangeMem)

	fmt.Fprintf(out, ".arrange_regs\n")
	fmt.Fprintf(out, "%v\n", hwRegisterColumns)
	fmt.Fprintf(out, " dc.l %v\n", asmRegisters(tc.ArrangeData))
	fmt.Fprintf(out, " dc.l %v\n", asmRegisters(tc.ArrangeAddress))
	fmt.Fprintf(out, " dc.w $%04x ; %v\n", uint16(tc.ArrangeSR), tc.ArrangeSR)
	fmt.Fprintf(out, "\n")

	code := tc.ArrangeCode
	fmt.Fprintf(out, ".arrange_code\n")
	fmt.Fprintf(out, " ;length,address\n")
	fmt.Fprintf(out, " dc.l $%08x,$%08x\n", len(code.Bytes)/2, code.Address)
	writeBytes(out, code.Bytes)
	fmt.Fprintf(out, "\n")

	writeMemTable(out, ".assert_mem", tc.AssertMem)

	fmt.Fprintf(out, ".assert_regs\n")
	fmt.Fprintf(out, "%v\n", hwRegisterColumns)
	fmt.Fprintf(out, " dc.l %v\n", asmRegisters(tc.AssertData))
	fmt.Fprintf(out, " dc.l %v\n", asmRegisters(tc.AssertAddress))
	fmt.Fprintf(out, " dc.l $%08x ; PC\n", tc.NextAddress())
	fmt.Fprintf(out, " dc.w $%04x ; SR=%v\n", uint16(tc.AssertSR), tc.AssertSR)
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, ".assert_code\n")
	fmt.Fprintf(out, " %v\n", tc.AssertCode)
	fmt.Fprintf(out, "\n")
}

// writeMemTable writes a (length, address, pointer) table terminated by an
// all zero triple, then the bytes of every block it points to.
func writeMemTable(out *bufio.Writer, label string, blocks []spec.Block) {
	fmt.Fprintf(out, "%v\n", label)
	fmt.Fprintf(out, " ;length,address,ptr\n")
	for _, blk := range blocks {
		fmt.Fprintf(out, " dc.l $%08x,$%08x,%v_%08x\n", len(blk.Bytes), blk.Address, label, blk.Address)
	}
	fmt.Fprintf(out, " dc.l $00000000,$00000000,$00000000\n")
	fmt.Fprintf(out, "\n")

	for _, blk := range blocks {
		fmt.Fprintf(out, "%v_%08x\n", label, blk.Address)
		writeBytes(out, blk.Bytes)
		fmt.Fprintf(out, "\n")
	}
}

// writeBytes writes a dc.b line, realigning to a word after odd lengths.
func writeBytes(out *bufio.Writer, data []byte) {
	fmt.Fprintf(out, " dc.b %v\n", asmBytes(data))
	if len(data)%2 == 1 {
		fmt.Fprintf(out, " even\n")
	}
}
