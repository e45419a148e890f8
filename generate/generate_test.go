package generate

import (
	"github.com/ezrec/m68kspec/spec"
)

// addSet is a set with one case exercising every section.
func addSet() *spec.TestSet {
	return &spec.TestSet{
		Path:   "specs/add.txt",
		Module: "add",
		Cases: []spec.TestCase{
			{
				Name:           "ADD_D0_D1",
				LineNo:         1,
				ArrangeData:    spec.Registers{0x1},
				ArrangeAddress: spec.Registers{0x2000},
				ArrangeSR:      spec.Status(0x2705),
				ArrangeCode:    spec.Block{Address: 0x1000, Bytes: []byte{0xd0, 0x41}},
				ArrangeMem:     []spec.Block{{Address: 0x2000, Bytes: []byte{0x12, 0x34, 0x56}}},
				AssertData:     spec.Registers{0x2},
				AssertAddress:  spec.Registers{0x2000},
				AssertSR:       spec.Status(0x2700),
				AssertCode:     spec.Disassembly{Instruction: "ADD.L", Operand: "#1,D0"},
				AssertMem:      []spec.Block{{Address: 0x2000, Bytes: []byte{0x12, 0xab}}},
			},
		},
	}
}

// nopSet is a set with one minimal case and an explicit program counter.
func nopSet() *spec.TestSet {
	return &spec.TestSet{
		Path:   "specs/nop.txt",
		Module: "nop",
		Cases: []spec.TestCase{
			{
				Name:        "nop",
				LineNo:      3,
				ArrangeSR:   spec.Status(0x001f),
				ArrangeCode: spec.Block{Address: 0x00c00000, Bytes: []byte{0x4e, 0x71, 0x00}},
				AssertSR:    spec.Status(0x0008),
				AssertPC:    0x00c00010,
				HasAssertPC: true,
				AssertCode:  spec.Disassembly{Instruction: "NOP"},
			},
		},
	}
}
