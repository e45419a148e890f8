// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package generate

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ezrec/m68kspec/spec"
)

// DefaultVectors is the interrupt vector table mapped into every emulator
// test.
var DefaultVectors = Range{Start: 0x00000000, End: 0x000003ff}

var rustUses = []string{
	"std::cell::RefCell",
	"std::rc::Rc",
	"crate::register::ProgramCounter",
	"crate::mem::rammemory::RamMemory",
	"crate::cpu::instruction::GetDisassemblyResult",
	"crate::mem::memory::Memory",
	"crate::mem::ciamemory::CiaMemory",
	"crate::cpu::Cpu",
	"crate::mem::Mem",
	"crate::modermodem::Modermodem",
	"crate::register::STATUS_REGISTER_MASK_CARRY",
	"crate::register::STATUS_REGISTER_MASK_EXTEND",
	"crate::register::STATUS_REGISTER_MASK_NEGATIVE",
	"crate::register::STATUS_REGISTER_MASK_OVERFLOW",
	"crate::register::STATUS_REGISTER_MASK_ZERO",
}

// Rust generates emulator unit tests.
type Rust struct {
	Vectors Range // RAM mapped for the interrupt vector table.
}

// NewRust returns a Rust generator with the default memory map.
func NewRust() *Rust {
	return &Rust{Vectors: DefaultVectors}
}

// Write renders every test case of the set as a `#[test]` function.
// The path is that of the generated file, and is recorded in its header.
func (gen *Rust) Write(w io.Writer, path string, set *spec.TestSet) (err error) {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "// Path: %v\n", path)
	fmt.Fprintf(out, "// This file is autogenerated from %v\n", set.Path)
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "#![allow(unused_imports)]\n")
	fmt.Fprintf(out, "\n")
	for _, use := range rustUses {
		fmt.Fprintf(out, "use %v;\n", use)
	}
	fmt.Fprintf(out, "\n")

	for tc := range set.All() {
		gen.writeCase(out, tc)
	}

	err = out.Flush()

	return
}

// writeCase renders a single test function. Write errors are latched by out.
func (gen *Rust) writeCase(out *bufio.Writer, tc *spec.TestCase) {
	code := tc.ArrangeCode

	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "#[test]\n")
	fmt.Fprintf(out, "fn %v() {\n", tc.Label())

	fmt.Fprintf(out, "    // arrange - code\n")
	fmt.Fprintf(out, "    // %v\n", tc.AssertCode)
	fmt.Fprintf(out, "    let code = [%v].to_vec();\n", rustBytes(code.Bytes))
	fmt.Fprintf(out, "    let code_memory = RamMemory::from_bytes(0x%08x, code);\n", code.Address)
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, "    // arrange - mem\n")
	if len(tc.ArrangeMem) == 0 {
		fmt.Fprintf(out, "    // -nothing-\n")
	}
	for _, blk := range tc.ArrangeMem {
		fmt.Fprintf(out, "    let arrange_mem_bytes_%08x = [%v].to_vec();\n", blk.Address, rustBytes(blk.Bytes))
		fmt.Fprintf(out, "    let arrange_mem_%08x = RamMemory::from_bytes(0x%08x, arrange_mem_bytes_%08x);\n",
			blk.Address, blk.Address, blk.Address)
	}
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, "    // arrange - common\n")
	fmt.Fprintf(out, "    let mut mem = Mem::new();\n")
	fmt.Fprintf(out, "    let vectors = RamMemory::from_range(0x%08x, 0x%08x);\n", gen.Vectors.Start, gen.Vectors.End)
	fmt.Fprintf(out, "    let cia_memory = CiaMemory::new();\n")
	fmt.Fprintf(out, "    mem.add_range(Rc::new(RefCell::new(code_memory)));\n")
	fmt.Fprintf(out, "    mem.add_range(Rc::new(RefCell::new(vectors)));\n")
	fmt.Fprintf(out, "    mem.add_range(Rc::new(RefCell::new(cia_memory)));\n")
	for _, blk := range tc.ArrangeMem {
		fmt.Fprintf(out, "    mem.add_range(Rc::new(RefCell::new(arrange_mem_%08x)));\n", blk.Address)
	}
	fmt.Fprintf(out, "    let cpu = Cpu::new(&mem);\n")
	fmt.Fprintf(out, "    let mut modermodem = Modermodem::new(None, cpu, mem, None);\n")
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, "    // arrange - regs\n")
	fmt.Fprintf(out, "    modermodem.cpu.register.set_all_d_reg_long_no_log(%v);\n", rustRegisters(tc.ArrangeData))
	fmt.Fprintf(out, "    modermodem.cpu.register.set_all_a_reg_long_no_log(%v);\n", rustRegisters(tc.ArrangeAddress))
	fmt.Fprintf(out, "    modermodem.cpu.register.reg_pc = ProgramCounter::from_address(0x%08x);\n", code.Address)
	writeRustFlags(out, "set_sr_reg_flags_abcde", tc.ArrangeSR.Flags())
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, "    // act/assert - disassembly\n")
	fmt.Fprintf(out, "    let get_disassembly_result = modermodem.get_next_disassembly_no_log();\n")
	fmt.Fprintf(out, "    assert_eq!(\n")
	fmt.Fprintf(out, "        GetDisassemblyResult::from_address_and_address_next(\n")
	fmt.Fprintf(out, "            0x%08x,\n", code.Address)
	fmt.Fprintf(out, "            0x%08x,\n", tc.NextAddress())
	fmt.Fprintf(out, "            String::from(%v),\n", rustString(tc.AssertCode.Instruction))
	fmt.Fprintf(out, "            String::from(%v),\n", rustString(tc.AssertCode.Operand))
	fmt.Fprintf(out, "            ),\n")
	fmt.Fprintf(out, "            get_disassembly_result\n")
	fmt.Fprintf(out, "        );\n")
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, "    // act\n")
	fmt.Fprintf(out, "    modermodem.step();\n")
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, "    // assert - regs\n")
	fmt.Fprintf(out, "    modermodem.cpu.register.assert_all_d_reg_long_no_log(%v);\n", rustRegisters(tc.AssertData))
	fmt.Fprintf(out, "    modermodem.cpu.register.assert_all_a_reg_long_no_log(%v);\n", rustRegisters(tc.AssertAddress))
	writeRustFlags(out, "assert_sr_reg_flags_abcde", tc.AssertSR.Flags())
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, "    // assert - mem\n")
	if len(tc.AssertMem) == 0 {
		fmt.Fprintf(out, "    // -nothing-\n")
	}
	for _, blk := range tc.AssertMem {
		for n, value := range blk.Bytes {
			fmt.Fprintf(out, "    assert_eq!(0x%02x, modermodem.mem.get_byte_no_log(0x%08x));\n", value, blk.Address+uint32(n))
		}
	}
	fmt.Fprintf(out, "}\n")
}

func writeRustFlags(out *bufio.Writer, method string, fl spec.Flags) {
	fmt.Fprintf(out, "    modermodem.cpu.register.reg_sr.%v(\n", method)
	for _, line := range rustFlags(fl) {
		fmt.Fprintf(out, "%v\n", line)
	}
	fmt.Fprintf(out, "    );\n")
}
