package spec

import (
	"encoding/hex"
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field names a single valued part of a test case.
type Field int

//go:generate go tool stringer -linecomment -type=Field
const (
	FIELD_ARRANGE_REG_DATA    = Field(0) // arrange_reg_data
	FIELD_ARRANGE_REG_ADDRESS = Field(1) // arrange_reg_address
	FIELD_ARRANGE_REG_SR      = Field(2) // arrange_reg_sr
	FIELD_ARRANGE_CODE        = Field(3) // arrange_code
	FIELD_ASSERT_REG_DATA     = Field(4) // assert_reg_data
	FIELD_ASSERT_REG_ADDRESS  = Field(5) // assert_reg_address
	FIELD_ASSERT_REG_SR       = Field(6) // assert_reg_sr
	FIELD_ASSERT_REG_PC       = Field(7) // assert_reg_pc
	FIELD_ASSERT_CODE         = Field(8) // assert_code
)

// Registers holds D0-D7 or A0-A7.
type Registers [8]uint32

func (regs Registers) MarshalYAML() (any, error) {
	values := make([]string, len(regs))
	for n, reg := range regs {
		values[n] = fmt.Sprintf("0x%08x", reg)
	}
	return values, nil
}

// Block is a run of bytes at an address.
type Block struct {
	Address uint32
	Bytes   []byte
}

// End is the address following the last byte of the block.
func (blk Block) End() uint32 {
	return blk.Address + uint32(len(blk.Bytes))
}

func (blk Block) MarshalYAML() (any, error) {
	return map[string]string{
		"address": fmt.Sprintf("0x%08x", blk.Address),
		"bytes":   hex.EncodeToString(blk.Bytes),
	}, nil
}

// Disassembly is the expected textual decoding of an instruction.
type Disassembly struct {
	Instruction string `yaml:"instruction"`
	Operand     string `yaml:"operand,omitempty"` // Empty when the instruction has no operands.
}

func (dis Disassembly) String() string {
	if len(dis.Operand) == 0 {
		return dis.Instruction
	}
	return dis.Instruction + " " + dis.Operand
}

// TestCase is one fully assembled test. It is not modified after the
// Assembler returns it.
type TestCase struct {
	Name   string `yaml:"name"`
	LineNo int    `yaml:"line"` // Line of the test name.

	ArrangeData    Registers `yaml:"arrange_reg_data"`
	ArrangeAddress Registers `yaml:"arrange_reg_address"`
	ArrangeSR      Status    `yaml:"arrange_reg_sr"`
	ArrangeCode    Block     `yaml:"arrange_code"`
	ArrangeMem     []Block   `yaml:"arrange_mem,omitempty"`

	AssertData    Registers   `yaml:"assert_reg_data"`
	AssertAddress Registers   `yaml:"assert_reg_address"`
	AssertSR      Status      `yaml:"assert_reg_sr"`
	AssertPC      uint32      `yaml:"assert_reg_pc,omitempty"`
	HasAssertPC   bool        `yaml:"-"`
	AssertCode    Disassembly `yaml:"assert_code"`
	AssertMem     []Block     `yaml:"assert_mem,omitempty"`
}

// Label is the case normalized name used for emitted identifiers.
func (tc *TestCase) Label() string {
	return normalize(tc.Name)
}

// NextAddress is the expected program counter after the instruction
// executes. Without an explicit PC it is the address following the code.
func (tc *TestCase) NextAddress() uint32 {
	if tc.HasAssertPC {
		return tc.AssertPC
	}
	return tc.ArrangeCode.End()
}

// TestSet holds the test cases of one specification file, in file order.
type TestSet struct {
	Path   string     `yaml:"path"`
	Module string     `yaml:"module"`
	Cases  []TestCase `yaml:"cases"`
}

// All iterates over the test cases of the set.
func (set *TestSet) All() iter.Seq[*TestCase] {
	return func(yield func(*TestCase) bool) {
		for n := range set.Cases {
			if !yield(&set.Cases[n]) {
				return
			}
		}
	}
}

// Empty returns true if the set has no test cases.
func (set *TestSet) Empty() bool {
	return len(set.Cases) == 0
}

// ModuleName derives the generated module name of a specification file.
func ModuleName(path string) string {
	base := filepath.Base(path)
	return normalize(strings.TrimSuffix(base, filepath.Ext(base)))
}

func normalize(name string) string {
	return cases.Lower(language.Und).String(name)
}
