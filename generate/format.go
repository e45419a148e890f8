package generate

import (
	"fmt"
	"strings"

	"github.com/ezrec/m68kspec/spec"
)

// Range is an inclusive address range.
type Range struct {
	Start uint32
	End   uint32
}

// joinf formats every value with format and joins them with sep.
func joinf[T any](format string, sep string, values []T) string {
	text := make([]string, len(values))
	for n, value := range values {
		text[n] = fmt.Sprintf(format, value)
	}
	return strings.Join(text, sep)
}

var rustEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// rustString renders a Rust string literal, quotes included.
func rustString(text string) string {
	return `"` + rustEscaper.Replace(text) + `"`
}

// rustBytes renders a byte array body, `0xD0, 0x41`.
func rustBytes(data []byte) string {
	return joinf("0x%02X", ", ", data)
}

// rustRegisters renders eight register arguments, `0x00000001, ...`.
func rustRegisters(regs spec.Registers) string {
	return joinf("0x%08x", ", ", regs[:])
}

// asmBytes renders a dc.b operand list, `$D0,$41`.
func asmBytes(data []byte) string {
	return joinf("$%02X", ",", data)
}

// asmRegisters renders a dc.l operand list, `$00000001,...`.
func asmRegisters(regs spec.Registers) string {
	return joinf("$%08x", ",", regs[:])
}

var rustFlagName = map[spec.Flags]string{
	spec.FLAG_CARRY:    "STATUS_REGISTER_MASK_CARRY",
	spec.FLAG_OVERFLOW: "STATUS_REGISTER_MASK_OVERFLOW",
	spec.FLAG_ZERO:     "STATUS_REGISTER_MASK_ZERO",
	spec.FLAG_NEGATIVE: "STATUS_REGISTER_MASK_NEGATIVE",
	spec.FLAG_EXTEND:   "STATUS_REGISTER_MASK_EXTEND",
}

// rustFlags renders the argument lines of a status flag expression, one
// mask constant per line joined by '|', or 0x0000 when no flag is set.
func rustFlags(fl spec.Flags) (lines []string) {
	for n, flag := range fl.List() {
		if n == 0 {
			lines = append(lines, "       "+rustFlagName[flag])
		} else {
			lines = append(lines, "       | "+rustFlagName[flag])
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "       0x0000")
	}

	return
}
