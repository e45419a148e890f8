package spec

import (
	"fmt"
	"strings"
)

// Flags is the set of condition code flags of the status register.
type Flags uint16

const (
	FLAG_CARRY    = Flags(0x0001) // C
	FLAG_OVERFLOW = Flags(0x0002) // O
	FLAG_ZERO     = Flags(0x0004) // Z
	FLAG_NEGATIVE = Flags(0x0008) // N
	FLAG_EXTEND   = Flags(0x0010) // E
	FLAG_MASK     = Flags(0x001f)
)

// Display order of the flags, most significant first.
var flagOrder = [...]struct {
	flag   Flags
	letter byte
}{
	{FLAG_EXTEND, 'E'},
	{FLAG_NEGATIVE, 'N'},
	{FLAG_ZERO, 'Z'},
	{FLAG_OVERFLOW, 'O'},
	{FLAG_CARRY, 'C'},
}

// FlagsFromWord decodes the flags of a status word. Other bits are ignored.
func FlagsFromWord(word uint16) Flags {
	return Flags(word) & FLAG_MASK
}

// Word encodes the flags as a status word.
func (fl Flags) Word() uint16 {
	return uint16(fl & FLAG_MASK)
}

// Has returns true if all of flag is set.
func (fl Flags) Has(flag Flags) bool {
	return fl&flag == flag
}

// ParseFlags decodes the 5 character ENZOC form, where each position holds
// its letter when set or '-' when clear.
func ParseFlags(mask string) (fl Flags, err error) {
	if len(mask) != len(flagOrder) {
		err = ErrStatusFlags
		return
	}

	for n, entry := range flagOrder {
		switch mask[n] {
		case entry.letter:
			fl |= entry.flag
		case '-':
		default:
			err = ErrStatusFlags
			return 0, err
		}
	}

	return
}

// String renders the flags in ENZOC form.
func (fl Flags) String() string {
	var text strings.Builder
	for _, entry := range flagOrder {
		if fl.Has(entry.flag) {
			text.WriteByte(entry.letter)
		} else {
			text.WriteByte('-')
		}
	}
	return text.String()
}

// List returns the individual set flags in ENZOC order.
func (fl Flags) List() (flags []Flags) {
	for _, entry := range flagOrder {
		if fl.Has(entry.flag) {
			flags = append(flags, entry.flag)
		}
	}
	return
}

func (fl Flags) MarshalYAML() (any, error) {
	return fl.String(), nil
}

// Status is a full status register word as written in the specification.
type Status uint16

// Flags returns the condition code flags of the status word.
func (st Status) Flags() Flags {
	return FlagsFromWord(uint16(st))
}

func (st Status) String() string {
	return st.Flags().String()
}

func (st Status) MarshalYAML() (any, error) {
	return fmt.Sprintf("0x%04x %v", uint16(st), st.Flags()), nil
}
