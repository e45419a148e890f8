package spec

import (
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	reKeyword          = regexp.MustCompile(`^[a-zA-Z_]+$`)
	reAddress          = regexp.MustCompile(`^\$([0-9a-fA-F]{8})(\s+.*)?$`)
	reDataRegisters    = regexp.MustCompile(`^D0(\s+.*)$`)
	reAddressRegisters = regexp.MustCompile(`^A0(\s+.*)$`)
	reStatusFlags      = regexp.MustCompile(`^SR_FLAGS(\s+.*)$`)
	reStatusRegister   = regexp.MustCompile(`^SR(\s+.*)$`)
	reProgramCounter   = regexp.MustCompile(`^PC(\s+.*)$`)
	reFlagMask         = regexp.MustCompile(`^[-E][-N][-Z][-O][-C]$`)
	reBytes            = regexp.MustCompile(`^(?:[0-9a-fA-F]{2})+$`)
)

// Classify converts one raw source line into a classified line.
//
// Any ';' comment is stripped and the remainder trimmed before the line is
// matched. The first matching form wins; a line matching no form, or
// matching a form with malformed content, is an error.
func Classify(lineNo int, raw string) (cl ClassifiedLine, err error) {
	cl = ClassifiedLine{LineNo: lineNo, Raw: raw}

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineNo, Line: raw, Err: err}
		}
	}()

	text, _, _ := strings.Cut(raw, ";")
	text = strings.TrimSpace(text)

	cl.Line, err = classify(text)

	return
}

func classify(text string) (line Line, err error) {
	switch {
	case len(text) == 0:
		return Blank{}, nil
	case text[0] == ':':
		return TestName{Name: strings.TrimSpace(text[1:])}, nil
	case reKeyword.MatchString(text):
		var kw Keyword
		kw, err = ParseKeyword(text)
		if err != nil {
			return
		}
		return KeywordLine{Keyword: kw}, nil
	}

	if m := reAddress.FindStringSubmatch(text); m != nil {
		return classifyAddress(m[1], strings.TrimSpace(m[2]))
	}

	if m := reDataRegisters.FindStringSubmatch(text); m != nil {
		var regs Registers
		regs, err = parseRegisters(f("data registers"), m[1])
		if err != nil {
			return
		}
		return DataRegisters{Registers: regs}, nil
	}

	if m := reAddressRegisters.FindStringSubmatch(text); m != nil {
		var regs Registers
		regs, err = parseRegisters(f("address registers"), m[1])
		if err != nil {
			return
		}
		return AddressRegisters{Registers: regs}, nil
	}

	if m := reStatusFlags.FindStringSubmatch(text); m != nil {
		mask := strings.TrimSpace(m[1])
		if !reFlagMask.MatchString(mask) {
			err = ErrStatusFlags
			return
		}
		var fl Flags
		fl, err = ParseFlags(mask)
		if err != nil {
			return
		}
		return StatusFlags{Flags: fl}, nil
	}

	if m := reStatusRegister.FindStringSubmatch(text); m != nil {
		var values []uint32
		values, err = parseHex(f("status register"), m[1], 1, 4)
		if err != nil {
			return
		}
		return StatusRegister{Word: uint16(values[0])}, nil
	}

	if m := reProgramCounter.FindStringSubmatch(text); m != nil {
		var values []uint32
		values, err = parseHex(f("program counter"), m[1], 1, 8)
		if err != nil {
			return
		}
		return ProgramCounter{Address: values[0]}, nil
	}

	if strings.HasPrefix(text, ">") {
		words := strings.Fields(text[1:])
		switch len(words) {
		case 1:
			return SourceCode{Disassembly{Instruction: words[0]}}, nil
		case 2:
			return SourceCode{Disassembly{Instruction: words[0], Operand: words[1]}}, nil
		}
		err = ErrSourceCode
		return
	}

	err = ErrLineSyntax
	return
}

// classifyAddress handles a `$AAAAAAAA [bytes]` line.
func classifyAddress(addr string, content string) (line Line, err error) {
	value, err := strconv.ParseUint(addr, 16, 32)
	if err != nil {
		err = ErrParseHex{Token: addr, Digits: 8}
		return
	}
	address := uint32(value)

	if len(content) == 0 {
		if address != 0 {
			err = ErrContentMissing
			return
		}
		return AddressTerminator{}, nil
	}

	if address == 0 {
		err = ErrContentNull
		return
	}

	var data []byte
	for _, word := range tokens(content) {
		if !reBytes.MatchString(word) {
			err = ErrContentInvalid(content)
			return
		}
		var decoded []byte
		decoded, err = hex.DecodeString(word)
		if err != nil {
			err = ErrContentInvalid(content)
			return
		}
		data = append(data, decoded...)
	}

	if len(data) == 0 {
		err = ErrContentInvalid(content)
		return
	}

	return AddressWithBytes{Block{Address: address, Bytes: data}}, nil
}

func parseRegisters(what string, content string) (regs Registers, err error) {
	values, err := parseHex(what, content, len(regs), 8)
	if err != nil {
		return
	}
	copy(regs[:], values)
	return
}

// parseHex parses exactly count tokens of exactly digits hex digits each.
func parseHex(what string, content string, count int, digits int) (values []uint32, err error) {
	words := tokens(content)
	if len(words) != count {
		err = ErrCount{What: what, Want: count, Have: len(words)}
		return
	}

	for _, word := range words {
		if len(word) != digits {
			err = ErrParseHex{Token: word, Digits: digits}
			return
		}
		var value uint64
		value, err = strconv.ParseUint(word, 16, digits*4)
		if err != nil {
			err = ErrParseHex{Token: word, Digits: digits}
			return
		}
		values = append(values, uint32(value))
	}

	return
}

// tokens splits on whitespace and commas.
func tokens(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
