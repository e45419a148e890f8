package generate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var hwAdd = strings.ReplaceAll(`; ----------------------T----------------------------------

; Path: out/add.s
; This file is autogenerated from specs/add.txt

 ;rts in case this source is run by mistake
 rts

;===========================================

add_d0_d1
 dc.l .name\t; $00
 dc.l .arrange_mem\t; $04
 dc.l .arrange_regs\t; $08
 dc.l .arrange_code\t; $0c
 dc.l .assert_mem\t; $10
 dc.l .assert_regs\t; $14
 dc.l .assert_code\t; $18

.name
 dc.b "add_d0_d1",0
 even

.arrange_mem
 ;length,address,ptr
 dc.l $00000003,$00002000,.arrange_mem_00002000
 dc.l $00000000,$00000000,$00000000

.arrange_mem_00002000
 dc.b $12,$34,$56
 even

.arrange_regs
 ;    D0/A0     D1/A1     D2/A2     D3/A3     D4/A4     D5/A5     D6/A6     D7/A7
 dc.l $00000001,$00000000,$00000000,$00000000,$00000000,$00000000,$00000000,$00000000
 dc.l $00002000,$00000000,$00000000,$00000000,$00000000,$00000000,$00000000,$00000000
 dc.w $2705 ; --Z-C

.arrange_code
 ;length,address
 dc.l $00000001,$00001000
 dc.b $D0,$41

.assert_mem
 ;length,address,ptr
 dc.l $00000002,$00002000,.assert_mem_00002000
 dc.l $00000000,$00000000,$00000000

.assert_mem_00002000
 dc.b $12,$AB

.assert_regs
 ;    D0/A0     D1/A1     D2/A2     D3/A3     D4/A4     D5/A5     D6/A6     D7/A7
 dc.l $00000002,$00000000,$00000000,$00000000,$00000000,$00000000,$00000000,$00000000
 dc.l $00002000,$00000000,$00000000,$00000000,$00000000,$00000000,$00000000,$00000000
 dc.l $00001002 ; PC
 dc.w $2700 ; SR=-----

.assert_code
 ADD.L #1,D0

`, `\t`, "\t")

func TestHardware(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := NewHardware().Write(&buf, "out/add.s", addSet())
	assert.NoError(err)
	assert.Empty(cmp.Diff(hwAdd, buf.String()))
}

func TestHardware_AssertCode(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(NewHardware().Write(&buf, "add.s", addSet()))

	lines := strings.Split(buf.String(), "\n")
	for n, line := range lines {
		if line == ".assert_code" {
			assert.Equal("ADD.L #1,D0", strings.TrimSpace(lines[n+1]))
			assert.Equal("", lines[n+2])
			return
		}
	}
	assert.Fail("no .assert_code block")
}

func TestHardware_Minimal(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(NewHardware().Write(&buf, "nop.s", nopSet()))

	text := buf.String()
	assert.Contains(text, ".arrange_mem\n ;length,address,ptr\n dc.l $00000000,$00000000,$00000000\n\n.arrange_regs\n")
	assert.Contains(text, ".assert_mem\n ;length,address,ptr\n dc.l $00000000,$00000000,$00000000\n\n.assert_regs\n")
	assert.Contains(text, " dc.w $001f ; ENZOC\n")
	assert.Contains(text, " dc.l $00c00010 ; PC\n")
	assert.Contains(text, " dc.w $0008 ; SR=-N---\n")
	assert.Contains(text, " dc.l $00000001,$00c00000\n dc.b $4E,$71,$00\n even\n")
	assert.Contains(text, ".assert_code\n NOP\n\n")
}

func TestHardware_Deterministic(t *testing.T) {
	assert := assert.New(t)

	var first, second bytes.Buffer
	assert.NoError(NewHardware().Write(&first, "nop.s", nopSet()))
	assert.NoError(NewHardware().Write(&second, "nop.s", nopSet()))
	assert.Equal(first.String(), second.String())
}
