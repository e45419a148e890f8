package build

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/m68kspec/generate"
	"github.com/ezrec/m68kspec/spec"
)

const specAdd = `; ADD tests
:add_d0_d1
arrange_reg
D0 00000001 00000000 00000000 00000000 00000000 00000000 00000000 00000000
A0 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000
SR_FLAGS -----
arrange_code
$00001000 d0,41
assert_reg
D0 00000002 00000000 00000000 00000000 00000000 00000000 00000000 00000000
A0 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000
SR_FLAGS -----
assert_code
>ADD.L #1,D0
`

const specMove = `:move_mem
arrange_assert_mem
$00002000 12 34
$00000000
arrange_reg
D0 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000
A0 00002000 00000000 00000000 00000000 00000000 00000000 00000000 00000000
SR 2700
arrange_code
$00001000 10 10
assert_reg
D0 00000012 00000000 00000000 00000000 00000000 00000000 00000000 00000000
A0 00002000 00000000 00000000 00000000 00000000 00000000 00000000 00000000
SR 2700
assert_code
>MOVE.B (A0),D0
`

func specFS() fstest.MapFS {
	return fstest.MapFS{
		"Move_b.txt":    {Data: []byte(specMove)},
		"add.txt":       {Data: []byte(specAdd)},
		"empty.txt":     {Data: []byte("; nothing yet\n")},
		"notes/old.txt": {Data: []byte("not a spec")},
	}
}

func readString(t *testing.T, mfs *generate.MemFS, name string) string {
	data, err := mfs.ReadFile(name)
	require.NoError(t, err, name)
	return string(data)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	cfg := NewConfig("specs", "out/rust", "out/gen_tests.rs", "out/amiga")
	out := generate.NewMemFS()

	err := Run(cfg, out, specFS())
	require.NoError(t, err)

	assert.Equal([]string{
		"out/amiga/add.s",
		"out/amiga/move_b.s",
		"out/amiga/test_suite.s",
		"out/gen_tests.rs",
		"out/rust/add.rs",
		"out/rust/move_b.rs",
	}, out.Files())

	rust := readString(t, out, "out/rust/add.rs")
	assert.True(strings.HasPrefix(rust, "// Path: out/rust/add.rs\n// This file is autogenerated from specs/add.txt\n"))
	assert.Contains(rust, "fn add_d0_d1() {\n")
	assert.Contains(rust, "    let code = [0xD0, 0x41].to_vec();\n")
	assert.Contains(rust, "    modermodem.cpu.register.assert_all_d_reg_long_no_log(0x00000002, ")
	assert.Contains(rust, "            0x00001002,\n")

	asm := readString(t, out, "out/amiga/add.s")
	assert.Contains(asm, "; Path: out/amiga/add.s\n")
	assert.Contains(asm, ".assert_code\n ADD.L #1,D0\n\n")

	move := readString(t, out, "out/rust/move_b.rs")
	assert.Contains(move, "    assert_eq!(0x12, modermodem.mem.get_byte_no_log(0x00002000));\n")
	assert.Contains(move, "    assert_eq!(0x34, modermodem.mem.get_byte_no_log(0x00002001));\n")

	assert.Equal("// Path: out/gen_tests.rs\n"+
		"// This file is autogenerated from specs\n"+
		"\n"+
		"pub mod move_b;\n\n"+
		"pub mod add;\n\n", readString(t, out, "out/gen_tests.rs"))

	suite := readString(t, out, "out/amiga/test_suite.s")
	assert.Contains(suite, "test_suite\n\tdc.l\tmove_mem\n\tdc.l\tadd_d0_d1\n\n\tdc.l\t$0\n\n")
	assert.True(strings.HasSuffix(suite, "\tinclude\t\"move_b.s\"\n\tinclude\t\"add.s\"\n"))
}

func TestRun_Deterministic(t *testing.T) {
	assert := assert.New(t)

	cfg := NewConfig("specs", "rust", "gen_tests.rs", "amiga")

	first := generate.NewMemFS()
	require.NoError(t, Run(cfg, first, specFS()))

	second := generate.NewMemFS()
	require.NoError(t, Run(cfg, second, specFS()))

	assert.Equal(first.Files(), second.Files())
	for _, name := range first.Files() {
		assert.Equal(readString(t, first, name), readString(t, second, name), name)
	}
}

func TestRun_Settings(t *testing.T) {
	assert := assert.New(t)

	cfg := NewConfig("specs", "rust", "rust/mod.rs", "amiga")
	cfg.Settings.SpecPattern = "a*.txt"
	cfg.Settings.SuiteFile = "all.asm"
	cfg.Settings.AsmExt = ".asm"
	cfg.Settings.VectorsEnd = 0x7ff

	out := generate.NewMemFS()
	require.NoError(t, Run(cfg, out, specFS()))

	assert.Equal([]string{
		"amiga/add.asm",
		"amiga/all.asm",
		"rust/add.rs",
		"rust/mod.rs",
	}, out.Files())
	assert.Contains(readString(t, out, "rust/add.rs"), "RamMemory::from_range(0x00000000, 0x000007ff);")
	assert.Contains(readString(t, out, "amiga/all.asm"), "\tinclude\t\"add.asm\"\n")
}

func TestRun_Empty(t *testing.T) {
	assert := assert.New(t)

	cfg := NewConfig("specs", "rust", "gen_tests.rs", "amiga")
	out := generate.NewMemFS()

	require.NoError(t, Run(cfg, out, fstest.MapFS{}))
	assert.Equal([]string{"amiga/test_suite.s", "gen_tests.rs"}, out.Files())
	assert.True(out.IsDir("rust"))
	assert.NotContains(readString(t, out, "gen_tests.rs"), "pub mod")
}

func TestRun_Errors(t *testing.T) {
	assert := assert.New(t)

	cfg := NewConfig("specs", "rust", "gen_tests.rs", "amiga")

	bad := specFS()
	bad["bad.txt"] = &fstest.MapFile{Data: []byte(":x\narrange_reg\nD0 1\n")}

	out := generate.NewMemFS()
	err := Run(cfg, out, bad)

	var sferr *ErrSpecFile
	if assert.ErrorAs(err, &sferr) {
		assert.Equal("specs/bad.txt", sferr.Path)
	}
	var syn *spec.ErrSyntax
	if assert.ErrorAs(err, &syn) {
		assert.Equal(3, syn.LineNo)
	}
	assert.ErrorIs(err, spec.ErrCount{What: "data registers", Want: 8, Have: 1})
	assert.Empty(out.Files())

	dup := specFS()
	dup["zzz.txt"] = &fstest.MapFile{Data: []byte(strings.ReplaceAll(specAdd, ":add_d0_d1", ":ADD_D0_D1"))}

	err = Run(cfg, generate.NewMemFS(), dup)
	assert.ErrorIs(err, ErrLabelDuplicate{Label: "add_d0_d1", Other: "specs/add.txt"})
	if assert.ErrorAs(err, &syn) {
		assert.Equal(2, syn.LineNo)
	}

	clash := specFS()
	clash["ADD.s"] = &fstest.MapFile{Data: []byte(strings.ReplaceAll(specMove, ":move_mem", ":other"))}

	err = Run(cfg, generate.NewMemFS(), clash)
	assert.ErrorIs(err, ErrModuleDuplicate{Module: "add", Other: "specs/ADD.s"})

	cfg.Settings.SpecPattern = "[a-"
	err = Run(cfg, generate.NewMemFS(), specFS())
	assert.Error(err)
}

func TestRun_Reserved(t *testing.T) {
	assert := assert.New(t)

	cfg := NewConfig("specs", "rust", "gen_tests.rs", "amiga")

	table := [](struct {
		Name string
		Err  error
	}){
		{"move.txt", ErrModuleReserved("move")},
		{"Self.txt", ErrModuleReserved("self")},
		{"add-b.txt", ErrModuleInvalid("add-b")},
		{"2nd.txt", ErrModuleInvalid("2nd")},
	}

	for _, entry := range table {
		specs := fstest.MapFS{entry.Name: {Data: []byte(specAdd)}}

		out := generate.NewMemFS()
		err := Run(cfg, out, specs)
		assert.ErrorIs(err, entry.Err, entry.Name)

		var sferr *ErrSpecFile
		if assert.ErrorAs(err, &sferr, entry.Name) {
			assert.Equal("specs/"+entry.Name, sferr.Path)
		}
		assert.Empty(out.Files(), entry.Name)
	}

	// Files without test cases generate no module.
	specs := fstest.MapFS{"loop.txt": {Data: []byte("; later\n")}}
	assert.NoError(Run(cfg, generate.NewMemFS(), specs))

	specs = fstest.MapFS{"add.txt": {Data: []byte(strings.ReplaceAll(specAdd, ":add_d0_d1", ":loop"))}}
	err := Run(cfg, generate.NewMemFS(), specs)
	assert.ErrorIs(err, spec.ErrTestNameReserved)

	var syn *spec.ErrSyntax
	if assert.ErrorAs(err, &syn) {
		assert.Equal(2, syn.LineNo)
	}
}

func TestSpecFiles(t *testing.T) {
	assert := assert.New(t)

	names, err := SpecFiles(specFS(), "*")
	assert.NoError(err)
	assert.Equal([]string{"Move_b.txt", "add.txt", "empty.txt"}, names)

	names, err = SpecFiles(specFS(), "*.md")
	assert.NoError(err)
	assert.Empty(names)

	_, err = SpecFiles(fstest.MapFS{}, "[")
	assert.Error(err)
}

func TestDump(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	cfg := NewConfig("specs", "rust", "gen_tests.rs", "amiga")
	cfg.Dump = &buf

	require.NoError(t, Run(cfg, generate.NewMemFS(), specFS()))

	var doc []struct {
		Path   string `yaml:"path"`
		Module string `yaml:"module"`
		Cases  []struct {
			Name       string              `yaml:"name"`
			Line       int                 `yaml:"line"`
			ArrangeSR  string              `yaml:"arrange_reg_sr"`
			ArrangeReg []string            `yaml:"arrange_reg_data"`
			Code       map[string]string   `yaml:"arrange_code"`
			AssertCode map[string]string   `yaml:"assert_code"`
			AssertMem  []map[string]string `yaml:"assert_mem"`
		} `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	if !assert.Len(doc, 3) {
		return
	}
	assert.Equal("specs/Move_b.txt", doc[0].Path)
	assert.Equal("move_b", doc[0].Module)
	assert.Equal("add", doc[1].Module)
	assert.Empty(doc[2].Cases)

	if assert.Len(doc[1].Cases, 1) {
		tc := doc[1].Cases[0]
		assert.Equal("add_d0_d1", tc.Name)
		assert.Equal(2, tc.Line)
		assert.Equal("0x0000 -----", tc.ArrangeSR)
		assert.Equal("0x00000001", tc.ArrangeReg[0])
		assert.Equal(map[string]string{"address": "0x00001000", "bytes": "d041"}, tc.Code)
		assert.Equal(map[string]string{"instruction": "ADD.L", "operand": "#1,D0"}, tc.AssertCode)
	}

	if assert.Len(doc[0].Cases, 1) {
		assert.Equal([]map[string]string{{"address": "0x00002000", "bytes": "1234"}}, doc[0].Cases[0].AssertMem)
	}
}

func TestSpecFiles_Dirs(t *testing.T) {
	assert := assert.New(t)

	names, err := SpecFiles(fstest.MapFS{"a/b.txt": {}}, "*")
	assert.NoError(err)
	assert.Empty(names)

	names, err = SpecFiles(fstest.MapFS{}, "*")
	assert.NoError(err)
	assert.Empty(names)
}
