package build

import (
	"io"
	"log"
	"math"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/m68kspec/generate"
)

// Settings tune the generated output. They are loaded from an optional
// Starlark file, where each setting is a global of the same name.
type Settings struct {
	SpecPattern  string // spec_pattern: glob selecting specification files.
	SuiteFile    string // suite_file: name of the hardware test suite.
	RustExt      string // rust_ext: extension of generated unit tests.
	AsmExt       string // asm_ext: extension of generated hardware tests.
	VectorsStart uint32 // vectors_start: first address of the vector table RAM.
	VectorsEnd   uint32 // vectors_end: last address of the vector table RAM.
}

// DefaultSettings returns the settings used without a configuration file.
func DefaultSettings() Settings {
	return Settings{
		SpecPattern:  "*",
		SuiteFile:    "test_suite.s",
		RustExt:      ".rs",
		AsmExt:       ".s",
		VectorsStart: generate.DefaultVectors.Start,
		VectorsEnd:   generate.DefaultVectors.End,
	}
}

// Vectors is the interrupt vector table range.
func (settings *Settings) Vectors() generate.Range {
	return generate.Range{Start: settings.VectorsStart, End: settings.VectorsEnd}
}

// Config is everything a run needs.
type Config struct {
	SpecDir      string    // Specification directory, as named in generated headers.
	RustDir      string    // Output directory of unit tests.
	RustManifest string    // Output path of the unit test module manifest.
	AsmDir       string    // Output directory of hardware tests and the suite.
	Verbose      bool      // If set, logs every line parsed.
	Dump         io.Writer // If set, parsed test sets are written to it as YAML.
	Settings     Settings
}

// NewConfig returns a configuration with default settings.
func NewConfig(specDir, rustDir, rustManifest, asmDir string) *Config {
	return &Config{
		SpecDir:      specDir,
		RustDir:      rustDir,
		RustManifest: rustManifest,
		AsmDir:       asmDir,
		Settings:     DefaultSettings(),
	}
}

// LoadSettings evaluates a Starlark configuration over the defaults.
// The src argument is as for starlark.ExecFile; if nil, filename is read.
// Globals starting with '_' are private to the file.
func LoadSettings(filename string, src any) (settings Settings, err error) {
	settings = DefaultSettings()

	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, nil)
	if err != nil {
		return
	}

	strs := map[string]*string{
		"spec_pattern": &settings.SpecPattern,
		"suite_file":   &settings.SuiteFile,
		"rust_ext":     &settings.RustExt,
		"asm_ext":      &settings.AsmExt,
	}
	ints := map[string]*uint32{
		"vectors_start": &settings.VectorsStart,
		"vectors_end":   &settings.VectorsEnd,
	}

	for _, name := range globals.Keys() {
		if strings.HasPrefix(name, "_") {
			continue
		}
		value := globals[name]

		if ptr, ok := strs[name]; ok {
			str, ok := starlark.AsString(value)
			if !ok {
				err = ErrConfigType{Name: name, Want: "string", Have: value.Type()}
				return
			}
			*ptr = str
			continue
		}

		if ptr, ok := ints[name]; ok {
			num, ok := value.(starlark.Int)
			if !ok {
				err = ErrConfigType{Name: name, Want: "int", Have: value.Type()}
				return
			}
			num64, ok := num.Int64()
			if !ok || num64 < 0 || num64 > math.MaxUint32 {
				err = ErrConfigValue(name)
				return
			}
			*ptr = uint32(num64)
			continue
		}

		err = ErrConfigUnknown(name)
		return
	}

	if settings.VectorsStart > settings.VectorsEnd {
		err = ErrConfigValue("vectors_end")
		return
	}

	if len(settings.SuiteFile) == 0 {
		err = ErrConfigValue("suite_file")
		return
	}

	return
}
