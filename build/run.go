// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package build

import (
	"io"
	"io/fs"
	"log"
	"path"
	"path/filepath"

	"github.com/ezrec/m68kspec/generate"
	"github.com/ezrec/m68kspec/spec"
)

// SpecFiles lists the regular files of specs matching pattern, sorted by
// name.
func SpecFiles(specs fs.FS, pattern string) (names []string, err error) {
	_, err = path.Match(pattern, "")
	if err != nil {
		return
	}

	entries, err := fs.ReadDir(specs, ".")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		ok, _ := path.Match(pattern, entry.Name())
		if ok {
			names = append(names, entry.Name())
		}
	}

	return
}

// Parse reads every specification file of specs into a test set, in file
// name order. Test names must be unique across all files, as must the
// module names the files generate. Module names must be usable as unit test
// module identifiers.
func Parse(cfg *Config, specs fs.FS) (sets []*spec.TestSet, err error) {
	names, err := SpecFiles(specs, cfg.Settings.SpecPattern)
	if err != nil {
		return
	}

	parser := &spec.Parser{Verbose: cfg.Verbose}
	labels := map[string]string{}
	modules := map[string]string{}

	for _, name := range names {
		specPath := filepath.Join(cfg.SpecDir, name)

		var set *spec.TestSet
		set, err = parseFile(parser, specs, name, specPath)
		if err != nil {
			err = &ErrSpecFile{Path: specPath, Err: err}
			return
		}

		if cfg.Verbose {
			log.Printf("%v: %d test cases", specPath, len(set.Cases))
		}

		if set.Empty() {
			sets = append(sets, set)
			continue
		}

		switch {
		case !spec.Identifier(set.Module):
			err = &ErrSpecFile{Path: specPath, Err: ErrModuleInvalid(set.Module)}
			return
		case spec.Reserved(set.Module):
			err = &ErrSpecFile{Path: specPath, Err: ErrModuleReserved(set.Module)}
			return
		}

		if other, ok := modules[set.Module]; ok {
			err = &ErrSpecFile{Path: specPath, Err: ErrModuleDuplicate{Module: set.Module, Other: other}}
			return
		}
		modules[set.Module] = specPath

		for tc := range set.All() {
			label := tc.Label()
			if other, ok := labels[label]; ok {
				err = &ErrSpecFile{
					Path: specPath,
					Err:  &spec.ErrSyntax{LineNo: tc.LineNo, Line: ":" + tc.Name, Err: ErrLabelDuplicate{Label: label, Other: other}},
				}
				return
			}
			labels[label] = specPath
		}

		sets = append(sets, set)
	}

	return
}

func parseFile(parser *spec.Parser, specs fs.FS, name string, specPath string) (set *spec.TestSet, err error) {
	inf, err := specs.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return parser.Parse(specPath, inf)
}

// Run parses the specification directory and writes the unit tests, the
// hardware tests and both manifests to out. Sets without test cases
// generate no files. The first error aborts the run.
func Run(cfg *Config, out generate.CreateFS, specs fs.FS) (err error) {
	sets, err := Parse(cfg, specs)
	if err != nil {
		return
	}

	if cfg.Dump != nil {
		err = Dump(cfg.Dump, sets)
		if err != nil {
			return
		}
	}

	for _, dir := range []string{cfg.RustDir, cfg.AsmDir, filepath.Dir(cfg.RustManifest)} {
		err = generate.MkdirAll(out, dir, 0755)
		if err != nil {
			return
		}
	}

	rustOut, err := out.Sub(cfg.RustDir)
	if err != nil {
		return
	}

	asmOut, err := out.Sub(cfg.AsmDir)
	if err != nil {
		return
	}

	rust := &generate.Rust{Vectors: cfg.Settings.Vectors()}
	hw := generate.NewHardware()

	for _, set := range sets {
		if set.Empty() {
			continue
		}

		rustName := set.Module + cfg.Settings.RustExt
		rustPath := filepath.Join(cfg.RustDir, rustName)
		err = generate.WriteFile(rustOut, rustName, rustPath, func(w io.Writer) error {
			return rust.Write(w, rustPath, set)
		})
		if err != nil {
			return
		}

		asmName := set.Module + cfg.Settings.AsmExt
		asmPath := filepath.Join(cfg.AsmDir, asmName)
		err = generate.WriteFile(asmOut, asmName, asmPath, func(w io.Writer) error {
			return hw.Write(w, asmPath, set)
		})
		if err != nil {
			return
		}

		if cfg.Verbose {
			log.Printf("%v: wrote %v, %v", set.Path, rustPath, asmPath)
		}
	}

	err = generate.WriteFile(out, cfg.RustManifest, cfg.RustManifest, func(w io.Writer) error {
		return generate.RustManifest(w, cfg.RustManifest, cfg.SpecDir, sets)
	})
	if err != nil {
		return
	}

	suitePath := filepath.Join(cfg.AsmDir, cfg.Settings.SuiteFile)
	err = generate.WriteFile(asmOut, cfg.Settings.SuiteFile, suitePath, func(w io.Writer) error {
		return generate.Suite(w, suitePath, cfg.SpecDir, cfg.Settings.AsmExt, sets)
	})
	if err != nil {
		return
	}

	return
}
