// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/m68kspec/build"
	"github.com/ezrec/m68kspec/generate"
	"github.com/ezrec/m68kspec/translate"
)

var (
	verbose bool
	dump    bool
	config  string
)

var rootCmd = &cobra.Command{
	Use:   "m68kspec specDir rustDir rustManifest asmDir",
	Short: "Generate M68k instruction tests from test specifications",
	Long: `M68kspec reads every specification file in specDir and generates, for
each file with at least one test case, an emulator unit test source in
rustDir and a hardware test source in asmDir. The unit test module manifest
is written to rustManifest, and the hardware test suite to asmDir.

Output directories are created if absent. Any error in any specification
aborts the whole run.
`,
	Example: `  m68kspec tests ../src/cpu/instruction/gen_tests ../src/cpu/instruction/gen_tests.rs amiga`,
	Args:    cobra.ExactArgs(4),
	RunE:    run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "Dump parsed test cases as YAML to stdout")
	rootCmd.Flags().StringVar(&config, "config", "", "Starlark settings file")
}

func run(cmd *cobra.Command, args []string) (err error) {
	// Usage is only shown for command line errors.
	cmd.SilenceUsage = true

	cfg := build.NewConfig(args[0], args[1], args[2], args[3])
	cfg.Verbose = verbose

	if verbose {
		log.Printf("messages: %v", translate.Language())
	}

	if len(config) != 0 {
		cfg.Settings, err = build.LoadSettings(config, nil)
		if err != nil {
			return
		}
	}

	if dump {
		cfg.Dump = os.Stdout
	}

	err = build.Run(cfg, generate.OsFS(""), os.DirFS(cfg.SpecDir))

	return
}

func main() {
	prefix := filepath.Base(os.Args[0]) + ": "
	if term.IsTerminal(int(os.Stderr.Fd())) {
		prefix = "\x1b[1m" + prefix + "\x1b[0m"
	}

	log.SetFlags(0)
	log.SetPrefix(prefix)

	rootCmd.SilenceErrors = true

	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("%v", err)
	}
}
