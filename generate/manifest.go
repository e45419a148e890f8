package generate

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/m68kspec/internal"
	"github.com/ezrec/m68kspec/spec"
)

// nonEmpty filters out sets without test cases.
func nonEmpty(sets []*spec.TestSet) (kept []*spec.TestSet) {
	for _, set := range sets {
		if !set.Empty() {
			kept = append(kept, set)
		}
	}
	return
}

// RustManifest writes the module file declaring one `pub mod` for every set
// with test cases. The source names the specification directory.
func RustManifest(w io.Writer, path string, source string, sets []*spec.TestSet) (err error) {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "// Path: %v\n", path)
	fmt.Fprintf(out, "// This file is autogenerated from %v\n", source)
	fmt.Fprintf(out, "\n")

	for _, set := range nonEmpty(sets) {
		fmt.Fprintf(out, "pub mod %v;\n", set.Module)
		fmt.Fprintf(out, "\n")
	}

	err = out.Flush()

	return
}

// Labels iterates over the labels of every test case of the sets, in order.
func Labels(sets []*spec.TestSet) iter.Seq[string] {
	cases := make([]iter.Seq[*spec.TestCase], len(sets))
	for n, set := range sets {
		cases[n] = set.All()
	}

	return internal.IterSeqMap(internal.IterSeqConcat(cases...), (*spec.TestCase).Label)
}

// Suite writes the hardware test suite: a null terminated table of every
// test case followed by an include of every generated file. Included files
// are named after the set module with the ext extension.
func Suite(w io.Writer, path string, source string, ext string, sets []*spec.TestSet) (err error) {
	out := bufio.NewWriter(w)

	sets = nonEmpty(sets)

	fmt.Fprintf(out, ";---------------T---------T---------------------T----------\n")
	fmt.Fprintf(out, "; Path: %v\n", path)
	fmt.Fprintf(out, "; This file is autogenerated from %v\n", source)
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "\t; rts in case this source is run by mistake\n")
	fmt.Fprintf(out, "\trts\n")
	fmt.Fprintf(out, "\n")

	fmt.Fprintf(out, "test_suite\n")
	for label := range Labels(sets) {
		fmt.Fprintf(out, "\tdc.l\t%v\n", label)
	}
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "\tdc.l\t$0\n")
	fmt.Fprintf(out, "\n")

	for _, set := range sets {
		fmt.Fprintf(out, "\tinclude\t\"%v%v\"\n", set.Module, ext)
	}

	err = out.Flush()

	return
}
