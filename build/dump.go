package build

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/m68kspec/spec"
)

// Dump writes the parsed test sets to w as a YAML document.
func Dump(w io.Writer, sets []*spec.TestSet) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err = enc.Encode(sets)
	if err != nil {
		enc.Close()
		return
	}

	err = enc.Close()

	return
}
