package spec

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// Parser reads whole specification files.
type Parser struct {
	Verbose bool // If set, verbosely logs every line and state change.
}

// Parse reads a specification and assembles its test cases in file order.
// The path names the specification in the returned set.
func (p *Parser) Parse(path string, input io.Reader) (set *TestSet, err error) {
	scanner := bufio.NewScanner(input)

	set = &TestSet{
		Path:   path,
		Module: ModuleName(path),
	}

	labels := map[string]int{}

	var asm *Assembler
	var lineno int

	finish := func() (err error) {
		tc, err := asm.Finish()
		if err != nil {
			return
		}
		set.Cases = append(set.Cases, tc)
		asm = nil
		return
	}

	for scanner.Scan() {
		lineno++
		text := strings.TrimRight(scanner.Text(), "\r")

		if p.Verbose {
			log.Printf("%v: %5d: %v", path, lineno, text)
		}

		var cl ClassifiedLine
		cl, err = Classify(lineno, text)
		if err != nil {
			return nil, err
		}

		if asm != nil {
			var done bool
			done, err = asm.Feed(cl)
			if err != nil {
				return nil, err
			}
			if !done {
				continue
			}
			err = finish()
			if err != nil {
				return nil, err
			}
		}

		// Between test cases only blank lines and test names may appear.
		switch cl.Line.(type) {
		case Blank:
			continue
		case TestName:
			asm, err = NewAssembler(cl)
			if err != nil {
				return nil, err
			}
			asm.Verbose = p.Verbose

			label := asm.Label()
			if _, ok := labels[label]; ok {
				err = &ErrSyntax{LineNo: cl.LineNo, Line: cl.Raw, Err: ErrTestDuplicate}
				return nil, err
			}
			labels[label] = cl.LineNo
		default:
			err = &ErrSyntax{LineNo: cl.LineNo, Line: cl.Raw, Err: ErrTestNameExpected}
			return nil, err
		}
	}

	err = scanner.Err()
	if err != nil {
		// The scanner stops on the line it could not read.
		err = &ErrSyntax{LineNo: lineno + 1, Err: err}
		return nil, err
	}

	if asm != nil {
		err = finish()
		if err != nil {
			return nil, err
		}
	}

	return
}

// Parse reads a specification with a default Parser.
func Parse(path string, input io.Reader) (set *TestSet, err error) {
	p := &Parser{}
	return p.Parse(path, input)
}
