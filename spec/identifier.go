package spec

import (
	"regexp"
)

var reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// rustReserved are the strict and reserved keywords of every Rust edition,
// plus the lone underscore. None of them can name a function or module.
var rustReserved = map[string]bool{
	"_": true,

	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "gen": true,
	"if": true, "impl": true, "in": true, "let": true, "loop": true,
	"match": true, "mod": true, "move": true, "mut": true, "pub": true,
	"ref": true, "return": true, "self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "try": true, "type": true,
	"unsafe": true, "use": true, "where": true, "while": true,

	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"macro": true, "override": true, "priv": true, "typeof": true,
	"unsized": true, "virtual": true, "yield": true,
}

// Identifier reports if name has the shape of a generated identifier.
func Identifier(name string) bool {
	return reIdentifier.MatchString(name)
}

// Reserved reports if name, once normalized, is a keyword of the generated
// unit tests.
func Reserved(name string) bool {
	return rustReserved[normalize(name)]
}
