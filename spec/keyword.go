package spec

// Keyword introduces a section of a test case.
type Keyword int

//go:generate go tool stringer -linecomment -type=Keyword
const (
	KEYWORD_ARRANGE_MEM        = Keyword(0) // arrange_mem
	KEYWORD_ARRANGE_REG        = Keyword(1) // arrange_reg
	KEYWORD_ARRANGE_CODE       = Keyword(2) // arrange_code
	KEYWORD_ASSERT_MEM         = Keyword(3) // assert_mem
	KEYWORD_ASSERT_REG         = Keyword(4) // assert_reg
	KEYWORD_ASSERT_CODE        = Keyword(5) // assert_code
	KEYWORD_ARRANGE_ASSERT_MEM = Keyword(6) // arrange_assert_mem
)

var keywordMap = map[string]Keyword{
	"arrange_mem":        KEYWORD_ARRANGE_MEM,
	"arrange_reg":        KEYWORD_ARRANGE_REG,
	"arrange_code":       KEYWORD_ARRANGE_CODE,
	"assert_mem":         KEYWORD_ASSERT_MEM,
	"assert_reg":         KEYWORD_ASSERT_REG,
	"assert_code":        KEYWORD_ASSERT_CODE,
	"arrange_assert_mem": KEYWORD_ARRANGE_ASSERT_MEM,
}

// ParseKeyword resolves the text of a keyword line.
func ParseKeyword(text string) (kw Keyword, err error) {
	kw, ok := keywordMap[text]
	if !ok {
		err = ErrKeywordUnknown(text)
	}
	return
}

// State is the section state a keyword switches to.
func (kw Keyword) State() State {
	switch kw {
	case KEYWORD_ARRANGE_MEM:
		return STATE_ARRANGE_MEM
	case KEYWORD_ARRANGE_REG:
		return STATE_ARRANGE_REG
	case KEYWORD_ARRANGE_CODE:
		return STATE_ARRANGE_CODE
	case KEYWORD_ASSERT_MEM:
		return STATE_ASSERT_MEM
	case KEYWORD_ASSERT_REG:
		return STATE_ASSERT_REG
	case KEYWORD_ASSERT_CODE:
		return STATE_ASSERT_CODE
	case KEYWORD_ARRANGE_ASSERT_MEM:
		return STATE_ARRANGE_AND_ASSERT_MEM
	}
	return STATE_GLOBAL
}
