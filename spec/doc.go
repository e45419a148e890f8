// Package spec parses the line-oriented CPU instruction test language.
//
// A specification file is a sequence of test cases. Each case opens with a
// `:name` line and is followed by sections introduced by keywords
// (arrange_mem, arrange_reg, arrange_code, assert_mem, assert_reg,
// assert_code, arrange_assert_mem). Every line is first classified on its
// own (Classify), then an Assembler walks the classified lines of one test
// case through its section state machine and produces an immutable TestCase.
// Parser strings the two together for a whole file and returns a TestSet.
//
// All errors are fatal and carry the line number and raw text of the
// offending line.
package spec
