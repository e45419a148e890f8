// Package generate renders parsed test sets as source code.
//
// Rust emits one emulator unit test per test case. Hardware emits the same
// test cases as assembler data blocks for a test runner on real machines.
// RustManifest and Suite tie the per file outputs together, and CreateFS
// abstracts the directory tree they are written to.
package generate
