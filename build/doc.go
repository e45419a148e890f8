// Package build drives a whole generation run: it reads a directory of
// specification files and writes the generated sources and manifests.
package build
