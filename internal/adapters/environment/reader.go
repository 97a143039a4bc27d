// Package environment exposes the process environment through ports.EnvironmentReader.
package environment

import "os"

// Reader implements ports.EnvironmentReader.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Environ returns os.Environ.
func (Reader) Environ() []string {
	return os.Environ()
}
