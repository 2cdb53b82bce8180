package object

import (
	"io"
	"strings"
)

// Context is the interpreter's one abstract collaborator with the
// outside world: a place for `print` to write. Mirrors
// original_source/mython/runtime.h's Context::GetOutputStream().
type Context interface {
	OutputStream() io.Writer
}

// StreamContext wraps an externally-owned io.Writer (stdout in
// production).
type StreamContext struct {
	w io.Writer
}

// NewStreamContext builds a Context writing to w.
func NewStreamContext(w io.Writer) *StreamContext {
	return &StreamContext{w: w}
}

func (c *StreamContext) OutputStream() io.Writer { return c.w }

// BufferContext buffers output in memory; used by tests.
type BufferContext struct {
	buf strings.Builder
}

// NewBufferContext builds a Context that captures output for
// inspection via String().
func NewBufferContext() *BufferContext {
	return &BufferContext{}
}

func (c *BufferContext) OutputStream() io.Writer { return &c.buf }

// String returns everything written to the context so far.
func (c *BufferContext) String() string { return c.buf.String() }
