package main

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// selector hands out a single tracer for every key, so output and level
// are set once for all packages.
type selector struct {
	t tracing.Trace
}

func (s selector) Select(string) tracing.Trace {
	return s.t
}

// setupTracing installs a Go logger writing to w at the given level.
func setupTracing(w io.Writer, level string) tracing.Trace {
	t := gologadapter.New()
	t.SetOutput(w)
	t.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(selector{t: t})
	return t
}
