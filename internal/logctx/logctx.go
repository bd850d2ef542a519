/*
NAME
  logctx.go

DESCRIPTION
  logctx.go provides the Context type shared by the decoder and render
  packages: a thin holder for a user-supplied logger, following the same
  dependency-injection shape the rest of this codebase uses for
  logging.Logger (see device/alsa, container/mts/encoder.go in the
  wider AusOcean av toolkit).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logctx provides the Context object used to thread a logger
// through a Decoder and a Renderer. A Context must outlive every child
// object constructed from it.
package logctx

import "github.com/ausocean/utils/logging"

// Context holds a user-supplied logger consumed by Decoder and Renderer
// at construction. It has no other state: it exists purely so callers
// have one object whose lifetime rule ("context outlives children") is
// easy to state and easy to honour, mirroring the way a netsender
// client in this toolkit owns a logging.Logger and threads it down into
// every device/codec/container component it constructs.
type Context struct {
	log logging.Logger
}

// New returns a Context wrapping l. If l is nil, a discarding logger is
// substituted so that callers never need a nil check before logging.
func New(l logging.Logger) *Context {
	if l == nil {
		l = nopLogger{}
	}
	return &Context{log: l}
}

// Log returns the underlying logger.
func (c *Context) Log() logging.Logger {
	if c == nil {
		return nopLogger{}
	}
	return c.log
}

type nopLogger struct{}

func (nopLogger) Log(int8, string, ...interface{})   {}
func (nopLogger) SetLevel(int8)                      {}
func (nopLogger) Debug(string, ...interface{})       {}
func (nopLogger) Info(string, ...interface{})        {}
func (nopLogger) Warning(string, ...interface{})     {}
func (nopLogger) Error(string, ...interface{})       {}
func (nopLogger) Fatal(string, ...interface{})       {}
