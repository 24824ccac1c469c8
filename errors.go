package ftpwire

import (
	"errors"
	"fmt"
)

// ErrChannelClosed is returned by all channel operations after Close.
var ErrChannelClosed = errors.New("ftpwire: channel is closed")

// IllegalReplyError indicates the server violated the reply framing rules:
// a first line shorter than three characters, an unparsable leading code, a
// continuation line claiming a different code, or an invalid separator.
//
// It is always fatal to the ReadReply call that produced it. The channel does
// not resynchronize; callers typically close and reconnect.
type IllegalReplyError struct {
	// Line is the raw transport line that broke the framing contract
	Line string
}

// Error implements the error interface.
func (e *IllegalReplyError) Error() string {
	return fmt.Sprintf("ftpwire: illegal server reply: %q", e.Line)
}

// UnsupportedEncodingError indicates a charset name that is not in the IANA
// registry (or has no decoder in the runtime). It is raised before any
// encoding state changes, so the previous charset stays in effect.
type UnsupportedEncodingError struct {
	// Name is the charset name that failed to resolve
	Name string
}

// Error implements the error interface.
func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("ftpwire: unsupported encoding: %q", e.Name)
}
