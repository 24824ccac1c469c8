package ftpwire

import (
	"fmt"
	"strings"
)

// Reply represents one complete server reply on the control channel: a
// three-digit code plus one or more message lines. Replies are built only by
// Channel.ReadReply and are not mutated afterwards.
type Reply struct {
	// Code is the three-digit reply code (e.g., 220, 550)
	Code int

	// Lines contains the message lines, in wire order, with the code and
	// separator already stripped
	Lines []string
}

// Message returns the message lines joined with newlines.
func (r *Reply) Message() string {
	return strings.Join(r.Lines, "\n")
}

// String returns the reply formatted as "<code> <message>".
func (r *Reply) String() string {
	return fmt.Sprintf("%d %s", r.Code, r.Message())
}

// Is2xx returns true if the reply code is in the 2xx range (success).
func (r *Reply) Is2xx() bool {
	return r.Code >= 200 && r.Code < 300
}

// Is3xx returns true if the reply code is in the 3xx range (intermediate).
func (r *Reply) Is3xx() bool {
	return r.Code >= 300 && r.Code < 400
}

// Is4xx returns true if the reply code is in the 4xx range (temporary failure).
func (r *Reply) Is4xx() bool {
	return r.Code >= 400 && r.Code < 500
}

// Is5xx returns true if the reply code is in the 5xx range (permanent failure).
func (r *Reply) Is5xx() bool {
	return r.Code >= 500 && r.Code < 600
}
