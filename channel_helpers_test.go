package ftpwire

import (
	"bytes"
	"net"
	"strings"
	"testing"
	"time"
)

// fakeAddr satisfies net.Addr for the in-memory test connection.
type fakeAddr string

func (a fakeAddr) Network() string { return "fake" }
func (a fakeAddr) String() string  { return string(a) }

// fakeConn is an in-memory net.Conn: reads serve a scripted server byte
// stream, writes accumulate in a buffer for inspection.
type fakeConn struct {
	in     *strings.Reader
	out    bytes.Buffer
	closed bool
}

func newFakeConn(serverScript string) *fakeConn {
	return &fakeConn{in: strings.NewReader(serverScript)}
}

func (c *fakeConn) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *fakeConn) Write(p []byte) (int, error) { return c.out.Write(p) }
func (c *fakeConn) Close() error                { c.closed = true; return nil }

func (c *fakeConn) LocalAddr() net.Addr                { return fakeAddr("local") }
func (c *fakeConn) RemoteAddr() net.Addr               { return fakeAddr("remote") }
func (c *fakeConn) SetDeadline(t time.Time) error      { return nil }
func (c *fakeConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *fakeConn) SetWriteDeadline(t time.Time) error { return nil }

// newTestChannel builds a channel over a scripted server stream.
func newTestChannel(t *testing.T, serverScript string, options ...Option) (*Channel, *fakeConn) {
	t.Helper()
	conn := newFakeConn(serverScript)
	ch, err := NewChannel(conn, options...)
	if err != nil {
		t.Fatalf("NewChannel failed: %v", err)
	}
	return ch, conn
}

// recordingObserver appends a tagged entry to a shared log for every
// callback, so tests can assert fan-out order across observers.
type recordingObserver struct {
	tag string
	log *[]string
}

func (o *recordingObserver) Sent(line string) {
	*o.log = append(*o.log, o.tag+" sent "+line)
}

func (o *recordingObserver) Received(line string) {
	*o.log = append(*o.log, o.tag+" recv "+line)
}
