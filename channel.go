package ftpwire

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"
)

// Channel is the control channel to an FTP server. It owns the underlying
// connection, frames outgoing commands and incoming replies, and fans every
// raw line out to the registered observers.
//
// A Channel is designed for a single owner: one goroutine sequences
// SendCommand and ReadReply. Protocol calls are not serialized internally.
type Channel struct {
	// conn is the underlying network connection, possibly wrapped for
	// per-operation deadlines
	conn net.Conn

	// transport frames lines and applies the session charset
	transport *lineTransport

	// logger is used for debug logging
	logger *slog.Logger

	// timeout, encodingName hold option values until construction completes
	timeout      time.Duration
	encodingName string

	// mu protects the observer list and the closed flag
	mu        sync.Mutex
	observers []Observer
	closed    bool
}

// NewChannel wraps an established connection in a control channel.
// Connection establishment, TLS and address resolution are the caller's
// responsibility; the channel owns the connection from here on and closes it
// in Close.
//
// Example:
//
//	conn, err := net.Dial("tcp", "ftp.example.com:21")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ch, err := ftpwire.NewChannel(conn, ftpwire.WithTimeout(30*time.Second))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ch.Close()
func NewChannel(conn net.Conn, options ...Option) (*Channel, error) {
	c := &Channel{
		conn:         conn,
		encodingName: DefaultEncoding,
		logger:       slog.New(slog.NewTextHandler(nil, &slog.HandlerOptions{Level: slog.LevelError + 1})), // No-op logger by default
	}

	for _, opt := range options {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.timeout > 0 {
		c.conn = &deadlineConn{Conn: conn, timeout: c.timeout}
	}

	transport, err := newLineTransport(c.conn, c.encodingName)
	if err != nil {
		return nil, err
	}
	c.transport = transport

	return c, nil
}

// SendCommand writes one command line to the server and notifies every
// registered observer, in registration order. It never reads a reply:
// request/response pairing belongs to the caller, since some commands
// legitimately produce zero or several replies.
func (c *Channel) SendCommand(command string) error {
	if c.isClosed() {
		return ErrChannelClosed
	}

	c.logger.Debug("ftp command", "cmd", command)

	if err := c.transport.WriteLine(command); err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}

	for _, o := range c.snapshotObservers() {
		o.Sent(command)
	}
	return nil
}

// ReadReply reads one complete reply from the server, aggregating
// continuation lines into a single Reply.
//
// Framing rules: the first line must be at least three characters and is
// expected to open with the reply code; a hyphen in the fourth position marks
// a continuation, a space terminates the reply. Continuation lines that do
// not start with digits, or that are shorter than a code, are tolerated as
// plain message text; servers in the wild rely on this. A continuation line
// claiming a different code, or carrying any other separator, fails with
// *IllegalReplyError. An end-of-stream inside an unterminated reply surfaces
// as the transport's I/O error, not as a framing error.
func (c *Channel) ReadReply() (*Reply, error) {
	if c.isClosed() {
		return nil, ErrChannelClosed
	}

	code := 0
	var lines []string

	for {
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}

		n := len(line)
		if code == 0 && n < 3 {
			return nil, &IllegalReplyError{Line: line}
		}

		// Parse the leading code. A failed parse is fatal only while no
		// code is established; afterwards the line is message text.
		aux := 0
		if n >= 3 {
			v, perr := strconv.Atoi(line[:3])
			if perr != nil {
				if code == 0 {
					return nil, &IllegalReplyError{Line: line}
				}
			} else {
				aux = v
			}
		}

		if code != 0 && aux != 0 && aux != code {
			return nil, &IllegalReplyError{Line: line}
		}
		if code == 0 {
			code = aux
		}

		if aux > 0 && n > 3 {
			lines = append(lines, line[4:])
			switch line[3] {
			case ' ':
				reply := &Reply{Code: code, Lines: lines}
				c.logger.Debug("ftp reply", "code", reply.Code, "message", reply.Message())
				return reply, nil
			case '-':
				continue
			default:
				return nil, &IllegalReplyError{Line: line}
			}
		}

		lines = append(lines, line)
	}
}

// readLine reads one raw line and fans it out to the observers before any
// interpretation happens.
func (c *Channel) readLine() (string, error) {
	line, err := c.transport.ReadLine()
	if err != nil {
		return "", fmt.Errorf("failed to read reply: %w", err)
	}

	for _, o := range c.snapshotObservers() {
		o.Received(line)
	}
	return line, nil
}

// ChangeEncoding switches the session charset for both directions, typically
// after feature negotiation. An unknown name returns
// *UnsupportedEncodingError and leaves the previous charset in effect.
func (c *Channel) ChangeEncoding(name string) error {
	if c.isClosed() {
		return ErrChannelClosed
	}

	if err := c.transport.ChangeEncoding(name); err != nil {
		return err
	}
	c.logger.Debug("ftp encoding changed", "encoding", name)
	return nil
}

// EncodingName returns the name of the charset currently in effect.
func (c *Channel) EncodingName() string {
	return c.transport.EncodingName()
}

// AddObserver registers an observer. Observers are invoked synchronously, in
// registration order, for every line crossing the wire. An observer added
// from inside an observer callback is not invoked during that same fan-out;
// it sees only subsequent lines.
func (c *Channel) AddObserver(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// RemoveObserver removes a previously registered observer. Removing an
// observer that was never added is a no-op.
func (c *Channel) RemoveObserver(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, registered := range c.observers {
		if registered == o {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// Observers returns the registered observers in registration order.
func (c *Channel) Observers() []Observer {
	return c.snapshotObservers()
}

// Close closes the underlying connection, discarding any error from the
// close: by the time Close is called the session is already over. After
// Close, all protocol operations fail with ErrChannelClosed. Close is
// idempotent and unblocks an in-flight ReadReply with an I/O error.
func (c *Channel) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	_ = c.conn.Close()
	return nil
}

func (c *Channel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Channel) snapshotObservers() []Observer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.observers) == 0 {
		return nil
	}
	snapshot := make([]Observer, len(c.observers))
	copy(snapshot, c.observers)
	return snapshot
}
