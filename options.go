package ftpwire

import (
	"fmt"
	"log/slog"
	"time"
)

// Option is a functional option for configuring a control channel.
type Option func(*Channel) error

// WithTimeout bounds every read and write on the underlying connection with
// a deadline. An expired deadline surfaces from SendCommand or ReadReply as
// an I/O failure. Without it, reads block until the server responds or the
// connection is closed.
//
// Example:
//
//	ch, _ := ftpwire.NewChannel(conn, ftpwire.WithTimeout(30*time.Second))
func WithTimeout(timeout time.Duration) Option {
	return func(c *Channel) error {
		if timeout < 0 {
			return fmt.Errorf("negative timeout: %v", timeout)
		}
		c.timeout = timeout
		return nil
	}
}

// WithLogger enables debug logging using the provided logger.
// Commands, replies and encoding switches are logged at debug level.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	}))
//	ch, _ := ftpwire.NewChannel(conn, ftpwire.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(c *Channel) error {
		if logger == nil {
			return fmt.Errorf("nil logger")
		}
		c.logger = logger
		return nil
	}
}

// WithEncoding sets the initial session charset by IANA name.
// The default is UTF-8. An unknown name fails NewChannel with
// *UnsupportedEncodingError.
//
// Example:
//
//	ch, _ := ftpwire.NewChannel(conn, ftpwire.WithEncoding("ISO-8859-1"))
func WithEncoding(name string) Option {
	return func(c *Channel) error {
		c.encodingName = name
		return nil
	}
}
