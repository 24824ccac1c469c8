package ftpwire

import (
	"log/slog"
	"sync"
)

// Observer intercepts the raw traffic on a control channel. Callbacks run
// synchronously on the goroutine driving the channel, in registration order,
// once per line: Sent with the exact command text, Received with the exact
// transport line (code and separator included). A slow observer stalls the
// protocol engine, so observers must not perform long-running work.
type Observer interface {
	// Sent is called after a command line has been written to the server.
	Sent(line string)

	// Received is called for every raw line read from the server, before
	// the line is interpreted.
	Received(line string)
}

// LogObserver publishes control-channel traffic to a slog.Logger at debug
// level. Useful for session auditing without touching the protocol flow.
type LogObserver struct {
	Logger *slog.Logger
}

// Sent implements Observer.
func (o *LogObserver) Sent(line string) {
	o.Logger.Debug("control line sent", "line", line)
}

// Received implements Observer.
func (o *LogObserver) Received(line string) {
	o.Logger.Debug("control line received", "line", line)
}

// Stats holds traffic counters for one control channel. Byte counts are of
// the decoded text, excluding the CRLF terminators.
type Stats struct {
	LinesSent     int64
	LinesReceived int64
	BytesSent     int64
	BytesReceived int64
}

// StatsObserver counts lines and bytes in each direction. The zero value is
// ready to use. Counters may be read from another goroutine via Stats.
type StatsObserver struct {
	mu    sync.Mutex
	stats Stats
}

// Sent implements Observer.
func (o *StatsObserver) Sent(line string) {
	o.mu.Lock()
	o.stats.LinesSent++
	o.stats.BytesSent += int64(len(line))
	o.mu.Unlock()
}

// Received implements Observer.
func (o *StatsObserver) Received(line string) {
	o.mu.Lock()
	o.stats.LinesReceived++
	o.stats.BytesReceived += int64(len(line))
	o.mu.Unlock()
}

// Stats returns a snapshot of the counters.
func (o *StatsObserver) Stats() Stats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stats
}
