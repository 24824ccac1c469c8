// Package ftpwire implements the client side of the FTP control channel:
// sending command lines, reading and validating server replies, and observing
// raw wire traffic.
//
// # Overview
//
// This package is the protocol core that higher-level FTP clients build on.
// It provides:
//   - A line transport with CRLF framing and runtime-switchable text encodings
//   - Reply parsing that aggregates multi-line replies into a single Reply
//   - Strict framing validation (reply codes, continuation markers)
//   - Observer fan-out for every raw line sent or received
//
// It deliberately does not interpret reply codes, authenticate, open data
// connections, or parse directory listings; those belong to the client layered
// above. The package guarantees only that a reply is well-formed and hands the
// code plus message lines to the caller.
//
// # Basic Usage
//
// The caller establishes the connection; the channel owns it afterwards:
//
//	conn, err := net.Dial("tcp", "ftp.example.com:21")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ch, err := ftpwire.NewChannel(conn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ch.Close()
//
//	greeting, err := ch.ReadReply()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(greeting.Code, greeting.Message())
//
//	if err := ch.SendCommand("USER anonymous"); err != nil {
//	    log.Fatal(err)
//	}
//	reply, err := ch.ReadReply()
//
// SendCommand never reads a reply: request/response pairing is the caller's
// job, which keeps commands that produce zero or several replies (for example
// transfer starts) expressible.
//
// # Encodings
//
// The control channel starts in UTF-8. Servers that negotiate a different
// charset (RFC 2640 and friends) are handled by switching both directions at
// runtime:
//
//	if err := ch.ChangeEncoding("ISO-8859-1"); err != nil {
//	    log.Fatal(err)
//	}
//
// Charset names are resolved against the IANA registry via golang.org/x/text.
//
// # Observing Traffic
//
// Observers receive every raw line crossing the wire, in order, on the
// calling goroutine:
//
//	ch.AddObserver(&ftpwire.LogObserver{Logger: logger})
//
//	stats := &ftpwire.StatsObserver{}
//	ch.AddObserver(stats)
//	// ... later ...
//	fmt.Println(stats.Stats().LinesReceived)
//
// # Error Handling
//
// Three error kinds are kept distinct: I/O failures from the connection
// (including end-of-stream mid-reply) are returned wrapped; framing
// violations by the server are *IllegalReplyError; unknown charset names are
// *UnsupportedEncodingError. Use errors.As to tell them apart:
//
//	reply, err := ch.ReadReply()
//	var ire *ftpwire.IllegalReplyError
//	if errors.As(err, &ire) {
//	    log.Printf("server sent garbage: %q", ire.Line)
//	}
//
// # Concurrency
//
// A Channel is meant for a single owner: one goroutine sequences SendCommand
// and ReadReply. The channel does not serialize concurrent protocol calls.
// Closing the channel from another goroutine is the supported way to unblock
// an in-flight read.
package ftpwire
