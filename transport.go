package ftpwire

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is the charset a new channel starts with.
const DefaultEncoding = "UTF-8"

// lookupEncoding resolves a charset name against the IANA registry.
// Some registered names carry no implementation in x/text and come back nil;
// those are unsupported for our purposes too.
func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, &UnsupportedEncodingError{Name: name}
	}
	return enc, nil
}

// swapReader is an indirection that lets the decoding stage be replaced while
// keeping the buffered reader above it intact. Lines already decoded into the
// buffer keep the charset that was active when they were read off the wire.
type swapReader struct {
	r io.Reader
}

func (s *swapReader) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// lineTransport frames a duplex byte stream into CRLF-delimited text lines,
// decoding and encoding with a charset that can change mid-session.
type lineTransport struct {
	rw      io.ReadWriter
	decoded swapReader
	br      *bufio.Reader
	bw      *bufio.Writer
	encoder *encoding.Encoder
	name    string
}

func newLineTransport(rw io.ReadWriter, encodingName string) (*lineTransport, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	t := &lineTransport{
		rw:      rw,
		encoder: enc.NewEncoder(),
		name:    encodingName,
	}
	t.decoded.r = enc.NewDecoder().Reader(rw)
	t.br = bufio.NewReader(&t.decoded)
	t.bw = bufio.NewWriter(rw)
	return t, nil
}

// ReadLine blocks until one delimiter-terminated line is available and
// returns it with the terminator stripped. Lines ended by a bare LF are
// tolerated. End-of-stream surfaces as the underlying read error (io.EOF on
// a clean close); a partial line truncated by the stream end is discarded.
func (t *lineTransport) ReadLine() (string, error) {
	line, err := t.br.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WriteLine encodes the line with the active charset, appends CRLF and
// flushes, so the full line is on the wire before the call returns.
func (t *lineTransport) WriteLine(line string) error {
	encoded, err := t.encoder.String(line)
	if err != nil {
		return err
	}
	if _, err := t.bw.WriteString(encoded); err != nil {
		return err
	}
	if _, err := t.bw.WriteString("\r\n"); err != nil {
		return err
	}
	return t.bw.Flush()
}

// ChangeEncoding swaps the charset used by both directions for all
// subsequent I/O. The change is all-or-nothing: an unknown name returns
// *UnsupportedEncodingError and leaves the previous charset in effect.
func (t *lineTransport) ChangeEncoding(name string) error {
	enc, err := lookupEncoding(name)
	if err != nil {
		return err
	}
	t.decoded.r = enc.NewDecoder().Reader(t.rw)
	t.encoder = enc.NewEncoder()
	t.name = name
	return nil
}

// EncodingName returns the name of the active charset.
func (t *lineTransport) EncodingName() string {
	return t.name
}
