package ftpwire

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogObserver(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	o := &LogObserver{Logger: logger}

	o.Sent("USER anonymous")
	o.Received("331 Please specify the password.")

	out := buf.String()
	if !strings.Contains(out, "control line sent") || !strings.Contains(out, "USER anonymous") {
		t.Errorf("sent line not logged: %q", out)
	}
	if !strings.Contains(out, "control line received") || !strings.Contains(out, "331 Please specify the password.") {
		t.Errorf("received line not logged: %q", out)
	}
}

func TestStatsObserver(t *testing.T) {
	t.Parallel()
	o := &StatsObserver{}

	o.Sent("USER anonymous")
	o.Sent("PASS guest")
	o.Received("331 Please specify the password.")

	stats := o.Stats()
	if stats.LinesSent != 2 {
		t.Errorf("LinesSent = %d, want 2", stats.LinesSent)
	}
	if stats.LinesReceived != 1 {
		t.Errorf("LinesReceived = %d, want 1", stats.LinesReceived)
	}
	if want := int64(len("USER anonymous") + len("PASS guest")); stats.BytesSent != want {
		t.Errorf("BytesSent = %d, want %d", stats.BytesSent, want)
	}
	if want := int64(len("331 Please specify the password.")); stats.BytesReceived != want {
		t.Errorf("BytesReceived = %d, want %d", stats.BytesReceived, want)
	}
}

func TestStatsObserver_OnChannel(t *testing.T) {
	t.Parallel()
	ch, _ := newTestChannel(t, "250-First\r\n250 Done\r\n")

	stats := &StatsObserver{}
	ch.AddObserver(stats)

	if err := ch.SendCommand("CWD /pub"); err != nil {
		t.Fatalf("SendCommand() error = %v", err)
	}
	if _, err := ch.ReadReply(); err != nil {
		t.Fatalf("ReadReply() error = %v", err)
	}

	got := stats.Stats()
	if got.LinesSent != 1 || got.LinesReceived != 2 {
		t.Errorf("Stats() = %+v, want 1 line sent and 2 received", got)
	}
	if want := int64(len("250-First") + len("250 Done")); got.BytesReceived != want {
		t.Errorf("BytesReceived = %d, want %d", got.BytesReceived, want)
	}
}
