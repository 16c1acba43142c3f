package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestChunkWriterFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	cw.WriteAt(5, 2, "Score: 10")

	if out.Len() != 0 {
		t.Fatal("nothing should be written before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := out.String(), "\033[2;5HScore: 10"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	payload := strings.Repeat("x", maxChunkSize*3+17)
	cw.WriteString(payload)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if out.String() != payload {
		t.Errorf("flushed %d bytes, want %d", out.Len(), len(payload))
	}
}

func TestMoveCursorClampsToOrigin(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	cw.MoveCursor(-4, 0)
	_ = cw.Flush()
	if out.String() != "\033[1;1H" {
		t.Errorf("MoveCursor = %q", out.String())
	}
}
