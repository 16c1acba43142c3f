package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func fixedSize() (int, int, error) { return 80, 24, nil }

func runWithTimeout(t *testing.T, ctx context.Context, r io.Reader) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(r), &buf, Options{TermSizeFunc: fixedSize})
	}()

	select {
	case err := <-done:
		return buf.String(), err
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
		return "", nil
	}
}

func TestRunQuits(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	go func() { _, _ = pw.Write([]byte("q")) }()

	out, err := runWithTimeout(t, context.Background(), pr)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "\033[?25l") || !strings.Contains(out, "\033[?25h") {
		t.Error("cursor not hidden and restored")
	}
}

func TestRunStopsOnEOF(t *testing.T) {
	if _, err := runWithTimeout(t, context.Background(), strings.NewReader(" ")); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if _, err := runWithTimeout(t, ctx, pr); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
