// Package input turns a raw terminal byte stream into per-frame key snapshots.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses (and auto-repeat), never releases.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
// Movement keys are held state; actions are edges seen during this frame.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	Pause  bool // Toggle pause
	Start  bool // Start or retry
	Home   bool // Return to the title screen from game over
	Quit   bool
	Closed bool // The input stream ended (EOF or disconnect)

	Pressed []byte
}

// keyState tracks the last time each movement key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	return s.readAt(time.Now())
}

// readAt drains the stream and builds the snapshot as of now.
func (s *Stream) readAt(now time.Time) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.state.apply(buf, now)
	in.Closed = s.closed
	return in
}

// apply records presses from buf and returns the resulting snapshot.
// Handles CSI (ESC [) and SS3 (ESC O) arrow sequences.
func (k *keyState) apply(buf []byte, now time.Time) Input {
	var in Input

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			handled := true
			switch buf[i+2] {
			case 'A':
				k.up = now
			case 'B':
				k.down = now
			case 'C':
				k.right = now
			case 'D':
				k.left = now
			default:
				handled = false
			}
			if handled {
				i += 2
				continue
			}
		}

		switch b {
		case 'a', 'A':
			k.left = now
		case 'd', 'D':
			k.right = now
		case 'w', 'W':
			k.up = now
		case 's', 'S':
			k.down = now
		case 'p', 'P':
			in.Pause = true
		case ' ', '\r', '\n':
			in.Start = true
		case 'h', 'H', '\x1b':
			in.Home = true
		case 'q', 'Q', '\x03':
			in.Quit = true
		}
	}

	in.Left = now.Sub(k.left) < keyHoldDuration
	in.Right = now.Sub(k.right) < keyHoldDuration
	in.Up = now.Sub(k.up) < keyHoldDuration
	in.Down = now.Sub(k.down) < keyHoldDuration
	in.Pressed = buf
	return in
}
