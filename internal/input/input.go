// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a movement key is considered "held" after its
// last byte. Terminals only report key repeats, never key releases, so it
// must bridge the gap between two auto-repeat events.
const keyHoldDuration = 120 * time.Millisecond

// Input represents the current frame's input state.
// Movement keys are held; every other field is set only on the frame its
// byte arrived.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Fire    bool // Space
	Pause   bool // p
	Start   bool // Enter
	Restart bool // r
	Menu    bool // m or a bare Escape
	Quit    bool // q or Ctrl-C

	FocusLost   bool // ESC [ O
	FocusGained bool // ESC [ I

	Pressed []byte
}

// Any reports whether the frame carried any key at all.
func (in Input) Any() bool {
	return len(in.Pressed) > 0
}

// keyState tracks the last time each movement key was pressed.
type keyState struct {
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	closed  bool
	state   keyState
	pending []byte // Unfinished escape sequence carried into the next frame

	done     chan struct{} // Closed by Close, stops the reader goroutine
	stopped  chan struct{} // Closed when the reader goroutine exits
	stopOnce sync.Once
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.stopped)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:      make(chan byte, 128),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Close stops delivering bytes. The reader goroutine exits on its next
// byte instead of blocking on a full buffer; it cannot interrupt a
// pending read, so the underlying reader should be closed by its owner.
func (s *Stream) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ResetKeyInput forgets held keys and discards buffered bytes, so nothing
// pressed on a previous screen leaks into the next one.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
	s.pending = nil
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				s.closed = true
				return
			}
		default:
			return
		}
	}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and focus reports and uses key
// state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
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

	return s.apply(buf, time.Now())
}

// apply parses the bytes received this frame and builds the frame's Input.
// An escape sequence cut off at the end of the frame is held back and
// completed by the next frame's bytes. If the next frame brings nothing,
// the held escape is taken as a bare ESC.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if len(in.Pressed) > 0 && incompleteEscape(buf[i:]) {
				s.pending = append([]byte(nil), buf[i:]...)
				break
			}
			// CSI sequence: ESC [ <code>
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'A':
					s.state.up = now
				case 'B':
					s.state.down = now
				case 'C':
					s.state.right = now
				case 'D':
					s.state.left = now
				case 'I':
					in.FocusGained = true
				case 'O':
					in.FocusLost = true
				}
				i += 2
				continue
			}
			in.Menu = true
			continue
		}

		applyByte(&s.state, &in, b, now)
	}

	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	return in
}

// incompleteEscape reports whether seq is a prefix of an escape sequence
// that more bytes could still complete: ESC or ESC [.
func incompleteEscape(seq []byte) bool {
	switch len(seq) {
	case 1:
		return true
	case 2:
		return seq[1] == '['
	}
	return false
}

// applyByte updates held-key timestamps and one-shot flags for a single byte.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	switch b {
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case ' ':
		in.Fire = true
	case 'p', 'P':
		in.Pause = true
	case '\n', '\r':
		in.Start = true
	case 'r', 'R':
		in.Restart = true
	case 'm', 'M':
		in.Menu = true
	case 'q', 'Q', '\x03':
		in.Quit = true
	}
}
