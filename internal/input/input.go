// Package input turns raw terminal bytes into held-key state.
package input

import (
	"bufio"
	"time"
	"unicode"
	"unicode/utf8"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// It bridges the gap between terminal auto-repeat events.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit      bool
	Left      bool
	Right     bool
	Fire      bool
	Enter     bool
	Backspace bool
	Escape    bool
	Pressed   []byte // Raw bytes read this frame
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	left      time.Time
	right     time.Time
	fire      time.Time
	enter     time.Time
	backspace time.Time
	escape    time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream is closed when r returns an error.
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

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	return s.Read(time.Now())
}

// Read drains all available bytes and reports the keys held at now.
// Handles escape sequences for arrow keys and accumulates all pressed keys.
func (s *Stream) Read(now time.Time) Input {
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

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.fire = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'B':
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Input{
		Quit:      held(s.state.quit),
		Left:      held(s.state.left),
		Right:     held(s.state.right),
		Fire:      held(s.state.fire),
		Enter:     held(s.state.enter),
		Backspace: held(s.state.backspace),
		Escape:    held(s.state.escape),
		Pressed:   buf,
	}
}

// ResetKeyInput forgets every held key, e.g. when switching screens.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case ' ', 'w', 'W', 'k', 'K':
		state.fire = now
	case '\n', '\r':
		state.enter = now
	case '\b', '\x7f':
		state.backspace = now
	case '\x1b':
		state.escape = now
	}
}

// EditLine applies typed bytes to a single-line text buffer of at most max
// runes. Printable characters are appended, Backspace/Delete removes the last
// rune and Enter submits. Escape sequences are skipped. Bytes after Enter are
// ignored.
func EditLine(line []rune, pressed []byte, max int) (out []rune, submitted bool) {
	out = line
	for i := 0; i < len(pressed); {
		b := pressed[i]
		switch {
		case b == '\r' || b == '\n':
			return out, true
		case b == '\b' || b == '\x7f':
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			i++
		case b == '\x1b':
			i += escapeLen(pressed[i:])
		default:
			r, size := utf8.DecodeRune(pressed[i:])
			i += size
			if r != utf8.RuneError && unicode.IsPrint(r) && len(out) < max {
				out = append(out, r)
			}
		}
	}
	return out, false
}

// escapeLen returns the length of the escape sequence at the start of p.
func escapeLen(p []byte) int {
	if len(p) < 2 || p[1] != '[' {
		return 1
	}
	for i := 2; i < len(p); i++ {
		if p[i] >= 0x40 && p[i] <= 0x7e {
			return i + 1
		}
	}
	return len(p)
}
