package terminal

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/muesli/cancelreader"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// Raw input bytes with a meaning for the countdown.
const (
	byteCtrlC  = 0x03
	byteEscape = 0x1b
	byteSpace  = ' '
)

// DecodeKeys turns a chunk of raw terminal input into key events.
// Invalid UTF-8 and truncated escape sequences are dropped.
func DecodeKeys(buf []byte) []ports.KeyEvent {
	var events []ports.KeyEvent
	for i := 0; i < len(buf); {
		switch b := buf[i]; {
		case b == byteCtrlC:
			events = append(events, ports.KeyQuit)
			i++
		case b == byteSpace:
			events = append(events, ports.KeyTogglePause)
			i++
		case b == byteEscape:
			n, ok := escapeLength(buf[i:])
			if !ok {
				return events
			}
			if n == 1 {
				events = append(events, ports.KeyQuit)
			} else {
				events = append(events, ports.KeyOther)
			}
			i += n
		case b < utf8.RuneSelf:
			events = append(events, ports.KeyOther)
			i++
		default:
			r, size := utf8.DecodeRune(buf[i:])
			if r == utf8.RuneError && size <= 1 {
				i++
				continue
			}
			events = append(events, ports.KeyOther)
			i += size
		}
	}
	return events
}

// escapeLength returns the length of the escape sequence at the start of
// seq. A lone ESC has length 1. ok is false for a truncated sequence.
func escapeLength(seq []byte) (n int, ok bool) {
	if len(seq) == 1 || seq[1] == byteEscape {
		return 1, true
	}

	switch seq[1] {
	case '[':
		// CSI: parameters and intermediates up to a final byte in 0x40-0x7e.
		for j := 2; j < len(seq); j++ {
			if seq[j] >= 0x40 && seq[j] <= 0x7e {
				return j + 1, true
			}
		}
		return 0, false
	case 'O':
		// SS3: exactly one more byte (F1-F4 and keypad keys).
		if len(seq) < 3 {
			return 0, false
		}
		return 3, true
	default:
		// Alt+key.
		r, size := utf8.DecodeRune(seq[1:])
		if r == utf8.RuneError && size <= 1 && seq[1] >= utf8.RuneSelf {
			return 0, false
		}
		return 1 + size, true
	}
}

// Keyboard buffers raw input read in the background so the render loop can
// poll it without blocking.
type Keyboard struct {
	reader cancelreader.CancelReader
	chunks chan []byte
	stop   chan struct{}
	done   chan struct{}
}

// NewKeyboard starts reading key presses from in.
func NewKeyboard(in io.Reader) (*Keyboard, error) {
	reader, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, err
	}

	k := &Keyboard{
		reader: reader,
		chunks: make(chan []byte, 64),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go k.readLoop()
	return k, nil
}

func (k *Keyboard) readLoop() {
	defer close(k.done)

	buf := make([]byte, 256)
	for {
		n, err := k.reader.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case k.chunks <- chunk:
			case <-k.stop:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// Poll returns the key events buffered since the previous call. It never blocks.
func (k *Keyboard) Poll() []ports.KeyEvent {
	var events []ports.KeyEvent
	for {
		select {
		case chunk := <-k.chunks:
			events = append(events, DecodeKeys(chunk)...)
		default:
			return events
		}
	}
}

// Close stops the background reader.
func (k *Keyboard) Close() error {
	close(k.stop)
	if k.reader.Cancel() {
		<-k.done
	}
	if err := k.reader.Close(); err != nil && !errors.Is(err, cancelreader.ErrCanceled) {
		return err
	}
	return nil
}

// Ensure Keyboard implements ports.KeySource.
var _ ports.KeySource = (*Keyboard)(nil)
