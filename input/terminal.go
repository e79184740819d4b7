package input

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// DecodeTerminal splits a chunk of raw-mode terminal input into device
// codes. Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences; unknown
// escape sequences are dropped.
func DecodeTerminal(buf []byte) []string {
	var codes []string
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == 0x1b:
			if i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				switch buf[i+2] {
				case 'A':
					codes = append(codes, "arrow_up")
				case 'B':
					codes = append(codes, "arrow_down")
				case 'C':
					codes = append(codes, "arrow_right")
				case 'D':
					codes = append(codes, "arrow_left")
				}
				i += 2
				continue
			}
			if i+1 < len(buf) && buf[i+1] == '[' {
				// Truncated sequence.
				i++
				continue
			}
			codes = append(codes, "escape")
		case b == 3:
			codes = append(codes, "ctrl_c")
		case b == ' ':
			codes = append(codes, "space")
		case b == '\r' || b == '\n':
			codes = append(codes, "enter")
		case b >= 'A' && b <= 'Z':
			codes = append(codes, string(rune(b-'A'+'a')))
		case b > ' ' && b < 127:
			codes = append(codes, string(rune(b)))
		}
	}
	return codes
}

// Terminal reads keys from a raw-mode terminal.
type Terminal struct {
	in    io.Reader
	fd    int
	state *term.State
}

// OpenTerminal switches stdin to raw mode. Callers must Close to restore it.
func OpenTerminal() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("input: stdin is not a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("input: cannot set terminal to raw mode: %w", err)
	}
	return &Terminal{in: os.Stdin, fd: fd, state: state}, nil
}

// NewTerminalReader decodes keys from r without touching terminal modes.
func NewTerminalReader(r io.Reader) *Terminal {
	return &Terminal{in: r, fd: -1}
}

// Close restores the terminal mode captured by OpenTerminal.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	return term.Restore(t.fd, t.state)
}

// Size returns the terminal's columns and rows, falling back to 80x24.
func (t *Terminal) Size() (cols, rows int) {
	if t.fd < 0 {
		return 80, 24
	}
	cols, rows, err := term.GetSize(t.fd)
	if err != nil {
		return 80, 24
	}
	return cols, rows
}

// Run reads until the reader fails or ctx is done, sending one action per
// bound key. It closes out before returning. A blocked read only notices
// cancellation once the next key arrives.
func (t *Terminal) Run(ctx context.Context, out chan<- Action) error {
	defer close(out)
	buf := make([]byte, 64)
	for {
		n, err := t.in.Read(buf)
		for _, code := range DecodeTerminal(buf[:n]) {
			act := MapCode(code)
			if act == ActionNone {
				continue
			}
			select {
			case out <- act:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("input: read terminal: %w", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
