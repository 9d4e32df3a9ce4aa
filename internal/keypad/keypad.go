// Package keypad implements the numeric entry buffer used to edit beam parameters.
//
// A Session holds the text being typed for one target parameter. Keys mutate
// the buffer; Confirm parses it and hands the value to a Committer. After
// every mutating key a single leading '0' is dropped when it is followed by
// another digit, so "0" then "5" reads "5" while "0." stays as typed.
package keypad

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Key tokens besides the digits '0'-'9'
const (
	KeyDot     = "."
	KeyDelete  = "Del"
	KeyClear   = "Clear"
	KeyConfirm = "Confirm"
)

var (
	// ErrInvalidInput is returned by Confirm when the buffer is not a non-negative decimal
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownKey is returned for tokens outside the keypad
	ErrUnknownKey = errors.New("unknown key")

	// ErrSessionClosed is returned for keys sent after a successful confirm
	ErrSessionClosed = errors.New("keypad session closed")
)

// Target identifies the beam parameter being edited
type Target int

const (
	Load Target = iota
	Height
	Length
	Base
)

var targetNames = [...]string{"Load", "Height", "Length", "Base"}

func (t Target) String() string {
	if t < Load || t > Base {
		return fmt.Sprintf("Target(%d)", int(t))
	}
	return targetNames[t]
}

// Unit returns the display suffix: "N" for the load and "m" for geometry
func (t Target) Unit() string {
	if t == Load {
		return "N"
	}
	return "m"
}

// ParseTarget maps a parameter name ("Load", "Height", "Length", "Base") to a Target
func ParseTarget(name string) (Target, error) {
	for i, n := range targetNames {
		if strings.EqualFold(n, name) {
			return Target(i), nil
		}
	}
	return 0, fmt.Errorf("unknown parameter %q (valid: %s)", name, strings.Join(targetNames[:], ", "))
}

// Committer receives confirmed values
type Committer interface {
	Commit(target Target, value float64) error
}

// CommitFunc adapts a function to the Committer interface
type CommitFunc func(target Target, value float64) error

func (f CommitFunc) Commit(target Target, value float64) error { return f(target, value) }

// Session is an open edit of one target parameter
type Session struct {
	target Target
	buffer string
	open   bool
}

// Open starts editing target with the buffer seeded from seed
func Open(target Target, seed string) *Session {
	return &Session{target: target, buffer: seed, open: true}
}

// OpenValue starts editing target seeded with the decimal form of value
func OpenValue(target Target, value float64) *Session {
	return Open(target, FormatValue(value))
}

// FormatValue renders a parameter value the way the keypad shows it
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *Session) Target() Target { return s.target }
func (s *Session) Buffer() string { return s.buffer }
func (s *Session) IsOpen() bool   { return s.open }

// Display returns the buffer followed by the target's unit, e.g. "1000 N"
func (s *Session) Display() string {
	return s.buffer + " " + s.target.Unit()
}

// Press applies one key. Confirm is routed through c; the other keys ignore it.
func (s *Session) Press(key string, c Committer) error {
	if !s.open {
		return ErrSessionClosed
	}

	switch {
	case key == KeyConfirm:
		return s.confirm(c)
	case key == KeyDelete:
		if len(s.buffer) > 1 {
			s.buffer = s.buffer[:len(s.buffer)-1]
		} else {
			s.buffer = "0"
		}
	case key == KeyClear:
		s.buffer = "0"
	case key == KeyDot:
		if !strings.Contains(s.buffer, ".") {
			s.buffer += "."
		}
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		s.buffer += key
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	s.normalize()
	return nil
}

func (s *Session) normalize() {
	if len(s.buffer) > 1 && s.buffer[0] == '0' && s.buffer[1] != '.' {
		s.buffer = s.buffer[1:]
	}
}

func (s *Session) confirm(c Committer) error {
	v, err := ParseBuffer(s.buffer)
	if err != nil {
		return err
	}
	if c != nil {
		if err := c.Commit(s.target, v); err != nil {
			return err
		}
	}
	s.open = false
	return nil
}

// ParseBuffer parses a keypad buffer: digits with at most one '.', and at least one digit
func ParseBuffer(buf string) (float64, error) {
	digits, dots := 0, 0
	for _, r := range buf {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidInput, buf)
		}
	}
	if digits == 0 || dots > 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, buf)
	}
	v, err := strconv.ParseFloat(buf, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, buf)
	}
	return v, nil
}
