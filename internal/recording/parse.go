package recording

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Symbol tags a record.
type Symbol byte

// Record symbols.
const (
	SymbolSensor Symbol = 'S'
	SymbolBeats  Symbol = 'B'
	SymbolIBI    Symbol = 'Q'
)

func (s Symbol) String() string {
	switch s {
	case SymbolSensor:
		return "sensor"
	case SymbolBeats:
		return "beats"
	case SymbolIBI:
		return "IBI"
	}
	return fmt.Sprintf("symbol(%q)", byte(s))
}

var (
	errShortRecord     = errors.New("record shorter than 2 characters")
	errUnknownSymbol   = errors.New("unknown record symbol")
	errBadValue        = errors.New("record value is not a number")
	errNonPositiveIBI  = errors.New("non-positive interval")
	errMaxLineExceeded = errors.New("recording: line too long")
)

// maxLineBytes bounds a single record.
const maxLineBytes = 64 * 1024

// Issue describes a skipped record.
type Issue struct {
	Line int
	Text string
	Err  error
}

func (i Issue) Error() string {
	return fmt.Sprintf("line %d: %v: %q", i.Line, i.Err, i.Text)
}

// Session holds the values of a parsed recording in arrival order.
type Session struct {
	Sensor []float64
	Beats  []float64
	IBI    []float64
	Issues []Issue
	Lines  int // records read, skipped ones included
}

// Parse reads a session from r. Only read errors are returned; malformed
// records end up in Session.Issues.
func Parse(r io.Reader) (Session, error) {
	var s Session

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	sc.Split(scanRecords)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		s.Lines++
		if err := s.add(line); err != nil {
			s.Issues = append(s.Issues, Issue{Line: s.Lines, Text: line, Err: err})
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return s, fmt.Errorf("%w after record %d", errMaxLineExceeded, s.Lines)
		}
		return s, fmt.Errorf("recording: read: %w", err)
	}
	return s, nil
}

// ParseFile reads the session stored at path.
func ParseFile(path string) (Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return Session{}, fmt.Errorf("recording: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func (s *Session) add(line string) error {
	if isNumericStart(line[0]) {
		return s.addIBI(line)
	}
	if len(line) < 2 {
		return errShortRecord
	}

	sym := Symbol(line[0])
	switch sym {
	case SymbolIBI:
		return s.addIBI(line[1:])
	case SymbolSensor, SymbolBeats:
		v, err := strconv.Atoi(strings.TrimSpace(line[1:]))
		if err != nil {
			return errBadValue
		}
		if sym == SymbolBeats {
			s.Beats = append(s.Beats, float64(v))
			return nil
		}
		// The monitor emits a spurious zero as its first sensor sample.
		if v == 0 && len(s.Sensor) == 0 {
			return nil
		}
		s.Sensor = append(s.Sensor, float64(v))
		return nil
	}
	return errUnknownSymbol
}

func (s *Session) addIBI(text string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return errBadValue
	}
	if !(v > 0) {
		return errNonPositiveIBI
	}
	s.IBI = append(s.IBI, v)
	return nil
}

func isNumericStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}

// scanRecords is a bufio.SplitFunc that splits on any run of CR and LF.
func scanRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && (data[start] == '\r' || data[start] == '\n') {
		start++
	}
	if i := bytes.IndexAny(data[start:], "\r\n"); i >= 0 {
		return start + i + 1, data[start : start+i], nil
	}
	if atEOF {
		if start < len(data) {
			return len(data), data[start:], nil
		}
		return len(data), nil, nil
	}
	return start, nil, nil
}
