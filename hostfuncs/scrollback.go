package hostfuncs

import (
	"strings"
	"sync"
)

// DefaultScrollback is the number of console lines kept by default.
const DefaultScrollback = 1024

// Scrollback is the engine console: an io.Writer that keeps the most recent
// complete lines and drops older ones.
type Scrollback struct {
	mu      sync.Mutex
	lines   []string
	partial strings.Builder
	limit   int
	dropped int
}

// NewScrollback creates a console keeping at most limit lines.
func NewScrollback(limit int) *Scrollback {
	if limit <= 0 {
		limit = DefaultScrollback
	}
	return &Scrollback{limit: limit}
}

// Write implements io.Writer. Text is split on newlines; a trailing
// fragment waits for the rest of its line.
func (s *Scrollback) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := string(p)
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			s.partial.WriteString(text)
			break
		}
		s.partial.WriteString(text[:i])
		s.push(s.partial.String())
		s.partial.Reset()
		text = text[i+1:]
	}
	return len(p), nil
}

func (s *Scrollback) push(line string) {
	if len(s.lines) == s.limit {
		copy(s.lines, s.lines[1:])
		s.lines = s.lines[:len(s.lines)-1]
		s.dropped++
	}
	s.lines = append(s.lines, line)
}

// Lines returns the kept lines, oldest first.
func (s *Scrollback) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Dropped returns how many lines fell off the top.
func (s *Scrollback) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// String returns the kept lines, including an unfinished one.
func (s *Scrollback) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b strings.Builder
	for _, l := range s.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(s.partial.String())
	return b.String()
}

// Reset clears the console.
func (s *Scrollback) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.partial.Reset()
	s.dropped = 0
}
