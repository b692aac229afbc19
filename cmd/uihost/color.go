package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the engine's eight console colours in ^0..^7 order.
var palette = func() [8]lipgloss.Style {
	var p [8]lipgloss.Style
	for i, c := range []string{"0", "1", "2", "3", "4", "6", "5", "7"} {
		p[i] = plain.Foreground(lipgloss.Color(c))
	}
	return p
}()

var plain = lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)

// colorize renders ^N escapes as terminal colours. Digits wrap modulo eight
// as they do in the engine, so ^9 is red.
func colorize(s string) string {
	if !strings.Contains(s, "^") {
		return s
	}
	var b strings.Builder
	style, start := plain, 0
	for i := 0; i+1 < len(s); i++ {
		if s[i] != '^' || s[i+1] < '0' || s[i+1] > '9' {
			continue
		}
		render(&b, style, s[start:i])
		style = palette[(s[i+1]-'0')&7]
		i++
		start = i + 1
	}
	render(&b, style, s[start:])
	return b.String()
}

// render styles seg line by line; a multi-line Render would pad every line
// to the widest one.
func render(b *strings.Builder, style lipgloss.Style, seg string) {
	for i, line := range strings.Split(seg, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line != "" {
			b.WriteString(style.Render(line))
		}
	}
}

// colorWriter colours engine console text on its way to a terminal.
type colorWriter struct {
	w io.Writer
}

func (c colorWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(c.w, colorize(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
