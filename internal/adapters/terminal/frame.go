package terminal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Pad fits frame to a cols×rows screen: every line is cut or
// right-padded to cols cells and blank lines are added down to rows.
// Writing the result from the home position overwrites the previous
// frame entirely.
func Pad(frame string, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return frame
	}

	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}

	var b strings.Builder
	blank := strings.Repeat(" ", cols)
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString("\r\n")
		}
		if i >= len(lines) {
			b.WriteString(blank)
			continue
		}
		line := ansi.Truncate(lines[i], cols, "")
		b.WriteString(line)
		if w := ansi.StringWidth(line); w < cols {
			b.WriteString(blank[:cols-w])
		}
	}
	return b.String()
}
