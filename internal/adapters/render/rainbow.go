package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var rainbowPalette = []lipgloss.Color{
	"#FF5F5F", "#FF9F43", "#FECA57", "#1DD1A1", "#48DBFB", "#5F27CD", "#C56CF0",
}

// Rainbow colors each visible rune of text in turn. With a renderer that
// has no color support the text comes back unchanged.
func Rainbow(r *lipgloss.Renderer, text string) string {
	if r.ColorProfile() == termenv.Ascii {
		return text
	}

	var b strings.Builder
	i := 0
	for _, ch := range text {
		if ch == ' ' || ch == '\n' {
			b.WriteRune(ch)
			continue
		}
		style := r.NewStyle().Foreground(rainbowPalette[i%len(rainbowPalette)])
		b.WriteString(style.Render(string(ch)))
		i++
	}
	return b.String()
}
