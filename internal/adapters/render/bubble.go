package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Figure is a character that speaks from below a bubble. Its art hangs
// off the bubble's tail; the first rows carry the tail itself.
type Figure struct {
	Name string
	Art  string
}

// Figures are ordered from plain to elaborate; higher whimsy levels draw
// from further down the list.
var Figures = []Figure{
	{Name: "cow", Art: `        \   ^__^
         \  (oo)\_______
            (__)\       )\/\
                ||----w |
                ||     ||`},
	{Name: "sheep", Art: `  \
   \
       __
      UooU\.'@@@@@@` + "`" + `.
      \__/(@@@@@@@@@@)
           (@@@@@@@@)
           ` + "`" + `YY~~~~YY'
            ||    ||`},
	{Name: "tux", Art: `   \
    \
        .--.
       |o_o |
       |:_/ |
      //   \ \
     (|     | )
    /'\_   _/` + "`" + `\
    \___)=(___/`},
	{Name: "koala", Art: `  \
   \
       ___
     {~._.~}
      ( Y )
     ()~*~()
     (_)-(_)`},
	{Name: "turtle", Art: `   \
    \
     _____     ____
    /      \  |  o |
   |        |/ ___\|
   |_________/
   |_|_| |_|_|`},
	{Name: "dragon", Art: `      \                    / \  //\
       \    |\___/|      /   \//  \\
            /0  0  \__  /    //  | \ \
           /     /  \/_/    //   |  \  \
           @_^_@'/   \/_   //    |   \   \
           //_^_/     \/_ //     |    \    \
        ( //) |        \///      |     \     \
      ( / /) _|_ /   )  //       |      \     _\
    ( // /) '/,_ _ _/  ( ; -.    |    _ _\.-~        .-~~~^-.
  (( / / )) ,-{        _      ` + "`" + `-.|.-~-.           .~         ` + "`" + `.
 (( // / ))  '/\      /                 ~-. _ .-~      .-~^-.  \
 (( /// ))      ` + "`" + `.   {            }                   /      \  \
  (( / ))     .----~-.\        \-'                 .~         \  ` + "`" + `. \^-.
             ///.----..>        \             _ -~             ` + "`" + `.  ^-` + "`" + `  ^-_
               ///-._ _ _ _ _ _ _}^ - - - - ~                     ~-- ,.-~
                                                                  /.-~`},
}

// Bubble draws message inside a speech bubble above fig. A positive width
// word-wraps the message first; zero keeps its lines as they are.
func Bubble(message string, width int, fig Figure) string {
	if width > 0 {
		message = ansi.Wordwrap(message, width, "")
	}
	lines := strings.Split(strings.TrimRight(message, "\n"), "\n")

	inner := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > inner {
			inner = w
		}
	}

	var b strings.Builder
	b.WriteString(" " + strings.Repeat("_", inner+2) + "\n")
	for i, line := range lines {
		left, right := borders(i, len(lines))
		pad := strings.Repeat(" ", inner-ansi.StringWidth(line))
		b.WriteString(left + " " + line + pad + " " + right + "\n")
	}
	b.WriteString(" " + strings.Repeat("-", inner+2) + "\n")
	b.WriteString(fig.Art)
	return b.String()
}

func borders(i, n int) (string, string) {
	switch {
	case n == 1:
		return "<", ">"
	case i == 0:
		return "/", "\\"
	case i == n-1:
		return "\\", "/"
	default:
		return "|", "|"
	}
}
