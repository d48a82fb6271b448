package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// DrawBox writes content inside a rounded sage border, centered on the
// terminal when w is one.
func DrawBox(w io.Writer, content string) {
	internalPadding := 2
	internalMargin := 1

	lines := strings.Split(content, "\n")
	maxLength := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLength {
			maxLength = n
		}
	}
	boxContentWidth := maxLength + 2*internalPadding

	terminalWidth := 80
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			terminalWidth = width
		}
	}
	leftMargin := max((terminalWidth-boxContentWidth-2)/2, 0)
	leftMarginString := strings.Repeat(" ", leftMargin)

	topBorder := Sage(leftMarginString + "╭" + strings.Repeat("─", boxContentWidth) + "╮")
	bottomBorder := Sage(leftMarginString + "╰" + strings.Repeat("─", boxContentWidth) + "╯")
	marginLine := Sage(leftMarginString + "│" + strings.Repeat(" ", boxContentWidth) + "│")

	var b strings.Builder
	b.WriteString(topBorder + "\n")
	b.WriteString(strings.Repeat(marginLine+"\n", internalMargin))
	for _, line := range lines {
		padding := strings.Repeat(" ", internalPadding)
		paddingRight := strings.Repeat(" ", boxContentWidth-internalPadding-utf8.RuneCountInString(line))
		b.WriteString(Sage(leftMarginString+"│") + padding + Bold(line) + paddingRight + Sage("│") + "\n")
	}
	b.WriteString(strings.Repeat(marginLine+"\n", internalMargin))
	b.WriteString(bottomBorder + "\n")

	fmt.Fprint(w, b.String())
}

// PrintCommand renders a generated command: boxed on a terminal, bare
// otherwise so the output can be piped or captured.
func PrintCommand(w io.Writer, command string) {
	if IsTerminal(w) {
		DrawBox(w, command)
		return
	}
	fmt.Fprintln(w, command)
}
