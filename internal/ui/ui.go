package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crazywolf132/termchroma"
)

var (
	green  string = ""
	red    string = ""
	yellow string = ""
	blue   string = ""
	white  string = ""
	gray   string = ""
	sage   string = ""

	bold  string = termchroma.Bold
	reset string = termchroma.Reset
)

// Colors
func Green(s string) string  { return green + s + reset }
func Red(s string) string    { return red + s + reset }
func Blue(s string) string   { return blue + s + reset }
func White(s string) string  { return white + s + reset }
func Yellow(s string) string { return yellow + s + reset }
func Gray(s string) string   { return gray + s + reset }
func Sage(s string) string   { return sage + s + reset }
func Bold(s string) string   { return bold + s + reset }

// Stdout and Stderr are where the message helpers write.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Warnf prints a formatted warning to stderr.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, Red("Warning: ")+format, args...)
}

func Info(msg string) {
	fmt.Fprintf(Stdout, "%s %s\n", Blue("ℹ"), msg)
}

func Success(msg string) {
	fmt.Fprintf(Stdout, "%s %s\n", Green("✓"), msg)
}

func Warning(msg string) {
	fmt.Fprintf(Stderr, "%s %s\n", Yellow("⚠"), msg)
}

func Error(msg string) {
	fmt.Fprintf(Stderr, "%s %s\n", Red("✗"), msg)
}

func nonEmpty(val interface{}) error {
	str, _ := val.(string)
	if strings.TrimSpace(str) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func ColorHeadings(text string) string {
	headings := []string{
		"Usage:",
		"Examples:",
		"Available Commands:",
		"Flags:",
		"Aliases:",
		"Additional Commands:",
	}

	for _, heading := range headings {
		text = strings.ReplaceAll(text, heading, fmt.Sprintf("%s%s%s%s", sage, bold, heading, reset))
	}

	text = strings.ReplaceAll(text, "{{rpad .Name .NamePadding }}", fmt.Sprintf("%s%s%s", white, "{{rpad .Name .NamePadding }}", reset))
	text = strings.ReplaceAll(text, "{{.CommandPath}}", fmt.Sprintf("%s%s%s", white, "{{.CommandPath}}", reset))

	return text
}

func init() {
	sage, _ = termchroma.ANSIForeground("#8EA58C")
	blue, _ = termchroma.ANSIForeground("#59B4FF")
	yellow, _ = termchroma.ANSIForeground("#FFC402")
	red, _ = termchroma.ANSIForeground("#FF707E")
	white, _ = termchroma.ANSIForeground("#FFF")
	gray, _ = termchroma.ANSIForeground("#6B737C")
	green, _ = termchroma.ANSIForeground("#98C379")
}
