package cmd

import "github.com/crazywolf132/statscmd/internal/ui"

// SetClipboard swaps the clipboard used by the commands and returns a
// function restoring the previous one.
func SetClipboard(c ui.Clipboard) func() {
	orig := clipboard
	clipboard = c
	return func() { clipboard = orig }
}
