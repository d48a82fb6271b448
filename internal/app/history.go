package app

import (
	"fmt"
	"io"
	"time"

	"emperror.dev/errors"
	"github.com/crazywolf132/statscmd/internal/builder"
	"github.com/crazywolf132/statscmd/internal/history"
	"github.com/crazywolf132/statscmd/internal/ui"
)

// ListHistory prints up to limit recorded commands, newest first, numbered
// for `history copy`.
func ListHistory(w io.Writer, store history.Store, mode string, limit int) error {
	h, err := store.Read()
	if err != nil {
		return err
	}

	entries := h.Filter(mode, limit)
	if len(entries) == 0 {
		fmt.Fprintln(w, ui.Gray("No commands generated yet"))
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(w, "%s %s %s\n",
			ui.Yellow(fmt.Sprintf("%3d", e.N)),
			ui.Gray(fmt.Sprintf("%-12s %s", e.Mode, relativeTime(e.CreatedAt))),
			e.Command)
	}
	return nil
}

// CopyHistory prints entry n again and copies it to the clipboard.
func CopyHistory(deps Deps, store history.Store, n int) (*history.Entry, error) {
	h, err := store.Read()
	if err != nil {
		return nil, err
	}
	e, err := h.At(n)
	if err != nil {
		return nil, err
	}

	ui.PrintCommand(deps.Out, e.Command)
	if e.Redacted {
		ui.Warnf("the token was not saved; replace %s before running\n", builder.RedactedToken)
	}
	if deps.Clipboard != nil {
		if err := deps.Clipboard.WriteAll(e.Command); err != nil {
			ui.Warnf("could not copy to clipboard: %v\n", err)
		} else {
			fmt.Fprintf(ui.Stderr, "%s Copied to clipboard\n", ui.Green("✓"))
		}
	}
	return &e, nil
}

// ClearHistory removes every recorded command.
func ClearHistory(store history.Store) error {
	h, err := store.Read()
	if err != nil {
		return err
	}
	h.Clear()
	return errors.Wrap(h.Save(store.Path), "failed to clear history")
}

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("2006-01-02")
	}
}
