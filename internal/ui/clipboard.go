package ui

import (
	"emperror.dev/errors"
	"github.com/atotto/clipboard"
)

// Clipboard receives generated commands.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

var ErrClipboardUnsupported = errors.New("no clipboard utility available")

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return errors.Wrap(clipboard.WriteAll(text), "failed to copy to clipboard")
}
