package bundle

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrNoClipboard means no clipboard utility is available on this platform;
// callers should fall back to writing the document elsewhere.
var ErrNoClipboard = errors.New("no clipboard available")

// ToClipboard copies the document text to the system clipboard.
func (d *Document) ToClipboard() error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	if err := clipboard.WriteAll(d.Text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
