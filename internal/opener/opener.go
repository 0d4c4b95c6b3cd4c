// Package opener hands app and contact links to the desktop browser.
package opener

import (
	"fmt"
	"io"
	"net/url"

	"github.com/pkg/browser"
)

// Browser opens links with the system browser.
type Browser struct {
	open func(string) error
}

// New returns a Browser whose launcher output is discarded, since the
// terminal belongs to the TUI.
func New() *Browser {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Browser{open: browser.OpenURL}
}

// Open validates rawURL and launches it. Only http and https links are
// accepted.
func (b *Browser) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("opener: parse %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("opener: refusing non-http link %q", rawURL)
	}
	if err := b.open(u.String()); err != nil {
		return fmt.Errorf("opener: launch browser: %w", err)
	}
	return nil
}
