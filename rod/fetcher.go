// Package rod provides a browser-automation fetcher for rendered page
// snapshots using Chrome via go-rod.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/vitae"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements vitae.Fetcher at compile time.
var _ vitae.Fetcher = (*Fetcher)(nil)

// revealScript expands the page's lazily truncated content before the
// snapshot is read: it clicks every "see more"/"show all" style control and
// collapsed disclosure, and scrolls through the page so lazy sections mount.
// Without this step truncated fields are captured silently.
const revealScript = `() => {
	const clickable = document.querySelectorAll('button, [role="button"], [aria-expanded="false"]');
	for (const el of clickable) {
		const label = ((el.innerText || '') + ' ' + (el.getAttribute('aria-label') || '')).toLowerCase();
		if (/see more|show more|show all|mostrar m[aá]s|ver m[aá]s/.test(label) ||
			el.getAttribute('aria-expanded') === 'false') {
			try { el.click(); } catch (e) {}
		}
	}
	window.scrollTo(0, document.body.scrollHeight);
	window.scrollTo(0, 0);
}`

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser

	// RevealPasses is how many click-and-scroll reveal rounds run before the
	// snapshot is read. Each round can mount content that exposes more
	// controls for the next one.
	RevealPasses int

	// SettleDelay is the pause after each reveal pass, giving the page time
	// to re-render the expanded content.
	SettleDelay time.Duration
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{
		browser:      browser,
		RevealPasses: 2,
		SettleDelay:  500 * time.Millisecond,
	}, nil
}

// Fetch navigates to the URL, reveals truncated content, waits for the page
// to settle and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	for i := 0; i < f.RevealPasses; i++ {
		if _, err := page.Eval(revealScript); err != nil {
			// Reveal is best-effort: a page without the expected controls
			// still yields a usable snapshot.
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.SettleDelay):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
