package fetch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// renderTimeout bounds one headless page load including script execution.
const renderTimeout = 60 * time.Second

// renderPage loads a posting in headless Chrome and returns the rendered
// HTML. SPA job boards serve an empty shell to a plain GET; only the
// rendered DOM carries the description. Requires a local Chrome/Chromium.
func renderPage(ctx context.Context, urlStr string, verbose bool) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	browserCtx, cancel = context.WithTimeout(browserCtx, renderTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Consent banners cover the description on some boards.
			// Best effort; missing button is not an error.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("headless render of %s failed: %w", urlStr, err)
	}

	if verbose {
		log.Printf("[FETCH] rendered %s: %d bytes", urlStr, len(html))
	}
	return html, nil
}
