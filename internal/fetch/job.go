package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
)

const (
	// minJobTextLength is the shortest extraction still worth analyzing.
	minJobTextLength = 100

	// renderFloor marks a static fetch as an unrendered SPA shell: below it,
	// a browser pass is worth the cost when the caller allows one.
	renderFloor = 500
)

// FromURL fetches a job posting URL and returns its cleaned description text.
// Board-specific selectors are tried first; when the static fetch yields too
// little text and useBrowser is set, the page is re-rendered headlessly
// before extraction.
func FromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, error) {
	board := DetectBoard(urlStr)
	contentSelectors := ContentSelectors(board)
	noiseSelectors := NoiseSelectors(board)

	result, err := URL(ctx, urlStr, nil)
	var html string
	if err == nil {
		html = result.HTML
	} else if !useBrowser {
		return "", err
	}

	text := ""
	if html != "" {
		text, err = ExtractMainText(html, contentSelectors, noiseSelectors...)
		if err != nil {
			return "", err
		}
	}

	if useBrowser && len(strings.TrimSpace(text)) < renderFloor {
		if verbose {
			log.Printf("[FETCH] static fetch yielded %d chars, rendering %s in browser", len(text), urlStr)
		}
		html, err = renderPage(ctx, urlStr, verbose)
		if err != nil {
			return "", err
		}
		text, err = ExtractMainText(html, contentSelectors, noiseSelectors...)
		if err != nil {
			return "", err
		}
	}

	if len(strings.TrimSpace(text)) < minJobTextLength {
		return "", fmt.Errorf("job posting extraction yielded too little text from %s", urlStr)
	}
	return text, nil
}
