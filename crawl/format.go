package crawl

import "fmt"

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// No room for the "..." prefix.
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatResult summarizes a harvest for the terminal.
func FormatResult(r *Result) string {
	return fmt.Sprintf("Saved %d meetings (%d skipped, %d failed)", r.Saved, r.Skipped, r.Failed)
}
