package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// MaxExtractionChars bounds normalized text to stay inside the extraction
// backend's input budget
const MaxExtractionChars = 15000

// NormalizeHTML renders a markup fragment as plain text and truncates it to
// MaxExtractionChars. It never fails; empty input yields empty output.
func NormalizeHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		// html.Parse only fails on reader errors; fall back to the raw text
		return truncate(fragment, MaxExtractionChars)
	}

	return truncate(extractVisibleText(doc), MaxExtractionChars)
}

// extractVisibleText extracts text nodes from HTML, skipping scripts/styles
func extractVisibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return strings.TrimSpace(buf.String())
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
