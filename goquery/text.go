package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// cleanText returns the selection's text with all whitespace runs
// collapsed to single spaces and the result trimmed. Used for one-line
// fields (titles, prices, list items, attribute values).
func cleanText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// blockText returns the selection's text with each text node trimmed and
// non-empty nodes joined by newlines, preserving the block structure of
// nested markup (two sibling <p> elements produce two lines even when the
// source has no whitespace between them).
func blockText(s *goquery.Selection) string {
	var parts []string
	for _, node := range s.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// runeLen counts characters, not bytes. Significance thresholds are
// character counts and the corpus is accented Spanish text.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// containsAny reports whether the lowercased text contains any of the
// given lowercase keywords.
func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
