package naver

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// stripHTML removes HTML tags and returns plain text.
// The search API wraps matched keywords in <b>...</b> and book
// descriptions occasionally carry markup.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return stripHTMLFallback(s)
	}

	var buf strings.Builder
	extractText(doc, &buf)

	return strings.TrimSpace(collapseWhitespace(buf.String()))
}

func extractText(n *html.Node, buf *strings.Builder) {
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, buf)
	}
}

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// stripHTMLFallback uses regex when parsing fails.
func stripHTMLFallback(s string) string {
	s = htmlTagRegex.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(collapseWhitespace(s))
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, " ")
}
