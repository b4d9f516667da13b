package classifier

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxInputTokens is the largest number of whitespace separated tokens sent to a model.
const MaxInputTokens = 512

// htmlBlockTags are tags READMEs commonly use for layout. Only lines opening with one of them
// are parsed as html, the rest of the README stays as written.
var htmlBlockTags = map[string]bool{
	"a": true, "b": true, "br": true, "center": true, "details": true, "div": true,
	"em": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"hr": true, "i": true, "img": true, "p": true, "picture": true, "source": true,
	"span": true, "strong": true, "sub": true, "summary": true, "sup": true,
	"table": true, "td": true, "th": true, "tr": true,
}

// PrepareText strips html layout lines from README content, collapses whitespace
// and truncates the result to MaxInputTokens tokens.
func PrepareText(readme string) string {
	var tokens []string
	for _, line := range strings.Split(readme, "\n") {
		if len(tokens) >= MaxInputTokens {
			break
		}
		tokens = append(tokens, strings.Fields(lineText(line))...)
	}
	if len(tokens) > MaxInputTokens {
		tokens = tokens[:MaxInputTokens]
	}

	return strings.Join(tokens, " ")
}

func lineText(line string) string {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "<!--") && strings.HasSuffix(trimmed, "-->") {
		return ""
	}
	if !htmlBlockTags[openingTag(trimmed)] {
		return line
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return line
	}
	return doc.Text()
}

// openingTag returns lowercased name of the opening or closing tag line starts with,
// or empty string.
func openingTag(line string) string {
	start := 1
	switch {
	case strings.HasPrefix(line, "</"):
		start = 2
	case !strings.HasPrefix(line, "<"):
		return ""
	}

	end := start
	for end < len(line) && isTagNameByte(line[end]) {
		end++
	}
	if end == start || end == len(line) {
		return ""
	}
	switch line[end] {
	case ' ', '\t', '>', '/':
		return strings.ToLower(line[start:end])
	}
	return ""
}

func isTagNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
