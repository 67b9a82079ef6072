package changelog

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	bulletPrefix       = "* "
	continuationPrefix = "  "
)

// formatMessage renders one message as a markdown bullet. The text is
// wrapped to width columns first and the prefixes are added afterwards.
func formatMessage(text string, width int) string {
	lines := wrapText(text, width)
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if i == 0 {
			// The bullet stays intact even for an empty message.
			lines[i] = bulletPrefix + line
			continue
		}
		if line != "" {
			line = continuationPrefix + line
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// wrapText wraps text to fit within maxWidth display columns.
// Lines only break at whitespace; a word wider than maxWidth gets a line of
// its own. Newlines in text are kept as hard breaks.
func wrapText(text string, maxWidth int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, maxWidth)...)
	}
	return lines
}

// wrapParagraph greedily fills lines with words. Whitespace between words
// on the same line is kept as written; whitespace at a break is dropped.
func wrapParagraph(text string, maxWidth int) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, tok := range splitWords(text) {
		wordWidth := runewidth.StringWidth(tok.word)
		if line.Len() == 0 {
			line.WriteString(tok.word)
			lineWidth = wordWidth
			continue
		}

		gapWidth := utf8.RuneCountInString(tok.space)
		if maxWidth <= 0 || lineWidth+gapWidth+wordWidth <= maxWidth {
			line.WriteString(tok.space)
			line.WriteString(tok.word)
			lineWidth += gapWidth + wordWidth
			continue
		}

		lines = append(lines, line.String())
		line.Reset()
		line.WriteString(tok.word)
		lineWidth = wordWidth
	}

	return append(lines, line.String())
}

// token is a word together with the whitespace that preceded it.
type token struct {
	space string
	word  string
}

// splitWords breaks text into words, remembering the whitespace run before
// each one. Leading and trailing whitespace are discarded.
func splitWords(text string) []token {
	var tokens []token
	var space, word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, token{space: space.String(), word: word.String()})
			space.Reset()
			word.Reset()
		}
	}

	for _, r := range text {
		if unicode.IsSpace(r) {
			flush()
			space.WriteRune(r)
			continue
		}
		word.WriteRune(r)
	}
	flush()

	return tokens
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
