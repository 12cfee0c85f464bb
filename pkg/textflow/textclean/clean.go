// Package textclean normalizes raw text: it strips HTML markup and
// canonicalizes punctuation and whitespace.
package textclean

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Options controls the individual cleaning passes. The zero value disables
// everything; use DefaultOptions for the sensible defaults.
type Options struct {
	RemoveHTML      bool
	CleanDots       bool
	CleanQuotes     bool
	CleanWhitespace bool
}

// DefaultOptions enables every cleaning pass.
func DefaultOptions() Options {
	return Options{
		RemoveHTML:      true,
		CleanDots:       true,
		CleanQuotes:     true,
		CleanWhitespace: true,
	}
}

var (
	ellipsisRe    = regexp.MustCompile(`…`)
	singleQuoteRe = regexp.MustCompile("[`‘’‛⸂⸃⸌⸍⸜⸝]")
	doubleQuoteRe = regexp.MustCompile(`[„“”]|('')|(,,)`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Clean normalizes text according to opts.
func Clean(text string, opts Options) string {
	if opts.RemoveHTML {
		text = StripHTML(text)
	}
	if opts.CleanDots {
		text = ellipsisRe.ReplaceAllString(text, "...")
	}
	if opts.CleanQuotes {
		text = singleQuoteRe.ReplaceAllString(text, "'")
		text = doubleQuoteRe.ReplaceAllString(text, `"`)
	}
	if opts.CleanWhitespace {
		text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	}
	return text
}

// StripHTML removes markup from text, keeping only the text content.
// The contents of script and style elements are dropped entirely.
// Malformed markup is tolerated; the tokenizer never fails on text input.
func StripHTML(text string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(text))
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if isSkippedTag(string(name)) {
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if isSkippedTag(string(name)) && skip > 0 {
				skip--
			}
		}
	}
}

func isSkippedTag(name string) bool {
	return name == "script" || name == "style"
}
