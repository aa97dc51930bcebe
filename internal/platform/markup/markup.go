// Package markup escapes text for Telegram's MarkdownV2 parse mode.
//
// MarkdownV2 rejects messages containing unescaped reserved punctuation, so
// every string reaching the delivery layer must pass through EscapeMarkdownV2
// first. The asterisk is intentionally not part of the reserved set here:
// callers compose bold/italic markers around already-escaped text.
package markup

import (
	"regexp"
	"strconv"
	"strings"
)

// reservedChars escapes the MarkdownV2 reserved set, except the emphasis
// character *.
var reservedChars = strings.NewReplacer(
	"_", "\\_",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// linkPattern matches inline [label](url) constructs, which must survive
// escaping byte-identical.
var linkPattern = regexp.MustCompile(`\[[^\]]*\]\([^)]+\)`)

// EscapeMarkdownV2 backslash-prefixes every reserved character in text.
// Inline [label](url) constructs are protected with placeholders before
// escaping and restored verbatim afterwards, so punctuation embedded in a
// label or URL is not corrupted.
func EscapeMarkdownV2(text string) string {
	links := linkPattern.FindAllString(text, -1)
	if len(links) == 0 {
		return reservedChars.Replace(text)
	}

	for i, link := range links {
		text = strings.Replace(text, link, placeholder(i), 1)
	}

	text = reservedChars.Replace(text)

	for i, link := range links {
		text = strings.Replace(text, placeholder(i), link, 1)
	}

	return text
}

// unescaper removes the backslashes EscapeMarkdownV2 inserts. Emphasis
// markers are left in place.
var unescaper = strings.NewReplacer(
	"\\_", "_",
	"\\[", "[",
	"\\]", "]",
	"\\(", "(",
	"\\)", ")",
	"\\~", "~",
	"\\`", "`",
	"\\>", ">",
	"\\#", "#",
	"\\+", "+",
	"\\-", "-",
	"\\=", "=",
	"\\|", "|",
	"\\{", "{",
	"\\}", "}",
	"\\.", ".",
	"\\!", "!",
)

// Unescape reverses EscapeMarkdownV2 for the plain-text delivery fallback,
// used when Telegram rejects a MarkdownV2 payload.
func Unescape(text string) string {
	return unescaper.Replace(text)
}

// Bold wraps already-escaped text in MarkdownV2 bold markers.
func Bold(text string) string {
	return "*" + text + "*"
}

// Italic wraps already-escaped text in MarkdownV2 italic markers.
func Italic(text string) string {
	return "_" + text + "_"
}

func placeholder(i int) string {
	return "\x00" + strconv.Itoa(i) + "\x00"
}
