// Package normalize converts raw source fragments into clean display text.
//
// The package handles:
//   - Tag stripping and entity decoding for scraped question content
//   - Truncation at the legacy source's loosely terminated section boundaries
//   - Image reference extraction with base-origin resolution
//
// All functions are pure and never fail; malformed input degrades to
// best-effort partial output.
package normalize

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	tagRegex     = regexp.MustCompile(`<(/?)([a-zA-Z0-9-]+)([^>]*)>`)
	imgTagRegex  = regexp.MustCompile(`(?i)\(\s*<img[^>]*>\s*\)|<img[^>]*>`)
	commentRegex = regexp.MustCompile(`(?s)<!--.*?-->`)
	newlineRuns  = regexp.MustCompile(`[ \t]*[\r\n]+[ \t]*`)
)

// sectionBoundary marks the start of the next labeled section in the legacy
// source's markup; content after it belongs to a different field.
const sectionBoundary = "<strong"

// entityReplacer decodes the fixed entity table the sources are known to emit.
// Decoded angle brackets are removed again by bracketReplacer, so output never
// carries a raw < or >.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&#160;", " ",
	"&ndash;", "–",
	"&#8211;", "–",
	"&quot;", `"`,
	"&#34;", `"`,
	"&amp;", "&",
	"&#38;", "&",
	"&lt;", "<",
	"&#60;", "<",
	"&gt;", ">",
	"&#62;", ">",
)

var bracketReplacer = strings.NewReplacer("<", "", ">", "")

// CleanOptions controls optional Clean steps.
type CleanOptions struct {
	// RemoveImages deletes self-contained <img …> fragments before stripping.
	RemoveImages bool
	// StopAtLabel truncates the fragment at the next section-boundary marker.
	StopAtLabel bool
}

// Clean strips markup from a raw fragment and returns display-ready plain
// text: tags removed, the fixed entity table decoded, newline runs collapsed
// to a single space, surrounding whitespace trimmed. Angle brackets that
// survive tag stripping (unterminated tags, decoded entities) are deleted
// outright.
func Clean(fragment string, opts CleanOptions) string {
	s := fragment

	if opts.StopAtLabel {
		if idx := strings.Index(s, sectionBoundary); idx >= 0 {
			s = s[:idx]
		}
	}

	if opts.RemoveImages {
		s = imgTagRegex.ReplaceAllString(s, "")
	}

	s = commentRegex.ReplaceAllString(s, "")
	s = tagRegex.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	s = bracketReplacer.Replace(s)
	s = newlineRuns.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// ExtractImages collects the src of every img element in the fragment,
// resolved against baseOrigin, in document order and without de-duplication.
// Unusable references are skipped. Returns nil when nothing usable is found.
func ExtractImages(fragment, baseOrigin string) []string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var urls []string

	var traverse func(*html.Node)

	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			if src := imgSrc(n); src != "" {
				if abs := ResolveURL(src, baseOrigin); abs != "" {
					urls = append(urls, abs)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}

	traverse(doc)

	return urls
}

func imgSrc(n *html.Node) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, "src") {
			return strings.TrimSpace(attr.Val)
		}
	}

	return ""
}

// ResolveURL resolves ref against baseOrigin and returns an absolute http(s)
// URL. Already-absolute refs pass through unchanged. Returns "" for input
// that cannot yield a usable absolute URL.
func ResolveURL(ref, baseOrigin string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	if refURL.IsAbs() {
		if refURL.Scheme != "http" && refURL.Scheme != "https" {
			return ""
		}

		return ref
	}

	base, err := url.Parse(baseOrigin)
	if err != nil || !base.IsAbs() {
		return ""
	}

	return base.ResolveReference(refURL).String()
}
