// Package wikitext implements pattern-based classification, cleaning, and
// field extraction over French Wikipedia markup. It is deliberately not a
// markup parser: everything here is regex substitution and search, and every
// miss degrades to an absent value rather than an error.
package wikitext

import (
	"regexp"
	"strings"
)

var (
	wikiLinkRE    = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
	templateRE    = regexp.MustCompile(`\{\{([^{}]+)\}\}`)
	refPairRE     = regexp.MustCompile(`(?s)<ref[^>]*>.*?</ref>`)
	refSingleRE   = regexp.MustCompile(`<ref[^>]*/?>`)
	htmlTagRE     = regexp.MustCompile(`<[^>]+>`)
	quoteRunRE    = regexp.MustCompile(`'{2,}`)
	whitespaceRE  = regexp.MustCompile(`\s+`)
	listSplitRE   = regexp.MustCompile(`\n\*|\n-|<br\s*/?>|,`)
	subheadingRE  = regexp.MustCompile(`={2,}.*?={2,}`)
	extLinkTextRE = regexp.MustCompile(`\[https?://[^\s\]]+\s+([^\]]+)\]`)
	extLinkBareRE = regexp.MustCompile(`\[https?://[^\s\]]+\]`)
	refTemplateRE = regexp.MustCompile(`\{\{[Rr]éférence[^}]*\}\}`)
	plainTplRE    = regexp.MustCompile(`\{\{[^}]+\}\}`)
	newlineRunRE  = regexp.MustCompile(`\n+`)
	spaceRunRE    = regexp.MustCompile(` +`)
)

// maxSynopsisLen caps stored synopses; anything longer is cut at a sentence
// boundary when possible.
const maxSynopsisLen = 2000

// displayText returns the display segment of a piped wiki construct: the
// text after the last pipe, or the whole inner text if there is none.
func displayText(inner string) string {
	if i := strings.LastIndex(inner, "|"); i >= 0 {
		return inner[i+1:]
	}
	return inner
}

// CleanValue strips wiki markup from a captured infobox value: wiki links
// and templates keep their display text, HTML tags and references are
// removed, emphasis quote-runs are removed, and whitespace runs collapse to
// single spaces.
func CleanValue(value string) string {
	value = strings.TrimSpace(value)

	value = wikiLinkRE.ReplaceAllStringFunc(value, func(m string) string {
		return displayText(m[2 : len(m)-2])
	})
	value = templateRE.ReplaceAllStringFunc(value, func(m string) string {
		return displayText(m[2 : len(m)-2])
	})

	// References first: the generic tag strip below would otherwise leave
	// their content behind.
	value = refPairRE.ReplaceAllString(value, "")
	value = refSingleRE.ReplaceAllString(value, "")
	value = htmlTagRE.ReplaceAllString(value, "")

	value = quoteRunRE.ReplaceAllString(value, "")
	value = whitespaceRE.ReplaceAllString(value, " ")

	return strings.TrimSpace(value)
}

// SplitList parses a multi-valued infobox field (actors, writers, countries)
// into trimmed items. The raw fragment is split on newline bullets, newline
// dashes, <br> markers, and commas before cleaning, because cleaning would
// strip the <br> separators away. Items that clean down to one character or
// less are dropped; order is preserved.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	for _, part := range listSplitRE.Split(raw, -1) {
		item := strings.TrimSpace(strings.TrimLeft(CleanValue(part), "- "))
		if len([]rune(item)) > 1 {
			items = append(items, item)
		}
	}
	return items
}

// CleanSynopsis strips a synopsis section down to plain prose. On top of the
// general value cleaning it removes subsection headings, external-link
// brackets (keeping the link text), reference templates, and generic
// double-brace templates, then collapses repeated newlines and spaces.
// Results longer than 2000 characters are cut at the last sentence boundary
// before the limit when that boundary is past 1000 characters, otherwise
// hard-cut with an ellipsis.
func CleanSynopsis(synopsis string) string {
	synopsis = subheadingRE.ReplaceAllString(synopsis, "")

	synopsis = wikiLinkRE.ReplaceAllStringFunc(synopsis, func(m string) string {
		return displayText(m[2 : len(m)-2])
	})
	synopsis = extLinkTextRE.ReplaceAllString(synopsis, "$1")
	synopsis = extLinkBareRE.ReplaceAllString(synopsis, "")

	synopsis = refTemplateRE.ReplaceAllString(synopsis, "")
	synopsis = refPairRE.ReplaceAllString(synopsis, "")
	synopsis = refSingleRE.ReplaceAllString(synopsis, "")
	synopsis = htmlTagRE.ReplaceAllString(synopsis, "")

	// Nested templates are not handled; one level is enough in practice.
	synopsis = plainTplRE.ReplaceAllString(synopsis, "")

	synopsis = quoteRunRE.ReplaceAllString(synopsis, "")
	synopsis = newlineRunRE.ReplaceAllString(synopsis, "\n")
	synopsis = spaceRunRE.ReplaceAllString(synopsis, " ")
	synopsis = strings.TrimSpace(synopsis)

	return truncateSynopsis(synopsis)
}

// truncateSynopsis enforces the 2000-character cap, preferring a sentence
// boundary when one exists past the 1000-character mark. Lengths are counted
// in runes so accented French text is never cut mid-character.
func truncateSynopsis(s string) string {
	runes := []rune(s)
	if len(runes) <= maxSynopsisLen {
		return s
	}
	window := runes[:maxSynopsisLen]
	if cutoff := lastIndexRune(window, '.'); cutoff > 1000 {
		return string(window[:cutoff+1])
	}
	return string(window) + "..."
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
