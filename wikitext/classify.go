package wikitext

import (
	"regexp"
	"strings"
)

var (
	infoboxFilmRE   = regexp.MustCompile(`(?i)\{\{Infobox Film`)
	infoboxCinemaRE = regexp.MustCompile(`(?i)\{\{Infobox Cinéma.*`)
)

// subThemes is the closed set of Infobox Cinéma qualifiers that share the
// cinema marker but are not films.
var subThemes = []string{
	"projecteur",
	"festival",
	"technologie",
	"studio",
	"caméra",
	"série de films",
}

// Classification is the result of classifying one page's wikitext.
type Classification struct {
	// Candidate reports a recognized film-categorization marker: a film
	// infobox, or a cinema infobox that is not the biographical variant.
	Candidate bool

	// Draft reports a film stub marker.
	Draft bool

	// SubTheme reports a cinema infobox whose parenthetical qualifier names
	// a non-film sub-category (festival, studio, etc.).
	SubTheme bool
}

// Eligible reports whether the page should be extracted.
func (c Classification) Eligible() bool {
	return c.Candidate && !c.Draft && !c.SubTheme
}

// Classify decides whether raw wikitext describes a film article. Matching
// is substring/pattern search only; malformed markers are non-matches.
func Classify(text string) Classification {
	return Classification{
		Candidate: isFilmArticle(text),
		Draft:     strings.Contains(text, "{{ébauche|film"),
		SubTheme:  isSubTheme(text),
	}
}

func isFilmArticle(text string) bool {
	if m := infoboxCinemaRE.FindString(text); m != "" && !strings.Contains(m, "(personnalité)") {
		return true
	}
	return infoboxFilmRE.MatchString(text)
}

func isSubTheme(text string) bool {
	for _, theme := range subThemes {
		if strings.Contains(text, "{{Infobox Cinéma ("+theme+")") {
			return true
		}
	}
	return false
}
