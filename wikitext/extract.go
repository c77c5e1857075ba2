package wikitext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/filmoscope"
)

const maxActors = 10

var (
	titleSuffixRE = regexp.MustCompile(`\((?:télé)?film.*\)`)
	infoboxRE     = regexp.MustCompile(`(?is)\{\{Infobox[^}]*?(?:Cinéma|Film)\s*\|?(.*?)\n\}\}`)

	originalTitleRE = regexp.MustCompile(`(?i)titre original\s*=\s*(.+)`)
	directorRE      = regexp.MustCompile(`(?i)réalisation\s*=\s*(.+)`)
	writerRE        = regexp.MustCompile(`(?i)scénario\s*=\s*(.+)`)
	producerRE      = regexp.MustCompile(`(?i)(?:producteur|production)\s*=\s*(.+)`)
	countryRE       = regexp.MustCompile(`(?i)pays\s*=\s*(.+)`)
	genreRE         = regexp.MustCompile(`(?i)genre\s*=\s*(.+)`)
	budgetRE        = regexp.MustCompile(`(?i)budget\s*=\s*(.+)`)

	yearRE        = regexp.MustCompile(`(?i)année\s*=\s*(\d{4})`)
	releaseYearRE = regexp.MustCompile(`(?i)(?:sortie|date)\s*=.*?(\d{4})`)
	durationRE    = regexp.MustCompile(`(?i)durée\s*=.*?(\d+)`)
	actorsRE      = regexp.MustCompile(`(?is)acteur\s*=\s*(.+?)(?:\n\||\n\}\}|$)`)

	englishFieldRE = regexp.MustCompile(`(?i)titre anglais\s*=\s*(.+)`)
	langTitleRE    = regexp.MustCompile(`(?i)\{\{Titre en langue\|en\|([^}]+)\}\}`)

	imdbTemplateRE = regexp.MustCompile(`(?i)\{\{IMDb\s+titre\s*\|\s*(?:id\s*=\s*)?([a-z]*\d+)`)
	imdbURLRE      = regexp.MustCompile(`(?i)imdb\.com/title/(tt\d+)`)
	imdbFieldRE    = regexp.MustCompile(`(?i)(?:IMDb|IMDB)\s*=\s*([a-z]{2}\d+)`)
)

// synopsisHeadings are the recognized section titles, in priority order.
// The first section whose cleaned text reaches 50 characters wins.
var synopsisHeadings = []*regexp.Regexp{
	regexp.MustCompile(`(?is)==\s*Synopsis\s*==\s*\n(.*?)(?:\n==|$)`),
	regexp.MustCompile(`(?is)==\s*Résumé\s*==\s*\n(.*?)(?:\n==|$)`),
	regexp.MustCompile(`(?is)==\s*Histoire\s*==\s*\n(.*?)(?:\n==|$)`),
	regexp.MustCompile(`(?is)==\s*Intrigue\s*==\s*\n(.*?)(?:\n==|$)`),
	regexp.MustCompile(`(?is)==\s*Scénario\s*==\s*\n(.*?)(?:\n==|$)`),
}

// fieldExtractor is one method for recovering a field value. Fields with
// several sources are modeled as an ordered fallback list: the first
// non-empty result wins and later methods are not attempted.
type fieldExtractor func(box, full string) string

var englishTitleExtractors = []fieldExtractor{
	func(box, _ string) string {
		if m := englishFieldRE.FindStringSubmatch(box); m != nil {
			return CleanValue(m[1])
		}
		return ""
	},
	func(_, full string) string {
		if m := langTitleRE.FindStringSubmatch(full); m != nil {
			return CleanValue(m[1])
		}
		return ""
	},
}

var imdbExtractors = []fieldExtractor{
	func(_, full string) string {
		if m := imdbTemplateRE.FindStringSubmatch(full); m != nil {
			return m[1]
		}
		return ""
	},
	func(_, full string) string {
		if m := imdbURLRE.FindStringSubmatch(full); m != nil {
			return m[1]
		}
		return ""
	},
	func(_, full string) string {
		if m := imdbFieldRE.FindStringSubmatch(full); m != nil {
			return m[1]
		}
		return ""
	},
}

func firstMatch(extractors []fieldExtractor, box, full string) string {
	for _, fn := range extractors {
		if v := fn(box, full); v != "" {
			return v
		}
	}
	return ""
}

// Extract turns one classified article into a FilmRecord. It never fails:
// absent data yields absent fields, and a record with at least the cleaned
// title is always returned.
func Extract(title, text string) *filmoscope.FilmRecord {
	record := &filmoscope.FilmRecord{
		Title: strings.TrimSpace(titleSuffixRE.ReplaceAllString(title, "")),
	}

	m := infoboxRE.FindStringSubmatch(text)
	if m == nil {
		return record
	}
	box := m[1]

	if f := originalTitleRE.FindStringSubmatch(box); f != nil {
		record.OriginalTitle = CleanValue(f[1])
	}
	if f := directorRE.FindStringSubmatch(box); f != nil {
		record.Director = CleanValue(f[1])
	}
	if f := writerRE.FindStringSubmatch(box); f != nil {
		record.Writer = SplitList(f[1])
	}
	if f := producerRE.FindStringSubmatch(box); f != nil {
		record.Producer = SplitList(f[1])
	}
	if f := countryRE.FindStringSubmatch(box); f != nil {
		record.Country = SplitList(f[1])
	}
	if f := genreRE.FindStringSubmatch(box); f != nil {
		record.Genre = lowerAll(SplitList(f[1]))
	}
	if f := budgetRE.FindStringSubmatch(box); f != nil {
		record.Budget = CleanValue(f[1])
	}

	record.Year = extractYear(box)
	record.DurationMinutes = extractInt(durationRE, box)

	if f := actorsRE.FindStringSubmatch(box); f != nil {
		actors := SplitList(f[1])
		if len(actors) > maxActors {
			actors = actors[:maxActors]
		}
		record.Actors = actors
	}

	record.EnglishTitle = firstMatch(englishTitleExtractors, box, text)
	record.IMDbID = firstMatch(imdbExtractors, box, text)
	record.Synopsis = extractSynopsis(text)

	return record
}

// extractYear tries the explicit year field first, then falls back to a
// 4-digit year in the release-date field. First match wins.
func extractYear(box string) int {
	if y := extractInt(yearRE, box); y != 0 {
		return y
	}
	return extractInt(releaseYearRE, box)
}

// extractInt returns the captured integer, or 0 when the pattern misses or
// the capture is not numeric. A bad capture is an extraction miss, never an
// error.
func extractInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// extractSynopsis searches the full wikitext for the recognized section
// headings in priority order, taking the text up to the next top-level
// heading or end of document. Sections that clean to fewer than 50
// characters are rejected and the search continues.
func extractSynopsis(text string) string {
	for _, re := range synopsisHeadings {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		synopsis := CleanSynopsis(m[1])
		if len([]rune(synopsis)) >= 50 {
			return synopsis
		}
	}
	return ""
}

func lowerAll(items []string) []string {
	for i, s := range items {
		items[i] = strings.ToLower(s)
	}
	return items
}
