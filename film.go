package filmoscope

// FilmRecord is the structured output of extracting one film article.
// Extraction is best-effort over adversarial wikitext: every field defaults
// to empty/absent rather than failing, and a record always exists for a
// classified page even if only Title could be recovered.
type FilmRecord struct {
	Title           string   `json:"title"`
	OriginalTitle   string   `json:"original_title,omitempty"`
	EnglishTitle    string   `json:"english_title,omitempty"`
	Director        string   `json:"director,omitempty"`
	Year            int      `json:"year,omitempty"`
	Country         []string `json:"country,omitempty"`
	Genre           []string `json:"genre,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Actors          []string `json:"actors,omitempty"`
	Writer          []string `json:"writer,omitempty"`
	Producer        []string `json:"producer,omitempty"`
	Budget          string   `json:"budget,omitempty"`
	IMDbID          string   `json:"imdb_id,omitempty"`
	Synopsis        string   `json:"synopsis,omitempty"`
}
