package filmoscope

import (
	"context"
	"time"
)

// Article represents one stored film article. Identity is assigned once at
// first observation and is stable across all subsequent dump passes; rows
// are never deleted when a title disappears from a later pass.
type Article struct {
	ID int64 `json:"id"`

	// Title is the page title as observed in the most recent pass.
	Title string `json:"title"`

	// TitleHash is the fingerprint of Title and the store's lookup key.
	// Unique per row: one article per distinct title.
	TitleHash string `json:"titleHash"`

	// TextHash is the fingerprint of the raw wikitext body. It changes if
	// and only if the body changed since the last observation.
	TextHash string `json:"textHash"`

	// Record is the structured payload extracted from the body.
	Record *FilmRecord `json:"record"`

	// MTime is the timestamp of the most recent pass that observed this
	// article, updated on every insert, update, and touch.
	MTime time.Time `json:"mtime"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.TitleHash == "" {
		return Errorf(EINVALID, "article title hash required")
	}
	if a.TextHash == "" {
		return Errorf(EINVALID, "article text hash required")
	}
	return nil
}

// Touch marks an unchanged article as seen by a pass: only the last-seen
// timestamp moves.
type Touch struct {
	TitleHash string
	MTime     time.Time
}

// ArticleBatch holds one batch of reconciliation writes. ApplyBatch commits
// all of it in a single transaction, so a crash mid-pass loses at most one
// batch and never leaves a partially-applied row.
type ArticleBatch struct {
	Inserts []*Article
	Updates []*Article
	Touches []Touch
}

// Empty reports whether the batch contains no writes.
func (b *ArticleBatch) Empty() bool {
	return len(b.Inserts) == 0 && len(b.Updates) == 0 && len(b.Touches) == 0
}

// DocumentPayload is the metadata attached to one downstream document.
type DocumentPayload struct {
	Title    string   `json:"title"`
	Genre    []string `json:"genre"`
	Duration int      `json:"duration"`
	Year     int      `json:"year"`
	IMDb     string   `json:"imdb"`
}

// ArticleDocument is the triple consumed by the embedding pipeline: a
// synthetic 0-based index, the free-text synopsis, and a metadata payload.
type ArticleDocument struct {
	Index   int             `json:"index"`
	Text    string          `json:"text"`
	Payload DocumentPayload `json:"payload"`
}

// ArticleService represents a service for managing stored film articles.
type ArticleService interface {
	// FindArticleByTitleHash retrieves an article by its title fingerprint.
	// Returns ENOTFOUND if no article with that fingerprint exists.
	FindArticleByTitleHash(ctx context.Context, titleHash string) (*Article, error)

	// LookupTextHashes returns the stored text fingerprint for every title
	// fingerprint in titleHashes that has a row. Missing fingerprints are
	// simply absent from the result map.
	LookupTextHashes(ctx context.Context, titleHashes []string) (map[string]string, error)

	// ApplyBatch applies one batch of inserts, updates, and touches as a
	// single transaction.
	ApplyBatch(ctx context.Context, batch *ArticleBatch) error

	// MaxID returns the highest assigned article identity, or 0 if the
	// store is empty. The sync engine seeds its monotonic counter from it.
	MaxID(ctx context.Context) (int64, error)

	// CountArticles returns the number of stored articles.
	CountArticles(ctx context.Context) (int64, error)

	// EnumerateDocuments streams one ArticleDocument per stored row in
	// identity order, calling fn for each. A non-nil error from fn stops
	// the enumeration and is returned.
	EnumerateDocuments(ctx context.Context, fn func(ArticleDocument) error) error
}
