package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/filmoscope"
)

// Compile-time interface verification.
var _ filmoscope.ArticleService = (*ArticleService)(nil)

// ArticleService implements filmoscope.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// FindArticleByTitleHash retrieves an article by its title fingerprint.
func (s *ArticleService) FindArticleByTitleHash(ctx context.Context, titleHash string) (*filmoscope.Article, error) {
	var article filmoscope.Article
	var data sql.NullString
	var mtime float64

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, title_hash, text_hash, data, mtime
		FROM movie
		WHERE title_hash = ?
	`, titleHash).Scan(&article.ID, &article.Title, &article.TitleHash, &article.TextHash, &data, &mtime)

	if err == sql.ErrNoRows {
		return nil, filmoscope.Errorf(filmoscope.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	if data.Valid {
		var record filmoscope.FilmRecord
		if err := json.Unmarshal([]byte(data.String), &record); err != nil {
			return nil, fmt.Errorf("failed to decode article payload: %w", err)
		}
		article.Record = &record
	}
	article.MTime = mtimeToTime(mtime)

	return &article, nil
}

// LookupTextHashes returns the stored text fingerprint for every title
// fingerprint in titleHashes that has a row.
func (s *ArticleService) LookupTextHashes(ctx context.Context, titleHashes []string) (map[string]string, error) {
	hashes := make(map[string]string, len(titleHashes))
	if len(titleHashes) == 0 {
		return hashes, nil
	}

	var query strings.Builder
	args := make([]any, 0, len(titleHashes))

	query.WriteString("SELECT title_hash, text_hash FROM movie WHERE title_hash IN (")
	for i, h := range titleHashes {
		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString("?")
		args = append(args, h)
	}
	query.WriteString(")")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var titleHash, textHash string
		if err := rows.Scan(&titleHash, &textHash); err != nil {
			return nil, err
		}
		hashes[titleHash] = textHash
	}

	return hashes, rows.Err()
}

// ApplyBatch applies one batch of inserts, updates, and touches as a single
// transaction. Inserts carry pre-assigned identities; updates overwrite
// payload, text fingerprint, and last-seen for the matching title
// fingerprint; touches move only the last-seen timestamp.
func (s *ArticleService) ApplyBatch(ctx context.Context, batch *filmoscope.ArticleBatch) error {
	if batch.Empty() {
		return nil
	}
	for _, article := range batch.Inserts {
		if err := article.Validate(); err != nil {
			return err
		}
		if article.ID <= 0 {
			return filmoscope.Errorf(filmoscope.EINVALID, "article identity required for insert")
		}
	}
	for _, article := range batch.Updates {
		if err := article.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin batch transaction: %w", err)
	}
	defer tx.Rollback()

	for _, article := range batch.Inserts {
		data, err := json.Marshal(article.Record)
		if err != nil {
			return fmt.Errorf("failed to encode article payload: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO movie (id, title, title_hash, text_hash, data, mtime)
			VALUES (?, ?, ?, ?, ?, ?)
		`, article.ID, article.Title, article.TitleHash, article.TextHash, string(data), timeToMtime(article.MTime)); err != nil {
			return err
		}
	}

	for _, article := range batch.Updates {
		data, err := json.Marshal(article.Record)
		if err != nil {
			return fmt.Errorf("failed to encode article payload: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE movie
			SET text_hash = ?, data = ?, mtime = ?
			WHERE title_hash = ?
		`, article.TextHash, string(data), timeToMtime(article.MTime), article.TitleHash); err != nil {
			return err
		}
	}

	for _, touch := range batch.Touches {
		if _, err := tx.ExecContext(ctx, `
			UPDATE movie SET mtime = ? WHERE title_hash = ?
		`, timeToMtime(touch.MTime), touch.TitleHash); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// MaxID returns the highest assigned article identity, or 0 for an empty
// store.
func (s *ArticleService) MaxID(ctx context.Context) (int64, error) {
	var maxID int64
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(id), 0) FROM movie").Scan(&maxID)
	if err != nil {
		return 0, err
	}
	return maxID, nil
}

// CountArticles returns the number of stored articles.
func (s *ArticleService) CountArticles(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM movie").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// EnumerateDocuments streams one ArticleDocument per stored row in identity
// order. This is the read interface the embedding pipeline consumes.
func (s *ArticleService) EnumerateDocuments(ctx context.Context, fn func(filmoscope.ArticleDocument) error) error {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title, data FROM movie ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	index := 0
	for rows.Next() {
		var id int64
		var title string
		var data sql.NullString
		if err := rows.Scan(&id, &title, &data); err != nil {
			return err
		}

		var record filmoscope.FilmRecord
		if data.Valid {
			if err := json.Unmarshal([]byte(data.String), &record); err != nil {
				return fmt.Errorf("failed to decode payload for article %d: %w", id, err)
			}
		}

		// Prefer the extracted title: it has disambiguation suffixes
		// stripped, unlike the raw page title.
		if record.Title != "" {
			title = record.Title
		}

		doc := filmoscope.ArticleDocument{
			Index: index,
			Text:  record.Synopsis,
			Payload: filmoscope.DocumentPayload{
				Title:    documentTitle(title, record.Year),
				Genre:    record.Genre,
				Duration: record.DurationMinutes,
				Year:     record.Year,
				IMDb:     record.IMDbID,
			},
		}
		if err := fn(doc); err != nil {
			return err
		}
		index++
	}

	return rows.Err()
}

// documentTitle is the normalized title+year string used for embedding
// metadata. The year is omitted when extraction never recovered one.
func documentTitle(title string, year int) string {
	if year == 0 {
		return title
	}
	return title + " " + strconv.Itoa(year)
}
