// Package slog provides logging decorators for the domain services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/filmoscope"
)

// Ensure LoggingArticleService implements filmoscope.ArticleService.
var _ filmoscope.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with debug logging.
type LoggingArticleService struct {
	next   filmoscope.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next filmoscope.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// FindArticleByTitleHash delegates to the wrapped service.
func (s *LoggingArticleService) FindArticleByTitleHash(ctx context.Context, titleHash string) (*filmoscope.Article, error) {
	return s.next.FindArticleByTitleHash(ctx, titleHash)
}

// LookupTextHashes delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) LookupTextHashes(ctx context.Context, titleHashes []string) (hashes map[string]string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("fingerprint lookup",
			"requested", len(titleHashes),
			"found", len(hashes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LookupTextHashes(ctx, titleHashes)
}

// ApplyBatch delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) ApplyBatch(ctx context.Context, batch *filmoscope.ArticleBatch) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("batch applied",
			"inserts", len(batch.Inserts),
			"updates", len(batch.Updates),
			"touches", len(batch.Touches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ApplyBatch(ctx, batch)
}

// MaxID delegates to the wrapped service.
func (s *LoggingArticleService) MaxID(ctx context.Context) (int64, error) {
	return s.next.MaxID(ctx)
}

// CountArticles delegates to the wrapped service.
func (s *LoggingArticleService) CountArticles(ctx context.Context) (int64, error) {
	return s.next.CountArticles(ctx)
}

// EnumerateDocuments delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) EnumerateDocuments(ctx context.Context, fn func(filmoscope.ArticleDocument) error) (err error) {
	count := 0
	counted := func(doc filmoscope.ArticleDocument) error {
		count++
		return fn(doc)
	}
	defer func(begin time.Time) {
		s.logger.Info("documents enumerated",
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EnumerateDocuments(ctx, counted)
}
