// Package mock provides function-field mock implementations of the domain
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/filmoscope"
)

var _ filmoscope.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of filmoscope.ArticleService.
type ArticleService struct {
	FindArticleByTitleHashFn func(ctx context.Context, titleHash string) (*filmoscope.Article, error)
	LookupTextHashesFn       func(ctx context.Context, titleHashes []string) (map[string]string, error)
	ApplyBatchFn             func(ctx context.Context, batch *filmoscope.ArticleBatch) error
	MaxIDFn                  func(ctx context.Context) (int64, error)
	CountArticlesFn          func(ctx context.Context) (int64, error)
	EnumerateDocumentsFn     func(ctx context.Context, fn func(filmoscope.ArticleDocument) error) error
}

func (s *ArticleService) FindArticleByTitleHash(ctx context.Context, titleHash string) (*filmoscope.Article, error) {
	return s.FindArticleByTitleHashFn(ctx, titleHash)
}

func (s *ArticleService) LookupTextHashes(ctx context.Context, titleHashes []string) (map[string]string, error) {
	return s.LookupTextHashesFn(ctx, titleHashes)
}

func (s *ArticleService) ApplyBatch(ctx context.Context, batch *filmoscope.ArticleBatch) error {
	return s.ApplyBatchFn(ctx, batch)
}

func (s *ArticleService) MaxID(ctx context.Context) (int64, error) {
	return s.MaxIDFn(ctx)
}

func (s *ArticleService) CountArticles(ctx context.Context) (int64, error) {
	return s.CountArticlesFn(ctx)
}

func (s *ArticleService) EnumerateDocuments(ctx context.Context, fn func(filmoscope.ArticleDocument) error) error {
	return s.EnumerateDocumentsFn(ctx, fn)
}
