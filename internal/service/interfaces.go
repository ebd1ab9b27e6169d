package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"news_pusher/internal/domain"
)

type NewsStore interface {
	InsertOne(ctx context.Context, item *domain.NewsItem) (int64, error)
	InsertBatch(ctx context.Context, items []domain.NewsItem) error
	LatestBySource(ctx context.Context, sourceID string, limit int) ([]domain.NewsItem, error)
	TrimToMax(ctx context.Context, maxRecords int) (int64, error)
}

type PushStore interface {
	InsertOne(ctx context.Context, rec *domain.PushRecord) (int64, error)
	InsertBatch(ctx context.Context, recs []domain.PushRecord) error
	ByType(ctx context.Context, newsType string) ([]domain.PushRecord, error)
	DeleteByTypeAndSource(ctx context.Context, sourceID, newsType string) (int64, error)
	DeleteExcessBySource(ctx context.Context, sourceID string, keep int) (int64, error)
}

type Fetcher interface {
	Fetch(ctx context.Context, sourceID string) (*domain.FetchResult, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	Notify(ctx context.Context, item *domain.NewsItem, rec *domain.PushRecord) error
	Close() error
}
