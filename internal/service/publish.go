package service

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"news_pusher/internal/config"
	"news_pusher/internal/domain"
)

// Publisher runs one reconciliation pass over the source catalog: for each
// source it diffs the latest fetch against the recently stored external ids,
// inserts the novel items, creates a push record per inserted item and trims
// the source's push records. Sources are independent; a failure in one never
// aborts the rest of the pass.
type Publisher struct {
	sources   []domain.Source
	fetcher   Fetcher
	news      NewsStore
	push      PushStore
	txManager TransactionManager
	notifier  Notifier
	logger    *slog.Logger
	config    config.PublishConfig
}

func NewPublisher(
	sources []domain.Source,
	fetcher Fetcher,
	news NewsStore,
	push PushStore,
	txManager TransactionManager,
	notifier Notifier,
	logger *slog.Logger,
	cfg config.PublishConfig,
) *Publisher {
	return &Publisher{
		sources:   sources,
		fetcher:   fetcher,
		news:      news,
		push:      push,
		txManager: txManager,
		notifier:  notifier,
		logger:    logger,
		config:    cfg,
	}
}

// Run executes one pass over all configured sources, then applies the
// global news retention cap. Rerunning against an unchanged upstream is a
// no-op: already-known external ids produce no inserts and no trim work.
func (p *Publisher) Run(ctx context.Context) (*domain.RunStats, error) {
	startTime := time.Now()
	p.logger.Info("starting publish run", "sources", len(p.sources))

	stats := &domain.RunStats{Sources: len(p.sources)}

	for _, src := range p.sources {
		srcStats := p.processSource(ctx, src)
		stats.Novel += srcStats.Novel
		stats.Pushed += srcStats.Pushed
		stats.Errors += srcStats.Errors
	}

	trimmed, err := p.trimNews(ctx)
	if err != nil {
		p.logger.Error("news retention trim failed", "error", err)
		stats.Errors++
	}
	stats.NewsTrimmed = int(trimmed)

	stats.Duration = time.Since(startTime)

	p.logger.Info("publish run completed",
		"novel", stats.Novel,
		"pushed", stats.Pushed,
		"errors", stats.Errors,
		"news_trimmed", stats.NewsTrimmed,
		"duration", stats.Duration,
	)

	return stats, nil
}

// processSource handles one source to completion. A panic inside is
// recovered and charged to this source only.
func (p *Publisher) processSource(ctx context.Context, src domain.Source) (stats domain.SourceStats) {
	stats.SourceID = src.ID
	logger := p.logger.With("source", src.ID, "source_name", src.Name)

	defer func() {
		if r := recover(); r != nil {
			stats.Errors++
			stats.Skipped = true
			logger.Error("source processing panicked",
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	known, ok := p.knownExternalIDs(ctx, src.ID, logger)
	if !ok {
		stats.Skipped = true
		return stats
	}

	result, err := p.fetcher.Fetch(ctx, src.ID)
	if err != nil {
		logger.Error("fetch failed, skipping source", "error", err)
		stats.Errors++
		stats.Skipped = true
		return stats
	}
	if result.Status != domain.StatusSuccess {
		logger.Error("fetch did not report success, skipping source", "status", result.Status)
		stats.Errors++
		stats.Skipped = true
		return stats
	}

	stats.Fetched = len(result.Items)

	novel := novelItems(result.Items, known)
	stats.Novel = len(novel)
	if len(novel) == 0 {
		logger.Debug("no novel items")
		return stats
	}

	logger.Info("novel items found", "count", len(novel))

	for _, item := range novel {
		newsItem := &domain.NewsItem{
			ExternalID: *item.ExternalID,
			Title:      item.Title,
			URL:        item.URL,
			SourceID:   src.ID,
		}

		newsID, err := p.news.InsertOne(ctx, newsItem)
		if err != nil {
			logger.Error("insert news item failed",
				"external_id", newsItem.ExternalID,
				"error", err,
			)
			stats.Errors++
			continue
		}
		newsItem.ID = newsID
		stats.Inserted++

		rec := &domain.PushRecord{
			SourceID:   src.ID,
			SourceName: src.Name,
			NewsInfoID: newsID,
			NewsType:   p.config.NewsType,
			Status:     0,
		}

		pushID, err := p.push.InsertOne(ctx, rec)
		if err != nil {
			logger.Error("insert push record failed",
				"news_info_id", newsID,
				"error", err,
			)
			stats.Errors++
			continue
		}
		rec.ID = pushID
		stats.Pushed++

		if p.notifier != nil {
			if err := p.notifier.Notify(ctx, newsItem, rec); err != nil {
				logger.Warn("notify failed", "news_info_id", newsID, "error", err)
			}
		}
	}

	// Retention only runs when this cycle actually delivered something;
	// repeated runs against an unchanged upstream stay write-free.
	if stats.Pushed > 0 {
		removed, err := p.push.DeleteExcessBySource(ctx, src.ID, p.config.PushKeepPerSrc)
		if err != nil {
			logger.Error("push retention trim failed", "error", err)
			stats.Errors++
		} else if removed > 0 {
			logger.Info("trimmed push records", "removed", removed, "kept", p.config.PushKeepPerSrc)
		}
	}

	logger.Info("source processed",
		"fetched", stats.Fetched,
		"novel", stats.Novel,
		"pushed", stats.Pushed,
		"errors", stats.Errors,
	)

	return stats
}

// knownExternalIDs loads the recent dedup window for a source. A query
// failure is fail-open by default: better to risk a duplicate insert than to
// skip publishing entirely. With fail-open disabled the source is skipped.
func (p *Publisher) knownExternalIDs(ctx context.Context, sourceID string, logger *slog.Logger) (map[string]struct{}, bool) {
	items, err := p.news.LatestBySource(ctx, sourceID, p.config.LookbackWindow)
	if err != nil {
		if p.config.FailOpen() {
			logger.Warn("known-ids lookup failed, proceeding with empty window", "error", err)
			return map[string]struct{}{}, true
		}
		logger.Error("known-ids lookup failed, skipping source", "error", err)
		return nil, false
	}

	known := make(map[string]struct{}, len(items))
	for _, item := range items {
		known[item.ExternalID] = struct{}{}
	}
	return known, true
}

// novelItems keeps fetch items whose id is present and not in the known
// window, preserving fetch order. Items without an id are dropped without
// comment: malformed upstream payloads are expected.
func novelItems(items []domain.FetchItem, known map[string]struct{}) []domain.FetchItem {
	var novel []domain.FetchItem
	for _, item := range items {
		if item.ExternalID == nil {
			continue
		}
		if _, exists := known[*item.ExternalID]; exists {
			continue
		}
		novel = append(novel, item)
	}
	return novel
}

// trimNews applies the global news cap inside one transaction so the count,
// cutoff and delete see a consistent table.
func (p *Publisher) trimNews(ctx context.Context) (int64, error) {
	var trimmed int64
	err := p.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		n, err := p.news.TrimToMax(txCtx, p.config.MaxNewsRecords)
		if err != nil {
			return fmt.Errorf("trim news: %w", err)
		}
		trimmed = n
		return nil
	})
	return trimmed, err
}

// ResetPush wipes every push record for a source and type. Administrative
// escape hatch, never called during reconciliation.
func (p *Publisher) ResetPush(ctx context.Context, sourceID, newsType string) (int64, error) {
	removed, err := p.push.DeleteByTypeAndSource(ctx, sourceID, newsType)
	if err != nil {
		return 0, fmt.Errorf("reset push records: %w", err)
	}
	p.logger.Info("push records reset",
		"source", sourceID,
		"news_type", newsType,
		"removed", removed,
	)
	return removed, nil
}
