package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"news_pusher/internal/domain"
)

// NewsStore persists news items and enforces the global retention cap.
type NewsStore struct {
	db *sqlx.DB
}

func NewNewsStore(db *sqlx.DB) *NewsStore {
	return &NewsStore{db: db}
}

// InsertOne inserts a single news item and returns the generated id. The
// creation timestamp is stamped here, not taken from the input.
func (s *NewsStore) InsertOne(ctx context.Context, item *domain.NewsItem) (int64, error) {
	query := `
		INSERT INTO news_infos (orig_id, title, url, source_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		item.ExternalID,
		item.Title,
		item.URL,
		item.SourceID,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// InsertBatch writes all items in one multi-row statement, sharing a single
// timestamp for the whole batch. An empty batch is a no-op.
func (s *NewsStore) InsertBatch(ctx context.Context, items []domain.NewsItem) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now()

	var sb strings.Builder
	sb.WriteString("INSERT INTO news_infos (orig_id, title, url, source_id, created_at) VALUES ")
	args := make([]interface{}, 0, len(items)*5)

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < 5; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*5 + j + 1))
		}
		sb.WriteString(")")
		args = append(args, item.ExternalID, item.Title, item.URL, item.SourceID, now)
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}

// LatestBySource returns up to limit most recent items for a source, newest
// first. An empty slice means no data; an error means the query failed —
// the caller's dedup policy depends on telling those apart.
func (s *NewsStore) LatestBySource(ctx context.Context, sourceID string, limit int) ([]domain.NewsItem, error) {
	query := `
		SELECT id, orig_id, title, url, source_id, created_at
		FROM news_infos
		WHERE source_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	items := []domain.NewsItem{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query, sourceID, limit)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// TrimToMax removes the oldest rows once the table exceeds maxRecords,
// keeping the newest maxRecords by creation order. Returns the number of
// rows removed; 0 when under the cap.
func (s *NewsStore) TrimToMax(ctx context.Context, maxRecords int) (int64, error) {
	ex := GetExecutor(ctx, s.db)

	var total int
	if err := sqlx.GetContext(ctx, ex, &total, "SELECT COUNT(*) FROM news_infos"); err != nil {
		return 0, err
	}

	if total <= maxRecords {
		return 0, nil
	}

	// The cutoff is the surrogate id of the maxRecords-th most recent row;
	// everything with a strictly smaller id goes.
	var cutoff int64
	err := sqlx.GetContext(ctx, ex, &cutoff, `
		SELECT id FROM news_infos
		ORDER BY created_at DESC, id DESC
		LIMIT 1 OFFSET $1`,
		maxRecords-1,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	res, err := ex.ExecContext(ctx, "DELETE FROM news_infos WHERE id < $1", cutoff)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
