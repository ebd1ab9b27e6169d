package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"news_pusher/internal/domain"
)

// PushStore persists push records and enforces per-source retention.
type PushStore struct {
	db *sqlx.DB
}

func NewPushStore(db *sqlx.DB) *PushStore {
	return &PushStore{db: db}
}

// InsertOne inserts a single push record and returns the generated id.
// Status 0 is the "not yet delivered" default and needs no special casing
// here, the zero value already is 0.
func (s *PushStore) InsertOne(ctx context.Context, rec *domain.PushRecord) (int64, error) {
	query := `
		INSERT INTO pushinfo_latest (source_id, source_name, news_info_id, news_type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		rec.SourceID,
		rec.SourceName,
		rec.NewsInfoID,
		rec.NewsType,
		rec.Status,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// InsertBatch writes all records in one multi-row statement with a shared
// timestamp. An empty batch is a no-op.
func (s *PushStore) InsertBatch(ctx context.Context, recs []domain.PushRecord) error {
	if len(recs) == 0 {
		return nil
	}

	now := time.Now()

	var sb strings.Builder
	sb.WriteString("INSERT INTO pushinfo_latest (source_id, source_name, news_info_id, news_type, status, created_at) VALUES ")
	args := make([]interface{}, 0, len(recs)*6)

	for i, rec := range recs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < 6; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*6 + j + 1))
		}
		sb.WriteString(")")
		args = append(args, rec.SourceID, rec.SourceName, rec.NewsInfoID, rec.NewsType, rec.Status, now)
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}

// ByType returns all push records carrying the given type tag.
func (s *PushStore) ByType(ctx context.Context, newsType string) ([]domain.PushRecord, error) {
	query := `
		SELECT id, source_id, source_name, news_info_id, news_type, status, created_at
		FROM pushinfo_latest
		WHERE news_type = $1
		ORDER BY created_at DESC, id DESC`

	recs := []domain.PushRecord{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &recs, query, newsType)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// DeleteByTypeAndSource removes every record matching the type tag and
// source. Administrative reset, not part of the reconciliation path.
func (s *PushStore) DeleteByTypeAndSource(ctx context.Context, sourceID, newsType string) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM pushinfo_latest WHERE news_type = $1 AND source_id = $2",
		newsType, sourceID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteExcessBySource keeps the keep most-recently-created records for a
// source and deletes the rest. Returns the number of rows removed.
func (s *PushStore) DeleteExcessBySource(ctx context.Context, sourceID string, keep int) (int64, error) {
	query := `
		DELETE FROM pushinfo_latest
		WHERE source_id = $1 AND id NOT IN (
			SELECT id FROM pushinfo_latest
			WHERE source_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		)`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, sourceID, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
