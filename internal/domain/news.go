package domain

import "time"

// NewsItem is one stored news row. ExternalID is whatever the origin sent
// as its item id — format is inconsistent (may contain non-ASCII text) and
// it is only unique together with SourceID within the recent window.
type NewsItem struct {
	ID         int64     `db:"id"`
	ExternalID string    `db:"orig_id"`
	Title      string    `db:"title"`
	URL        string    `db:"url"`
	SourceID   string    `db:"source_id"`
	CreatedAt  time.Time `db:"created_at"`
}

// PushRecord marks a NewsItem as queued for downstream delivery. It is
// created only after the referenced NewsItem insert succeeded; status
// semantics are left to the consumers (0 = not yet delivered).
type PushRecord struct {
	ID         int64     `db:"id"`
	SourceID   string    `db:"source_id"`
	SourceName string    `db:"source_name"`
	NewsInfoID int64     `db:"news_info_id"`
	NewsType   string    `db:"news_type"`
	Status     int       `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

// Source is one configured upstream origin. Loaded once at startup and
// immutable for the run.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
