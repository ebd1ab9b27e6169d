package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_pusher/internal/config"
	"news_pusher/internal/domain"
	"news_pusher/internal/service/mocks"
)

type PublisherTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	news      *mocks.MockNewsStore
	push      *mocks.MockPushStore
	fetcher   *mocks.MockFetcher
	txManager *mocks.MockTransactionManager
	notifier  *mocks.MockNotifier

	cfg    config.PublishConfig
	logger *slog.Logger
}

func (s *PublisherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.news = mocks.NewMockNewsStore(s.ctrl)
	s.push = mocks.NewMockPushStore(s.ctrl)
	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	failOpen := true
	s.cfg = config.PublishConfig{
		NewsType:         "news",
		LookbackWindow:   90,
		MaxNewsRecords:   5000,
		PushKeepPerSrc:   30,
		FailOpenOnLookup: &failOpen,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func (s *PublisherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPublisherTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

func (s *PublisherTestSuite) newPublisher(sources []domain.Source, notifier Notifier) *Publisher {
	return NewPublisher(sources, s.fetcher, s.news, s.push, s.txManager, notifier, s.logger, s.cfg)
}

// expectNewsTrim covers the global retention pass that closes every run.
func (s *PublisherTestSuite) expectNewsTrim(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.news.EXPECT().TrimToMax(ctx, 5000).Return(int64(0), nil)
}

func ptr(s string) *string { return &s }

func knownRows(ids ...string) []domain.NewsItem {
	rows := make([]domain.NewsItem, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, domain.NewsItem{ExternalID: id})
	}
	return rows
}

func (s *PublisherTestSuite) TestRun_NovelItemsInsertedAndPushed() {
	ctx := context.Background()
	src := domain.Source{ID: "s1", Name: "Source One"}
	pub := s.newPublisher([]domain.Source{src}, nil)

	s.news.EXPECT().LatestBySource(ctx, "s1", 90).Return([]domain.NewsItem{}, nil)
	s.fetcher.EXPECT().Fetch(ctx, "s1").Return(&domain.FetchResult{
		Status: domain.StatusSuccess,
		Items: []domain.FetchItem{
			{ExternalID: ptr("a1"), Title: "first", URL: "https://example.com/1"},
			{ExternalID: ptr("a2"), Title: "second", URL: "https://example.com/2"},
		},
	}, nil)

	gomock.InOrder(
		s.news.EXPECT().InsertOne(ctx, &domain.NewsItem{
			ExternalID: "a1", Title: "first", URL: "https://example.com/1", SourceID: "s1",
		}).Return(int64(100), nil),
		s.news.EXPECT().InsertOne(ctx, &domain.NewsItem{
			ExternalID: "a2", Title: "second", URL: "https://example.com/2", SourceID: "s1",
		}).Return(int64(101), nil),
	)
	s.push.EXPECT().InsertOne(ctx, &domain.PushRecord{
		SourceID: "s1", SourceName: "Source One", NewsInfoID: 100, NewsType: "news",
	}).Return(int64(200), nil)
	s.push.EXPECT().InsertOne(ctx, &domain.PushRecord{
		SourceID: "s1", SourceName: "Source One", NewsInfoID: 101, NewsType: "news",
	}).Return(int64(201), nil)

	s.push.EXPECT().DeleteExcessBySource(ctx, "s1", 30).Return(int64(0), nil)
	s.expectNewsTrim(ctx)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(2, stats.Novel)
	s.Equal(2, stats.Pushed)
	s.Equal(0, stats.Errors)
}

func (s *PublisherTestSuite) TestRun_SecondRunIsIdempotent() {
	ctx := context.Background()
	src := domain.Source{ID: "s1", Name: "Source One"}
	pub := s.newPublisher([]domain.Source{src}, nil)

	// Everything from the fetch is already in the known window: no inserts,
	// no push records, and crucially no retention trim for the source.
	s.news.EXPECT().LatestBySource(ctx, "s1", 90).Return(knownRows("a1", "a2"), nil)
	s.fetcher.EXPECT().Fetch(ctx, "s1").Return(&domain.FetchResult{
		Status: domain.StatusSuccess,
		Items: []domain.FetchItem{
			{ExternalID: ptr("a1"), Title: "first", URL: "https://example.com/1"},
			{ExternalID: ptr("a2"), Title: "second", URL: "https://example.com/2"},
		},
	}, nil)
	s.expectNewsTrim(ctx)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(0, stats.Novel)
	s.Equal(0, stats.Pushed)
	s.Equal(0, stats.Errors)
}

func (s *PublisherTestSuite) TestRun_NovelSetComputation() {
	ctx := context.Background()
	src := domain.Source{ID: "s1", Name: "Source One"}
	pub := s.newPublisher([]domain.Source{src}, nil)

	// Known window {"101","102"}; the fetch carries a known numeric id, a
	// novel one, a known string id and an item with no id at all. Only 103
	// survives.
	s.news.EXPECT().LatestBySource(ctx, "s1", 90).Return(knownRows("101", "102"), nil)
	s.fetcher.EXPECT().Fetch(ctx, "s1").Return(&domain.FetchResult{
		Status: domain.StatusSuccess,
		Items: []domain.FetchItem{
			{ExternalID: ptr("101"), Title: "known numeric"},
			{ExternalID: ptr("103"), Title: "novel"},
			{ExternalID: ptr("102"), Title: "known string"},
			{ExternalID: nil, Title: "malformed"},
		},
	}, nil)

	s.news.EXPECT().InsertOne(ctx, &domain.NewsItem{
		ExternalID: "103", Title: "novel", SourceID: "s1",
	}).Return(int64(7), nil)
	s.push.EXPECT().InsertOne(ctx, &domain.PushRecord{
		SourceID: "s1", SourceName: "Source One", NewsInfoID: 7, NewsType: "news",
	}).Return(int64(8), nil)
	s.push.EXPECT().DeleteExcessBySource(ctx, "s1", 30).Return(int64(2), nil)
	s.expectNewsTrim(ctx)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Novel)
	s.Equal(1, stats.Pushed)
}

func (s *PublisherTestSuite) TestRun_FetchFailureDoesNotStopNextSource() {
	ctx := context.Background()
	sources := []domain.Source{
		{ID: "s1", Name: "Broken"},
		{ID: "s2", Name: "Healthy"},
	}
	pub := s.newPublisher(sources, nil)

	s.news.EXPECT().LatestBySource(ctx, "s1", 90).Return([]domain.NewsItem{}, nil)
	s.fetcher.EXPECT().Fetch(ctx, "s1").Return(nil, errors.New("connection refused"))

	s.news.EXPECT().LatestBySource(ctx, "s2", 90).Return([]domain.NewsItem{}, nil)
	s.fetcher.EXPECT().Fetch(ctx, "s2").Return(&domain.FetchResult{
		Status: domain.StatusSuccess,
		Items:  []domain.FetchItem{{ExternalID: ptr("x1"), Title: "ok"}},
	}, nil)
	s.news.EXPECT().InsertOne(ctx, gomock.Any()).Return(int64(1), nil)
	s.push.EXPECT().InsertOne(ctx, gomock.Any()).Return(int64(2), nil)
	s.push.EXPECT().DeleteExcessBySource(ctx, "s2", 30).Return(int64(0), nil)
	s.expectNewsTrim(ctx)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Pushed)
	s.Equal(1, stats.Errors)
}

func (s *PublisherTestSuite) TestRun_PanicInOneSourceOnlyFailsThatSource() {
	ctx := context.Background()
	sources := []domain.Source{
		{ID: "s1", Name: "Broken"},
		{ID: "s2", Name: "Healthy"},
	}
	pub := s.newPublisher(sources, nil)

	// A panic while processing the first source is recovered and charged to
	// that source alone; the second source runs to completion.
	s.news.EXPECT().LatestBySource(ctx, "s1", 90).Return([]domain.NewsItem{}, nil)
	s.fetcher.EXPECT().Fetch(ctx, "s1").DoAndReturn(
		func(context.Context, string) (*domain.FetchResult, error) {
			panic("upstream returned garbage")
		},
	)

	s.news.EXPECT().LatestBySource(ctx, "s2", 90).Return([]domain.NewsItem{}, nil)
	s.fetcher.EXPECT().Fetch(ctx, "s2").Return(&domain.FetchResult{
		Status: domain.StatusSuccess,
		Items:  []domain.FetchItem{{ExternalID: ptr("x1"), Title: "ok"}},
	}, nil)
	s.news.EXPECT().InsertOne(ctx, gomock.Any()).Return(int64(1), nil)
	s.push.EXPECT().InsertOne(ctx, gomock.Any()).Return(int64(2), nil)
	s.push.EXPECT().DeleteExcessBySource(ctx, "s2", 30).Return(int64(0), nil)
	s.expectNewsTrim(ctx)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Pushed)
	s.Equal(1, stats.Errors)
}

func (s *PublisherTestSuite) TestRun_NonSuccessStatusSkipsSource() {
	ctx := context.Background()
	src := domain.Source{ID: "s1", Name: "Source One"}
	pub := s.newPublisher([]domain.Source{src}, nil)

	s.news.EXPECT().LatestBySource(ctx, "s1", 90).Return([]domain.NewsItem{}, nil)
	s.fetcher.EXPECT().Fetch(ctx, "s1").Return(&domain.FetchResult{
		Status: "error",
		Items:  []domain.FetchItem{{ExternalID: ptr("a1"), Title: "should not land"}},
	}, nil)
	s.expectNewsTrim(ctx)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(0, stats.Novel)
	s.Equal(1, stats.Errors)
}

func (s *PublisherTestSuite) TestRun_InsertFailureContinuesWithinSource() {
	ctx := context.Background()
	src := domain.Source{ID: "s1", Name: "Source One"}
	pub := s.newPublisher([]domain.Source{src}, nil)

	s.news.EXPECT().LatestBySource(ctx, "s1", 90).Return([]domain.NewsItem{}, nil)
	s.fetcher.EXPECT().Fetch(ctx, "s1").Return(&domain.FetchResult{
		Status: domain.StatusSuccess,
		Items: []domain.FetchItem{
			{ExternalID: ptr("bad"), Title: "fails"},
			{ExternalID: ptr("good"), Title: "lands"},
		},
	}, nil)

	s.news.EXPECT().InsertOne(ctx, &domain.NewsItem{
		ExternalID: "bad", Title: "fails", SourceID: "s1",
	}).Return(int64(0), errors.New("constraint violation"))
	s.news.EXPECT().InsertOne(ctx, &domain.NewsItem{
		ExternalID: "good", Title: "lands", SourceID: "s1",
	}).Return(int64(5), nil)
	s.push.EXPECT().InsertOne(ctx, &domain.PushRecord{
		SourceID: "s1", SourceName: "Source One", NewsInfoID: 5, NewsType: "news",
	}).Return(int64(6), nil)
	s.push.EXPECT().DeleteExcessBySource(ctx, "s1", 30).Return(int64(0), nil)
	s.expectNewsTrim(ctx)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(2, stats.Novel)
	s.Equal(1, stats.Pushed)
	s.Equal(1, stats.Errors)
}

func (s *PublisherTestSuite) TestRun_PushFailureSkipsTrim() {
	ctx := context.Background()
	src := domain.Source{ID: "s1", Name: "Source One"}
	pub := s.newPublisher([]domain.Source{src}, nil)

	s.news.EXPECT().LatestBySource(ctx, "s1", 90).Return([]domain.NewsItem{}, nil)
	s.fetcher.EXPECT().Fetch(ctx, "s1").Return(&domain.FetchResult{
		Status: domain.StatusSuccess,
		Items:  []domain.FetchItem{{ExternalID: ptr("a1"), Title: "t"}},
	}, nil)
	s.news.EXPECT().InsertOne(ctx, gomock.Any()).Return(int64(5), nil)
	s.push.EXPECT().InsertOne(ctx, gomock.Any()).Return(int64(0), errors.New("insert failed"))
	// No DeleteExcessBySource expectation: zero full successes means the
	// per-source trim must not be invoked.
	s.expectNewsTrim(ctx)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Novel)
	s.Equal(0, stats.Pushed)
	s.Equal(1, stats.Errors)
}

func (s *PublisherTestSuite) TestRun_LookupFailureFailsOpen() {
	ctx := context.Background()
	src := domain.Source{ID: "s1", Name: "Source One"}
	pub := s.newPublisher([]domain.Source{src}, nil)

	// Failed known-ids query is treated as an empty window: the fetch still
	// happens and everything it carries counts as novel.
	s.news.EXPECT().LatestBySource(ctx, "s1", 90).Return(nil, errors.New("query failed"))
	s.fetcher.EXPECT().Fetch(ctx, "s1").Return(&domain.FetchResult{
		Status: domain.StatusSuccess,
		Items:  []domain.FetchItem{{ExternalID: ptr("a1"), Title: "t"}},
	}, nil)
	s.news.EXPECT().InsertOne(ctx, gomock.Any()).Return(int64(1), nil)
	s.push.EXPECT().InsertOne(ctx, gomock.Any()).Return(int64(2), nil)
	s.push.EXPECT().DeleteExcessBySource(ctx, "s1", 30).Return(int64(0), nil)
	s.expectNewsTrim(ctx)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Pushed)
}

func (s *PublisherTestSuite) TestRun_LookupFailureFailsClosedWhenConfigured() {
	ctx := context.Background()
	failOpen := false
	s.cfg.FailOpenOnLookup = &failOpen
	src := domain.Source{ID: "s1", Name: "Source One"}
	pub := s.newPublisher([]domain.Source{src}, nil)

	s.news.EXPECT().LatestBySource(ctx, "s1", 90).Return(nil, errors.New("query failed"))
	// No fetch, no inserts: the source is skipped outright.
	s.expectNewsTrim(ctx)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(0, stats.Novel)
	s.Equal(0, stats.Pushed)
}

func (s *PublisherTestSuite) TestRun_NotifierReceivesEachPush() {
	ctx := context.Background()
	src := domain.Source{ID: "s1", Name: "Source One"}
	pub := s.newPublisher([]domain.Source{src}, s.notifier)

	s.news.EXPECT().LatestBySource(ctx, "s1", 90).Return([]domain.NewsItem{}, nil)
	s.fetcher.EXPECT().Fetch(ctx, "s1").Return(&domain.FetchResult{
		Status: domain.StatusSuccess,
		Items:  []domain.FetchItem{{ExternalID: ptr("a1"), Title: "t", URL: "u"}},
	}, nil)
	s.news.EXPECT().InsertOne(ctx, gomock.Any()).Return(int64(5), nil)
	s.push.EXPECT().InsertOne(ctx, gomock.Any()).Return(int64(6), nil)
	// A notify failure is logged and must not count against the item.
	s.notifier.EXPECT().Notify(ctx, gomock.Any(), gomock.Any()).Return(errors.New("broker gone"))
	s.push.EXPECT().DeleteExcessBySource(ctx, "s1", 30).Return(int64(0), nil)
	s.expectNewsTrim(ctx)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Pushed)
	s.Equal(0, stats.Errors)
}

func (s *PublisherTestSuite) TestRun_GlobalTrimReportsRemovals() {
	ctx := context.Background()
	pub := s.newPublisher(nil, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.news.EXPECT().TrimToMax(ctx, 5000).Return(int64(42), nil)

	stats, err := pub.Run(ctx)

	s.NoError(err)
	s.Equal(42, stats.NewsTrimmed)
}

func (s *PublisherTestSuite) TestResetPush() {
	ctx := context.Background()
	pub := s.newPublisher(nil, nil)

	s.push.EXPECT().DeleteByTypeAndSource(ctx, "s1", "news").Return(int64(12), nil)

	removed, err := pub.ResetPush(ctx, "s1", "news")

	s.NoError(err)
	s.Equal(int64(12), removed)
}

func TestNovelItems_PreservesFetchOrder(t *testing.T) {
	known := map[string]struct{}{"b": {}}
	items := []domain.FetchItem{
		{ExternalID: ptr("c")},
		{ExternalID: ptr("b")},
		{ExternalID: ptr("a")},
		{ExternalID: nil},
		{ExternalID: ptr("d")},
	}

	novel := novelItems(items, known)

	if len(novel) != 3 {
		t.Fatalf("expected 3 novel items, got %d", len(novel))
	}
	for i, want := range []string{"c", "a", "d"} {
		if *novel[i].ExternalID != want {
			t.Errorf("position %d: expected %q, got %q", i, want, *novel[i].ExternalID)
		}
	}
}
