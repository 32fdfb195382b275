package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"heritage_gold/internal/domain/entities"
	mock_interfaces "heritage_gold/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestRateProvider(t *testing.T) (*RateProvider, *mock_interfaces.MockIRateFeed, *mock_interfaces.MockIRateRepository, *fakeClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	feed := mock_interfaces.NewMockIRateFeed(ctrl)
	repo := mock_interfaces.NewMockIRateRepository(ctrl)
	p := NewRateProvider(feed, repo, RateProviderConfig{RefreshInterval: 5 * time.Minute, MaxStaleness: time.Hour})
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	p.now = clock.now
	return p, feed, repo, clock
}

func liveTable(at time.Time) entities.RateTable {
	return entities.RateTable{Gold24K: 7200, Gold22K: 6600, Gold18K: 5400, Silver: 90, Timestamp: at}
}

func TestRateProvider_LiveFetchIsPersistedAndCached(t *testing.T) {
	p, feed, repo, clock := newTestRateProvider(t)

	if p.Snapshot() != nil {
		t.Fatalf("expected nil snapshot before first load")
	}

	feed.EXPECT().Fetch(gomock.Any()).Return(liveTable(clock.t), nil).Times(1)
	repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.RateTable{})).DoAndReturn(
		func(_ context.Context, table entities.RateTable) error {
			if table.Source != entities.RateSourceLive {
				t.Fatalf("expected live source, got %s", table.Source)
			}
			return nil
		},
	)

	got := p.Current(context.Background(), LastKnownGood)
	if got.Gold22K != 6600 || got.Source != entities.RateSourceLive {
		t.Fatalf("unexpected table: %+v", got)
	}

	// inside the refresh interval the cache answers without the feed
	clock.t = clock.t.Add(4 * time.Minute)
	again := p.Current(context.Background(), LastKnownGood)
	if again.Gold22K != 6600 {
		t.Fatalf("expected cached table, got %+v", again)
	}

	again.Gold22K = 1
	if p.Snapshot().Gold22K != 6600 {
		t.Fatalf("callers must not be able to mutate the cache")
	}
}

func TestRateProvider_FetchNowBypassesCache(t *testing.T) {
	p, feed, repo, clock := newTestRateProvider(t)

	feed.EXPECT().Fetch(gomock.Any()).Return(liveTable(clock.t), nil).Times(2)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	p.Current(context.Background(), LastKnownGood)
	p.Current(context.Background(), FetchNow)
}

func TestRateProvider_FallsBackToStoredSnapshot(t *testing.T) {
	p, feed, repo, clock := newTestRateProvider(t)

	stored := liveTable(clock.t.Add(-30 * time.Minute))
	stored.Source = entities.RateSourceLive
	feed.EXPECT().Fetch(gomock.Any()).Return(entities.RateTable{}, errors.New("timeout"))
	repo.EXPECT().Latest(gomock.Any()).Return(&stored, nil)

	got := p.Current(context.Background(), LastKnownGood)
	if got.Source != entities.RateSourceStored || got.Gold22K != 6600 {
		t.Fatalf("expected stored table, got %+v", got)
	}
}

func TestRateProvider_FallsBackToDefaults(t *testing.T) {
	cases := []struct {
		name   string
		stored *entities.RateTable
		err    error
	}{
		{name: "nothing stored"},
		{name: "storage error", err: errors.New("db")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, feed, repo, _ := newTestRateProvider(t)
			feed.EXPECT().Fetch(gomock.Any()).Return(entities.RateTable{}, errors.New("timeout"))
			repo.EXPECT().Latest(gomock.Any()).Return(tc.stored, tc.err)

			got := p.Current(context.Background(), FetchNow)
			if got == nil {
				t.Fatalf("expected a table")
			}
			if got.Source != entities.RateSourceDefault || got.Gold24K != DefaultGold24K || got.Gold22K != DefaultGold22K ||
				got.Gold18K != DefaultGold18K || got.Silver != DefaultSilver {
				t.Fatalf("unexpected default table: %+v", got)
			}
		})
	}
}

func TestRateProvider_InvalidFeedTableIsRejected(t *testing.T) {
	p, feed, repo, _ := newTestRateProvider(t)

	feed.EXPECT().Fetch(gomock.Any()).Return(entities.RateTable{Gold24K: -1}, nil)
	repo.EXPECT().Latest(gomock.Any()).Return(nil, nil)

	got := p.Current(context.Background(), FetchNow)
	if got.Source != entities.RateSourceDefault {
		t.Fatalf("expected default source, got %s", got.Source)
	}
}

func TestRateProvider_StalenessBound(t *testing.T) {
	t.Run("recent cache survives a failed refresh", func(t *testing.T) {
		p, feed, repo, clock := newTestRateProvider(t)
		feed.EXPECT().Fetch(gomock.Any()).Return(liveTable(clock.t), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		p.Current(context.Background(), FetchNow)

		clock.t = clock.t.Add(30 * time.Minute)
		feed.EXPECT().Fetch(gomock.Any()).Return(entities.RateTable{}, errors.New("timeout"))

		got := p.Current(context.Background(), LastKnownGood)
		if got.Source != entities.RateSourceLive {
			t.Fatalf("expected cached live table, got %+v", got)
		}
	})

	t.Run("stale cache is not served", func(t *testing.T) {
		p, feed, repo, clock := newTestRateProvider(t)
		feed.EXPECT().Fetch(gomock.Any()).Return(liveTable(clock.t), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		p.Current(context.Background(), FetchNow)

		clock.t = clock.t.Add(2 * time.Hour)
		feed.EXPECT().Fetch(gomock.Any()).Return(entities.RateTable{}, errors.New("timeout"))
		repo.EXPECT().Latest(gomock.Any()).Return(nil, nil)

		got := p.Current(context.Background(), LastKnownGood)
		if got.Source != entities.RateSourceDefault {
			t.Fatalf("expected defaults after staleness bound, got %+v", got)
		}
	})

	t.Run("stale stored snapshot is not served", func(t *testing.T) {
		p, feed, repo, clock := newTestRateProvider(t)
		saved := liveTable(clock.t)
		saved.Source = entities.RateSourceLive
		feed.EXPECT().Fetch(gomock.Any()).Return(saved, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		p.Current(context.Background(), FetchNow)

		clock.t = clock.t.Add(6 * time.Hour)
		feed.EXPECT().Fetch(gomock.Any()).Return(entities.RateTable{}, errors.New("timeout"))
		repo.EXPECT().Latest(gomock.Any()).Return(&saved, nil)

		got := p.Current(context.Background(), LastKnownGood)
		if got.Source != entities.RateSourceDefault || got.Gold22K != DefaultGold22K {
			t.Fatalf("expected defaults instead of a 6h old snapshot, got %+v", got)
		}
	})
}

func TestRateProvider_Override(t *testing.T) {
	t.Run("invalid table", func(t *testing.T) {
		p, _, _, _ := newTestRateProvider(t)
		for _, table := range []entities.RateTable{{Gold22K: -5}, {}} {
			if _, err := p.Override(context.Background(), table); !errors.Is(err, ErrInvalidRates) {
				t.Fatalf("expected ErrInvalidRates, got %v", err)
			}
		}
		if p.Snapshot() != nil {
			t.Fatalf("cache must stay empty")
		}
	})

	t.Run("persist error", func(t *testing.T) {
		p, _, repo, _ := newTestRateProvider(t)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := p.Override(context.Background(), entities.RateTable{Gold24K: 8000, Gold22K: 7300})
		if !errors.Is(err, ErrRatePersistFailed) {
			t.Fatalf("expected ErrRatePersistFailed, got %v", err)
		}
		if p.Snapshot() != nil {
			t.Fatalf("cache must stay empty")
		}
	})

	t.Run("success", func(t *testing.T) {
		p, _, repo, clock := newTestRateProvider(t)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := p.Override(context.Background(), entities.RateTable{Gold24K: 8000, Gold22K: 7300, Source: entities.RateSourceLive})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Source != entities.RateSourceManual || !got.Timestamp.Equal(clock.t) {
			t.Fatalf("unexpected override result: %+v", got)
		}

		// the override is served without touching the feed
		if cur := p.Current(context.Background(), LastKnownGood); cur.Gold22K != 7300 {
			t.Fatalf("expected override to be current, got %+v", cur)
		}
	})
}

func TestRateProvider_RunStopsOnCancel(t *testing.T) {
	p, feed, repo, clock := newTestRateProvider(t)
	feed.EXPECT().Fetch(gomock.Any()).Return(liveTable(clock.t), nil).MinTimes(1)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
	if p.Snapshot() == nil {
		t.Fatalf("expected an initial load before the loop")
	}
}
