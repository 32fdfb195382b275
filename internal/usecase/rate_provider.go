package usecase

import (
	"context"
	"errors"
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/logging"
	"heritage_gold/internal/usecase/interfaces"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidRates      = errors.New("invalid rate table")
	ErrRatePersistFailed = errors.New("could not store rate table")
)

// RatePolicy selects how Current treats the cached table.
type RatePolicy int

const (
	// LastKnownGood serves the cache while it is younger than the refresh interval.
	LastKnownGood RatePolicy = iota
	// FetchNow always asks the feed first.
	FetchNow
)

// Built-in rates used when neither the feed nor storage can answer.
const (
	DefaultGold24K = 7500.0
	DefaultGold22K = 6875.0
	DefaultGold18K = 5625.0
	DefaultSilver  = 95.0
)

func DefaultRateTable(now time.Time) entities.RateTable {
	return entities.RateTable{
		Gold24K:   DefaultGold24K,
		Gold22K:   DefaultGold22K,
		Gold18K:   DefaultGold18K,
		Silver:    DefaultSilver,
		Timestamp: now,
		Source:    entities.RateSourceDefault,
	}
}

// IRateProvider is the single source of rate tables for every consumer.
type IRateProvider interface {
	// Current never fails: it degrades from the feed to the stored snapshot
	// to built-in defaults. The returned table is never nil.
	Current(ctx context.Context, policy RatePolicy) *entities.RateTable
	// Snapshot returns the cached table without blocking, or nil before the
	// first load.
	Snapshot() *entities.RateTable
	Override(ctx context.Context, table entities.RateTable) (entities.RateTable, error)
}

type RateProviderConfig struct {
	RefreshInterval time.Duration
	MaxStaleness    time.Duration
}

type RateProvider struct {
	feed interfaces.IRateFeed
	repo interfaces.IRateRepository
	cfg  RateProviderConfig
	now  func() time.Time

	mu       sync.RWMutex
	cached   *entities.RateTable
	loadedAt time.Time
}

var _ IRateProvider = (*RateProvider)(nil)

func NewRateProvider(feed interfaces.IRateFeed, repo interfaces.IRateRepository, cfg RateProviderConfig) *RateProvider {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 5 * time.Minute
	}
	if cfg.MaxStaleness <= 0 {
		cfg.MaxStaleness = time.Hour
	}
	return &RateProvider{feed: feed, repo: repo, cfg: cfg, now: time.Now}
}

func (p *RateProvider) Current(ctx context.Context, policy RatePolicy) *entities.RateTable {
	if policy == LastKnownGood {
		p.mu.RLock()
		fresh := p.cached != nil && p.now().Sub(p.loadedAt) < p.cfg.RefreshInterval
		cached := p.cached
		p.mu.RUnlock()
		if fresh {
			return copyTable(cached)
		}
	}
	return p.refresh(ctx)
}

func (p *RateProvider) Snapshot() *entities.RateTable {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.cached == nil {
		return nil
	}
	return copyTable(p.cached)
}

// Override stores a manually entered table and makes it current.
func (p *RateProvider) Override(ctx context.Context, table entities.RateTable) (entities.RateTable, error) {
	if err := table.Validate(); err != nil {
		return entities.RateTable{}, ErrInvalidRates
	}
	if table.Gold24K == 0 && table.Gold22K == 0 && table.Gold18K == 0 {
		return entities.RateTable{}, ErrInvalidRates
	}
	table.Timestamp = p.now().UTC()
	table.Source = entities.RateSourceManual

	if err := p.repo.Save(ctx, table); err != nil {
		logging.Error("[rates][usecase] override persist failed", zap.Error(err))
		return entities.RateTable{}, errors.Join(ErrRatePersistFailed, err)
	}
	p.store(table)
	logging.Info("[rates][usecase] override applied", zap.Float64("gold_22k", table.Gold22K))
	return table, nil
}

// Run refreshes the cache immediately and then on every refresh interval
// until ctx is cancelled.
func (p *RateProvider) Run(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.RefreshInterval)
	defer ticker.Stop()

	p.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			logging.Info("[rates][usecase] refresh loop stopped")
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *RateProvider) refresh(ctx context.Context) *entities.RateTable {
	now := p.now().UTC()

	live, err := p.feed.Fetch(ctx)
	if err == nil {
		err = live.Validate()
	}
	if err == nil {
		if live.Timestamp.IsZero() {
			live.Timestamp = now
		}
		live.Source = entities.RateSourceLive
		if saveErr := p.repo.Save(ctx, live); saveErr != nil {
			logging.Warn("[rates][usecase] persist live rates failed", zap.Error(saveErr))
		}
		p.store(live)
		return copyTable(&live)
	}
	logging.Warn("[rates][usecase] feed unavailable", zap.Error(err))

	p.mu.RLock()
	cached := p.cached
	p.mu.RUnlock()
	if cached != nil && cached.Age(now) <= p.cfg.MaxStaleness {
		p.touch()
		return copyTable(cached)
	}

	stored, err := p.repo.Latest(ctx)
	if err != nil {
		logging.Warn("[rates][usecase] stored rates unavailable", zap.Error(err))
	}
	if err == nil && stored != nil && stored.Age(now) > p.cfg.MaxStaleness {
		logging.Warn("[rates][usecase] stored rates too old", zap.Duration("age", stored.Age(now)))
		stored = nil
	}
	if err == nil && stored != nil {
		table := *stored
		table.Source = entities.RateSourceStored
		p.store(table)
		return copyTable(&table)
	}

	logging.Warn("[rates][usecase] serving default rates")
	def := DefaultRateTable(now)
	p.store(def)
	return copyTable(&def)
}

func (p *RateProvider) store(t entities.RateTable) {
	p.mu.Lock()
	p.cached = &t
	p.loadedAt = p.now()
	p.mu.Unlock()
}

func (p *RateProvider) touch() {
	p.mu.Lock()
	p.loadedAt = p.now()
	p.mu.Unlock()
}

func copyTable(t *entities.RateTable) *entities.RateTable {
	c := *t
	return &c
}
