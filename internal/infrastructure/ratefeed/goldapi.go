// Package ratefeed fetches live gold quotes and derives the per-purity table.
package ratefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"heritage_gold/internal/config"
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/logging"
	"heritage_gold/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrFeedNotConfigured = errors.New("rate feed not configured")
	ErrFeedStatus        = errors.New("rate feed returned non-200 status")
	ErrFeedPayload       = errors.New("rate feed payload invalid")
)

var (
	ratio22K     = decimal.NewFromInt(22).Div(decimal.NewFromInt(24))
	ratio18K     = decimal.NewFromInt(18).Div(decimal.NewFromInt(24))
	silverFactor = decimal.NewFromInt(80)
)

// quote is the subset of the XAU/INR response we read.
type quote struct {
	PriceGram24K float64 `json:"price_gram_24k"`
	Timestamp    int64   `json:"timestamp"`
}

// GoldAPIClient reads an XAU quote in the local currency and derives 22K,
// 18K and an indicative silver rate from the 24K gram price.
type GoldAPIClient struct {
	url    string
	apiKey string
	client *http.Client
}

var _ interfaces.IRateFeed = (*GoldAPIClient)(nil)

func NewGoldAPIClient(cfg config.RatesConfig) *GoldAPIClient {
	timeout := cfg.FeedTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoldAPIClient{
		url:    cfg.FeedURL,
		apiKey: cfg.FeedAPIKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *GoldAPIClient) Fetch(ctx context.Context) (entities.RateTable, error) {
	if c.url == "" {
		return entities.RateTable{}, ErrFeedNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return entities.RateTable{}, err
	}
	req.Header.Set("x-access-token", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logging.Warn("[rates][feed] request failed", zap.Error(err))
		return entities.RateTable{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.RateTable{}, err
	}
	if resp.StatusCode != http.StatusOK {
		logging.Warn("[rates][feed] non-200 response", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return entities.RateTable{}, fmt.Errorf("%w: %d", ErrFeedStatus, resp.StatusCode)
	}

	var q quote
	if err := json.Unmarshal(body, &q); err != nil {
		return entities.RateTable{}, fmt.Errorf("%w: %v", ErrFeedPayload, err)
	}
	if q.PriceGram24K <= 0 {
		return entities.RateTable{}, ErrFeedPayload
	}

	table := Derive(q.PriceGram24K)
	if q.Timestamp > 0 {
		table.Timestamp = time.Unix(q.Timestamp, 0).UTC()
	}
	return table, nil
}

// Derive builds a live rate table from the 24K gram price. Every rate is
// rounded to two decimals.
func Derive(gold24K float64) entities.RateTable {
	g := decimal.NewFromFloat(gold24K)
	return entities.RateTable{
		Gold24K: g.Round(2).InexactFloat64(),
		Gold22K: g.Mul(ratio22K).Round(2).InexactFloat64(),
		Gold18K: g.Mul(ratio18K).Round(2).InexactFloat64(),
		Silver:  g.Div(silverFactor).Round(2).InexactFloat64(),
		Source:  entities.RateSourceLive,
	}
}
