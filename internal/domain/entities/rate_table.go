package entities

import (
	"errors"
	"time"
)

var ErrInvalidRateTable = errors.New("invalid rate table")

// RateSource tells where a rate snapshot came from.
type RateSource string

const (
	RateSourceLive    RateSource = "live"
	RateSourceStored  RateSource = "stored"
	RateSourceManual  RateSource = "manual"
	RateSourceDefault RateSource = "default"
)

// RateTable is a point-in-time snapshot of metal prices per gram.
//
// Storage model (DynamoDB):
//   - PK: id (snapshot id), newest snapshot found by timestamp
type RateTable struct {
	Gold24K   float64    `json:"gold_24k"`
	Gold22K   float64    `json:"gold_22k"`
	Gold18K   float64    `json:"gold_18k"`
	Silver    float64    `json:"silver"`
	Timestamp time.Time  `json:"timestamp"`
	Source    RateSource `json:"source"`
}

func (r RateTable) Validate() error {
	if r.Gold24K < 0 || r.Gold22K < 0 || r.Gold18K < 0 || r.Silver < 0 {
		return ErrInvalidRateTable
	}
	return nil
}

// Age is measured against now; a zero timestamp is treated as infinitely old.
func (r RateTable) Age(now time.Time) time.Duration {
	if r.Timestamp.IsZero() {
		return time.Duration(1<<63 - 1)
	}
	return now.Sub(r.Timestamp)
}
