package repository

import (
	"context"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/usecase/interfaces"
)

const (
	defaultRatesTableName = "gold_rates"
	latestRateID          = "latest"
)

type rateSnapshotItem struct {
	ID        string  `dynamodbav:"id"`
	Gold24K   float64 `dynamodbav:"gold_24k"`
	Gold22K   float64 `dynamodbav:"gold_22k"`
	Gold18K   float64 `dynamodbav:"gold_18k"`
	Silver    float64 `dynamodbav:"silver"`
	Timestamp string  `dynamodbav:"timestamp"`
	Source    string  `dynamodbav:"source"`
}

// RateDynamoRepository keeps a history of rate tables plus a "latest" row.
//
// Table requirements:
//   - PK: id (string); history rows use the snapshot timestamp as id
type RateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRateRepository = (*RateDynamoRepository)(nil)

func NewRateDynamoRepository(ddb DynamoAPI, table string) *RateDynamoRepository {
	return &RateDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "RATES_TABLE", defaultRatesTableName),
	}
}

func (r *RateDynamoRepository) Save(ctx context.Context, t entities.RateTable) error {
	row := toRateSnapshotItem(t)
	row.ID = "snapshot#" + row.Timestamp
	if err := put(ctx, r.ddb, r.tableName, row); err != nil {
		return err
	}
	row.ID = latestRateID
	return put(ctx, r.ddb, r.tableName, row)
}

func (r *RateDynamoRepository) Latest(ctx context.Context) (*entities.RateTable, error) {
	var row rateSnapshotItem
	found, err := getByID(ctx, r.ddb, r.tableName, latestRateID, &row)
	if err != nil || !found {
		return nil, err
	}
	t := fromRateSnapshotItem(row)
	return &t, nil
}

func toRateSnapshotItem(t entities.RateTable) rateSnapshotItem {
	return rateSnapshotItem{
		Gold24K:   t.Gold24K,
		Gold22K:   t.Gold22K,
		Gold18K:   t.Gold18K,
		Silver:    t.Silver,
		Timestamp: formatTime(t.Timestamp),
		Source:    string(t.Source),
	}
}

func fromRateSnapshotItem(it rateSnapshotItem) entities.RateTable {
	return entities.RateTable{
		Gold24K:   it.Gold24K,
		Gold22K:   it.Gold22K,
		Gold18K:   it.Gold18K,
		Silver:    it.Silver,
		Timestamp: parseTime(it.Timestamp),
		Source:    entities.RateSource(it.Source),
	}
}
