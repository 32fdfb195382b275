package repository

import (
	"context"
	"sort"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultItemsTableName = "jewellery_items"

type jewelleryItem struct {
	ID                string   `dynamodbav:"id"`
	Name              string   `dynamodbav:"name"`
	Description       string   `dynamodbav:"description"`
	Type              string   `dynamodbav:"type"`
	Occasion          string   `dynamodbav:"occasion"`
	Gender            string   `dynamodbav:"gender"`
	Purity            string   `dynamodbav:"purity"`
	WeightMin         float64  `dynamodbav:"weight_min"`
	WeightMax         float64  `dynamodbav:"weight_max"`
	LabourCostPerGram float64  `dynamodbav:"labour_cost_per_gram"`
	MakingComplexity  string   `dynamodbav:"making_complexity"`
	Images            []string `dynamodbav:"images,omitempty"`
	IsFeatured        bool     `dynamodbav:"is_featured"`
	CreatedAt         string   `dynamodbav:"created_at"`
}

// ItemDynamoRepository persists catalogue items in DynamoDB.
//
// Table requirements:
//   - PK: id (string), the item id
//
// The catalogue is small, so List scans and filters in process.
type ItemDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IItemRepository = (*ItemDynamoRepository)(nil)

func NewItemDynamoRepository(ddb DynamoAPI, table string) *ItemDynamoRepository {
	return &ItemDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *ItemDynamoRepository) Create(ctx context.Context, item entities.Item) (entities.Item, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toJewelleryItem(item)); err != nil {
		return entities.Item{}, err
	}
	return item, nil
}

func (r *ItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.Item, error) {
	var it jewelleryItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Item{}, err
	}
	return fromJewelleryItem(it), nil
}

// List returns up to limit items matching filter, in item id order.
func (r *ItemDynamoRepository) List(ctx context.Context, filter entities.ItemFilter, limit int) ([]entities.Item, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var out []entities.Item
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var rows []jewelleryItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			it := fromJewelleryItem(row)
			if filter.Matches(it) {
				out = append(out, it)
			}
		}
	}

	// catalogue order is insertion order; the id breaks ties
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ItemID < out[j].ItemID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func toJewelleryItem(i entities.Item) jewelleryItem {
	return jewelleryItem{
		ID:                i.ItemID,
		Name:              i.Name,
		Description:       i.Description,
		Type:              i.Type,
		Occasion:          i.Occasion,
		Gender:            i.Gender,
		Purity:            i.Purity,
		WeightMin:         i.WeightMin,
		WeightMax:         i.WeightMax,
		LabourCostPerGram: i.LabourCostPerGram,
		MakingComplexity:  i.MakingComplexity,
		Images:            i.Images,
		IsFeatured:        i.IsFeatured,
		CreatedAt:         formatTime(i.CreatedAt),
	}
}

func fromJewelleryItem(it jewelleryItem) entities.Item {
	return entities.Item{
		ItemID:            it.ID,
		Name:              it.Name,
		Description:       it.Description,
		Type:              it.Type,
		Occasion:          it.Occasion,
		Gender:            it.Gender,
		Purity:            it.Purity,
		WeightMin:         it.WeightMin,
		WeightMax:         it.WeightMax,
		LabourCostPerGram: it.LabourCostPerGram,
		MakingComplexity:  it.MakingComplexity,
		Images:            it.Images,
		IsFeatured:        it.IsFeatured,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
