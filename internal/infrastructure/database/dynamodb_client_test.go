package database

import (
	"context"
	"errors"
	"testing"

	"heritage_gold/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeCreator struct {
	existing map[string]bool
	created  []string
	err      error
}

func (f *fakeCreator) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(in.TableName)
	if f.existing[name] {
		return nil, &types.ResourceInUseException{Message: aws.String("exists")}
	}
	f.created = append(f.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables(t *testing.T) {
	f := &fakeCreator{existing: map[string]bool{"jewellery_items": true}}
	if err := EnsureTables(context.Background(), f, "jewellery_items", "gold_rates"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.created) != 1 || f.created[0] != "gold_rates" {
		t.Fatalf("unexpected created tables: %v", f.created)
	}

	f = &fakeCreator{err: errors.New("denied")}
	if err := EnsureTables(context.Background(), f, "x"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.AWSConfig{Endpoint: "http://localhost:8000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "us-east-1" {
		t.Fatalf("expected default region, got %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("expected local credentials, got %+v err=%v", creds, err)
	}
}
