package main

import (
	"fmt"

	"heritage_gold/internal/adapter/persistence/repository"
	"heritage_gold/internal/infrastructure/database"
	"heritage_gold/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var createTables bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the starter catalogue and goldsmith profile",
	Long: `Seed writes the starter jewellery items and the goldsmith profile.
Existing items and an existing profile are kept, so it is safe to re-run.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&createTables, "create-tables", false, "create missing DynamoDB tables first")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return err
	}

	if createTables {
		t := cfg.Tables
		if err := database.EnsureTables(ctx, ddb, t.Items, t.Rates, t.OrderIntents, t.Contacts, t.Profile); err != nil {
			logging.Error("[seed] create tables failed", zap.Error(err))
			return err
		}
	}

	res, err := repository.Seed(ctx,
		repository.NewItemDynamoRepository(ddb, cfg.Tables.Items),
		repository.NewProfileDynamoRepository(ddb, cfg.Tables.Profile),
	)
	if err != nil {
		logging.Error("[seed] failed", zap.Error(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "items created: %d, skipped: %d, profile created: %t\n",
		res.ItemsCreated, res.ItemsSkipped, res.ProfileCreated)
	return nil
}
