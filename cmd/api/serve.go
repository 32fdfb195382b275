package main

import (
	"os/signal"
	"syscall"

	"heritage_gold/internal/adapter/http/handlers"
	"heritage_gold/internal/adapter/http/routes"
	"heritage_gold/internal/adapter/persistence/repository"
	"heritage_gold/internal/infrastructure/database"
	"heritage_gold/internal/infrastructure/notify"
	"heritage_gold/internal/infrastructure/ratefeed"
	"heritage_gold/internal/logging"
	"heritage_gold/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		logging.Error("[serve] dynamodb connection failed", zap.Error(err))
		return err
	}

	itemRepo := repository.NewItemDynamoRepository(ddb, cfg.Tables.Items)
	rateRepo := repository.NewRateDynamoRepository(ddb, cfg.Tables.Rates)
	orderRepo := repository.NewOrderIntentDynamoRepository(ddb, cfg.Tables.OrderIntents)
	contactRepo := repository.NewContactDynamoRepository(ddb, cfg.Tables.Contacts)
	profileRepo := repository.NewProfileDynamoRepository(ddb, cfg.Tables.Profile)

	rates := usecase.NewRateProvider(ratefeed.NewGoldAPIClient(cfg.Rates), rateRepo, usecase.RateProviderConfig{
		RefreshInterval: cfg.Rates.RefreshInterval,
		MaxStaleness:    cfg.Rates.MaxStaleness,
	})
	go rates.Run(ctx)

	telegram := notify.NewTelegram(cfg.Notify.TelegramBotToken, cfg.Notify.TelegramChatID)
	email := notify.NewEmail(cfg.Notify)
	if !telegram.Enabled() {
		logging.Warn("[serve] telegram notifications disabled")
	}
	if !email.Enabled() {
		logging.Warn("[serve] email notifications disabled")
	}

	leadUseCase := usecase.NewLeadUseCase(orderRepo, contactRepo, notify.NewLeadNotifier(telegram, email))

	router := routes.NewRouter(cfg.CORSAllowOrigins, routes.Handlers{
		Pricing:   handlers.NewPricingHandler(usecase.NewPricingUseCase(rates)),
		Catalogue: handlers.NewCatalogueHandler(usecase.NewCatalogueUseCase(itemRepo, rates)),
		Guided:    handlers.NewGuidedHandler(usecase.NewGuidedUseCase(itemRepo, rates)),
		Lead:      handlers.NewLeadHandler(leadUseCase),
		Cart:      handlers.NewCartHandler(usecase.NewCartUseCase(itemRepo, rates, leadUseCase)),
		Info:      handlers.NewInfoHandler(usecase.NewInfoUseCase(profileRepo)),
	})

	return routes.Run(ctx, cfg.Port, router)
}
