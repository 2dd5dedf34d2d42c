package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"harvestladder/api"
	integration_tests "harvestladder/integration-tests"
	"harvestladder/internal"
	"harvestladder/internal/repository"
	"harvestladder/internal/service"
	"harvestladder/pkg/discord"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	tickerRepository := repository.NewTickerRepository(dbConn)
	dailyBarRepository := repository.NewDailyBarRepository(dbConn)
	planInstanceRepository := repository.NewPlanInstanceRepository(dbConn)
	planRungRepository := repository.NewPlanRungRepository(dbConn)
	rungAlertRepository := repository.NewRungAlertRepository(dbConn)

	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	if strings.EqualFold(os.Getenv("HARVEST_ENV"), "test") {
		alpacaRepository = integration_tests.NewMockAlpacaRepositoryForTests()
	}

	var discordClient *discord.Client
	if secrets.Discord.WebhookURL != "" {
		discordClient = &discord.Client{
			HttpClient: http.DefaultClient,
			WebhookURL: secrets.Discord.WebhookURL,
		}
	}

	var emailRepository repository.EmailRepository
	if secrets.Email.FromEmail != "" {
		emailRepository, err = repository.NewEmailRepository(secrets.Email.Region, secrets.Email.FromEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to create email repository: %w", err)
		}
	}

	notificationService := service.NewNotificationService(discordClient, emailRepository, secrets.Email.ToEmail)
	priceService := service.NewPriceService(dbConn, tickerRepository, dailyBarRepository)
	planService := service.NewPlanService(
		dbConn,
		tickerRepository,
		dailyBarRepository,
		planInstanceRepository,
		planRungRepository,
		rungAlertRepository,
	)
	scannerService := service.NewScannerService(
		dbConn,
		rungAlertRepository,
		planRungRepository,
		alpacaRepository,
		notificationService,
	)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		PlanService:          planService,
		PriceService:         priceService,
		ScannerService:       scannerService,
		NotificationService:  notificationService,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
	}

	return apiHandler, nil
}
