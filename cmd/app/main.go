package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres/chatrepo"
	"fooddelivery/internal/adapters/out/postgres/driverrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/ratingrepo"
	"fooddelivery/internal/adapters/out/rabbitmq"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/jobs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	notifier, err := rabbitmq.NewPublisher(configs.RabbitMQURL, logger)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer notifier.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, notifier)

	jobManager := jobs.NewJobManager(app.CreateDispatchOrderCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL: goDotEnvVariable("RABBITMQ_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&driverrepo.DriverDTO{},
		&ratingrepo.RatingDTO{},
		&chatrepo.MessageDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	handlers := httpin.ServerHandlers{
		PlaceOrder:     app.CreatePlaceOrderCommandHandler(),
		ClaimOrder:     app.CreateClaimOrderCommandHandler(),
		AcceptOrder:    app.CreateAcceptOrderCommandHandler(),
		PickupOrder:    app.CreatePickupOrderCommandHandler(),
		DeliverOrder:   app.CreateDeliverOrderCommandHandler(),
		Reject:         app.CreateRejectAssignmentCommandHandler(),
		CancelOrder:    app.CreateCancelOrderCommandHandler(),
		SubmitRating:   app.CreateSubmitRatingCommandHandler(),
		SendMessage:    app.CreateSendMessageCommandHandler(),
		MarkThreadRead: app.CreateMarkThreadReadCommandHandler(),

		GetOrder:           app.CreateGetOrderQueryHandler(),
		GetOrders:          app.CreateGetOrdersQueryHandler(),
		GetAvailableOrders: app.CreateGetAvailableOrdersQueryHandler(),
		GetThreadMessages:  app.CreateGetThreadMessagesQueryHandler(),
		GetOrderRatings:    app.CreateGetOrderRatingsQueryHandler(),
	}
	server := httpin.NewServer(handlers)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	registerOpenAPIRoute(e)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

// registerOpenAPIRoute validates the bundled contract on boot and serves it
// for client generators and API explorers.
func registerOpenAPIRoute(e *echo.Echo) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("api/openapi.yml")
	if err != nil {
		log.Fatalf("Error loading OpenAPI contract: %v", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		log.Fatalf("Error validating OpenAPI contract: %v", err)
	}

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
}
