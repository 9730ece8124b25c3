package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"paquexpress/cmd"
	httpadapter "paquexpress/internal/adapters/in/http"
	"paquexpress/internal/adapters/out/postgres/agentrepo"
	"paquexpress/internal/adapters/out/postgres/historyrepo"
	"paquexpress/internal/adapters/out/postgres/parcelrepo"
	"paquexpress/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	if configs.DispatchEnabled {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		jobManager := jobs.NewJobManager(
			app.CreateDispatchPendingCommandHandler(),
			configs.DispatchCron,
			logger,
		)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// a missing .env file is fine, variables may come from the environment
	_ = godotenv.Load(".env")

	sessionTTL, err := strconv.Atoi(envOr("SESSION_TTL_MINUTES", "60"))
	if err != nil {
		log.Fatalf("Invalid SESSION_TTL_MINUTES: %v", err)
	}

	dispatchEnabled, err := strconv.ParseBool(envOr("DISPATCH_ENABLED", "false"))
	if err != nil {
		log.Fatalf("Invalid DISPATCH_ENABLED: %v", err)
	}

	return cmd.Config{
		HTTPPort:          envOr("HTTP_PORT", "8080"),
		DBHost:            envOr("DB_HOST", "localhost"),
		DBPort:            envOr("DB_PORT", "5432"),
		DBUser:            envOr("DB_USER", "postgres"),
		DBPassword:        envOr("DB_PASSWORD", "postgres"),
		DBName:            envOr("DB_NAME", "paquexpress"),
		DBSslMode:         envOr("DB_SSLMODE", "disable"),
		RedisAddr:         envOr("REDIS_ADDR", "localhost:6379"),
		SessionTTLMinutes: sessionTTL,
		DispatchEnabled:   dispatchEnabled,
		DispatchCron:      envOr("DISPATCH_CRON", "*/30 * * * * *"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&agentrepo.AgentDTO{}, &parcelrepo.ParcelDTO{}, &historyrepo.HistoryEntryDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	doc, err := httpadapter.LoadOpenAPIDocument(context.Background())
	if err != nil {
		log.Fatalf("Invalid OpenAPI document: %v", err)
	}
	httpadapter.RegisterOpenAPIRoute(e, doc)

	server := httpadapter.NewServer(
		app.CreateRegisterAgentCommandHandler(),
		app.CreateVerifyLoginCommandHandler(),
		app.CreateCreateParcelCommandHandler(),
		app.CreateAssignAgentCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateSetStatusCommandHandler(),
		app.CreateGetParcelQueryHandler(),
		app.CreateGetParcelHistoryQueryHandler(),
		app.CreateGetAgentParcelsQueryHandler(),
		app.CreateGetAllAgentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
