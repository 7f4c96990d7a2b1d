package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RomanElektrik/musorok-bot/cmd"
	httpadapter "github.com/RomanElektrik/musorok-bot/internal/adapters/in/http"
	"github.com/RomanElektrik/musorok-bot/internal/adapters/in/telegram"
	"github.com/RomanElektrik/musorok-bot/internal/adapters/out/geo"
	"github.com/RomanElektrik/musorok-bot/internal/adapters/out/postgres/clientrepo"
	"github.com/RomanElektrik/musorok-bot/internal/adapters/out/postgres/courierrepo"
	"github.com/RomanElektrik/musorok-bot/internal/adapters/out/postgres/orderrepo"
	"github.com/RomanElektrik/musorok-bot/internal/core/application/conversation"
	"github.com/RomanElektrik/musorok-bot/internal/jobs"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	config := getConfig(log)

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Error("connect to database", "error", err)
		os.Exit(1)
	}

	if err = db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&clientrepo.AddressDTO{},
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
	); err != nil {
		log.Error("run migrations", "error", err)
		os.Exit(1)
	}

	clientBot, err := tgbotapi.NewBotAPI(config.ClientBotToken)
	if err != nil {
		log.Error("connect client bot", "error", err)
		os.Exit(1)
	}
	courierBot, err := tgbotapi.NewBotAPI(config.CourierBotToken)
	if err != nil {
		log.Error("connect courier bot", "error", err)
		os.Exit(1)
	}

	geocoder, err := geo.NewStaticGeocoder()
	if err != nil {
		log.Error("create geocoder", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, db, log)

	sessionStore := root.CreateSessionStore()
	clientMessenger := telegram.NewMessenger(clientBot)
	courierMessenger := telegram.NewMessenger(courierBot)
	timers := jobs.NewTimers()

	assignHandler := root.CreateAssignCourierCommandHandler()
	notifier := conversation.NewAssignmentNotifier(assignHandler, clientMessenger, courierMessenger, log)

	customerFlow := conversation.NewCustomerFlow(conversation.CustomerFlowDeps{
		Sessions:  sessionStore,
		Messenger: clientMessenger,
		Geocoder:  geocoder,
		Registrar: root.CreateCreateClientCommandHandler(),
		Placer:    root.CreateCreateOrderCommandHandler(),
		Notifier:  notifier,
		Scheduler: timers,
		Log:       log,
	})

	courierFlow := conversation.NewCourierFlow(conversation.CourierFlowDeps{
		Sessions:     sessionStore,
		Messenger:    courierMessenger,
		Couriers:     root.CreateCourierReader(),
		Registrar:    root.CreateCreateCourierCommandHandler(),
		Profile:      root.CreateUpdateCourierProfileCommandHandler(),
		Verifier:     root.CreateVerifyCourierCommandHandler(),
		Availability: root.CreateSetCourierAvailabilityCommandHandler(),
		Location:     root.CreateUpdateCourierLocationCommandHandler(),
		Orders:       root.CreateGetCourierOrdersQueryHandler(),
		Balance:      root.CreateGetCourierBalanceQueryHandler(),
		Log:          log,
	})

	jobManager := jobs.NewJobManager(notifier, log)
	if err = jobManager.StartAll(); err != nil {
		log.Error("start jobs", "error", err)
		os.Exit(1)
	}

	server := httpadapter.NewServer(db, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go telegram.NewCustomerAgent(clientBot, customerFlow, log).Run(ctx)
	go telegram.NewCourierAgent(courierBot, courierFlow, log).Run(ctx)
	go func() {
		if serveErr := server.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); serveErr != nil {
			log.Error("http server", "error", serveErr)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	jobManager.StopAll()
	timers.Stop()
	if err = server.Shutdown(context.Background()); err != nil {
		log.Error("shutdown http server", "error", err)
	}
}

func getConfig(log *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Info("no .env file, relying on process environment")
	}

	return cmd.Config{
		ClientBotToken:  os.Getenv("CLIENT_BOT_TOKEN"),
		CourierBotToken: os.Getenv("COURIER_BOT_TOKEN"),
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		DBHost:          envOrDefault("DB_HOST", "localhost"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		SessionBackend:  envOrDefault("SESSION_BACKEND", cmd.SessionBackendMemory),
		RedisAddr:       envOrDefault("REDIS_ADDR", "localhost:6379"),
		AssignStrategy:  envOrDefault("ASSIGN_STRATEGY", cmd.AssignStrategyFirst),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
