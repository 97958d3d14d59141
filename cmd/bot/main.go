package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fikrihandy/superbot/internal/bot"
	"github.com/fikrihandy/superbot/internal/bot/handlers"
	"github.com/fikrihandy/superbot/internal/clock"
	"github.com/fikrihandy/superbot/internal/config"
	"github.com/fikrihandy/superbot/internal/database"
	"github.com/fikrihandy/superbot/internal/repository"
	"github.com/fikrihandy/superbot/internal/scheduler"
	"github.com/fikrihandy/superbot/internal/weather"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate required config
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}
	if cfg.DatabaseURI == "" {
		log.Fatal("DATABASE_URI is required")
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	db, err := database.New(ctx, cfg.DatabaseURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to database")

	// Run migrations
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Process-wide local time source
	clk, err := clock.NewLocal(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", cfg.Timezone, err)
	}

	// Telegram API client for the update long poll. getUpdates stays open
	// for up to 60 s on a quiet bot, so this client must not carry its own
	// timeout.
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to create Telegram API: %v", err)
	}

	// Separate client for scheduler deliveries, bounded so one slow send
	// cannot stall a pass indefinitely
	sendAPI, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, &http.Client{Timeout: 12 * time.Second})
	if err != nil {
		log.Fatalf("Failed to create Telegram sender API: %v", err)
	}

	// Create repositories
	repos := &handlers.Repositories{
		User:     repository.NewUserRepository(db),
		Note:     repository.NewNoteRepository(db),
		Ledger:   repository.NewLedgerRepository(db),
		Reminder: repository.NewReminderRepository(db, clk),
	}
	guardRepo := repository.NewGuardRepository(db)

	// Create and start scheduler
	sched := scheduler.New(scheduler.NewTelegramSender(sendAPI), repos.Reminder, guardRepo, clk, cfg.TickInterval)
	go sched.Start(ctx)

	// Weather lookups are optional
	var weatherClient *weather.Client
	if cfg.OpenWeatherAPIKey != "" {
		weatherClient = weather.New(cfg.OpenWeatherAPIKey)
	} else {
		log.Println("OPENWEATHER_API_KEY not set, /weather disabled")
	}

	// Create bot
	b := bot.New(api, handlers.New(api, repos, weatherClient, clk, sched))

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		cancel()
	}()

	log.Println("Starting bot...")
	if err := b.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Bot error: %v", err)
	}
}
