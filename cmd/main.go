package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/config"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/config/env"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/handlers/bot_handler"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/repository"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/services"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/state"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config-path", ".env", "path to config file")
}

func main() {
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := config.Load(configPath); err != nil {
		sugar.Infow("no config file, using environment", "path", configPath)
	}

	botCfg, err := env.NewBotConfig()
	if err != nil {
		sugar.Fatalw("bot config error", "error", err.Error())
	}

	pgCfg, err := env.NewPGConfig()
	if err != nil {
		sugar.Fatalw("pg config error", "error", err.Error())
	}

	schedulerCfg, err := env.NewSchedulerConfig()
	if err != nil {
		sugar.Fatalw("scheduler config error", "error", err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.Connect(ctx, pgCfg.DSN())
	if err != nil {
		sugar.Fatalw("database connection error", "error", err.Error())
	}
	defer db.Close()

	if err := repository.Migrate(ctx, db); err != nil {
		sugar.Fatalw("migration error", "error", err.Error())
	}
	sugar.Info("connected to database")

	bot, err := tgbotapi.NewBotAPI(botCfg.Token())
	if err != nil {
		sugar.Fatalw("bot initialization error", "error", err.Error())
	}
	bot.Debug = botCfg.Debug()
	sugar.Infow("bot authorized", "username", bot.Self.UserName)

	recordRepo := repository.NewRecordRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	savingsService := services.NewSavingsService(recordRepo, targetRepo, logger)
	stateManager := state.NewManager()
	botHandler := bot_handler.NewBotHandler(bot, savingsService, stateManager, logger)
	scheduler := services.NewScheduler(bot, savingsService, logger, schedulerCfg.ReminderHour())

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return scheduler.Start(ctx)
	})

	g.Go(func() error {
		sugar.Info("bot is running")
		for {
			select {
			case <-ctx.Done():
				sugar.Info("shutting down gracefully")
				return nil

			case update := <-updates:
				if update.Message != nil {
					logger.Debug("message received",
						zap.Int64("user_id", update.Message.From.ID),
						zap.String("text", update.Message.Text))

					if update.Message.IsCommand() {
						switch update.Message.Command() {
						case "start":
							botHandler.HandleStart(update.Message)
						case "help":
							botHandler.HandleHelp(update.Message)
						case "cancel":
							botHandler.HandleCancel(update.Message)
						default:
							botHandler.HandleUnknownCommand(update.Message)
						}
					} else {
						botHandler.HandleTextMessage(update.Message)
					}
				}

				if update.CallbackQuery != nil {
					logger.Debug("callback received",
						zap.Int64("user_id", update.CallbackQuery.From.ID),
						zap.String("data", update.CallbackQuery.Data))
					botHandler.HandleCallback(update.CallbackQuery)
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
