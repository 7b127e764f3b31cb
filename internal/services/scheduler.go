package services

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const reminderText = "⏰ Jangan lupa menabung hari ini!\n\nCatat tabunganmu lewat menu 📥 Catat Tabungan."

// Scheduler sends a daily reminder to users who have not saved yet. It only
// invokes the send-message capability; all decisions come from the service.
type Scheduler struct {
	bot          *tgbotapi.BotAPI
	savings      *SavingsService
	logger       *zap.Logger
	reminderHour int

	lastReminded time.Time
}

func NewScheduler(bot *tgbotapi.BotAPI, savings *SavingsService, logger *zap.Logger, reminderHour int) *Scheduler {
	return &Scheduler{
		bot:          bot,
		savings:      savings,
		logger:       logger,
		reminderHour: reminderHour,
	}
}

// Start runs the reminder loop until the context is cancelled. Checks hourly;
// reminders go out at most once per day, at or after the configured hour.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	now := time.Now()
	if now.Hour() < s.reminderHour {
		return
	}

	today := s.savings.Today()
	if s.lastReminded.Equal(today) {
		return
	}

	users, err := s.savings.UsersNeedingReminder(ctx)
	if err != nil {
		s.logger.Error("failed to list users for reminder", zap.Error(err))
		return
	}

	for _, userID := range users {
		msg := tgbotapi.NewMessage(userID, reminderText)
		if _, err := s.bot.Send(msg); err != nil {
			s.logger.Error("failed to send reminder", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	s.lastReminded = today
	s.logger.Info("reminders sent", zap.Int("users", len(users)))
}
