package bot_handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/services"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/state"
)

// HandleTextMessage routes free text according to the user's dialog state.
func (h *BotHandler) HandleTextMessage(message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID
	ctx := context.Background()

	switch h.states.State(userID) {
	case state.StateAwaitingStartDate:
		h.handleStartDateInput(userID, chatID, message.Text)
	case state.StateAwaitingDuration:
		h.handleDurationInput(userID, chatID, message.Text)
	case state.StateAwaitingAmount:
		h.handlePerDayAmountInput(ctx, userID, chatID, message.Text)
	case state.StateRecordingToday:
		h.handleRecordAmountInput(ctx, userID, chatID, message.Text, 0)
	case state.StateRecordingYesterday:
		h.handleRecordAmountInput(ctx, userID, chatID, message.Text, 1)
	default:
		h.sendMessageWithKeyboard(chatID, "Gunakan menu di bawah untuk memulai 👇", h.mainMenu())
	}
}

func (h *BotHandler) promptAmount(ctx context.Context, userID, chatID int64, dayLabel string) {
	text := fmt.Sprintf("💸 Kirim jumlah tabungan untuk %s (tanpa Rp)\nContoh: 10000", dayLabel)
	if target, err := h.savings.Target(ctx, userID); err == nil {
		text += fmt.Sprintf("\n\nTarget harianmu: %s", formatRupiah(target.PerDayAmount))
	}
	h.sendMessage(chatID, text)
}

func (h *BotHandler) handleStartDateInput(userID, chatID int64, text string) {
	startDate, err := parseDateInput(text)
	if err != nil {
		h.sendMessage(chatID, "❌ Format tanggal tidak valid. Gunakan YYYY-MM-DD")
		return
	}
	if startDate.After(models.Day(time.Now())) {
		h.sendMessage(chatID, "❌ Tanggal mulai tidak boleh di masa depan.")
		return
	}

	h.states.UpdatePending(userID, func(p *state.PendingTarget) {
		p.StartDate = startDate
	})
	h.states.SetState(userID, state.StateAwaitingDuration)
	h.sendMessage(chatID, "📆 Kirim durasi menabung (dalam hari)\nContoh: 90")
}

func (h *BotHandler) handleDurationInput(userID, chatID int64, text string) {
	duration, err := parseDurationInput(text)
	if err != nil {
		h.sendMessage(chatID, "❌ Durasi harus berupa angka positif.")
		return
	}

	h.states.UpdatePending(userID, func(p *state.PendingTarget) {
		p.DurationDays = duration
	})
	h.states.SetState(userID, state.StateAwaitingAmount)
	h.sendMessage(chatID, "💸 Kirim jumlah tabungan per hari (tanpa Rp)\nContoh: 10000")
}

func (h *BotHandler) handlePerDayAmountInput(ctx context.Context, userID, chatID int64, text string) {
	perDay, err := parseAmountInput(text)
	if err != nil {
		h.sendMessage(chatID, "❌ Jumlah per hari harus berupa angka positif.")
		return
	}

	pending := h.states.Pending(userID)
	target, err := h.savings.SetTarget(ctx, userID, pending.StartDate, pending.DurationDays, perDay)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			h.sendMessage(chatID, "❌ Data target tidak valid. Mulai lagi dari menu target.")
			h.states.Clear(userID)
			return
		}
		h.logger.Error("failed to set target", zap.Int64("user_id", userID), zap.Error(err))
		h.sendMessage(chatID, "❌ Gagal menyimpan target. Coba lagi nanti.")
		return
	}
	h.states.Clear(userID)

	text = fmt.Sprintf(
		"✅ Target disimpan!\n\n"+
			"🗓️ Mulai: %s\n"+
			"📆 Durasi: %d hari\n"+
			"💸 Per hari: %s\n"+
			"🎯 Total: %s\n"+
			"Progress: %s",
		target.StartDate.Format(models.DateLayout),
		target.DurationDays,
		formatRupiah(target.PerDayAmount),
		formatRupiah(target.TotalTarget()),
		progressBar(0, progressBarLength),
	)
	h.sendMessageWithKeyboard(chatID, text, h.mainMenu())
}

func (h *BotHandler) handleRecordAmountInput(ctx context.Context, userID, chatID int64, text string, offsetDays int) {
	amount, err := parseAmountInput(text)
	if err != nil {
		h.sendMessage(chatID, "❌ Jumlah harus berupa angka positif.")
		return
	}

	var rec *models.DailyRecord
	if offsetDays == 0 {
		rec, err = h.savings.MarkToday(ctx, userID, amount)
	} else {
		rec, err = h.savings.MarkPreviousDay(ctx, userID, amount, offsetDays)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyRecorded):
			h.states.Clear(userID)
			h.sendMessageWithKeyboard(chatID, "⚠️ Hari itu sudah tercatat. Satu catatan per hari ya!", h.mainMenu())
		case errors.Is(err, services.ErrInvalidInput):
			h.sendMessage(chatID, "❌ Jumlah harus berupa angka positif.")
		default:
			h.logger.Error("failed to record contribution", zap.Int64("user_id", userID), zap.Error(err))
			h.sendMessage(chatID, "❌ Gagal menyimpan catatan. Coba lagi nanti.")
		}
		return
	}
	h.states.Clear(userID)

	streak, err := h.savings.Streak(ctx, userID)
	if err != nil {
		h.logger.Error("failed to compute streak", zap.Int64("user_id", userID), zap.Error(err))
	}

	msg := fmt.Sprintf(
		"✅ Tabungan tercatat!\n\n"+
			"🗓️ Tanggal: %s\n"+
			"💸 Jumlah: %s\n"+
			"🔥 Streak: %d hari",
		rec.Date.Format(models.DateLayout),
		formatRupiah(rec.Amount),
		streak,
	)
	h.sendMessageWithKeyboard(chatID, msg, h.mainMenu())
}
