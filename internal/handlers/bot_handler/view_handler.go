package bot_handler

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/repository"
)

func (h *BotHandler) showTarget(ctx context.Context, userID, chatID int64) {
	target, err := h.savings.Target(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoTarget) {
			h.sendMessageWithKeyboard(chatID, "⚠️ Belum ada target tersimpan. Atur dulu lewat menu target.", h.targetMenu())
			return
		}
		h.logger.Error("failed to load target", zap.Int64("user_id", userID), zap.Error(err))
		h.sendMessage(chatID, "❌ Gagal memuat target. Coba lagi nanti.")
		return
	}

	progress, err := h.savings.Progress(ctx, userID)
	if err != nil {
		h.logger.Error("failed to compute progress", zap.Int64("user_id", userID), zap.Error(err))
		h.sendMessage(chatID, "❌ Gagal menghitung progress. Coba lagi nanti.")
		return
	}

	pace := "👍 Sesuai rencana"
	if progress.Shortfall < 0 {
		pace = fmt.Sprintf("⚠️ Kurang %s dari rencana", formatRupiah(-progress.Shortfall))
	} else if progress.Shortfall > 0 {
		pace = fmt.Sprintf("🚀 Lebih %s dari rencana", formatRupiah(progress.Shortfall))
	}

	text := fmt.Sprintf(
		"🎯 *Target Nabung*\n\n"+
			"🗓️ Mulai: %s\n"+
			"📆 Durasi: %d hari (sisa %d hari)\n"+
			"💸 Per hari: %s\n"+
			"🎯 Total target: %s\n\n"+
			"⏳ Waktu: %s (%.0f%%)\n"+
			"📊 Tabungan: %s (%.0f%%)\n"+
			"💰 Terkumpul: %s dari %s\n"+
			"%s",
		target.StartDate.Format(models.DateLayout),
		target.DurationDays,
		progress.RemainingDays,
		formatRupiah(target.PerDayAmount),
		formatRupiah(target.TotalTarget()),
		progressBar(progress.TimeProgress, progressBarLength),
		progress.TimeProgress*100,
		progressBar(progress.SavingsProgress, progressBarLength),
		progress.SavingsProgress*100,
		formatRupiah(progress.ActualAmount),
		formatRupiah(progress.ExpectedAmount),
		pace,
	)
	h.sendMarkdownWithKeyboard(chatID, text, h.targetMenu())
}

func (h *BotHandler) showStats(ctx context.Context, userID, chatID int64) {
	streak, err := h.savings.Streak(ctx, userID)
	if err != nil {
		h.logger.Error("failed to compute streak", zap.Int64("user_id", userID), zap.Error(err))
		h.sendMessage(chatID, "❌ Gagal memuat statistik. Coba lagi nanti.")
		return
	}

	stats, err := h.savings.MonthlyStats(ctx, userID, 0, 0)
	if err != nil {
		h.logger.Error("failed to compute monthly stats", zap.Int64("user_id", userID), zap.Error(err))
		h.sendMessage(chatID, "❌ Gagal memuat statistik. Coba lagi nanti.")
		return
	}

	text := fmt.Sprintf(
		"📊 *Statistik Tabungan*\n\n"+
			"🔥 Streak: %d hari berturut-turut\n\n"+
			"📅 Bulan %s %d:\n"+
			"✅ Hari menabung: %d dari %d hari\n"+
			"💸 Total bulan ini: %s\n"+
			"📈 Kedisiplinan: %s (%.0f%%)",
		streak,
		stats.Month.String(),
		stats.Year,
		stats.SavedDays,
		stats.DaysPassed,
		formatRupiah(stats.TotalAmount),
		progressBar(stats.Percentage/100, progressBarLength),
		stats.Percentage,
	)
	h.sendMarkdownWithKeyboard(chatID, text, h.statsMenu())
}

func (h *BotHandler) resetTarget(ctx context.Context, userID, chatID int64) {
	err := h.savings.ResetTarget(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoTarget) {
			h.sendMessageWithKeyboard(chatID, "⚠️ Tidak ada target untuk dihapus.", h.mainMenu())
			return
		}
		h.logger.Error("failed to reset target", zap.Int64("user_id", userID), zap.Error(err))
		h.sendMessage(chatID, "❌ Gagal menghapus target. Coba lagi nanti.")
		return
	}
	h.sendMessageWithKeyboard(chatID, "✅ Target berhasil dihapus.", h.mainMenu())
}

func (h *BotHandler) resetRecords(ctx context.Context, userID, chatID int64) {
	if err := h.savings.ResetRecords(ctx, userID); err != nil {
		h.logger.Error("failed to reset records", zap.Int64("user_id", userID), zap.Error(err))
		h.sendMessage(chatID, "❌ Gagal menghapus catatan. Coba lagi nanti.")
		return
	}
	h.sendMessageWithKeyboard(chatID, "✅ Semua catatan tabungan dihapus.", h.mainMenu())
}

func (h *BotHandler) sendReport(ctx context.Context, userID, chatID int64) {
	data, err := h.savings.ExportReport(ctx, userID)
	if err != nil {
		h.logger.Error("failed to export report", zap.Int64("user_id", userID), zap.Error(err))
		h.sendMessage(chatID, "❌ Gagal membuat laporan. Coba lagi nanti.")
		return
	}

	file := tgbotapi.FileBytes{Name: "laporan_tabungan.csv", Bytes: data}
	doc := tgbotapi.NewDocument(chatID, file)
	doc.Caption = "📄 Laporan tabunganmu"
	if _, err := h.bot.Send(doc); err != nil {
		h.logger.Error("failed to send report", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
