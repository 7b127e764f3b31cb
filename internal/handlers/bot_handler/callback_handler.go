package bot_handler

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/state"
)

// Callback data values. The set is closed: parseCallback maps them onto
// callbackCommand and everything else is rejected up front instead of
// falling through at dispatch time.
const (
	callbackRecordMenu      = "catat_tabungan"
	callbackRecordToday     = "catat_hari_ini"
	callbackRecordYesterday = "catat_kemarin"
	callbackTargetMenu      = "target_menu"
	callbackSetTarget       = "atur_target"
	callbackViewTarget      = "lihat_target"
	callbackResetTarget     = "reset_target"
	callbackStats           = "statistik"
	callbackResetRecords    = "reset_catatan"
	callbackExportReport    = "ekspor_laporan"
	callbackBackToMenu      = "back_to_menu"
)

type callbackCommand int

const (
	cmdRecordMenu callbackCommand = iota
	cmdRecordToday
	cmdRecordYesterday
	cmdTargetMenu
	cmdSetTarget
	cmdViewTarget
	cmdResetTarget
	cmdStats
	cmdResetRecords
	cmdExportReport
	cmdBackToMenu
)

func parseCallback(data string) (callbackCommand, bool) {
	switch data {
	case callbackRecordMenu:
		return cmdRecordMenu, true
	case callbackRecordToday:
		return cmdRecordToday, true
	case callbackRecordYesterday:
		return cmdRecordYesterday, true
	case callbackTargetMenu:
		return cmdTargetMenu, true
	case callbackSetTarget:
		return cmdSetTarget, true
	case callbackViewTarget:
		return cmdViewTarget, true
	case callbackResetTarget:
		return cmdResetTarget, true
	case callbackStats:
		return cmdStats, true
	case callbackResetRecords:
		return cmdResetRecords, true
	case callbackExportReport:
		return cmdExportReport, true
	case callbackBackToMenu:
		return cmdBackToMenu, true
	}
	return 0, false
}

func (h *BotHandler) HandleCallback(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID
	ctx := context.Background()

	cmd, ok := parseCallback(query.Data)
	if !ok {
		h.logger.Warn("unknown callback", zap.Int64("user_id", userID), zap.String("data", query.Data))
		h.answerCallback(query.ID, "❌ Aksi tidak dikenal")
		return
	}

	h.answerCallback(query.ID, "")

	switch cmd {
	case cmdRecordMenu:
		h.sendMessageWithKeyboard(chatID, "📥 Catat tabungan untuk hari apa?", h.recordMenu())

	case cmdRecordToday:
		h.states.SetState(userID, state.StateRecordingToday)
		h.promptAmount(ctx, userID, chatID, "hari ini")

	case cmdRecordYesterday:
		h.states.SetState(userID, state.StateRecordingYesterday)
		h.promptAmount(ctx, userID, chatID, "kemarin")

	case cmdTargetMenu:
		h.sendMarkdownWithKeyboard(chatID, "*🎯 Menu Target Nabung*\n\nKelola target tabunganmu di sini:", h.targetMenu())

	case cmdSetTarget:
		h.states.SetState(userID, state.StateAwaitingStartDate)
		h.sendMessage(chatID, "🗓️ Kirim tanggal mulai (format: YYYY-MM-DD)\nContoh: 2025-05-01")

	case cmdViewTarget:
		h.showTarget(ctx, userID, chatID)

	case cmdResetTarget:
		h.resetTarget(ctx, userID, chatID)

	case cmdStats:
		h.showStats(ctx, userID, chatID)

	case cmdResetRecords:
		h.resetRecords(ctx, userID, chatID)

	case cmdExportReport:
		h.sendReport(ctx, userID, chatID)

	case cmdBackToMenu:
		h.states.Clear(userID)
		h.sendMessageWithKeyboard(chatID, "Pilih aksi di bawah:", h.mainMenu())
	}
}
