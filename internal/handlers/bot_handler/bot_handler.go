package bot_handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/services"
	"github.com/kasihagustinusT/Buku-Tabungan/internal/state"
)

const helpText = `📖 Bantuan:

/start - Mulai bot
/help - Tampilkan bantuan ini
/cancel - Batalkan aksi yang sedang berjalan

📌 Cara pakai:
1️⃣ Tekan 📥 untuk mencatat tabungan hari ini atau kemarin
2️⃣ Tekan 🎯 untuk mengatur target nabung
3️⃣ Tekan 📊 untuk melihat statistik dan streak
4️⃣ Tekan 📄 untuk mengunduh laporan CSV

💡 Tips: Semua aksi bisa dibatalkan dengan /cancel`

type BotHandler struct {
	bot     *tgbotapi.BotAPI
	savings *services.SavingsService
	states  *state.Manager
	logger  *zap.Logger
}

func NewBotHandler(
	bot *tgbotapi.BotAPI,
	savings *services.SavingsService,
	states *state.Manager,
	logger *zap.Logger,
) *BotHandler {
	return &BotHandler{
		bot:     bot,
		savings: savings,
		states:  states,
		logger:  logger,
	}
}

func (h *BotHandler) HandleStart(message *tgbotapi.Message) {
	userID := message.From.ID
	name := message.From.FirstName
	if name == "" {
		name = message.From.UserName
	}

	h.states.Clear(userID)

	text := "Selamat datang di *Buku Tabungan*, " + name + "!\n\nPilih aksi di bawah:"
	h.sendMarkdownWithKeyboard(message.Chat.ID, text, h.mainMenu())
}

func (h *BotHandler) HandleHelp(message *tgbotapi.Message) {
	h.sendMessage(message.Chat.ID, helpText)
}

func (h *BotHandler) HandleCancel(message *tgbotapi.Message) {
	h.states.Clear(message.From.ID)
	h.sendMessageWithKeyboard(message.Chat.ID, "✅ Aksi dibatalkan.", h.mainMenu())
}

func (h *BotHandler) HandleUnknownCommand(message *tgbotapi.Message) {
	h.sendMessage(message.Chat.ID, "❓ Perintah tidak dikenal. Gunakan /help untuk melihat daftar perintah.")
}

func (h *BotHandler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *BotHandler) sendMessageWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *BotHandler) sendMarkdownWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *BotHandler) answerCallback(callbackID string, text string) {
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := h.bot.Request(callback); err != nil {
		h.logger.Error("failed to answer callback", zap.Error(err))
	}
}
