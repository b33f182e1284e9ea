package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yoteibot/yoteibot/config"
	"github.com/yoteibot/yoteibot/internal/service"
	"github.com/yoteibot/yoteibot/internal/storage"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	cfg     *config.Config
	storage *storage.Storage
	agenda  *service.AgendaService
}

func New(cfg *config.Config, storage *storage.Storage, agenda *service.AgendaService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("Authorized as @%s", api.Self.UserName)

	bot := &Bot{
		api:     api,
		cfg:     cfg,
		storage: storage,
		agenda:  agenda,
	}

	// Set bot commands (menu button)
	bot.setCommands()

	return bot, nil
}

func (b *Bot) setCommands() {
	commands := []tgbotapi.BotCommand{
		{Command: "tomorrow", Description: "📅 明日の予定を今すぐ表示"},
		{Command: "schedule", Description: "🔔 このチャットへの毎日の自動送信を開始"},
		{Command: "unschedule", Description: "🔕 自動送信を停止"},
		{Command: "help", Description: "❓ 使い方"},
	}

	cfg := tgbotapi.NewSetMyCommands(commands...)
	if _, err := b.api.Request(cfg); err != nil {
		log.Printf("Failed to set commands: %v", err)
	}
}

// Start runs the long-polling update loop until the context is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			go b.handleUpdate(update)
		}
	}
}

func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "HTML"
	_, err := b.api.Send(msg)
	return err
}
