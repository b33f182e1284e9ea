package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yoteibot/yoteibot/internal/service"
)

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start", "help":
		b.cmdHelp(chatID)
	case "schedule":
		b.cmdSchedule(msg)
	case "unschedule":
		b.cmdUnschedule(chatID)
	case "tomorrow":
		b.cmdTomorrow(chatID)
	default:
		b.SendMessage(chatID, "不明なコマンドです。/help で使い方を確認できます。")
	}
}

func (b *Bot) cmdHelp(chatID int64) {
	text := fmt.Sprintf(`<b>予定bot</b>

カレンダーの予定を毎日 %s にお知らせします。

/tomorrow — 明日の予定を今すぐ表示
/schedule — このチャットへの自動送信を開始
/unschedule — 自動送信を停止
/help — この説明`, b.cfg.SendTime)

	b.SendMessage(chatID, text)
}

func (b *Bot) cmdSchedule(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if err := b.storage.AddSubscription(chatID, msg.Chat.Title); err != nil {
		log.Printf("Error subscribing chat %d: %v", chatID, err)
		b.SendMessage(chatID, "❌ 設定に失敗しました。")
		return
	}

	log.Printf("Chat subscribed: %d (%s)", chatID, msg.Chat.Title)
	b.SendMessage(chatID, fmt.Sprintf("✅ 毎日 %s に明日の予定を送信します。", b.cfg.SendTime))
}

func (b *Bot) cmdUnschedule(chatID int64) {
	removed, err := b.storage.RemoveSubscription(chatID)
	if err != nil {
		log.Printf("Error unsubscribing chat %d: %v", chatID, err)
		b.SendMessage(chatID, "❌ 設定の解除に失敗しました。")
		return
	}

	if !removed {
		b.SendMessage(chatID, "⚠️ 自動送信は設定されていません。")
		return
	}

	log.Printf("Chat unsubscribed: %d", chatID)
	b.SendMessage(chatID, "✅ 自動送信を停止しました。")
}

func (b *Bot) cmdTomorrow(chatID int64) {
	events, day, err := b.agenda.EventsForTomorrow(context.Background())
	if err != nil {
		log.Printf("Error fetching tomorrow's events: %v", err)
		b.SendMessage(chatID, service.FetchFailureMessage)
		return
	}

	b.SendMessage(chatID, service.FormatAgenda(day, events, b.cfg.Timezone))
}
