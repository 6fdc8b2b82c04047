package error_notificator

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewInfraFromEnv включает алерты, когда заданы TELEGRAM_BOT_TOKEN и
// TELEGRAM_ADMIN_CHAT_ID. Иначе возвращает выключенный инстанс:
// конвертер работает, алерты молчат.
func NewInfraFromEnv() *Infra {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	rawChatID := os.Getenv("TELEGRAM_ADMIN_CHAT_ID")

	if token == "" || rawChatID == "" {
		log.Println("[error_notificator] telegram alerts disabled")
		return &Infra{}
	}

	chatID, err := strconv.ParseInt(rawChatID, 10, 64)
	if err != nil {
		log.Printf("[error_notificator] bad TELEGRAM_ADMIN_CHAT_ID: %v", err)
		return &Infra{}
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("[error_notificator] bot init fail: %v", err)
		return &Infra{}
	}

	return &Infra{bot: bot, chatID: chatID}
}

func (i *Infra) Notify(ctx context.Context, stage string, err error, details string) error {
	if i.bot == nil {
		return nil
	}

	text := fmt.Sprintf(
		"❗ Ошибка конвертации (этап: %s)\n\nОшибка: %v\n\nДетали: %s",
		stage,
		err,
		details,
	)

	msg := tgbotapi.NewMessage(i.chatID, text)

	_, sendErr := i.bot.Send(msg)
	if sendErr != nil {
		log.Printf("[error_notificator] send fail: %v", sendErr)
		return sendErr
	}

	return nil
}
