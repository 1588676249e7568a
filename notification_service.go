package main

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// NotificationService pushes account events to the admin Telegram chat.
// When no API key is configured the service is a no-op, so registration
// works the same with or without it.
type NotificationService struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
}

func NewNotificationService(apiKey, adminChatID string) (*NotificationService, error) {
	if apiKey == "" {
		log.Println("No telegram API key configured, account notifications disabled")
		return &NotificationService{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	chatID, err := strconv.ParseInt(adminChatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid admin chat id %q: %w", adminChatID, err)
	}

	return &NotificationService{bot: bot, adminChatID: chatID}, nil
}

// NotifyNewAccount reports a fresh registration. Callers fire this in a
// goroutine; the HTTP response never waits on the outcome.
func (s *NotificationService) NotifyNewAccount(username, email string) {
	if s.bot == nil {
		return
	}

	msg := tgbotapi.NewMessage(s.adminChatID, fmt.Sprintf("New account registered: %s <%s>", username, email))
	if _, err := s.bot.Send(msg); err != nil {
		log.Printf("Failed to send new account notification for %s: %v", username, err)
	}
}
