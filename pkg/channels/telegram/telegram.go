// Package telegram implements the Telegram bot channel over long polling.
package telegram

import (
	"fmt"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"hrdesk/pkg/api"
	"hrdesk/pkg/utils"
)

const channelID = "telegram"

type Channel struct {
	bot          *tgbotapi.BotAPI
	messageLimit int

	done     chan struct{}
	stopOnce sync.Once
}

func New(token string, messageLimit int) (*Channel, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &Channel{
		bot:          bot,
		messageLimit: messageLimit,
		done:         make(chan struct{}),
	}, nil
}

func (c *Channel) ID() string { return channelID }

func (c *Channel) Start(ctx api.ChannelContext) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := c.bot.GetUpdatesChan(u)

	go func() {
		for {
			select {
			case <-c.done:
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				if update.Message == nil || update.Message.Text == "" {
					continue
				}
				msg := update.Message
				ctx.OnMessage(channelID, &api.UnifiedMessage{
					Session: api.SessionContext{
						ChannelID: channelID,
						UserID:    strconv.FormatInt(msg.From.ID, 10),
						ChatID:    strconv.FormatInt(msg.Chat.ID, 10),
						Username:  msg.From.UserName,
					},
					Content: msg.Text,
					Raw:     msg,
					TraceID: utils.GenerateID(),
				})
			}
		}
	}()
	return nil
}

func (c *Channel) Stop() error {
	c.stopOnce.Do(func() {
		c.bot.StopReceivingUpdates()
		close(c.done)
	})
	return nil
}

// Send delivers a reply, split into chunks below the platform message limit.
func (c *Channel) Send(session api.SessionContext, message string) error {
	chatID, err := strconv.ParseInt(session.ChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("bad chat id %q: %w", session.ChatID, err)
	}
	for _, chunk := range splitMessage(message, c.messageLimit) {
		if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, chunk)); err != nil {
			return fmt.Errorf("telegram send: %w", err)
		}
	}
	return nil
}

// SendSignal maps the "typing" signal onto the Telegram chat action.
func (c *Channel) SendSignal(session api.SessionContext, signal string) error {
	if signal != "typing" {
		return nil
	}
	chatID, err := strconv.ParseInt(session.ChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("bad chat id %q: %w", session.ChatID, err)
	}
	_, err = c.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
	return err
}

// splitMessage cuts text into rune-safe chunks of at most limit runes.
func splitMessage(text string, limit int) []string {
	if limit <= 0 {
		return []string{text}
	}
	runes := []rune(text)
	var chunks []string
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}
	return append(chunks, string(runes))
}
