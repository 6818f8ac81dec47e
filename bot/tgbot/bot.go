package tgbot

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/goserg/hostelcup/internal/config"
	"github.com/goserg/hostelcup/internal/service"
)

type Bot struct {
	bot *tgbotapi.BotAPI
	log *logrus.Entry

	commands *Commands
}

var ErrBadRequest = errors.New("unknown command, try /help")

func New(ts *service.TournamentService, cfg config.TgBot, debug bool, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}

	bot.Debug = debug
	_, err = bot.GetMe()
	if err != nil {
		return nil, err
	}

	return &Bot{
		bot:      bot,
		log:      log.WithField("name", "tg_bot"),
		commands: NewCommands(ts),
	}, nil
}

// Run answers commands until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	defer b.bot.StopReceivingUpdates()

	b.log.WithField("username", b.bot.Self.UserName).Info("bot started")
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleMessage(update)
		}
	}
}

func (b *Bot) handleMessage(update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	log := b.log.WithFields(logrus.Fields{
		"chat_id": update.Message.Chat.ID,
		"text":    update.Message.Text,
	})

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	if !update.Message.IsCommand() {
		msg.Text = ErrBadRequest.Error()
	} else {
		text, err := b.commands.RunCommand(update.Message.Command(), update.Message.CommandArguments())
		if err != nil {
			log.WithError(err).Debug("command failed")
			text = err.Error()
		}
		msg.Text = text
	}
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}
