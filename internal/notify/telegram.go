package notify

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"gopkg.in/telebot.v3"
)

// Telegram messages users directly through the Bot API. The account's
// external id is the Telegram user id.
type Telegram struct {
	bot *telebot.Bot
}

// NewTelegram creates a Telegram notifier. apiURL may be empty for the public API.
func NewTelegram(token, apiURL string, client *http.Client) (*Telegram, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:   token,
		URL:     apiURL,
		Client:  client,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Telegram{bot: bot}, nil
}

// NotifyPurchase implements Notifier.
func (t *Telegram) NotifyPurchase(ctx context.Context, event PurchaseEvent) error {
	text := fmt.Sprintf("Lead purchased: %s\nPaid: %s LC\nBalance: %s LC",
		event.LeadPhone, event.Price.StringFixed(2), event.NewBalance.StringFixed(2))
	return t.send(ctx, event.BuyerExternalID, text)
}

// NotifyUpload implements Notifier.
func (t *Telegram) NotifyUpload(ctx context.Context, event UploadEvent) error {
	text := fmt.Sprintf("Upload processed: %d new leads, %d duplicates rejected.\nYou earn credits each time one of your leads is bought.",
		event.TotalValid, event.Duplicates)
	return t.send(ctx, event.UploaderExternalID, text)
}

func (t *Telegram) send(ctx context.Context, externalID, text string) error {
	chatID, err := strconv.ParseInt(externalID, 10, 64)
	if err != nil {
		return fmt.Errorf("external id %q is not a telegram user id", externalID)
	}

	// telebot has no context support; honour cancellation before the call.
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := t.bot.Send(&telebot.User{ID: chatID}, text); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}
