// Package notify delivers purchase and upload events to the bot that relays
// them to users. Delivery is best effort: callers never wait for it and
// failures are only logged.
package notify

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// PurchaseEvent is emitted after a purchase commits.
type PurchaseEvent struct {
	Price           decimal.Decimal
	NewBalance      decimal.Decimal
	BuyerExternalID string
	LeadPhone       string
}

// UploadEvent is emitted after an upload batch commits.
type UploadEvent struct {
	UploaderExternalID string
	TotalValid         int
	Duplicates         int
}

// Notifier delivers a single event synchronously.
type Notifier interface {
	NotifyPurchase(ctx context.Context, event PurchaseEvent) error
	NotifyUpload(ctx context.Context, event UploadEvent) error
}

// Publisher hands events off without blocking the caller.
type Publisher interface {
	EmitPurchase(event PurchaseEvent)
	EmitUpload(event UploadEvent)
}

// Noop discards every event.
type Noop struct{}

func (Noop) NotifyPurchase(context.Context, PurchaseEvent) error { return nil }

func (Noop) NotifyUpload(context.Context, UploadEvent) error { return nil }

// Multi delivers to every notifier in turn and joins their errors.
type Multi []Notifier

func (m Multi) NotifyPurchase(ctx context.Context, event PurchaseEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyPurchase(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) NotifyUpload(ctx context.Context, event UploadEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyUpload(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	_ Notifier  = Noop{}
	_ Notifier  = Multi(nil)
	_ Notifier  = (*Webhook)(nil)
	_ Notifier  = (*Telegram)(nil)
	_ Publisher = (*Emitter)(nil)
)
