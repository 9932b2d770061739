package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Webhook posts events as JSON to the bot's HTTP API:
// POST {base}/notify/purchase and POST {base}/notify/upload.
type Webhook struct {
	client  *http.Client
	baseURL string
}

// NewWebhook creates a Webhook. A nil client means http.DefaultClient.
func NewWebhook(baseURL string, client *http.Client) *Webhook {
	if client == nil {
		client = http.DefaultClient
	}
	return &Webhook{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type purchasePayload struct {
	TelegramID string      `json:"telegram_id"`
	LeadPhone  string      `json:"lead_phone"`
	Price      json.Number `json:"price"`
	NewBalance json.Number `json:"new_balance"`
}

type uploadPayload struct {
	TelegramID string `json:"telegram_id"`
	TotalValid int    `json:"total_valid"`
	Duplicates int    `json:"duplicates"`
}

// NotifyPurchase implements Notifier.
func (w *Webhook) NotifyPurchase(ctx context.Context, event PurchaseEvent) error {
	return w.post(ctx, "/notify/purchase", purchasePayload{
		TelegramID: event.BuyerExternalID,
		LeadPhone:  event.LeadPhone,
		Price:      json.Number(event.Price.String()),
		NewBalance: json.Number(event.NewBalance.String()),
	})
}

// NotifyUpload implements Notifier.
func (w *Webhook) NotifyUpload(ctx context.Context, event UploadEvent) error {
	return w.post(ctx, "/notify/upload", uploadPayload{
		TelegramID: event.UploaderExternalID,
		TotalValid: event.TotalValid,
		Duplicates: event.Duplicates,
	})
}

func (w *Webhook) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer resp.Body.Close()              //nolint:errcheck // body fully drained below
	_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint %s returned %d", path, resp.StatusCode)
	}
	return nil
}
