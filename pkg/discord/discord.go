package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	colorRed  = 0xE74C3C
	colorBlue = 0x3498DB
)

// SendMessage posts a plain content message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, webhookPayload{Content: content})
}

// SendError posts an error embed with the error detail as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorRed,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = []EmbedField{{Name: "Error", Value: err.Error()}}
	}
	return d.post(ctx, webhookPayload{Embeds: []Embed{embed}})
}

// SendInfo posts an informational embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.post(ctx, webhookPayload{Embeds: []Embed{{
		Title:       title,
		Description: description,
		Color:       colorBlue,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}}})
}

func (d *discordImpl) post(ctx context.Context, payload webhookPayload) error {
	url := fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
