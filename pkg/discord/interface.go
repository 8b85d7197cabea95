package discord

import (
	"context"

	"estimate-srv/pkg/log"
)

// IDiscord defines the interface for the Discord webhook notifier.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendError(ctx context.Context, title, description string, err error) error
	SendInfo(ctx context.Context, title, description string) error
}

// DiscordWebhook contains webhook information for the Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// NewDiscordWebhook creates a new Discord webhook instance.
func NewDiscordWebhook(id, token string) (*DiscordWebhook, error) {
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}
	return &DiscordWebhook{ID: id, Token: token}, nil
}

// New creates a new Discord service. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:       l,
		webhook: webhook,
		client:  newHTTPClient(defaultTimeout),
	}, nil
}
