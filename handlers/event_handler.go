package handlers

import (
	"log/slog"

	"pancitos-bot/models"
)

// The remaining event kinds carry no reply behavior; they are acknowledged
// in the logs and dropped.

// HandleOptin records a plugin opt-in.
func (b *Bot) HandleOptin(messaging models.Messaging, pageID string) {
	slog.Info("Handling optin",
		"senderID", messaging.Sender.ID,
		"pageID", pageID,
		"ref", messaging.Optin.Ref,
	)
}

// HandleDelivery records a delivery confirmation.
func (b *Bot) HandleDelivery(messaging models.Messaging, pageID string) {
	slog.Info("Handling delivery confirmation",
		"senderID", messaging.Sender.ID,
		"pageID", pageID,
		"mids", messaging.Delivery.MIDs,
		"watermark", messaging.Delivery.Watermark,
	)
}

// HandleRead records a read receipt.
func (b *Bot) HandleRead(messaging models.Messaging, pageID string) {
	slog.Info("Handling read receipt",
		"senderID", messaging.Sender.ID,
		"pageID", pageID,
		"watermark", messaging.Read.Watermark,
	)
}

// HandleAccountLinking records the outcome of an account linking flow.
func (b *Bot) HandleAccountLinking(messaging models.Messaging, pageID string) {
	slog.Info("Handling account linking",
		"senderID", messaging.Sender.ID,
		"pageID", pageID,
		"status", messaging.AccountLinking.Status,
		"authorizationCode", messaging.AccountLinking.AuthorizationCode,
	)
}

// HandleUnknown records an event with no recognized payload field.
func (b *Bot) HandleUnknown(messaging models.Messaging, pageID string) {
	slog.Info("Unknown webhook event, dropping",
		"senderID", messaging.Sender.ID,
		"pageID", pageID,
		"timestamp", messaging.Timestamp,
	)
}
