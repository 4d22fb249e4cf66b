package handlers

import (
	"context"
	"log/slog"

	"pancitos-bot/config"
	"pancitos-bot/models"
	"pancitos-bot/replies"
)

// Sender delivers one outbound message. Satisfied by services.Messenger;
// tests substitute a stub to observe sends without network access.
type Sender interface {
	Send(ctx context.Context, msg models.OutboundMessage) models.SendResult
}

// Bot holds everything the event handlers need: the immutable configuration
// and the Send API gateway.
type Bot struct {
	cfg    *config.Config
	sender Sender
}

// NewBot wires the handlers to a configuration and a send gateway.
func NewBot(cfg *config.Config, sender Sender) *Bot {
	return &Bot{cfg: cfg, sender: sender}
}

// HandleMessage processes an inbound message event. Echoes are logged and
// dropped; everything else is run through the reply catalog, and any reply
// is dispatched without blocking the caller.
func (b *Bot) HandleMessage(messaging models.Messaging, pageID string) {
	senderID := messaging.Sender.ID
	msg := messaging.Message

	if msg.IsEcho {
		slog.Info("Echo of own message, skipping",
			"pageID", pageID,
			"mid", msg.MID,
			"appID", msg.AppID,
		)
		return
	}

	slog.Info("Handling message",
		"senderID", senderID,
		"pageID", pageID,
		"mid", msg.MID,
		"text", msg.Text,
		"attachments", len(msg.Attachments),
		"quickReply", msg.QuickReply != nil,
	)

	content := replies.ForMessage(msg)
	if content == nil {
		slog.Info("No reply for message", "senderID", senderID, "mid", msg.MID)
		return
	}

	b.dispatchReply(senderID, *content)
}

// HandlePostback processes a button tap. Unrecognized payloads are logged
// and answered with silence.
func (b *Bot) HandlePostback(messaging models.Messaging, pageID string) {
	senderID := messaging.Sender.ID
	pb := messaging.Postback

	slog.Info("Handling postback",
		"senderID", senderID,
		"pageID", pageID,
		"title", pb.Title,
		"payload", pb.Payload,
	)

	content := replies.ForPostback(pb)
	if content == nil {
		slog.Info("No reply for postback payload", "senderID", senderID, "payload", pb.Payload)
		return
	}

	b.dispatchReply(senderID, *content)
}

// dispatchReply fires the send in its own goroutine so the webhook ack
// never waits on the Graph API. The gateway logs its own outcome; a panic
// in it must not take the process down.
func (b *Bot) dispatchReply(recipientID string, content models.MessageContent) {
	msg := models.OutboundMessage{
		Recipient: models.Recipient{ID: recipientID},
		Message:   content,
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Send gateway panicked", "recipientID", recipientID, "panic", r)
			}
		}()
		b.sender.Send(context.Background(), msg)
	}()
}
