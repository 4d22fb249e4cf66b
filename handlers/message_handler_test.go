package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pancitos-bot/config"
	"pancitos-bot/models"
)

// stubSender collects outbound messages on a channel so tests can observe
// the asynchronous dispatch.
type stubSender struct {
	sent chan models.OutboundMessage
}

func newStubSender() *stubSender {
	return &stubSender{sent: make(chan models.OutboundMessage, 16)}
}

func (s *stubSender) Send(_ context.Context, msg models.OutboundMessage) models.SendResult {
	s.sent <- msg
	return models.SendResult{Success: true, MessageID: "mid.stub", RecipientID: msg.Recipient.ID}
}

func (s *stubSender) waitForSend(t *testing.T) models.OutboundMessage {
	t.Helper()
	select {
	case msg := <-s.sent:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("expected a send, got none")
		return models.OutboundMessage{}
	}
}

func (s *stubSender) expectNoSend(t *testing.T) {
	t.Helper()
	select {
	case msg := <-s.sent:
		t.Fatalf("expected no send, got one to %s", msg.Recipient.ID)
	case <-time.After(100 * time.Millisecond):
	}
}

func newTestBot() (*Bot, *stubSender) {
	sender := newStubSender()
	cfg := &config.Config{
		AppSecret:       "secret",
		VerifyToken:     "token",
		PageAccessToken: "page-token",
		ServerURL:       "https://bot.example.com",
	}
	return NewBot(cfg, sender), sender
}

func messageEvent(senderID string, msg *models.Message) models.Messaging {
	return models.Messaging{
		Sender:    models.User{ID: senderID},
		Recipient: models.User{ID: "page-1"},
		Timestamp: 1458692752478,
		Message:   msg,
	}
}

func TestHandleMessage(t *testing.T) {
	t.Run("echo message sends nothing", func(t *testing.T) {
		bot, sender := newTestBot()
		bot.HandleMessage(messageEvent("user-1", &models.Message{
			IsEcho: true,
			Text:   "TIPOS_PANES",
			AppID:  123,
		}), "page-1")
		sender.expectNoSend(t)
	})

	t.Run("keyword text sends the carousel to the sender", func(t *testing.T) {
		bot, sender := newTestBot()
		bot.HandleMessage(messageEvent("user-1", &models.Message{Text: "TIPOS_PANES"}), "page-1")

		msg := sender.waitForSend(t)
		assert.Equal(t, "user-1", msg.Recipient.ID)
		require.NotNil(t, msg.Message.Attachment)
		assert.Equal(t, "generic", msg.Message.Attachment.Payload.TemplateType)
		assert.Len(t, msg.Message.Attachment.Payload.Elements, 3)
	})

	t.Run("plain text sends the greeting buttons", func(t *testing.T) {
		bot, sender := newTestBot()
		bot.HandleMessage(messageEvent("user-2", &models.Message{Text: "hello"}), "page-1")

		msg := sender.waitForSend(t)
		assert.Equal(t, "user-2", msg.Recipient.ID)
		require.NotNil(t, msg.Message.Attachment)
		assert.Equal(t, "button", msg.Message.Attachment.Payload.TemplateType)
	})

	t.Run("message without text or attachments sends nothing", func(t *testing.T) {
		bot, sender := newTestBot()
		bot.HandleMessage(messageEvent("user-1", &models.Message{MID: "mid.1"}), "page-1")
		sender.expectNoSend(t)
	})
}

func TestHandlePostback(t *testing.T) {
	t.Run("keyword payload sends the carousel", func(t *testing.T) {
		bot, sender := newTestBot()
		bot.HandlePostback(models.Messaging{
			Sender:   models.User{ID: "user-1"},
			Postback: &models.Postback{Title: "Ver tipos de panes", Payload: "TIPOS_PANES"},
		}, "page-1")

		msg := sender.waitForSend(t)
		assert.Equal(t, "user-1", msg.Recipient.ID)
		require.NotNil(t, msg.Message.Attachment)
		assert.Len(t, msg.Message.Attachment.Payload.Elements, 3)
	})

	t.Run("unrecognized payload sends nothing", func(t *testing.T) {
		bot, sender := newTestBot()
		bot.HandlePostback(models.Messaging{
			Sender:   models.User{ID: "user-1"},
			Postback: &models.Postback{Payload: "other"},
		}, "page-1")
		sender.expectNoSend(t)
	})
}
