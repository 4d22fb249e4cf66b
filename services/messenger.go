package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"pancitos-bot/models"
)

const fbGraphAPI = "https://graph.facebook.com/v2.8"

// sendTimeout bounds each Send API call. The platform webhook ack never
// waits on outbound sends, so a hung call would otherwise leak a goroutine
// per message.
const sendTimeout = 10 * time.Second

// Messenger is the Send API client. It holds the page access token and a
// bounded-timeout HTTP client; both are set once and never mutated.
type Messenger struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

// NewMessenger builds a Send API client for the given page access token.
func NewMessenger(accessToken string) *Messenger {
	return &Messenger{
		baseURL:     fbGraphAPI,
		accessToken: accessToken,
		client:      &http.Client{Timeout: sendTimeout},
	}
}

// NewMessengerWithBase is NewMessenger against a non-default Graph API base
// URL, used by tests to point the client at a local server.
func NewMessengerWithBase(baseURL, accessToken string) *Messenger {
	m := NewMessenger(accessToken)
	m.baseURL = baseURL
	return m
}

// Send delivers one outbound message and interprets the response. The
// outcome is logged and returned; it is never an error to the caller, and
// there is no retry. A 200 without a message_id is reported as a degraded
// success so logs can tell the two apart.
func (m *Messenger) Send(ctx context.Context, msg models.OutboundMessage) models.SendResult {
	recipientID := msg.Recipient.ID
	url := fmt.Sprintf("%s/me/messages?access_token=%s", m.baseURL, m.accessToken)

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return m.failure(recipientID, fmt.Sprintf("marshal message: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return m.failure(recipientID, fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return m.failure(recipientID, fmt.Sprintf("transport: %v", err))
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var sendResp models.SendResponse
	if err := json.Unmarshal(body, &sendResp); err != nil {
		sendResp = models.SendResponse{}
	}

	if resp.StatusCode != http.StatusOK {
		detail := fmt.Sprintf("status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		if sendResp.Error != nil {
			detail = fmt.Sprintf("%s: %s (code %d, type %s)",
				detail, sendResp.Error.Message, sendResp.Error.Code, sendResp.Error.Type)
		}
		return m.failure(recipientID, detail)
	}

	if sendResp.MessageID == "" {
		slog.Warn("Send API accepted message but returned no message id",
			"recipientID", recipientID,
		)
		return models.SendResult{
			Success:     true,
			RecipientID: sendResp.RecipientID,
		}
	}

	slog.Info("Message sent",
		"messageID", sendResp.MessageID,
		"recipientID", sendResp.RecipientID,
	)
	return models.SendResult{
		Success:     true,
		MessageID:   sendResp.MessageID,
		RecipientID: sendResp.RecipientID,
	}
}

func (m *Messenger) failure(recipientID, detail string) models.SendResult {
	slog.Error("Failed to send message",
		"recipientID", recipientID,
		"detail", detail,
	)
	return models.SendResult{
		Success:     false,
		RecipientID: recipientID,
		ErrorDetail: detail,
	}
}
