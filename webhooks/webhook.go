package webhooks

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"pancitos-bot/config"
	"pancitos-bot/handlers"
	"pancitos-bot/models"
)

// RegisterRoutes mounts the webhook verification and receive endpoints.
func RegisterRoutes(app *fiber.App, cfg *config.Config, bot *handlers.Bot) {
	webhook := app.Group("/webhook")

	// Webhook verification endpoint
	webhook.Get("/", verifyWebhook(cfg))

	// Webhook event handler
	webhook.Post("/", handleWebhookEvent(cfg, bot))
}

// verifyWebhook handles the platform's subscription handshake
func verifyWebhook(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "subscribe" && token == cfg.VerifyToken {
			slog.Info("Webhook verified successfully")
			return c.SendString(challenge)
		}

		slog.Warn("Webhook verification failed", "mode", mode, "token", token)
		return c.SendStatus(fiber.StatusForbidden)
	}
}

// handleWebhookEvent verifies the signature, acknowledges the platform, and
// hands the envelope off for asynchronous processing. Once the signature and
// object type are accepted the response is always 200: anything else makes
// the platform retry and duplicate-process the batch.
func handleWebhookEvent(cfg *config.Config, bot *handlers.Bot) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// The signature covers the raw bytes as received, so it must be
		// checked before any parsing.
		rawBody := c.Body()
		header := c.Get(SignatureHeader)

		if err := VerifySignature(rawBody, header, cfg.AppSecret); err != nil {
			if errors.Is(err, ErrMissingSignature) && cfg.AllowUnsignedWebhooks {
				slog.Warn("Accepting unsigned webhook, ALLOW_UNSIGNED_WEBHOOKS is set")
			} else {
				slog.Warn("Webhook signature rejected", "error", err)
				return c.SendStatus(fiber.StatusForbidden)
			}
		}

		var body models.WebhookEvent
		if err := json.Unmarshal(rawBody, &body); err != nil {
			slog.Error("Failed to parse webhook body", "error", err)
			return c.SendStatus(fiber.StatusBadRequest)
		}

		// Only page events carry work; anything else is acknowledged as a
		// no-op so the platform does not retry.
		if body.Object != "page" {
			slog.Info("Ignoring webhook for non-page object", "object", body.Object)
			return c.SendStatus(fiber.StatusOK)
		}

		// Process webhook asynchronously
		go processWebhookEvent(bot, body)

		// Return immediately to the platform
		return c.SendString("EVENT_RECEIVED")
	}
}

// processWebhookEvent fans out over entries and messaging events in
// received order. Each event is classified once and dispatched to exactly
// one handler; a failing event never stops its siblings.
func processWebhookEvent(bot *handlers.Bot, body models.WebhookEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Webhook processing panicked", "panic", r)
		}
	}()

	for _, entry := range body.Entry {
		pageID := entry.ID

		slog.Info("Processing webhook entry",
			"pageID", pageID,
			"time", entry.Time,
			"events", len(entry.Messaging),
		)

		for _, messaging := range entry.Messaging {
			kind := messaging.Kind()
			slog.Info("Webhook event received",
				"pageID", pageID,
				"senderID", messaging.Sender.ID,
				"kind", kind.String(),
			)

			switch kind {
			case models.EventOptin:
				bot.HandleOptin(messaging, pageID)
			case models.EventMessage:
				bot.HandleMessage(messaging, pageID)
			case models.EventDelivery:
				bot.HandleDelivery(messaging, pageID)
			case models.EventPostback:
				bot.HandlePostback(messaging, pageID)
			case models.EventRead:
				bot.HandleRead(messaging, pageID)
			case models.EventAccountLinking:
				bot.HandleAccountLinking(messaging, pageID)
			default:
				bot.HandleUnknown(messaging, pageID)
			}
		}
	}
}
