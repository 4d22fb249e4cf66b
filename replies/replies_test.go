package replies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pancitos-bot/models"
)

func TestForMessage(t *testing.T) {
	t.Run("echo messages get no reply", func(t *testing.T) {
		msg := &models.Message{IsEcho: true, Text: "TIPOS_PANES"}
		assert.Nil(t, ForMessage(msg))
	})

	t.Run("quick reply gets the fixed acknowledgment", func(t *testing.T) {
		msg := &models.Message{QuickReply: &models.QuickReply{Payload: "qr"}}
		content := ForMessage(msg)
		require.NotNil(t, content)
		assert.Equal(t, "Quick reply tapped", content.Text)
		assert.Nil(t, content.Attachment)
	})

	t.Run("bread types keyword gets the three-card carousel", func(t *testing.T) {
		content := ForMessage(&models.Message{Text: "TIPOS_PANES"})
		require.NotNil(t, content)
		require.NotNil(t, content.Attachment)
		assert.Equal(t, "template", content.Attachment.Type)

		payload := content.Attachment.Payload
		assert.Equal(t, "generic", payload.TemplateType)
		require.Len(t, payload.Elements, 3)
		assert.Equal(t, "Pan Pita", payload.Elements[0].Title)
		assert.Equal(t, "Pan Batido", payload.Elements[1].Title)
		assert.Equal(t, "Dobladitas", payload.Elements[2].Title)

		for _, el := range payload.Elements {
			assert.NotEmpty(t, el.Subtitle)
			assert.NotEmpty(t, el.ItemURL)
			assert.NotEmpty(t, el.ImageURL)
			assert.Len(t, el.Buttons, 2)
			assert.Equal(t, "web_url", el.Buttons[0].Type)
			assert.Equal(t, "postback", el.Buttons[1].Type)
		}
	})

	t.Run("any other text gets the greeting buttons", func(t *testing.T) {
		for _, text := range []string{"hello", "tipos_panes", "quiero pan"} {
			content := ForMessage(&models.Message{Text: text})
			require.NotNil(t, content, "text %q", text)
			require.NotNil(t, content.Attachment)

			payload := content.Attachment.Payload
			assert.Equal(t, "button", payload.TemplateType)
			assert.Equal(t, "Hola! Bienvenido a Pancitos DevC. En que te podemos ayudar?", payload.Text)
			assert.Len(t, payload.Buttons, 3)
		}
	})

	t.Run("attachment without text gets the fixed acknowledgment", func(t *testing.T) {
		msg := &models.Message{Attachments: []models.Attachment{{Type: "image"}}}
		content := ForMessage(msg)
		require.NotNil(t, content)
		assert.Equal(t, "Message with attachment received", content.Text)
	})

	t.Run("neither text nor attachments gets no reply", func(t *testing.T) {
		assert.Nil(t, ForMessage(&models.Message{MID: "mid.1"}))
	})
}

func TestForPostback(t *testing.T) {
	t.Run("bread types payload gets the carousel", func(t *testing.T) {
		content := ForPostback(&models.Postback{Payload: "TIPOS_PANES"})
		require.NotNil(t, content)
		require.NotNil(t, content.Attachment)
		assert.Equal(t, "generic", content.Attachment.Payload.TemplateType)
		assert.Len(t, content.Attachment.Payload.Elements, 3)
	})

	t.Run("any other payload stays silent", func(t *testing.T) {
		assert.Nil(t, ForPostback(&models.Postback{Payload: "other"}))
		assert.Nil(t, ForPostback(&models.Postback{}))
	})
}

func TestPolicyIsPure(t *testing.T) {
	msg := &models.Message{Text: "TIPOS_PANES"}

	first := ForMessage(msg)
	second := ForMessage(msg)

	// Identical input produces identical output.
	assert.Equal(t, first, second)

	// Payloads are built fresh, never aliased: mutating one must not leak
	// into a payload obtained later.
	first.Attachment.Payload.Elements[0].Title = "mutated"
	third := ForMessage(msg)
	assert.Equal(t, "Pan Pita", third.Attachment.Payload.Elements[0].Title)
	assert.Equal(t, second, third)
}
