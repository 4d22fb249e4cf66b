// Package replies maps recognized inbound content to the fixed reply
// catalog of the Pancitos DevC page. Everything here is pure: no I/O, no
// clock, no randomness. Payloads are built fresh on every call.
package replies

import "pancitos-bot/models"

// KeywordBreadTypes triggers the product carousel, both as message text and
// as a postback payload.
const KeywordBreadTypes = "TIPOS_PANES"

const (
	greetingText      = "Hola! Bienvenido a Pancitos DevC. En que te podemos ayudar?"
	quickReplyAck     = "Quick reply tapped"
	attachmentAck     = "Message with attachment received"
	pancitosSite      = "https://pancitosdevc.cl"
	pancitosAssetBase = "https://pancitosdevc.cl/assets"
)

// ForMessage decides the reply for an inbound message. It returns nil when
// no reply should be sent (echoes, and messages with neither text nor
// attachments).
func ForMessage(msg *models.Message) *models.MessageContent {
	switch {
	case msg.IsEcho:
		return nil
	case msg.QuickReply != nil:
		return textReply(quickReplyAck)
	case msg.Text != "":
		if msg.Text == KeywordBreadTypes {
			return breadCarousel()
		}
		return greetingButtons()
	case len(msg.Attachments) > 0:
		return textReply(attachmentAck)
	default:
		return nil
	}
}

// ForPostback decides the reply for a button tap. Only the bread-types
// payload is recognized; anything else stays silent.
func ForPostback(pb *models.Postback) *models.MessageContent {
	if pb.Payload == KeywordBreadTypes {
		return breadCarousel()
	}
	return nil
}

func textReply(text string) *models.MessageContent {
	return &models.MessageContent{Text: text}
}

// greetingButtons is the default reply for any unrecognized text.
func greetingButtons() *models.MessageContent {
	return &models.MessageContent{
		Attachment: &models.TemplateAttachment{
			Type: "template",
			Payload: models.TemplatePayload{
				TemplateType: "button",
				Text:         greetingText,
				Buttons: []models.Button{
					{
						Type:    "postback",
						Title:   "Ver tipos de panes",
						Payload: KeywordBreadTypes,
					},
					{
						Type:  "web_url",
						Title: "Visitar la tienda",
						URL:   pancitosSite,
					},
					{
						Type:    "phone_number",
						Title:   "Llamar",
						Payload: "+56912345678",
					},
				},
			},
		},
	}
}

// breadCarousel is the three-card product catalog.
func breadCarousel() *models.MessageContent {
	return &models.MessageContent{
		Attachment: &models.TemplateAttachment{
			Type: "template",
			Payload: models.TemplatePayload{
				TemplateType: "generic",
				Elements: []models.Element{
					breadCard("Pan Pita", "Pan plano, ideal para rellenos", "pan-pita", "PEDIR_PAN_PITA"),
					breadCard("Pan Batido", "Crujiente por fuera, suave por dentro", "pan-batido", "PEDIR_PAN_BATIDO"),
					breadCard("Dobladitas", "Clasicas dobladitas al horno", "dobladitas", "PEDIR_DOBLADITAS"),
				},
			},
		},
	}
}

func breadCard(title, subtitle, slug, orderPayload string) models.Element {
	itemURL := pancitosSite + "/panes/" + slug
	return models.Element{
		Title:    title,
		Subtitle: subtitle,
		ItemURL:  itemURL,
		ImageURL: pancitosAssetBase + "/" + slug + ".jpg",
		Buttons: []models.Button{
			{
				Type:  "web_url",
				Title: "Ver detalle",
				URL:   itemURL,
			},
			{
				Type:    "postback",
				Title:   "Pedir este pan",
				Payload: orderPayload,
			},
		},
	}
}
