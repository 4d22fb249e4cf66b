package models

// Recipient addresses an outbound message
type Recipient struct {
	ID string `json:"id"`
}

// OutboundMessage is the Send API request body
type OutboundMessage struct {
	Recipient Recipient      `json:"recipient"`
	Message   MessageContent `json:"message"`
}

// MessageContent carries either plain text or a template attachment.
// Exactly one of the two fields is set.
type MessageContent struct {
	Text       string              `json:"text,omitempty"`
	Attachment *TemplateAttachment `json:"attachment,omitempty"`
}

// TemplateAttachment wraps a structured message template
type TemplateAttachment struct {
	Type    string          `json:"type"`
	Payload TemplatePayload `json:"payload"`
}

// TemplatePayload is the body of a button or generic template
type TemplatePayload struct {
	TemplateType string    `json:"template_type"`
	Text         string    `json:"text,omitempty"`
	Buttons      []Button  `json:"buttons,omitempty"`
	Elements     []Element `json:"elements,omitempty"`
}

// Button is a tappable action inside a template
type Button struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	URL     string `json:"url,omitempty"`
	Payload string `json:"payload,omitempty"`
}

// Element is a single card of a generic template carousel
type Element struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	ItemURL  string   `json:"item_url,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`
}

// SendResponse is the Send API response body
type SendResponse struct {
	RecipientID string     `json:"recipient_id,omitempty"`
	MessageID   string     `json:"message_id,omitempty"`
	Error       *SendError `json:"error,omitempty"`
}

// SendError is the Graph API error object returned on failed sends
type SendError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FBTraceID string `json:"fbtrace_id,omitempty"`
}

// SendResult is the interpreted outcome of one Send API call. It is built
// per call, logged, and discarded; nothing persists it.
type SendResult struct {
	Success     bool
	MessageID   string
	RecipientID string
	ErrorDetail string
}
