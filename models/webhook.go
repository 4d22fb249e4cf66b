package models

// WebhookEvent represents the main webhook payload from Facebook
type WebhookEvent struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry represents a page entry in the webhook
type Entry struct {
	ID        string      `json:"id"`
	Time      int64       `json:"time"`
	Messaging []Messaging `json:"messaging,omitempty"`
}

// Messaging represents a single messaging event. The platform sets exactly
// one of the optional payload fields; which one is set determines the event
// kind (see Kind).
type Messaging struct {
	Sender         User            `json:"sender"`
	Recipient      User            `json:"recipient"`
	Timestamp      int64           `json:"timestamp"`
	Optin          *Optin          `json:"optin,omitempty"`
	Message        *Message        `json:"message,omitempty"`
	Delivery       *Delivery       `json:"delivery,omitempty"`
	Postback       *Postback       `json:"postback,omitempty"`
	Read           *Read           `json:"read,omitempty"`
	AccountLinking *AccountLinking `json:"account_linking,omitempty"`
}

// User represents a Facebook user
type User struct {
	ID string `json:"id"`
}

// Message represents an inbound message
type Message struct {
	MID         string       `json:"mid"`
	IsEcho      bool         `json:"is_echo,omitempty"`
	AppID       int64        `json:"app_id,omitempty"`
	Metadata    string       `json:"metadata,omitempty"`
	Text        string       `json:"text,omitempty"`
	QuickReply  *QuickReply  `json:"quick_reply,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// QuickReply represents a tapped quick reply
type QuickReply struct {
	Payload string `json:"payload"`
}

// Attachment represents a message attachment
type Attachment struct {
	Type    string            `json:"type"`
	Payload AttachmentPayload `json:"payload"`
}

// AttachmentPayload represents attachment payload
type AttachmentPayload struct {
	URL string `json:"url,omitempty"`
}

// Optin represents a plugin opt-in event
type Optin struct {
	Ref string `json:"ref"`
}

// Delivery confirms messages delivered up to the watermark
type Delivery struct {
	MIDs      []string `json:"mids"`
	Watermark int64    `json:"watermark"`
}

// Postback represents a button tap carrying a developer-defined payload
type Postback struct {
	Title   string `json:"title,omitempty"`
	Payload string `json:"payload"`
}

// Read confirms messages read up to the watermark
type Read struct {
	Watermark int64 `json:"watermark"`
}

// AccountLinking reports the outcome of an account linking flow
type AccountLinking struct {
	Status            string `json:"status"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}

// EventKind identifies which payload field of a Messaging event is set.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventOptin
	EventMessage
	EventDelivery
	EventPostback
	EventRead
	EventAccountLinking
)

// String returns the platform's field name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventOptin:
		return "optin"
	case EventMessage:
		return "message"
	case EventDelivery:
		return "delivery"
	case EventPostback:
		return "postback"
	case EventRead:
		return "read"
	case EventAccountLinking:
		return "account_linking"
	default:
		return "unknown"
	}
}

// Kind classifies the event by inspecting which payload field is populated.
// The platform sets exactly one, but if several are present the first match
// in this fixed order wins, so classification stays deterministic:
// optin, message, delivery, postback, read, account_linking.
func (m *Messaging) Kind() EventKind {
	switch {
	case m.Optin != nil:
		return EventOptin
	case m.Message != nil:
		return EventMessage
	case m.Delivery != nil:
		return EventDelivery
	case m.Postback != nil:
		return EventPostback
	case m.Read != nil:
		return EventRead
	case m.AccountLinking != nil:
		return EventAccountLinking
	default:
		return EventUnknown
	}
}
