package domain

// ChatRole identifies the author of a chat message.
type ChatRole string

// Chat roles. The assistant side is called "model" on the wire.
const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ImageAttachment is a photo sent alongside a chat turn.
type ImageAttachment struct {
	// Data is the raw image bytes.
	Data []byte

	// MIMEType is the image content type, e.g. "image/jpeg".
	MIMEType string
}

// ChatMessage is one turn in a first-aid conversation. Messages form an
// append-only ordered sequence scoped to a single session.
type ChatMessage struct {
	ID   string   `json:"id"`
	Role ChatRole `json:"role"`
	Text string   `json:"text"`

	// HasImage marks turns that carried a photo. The bytes themselves are
	// not retained on the message once sent.
	HasImage bool `json:"has_image,omitempty"`
}
