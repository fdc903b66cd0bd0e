package message

import (
	"fmt"
	"strings"
	"time"

	"github.com/parley-chat/parley/internal/domain/shared"
)

// Message is immutable once created. Every message carries text, an image,
// or both.
type Message struct {
	id         uint
	senderID   uint
	receiverID uint
	content    string
	image      *shared.ImageRef
	createdAt  time.Time
	updatedAt  time.Time
}

// NewMessage rejects a message with neither text nor image. Whitespace-only
// text counts as no text; content is otherwise kept exactly as sent.
func NewMessage(senderID, receiverID uint, content string, image *shared.ImageRef) (*Message, error) {
	if senderID == 0 || receiverID == 0 {
		return nil, fmt.Errorf("sender and receiver are required")
	}
	if strings.TrimSpace(content) == "" && image.IsZero() {
		return nil, ErrEmptyMessage
	}
	if image.IsZero() {
		image = nil
	}

	now := time.Now().UTC()
	return &Message{
		senderID:   senderID,
		receiverID: receiverID,
		content:    content,
		image:      image,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type MessageSnapshot struct {
	ID         uint
	SenderID   uint
	ReceiverID uint
	Content    string
	Image      *shared.ImageRef
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructMessage(s MessageSnapshot) (*Message, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	return &Message{
		id:         s.ID,
		senderID:   s.SenderID,
		receiverID: s.ReceiverID,
		content:    s.Content,
		image:      s.Image,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
	}, nil
}

func (m *Message) ID() uint                { return m.id }
func (m *Message) SenderID() uint          { return m.senderID }
func (m *Message) ReceiverID() uint        { return m.receiverID }
func (m *Message) Content() string         { return m.content }
func (m *Message) Image() *shared.ImageRef { return m.image }
func (m *Message) CreatedAt() time.Time    { return m.createdAt }
func (m *Message) UpdatedAt() time.Time    { return m.updatedAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
