package dto

import (
	"time"

	"github.com/parley-chat/parley/internal/domain/message"
	"github.com/parley-chat/parley/internal/shared/services/markdown"
)

// MessageResponse is a message as clients and socket pushes see it.
// Content is kept as sent; ContentHTML is its sanitized Markdown rendering.
type MessageResponse struct {
	ID          uint      `json:"id"`
	SenderID    uint      `json:"sender_id"`
	ReceiverID  uint      `json:"receiver_id"`
	Content     *string   `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	ImageURL    *string   `json:"image_url"`
	ImageID     *string   `json:"image_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Mapper converts message entities, rendering their text on the way.
type Mapper struct {
	renderer markdown.Renderer
}

func NewMapper(renderer markdown.Renderer) *Mapper {
	return &Mapper{renderer: renderer}
}

func (m *Mapper) ToResponse(msg *message.Message) (*MessageResponse, error) {
	resp := &MessageResponse{
		ID:         msg.ID(),
		SenderID:   msg.SenderID(),
		ReceiverID: msg.ReceiverID(),
		CreatedAt:  msg.CreatedAt(),
		UpdatedAt:  msg.UpdatedAt(),
	}

	if content := msg.Content(); content != "" {
		resp.Content = &content
		html, err := m.renderer.Render(content)
		if err != nil {
			return nil, err
		}
		resp.ContentHTML = html
	}

	if img := msg.Image(); !img.IsZero() {
		url, id := img.URL, img.StorageID
		resp.ImageURL = &url
		if id != "" {
			resp.ImageID = &id
		}
	}

	return resp, nil
}

func (m *Mapper) ToResponses(msgs []*message.Message) ([]*MessageResponse, error) {
	out := make([]*MessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		resp, err := m.ToResponse(msg)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
