package message

import "context"

type Repository interface {
	Create(ctx context.Context, msg *Message) error

	// ListConversation returns all messages exchanged between a and b in
	// either direction, ordered by creation time then ID.
	ListConversation(ctx context.Context, a, b uint) ([]*Message, error)
}
