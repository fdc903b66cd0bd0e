package usecases

import (
	"context"

	commondto "github.com/parley-chat/parley/internal/application/common/dto"
	"github.com/parley-chat/parley/internal/domain/shared"
)

type ImageStore interface {
	Upload(ctx context.Context, folder string, image *commondto.ImageUpload) (shared.ImageRef, error)
	Delete(ctx context.Context, storageID string) error
}

// DeliveryNotifier pushes a payload to a user's live connection, if any.
// It reports whether the payload was handed off; it never queues.
type DeliveryNotifier interface {
	Notify(receiverID string, payload any) bool
}
