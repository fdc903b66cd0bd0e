package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	commondto "github.com/parley-chat/parley/internal/application/common/dto"
	"github.com/parley-chat/parley/internal/application/message/dto"
	"github.com/parley-chat/parley/internal/domain/message"
	"github.com/parley-chat/parley/internal/domain/shared"
	"github.com/parley-chat/parley/internal/domain/user"
	"github.com/parley-chat/parley/internal/shared/constants"
	"github.com/parley-chat/parley/internal/shared/errors"
	"github.com/parley-chat/parley/internal/shared/logger"
)

type SendMessageCommand struct {
	SenderID   uint
	ReceiverID uint
	Content    string
	Image      *commondto.ImageUpload
}

type SendMessageResult struct {
	Message   *dto.MessageResponse
	Delivered bool
}

type SendMessageUseCase struct {
	messageRepo message.Repository
	userRepo    user.Repository
	images      ImageStore
	notifier    DeliveryNotifier
	mapper      *dto.Mapper
	logger      logger.Interface
}

func NewSendMessageUseCase(
	messageRepo message.Repository,
	userRepo user.Repository,
	images ImageStore,
	notifier DeliveryNotifier,
	mapper *dto.Mapper,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		images:      images,
		notifier:    notifier,
		mapper:      mapper,
		logger:      logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error) {
	receiver, err := uc.userRepo.GetByID(ctx, cmd.ReceiverID)
	if err != nil {
		uc.logger.Errorw("failed to get receiver", "error", err, "receiver_id", cmd.ReceiverID)
		return nil, fmt.Errorf("failed to get receiver: %w", err)
	}
	if receiver == nil {
		return nil, message.NewReceiverNotFoundError()
	}

	if strings.TrimSpace(cmd.Content) == "" && cmd.Image == nil {
		return nil, message.ErrEmptyMessage
	}
	if cmd.Image != nil && !cmd.Image.IsImage() {
		return nil, errors.NewValidationError("Attachment must be an image")
	}

	var image *shared.ImageRef
	if cmd.Image != nil {
		ref, err := uc.images.Upload(ctx, constants.FolderChatImages, cmd.Image)
		if err != nil {
			uc.logger.Errorw("failed to upload message image", "error", err, "sender_id", cmd.SenderID)
			return nil, errors.NewInternalError("Failed to upload image")
		}
		image = &ref
	}

	msg, err := message.NewMessage(cmd.SenderID, cmd.ReceiverID, cmd.Content, image)
	if err != nil {
		uc.discardImage(ctx, image)
		return nil, err
	}

	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		uc.logger.Errorw("failed to persist message", "error", err, "sender_id", cmd.SenderID, "receiver_id", cmd.ReceiverID)
		uc.discardImage(ctx, image)
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	resp, err := uc.mapper.ToResponse(msg)
	if err != nil {
		uc.logger.Errorw("failed to render message", "error", err, "message_id", msg.ID())
		return nil, fmt.Errorf("failed to render message: %w", err)
	}

	// The message is stored whether or not the receiver is online.
	delivered := uc.notifier.Notify(strconv.FormatUint(uint64(cmd.ReceiverID), 10), resp)

	uc.logger.Infow("message sent",
		"message_id", msg.ID(),
		"sender_id", cmd.SenderID,
		"receiver_id", cmd.ReceiverID,
		"delivered", delivered,
	)

	return &SendMessageResult{Message: resp, Delivered: delivered}, nil
}

// discardImage removes an upload whose message could not be stored.
func (uc *SendMessageUseCase) discardImage(ctx context.Context, image *shared.ImageRef) {
	if image == nil || image.StorageID == "" {
		return
	}
	if err := uc.images.Delete(ctx, image.StorageID); err != nil {
		uc.logger.Warnw("failed to discard orphaned image", "error", err, "storage_id", image.StorageID)
	}
}
