package usecases

import (
	"context"

	commondto "github.com/parley-chat/parley/internal/application/common/dto"
	"github.com/parley-chat/parley/internal/domain/user"
	"github.com/parley-chat/parley/internal/shared/constants"
	"github.com/parley-chat/parley/internal/shared/errors"
	"github.com/parley-chat/parley/internal/shared/logger"
)

type UpdateProfilePictureCommand struct {
	UserID uint
	Image  *commondto.ImageUpload
}

type UpdateProfilePictureUseCase struct {
	userRepo user.Repository
	images   ImageStore
	logger   logger.Interface
}

func NewUpdateProfilePictureUseCase(userRepo user.Repository, images ImageStore, logger logger.Interface) *UpdateProfilePictureUseCase {
	return &UpdateProfilePictureUseCase{
		userRepo: userRepo,
		images:   images,
		logger:   logger,
	}
}

func (uc *UpdateProfilePictureUseCase) Execute(ctx context.Context, cmd UpdateProfilePictureCommand) (*user.User, error) {
	if cmd.Image == nil {
		return nil, errors.NewValidationError("Profile picture is required")
	}
	if !cmd.Image.IsImage() {
		return nil, errors.NewValidationError("Profile picture must be an image")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("Failed to update profile picture")
	}
	if u == nil {
		return nil, user.NewUserNotFoundError()
	}

	// Old image removal is best effort.
	if prev := u.ProfileImage(); !prev.IsZero() && prev.StorageID != "" {
		if err := uc.images.Delete(ctx, prev.StorageID); err != nil {
			uc.logger.Warnw("failed to delete previous profile picture",
				"error", err,
				"user_id", u.ID(),
				"storage_id", prev.StorageID,
			)
		}
	}

	ref, err := uc.images.Upload(ctx, constants.FolderProfilePictures, cmd.Image)
	if err != nil {
		uc.logger.Errorw("failed to upload profile picture", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("Failed to upload image")
	}

	u.ChangeProfileImage(ref)

	if err := uc.userRepo.UpdateProfileImage(ctx, u.ID(), ref); err != nil {
		uc.logger.Errorw("failed to persist profile picture", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("Failed to update profile picture")
	}

	uc.logger.Infow("profile picture updated", "user_id", u.ID(), "storage_id", ref.StorageID)

	return u, nil
}
