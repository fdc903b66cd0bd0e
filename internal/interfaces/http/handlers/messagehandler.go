package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parley-chat/parley/internal/application/message/dto"
	"github.com/parley-chat/parley/internal/application/message/usecases"
	"github.com/parley-chat/parley/internal/interfaces/http/middleware"
	"github.com/parley-chat/parley/internal/shared/errors"
	"github.com/parley-chat/parley/internal/shared/logger"
	"github.com/parley-chat/parley/internal/shared/utils"
)

const messageImageField = "img_file"

type sendMessageUseCase interface {
	Execute(ctx context.Context, cmd usecases.SendMessageCommand) (*usecases.SendMessageResult, error)
}

type getConversationUseCase interface {
	Execute(ctx context.Context, query usecases.GetConversationQuery) ([]*dto.MessageResponse, error)
}

// SendMessageRequest is the non-file part of POST /messages/send/:receiverId.
type SendMessageRequest struct {
	Content string `form:"content" json:"content" binding:"max=5000"`
}

type MessageHandler struct {
	sendUseCase         sendMessageUseCase
	conversationUseCase getConversationUseCase
	maxUploadBytes      int64
	logger              logger.Interface
}

func NewMessageHandler(
	sendUC sendMessageUseCase,
	conversationUC getConversationUseCase,
	maxUploadBytes int64,
	logger logger.Interface,
) *MessageHandler {
	return &MessageHandler{
		sendUseCase:         sendUC,
		conversationUseCase: conversationUC,
		maxUploadBytes:      maxUploadBytes,
		logger:              logger,
	}
}

// GetConversation handles GET /messages/:receiverId/
func (h *MessageHandler) GetConversation(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenInvalidError())
		return
	}

	otherID, err := utils.ParseIDParam(c, "receiverId", "receiver")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	msgs, err := h.conversationUseCase.Execute(c.Request.Context(), usecases.GetConversationQuery{
		CurrentUserID: current.ID(),
		OtherUserID:   otherID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", msgs)
}

// Send handles POST /messages/send/:receiverId
func (h *MessageHandler) Send(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenInvalidError())
		return
	}

	receiverID, err := utils.ParseIDParam(c, "receiverId", "receiver")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	image, closeFile, err := readImageUpload(c, messageImageField, h.maxUploadBytes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeFile()

	result, err := h.sendUseCase.Execute(c.Request.Context(), usecases.SendMessageCommand{
		SenderID:   current.ID(),
		ReceiverID: receiverID,
		Content:    req.Content,
		Image:      image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Message, "Message sent")
}
