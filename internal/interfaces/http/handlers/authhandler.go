package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parley-chat/parley/internal/application/user/dto"
	"github.com/parley-chat/parley/internal/application/user/usecases"
	"github.com/parley-chat/parley/internal/interfaces/http/middleware"
	"github.com/parley-chat/parley/internal/shared/config"
	"github.com/parley-chat/parley/internal/shared/errors"
	"github.com/parley-chat/parley/internal/shared/logger"
	"github.com/parley-chat/parley/internal/shared/utils"
)

const profilePictureField = "profilePic"

type AuthHandler struct {
	registerUseCase      registerUseCase
	loginUseCase         loginUseCase
	logoutUseCase        logoutUseCase
	updateProfileUseCase updateProfilePictureUseCase
	listUsersUseCase     listUsersUseCase
	cookieConfig         config.CookieConfig
	maxUploadBytes       int64
	now                  func() time.Time
	logger               logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	updateProfileUC updateProfilePictureUseCase,
	listUsersUC listUsersUseCase,
	cookieConfig config.CookieConfig,
	maxUploadBytes int64,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:      registerUC,
		loginUseCase:         loginUC,
		logoutUseCase:        logoutUC,
		updateProfileUseCase: updateProfileUC,
		listUsersUseCase:     listUsersUC,
		cookieConfig:         cookieConfig,
		maxUploadBytes:       maxUploadBytes,
		now:                  time.Now,
		logger:               logger,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterWithPasswordCommand{
		Username:        req.Username,
		Email:           req.Email,
		Gender:          req.Gender,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.logger.Warnw("registration failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	utils.CreatedResponse(c, dto.ToUserResponse(result.User), "User registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateValidationError(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	utils.SuccessResponse(c, http.StatusOK, "Login successful", dto.ToUserResponse(result.User))
}

// Logout handles POST /auth/logout. The cookie is cleared even if revocation fails.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := utils.GetSessionToken(c)
	utils.ClearSessionCookie(c, h.cookieConfig)

	if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{Token: token}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logout successful", nil)
}

// UpdateProfile handles PUT /auth/update-profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenInvalidError())
		return
	}

	image, closeFile, err := readImageUpload(c, profilePictureField, h.maxUploadBytes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeFile()

	if image == nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Profile picture is required"))
		return
	}

	updated, err := h.updateProfileUseCase.Execute(c.Request.Context(), usecases.UpdateProfilePictureCommand{
		UserID: current.ID(),
		Image:  image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", dto.ToUserResponse(updated))
}

// ListUsers handles GET /auth/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenInvalidError())
		return
	}

	users, err := h.listUsersUseCase.Execute(c.Request.Context(), current.ID())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToUserResponses(users))
}

// Check handles GET /auth/check
func (h *AuthHandler) Check(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenInvalidError())
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToUserResponse(current))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token *usecases.SessionToken) {
	maxAge := int(token.ExpiresAt.Sub(h.now()).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	utils.SetSessionCookie(c, h.cookieConfig, token.Value, maxAge)
}
