package constants

const (
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware.
	ContextKeyUser   = "user"
	ContextKeyUserID = "user_id"
	ContextKeyToken  = "access_token"

	TableUsers    = "users"
	TableMessages = "messages"

	// Object store folders.
	FolderProfilePictures = "user_profiles"
	FolderChatImages      = "chat_images"

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
)
