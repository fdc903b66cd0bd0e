package errors

import "net/http"

const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeAccountInactive    ErrorType = "account_inactive"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeSessionRevoked     ErrorType = "session_revoked"
)

// AuthError is an unauthenticated AppError. SecurityEvent marks failures
// worth counting for brute force detection.
type AuthError struct {
	*AppError
	SecurityEvent bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

func newAuthError(t ErrorType, message string, security bool) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    t,
			Message: message,
			Code:    http.StatusUnauthorized,
		},
		SecurityEvent: security,
	}
}

// NewInvalidCredentialsError is returned for both an unknown email and a
// wrong password so the response does not reveal which one failed.
func NewInvalidCredentialsError() *AuthError {
	return newAuthError(ErrorTypeInvalidCredentials, "Invalid email or password", true)
}

func NewAccountInactiveError() *AuthError {
	return newAuthError(ErrorTypeAccountInactive, "Account is not active", true)
}

func NewTokenExpiredError() *AuthError {
	return newAuthError(ErrorTypeTokenExpired, "Session has expired, please log in again", false)
}

func NewTokenInvalidError() *AuthError {
	return newAuthError(ErrorTypeTokenInvalid, "Not authenticated", false)
}

func NewSessionRevokedError() *AuthError {
	return newAuthError(ErrorTypeSessionRevoked, "Session has been logged out", false)
}
