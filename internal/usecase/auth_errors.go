package usecase

import "fmt"

// AuthErrorCode is the identity service's failure vocabulary.
type AuthErrorCode string

const (
	AuthInvalidCredential AuthErrorCode = "invalid-credential"
	AuthUserNotFound      AuthErrorCode = "user-not-found"
	AuthWrongPassword     AuthErrorCode = "wrong-password"
	AuthEmailAlreadyInUse AuthErrorCode = "email-already-in-use"
	AuthWeakPassword      AuthErrorCode = "weak-password"
	AuthPasswordTooLong   AuthErrorCode = "password-too-long"
	AuthInvalidEmail      AuthErrorCode = "invalid-email"
	AuthTooManyRequests   AuthErrorCode = "too-many-requests"
	AuthNetworkFailure    AuthErrorCode = "network-failure"
	AuthInvalidResetToken AuthErrorCode = "invalid-action-code"
	AuthInternalError     AuthErrorCode = "internal-error"
)

// AuthError is returned by every identity operation that fails.
type AuthError struct {
	Code AuthErrorCode
	Err  error
}

func NewAuthError(code AuthErrorCode, err error) *AuthError {
	return &AuthError{Code: code, Err: err}
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth %s: %v", e.Code, e.Err)
	}
	return "auth " + string(e.Code)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Message is the text shown to the user.
func (e *AuthError) Message() string { return AuthMessage(e.Code) }

// AuthMessage maps a code to its user-facing message.
func AuthMessage(code AuthErrorCode) string {
	switch code {
	case AuthInvalidCredential, AuthUserNotFound, AuthWrongPassword:
		return "Invalid email or password"
	case AuthEmailAlreadyInUse:
		return "An account with this email already exists"
	case AuthWeakPassword:
		return "Password should be at least 6 characters long"
	case AuthPasswordTooLong:
		return "Password must be at most 72 characters long"
	case AuthInvalidEmail:
		return "Please enter a valid email address"
	case AuthTooManyRequests:
		return "Too many failed attempts. Please try again later"
	case AuthNetworkFailure:
		return "Network error. Please check your internet connection"
	}
	return "An error occurred. Please try again."
}
