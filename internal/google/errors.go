package google

import (
	"errors"
	"fmt"

	"qd-authentication-gateway/internal/autherror"
)

// ErrSignInCancelled is returned by a CodeSource when the user abandons the consent step
var ErrSignInCancelled = errors.New("sign-in cancelled by user")

// SignInError is a failure reported by the Google sign-in client
type SignInError struct {
	Code    autherror.SocialCode
	Message string
	Err     error
}

// Error returns the error message
func (e *SignInError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("google sign-in %s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("google sign-in %s: %s", e.Code, e.Message)
}

// StatusCode returns the sign-in status code
func (e *SignInError) StatusCode() string {
	return string(e.Code)
}

// Unwrap returns the underlying cause
func (e *SignInError) Unwrap() error {
	return e.Err
}

func newSignInError(code autherror.SocialCode, message string, err error) *SignInError {
	return &SignInError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
