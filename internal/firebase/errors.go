package firebase

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"google.golang.org/api/googleapi"

	"qd-authentication-gateway/internal/autherror"
)

// Error is a failure reported by the identity provider
type Error struct {
	Code    autherror.ProviderErrorCode
	Message string
}

// Error returns the error message
func (e *Error) Error() string {
	return fmt.Sprintf("firebase: %s (%s)", e.Message, e.Code)
}

// ErrorCode returns the provider error code
func (e *Error) ErrorCode() string {
	return string(e.Code)
}

// restErrorCodes maps identity toolkit REST reasons to provider codes
var restErrorCodes = map[string]autherror.ProviderErrorCode{
	"EMAIL_EXISTS":                     autherror.CodeEmailAlreadyInUse,
	"EMAIL_NOT_FOUND":                  autherror.CodeUserNotFound,
	"INVALID_PASSWORD":                 autherror.CodeWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":        autherror.CodeInvalidCredential,
	"INVALID_IDP_RESPONSE":             autherror.CodeInvalidCredential,
	"USER_DISABLED":                    autherror.CodeUserDisabled,
	"WEAK_PASSWORD":                    autherror.CodeWeakPassword,
	"OPERATION_NOT_ALLOWED":            autherror.CodeOperationNotAllowed,
	"PASSWORD_LOGIN_DISABLED":          autherror.CodeOperationNotAllowed,
	"INVALID_EMAIL":                    autherror.CodeInvalidEmail,
	"MISSING_EMAIL":                    autherror.CodeInvalidEmail,
	"TOO_MANY_ATTEMPTS_TRY_LATER":      autherror.CodeTooManyRequests,
	"FEDERATED_USER_ID_ALREADY_LINKED": autherror.CodeAccountExistsWithDifferentCredential,
	"CREDENTIAL_TOO_OLD_LOGIN_AGAIN":   autherror.CodeRequiresRecentLogin,
	"INVALID_CODE":                     autherror.CodeInvalidVerificationCode,
	"INVALID_SESSION_INFO":             autherror.CodeInvalidVerificationID,
	"SESSION_EXPIRED":                  autherror.CodeInvalidVerificationID,
}

// restReason extracts the leading reason of a REST error message,
// e.g. "WEAK_PASSWORD : Password should be at least 6 characters"
func restReason(message string) string {
	reason := strings.TrimSpace(message)
	if index := strings.IndexAny(reason, " :"); index >= 0 {
		reason = reason[:index]
	}
	return reason
}

// translateError converts a transport or REST failure into an *Error
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var providerError *Error
	if errors.As(err, &providerError) {
		return providerError
	}

	var apiError *googleapi.Error
	if errors.As(err, &apiError) {
		if code, ok := restErrorCodes[restReason(apiError.Message)]; ok {
			return &Error{Code: code, Message: apiError.Message}
		}
		if apiError.Code == http.StatusTooManyRequests {
			return &Error{Code: autherror.CodeTooManyRequests, Message: apiError.Message}
		}
		return &Error{Code: autherror.CodeInternalError, Message: apiError.Error()}
	}

	var urlError *url.Error
	var netError net.Error
	if errors.As(err, &urlError) || errors.As(err, &netError) {
		return &Error{Code: autherror.CodeNetworkRequestFailed, Message: err.Error()}
	}

	return &Error{Code: autherror.CodeInternalError, Message: err.Error()}
}
