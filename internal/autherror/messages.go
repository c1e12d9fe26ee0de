package autherror

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrorContext selects the phrasing used for a provider code
type ErrorContext string

// Operation contexts
const (
	ContextLogin         ErrorContext = "login"
	ContextRegistration  ErrorContext = "registration"
	ContextPasswordReset ErrorContext = "password-reset"
	ContextGmail         ErrorContext = "gmail"
	ContextLogout        ErrorContext = "logout"
	ContextGeneral       ErrorContext = "general"
)

// ProviderErrorCode is a normalized identity provider failure reason
type ProviderErrorCode string

const providerNamespace = "auth/"

// Provider codes with a dedicated message
const (
	CodeInvalidCredential                    ProviderErrorCode = "auth/invalid-credential"
	CodeUserNotFound                         ProviderErrorCode = "auth/user-not-found"
	CodeWrongPassword                        ProviderErrorCode = "auth/wrong-password"
	CodeUserDisabled                         ProviderErrorCode = "auth/user-disabled"
	CodeEmailAlreadyInUse                    ProviderErrorCode = "auth/email-already-in-use"
	CodeWeakPassword                         ProviderErrorCode = "auth/weak-password"
	CodeOperationNotAllowed                  ProviderErrorCode = "auth/operation-not-allowed"
	CodeInvalidEmail                         ProviderErrorCode = "auth/invalid-email"
	CodeTooManyRequests                      ProviderErrorCode = "auth/too-many-requests"
	CodeNetworkRequestFailed                 ProviderErrorCode = "auth/network-request-failed"
	CodePopupClosedByUser                    ProviderErrorCode = "auth/popup-closed-by-user"
	CodePopupBlocked                         ProviderErrorCode = "auth/popup-blocked"
	CodeAccountExistsWithDifferentCredential ProviderErrorCode = "auth/account-exists-with-different-credential"
	CodeRequiresRecentLogin                  ProviderErrorCode = "auth/requires-recent-login"
	CodeInvalidVerificationCode              ProviderErrorCode = "auth/invalid-verification-code"
	CodeInvalidVerificationID                ProviderErrorCode = "auth/invalid-verification-id"
	CodeInternalError                        ProviderErrorCode = "auth/internal-error"
	CodeUnknown                              ProviderErrorCode = "unknown-error"
)

// FallbackMessage is returned for codes without a dedicated message
const FallbackMessage = "An unexpected error occurred. Please try again or contact support if the problem persists."

var messages = map[ProviderErrorCode]string{
	CodeInvalidCredential:                    "Your username or password is incorrect. If you forgot your password, please click 'Forgot Password'.",
	CodeUserNotFound:                         "No account found with this email. Please check your email or create a new account.",
	CodeWrongPassword:                        "Incorrect password. Please try again or use 'Forgot Password' to reset it.",
	CodeUserDisabled:                         "This account has been disabled. Please contact support for assistance.",
	CodeEmailAlreadyInUse:                    "This email is already registered. Please sign in instead, or use a different email address.",
	CodeWeakPassword:                         "Password is too weak. Please use at least 6 characters with a mix of letters and numbers.",
	CodeOperationNotAllowed:                  "Email/password authentication is not enabled. Please contact support.",
	CodeInvalidEmail:                         "Please enter a valid email address.",
	CodeTooManyRequests:                      "Too many failed attempts. Please try again later.",
	CodeNetworkRequestFailed:                 "Network error. Please check your internet connection and try again.",
	CodePopupClosedByUser:                    "Gmail login was cancelled. Please try again.",
	CodePopupBlocked:                         "Gmail login popup was blocked. Please allow popups and try again.",
	CodeAccountExistsWithDifferentCredential: "An account already exists with this email using a different sign-in method. Please try signing in with Google instead.",
	CodeRequiresRecentLogin:                  "For security reasons, please sign in again to continue.",
	CodeInvalidVerificationCode:              "Invalid verification code. Please check your email and try again.",
	CodeInvalidVerificationID:                "Verification link has expired. Please request a new one.",
}

var contextMessages = map[ErrorContext]map[ProviderErrorCode]string{
	ContextPasswordReset: {
		CodeTooManyRequests: "Too many reset attempts. Please wait a few minutes before trying again.",
	},
}

// Codes lists every provider code with a dedicated message
func Codes() []ProviderErrorCode {
	return []ProviderErrorCode{
		CodeInvalidCredential,
		CodeUserNotFound,
		CodeWrongPassword,
		CodeUserDisabled,
		CodeEmailAlreadyInUse,
		CodeWeakPassword,
		CodeOperationNotAllowed,
		CodeInvalidEmail,
		CodeTooManyRequests,
		CodeNetworkRequestFailed,
		CodePopupClosedByUser,
		CodePopupBlocked,
		CodeAccountExistsWithDifferentCredential,
		CodeRequiresRecentLogin,
		CodeInvalidVerificationCode,
		CodeInvalidVerificationID,
	}
}

// Normalize adds the provider namespace to a bare code
func Normalize(code ProviderErrorCode) ProviderErrorCode {
	if code == "" || code == CodeUnknown || strings.HasPrefix(string(code), providerNamespace) {
		return code
	}
	return ProviderErrorCode(providerNamespace + string(code))
}

// MapToMessage returns the user facing message for a code in the given context.
// Codes are matched with or without the provider namespace.
func MapToMessage(code ProviderErrorCode, errorContext ErrorContext) string {
	normalized := Normalize(code)
	if overrides, ok := contextMessages[errorContext]; ok {
		if message, ok := overrides[normalized]; ok {
			return message
		}
	}
	if message, ok := messages[normalized]; ok {
		return message
	}
	log.Warn().
		Str("code", string(code)).
		Str("context", string(errorContext)).
		Msg("Unhandled identity provider error code")
	return FallbackMessage
}

// UserFriendly returns the user facing message for any failure value
func UserFriendly(value interface{}, errorContext ErrorContext) string {
	return MapToMessage(ExtractErrorCode(value), errorContext)
}
