package autherror

import "errors"

// SocialCode is a status code reported by the social sign-in capability
type SocialCode string

// Social sign-in status codes
const (
	SocialSignInCancelled          SocialCode = "SIGN_IN_CANCELLED"
	SocialInProgress               SocialCode = "IN_PROGRESS"
	SocialPlayServicesNotAvailable SocialCode = "PLAY_SERVICES_NOT_AVAILABLE"
	SocialSignInRequired           SocialCode = "SIGN_IN_REQUIRED"
	SocialSignInFailed             SocialCode = "SIGN_IN_FAILED"
)

// Social sign-in fallbacks
const (
	SocialFallbackMessage   = "Sign-in failed. Please try again."
	SocialUnexpectedMessage = "An unexpected error occurred during sign-in. Please try again."
)

var socialMessages = map[SocialCode]string{
	SocialSignInCancelled:          "Sign-in was cancelled. Please try again.",
	SocialInProgress:               "Sign-in is already in progress. Please wait.",
	SocialPlayServicesNotAvailable: "Google Play Services is not available or outdated. Please update Google Play Services.",
	SocialSignInRequired:           "Please sign in to your Google account first.",
	SocialSignInFailed:             "Sign-in failed. Please check your internet connection and try again.",
}

// SocialCodes lists every social status code with a dedicated message
func SocialCodes() []SocialCode {
	return []SocialCode{
		SocialSignInCancelled,
		SocialInProgress,
		SocialPlayServicesNotAvailable,
		SocialSignInRequired,
		SocialSignInFailed,
	}
}

// StatusCoder is implemented by errors raised by the social sign-in capability
type StatusCoder interface {
	StatusCode() string
}

// HasStringCode reports whether the error carries a social status code
func HasStringCode(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var coder StatusCoder
	if !errors.As(err, &coder) || coder.StatusCode() == "" {
		return "", false
	}
	return coder.StatusCode(), true
}

// SocialCodeMessage returns the message for a social status code
func SocialCodeMessage(code SocialCode) string {
	if message, ok := socialMessages[code]; ok {
		return message
	}
	return SocialFallbackMessage
}

// SocialMessage returns the user facing message for a social sign-in failure
func SocialMessage(err error) string {
	code, ok := HasStringCode(err)
	if !ok {
		return SocialUnexpectedMessage
	}
	return SocialCodeMessage(SocialCode(code))
}
