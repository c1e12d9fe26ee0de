package autherror

import (
	"errors"
	"regexp"
)

// Kind tags the shape a raw failure arrived in
type Kind int

// Raw failure shapes, in extraction precedence order
const (
	KindUnknown Kind = iota
	KindString
	KindCoded
	KindMessage
)

// Coder is implemented by errors that carry a provider code
type Coder interface {
	ErrorCode() string
}

// Raw is the parsed form of any failure handed to the normalizer
type Raw struct {
	Kind    Kind
	Code    string
	Message string
}

var namespacedCode = regexp.MustCompile(`auth/[a-z-]+`)

// Parse reduces a string, a coded error or any other error to a Raw
func Parse(value interface{}) Raw {
	switch typed := value.(type) {
	case string:
		return Raw{Kind: KindString, Code: typed}
	case error:
		var coder Coder
		if errors.As(typed, &coder) && coder.ErrorCode() != "" {
			return Raw{Kind: KindCoded, Code: coder.ErrorCode(), Message: typed.Error()}
		}
		message := typed.Error()
		if message == "" {
			return Raw{Kind: KindUnknown}
		}
		return Raw{
			Kind:    KindMessage,
			Code:    namespacedCode.FindString(message),
			Message: message,
		}
	default:
		return Raw{Kind: KindUnknown}
	}
}

// ErrorCode returns the provider code carried by the raw failure
func (raw Raw) ErrorCode() ProviderErrorCode {
	switch raw.Kind {
	case KindString, KindCoded:
		return ProviderErrorCode(raw.Code)
	case KindMessage:
		if raw.Code != "" {
			return ProviderErrorCode(raw.Code)
		}
	}
	return CodeUnknown
}

// ExtractErrorCode returns the provider code for any failure value
func ExtractErrorCode(value interface{}) ProviderErrorCode {
	return Parse(value).ErrorCode()
}
