package model

import (
	"encoding/json"

	"qd-authentication-gateway/internal/autherror"
)

// Failure describes why an operation did not succeed
type Failure struct {
	Code     autherror.ProviderErrorCode
	Message  string
	Original string
}

// OperationResult is returned by every gateway operation.
// Exactly one of user/message or failure is populated.
type OperationResult struct {
	success bool
	user    *UserRef
	message string
	failure *Failure
}

// Succeeded creates a successful result for the given user, which may be nil
func Succeeded(user *UserRef) OperationResult {
	return OperationResult{
		success: true,
		user:    user,
	}
}

// SucceededWithMessage creates a successful result carrying an informative message
func SucceededWithMessage(message string) OperationResult {
	return OperationResult{
		success: true,
		message: message,
	}
}

// Failed creates a failed result
func Failed(failure Failure) OperationResult {
	return OperationResult{
		failure: &failure,
	}
}

// Success reports whether the operation succeeded
func (result OperationResult) Success() bool {
	return result.success
}

// User returns the signed in user, nil on failure
func (result OperationResult) User() *UserRef {
	return result.user
}

// Message returns the informative message of a successful result
func (result OperationResult) Message() string {
	return result.message
}

// Failure returns a copy of the failure, nil on success
func (result OperationResult) Failure() *Failure {
	if result.failure == nil {
		return nil
	}
	failure := *result.failure
	return &failure
}

// DisplayMessage returns the text to show the user
func (result OperationResult) DisplayMessage() string {
	if result.failure != nil {
		return result.failure.Message
	}
	return result.message
}

type resultJSON struct {
	Success       bool     `json:"success"`
	User          *UserRef `json:"user,omitempty"`
	Message       string   `json:"message,omitempty"`
	Error         string   `json:"error,omitempty"`
	Code          string   `json:"code,omitempty"`
	OriginalError string   `json:"originalError,omitempty"`
}

// MarshalJSON renders the result in its success or error shape
func (result OperationResult) MarshalJSON() ([]byte, error) {
	if result.failure != nil {
		return json.Marshal(resultJSON{
			Error:         result.failure.Message,
			Code:          string(result.failure.Code),
			OriginalError: result.failure.Original,
		})
	}
	return json.Marshal(resultJSON{
		Success: true,
		User:    result.user,
		Message: result.message,
	})
}
