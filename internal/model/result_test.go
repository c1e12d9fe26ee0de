package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"qd-authentication-gateway/internal/autherror"
)

func TestOperationResult(test *testing.T) {
	test.Run("Succeeded_User", func(test *testing.T) {
		result := Succeeded(NewUserRef("uid-1", "test@example.com"))

		assert.True(test, result.Success())
		assert.Equal(test, "uid-1", result.User().ID)
		assert.Nil(test, result.Failure())
	})
	test.Run("SucceededWithMessage", func(test *testing.T) {
		result := SucceededWithMessage("Password reset email sent successfully")

		assert.True(test, result.Success())
		assert.Nil(test, result.User())
		assert.Equal(test, "Password reset email sent successfully", result.DisplayMessage())
	})
	test.Run("Failed", func(test *testing.T) {
		result := Failed(Failure{
			Code:     autherror.CodeInvalidEmail,
			Message:  "Please enter a valid email address.",
			Original: "INVALID_EMAIL",
		})

		assert.False(test, result.Success())
		assert.Nil(test, result.User())
		assert.Equal(test, autherror.CodeInvalidEmail, result.Failure().Code)
		assert.Equal(test, "Please enter a valid email address.", result.DisplayMessage())
	})
	test.Run("Failure_Is_Copied", func(test *testing.T) {
		result := Failed(Failure{Code: autherror.CodeUnknown, Message: "first"})

		result.Failure().Message = "changed"

		assert.Equal(test, "first", result.Failure().Message)
	})
	test.Run("MarshalJSON_Success", func(test *testing.T) {
		data, err := json.Marshal(Succeeded(NewUserRef("uid-1", "test@example.com")))

		assert.NoError(test, err)
		assert.JSONEq(test, `{"success":true,"user":{"id":"uid-1","email":"test@example.com"}}`, string(data))
	})
	test.Run("MarshalJSON_Failure", func(test *testing.T) {
		data, err := json.Marshal(Failed(Failure{
			Code:     autherror.CodeWrongPassword,
			Message:  "Incorrect password.",
			Original: "INVALID_PASSWORD",
		}))

		assert.NoError(test, err)
		assert.JSONEq(
			test,
			`{"success":false,"error":"Incorrect password.","code":"auth/wrong-password","originalError":"INVALID_PASSWORD"}`,
			string(data),
		)
	})
}
