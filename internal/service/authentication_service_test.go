package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"qd-authentication-gateway/internal/autherror"
	"qd-authentication-gateway/internal/firebase"
	firebaseMock "qd-authentication-gateway/internal/firebase/mock"
	"qd-authentication-gateway/internal/google"
	googleMock "qd-authentication-gateway/internal/google/mock"
	"qd-authentication-gateway/internal/log"
	loggerMock "qd-authentication-gateway/internal/log/mock"
	"qd-authentication-gateway/internal/model"
)

const (
	testEmail       = "test@example.com"
	testPassword    = "password"
	testUserID      = "uid-123"
	testIDToken     = "google-id-token"
	testAccessToken = "google-access-token"
)

type authenticationServiceMocks struct {
	identity *firebaseMock.MockIdentityProviderer
	social   *googleMock.MockSignInClienter
	logger   *loggerMock.MockLoggerer
	service  AuthenticationServicer
	ctx      context.Context
}

func createAuthenticationService(controller *gomock.Controller) *authenticationServiceMocks {
	mockIdentity := firebaseMock.NewMockIdentityProviderer(controller)
	mockSocial := googleMock.NewMockSignInClienter(controller)
	mockLogger := loggerMock.NewMockLoggerer(controller)
	ctx := log.AddLoggerToContext(context.Background(), mockLogger)

	return &authenticationServiceMocks{
		identity: mockIdentity,
		social:   mockSocial,
		logger:   mockLogger,
		service:  NewAuthenticationService(mockIdentity, mockSocial, log.NewLogFactory("test")),
		ctx:      ctx,
	}
}

func TestAuthenticationService(test *testing.T) {
	testUser := model.NewUserRef(testUserID, testEmail)

	// Register
	test.Run("Register_Success", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)

		mocks.identity.EXPECT().CreateUserWithPassword(gomock.Any(), testEmail, testPassword).Return(testUser, nil)
		mocks.logger.EXPECT().Info("User registered: " + testUserID)

		// Act
		result := mocks.service.Register(mocks.ctx, testEmail, testPassword)

		// Assert
		assert.True(test, result.Success())
		assert.Equal(test, testUser, result.User())
		assert.Nil(test, result.Failure())
	})
	test.Run("Register_Email_In_Use", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		providerError := &firebase.Error{Code: autherror.CodeEmailAlreadyInUse, Message: "EMAIL_EXISTS"}

		mocks.identity.EXPECT().CreateUserWithPassword(gomock.Any(), testEmail, testPassword).Return(nil, providerError)
		mocks.logger.EXPECT().Error(providerError, "Error registering user")

		// Act
		result := mocks.service.Register(mocks.ctx, testEmail, testPassword)

		// Assert
		assert.False(test, result.Success())
		assert.Equal(test, &model.Failure{
			Code:     autherror.CodeEmailAlreadyInUse,
			Message:  "This email is already registered. Please sign in instead, or use a different email address.",
			Original: providerError.Error(),
		}, result.Failure())
	})
	test.Run("Register_Unknown_Error_Falls_Back", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		providerError := errors.New("boom")

		mocks.identity.EXPECT().CreateUserWithPassword(gomock.Any(), testEmail, testPassword).Return(nil, providerError)
		mocks.logger.EXPECT().Error(providerError, "Error registering user")

		// Act
		result := mocks.service.Register(mocks.ctx, testEmail, testPassword)

		// Assert
		assert.False(test, result.Success())
		assert.Equal(test, autherror.CodeUnknown, result.Failure().Code)
		assert.Equal(test, autherror.FallbackMessage, result.Failure().Message)
		assert.Equal(test, "boom", result.Failure().Original)
	})
	test.Run("Register_Logger_From_Factory", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mockIdentity := firebaseMock.NewMockIdentityProviderer(controller)
		mockSocial := googleMock.NewMockSignInClienter(controller)
		var output bytes.Buffer
		service := NewAuthenticationService(mockIdentity, mockSocial, log.NewLogFactoryWithOutput("test", &output))

		mockIdentity.EXPECT().CreateUserWithPassword(gomock.Any(), testEmail, testPassword).
			Return(nil, &firebase.Error{Code: autherror.CodeWeakPassword, Message: "WEAK_PASSWORD"})

		// Act
		result := service.Register(context.Background(), testEmail, testPassword)

		// Assert
		assert.False(test, result.Success())
		assert.Equal(test, autherror.CodeWeakPassword, result.Failure().Code)
		assert.Contains(test, output.String(), "Error registering user")
		assert.Contains(test, output.String(), log.CorrelationIDKey)
	})

	// Login
	test.Run("Login_Success", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)

		mocks.identity.EXPECT().SignInWithPassword(gomock.Any(), testEmail, testPassword).Return(testUser, nil)
		mocks.logger.EXPECT().Info("User logged in: " + testUserID)

		// Act
		result := mocks.service.Login(mocks.ctx, testEmail, testPassword)

		// Assert
		assert.True(test, result.Success())
		assert.Equal(test, testUser, result.User())
	})
	test.Run("Login_Invalid_Credential", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		providerError := &firebase.Error{Code: autherror.CodeInvalidCredential, Message: "INVALID_LOGIN_CREDENTIALS"}

		mocks.identity.EXPECT().SignInWithPassword(gomock.Any(), testEmail, testPassword).Return(nil, providerError)
		mocks.logger.EXPECT().Error(providerError, "Error logging in user")

		// Act
		result := mocks.service.Login(mocks.ctx, testEmail, testPassword)

		// Assert
		assert.False(test, result.Success())
		assert.Equal(test, autherror.CodeInvalidCredential, result.Failure().Code)
		assert.Equal(test, autherror.MapToMessage(autherror.CodeInvalidCredential, autherror.ContextLogin), result.Failure().Message)
	})
	test.Run("Login_Too_Many_Requests_Uses_Login_Wording", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		providerError := &firebase.Error{Code: autherror.CodeTooManyRequests, Message: "TOO_MANY_ATTEMPTS_TRY_LATER"}

		mocks.identity.EXPECT().SignInWithPassword(gomock.Any(), testEmail, testPassword).Return(nil, providerError)
		mocks.logger.EXPECT().Error(providerError, "Error logging in user")

		// Act
		result := mocks.service.Login(mocks.ctx, testEmail, testPassword)

		// Assert
		assert.Equal(test, "Too many failed attempts. Please try again later.", result.Failure().Message)
	})
	test.Run("Login_Wrapped_Provider_Error", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		providerError := &firebase.Error{Code: autherror.CodeUserDisabled, Message: "USER_DISABLED"}
		wrappedError := errors.Join(errors.New("sign-in"), providerError)

		mocks.identity.EXPECT().SignInWithPassword(gomock.Any(), testEmail, testPassword).Return(nil, wrappedError)
		mocks.logger.EXPECT().Error(wrappedError, "Error logging in user")

		// Act
		result := mocks.service.Login(mocks.ctx, testEmail, testPassword)

		// Assert
		assert.Equal(test, autherror.CodeUserDisabled, result.Failure().Code)
	})

	// LoginWithGoogle
	test.Run("LoginWithGoogle_Success", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)

		gomock.InOrder(
			mocks.social.EXPECT().HasPlayServices(gomock.Any()).Return(nil),
			mocks.social.EXPECT().SignIn(gomock.Any()).Return(&google.SignInResponse{
				User:    &google.User{ID: "google-123", Email: testEmail},
				IDToken: testIDToken,
			}, nil),
			mocks.social.EXPECT().GetTokens(gomock.Any()).Return(&google.Tokens{
				IDToken:     testIDToken,
				AccessToken: testAccessToken,
			}, nil),
			mocks.identity.EXPECT().
				SignInWithCredential(gomock.Any(), firebase.GoogleCredential(testIDToken, testAccessToken)).
				Return(testUser, nil),
		)
		mocks.logger.EXPECT().Info("User logged in with Google: " + testUserID)

		// Act
		result := mocks.service.LoginWithGoogle(mocks.ctx)

		// Assert
		assert.True(test, result.Success())
		assert.Equal(test, testUser, result.User())
	})
	test.Run("LoginWithGoogle_Play_Services_Not_Available", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		socialError := &google.SignInError{Code: autherror.SocialPlayServicesNotAvailable, Message: "not configured"}

		mocks.social.EXPECT().HasPlayServices(gomock.Any()).Return(socialError)
		mocks.logger.EXPECT().Error(socialError, "Google sign-in is not available")

		// Act
		result := mocks.service.LoginWithGoogle(mocks.ctx)

		// Assert
		assert.False(test, result.Success())
		assert.Equal(test, autherror.ProviderErrorCode(autherror.SocialPlayServicesNotAvailable), result.Failure().Code)
		assert.Equal(test, autherror.SocialCodeMessage(autherror.SocialPlayServicesNotAvailable), result.Failure().Message)
	})
	test.Run("LoginWithGoogle_Cancelled", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		socialError := &google.SignInError{Code: autherror.SocialSignInCancelled, Message: "consent was not granted"}

		mocks.social.EXPECT().HasPlayServices(gomock.Any()).Return(nil)
		mocks.social.EXPECT().SignIn(gomock.Any()).Return(nil, socialError)
		mocks.logger.EXPECT().Error(socialError, "Error signing in with Google")

		// Act
		result := mocks.service.LoginWithGoogle(mocks.ctx)

		// Assert
		assert.Equal(test, "Sign-in was cancelled. Please try again.", result.Failure().Message)
	})
	test.Run("LoginWithGoogle_Error_Without_Status_Code", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		socialError := errors.New("unexpected")

		mocks.social.EXPECT().HasPlayServices(gomock.Any()).Return(nil)
		mocks.social.EXPECT().SignIn(gomock.Any()).Return(nil, socialError)
		mocks.logger.EXPECT().Error(socialError, "Error signing in with Google")

		// Act
		result := mocks.service.LoginWithGoogle(mocks.ctx)

		// Assert
		assert.Equal(test, autherror.CodeUnknown, result.Failure().Code)
		assert.Equal(test, autherror.SocialUnexpectedMessage, result.Failure().Message)
	})
	test.Run("LoginWithGoogle_Response_Without_User", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)

		mocks.social.EXPECT().HasPlayServices(gomock.Any()).Return(nil)
		mocks.social.EXPECT().SignIn(gomock.Any()).Return(&google.SignInResponse{User: &google.User{}}, nil)
		mocks.logger.EXPECT().Warn("Google sign-in returned no user")

		// Act
		result := mocks.service.LoginWithGoogle(mocks.ctx)

		// Assert
		assert.False(test, result.Success())
		assert.Equal(test, autherror.SocialCodeMessage(autherror.SocialSignInFailed), result.Failure().Message)
	})
	test.Run("LoginWithGoogle_Tokens_Error", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		socialError := &google.SignInError{Code: autherror.SocialSignInRequired, Message: "no google account is signed in"}

		mocks.social.EXPECT().HasPlayServices(gomock.Any()).Return(nil)
		mocks.social.EXPECT().SignIn(gomock.Any()).Return(&google.SignInResponse{User: &google.User{ID: "google-123"}}, nil)
		mocks.social.EXPECT().GetTokens(gomock.Any()).Return(nil, socialError)
		mocks.logger.EXPECT().Error(socialError, "Error retrieving Google tokens")

		// Act
		result := mocks.service.LoginWithGoogle(mocks.ctx)

		// Assert
		assert.Equal(test, "Please sign in to your Google account first.", result.Failure().Message)
	})
	test.Run("LoginWithGoogle_Provider_Error", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		providerError := &firebase.Error{
			Code:    autherror.CodeAccountExistsWithDifferentCredential,
			Message: "needs confirmation",
		}

		mocks.social.EXPECT().HasPlayServices(gomock.Any()).Return(nil)
		mocks.social.EXPECT().SignIn(gomock.Any()).Return(&google.SignInResponse{User: &google.User{ID: "google-123"}}, nil)
		mocks.social.EXPECT().GetTokens(gomock.Any()).Return(&google.Tokens{IDToken: testIDToken}, nil)
		mocks.identity.EXPECT().SignInWithCredential(gomock.Any(), gomock.Any()).Return(nil, providerError)
		mocks.logger.EXPECT().Error(providerError, "Error signing in with Google credential")

		// Act
		result := mocks.service.LoginWithGoogle(mocks.ctx)

		// Assert
		assert.Equal(test, autherror.CodeAccountExistsWithDifferentCredential, result.Failure().Code)
		assert.Equal(
			test,
			autherror.MapToMessage(autherror.CodeAccountExistsWithDifferentCredential, autherror.ContextGmail),
			result.Failure().Message,
		)
	})

	// Logout
	test.Run("Logout_Success", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)

		gomock.InOrder(
			mocks.identity.EXPECT().SignOut(gomock.Any()).Return(nil),
			mocks.social.EXPECT().SignOut(gomock.Any()).Return(nil),
		)
		mocks.logger.EXPECT().Info("User logged out")

		// Act
		result := mocks.service.Logout(mocks.ctx)

		// Assert
		assert.True(test, result.Success())
		assert.Nil(test, result.User())
	})
	test.Run("Logout_Social_Failure_Is_Swallowed", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)

		mocks.identity.EXPECT().SignOut(gomock.Any()).Return(nil)
		mocks.social.EXPECT().SignOut(gomock.Any()).Return(errors.New("revoke failed"))
		mocks.logger.EXPECT().Warn("Google sign-out failed: revoke failed")
		mocks.logger.EXPECT().Info("User logged out")

		// Act
		result := mocks.service.Logout(mocks.ctx)

		// Assert
		assert.True(test, result.Success())
		assert.Nil(test, result.Failure())
	})
	test.Run("Logout_Provider_Failure", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		providerError := &firebase.Error{Code: autherror.CodeNetworkRequestFailed, Message: "dial tcp"}

		mocks.identity.EXPECT().SignOut(gomock.Any()).Return(providerError)
		mocks.logger.EXPECT().Error(providerError, "Error signing out")

		// Act
		result := mocks.service.Logout(mocks.ctx)

		// Assert
		assert.False(test, result.Success())
		assert.Equal(test, autherror.CodeNetworkRequestFailed, result.Failure().Code)
	})

	// ResetPassword
	test.Run("ResetPassword_Success", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)

		mocks.identity.EXPECT().SendPasswordResetEmail(gomock.Any(), testEmail).Return(nil)
		mocks.logger.EXPECT().Info("Password reset email sent")

		// Act
		result := mocks.service.ResetPassword(mocks.ctx, testEmail)

		// Assert
		assert.True(test, result.Success())
		assert.Equal(test, PasswordResetSentMessage, result.Message())
	})
	test.Run("ResetPassword_Invalid_Email_No_Provider_Call", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)

		mocks.logger.EXPECT().Warn("Password reset requested with an invalid email")

		// Act
		result := mocks.service.ResetPassword(mocks.ctx, "not-an-email")

		// Assert
		assert.False(test, result.Success())
		assert.Equal(test, &model.Failure{
			Code:    autherror.CodeInvalidEmail,
			Message: InvalidResetEmailMessage,
		}, result.Failure())
	})
	test.Run("ResetPassword_Too_Many_Requests", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		providerError := &firebase.Error{Code: autherror.CodeTooManyRequests, Message: "TOO_MANY_ATTEMPTS_TRY_LATER"}

		mocks.identity.EXPECT().SendPasswordResetEmail(gomock.Any(), testEmail).Return(providerError)
		mocks.logger.EXPECT().Error(providerError, "Error sending password reset email")

		// Act
		result := mocks.service.ResetPassword(mocks.ctx, testEmail)

		// Assert
		assert.Equal(test, "Too many reset attempts. Please wait a few minutes before trying again.", result.Failure().Message)
	})

	// OnAuthStateChange
	test.Run("OnAuthStateChange_Delegates", func(test *testing.T) {
		// Arrange
		controller := gomock.NewController(test)
		defer controller.Finish()
		mocks := createAuthenticationService(controller)
		unsubscribed := false

		mocks.identity.EXPECT().OnAuthStateChanged(gomock.Any()).Return(func() { unsubscribed = true })

		// Act
		unsubscribe := mocks.service.OnAuthStateChange(func(user *model.UserRef) {})
		unsubscribe()

		// Assert
		assert.True(test, unsubscribed)
	})
}
