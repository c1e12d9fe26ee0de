package service

import (
	"context"
	"fmt"

	"qd-authentication-gateway/internal/autherror"
	"qd-authentication-gateway/internal/firebase"
	"qd-authentication-gateway/internal/form"
	"qd-authentication-gateway/internal/google"
	"qd-authentication-gateway/internal/log"
	"qd-authentication-gateway/internal/model"
)

// Result messages
const (
	InvalidResetEmailMessage = "Please enter a valid email address."
	PasswordResetSentMessage = "Password reset email sent successfully"
)

// AuthenticationServicer is the credential gateway used by the authentication screens
type AuthenticationServicer interface {
	Register(ctx context.Context, email, password string) model.OperationResult
	Login(ctx context.Context, email, password string) model.OperationResult
	LoginWithGoogle(ctx context.Context) model.OperationResult
	Logout(ctx context.Context) model.OperationResult
	ResetPassword(ctx context.Context, email string) model.OperationResult
	OnAuthStateChange(listener firebase.AuthStateListener) (unsubscribe func())
}

// AuthenticationService calls the identity provider and the Google sign-in client
// and reduces every outcome to an OperationResult
type AuthenticationService struct {
	identity   firebase.IdentityProviderer
	social     google.SignInClienter
	logFactory log.LogFactoryer
}

var _ AuthenticationServicer = &AuthenticationService{}

// NewAuthenticationService creates a new credential gateway
func NewAuthenticationService(
	identity firebase.IdentityProviderer,
	social google.SignInClienter,
	logFactory log.LogFactoryer,
) AuthenticationServicer {
	return &AuthenticationService{
		identity,
		social,
		logFactory,
	}
}

// Register creates an account with email and password
func (service *AuthenticationService) Register(ctx context.Context, email, password string) model.OperationResult {
	logger := service.logger(ctx)
	user, err := service.identity.CreateUserWithPassword(ctx, email, password)
	if err != nil {
		logger.Error(err, "Error registering user")
		return model.Failed(providerFailure(err, autherror.ContextRegistration))
	}
	logger.Info(fmt.Sprintf("User registered: %s", user.ID))
	return model.Succeeded(user)
}

// Login signs in with email and password
func (service *AuthenticationService) Login(ctx context.Context, email, password string) model.OperationResult {
	logger := service.logger(ctx)
	user, err := service.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		logger.Error(err, "Error logging in user")
		return model.Failed(providerFailure(err, autherror.ContextLogin))
	}
	logger.Info(fmt.Sprintf("User logged in: %s", user.ID))
	return model.Succeeded(user)
}

// LoginWithGoogle runs the Google sign-in and exchanges its tokens for a provider session
func (service *AuthenticationService) LoginWithGoogle(ctx context.Context) model.OperationResult {
	logger := service.logger(ctx)
	if err := service.social.HasPlayServices(ctx); err != nil {
		logger.Error(err, "Google sign-in is not available")
		return model.Failed(socialFailure(err))
	}
	response, err := service.social.SignIn(ctx)
	if err != nil {
		logger.Error(err, "Error signing in with Google")
		return model.Failed(socialFailure(err))
	}
	if !google.IsSuccessResponse(response) {
		logger.Warn("Google sign-in returned no user")
		return model.Failed(model.Failure{
			Code:    autherror.ProviderErrorCode(autherror.SocialSignInFailed),
			Message: autherror.SocialCodeMessage(autherror.SocialSignInFailed),
		})
	}
	tokens, err := service.social.GetTokens(ctx)
	if err != nil {
		logger.Error(err, "Error retrieving Google tokens")
		return model.Failed(socialFailure(err))
	}
	user, err := service.identity.SignInWithCredential(ctx, firebase.GoogleCredential(tokens.IDToken, tokens.AccessToken))
	if err != nil {
		logger.Error(err, "Error signing in with Google credential")
		return model.Failed(providerFailure(err, autherror.ContextGmail))
	}
	logger.Info(fmt.Sprintf("User logged in with Google: %s", user.ID))
	return model.Succeeded(user)
}

// Logout signs out of the identity provider, then out of Google.
// A Google sign-out failure does not fail the logout.
func (service *AuthenticationService) Logout(ctx context.Context) model.OperationResult {
	logger := service.logger(ctx)
	if err := service.identity.SignOut(ctx); err != nil {
		logger.Error(err, "Error signing out")
		return model.Failed(providerFailure(err, autherror.ContextLogout))
	}
	if err := service.social.SignOut(ctx); err != nil {
		logger.Warn(fmt.Sprintf("Google sign-out failed: %v", err))
	}
	logger.Info("User logged out")
	return model.Succeeded(nil)
}

// ResetPassword sends a password reset email once the address has a valid shape
func (service *AuthenticationService) ResetPassword(ctx context.Context, email string) model.OperationResult {
	logger := service.logger(ctx)
	if !form.IsBasicEmail(email) {
		logger.Warn("Password reset requested with an invalid email")
		return model.Failed(model.Failure{
			Code:    autherror.CodeInvalidEmail,
			Message: InvalidResetEmailMessage,
		})
	}
	if err := service.identity.SendPasswordResetEmail(ctx, email); err != nil {
		logger.Error(err, "Error sending password reset email")
		return model.Failed(providerFailure(err, autherror.ContextPasswordReset))
	}
	logger.Info("Password reset email sent")
	return model.SucceededWithMessage(PasswordResetSentMessage)
}

// OnAuthStateChange subscribes to sign-in and sign-out events of the identity provider
func (service *AuthenticationService) OnAuthStateChange(listener firebase.AuthStateListener) func() {
	return service.identity.OnAuthStateChanged(listener)
}

func (service *AuthenticationService) logger(ctx context.Context) log.Loggerer {
	logger, err := log.GetLoggerFromContext(ctx)
	if err == nil {
		return logger
	}
	return service.logFactory.NewLogger()
}

func providerFailure(err error, errorContext autherror.ErrorContext) model.Failure {
	raw := autherror.Parse(err)
	code := raw.ErrorCode()
	return model.Failure{
		Code:     code,
		Message:  autherror.MapToMessage(code, errorContext),
		Original: raw.Message,
	}
}

// social status codes are carried verbatim in the failure code
func socialFailure(err error) model.Failure {
	code := autherror.CodeUnknown
	if statusCode, ok := autherror.HasStringCode(err); ok {
		code = autherror.ProviderErrorCode(statusCode)
	}
	return model.Failure{
		Code:     code,
		Message:  autherror.SocialMessage(err),
		Original: err.Error(),
	}
}
