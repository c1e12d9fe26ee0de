package application

import (
	"context"
	"fmt"

	"qd-authentication-gateway/internal/config"
	"qd-authentication-gateway/internal/firebase"
	"qd-authentication-gateway/internal/form"
	"qd-authentication-gateway/internal/google"
	"qd-authentication-gateway/internal/log"
	"qd-authentication-gateway/internal/model"
	"qd-authentication-gateway/internal/service"
)

// Applicationer provides the main functions of the application
type Applicationer interface {
	AuthenticationService() service.AuthenticationServicer
	Validator() form.Validatorer
	Close()
}

// Application wires the identity provider, the Google client and the gateway
type Application struct {
	authenticationService service.AuthenticationServicer
	validator             form.Validatorer
	logger                log.Loggerer
	unsubscribe           func()
}

// NewApplication creates a new application from the loaded configuration.
// Google sign-in is disabled when its configuration is missing or discovery fails.
func NewApplication(ctx context.Context, config *config.Config, codeSource google.CodeSource) (Applicationer, error) {
	log.SetVerbose(config.Verbose)
	logFactory := log.NewLogFactory(config.Environment)
	logger := logFactory.NewLogger()

	var admin firebase.AuthServicer
	if config.Firebase.CredentialsPath != "" {
		authService, err := firebase.NewAuthService(ctx, config.Firebase.CredentialsPath)
		if err != nil {
			logger.Error(err, "Failed to create firebase admin client")
			return nil, err
		}
		admin = authService
	} else {
		logger.Info("Firebase admin credentials not configured, refresh tokens will not be revoked on sign-out")
	}

	identity, err := firebase.NewIdentityService(ctx, firebase.IdentityConfig{
		APIKey:     config.Firebase.APIKey,
		Endpoint:   config.Firebase.Endpoint,
		RequestURI: config.Firebase.RequestURI,
	}, admin)
	if err != nil {
		logger.Error(err, "Failed to create identity service")
		return nil, err
	}

	social, err := google.Configure(ctx, google.Config{
		ClientID:     config.Google.ClientID,
		ClientSecret: config.Google.ClientSecret,
		RedirectURL:  config.Google.RedirectURL,
		Issuer:       config.Google.Issuer,
		RevokeURL:    config.Google.RevokeURL,
	}, codeSource)
	if err != nil {
		logger.Warn(fmt.Sprintf("Google sign-in disabled: %v", err))
		social = google.Disabled()
	}

	validator, err := form.NewValidator()
	if err != nil {
		logger.Error(err, "Failed to create form validator")
		return nil, err
	}

	authenticationService := service.NewAuthenticationService(identity, social, logFactory)
	return New(authenticationService, validator, logger), nil
}

// New creates a new application with raw parameters
func New(
	authenticationService service.AuthenticationServicer,
	validator form.Validatorer,
	logger log.Loggerer,
) Applicationer {
	application := &Application{
		authenticationService: authenticationService,
		validator:             validator,
		logger:                logger,
	}
	application.unsubscribe = authenticationService.OnAuthStateChange(application.logAuthState)
	return application
}

// AuthenticationService returns the credential gateway
func (application *Application) AuthenticationService() service.AuthenticationServicer {
	return application.authenticationService
}

// Validator returns the form validator
func (application *Application) Validator() form.Validatorer {
	return application.validator
}

// Close stops listening to auth state changes
func (application *Application) Close() {
	if application.unsubscribe == nil {
		application.logger.Error(nil, "Application is already closed")
		return
	}
	application.unsubscribe()
	application.unsubscribe = nil
	application.logger.Info("Application closed")
}

func (application *Application) logAuthState(user *model.UserRef) {
	if user == nil {
		application.logger.Info("No user signed in")
		return
	}
	application.logger.Info(fmt.Sprintf("User signed in: %s", user.ID))
}
