package firebase

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	zerologLog "github.com/rs/zerolog/log"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"qd-authentication-gateway/internal/autherror"
	"qd-authentication-gateway/internal/log"
	"qd-authentication-gateway/internal/model"
)

const (
	// GoogleProviderID is the provider id of Google federated credentials
	GoogleProviderID = "google.com"

	passwordResetRequestType = "PASSWORD_RESET"
	defaultRequestURI        = "http://localhost"
)

// Credential is a federated credential exchanged for a provider session
type Credential struct {
	ProviderID  string
	IDToken     string
	AccessToken string
}

// GoogleCredential creates a credential from Google sign-in tokens
func GoogleCredential(idToken, accessToken string) Credential {
	return Credential{
		ProviderID:  GoogleProviderID,
		IDToken:     idToken,
		AccessToken: accessToken,
	}
}

func (credential Credential) postBody() string {
	values := url.Values{}
	if credential.IDToken != "" {
		values.Set("id_token", credential.IDToken)
	}
	if credential.AccessToken != "" {
		values.Set("access_token", credential.AccessToken)
	}
	values.Set("providerId", credential.ProviderID)
	return values.Encode()
}

// AuthStateListener is notified with the signed in user, or nil after sign-out
type AuthStateListener func(user *model.UserRef)

// IdentityProviderer defines the identity provider operations used by the gateway
type IdentityProviderer interface {
	CreateUserWithPassword(ctx context.Context, email, password string) (*model.UserRef, error)
	SignInWithPassword(ctx context.Context, email, password string) (*model.UserRef, error)
	SignInWithCredential(ctx context.Context, credential Credential) (*model.UserRef, error)
	SendPasswordResetEmail(ctx context.Context, email string) error
	SignOut(ctx context.Context) error
	CurrentUser() *model.UserRef
	OnAuthStateChanged(listener AuthStateListener) (unsubscribe func())
}

// IdentityConfig configures the identity toolkit client
type IdentityConfig struct {
	APIKey     string
	Endpoint   string
	RequestURI string
}

// IdentityService talks to the Firebase identity toolkit REST API and keeps
// the signed in user for the lifetime of the process
type IdentityService struct {
	relyingParty *identitytoolkit.RelyingpartyService
	admin        AuthServicer
	requestURI   string

	mutex          sync.Mutex
	current        *model.UserRef
	listeners      map[int]AuthStateListener
	nextListenerID int
}

var _ IdentityProviderer = &IdentityService{}

// NewIdentityService creates an identity service. admin is optional and, when
// set, is used to revoke refresh tokens on sign-out.
func NewIdentityService(ctx context.Context, config IdentityConfig, admin AuthServicer) (*IdentityService, error) {
	if config.APIKey == "" {
		return nil, &Error{Code: autherror.CodeInternalError, Message: "missing firebase api key"}
	}
	options := []option.ClientOption{option.WithAPIKey(config.APIKey)}
	if config.Endpoint != "" {
		options = append(options, option.WithEndpoint(config.Endpoint))
	}
	service, err := identitytoolkit.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("error creating identity toolkit client: %v", err)
	}
	requestURI := config.RequestURI
	if requestURI == "" {
		requestURI = defaultRequestURI
	}
	return &IdentityService{
		relyingParty: service.Relyingparty,
		admin:        admin,
		requestURI:   requestURI,
		listeners:    map[int]AuthStateListener{},
	}, nil
}

// CreateUserWithPassword creates a password account and signs it in
func (identity *IdentityService) CreateUserWithPassword(ctx context.Context, email, password string) (*model.UserRef, error) {
	response, err := identity.relyingParty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return nil, translateError(err)
	}
	return identity.signIn(response.LocalId, response.Email), nil
}

// SignInWithPassword signs a password account in
func (identity *IdentityService) SignInWithPassword(ctx context.Context, email, password string) (*model.UserRef, error) {
	response, err := identity.relyingParty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, translateError(err)
	}
	return identity.signIn(response.LocalId, response.Email), nil
}

// SignInWithCredential exchanges a federated credential for a provider session
func (identity *IdentityService) SignInWithCredential(ctx context.Context, credential Credential) (*model.UserRef, error) {
	response, err := identity.relyingParty.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          credential.postBody(),
		RequestUri:        identity.requestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, translateError(err)
	}
	if response.NeedConfirmation {
		return nil, &Error{
			Code:    autherror.CodeAccountExistsWithDifferentCredential,
			Message: fmt.Sprintf("account %s is linked to another sign-in method", response.Email),
		}
	}
	return identity.signIn(response.LocalId, response.Email), nil
}

// SendPasswordResetEmail asks the provider to email a password reset link
func (identity *IdentityService) SendPasswordResetEmail(ctx context.Context, email string) error {
	_, err := identity.relyingParty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		Email:       email,
		RequestType: passwordResetRequestType,
	}).Context(ctx).Do()
	return translateError(err)
}

// SignOut ends the current session and revokes its refresh tokens when an admin
// client is configured. Signing out without a session succeeds.
func (identity *IdentityService) SignOut(ctx context.Context) error {
	identity.mutex.Lock()
	current := identity.current
	if current == nil {
		identity.mutex.Unlock()
		return nil
	}
	identity.current = nil
	listeners := identity.snapshotListeners()
	identity.mutex.Unlock()

	for _, listener := range listeners {
		listener(nil)
	}

	// The local session is gone even when revocation fails
	if identity.admin != nil {
		if err := identity.admin.RevokeRefreshTokens(ctx, current.ID); err != nil {
			warn(ctx, fmt.Sprintf("Failed to revoke refresh tokens of user %s: %v", current.ID, err))
		}
	}
	return nil
}

func warn(ctx context.Context, message string) {
	logger, err := log.GetLoggerFromContext(ctx)
	if err != nil {
		zerologLog.Warn().Msg(message)
		return
	}
	logger.Warn(message)
}

// CurrentUser returns the signed in user, nil when signed out
func (identity *IdentityService) CurrentUser() *model.UserRef {
	identity.mutex.Lock()
	defer identity.mutex.Unlock()
	if identity.current == nil {
		return nil
	}
	user := *identity.current
	return &user
}

// OnAuthStateChanged registers a listener. It is called immediately with the
// current user and then on every sign-in and sign-out.
func (identity *IdentityService) OnAuthStateChanged(listener AuthStateListener) func() {
	identity.mutex.Lock()
	id := identity.nextListenerID
	identity.nextListenerID++
	identity.listeners[id] = listener
	identity.mutex.Unlock()

	listener(identity.CurrentUser())

	return func() {
		identity.mutex.Lock()
		defer identity.mutex.Unlock()
		delete(identity.listeners, id)
	}
}

func (identity *IdentityService) signIn(localID, email string) *model.UserRef {
	identity.mutex.Lock()
	identity.current = model.NewUserRef(localID, email)
	listeners := identity.snapshotListeners()
	identity.mutex.Unlock()

	for _, listener := range listeners {
		listener(model.NewUserRef(localID, email))
	}
	return model.NewUserRef(localID, email)
}

// snapshotListeners must be called with the mutex held
func (identity *IdentityService) snapshotListeners() []AuthStateListener {
	listeners := make([]AuthStateListener, 0, len(identity.listeners))
	for _, listener := range identity.listeners {
		listeners = append(listeners, listener)
	}
	return listeners
}
