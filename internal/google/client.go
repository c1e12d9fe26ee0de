package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"qd-authentication-gateway/internal/autherror"
)

// Google endpoints
const (
	DefaultIssuer    = "https://accounts.google.com"
	DefaultRevokeURL = "https://oauth2.googleapis.com/revoke"
)

// SignInClienter defines the social sign-in operations used by the gateway
type SignInClienter interface {
	HasPlayServices(ctx context.Context) error
	SignIn(ctx context.Context) (*SignInResponse, error)
	GetTokens(ctx context.Context) (*Tokens, error)
	SignOut(ctx context.Context) error
	CurrentUser() *User
}

// Config configures the Google OAuth client
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Issuer       string
	RevokeURL    string
}

type claims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type idTokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*claims, error)
}

type oidcVerifier struct {
	verifier *oidc.IDTokenVerifier
}

func (v *oidcVerifier) Verify(ctx context.Context, rawIDToken string) (*claims, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}
	var tokenClaims claims
	if err := idToken.Claims(&tokenClaims); err != nil {
		return nil, fmt.Errorf("google id_token claims parse failed: %w", err)
	}
	return &tokenClaims, nil
}

type account struct {
	user    User
	token   *oauth2.Token
	idToken string
}

// Client is the configured Google sign-in handle
type Client struct {
	oauthConfig *oauth2.Config
	verifier    idTokenVerifier
	codeSource  CodeSource
	httpClient  *http.Client
	revokeURL   string

	inProgress atomic.Bool
	mutex      sync.Mutex
	current    *account
}

var _ SignInClienter = &Client{}

// Configure performs the one-time OIDC discovery and returns the sign-in handle
func Configure(ctx context.Context, config Config, codeSource CodeSource) (*Client, error) {
	if config.ClientID == "" || config.RedirectURL == "" {
		return nil, errors.New("google oauth config missing required fields")
	}
	issuer := config.Issuer
	if issuer == "" {
		issuer = DefaultIssuer
	}
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to init google oidc provider: %w", err)
	}
	oauthConfig := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURL:  config.RedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes: []string{
			oidc.ScopeOpenID,
			"profile",
			"email",
		},
	}
	verifier := &oidcVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: config.ClientID}),
	}
	return newClient(oauthConfig, verifier, codeSource, http.DefaultClient, config.RevokeURL), nil
}

// Disabled returns a handle that reports sign-in as unavailable
func Disabled() *Client {
	return &Client{}
}

func newClient(
	oauthConfig *oauth2.Config,
	verifier idTokenVerifier,
	codeSource CodeSource,
	httpClient *http.Client,
	revokeURL string,
) *Client {
	if revokeURL == "" {
		revokeURL = DefaultRevokeURL
	}
	return &Client{
		oauthConfig: oauthConfig,
		verifier:    verifier,
		codeSource:  codeSource,
		httpClient:  httpClient,
		revokeURL:   revokeURL,
	}
}

// HasPlayServices reports whether sign-in can be attempted
func (client *Client) HasPlayServices(ctx context.Context) error {
	if client.oauthConfig == nil || client.verifier == nil || client.codeSource == nil {
		return newSignInError(autherror.SocialPlayServicesNotAvailable, "google sign-in is not configured", nil)
	}
	return nil
}

// SignIn runs the interactive authorization code flow with PKCE
func (client *Client) SignIn(ctx context.Context) (*SignInResponse, error) {
	if err := client.HasPlayServices(ctx); err != nil {
		return nil, err
	}
	if !client.inProgress.CompareAndSwap(false, true) {
		return nil, newSignInError(autherror.SocialInProgress, "a sign-in is already running", nil)
	}
	defer client.inProgress.Store(false)

	state := uuid.NewString()
	codeVerifier := oauth2.GenerateVerifier()
	authURL := client.oauthConfig.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(codeVerifier),
	)
	code, err := client.codeSource.AuthorizationCode(ctx, authURL, state)
	if errors.Is(err, ErrSignInCancelled) {
		return nil, newSignInError(autherror.SocialSignInCancelled, "consent was not granted", err)
	}
	if err != nil {
		return nil, newSignInError(autherror.SocialSignInFailed, "could not obtain authorization code", err)
	}

	token, err := client.oauthConfig.Exchange(client.httpContext(ctx), code, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		var retrieveError *oauth2.RetrieveError
		if errors.As(err, &retrieveError) && retrieveError.ErrorCode == "access_denied" {
			return nil, newSignInError(autherror.SocialSignInCancelled, "consent was revoked", err)
		}
		return nil, newSignInError(autherror.SocialSignInFailed, "google token exchange failed", err)
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, newSignInError(autherror.SocialSignInFailed, "google did not return id_token", nil)
	}
	tokenClaims, err := client.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, newSignInError(autherror.SocialSignInFailed, "google id_token verification failed", err)
	}

	user := User{
		ID:    tokenClaims.Subject,
		Email: tokenClaims.Email,
		Name:  tokenClaims.Name,
		Photo: tokenClaims.Picture,
	}
	client.mutex.Lock()
	client.current = &account{
		user:    user,
		token:   token,
		idToken: rawIDToken,
	}
	client.mutex.Unlock()

	return &SignInResponse{
		User:    &user,
		IDToken: rawIDToken,
	}, nil
}

// GetTokens returns the tokens of the signed in account, refreshing an expired access token
func (client *Client) GetTokens(ctx context.Context) (*Tokens, error) {
	client.mutex.Lock()
	defer client.mutex.Unlock()
	if client.current == nil {
		return nil, newSignInError(autherror.SocialSignInRequired, "no google account is signed in", nil)
	}
	if !client.current.token.Valid() {
		token, err := client.oauthConfig.TokenSource(client.httpContext(ctx), client.current.token).Token()
		if err != nil {
			return nil, newSignInError(autherror.SocialSignInRequired, "google session expired", err)
		}
		if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
			client.current.idToken = rawIDToken
		}
		client.current.token = token
	}
	return &Tokens{
		IDToken:     client.current.idToken,
		AccessToken: client.current.token.AccessToken,
	}, nil
}

// SignOut forgets the signed in account and revokes its grant
func (client *Client) SignOut(ctx context.Context) error {
	client.mutex.Lock()
	current := client.current
	client.current = nil
	client.mutex.Unlock()
	if current == nil {
		return nil
	}

	token := current.token.RefreshToken
	if token == "" {
		token = current.token.AccessToken
	}
	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		client.revokeURL,
		strings.NewReader(url.Values{"token": {token}}.Encode()),
	)
	if err != nil {
		return fmt.Errorf("error creating revoke request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("error revoking google token: %w", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("google token revocation returned status %d", response.StatusCode)
	}
	return nil
}

// CurrentUser returns the signed in Google account, nil when signed out
func (client *Client) CurrentUser() *User {
	client.mutex.Lock()
	defer client.mutex.Unlock()
	if client.current == nil {
		return nil
	}
	user := client.current.user
	return &user
}

func (client *Client) httpContext(ctx context.Context) context.Context {
	if client.httpClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, client.httpClient)
}
