package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

// AuthServicer defines the admin operations used when signing users out
type AuthServicer interface {
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// AuthService implements AuthServicer using a Firebase admin auth client
type AuthService struct {
	client *auth.Client
}

var _ AuthServicer = &AuthService{}

// NewAuthService creates a new admin AuthService from a service account file
func NewAuthService(ctx context.Context, credentialsPath string) (*AuthService, error) {
	client, err := setupAuthClient(ctx, credentialsPath)
	if err != nil {
		return nil, err
	}
	return &AuthService{client: client}, nil
}

// RevokeRefreshTokens invalidates every refresh token issued to the user
func (fs *AuthService) RevokeRefreshTokens(ctx context.Context, uid string) error {
	return fs.client.RevokeRefreshTokens(ctx, uid)
}

func setupAuthClient(ctx context.Context, credentialsPath string) (*auth.Client, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %v", err)
	}

	return authClient, nil
}
