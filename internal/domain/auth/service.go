package auth

import "context"

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// Google OAuth2 login. AuthURL returns the consent redirect; Callback
	// exchanges the code and signs in the matching local account.
	GoogleAuthURL(ctx context.Context, userAgent string) (url string, state string, err error)
	GoogleCallback(ctx context.Context, code string) (LoginResponse, error)
}
