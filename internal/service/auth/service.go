package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/auth"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/user"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo   user.Repository
	tokenRepo  auth.RefreshTokenRepository
	jwtService jwt.Service
	google     oauth.GoogleService
}

func NewAuthService(
	userRepo user.Repository,
	tokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
	google oauth.GoogleService,
) auth.Service {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		google:     google,
	}
}

func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	account, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, account)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	userID, err := s.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	stored, err := s.tokenRepo.GetByHash(ctx, hashToken(refreshToken))
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if stored.Revoked {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.LoginResponse{}, auth.ErrTokenExpired
	}

	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	// Single-use: the presented token is revoked before new ones are issued.
	if err := s.tokenRepo.Revoke(ctx, stored.TokenHash); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokens(ctx, account)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.jwtService.DecodeRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}
	return s.tokenRepo.Revoke(ctx, hashToken(refreshToken))
}

func (s *AuthService) GoogleAuthURL(ctx context.Context, userAgent string) (string, string, error) {
	if !s.google.Configured() {
		return "", "", auth.ErrOAuthNotConfigured
	}
	state := s.google.GenerateState(userAgent)
	return s.google.RedirectURL(state), state, nil
}

// GoogleCallback exchanges the authorization code and signs in the local
// account matching the verified Google email. No account is auto-provisioned.
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (auth.LoginResponse, error) {
	if !s.google.Configured() {
		return auth.LoginResponse{}, auth.ErrOAuthNotConfigured
	}

	token, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	googleAccount, err := s.google.FetchUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch google account: %w", err)
	}
	if !googleAccount.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	account, err := s.userRepo.GetByEmail(ctx, googleAccount.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	return s.issueTokens(ctx, account)
}

func (s *AuthService) issueTokens(ctx context.Context, account user.User) (auth.LoginResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	err = s.tokenRepo.Store(ctx, auth.RefreshToken{
		UserID:    account.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	})
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		UserID:       account.ID,
		Role:         string(account.Role),
	}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
