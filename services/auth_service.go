package services

import (
	"context"
	"fmt"
	"portal-chat/auth"
	"portal-chat/domain"
	"portal-chat/errors"
	"portal-chat/repositories"
)

type IAuthService interface {
	Login(ctx context.Context, email, password string) (Token, error)
	Register(ctx context.Context, portalID, email, password string) (string, error)
}

// AuthService manages owner accounts. A logged-in owner chats as the admin
// user of its portal room.
type AuthService struct {
	ownerRepository repositories.IOwnerRepository
	tokens          auth.TokenIssuer
}

type Token string

func (t Token) String() string {
	return string(t)
}

func NewAuthService(repo repositories.IOwnerRepository, tokens auth.TokenIssuer) *AuthService {
	return &AuthService{ownerRepository: repo, tokens: tokens}
}

// Register validates and hashes the password, then stores the owner.
// It returns the new owner id.
func (s *AuthService) Register(ctx context.Context, portalID, email, password string) (string, error) {
	valReq := auth.RegisterRequest{PortalID: portalID, Email: email, Password: password}
	// Checked before any expensive cryptographic operation.
	if err := auth.ValidateRegister(valReq); err != nil {
		if errors.Is(err, errors.ErrInvalidPassword) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}
	return s.ownerRepository.CreateOwner(ctx, portalID, email, hashedPassword)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Token, error) {
	if err := auth.ValidateLogin(auth.LoginRequest{Email: email, Password: password}); err != nil {
		return "", err
	}
	owner, ok, err := s.ownerRepository.GetOwnerByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	// Same error for unknown email and wrong password to prevent enumeration.
	if !ok {
		return "", errors.ErrInvalidCredentials
	}
	match, err := auth.ComparePassword(password, owner.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(domain.AdminUserName(owner.PortalID), owner.PortalID, owner.Email, []string{"owner"})
	if err != nil {
		return "", err
	}
	return Token(token), nil
}
