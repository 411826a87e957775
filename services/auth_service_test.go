package services

import (
	"context"
	"portal-chat/auth"
	"portal-chat/domain"
	"portal-chat/errors"
	"portal-chat/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const secret = "test-secret"

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIOwnerRepository(ctrl)
	svc := NewAuthService(mockRepo, auth.NewTokenIssuer(secret, time.Hour))
	ctx := context.Background()

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)

		// Given a valid owner account
		// Then the repository stores a hash, never the plain password
		mockRepo.EXPECT().
			CreateOwner(gomock.Any(), "acme", "owner@acme.example", gomock.Not("ComplexPass123!")).
			Return("owner-uuid", nil).
			Times(1)

		// When registering
		id, err := svc.Register(ctx, "acme", "owner@acme.example", "ComplexPass123!")

		req.NoError(err)
		req.Equal("owner-uuid", id)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)

		// Repository should never be called
		mockRepo.EXPECT().CreateOwner(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Register(ctx, "acme", "owner@acme.example", "simplepassword")

		req.ErrorIs(err, errors.ErrInvalidPassword)
	})

	t.Run("should fail when the email is malformed", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateOwner(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Register(ctx, "acme", "not-an-email", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrInvalidRequest)
	})

	t.Run("should fail when owner already exists", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().
			CreateOwner(gomock.Any(), "acme", "dup@acme.example", gomock.Any()).
			Return("", errors.ErrOwnerAlreadyExists).
			Times(1)

		_, err := svc.Register(ctx, "acme", "dup@acme.example", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrOwnerAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIOwnerRepository(ctrl)
	issuer := auth.NewTokenIssuer(secret, time.Hour)
	svc := NewAuthService(mockRepo, issuer)
	ctx := context.Background()

	hash, err := auth.HashPassword("ComplexPass123!")
	require.NoError(t, err)
	owner := domain.Owner{ID: "owner-1", PortalID: "acme", Email: "owner@acme.example", PasswordHash: hash}

	t.Run("should issue an admin token with correct credentials", func(t *testing.T) {
		req := require.New(t)

		// Given a stored owner
		mockRepo.EXPECT().GetOwnerByEmail(gomock.Any(), owner.Email).Return(owner, true, nil).Times(1)

		// When logging in
		token, err := svc.Login(ctx, owner.Email, "ComplexPass123!")

		// Then the token names the admin of the portal room
		req.NoError(err)
		claims, err := issuer.ValidateToken(token.String())
		req.NoError(err)
		req.Equal(domain.AdminUserName("acme"), claims.UserName())
		req.Equal("acme", claims.PortalID)
		req.Equal([]string{"owner"}, claims.Roles)
	})

	t.Run("should fail with generic error on wrong password", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetOwnerByEmail(gomock.Any(), owner.Email).Return(owner, true, nil).Times(1)

		token, err := svc.Login(ctx, owner.Email, "WrongPass123!")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
		req.Empty(token)
	})

	t.Run("should fail with the same error on unknown email", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetOwnerByEmail(gomock.Any(), "ghost@acme.example").Return(domain.Owner{}, false, nil).Times(1)

		_, err := svc.Login(ctx, "ghost@acme.example", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should not query the repository for a malformed email", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetOwnerByEmail(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Login(ctx, "nope", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}
