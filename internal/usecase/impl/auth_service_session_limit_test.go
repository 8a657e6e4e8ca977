package impl

import (
	"context"
	"testing"
	"time"

	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	mockRepo "habitude/internal/mocks/repository"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_SessionLimitReached(t *testing.T) {
	fx := createTestAuthService(t, 2)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	userID := uuid.New()
	authRecord := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}

	fx.attemptLimiter.EXPECT().Incr(ctx, "login:"+input.Email, 15*time.Minute).Return(1, nil)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, string(entity.ProviderTypeEmail), input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: input.Email}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access_token", "refresh_token", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	mockFactory.EXPECT().NewRefreshTokenRepository().Return(txRefreshRepo)

	// The user row is locked before counting so concurrent logins cannot
	// both pass the check.
	txRefreshRepo.EXPECT().AcquireSessionMutex(ctx, userID).Return(nil)
	txRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(2, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRateLimited))
}

func TestAuthService_Login_SessionLimitBelowCap(t *testing.T) {
	fx := createTestAuthService(t, 2)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	userID := uuid.New()
	authRecord := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}

	fx.attemptLimiter.EXPECT().Incr(ctx, "login:"+input.Email, 15*time.Minute).Return(1, nil)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, string(entity.ProviderTypeEmail), input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: input.Email}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	mockFactory.EXPECT().NewRefreshTokenRepository().Return(txRefreshRepo)

	txRefreshRepo.EXPECT().AcquireSessionMutex(ctx, userID).Return(nil)
	txRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(1, nil)
	txRefreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	fx.attemptLimiter.EXPECT().Reset(ctx, "login:"+input.Email).Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
}
