package impl

import (
	"context"
	"testing"
	"time"

	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	"habitude/internal/domain/service"
	mockRepo "habitude/internal/mocks/repository"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_SignUp_InvalidEmail(t *testing.T) {
	fx := createTestAuthService(t, 0)

	output, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{
		Email:    "not-an-email",
		Password: "Password123!",
		Username: "tester",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidEmail))
}

func TestAuthService_SignUp_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t, 0)

	output, err := fx.service.SignUp(context.Background(), usecase.SignUpInput{
		Email:    "test@example.com",
		Password: "short",
		Username: "tester",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
}

func TestAuthService_SignUp_EmailExists(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := usecase.SignUpInput{
		Email:    "taken@example.com",
		Password: "Password123!",
		Username: "tester",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)

	mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
	mockFactory.EXPECT().NewAuthRepository().Return(txAuthRepo)
	mockFactory.EXPECT().NewNotificationRepository().Return(txNotificationRepo)

	txAuthRepo.EXPECT().
		FindAuthentication(ctx, string(entity.ProviderTypeEmail), input.Email).
		Return(&entity.Authentication{Provider: entity.ProviderTypeEmail}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	output, err := fx.service.SignUp(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailExists))
}

func TestAuthService_SignUp_TransactionFailure(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := usecase.SignUpInput{
		Email:    "test@example.com",
		Password: "Password123!",
		Username: "tester",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	output, err := fx.service.SignUp(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSignupFailed))
}

func TestAuthService_Login_RateLimited(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.attemptLimiter.EXPECT().Incr(ctx, "login:"+input.Email, 15*time.Minute).Return(6, nil)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRateLimited))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "unknown@example.com",
		Password: "Password123!",
	}

	fx.attemptLimiter.EXPECT().Incr(ctx, "login:"+input.Email, 15*time.Minute).Return(1, nil)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, string(entity.ProviderTypeEmail), input.Email).
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	}

	authRecord := &entity.Authentication{
		UserID:       uuid.New(),
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}

	fx.attemptLimiter.EXPECT().Incr(ctx, "login:"+input.Email, 15*time.Minute).Return(2, nil)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, string(entity.ProviderTypeEmail), input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_MissingMFACode(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	authRecord := &entity.Authentication{
		UserID:       uuid.New(),
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
		MFAEnabled:   true,
		MFASecret:    "totp_secret",
	}

	fx.attemptLimiter.EXPECT().Incr(ctx, "login:"+input.Email, 15*time.Minute).Return(1, nil)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, string(entity.ProviderTypeEmail), input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidMFACode))
}

func TestAuthService_RefreshSession_WrongTokenType(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("access_token").
		Return(&service.Claims{UserID: uuid.New(), Type: "access"}, nil)

	output, err := fx.service.RefreshSession(ctx, "access_token")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestAuthService_RefreshSession_ExpiredStoredToken(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("old_refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("old_refresh").Return("old_hash")

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)

	mockFactory.EXPECT().NewRefreshTokenRepository().Return(txRefreshRepo)
	mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

	txRefreshRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "old_hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old_hash", ExpiresAt: time.Now().Add(-time.Hour)}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	output, err := fx.service.RefreshSession(ctx, "old_refresh")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestAuthService_RequestPasswordReset_CooldownActive(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	email := "test@example.com"

	fx.attemptLimiter.EXPECT().SetCooldown(ctx, "pwreset:"+email, time.Minute).Return(false, nil)

	err := fx.service.RequestPasswordReset(ctx, email)

	assert.True(t, errors.Is(err, domainerrors.ErrRateLimited))
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword123!",
	}

	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	mockFactory.EXPECT().NewAuthRepository().Return(txAuthRepo)
	mockFactory.EXPECT().NewRefreshTokenRepository().Return(txRefreshRepo)

	authRecord := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "old_hash",
	}
	txAuthRepo.EXPECT().
		FindAuthenticationByUser(ctx, userID, string(entity.ProviderTypeEmail)).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.CurrentPassword, "old_hash").Return(false)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	err := fx.service.ChangePassword(ctx, userID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_ActivateMFA_NoPendingEnrollment(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthenticationByUser(ctx, userID, string(entity.ProviderTypeEmail)).
		Return(&entity.Authentication{UserID: userID, Provider: entity.ProviderTypeEmail}, nil)

	err := fx.service.ActivateMFA(ctx, userID, "123456")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAuthService_ActivateMFA_WrongCode(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthenticationByUser(ctx, userID, string(entity.ProviderTypeEmail)).
		Return(&entity.Authentication{UserID: userID, Provider: entity.ProviderTypeEmail, MFASecret: "totp_secret"}, nil)
	fx.mfaService.EXPECT().ValidateCode("000000", "totp_secret").Return(false)

	err := fx.service.ActivateMFA(ctx, userID, "000000")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidMFACode))
}

func TestAuthService_DisableMFA_NotEnabled(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthenticationByUser(ctx, userID, string(entity.ProviderTypeEmail)).
		Return(&entity.Authentication{UserID: userID, Provider: entity.ProviderTypeEmail}, nil)

	err := fx.service.DisableMFA(ctx, userID, "123456")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
