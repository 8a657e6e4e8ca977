package impl

import (
	"context"
	"testing"
	"time"

	"habitude/internal/domain/entity"
	"habitude/internal/domain/repository"
	"habitude/internal/domain/service"
	mockRepo "habitude/internal/mocks/repository"
	mockSvc "habitude/internal/mocks/service"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service           usecase.AuthUsecase
	txManager         *mockRepo.MockTransactionManager
	userRepo          *mockRepo.MockUserRepository
	authRepo          *mockRepo.MockAuthRepository
	refreshTokenRepo  *mockRepo.MockRefreshTokenRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
	mfaService        *mockSvc.MockMFAService
	attemptLimiter    *mockSvc.MockAttemptLimiter
}

func createTestAuthService(t *testing.T, maxActiveSessions int) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)
	mfaService := mockSvc.NewMockMFAService(t)
	attemptLimiter := mockSvc.NewMockAttemptLimiter(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:         txManager,
		UserRepo:          userRepo,
		AuthRepo:          authRepo,
		RefreshTokenRepo:  refreshTokenRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuthService,
		MFAService:        mfaService,
		AttemptLimiter:    attemptLimiter,
		Config:            newTestConfig(maxActiveSessions),
		Logger:            newDiscardLogger(),
	})

	return authServiceFixtures{
		service:           service,
		txManager:         txManager,
		userRepo:          userRepo,
		authRepo:          authRepo,
		refreshTokenRepo:  refreshTokenRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
		mfaService:        mfaService,
		attemptLimiter:    attemptLimiter,
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := usecase.SignUpInput{
		Email:    "test@example.com",
		Password: "Password123!",
		Username: "tester",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID")).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
	mockFactory.EXPECT().NewAuthRepository().Return(txAuthRepo)
	mockFactory.EXPECT().NewNotificationRepository().Return(txNotificationRepo)
	mockFactory.EXPECT().NewRefreshTokenRepository().Return(txRefreshRepo)

	txAuthRepo.EXPECT().
		FindAuthentication(ctx, string(entity.ProviderTypeEmail), input.Email).
		Return(nil, repository.ErrAuthNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	txAuthRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Return(nil)
	txUserRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)
	txUserRepo.EXPECT().
		SaveAvatar(ctx, mock.AnythingOfType("*entity.Avatar")).
		Return(nil)
	txNotificationRepo.EXPECT().
		SavePreferences(ctx, mock.AnythingOfType("*entity.NotificationPreferences")).
		Return(nil)
	txRefreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, input.Email, output.User.Email)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	userID := uuid.New()
	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: input.Email,
		PasswordHash:   "hashed_password",
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
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	fx.attemptLimiter.EXPECT().Reset(ctx, "login:"+input.Email).Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_WithMFA(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
		MFACode:  "123456",
	}

	userID := uuid.New()
	authRecord := &entity.Authentication{
		UserID:       userID,
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
	fx.mfaService.EXPECT().ValidateCode("123456", "totp_secret").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: input.Email}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	fx.attemptLimiter.EXPECT().Reset(ctx, "login:"+input.Email).Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_LoginWithGoogle_ExistingUser(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	oauthUser := &service.OAuthUser{
		ID:       "google-sub-123",
		Email:    "test@example.com",
		Provider: entity.ProviderTypeGoogle,
	}

	fx.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "id_token").
		Return(oauthUser, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
	mockFactory.EXPECT().NewAuthRepository().Return(txAuthRepo)
	mockFactory.EXPECT().NewRefreshTokenRepository().Return(txRefreshRepo)

	txAuthRepo.EXPECT().
		FindAuthentication(ctx, string(entity.ProviderTypeGoogle), "google-sub-123").
		Return(&entity.Authentication{UserID: userID, Provider: entity.ProviderTypeGoogle}, nil)
	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "test@example.com"}, nil)
	txRefreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	output, err := fx.service.LoginWithGoogle(ctx, "id_token")

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_RefreshSession_RotatesToken(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("old_refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("old_refresh").Return("old_hash")
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new_access", "new_refresh", nil)
	fx.tokenService.EXPECT().HashToken("new_refresh").Return("new_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)

	mockFactory.EXPECT().NewRefreshTokenRepository().Return(txRefreshRepo)
	mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

	txRefreshRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "old_hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old_hash", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txRefreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old_hash").Return(nil)
	txRefreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	output, err := fx.service.RefreshSession(ctx, "old_refresh")

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "refresh_hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, "refresh_token")

	assert.NoError(t, err)
}

func TestAuthService_LogoutAll(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

	err := fx.service.LogoutAll(ctx, userID)

	assert.NoError(t, err)
}

func TestAuthService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	email := "unknown@example.com"

	fx.attemptLimiter.EXPECT().SetCooldown(ctx, "pwreset:"+email, time.Minute).Return(true, nil)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, string(entity.ProviderTypeEmail), email).
		Return(nil, repository.ErrAuthNotFound)

	// The response must not reveal whether the email is registered.
	err := fx.service.RequestPasswordReset(ctx, email)

	assert.NoError(t, err)
}

func TestAuthService_EnrollMFA_StoresPendingSecret(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: "test@example.com",
	}

	fx.authRepo.EXPECT().
		FindAuthenticationByUser(ctx, userID, string(entity.ProviderTypeEmail)).
		Return(authRecord, nil)
	fx.mfaService.EXPECT().
		GenerateSecret("test@example.com").
		Return("totp_secret", "otpauth://totp/test", nil)
	fx.authRepo.EXPECT().
		UpdateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(ctx context.Context, auth *entity.Authentication) {
			assert.Equal(t, "totp_secret", auth.MFASecret)
			assert.False(t, auth.MFAEnabled)
		}).
		Return(nil)

	output, err := fx.service.EnrollMFA(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "totp_secret", output.Secret)
	assert.Equal(t, "otpauth://totp/test", output.URL)
}

func TestAuthService_ActivateMFA_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	authRecord := &entity.Authentication{
		UserID:    userID,
		Provider:  entity.ProviderTypeEmail,
		MFASecret: "totp_secret",
	}

	fx.authRepo.EXPECT().
		FindAuthenticationByUser(ctx, userID, string(entity.ProviderTypeEmail)).
		Return(authRecord, nil)
	fx.mfaService.EXPECT().ValidateCode("123456", "totp_secret").Return(true)
	fx.authRepo.EXPECT().
		UpdateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(ctx context.Context, auth *entity.Authentication) {
			assert.True(t, auth.MFAEnabled)
		}).
		Return(nil)

	err := fx.service.ActivateMFA(ctx, userID, "123456")

	assert.NoError(t, err)
}
