// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"habitude/config"
	deliverycontext "habitude/internal/delivery/context"
	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	"habitude/internal/domain/service"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 8

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	mfaService        service.MFAService
	attemptLimiter    service.AttemptLimiter
	maxActiveSessions int
	maxLoginAttempts  int64
	loginWindow       time.Duration
	resetCooldown     time.Duration
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	AuthRepo          repository.AuthRepository
	RefreshTokenRepo  repository.RefreshTokenRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	MFAService        service.MFAService
	AttemptLimiter    service.AttemptLimiter
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	maxLoginAttempts := int64(5)
	loginWindow := 15 * time.Minute
	resetCooldown := time.Minute

	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
		if params.Config.Auth.MaxLoginAttempts > 0 {
			maxLoginAttempts = int64(params.Config.Auth.MaxLoginAttempts)
		}
		if params.Config.Auth.LoginAttemptWindow > 0 {
			loginWindow = params.Config.Auth.LoginAttemptWindow
		}
		if params.Config.Auth.ResetCooldown > 0 {
			resetCooldown = params.Config.Auth.ResetCooldown
		}
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		mfaService:        params.MFAService,
		attemptLimiter:    params.AttemptLimiter,
		maxActiveSessions: maxActiveSessions,
		maxLoginAttempts:  maxLoginAttempts,
		loginWindow:       loginWindow,
		resetCooldown:     resetCooldown,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete account creation process. The user, the
// credential, the profile, the avatar and the notification preferences are
// written in one transaction; a failure at any step leaves nothing behind.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting sign-up", slog.String("email", input.Email))

	if !emailPattern.MatchString(input.Email) {
		return nil, domainerrors.ErrInvalidEmail.WrapMessage("sign-up rejected")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrWeakPassword.WrapMessage("sign-up rejected")
	}
	if input.Username == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("username is required")
	}

	// bcrypt is CPU-bound, hash outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during sign-up")
	}

	var newUser *entity.User
	var accessToken, refreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()
		notificationRepo := repoFactory.NewNotificationRepository()

		_, findErr := authRepo.FindAuthentication(ctx, string(entity.ProviderTypeEmail), input.Email)
		if findErr == nil {
			return domainerrors.ErrEmailExists.WrapMessage("sign-up rejected")
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to check existing authentication")
		}

		newUser = &entity.User{Email: input.Email}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailExists.WrapMessage("sign-up rejected")
			}

			return errors.Wrap(createErr, "failed to create user during sign-up")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if authErr := authRepo.CreateAuthentication(ctx, newAuth); authErr != nil {
			return errors.Wrap(authErr, "failed to create authentication during sign-up")
		}

		profile := &entity.Profile{
			UserID:      newUser.ID,
			Username:    input.Username,
			DisplayName: input.Username,
			Privacy:     entity.DefaultPrivacySettings(),
		}
		if profileErr := userRepo.UpsertProfile(ctx, profile); profileErr != nil {
			if errors.Is(profileErr, repository.ErrDuplicateUsername) {
				return domainerrors.ErrUsernameTaken.WrapMessage("sign-up rejected")
			}

			return errors.Wrap(profileErr, "failed to create profile during sign-up")
		}

		if avatarErr := userRepo.SaveAvatar(ctx, entity.DefaultAvatar(newUser.ID)); avatarErr != nil {
			return errors.Wrap(avatarErr, "failed to create avatar during sign-up")
		}

		if prefsErr := notificationRepo.SavePreferences(ctx, entity.DefaultNotificationPreferences(newUser.ID)); prefsErr != nil {
			return errors.Wrap(prefsErr, "failed to create notification preferences during sign-up")
		}

		var tokenErr error
		accessToken, refreshTokenString, tokenErr = srv.tokenService.GenerateTokens(newUser.ID)
		if tokenErr != nil {
			return errors.Wrap(tokenErr, "failed to generate tokens during sign-up")
		}

		return srv.storeRefreshToken(ctx, repoFactory, newUser.ID, refreshTokenString)
	})

	if err != nil {
		srv.log(ctx).Error("Sign-up transaction failed", slog.String("email", input.Email), slog.Any("error", err))

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrSignupFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         newUser,
	}, nil
}

// Login orchestrates the email/password login process.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	attempts, err := srv.attemptLimiter.Incr(ctx, "login:"+input.Email, srv.loginWindow)
	if err != nil {
		srv.log(ctx).Warn("Attempt limiter unavailable", slog.Any("error", err))
	} else if attempts > srv.maxLoginAttempts {
		return nil, domainerrors.ErrRateLimited.WrapMessage("too many login attempts")
	}

	authRecord, err := srv.loadLoginAuth(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	if authRecord.MFAEnabled {
		if input.MFACode == "" || !srv.mfaService.ValidateCode(input.MFACode, authRecord.MFASecret) {
			srv.log(ctx).Warn("Login failed MFA check", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidMFACode.WrapMessage("login failed")
		}
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user during login")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during login")
	}

	if err := srv.persistRefreshToken(ctx, loggedInUser.ID, refreshTokenString); err != nil {
		return nil, err
	}

	if resetErr := srv.attemptLimiter.Reset(ctx, "login:"+input.Email); resetErr != nil {
		srv.log(ctx).Warn("Failed to reset login attempt counter", slog.Any("error", resetErr))
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", loggedInUser.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// LoginWithGoogle handles login or first-time registration via Google Sign-In.
func (srv *authService) LoginWithGoogle(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Handling Google login")

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrOAuth.WrapMessage("failed to verify Google ID token")
	}

	var loggedInUser *entity.User
	var accessToken, refreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, findErr := srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)
		if findErr != nil {
			return findErr
		}
		loggedInUser = user

		var tokenErr error
		accessToken, refreshTokenString, tokenErr = srv.tokenService.GenerateTokens(user.ID)
		if tokenErr != nil {
			return errors.Wrap(tokenErr, "failed to generate tokens for Google login")
		}

		return srv.storeRefreshToken(ctx, repoFactory, user.ID, refreshTokenString)
	})

	if err != nil {
		srv.log(ctx).Error("Google login transaction failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute Google login transaction")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// RefreshSession rotates a refresh token into a new token pair. The old
// session row is replaced so a stolen token cannot be replayed.
func (srv *authService) RefreshSession(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Refreshing session")

	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != "refresh" {
		return nil, domainerrors.ErrSessionExpired.WrapMessage("invalid refresh token")
	}

	var user *entity.User
	var accessToken, newRefreshToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()
		userRepo := repoFactory.NewUserRepository()

		tokenHash := srv.tokenService.HashToken(refreshToken)

		stored, findErr := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if findErr != nil {
			return domainerrors.ErrSessionExpired.WrapMessage("session not found")
		}
		if time.Now().After(stored.ExpiresAt) {
			return domainerrors.ErrSessionExpired.WrapMessage("session expired")
		}

		var loadErr error
		user, loadErr = userRepo.FindByID(ctx, claims.UserID)
		if loadErr != nil {
			return errors.Wrap(loadErr, "failed to load user during refresh")
		}

		var tokenErr error
		accessToken, newRefreshToken, tokenErr = srv.tokenService.GenerateTokens(user.ID)
		if tokenErr != nil {
			return errors.Wrap(tokenErr, "failed to generate tokens during refresh")
		}

		if delErr := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); delErr != nil {
			return errors.Wrap(delErr, "failed to delete rotated refresh token")
		}

		newToken := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(newRefreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}

		return errors.Wrap(refreshRepo.CreateRefreshToken(ctx, newToken), "failed to store rotated refresh token")
	})

	if err != nil {
		srv.log(ctx).Warn("Session refresh failed", slog.Any("error", err))

		return nil, err
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
	}, nil
}

// Logout ends the session identified by the refresh token.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	srv.log(ctx).Info("Logging out")

	tokenHash := srv.tokenService.HashToken(refreshToken)

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Already gone, logout is idempotent.
			return nil
		}

		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// LogoutAll ends every session of the user.
func (srv *authService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Logging out all sessions", slog.Any("userID", userID))

	if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete refresh tokens")
	}

	return nil
}

// RequestPasswordReset starts a reset flow for the email. The response is
// identical whether or not the email is registered, and a per-email cooldown
// blocks rapid re-requests.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return domainerrors.ErrInvalidEmail.WrapMessage("password reset rejected")
	}

	ok, err := srv.attemptLimiter.SetCooldown(ctx, "pwreset:"+email, srv.resetCooldown)
	if err != nil {
		return errors.Wrap(err, "failed to check reset cooldown")
	}
	if !ok {
		return domainerrors.ErrRateLimited.WrapMessage("password reset cooldown active")
	}

	_, err = srv.authRepo.FindAuthentication(ctx, string(entity.ProviderTypeEmail), email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			// Do not reveal whether the email is registered.
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to look up authentication for reset")
	}

	srv.log(ctx).Info("Password reset email dispatched", slog.String("email", email))

	return nil
}

// ChangePassword rotates the password after verifying the current one and
// revokes every session so stolen tokens die with the old password.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Any("userID", userID))

	if len(input.NewPassword) < minPasswordLength {
		return domainerrors.ErrWeakPassword.WrapMessage("password change rejected")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		authRecord, findErr := authRepo.FindAuthenticationByUser(ctx, userID, string(entity.ProviderTypeEmail))
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("no password credential for account")
			}

			return errors.Wrap(findErr, "failed to load authentication")
		}

		if !srv.hasher.Check(input.CurrentPassword, authRecord.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("current password mismatch")
		}

		authRecord.PasswordHash = hashedPassword
		if updateErr := authRepo.UpdateAuthentication(ctx, authRecord); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update password")
		}

		return errors.Wrap(refreshRepo.DeleteRefreshTokensByUserID(ctx, userID), "failed to revoke sessions after password change")
	})

	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	return nil
}

// EnrollMFA generates a pending TOTP secret. Enforcement starts only after
// ActivateMFA verifies the first code.
func (srv *authService) EnrollMFA(ctx context.Context, userID uuid.UUID) (*usecase.MFAEnrollmentOutput, error) {
	srv.log(ctx).Info("Enrolling MFA", slog.Any("userID", userID))

	authRecord, err := srv.authRepo.FindAuthenticationByUser(ctx, userID, string(entity.ProviderTypeEmail))
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, domainerrors.ErrInvalidInput.WrapMessage("MFA requires a password credential")
		}

		return nil, errors.Wrap(err, "failed to load authentication for MFA enrollment")
	}

	secret, url, err := srv.mfaService.GenerateSecret(authRecord.ProviderUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate MFA secret")
	}

	authRecord.MFASecret = secret
	authRecord.MFAEnabled = false
	if err := srv.authRepo.UpdateAuthentication(ctx, authRecord); err != nil {
		return nil, errors.Wrap(err, "failed to store pending MFA secret")
	}

	return &usecase.MFAEnrollmentOutput{Secret: secret, URL: url}, nil
}

// ActivateMFA verifies the first code against the pending secret and turns
// enforcement on.
func (srv *authService) ActivateMFA(ctx context.Context, userID uuid.UUID, code string) error {
	authRecord, err := srv.authRepo.FindAuthenticationByUser(ctx, userID, string(entity.ProviderTypeEmail))
	if err != nil {
		return errors.Wrap(err, "failed to load authentication for MFA activation")
	}

	if authRecord.MFASecret == "" {
		return domainerrors.ErrInvalidInput.WrapMessage("no pending MFA enrollment")
	}
	if !srv.mfaService.ValidateCode(code, authRecord.MFASecret) {
		return domainerrors.ErrInvalidMFACode.WrapMessage("MFA activation rejected")
	}

	authRecord.MFAEnabled = true

	return errors.Wrap(srv.authRepo.UpdateAuthentication(ctx, authRecord), "failed to activate MFA")
}

// DisableMFA verifies a current code and turns enforcement off.
func (srv *authService) DisableMFA(ctx context.Context, userID uuid.UUID, code string) error {
	authRecord, err := srv.authRepo.FindAuthenticationByUser(ctx, userID, string(entity.ProviderTypeEmail))
	if err != nil {
		return errors.Wrap(err, "failed to load authentication for MFA disable")
	}

	if !authRecord.MFAEnabled {
		return domainerrors.ErrInvalidInput.WrapMessage("MFA is not enabled")
	}
	if !srv.mfaService.ValidateCode(code, authRecord.MFASecret) {
		return domainerrors.ErrInvalidMFACode.WrapMessage("MFA disable rejected")
	}

	authRecord.MFAEnabled = false
	authRecord.MFASecret = ""

	return errors.Wrap(srv.authRepo.UpdateAuthentication(ctx, authRecord), "failed to disable MFA")
}

func (srv *authService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	authRecord, err := srv.authRepo.FindAuthentication(ctx, string(entity.ProviderTypeEmail), email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return authRecord, nil
}

func (srv *authService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	authRepo := repoFactory.NewAuthRepository()
	userRepo := repoFactory.NewUserRepository()

	authRecord, err := authRepo.FindAuthentication(ctx, string(entity.ProviderTypeGoogle), oauthUser.ID)
	if err != nil && !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find Google authentication")
	}

	if err == nil {
		user, findErr := userRepo.FindByID(ctx, authRecord.UserID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to load existing Google user")
		}

		return user, nil
	}

	return srv.createGoogleUser(ctx, repoFactory, oauthUser)
}

func (srv *authService) createGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	srv.log(ctx).Info("Google user not found, creating new account", slog.String("email", oauthUser.Email))

	userRepo := repoFactory.NewUserRepository()
	authRepo := repoFactory.NewAuthRepository()
	notificationRepo := repoFactory.NewNotificationRepository()

	newUser := &entity.User{Email: oauthUser.Email}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for Google authentication")
	}

	newAuth := &entity.Authentication{
		UserID:         newUser.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create Google authentication")
	}

	profile := &entity.Profile{
		UserID:      newUser.ID,
		Username:    googleUsername(oauthUser),
		DisplayName: oauthUser.Name,
		AvatarURL:   oauthUser.AvatarURL,
		Privacy:     entity.DefaultPrivacySettings(),
	}
	if err := userRepo.UpsertProfile(ctx, profile); err != nil {
		if !errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, errors.Wrap(err, "failed to create profile for Google user")
		}

		// Username collision with another account, retry with a random suffix.
		profile.Username = fmt.Sprintf("%s-%s", profile.Username, uuid.NewString()[:8])
		if retryErr := userRepo.UpsertProfile(ctx, profile); retryErr != nil {
			return nil, errors.Wrap(retryErr, "failed to create profile for Google user")
		}
	}

	if err := userRepo.SaveAvatar(ctx, entity.DefaultAvatar(newUser.ID)); err != nil {
		return nil, errors.Wrap(err, "failed to create avatar for Google user")
	}

	if err := notificationRepo.SavePreferences(ctx, entity.DefaultNotificationPreferences(newUser.ID)); err != nil {
		return nil, errors.Wrap(err, "failed to create preferences for Google user")
	}

	return newUser, nil
}

func googleUsername(oauthUser *service.OAuthUser) string {
	for i, r := range oauthUser.Email {
		if r == '@' {
			return oauthUser.Email[:i]
		}
	}

	return oauthUser.ID
}

func (srv *authService) persistRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions > 0 {
		// When the session limit is enabled, keep lock/count/insert in one short transaction.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return srv.storeRefreshToken(ctx, repoFactory, userID, refreshTokenString)
		}); err != nil {
			return errors.Wrap(err, "failed to execute login session transaction")
		}

		return nil
	}

	return srv.storeRefreshTokenWithRepo(ctx, srv.refreshTokenRepo, userID, refreshTokenString)
}

func (srv *authService) storeRefreshToken(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, refreshTokenString string) error {
	refreshRepo := repoFactory.NewRefreshTokenRepository()

	if srv.maxActiveSessions > 0 {
		if err := refreshRepo.AcquireSessionMutex(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user row for session limit check")
		}

		activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return domainerrors.ErrRateLimited.WrapMessage("active session limit exceeded")
		}
	}

	return srv.storeRefreshTokenWithRepo(ctx, refreshRepo, userID, refreshTokenString)
}

func (srv *authService) storeRefreshTokenWithRepo(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	return errors.Wrap(refreshRepo.CreateRefreshToken(ctx, newRefreshToken), "failed to store refresh token")
}
