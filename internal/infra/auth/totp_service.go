// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/pquerna/otp/totp"

	"habitude/internal/domain/service"
)

const totpIssuer = "Habitude"

// totpService implements the MFAService interface with RFC 6238 time-based
// one-time passwords.
type totpService struct{}

// NewTOTPService is the constructor for totpService.
func NewTOTPService() service.MFAService {
	return &totpService{}
}

// GenerateSecret creates a new TOTP secret for the account and returns the
// secret plus an otpauth:// provisioning URL for authenticator apps.
func (s *totpService) GenerateSecret(accountName string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: accountName,
	})
	if err != nil {
		return "", "", err
	}

	return key.Secret(), key.URL(), nil
}

// ValidateCode checks a 6-digit code against the secret. The library
// tolerates one period of clock skew in either direction.
func (s *totpService) ValidateCode(code, secret string) bool {
	return totp.Validate(code, secret)
}
