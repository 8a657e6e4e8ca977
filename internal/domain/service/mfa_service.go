package service

// MFAService defines the interface for time-based one-time password
// enrollment and verification.
type MFAService interface {
	// GenerateSecret creates a new TOTP secret for the account and returns
	// the secret plus an otpauth:// provisioning URL for authenticator apps.
	GenerateSecret(accountName string) (secret string, url string, err error)

	// ValidateCode checks a 6-digit code against the secret, allowing for
	// clock skew of one period.
	ValidateCode(code, secret string) bool
}
