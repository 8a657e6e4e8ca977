package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateInviteQR generates a QR code encoding a friend invite for the user
	GenerateInviteQR(userID uuid.UUID) ([]byte, error)

	// ParseInviteQR parses scanned QR data and returns the inviting user's ID
	ParseInviteQR(qrData string) (uuid.UUID, error)
}
