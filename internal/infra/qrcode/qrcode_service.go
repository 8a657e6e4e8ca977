package qrcode

import (
	"fmt"
	"strings"

	"habitude/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultBaseURL = "habitude://invite"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSuffix(baseURL, "/"),
	}
}

// GenerateInviteQR generates a QR code encoding a friend invite deep link,
// e.g. habitude://invite/<user-id>.
func (s *qrcodeService) GenerateInviteQR(userID uuid.UUID) ([]byte, error) {
	link := fmt.Sprintf("%s/%s", s.baseURL, userID)

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseInviteQR parses a scanned invite deep link and returns the inviting user's ID
func (s *qrcodeService) ParseInviteQR(qrData string) (uuid.UUID, error) {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(qrData, prefix) {
		return uuid.Nil, fmt.Errorf("invalid invite link: %s", qrData)
	}

	userID, err := uuid.Parse(strings.TrimPrefix(qrData, prefix))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse inviting user ID: %w", err)
	}

	return userID, nil
}
