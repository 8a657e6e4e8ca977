package qrcode

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	userID := uuid.New()

	qrBytes, err := service.GenerateInviteQR(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateInviteQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "")
			userID := uuid.New()

			qrBytes, err := service.GenerateInviteQR(userID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	userID := uuid.New()

	parsedID, err := service.ParseInviteQR(fmt.Sprintf("habitude://invite/%s", userID))
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestQRCodeService_ParseInviteQR_CustomBaseURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://habitude.app/invite")
	userID := uuid.New()

	parsedID, err := service.ParseInviteQR(fmt.Sprintf("https://habitude.app/invite/%s", userID))
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestQRCodeService_ParseInviteQR_WrongPrefix(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.ParseInviteQR("https://elsewhere.example/" + uuid.NewString())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid invite link")
}

func TestQRCodeService_ParseInviteQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.ParseInviteQR("habitude://invite/not-a-valid-uuid")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse inviting user ID")
}
