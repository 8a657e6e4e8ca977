package impl

import (
	"context"
	"testing"
	"time"

	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	mockRepo "habitude/internal/mocks/repository"
	mockSvc "habitude/internal/mocks/service"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	pushService      *mockSvc.MockPushService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushService := mockSvc.NewMockPushService(t)

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		DeviceRepo:       deviceRepo,
		PushService:      pushService,
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		pushService:      pushService,
	}
}

func allEnabledPreferences(userID uuid.UUID) *entity.NotificationPreferences {
	prefs := entity.DefaultNotificationPreferences(userID)
	prefs.PushEnabled = true

	return prefs
}

func TestNotificationService_Notify_WritesInboxAndPushes(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().FindPreferences(ctx, userID).Return(allEnabledPreferences(userID), nil)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{UserID: userID, PushToken: "token-1", IsActive: true}}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, "Hello", "World", mock.Anything).
		Return(1, 0, nil, nil)

	notification, err := fx.service.Notify(ctx, usecase.NotifyInput{
		UserID:  userID,
		Type:    entity.NotificationSocial,
		Title:   "Hello",
		Message: "World",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, notification.UserID)
}

func TestNotificationService_Notify_TypeDisabled(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	prefs := allEnabledPreferences(userID)
	prefs.Challenges = false
	fx.notificationRepo.EXPECT().FindPreferences(ctx, userID).Return(prefs, nil)

	notification, err := fx.service.Notify(ctx, usecase.NotifyInput{
		UserID:  userID,
		Type:    entity.NotificationChallenge,
		Title:   "Challenge invitation",
		Message: "Join us",
	})

	assert.Nil(t, notification)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationsDisabled))
}

func TestNotificationService_Notify_QuietHoursSuppressPush(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Freeze the clock inside the quiet window.
	fx.service.(*notificationService).now = func() time.Time {
		return time.Date(2025, 1, 15, 23, 30, 0, 0, time.UTC)
	}

	prefs := allEnabledPreferences(userID)
	prefs.QuietHoursStart = "22:00"
	prefs.QuietHoursEnd = "07:00"
	fx.notificationRepo.EXPECT().FindPreferences(ctx, userID).Return(prefs, nil)
	// The inbox entry is still written; only the push is suppressed.
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	notification, err := fx.service.Notify(ctx, usecase.NotifyInput{
		UserID:  userID,
		Type:    entity.NotificationSocial,
		Title:   "Hello",
		Message: "World",
	})

	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestNotificationService_Notify_DeactivatesInvalidTokens(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().FindPreferences(ctx, userID).Return(allEnabledPreferences(userID), nil)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{UserID: userID, PushToken: "token-1", IsActive: true},
			{UserID: userID, PushToken: "token-stale", IsActive: true},
		}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-1", "token-stale"}, "Hello", "World", mock.Anything).
		Return(1, 1, []string{"token-stale"}, nil)
	fx.deviceRepo.EXPECT().DeactivateDevicesByTokens(ctx, []string{"token-stale"}).Return(nil)

	_, err := fx.service.Notify(ctx, usecase.NotifyInput{
		UserID:  userID,
		Type:    entity.NotificationSocial,
		Title:   "Hello",
		Message: "World",
	})

	assert.NoError(t, err)
}

func TestNotificationService_GetPreferences_BootstrapsDefaults(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		FindPreferences(ctx, userID).
		Return(nil, repository.ErrPreferencesNotFound)
	fx.notificationRepo.EXPECT().
		SavePreferences(ctx, mock.AnythingOfType("*entity.NotificationPreferences")).
		Run(func(ctx context.Context, prefs *entity.NotificationPreferences) {
			assert.Equal(t, userID, prefs.UserID)
		}).
		Return(nil)

	prefs, err := fx.service.GetPreferences(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, prefs.UserID)
}

func TestNotificationService_UpdatePreferences_InvalidQuietHours(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	badClock := "25:00"

	fx.notificationRepo.EXPECT().FindPreferences(ctx, userID).Return(allEnabledPreferences(userID), nil)

	prefs, err := fx.service.UpdatePreferences(ctx, userID, usecase.UpdatePreferencesInput{
		QuietHoursStart: &badClock,
	})

	assert.Nil(t, prefs)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTimeFormat))
}

func TestNotificationService_MarkRead_NotOwner(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: uuid.New()}, nil)

	err := fx.service.MarkRead(ctx, uuid.New(), notificationID)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestNotificationService_RegisterDevice_UnknownPlatform(t *testing.T) {
	fx := createTestNotificationService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), usecase.RegisterDeviceInput{
		Platform:  "blackberry",
		PushToken: "token-1",
	})

	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestNotificationService_RegisterDevice_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, usecase.RegisterDeviceInput{
		Platform:   "ios",
		DeviceName: "iPhone",
		PushToken:  "token-1",
	})

	require.NoError(t, err)
	assert.True(t, device.IsActive)
	assert.Equal(t, "ios", device.Platform)
}

func TestNotificationService_DeactivateDevice_NotOwner(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestNotificationService_ListNotifications_ClampsLimit(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		ListNotificationsByUser(ctx, userID, false, 50, 0).
		Return([]*entity.Notification{}, nil)

	_, err := fx.service.ListNotifications(ctx, userID, false, 1000, -2)

	assert.NoError(t, err)
}

func TestInQuietHours(t *testing.T) {
	cases := []struct {
		name     string
		clock    string
		start    string
		end      string
		expected bool
	}{
		{"inside same-day window", "14:00", "13:00", "15:00", true},
		{"outside same-day window", "16:00", "13:00", "15:00", false},
		{"inside wrapped window before midnight", "23:30", "22:00", "07:00", true},
		{"inside wrapped window after midnight", "06:00", "22:00", "07:00", true},
		{"outside wrapped window", "12:00", "22:00", "07:00", false},
		{"empty window disables suppression", "12:00", "", "", false},
		{"degenerate window disables suppression", "12:00", "09:00", "09:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clock, err := time.Parse("15:04", tc.clock)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, inQuietHours(clock, tc.start, tc.end))
		})
	}
}
