package impl

import (
	"context"
	"testing"

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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service        usecase.UserUsecase
	userRepo       *mockRepo.MockUserRepository
	friendshipRepo *mockRepo.MockFriendshipRepository
	activityRepo   *mockRepo.MockActivityRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)

	service := NewUserService(UserServiceParams{
		UserRepo:       userRepo,
		FriendshipRepo: friendshipRepo,
		ActivityRepo:   activityRepo,
		Logger:         newDiscardLogger(),
	})

	return userServiceFixtures{
		service:        service,
		userRepo:       userRepo,
		friendshipRepo: friendshipRepo,
		activityRepo:   activityRepo,
	}
}

func TestUserService_GetProfile_Own(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{
		UserID:   userID,
		Username: "tester",
		Privacy:  entity.PrivacySettings{ProfileVisibility: entity.VisibilityPrivate},
	}

	fx.userRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(profile, nil)

	// The owner always sees their own profile regardless of visibility.
	result, err := fx.service.GetProfile(ctx, userID, userID)

	require.NoError(t, err)
	assert.Equal(t, "tester", result.Username)
}

func TestUserService_GetProfile_PrivateHiddenFromOthers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	ownerID := uuid.New()
	profile := &entity.Profile{
		UserID:  ownerID,
		Privacy: entity.PrivacySettings{ProfileVisibility: entity.VisibilityPrivate},
	}

	fx.userRepo.EXPECT().FindProfileByUserID(ctx, ownerID).Return(profile, nil)
	fx.friendshipRepo.EXPECT().IsBlocked(ctx, viewerID, ownerID).Return(false, nil)

	result, err := fx.service.GetProfile(ctx, viewerID, ownerID)

	assert.Nil(t, result)
	// Not-found rather than forbidden, so the response does not leak existence.
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_GetProfile_FriendsOnlyVisibleToFriend(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	ownerID := uuid.New()
	profile := &entity.Profile{
		UserID:  ownerID,
		Privacy: entity.PrivacySettings{ProfileVisibility: entity.VisibilityFriends},
	}

	fx.userRepo.EXPECT().FindProfileByUserID(ctx, ownerID).Return(profile, nil)
	fx.friendshipRepo.EXPECT().IsBlocked(ctx, viewerID, ownerID).Return(false, nil)
	fx.friendshipRepo.EXPECT().
		FindFriendshipBetween(ctx, viewerID, ownerID).
		Return(&entity.Friendship{Status: entity.FriendshipAccepted}, nil)

	result, err := fx.service.GetProfile(ctx, viewerID, ownerID)

	require.NoError(t, err)
	assert.Equal(t, ownerID, result.UserID)
}

func TestUserService_GetProfile_BlockedViewer(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	ownerID := uuid.New()
	profile := &entity.Profile{
		UserID:  ownerID,
		Privacy: entity.PrivacySettings{ProfileVisibility: entity.VisibilityPublic},
	}

	fx.userRepo.EXPECT().FindProfileByUserID(ctx, ownerID).Return(profile, nil)
	fx.friendshipRepo.EXPECT().IsBlocked(ctx, viewerID, ownerID).Return(true, nil)

	result, err := fx.service.GetProfile(ctx, viewerID, ownerID)

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile_PartialChanges(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{
		UserID:      userID,
		Username:    "tester",
		DisplayName: "Tester",
		Bio:         "old bio",
	}
	newBio := "new bio"

	fx.userRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(profile, nil)
	fx.userRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, updated *entity.Profile) {
			assert.Equal(t, "tester", updated.Username)
			assert.Equal(t, "new bio", updated.Bio)
		}).
		Return(nil)

	result, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Bio: &newBio})

	require.NoError(t, err)
	assert.Equal(t, "new bio", result.Bio)
}

func TestUserService_UpdateProfile_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	taken := "taken"

	fx.userRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(&entity.Profile{UserID: userID}, nil)
	fx.userRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(repository.ErrDuplicateUsername)

	result, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Username: &taken})

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestUserService_UpdatePrivacy_UnknownVisibility(t *testing.T) {
	fx := createTestUserService(t)

	err := fx.service.UpdatePrivacy(context.Background(), uuid.New(), entity.PrivacySettings{
		ProfileVisibility: "everyone",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestUserService_GetAvatar_BootstrapsDefault(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindAvatar(ctx, userID).Return(nil, repository.ErrAvatarNotFound)
	fx.userRepo.EXPECT().
		SaveAvatar(ctx, mock.AnythingOfType("*entity.Avatar")).
		Run(func(ctx context.Context, avatar *entity.Avatar) {
			assert.Equal(t, userID, avatar.UserID)
		}).
		Return(nil)

	avatar, err := fx.service.GetAvatar(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, avatar.UserID)
}

func TestUserService_UpdateAvatarTraits(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := entity.DefaultAvatar(userID)
	traits := entity.AvatarTraits{
		EncouragementStyle:     "cheerful",
		CommunicationFrequency: "daily",
		HumorLevel:             7,
		Formality:              2,
	}

	fx.userRepo.EXPECT().FindAvatar(ctx, userID).Return(existing, nil)
	fx.userRepo.EXPECT().
		SaveAvatar(ctx, mock.AnythingOfType("*entity.Avatar")).
		Run(func(ctx context.Context, avatar *entity.Avatar) {
			assert.Equal(t, traits, avatar.Traits)
		}).
		Return(nil)

	avatar, err := fx.service.UpdateAvatarTraits(ctx, userID, traits)

	require.NoError(t, err)
	assert.Equal(t, traits, avatar.Traits)
}

func TestUserService_SearchUsers_EmptyQuery(t *testing.T) {
	fx := createTestUserService(t)

	result, err := fx.service.SearchUsers(context.Background(), uuid.New(), "", 20)

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestUserService_SearchUsers_ClampsLimit(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	viewerID := uuid.New()

	fx.userRepo.EXPECT().
		SearchProfiles(ctx, viewerID, "tes", defaultSearchLimit).
		Return([]*entity.Profile{}, nil)

	_, err := fx.service.SearchUsers(ctx, viewerID, "tes", 500)

	assert.NoError(t, err)
}

func TestUserService_GetUserStats_HiddenByOwner(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	ownerID := uuid.New()
	profile := &entity.Profile{
		UserID: ownerID,
		Privacy: entity.PrivacySettings{
			ProfileVisibility: entity.VisibilityPublic,
			ShowStats:         false,
		},
	}

	fx.userRepo.EXPECT().FindProfileByUserID(ctx, ownerID).Return(profile, nil)
	fx.friendshipRepo.EXPECT().IsBlocked(ctx, viewerID, ownerID).Return(false, nil)

	stats, err := fx.service.GetUserStats(ctx, viewerID, ownerID)

	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_ListActivities_OwnClampsLimit(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	// The owner's request skips the visibility gate entirely.
	fx.activityRepo.EXPECT().
		ListActivitiesByUser(ctx, userID, defaultFeedLimit, 0).
		Return([]*entity.Activity{{UserID: userID, Type: "habit_completed"}}, nil)

	activities, err := fx.service.ListActivities(ctx, userID, userID, 9999, -3)

	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, userID, activities[0].UserID)
}

func TestUserService_ListActivities_HiddenByOwner(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	ownerID := uuid.New()
	profile := &entity.Profile{
		UserID: ownerID,
		Privacy: entity.PrivacySettings{
			ProfileVisibility: entity.VisibilityPublic,
			ShowActivity:      false,
		},
	}

	fx.userRepo.EXPECT().FindProfileByUserID(ctx, ownerID).Return(profile, nil)
	fx.friendshipRepo.EXPECT().IsBlocked(ctx, viewerID, ownerID).Return(false, nil)

	activities, err := fx.service.ListActivities(ctx, viewerID, ownerID, 50, 0)

	assert.Nil(t, activities)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_ListActivities_VisibleToViewer(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	ownerID := uuid.New()
	profile := &entity.Profile{
		UserID: ownerID,
		Privacy: entity.PrivacySettings{
			ProfileVisibility: entity.VisibilityPublic,
			ShowActivity:      true,
		},
	}

	fx.userRepo.EXPECT().FindProfileByUserID(ctx, ownerID).Return(profile, nil)
	fx.friendshipRepo.EXPECT().IsBlocked(ctx, viewerID, ownerID).Return(false, nil)
	fx.activityRepo.EXPECT().
		ListActivitiesByUser(ctx, ownerID, 10, 20).
		Return([]*entity.Activity{}, nil)

	activities, err := fx.service.ListActivities(ctx, viewerID, ownerID, 10, 20)

	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestUserService_DeleteAccount_NotOwner(t *testing.T) {
	fx := createTestUserService(t)

	// No repository expectations: a foreign target must not reach the store.
	err := fx.service.DeleteAccount(context.Background(), uuid.New(), uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_DeleteAccount_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().DeleteUser(ctx, userID).Return(nil)

	err := fx.service.DeleteAccount(ctx, userID, userID)

	assert.NoError(t, err)
}

func TestUserService_DeleteAccount_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().DeleteUser(ctx, userID).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteAccount(ctx, userID, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_GetUserStats_OwnAlwaysVisible(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		GetUserStats(ctx, userID).
		Return(&entity.UserStats{TotalHabits: 3, CurrentStreak: 5}, nil)

	stats, err := fx.service.GetUserStats(ctx, userID, userID)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalHabits)
	assert.Equal(t, 5, stats.CurrentStreak)
}
