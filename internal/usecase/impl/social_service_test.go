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
	mockUc "habitude/internal/mocks/usecase"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// socialServiceFixtures holds all test dependencies for social service tests.
type socialServiceFixtures struct {
	service        usecase.SocialUsecase
	txManager      *mockRepo.MockTransactionManager
	friendshipRepo *mockRepo.MockFriendshipRepository
	challengeRepo  *mockRepo.MockChallengeRepository
	habitRepo      *mockRepo.MockHabitRepository
	userRepo       *mockRepo.MockUserRepository
	activityRepo   *mockRepo.MockActivityRepository
	qrcodeService  *mockSvc.MockQRCodeService
	notifications  *mockUc.MockNotificationUsecase
}

func createTestSocialService(t *testing.T) socialServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	friendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	challengeRepo := mockRepo.NewMockChallengeRepository(t)
	habitRepo := mockRepo.NewMockHabitRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	notifications := mockUc.NewMockNotificationUsecase(t)

	service := NewSocialService(SocialServiceParams{
		TxManager:      txManager,
		FriendshipRepo: friendshipRepo,
		ChallengeRepo:  challengeRepo,
		HabitRepo:      habitRepo,
		UserRepo:       userRepo,
		ActivityRepo:   activityRepo,
		QRCodeService:  qrcodeService,
		Notifications:  notifications,
		Logger:         newDiscardLogger(),
	})

	return socialServiceFixtures{
		service:        service,
		txManager:      txManager,
		friendshipRepo: friendshipRepo,
		challengeRepo:  challengeRepo,
		habitRepo:      habitRepo,
		userRepo:       userRepo,
		activityRepo:   activityRepo,
		qrcodeService:  qrcodeService,
		notifications:  notifications,
	}
}

func TestSocialService_SendFriendRequest_Success(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipientID := uuid.New()

	fx.userRepo.EXPECT().
		FindProfileByUserID(ctx, recipientID).
		Return(&entity.Profile{
			UserID:  recipientID,
			Privacy: entity.PrivacySettings{AllowFriendRequests: true},
		}, nil)
	fx.friendshipRepo.EXPECT().IsBlocked(ctx, userID, recipientID).Return(false, nil)
	fx.friendshipRepo.EXPECT().
		FindFriendshipBetween(ctx, userID, recipientID).
		Return(nil, repository.ErrFriendshipNotFound)
	fx.friendshipRepo.EXPECT().
		CreateFriendRequest(ctx, mock.AnythingOfType("*entity.Friendship")).
		Run(func(ctx context.Context, friendship *entity.Friendship) {
			friendship.ID = uuid.New()
		}).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, mock.AnythingOfType("usecase.NotifyInput")).
		Return(&entity.Notification{}, nil)

	friendship, err := fx.service.SendFriendRequest(ctx, userID, recipientID)

	require.NoError(t, err)
	assert.Equal(t, entity.FriendshipPending, friendship.Status)
	assert.Equal(t, userID, friendship.UserID)
	assert.Equal(t, recipientID, friendship.FriendID)
}

func TestSocialService_SendFriendRequest_Self(t *testing.T) {
	fx := createTestSocialService(t)

	userID := uuid.New()

	friendship, err := fx.service.SendFriendRequest(context.Background(), userID, userID)

	assert.Nil(t, friendship)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestSocialService_SendFriendRequest_Duplicate(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipientID := uuid.New()

	fx.userRepo.EXPECT().
		FindProfileByUserID(ctx, recipientID).
		Return(&entity.Profile{
			UserID:  recipientID,
			Privacy: entity.PrivacySettings{AllowFriendRequests: true},
		}, nil)
	fx.friendshipRepo.EXPECT().IsBlocked(ctx, userID, recipientID).Return(false, nil)
	fx.friendshipRepo.EXPECT().
		FindFriendshipBetween(ctx, userID, recipientID).
		Return(nil, repository.ErrFriendshipNotFound)
	fx.friendshipRepo.EXPECT().
		CreateFriendRequest(ctx, mock.AnythingOfType("*entity.Friendship")).
		Return(repository.ErrDuplicateFriendship)

	friendship, err := fx.service.SendFriendRequest(ctx, userID, recipientID)

	assert.Nil(t, friendship)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestExists))
}

func TestSocialService_SendFriendRequest_ReverseDirectionPending(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipientID := uuid.New()

	fx.userRepo.EXPECT().
		FindProfileByUserID(ctx, recipientID).
		Return(&entity.Profile{
			UserID:  recipientID,
			Privacy: entity.PrivacySettings{AllowFriendRequests: true},
		}, nil)
	fx.friendshipRepo.EXPECT().IsBlocked(ctx, userID, recipientID).Return(false, nil)
	// The recipient already sent a pending request the other way round.
	fx.friendshipRepo.EXPECT().
		FindFriendshipBetween(ctx, userID, recipientID).
		Return(&entity.Friendship{
			ID:       uuid.New(),
			UserID:   recipientID,
			FriendID: userID,
			Status:   entity.FriendshipPending,
		}, nil)

	friendship, err := fx.service.SendFriendRequest(ctx, userID, recipientID)

	assert.Nil(t, friendship)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestExists))
}

func TestSocialService_SendFriendRequest_RecipientDisallows(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	recipientID := uuid.New()

	fx.userRepo.EXPECT().
		FindProfileByUserID(ctx, recipientID).
		Return(&entity.Profile{
			UserID:  recipientID,
			Privacy: entity.PrivacySettings{AllowFriendRequests: false},
		}, nil)

	friendship, err := fx.service.SendFriendRequest(ctx, userID, recipientID)

	assert.Nil(t, friendship)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSocialService_RespondFriendRequest_Accept(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	recipientID := uuid.New()
	requestID := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindFriendshipByID(ctx, requestID).
		Return(&entity.Friendship{
			ID:       requestID,
			UserID:   requesterID,
			FriendID: recipientID,
			Status:   entity.FriendshipPending,
		}, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)
	txActivityRepo := mockRepo.NewMockActivityRepository(t)

	mockFactory.EXPECT().NewFriendshipRepository().Return(txFriendshipRepo)
	mockFactory.EXPECT().NewActivityRepository().Return(txActivityRepo)

	txFriendshipRepo.EXPECT().
		UpdateFriendshipStatus(ctx, requestID, entity.FriendshipAccepted).
		Return(nil)
	txActivityRepo.EXPECT().
		CreateActivity(ctx, mock.AnythingOfType("*entity.Activity")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	fx.notifications.EXPECT().
		Notify(ctx, mock.AnythingOfType("usecase.NotifyInput")).
		Run(func(ctx context.Context, input usecase.NotifyInput) {
			assert.Equal(t, requesterID, input.UserID)
		}).
		Return(&entity.Notification{}, nil)

	err := fx.service.RespondFriendRequest(ctx, recipientID, requestID, true)

	assert.NoError(t, err)
}

func TestSocialService_RespondFriendRequest_OnlyRecipientMayRespond(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	requestID := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindFriendshipByID(ctx, requestID).
		Return(&entity.Friendship{
			ID:       requestID,
			UserID:   uuid.New(),
			FriendID: uuid.New(),
			Status:   entity.FriendshipPending,
		}, nil)

	err := fx.service.RespondFriendRequest(ctx, uuid.New(), requestID, true)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSocialService_RespondFriendRequest_Reject(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	requestID := uuid.New()

	fx.friendshipRepo.EXPECT().
		FindFriendshipByID(ctx, requestID).
		Return(&entity.Friendship{
			ID:       requestID,
			UserID:   uuid.New(),
			FriendID: recipientID,
			Status:   entity.FriendshipPending,
		}, nil)
	// Rejection keeps the edge so the requester cannot immediately re-send.
	fx.friendshipRepo.EXPECT().
		UpdateFriendshipStatus(ctx, requestID, entity.FriendshipRejected).
		Return(nil)

	err := fx.service.RespondFriendRequest(ctx, recipientID, requestID, false)

	assert.NoError(t, err)
}

func TestSocialService_BlockUser_SeversFriendship(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	blockedID := uuid.New()
	friendshipID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, blockedID).Return(&entity.User{ID: blockedID}, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)

	mockFactory.EXPECT().NewFriendshipRepository().Return(txFriendshipRepo)

	txFriendshipRepo.EXPECT().
		CreateBlock(ctx, mock.AnythingOfType("*entity.Block")).
		Return(nil)
	txFriendshipRepo.EXPECT().
		FindFriendshipBetween(ctx, userID, blockedID).
		Return(&entity.Friendship{ID: friendshipID, Status: entity.FriendshipAccepted}, nil)
	txFriendshipRepo.EXPECT().DeleteFriendship(ctx, friendshipID).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	err := fx.service.BlockUser(ctx, userID, blockedID)

	assert.NoError(t, err)
}

func TestSocialService_BlockUser_AlreadyBlocked(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	blockedID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, blockedID).Return(&entity.User{ID: blockedID}, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txFriendshipRepo := mockRepo.NewMockFriendshipRepository(t)

	mockFactory.EXPECT().NewFriendshipRepository().Return(txFriendshipRepo)

	txFriendshipRepo.EXPECT().
		CreateBlock(ctx, mock.AnythingOfType("*entity.Block")).
		Return(repository.ErrDuplicateBlock)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	err := fx.service.BlockUser(ctx, userID, blockedID)

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyBlocked))
}

func TestSocialService_AcceptInviteQR(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	inviterID := uuid.New()

	fx.qrcodeService.EXPECT().ParseInviteQR("habitude://invite/abc").Return(inviterID, nil)
	fx.userRepo.EXPECT().
		FindProfileByUserID(ctx, inviterID).
		Return(&entity.Profile{
			UserID:  inviterID,
			Privacy: entity.PrivacySettings{AllowFriendRequests: true},
		}, nil)
	fx.friendshipRepo.EXPECT().IsBlocked(ctx, userID, inviterID).Return(false, nil)
	fx.friendshipRepo.EXPECT().
		FindFriendshipBetween(ctx, userID, inviterID).
		Return(nil, repository.ErrFriendshipNotFound)
	fx.friendshipRepo.EXPECT().
		CreateFriendRequest(ctx, mock.AnythingOfType("*entity.Friendship")).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, mock.AnythingOfType("usecase.NotifyInput")).
		Return(&entity.Notification{}, nil)

	friendship, err := fx.service.AcceptInviteQR(ctx, userID, "habitude://invite/abc")

	require.NoError(t, err)
	assert.Equal(t, inviterID, friendship.FriendID)
}

func TestSocialService_CreateChallenge_Success(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()
	friendID := uuid.New()

	input := usecase.CreateChallengeInput{
		HabitID:        habitID,
		Name:           "Spring sprint",
		StartDate:      time.Now().Add(-time.Hour),
		EndDate:        time.Now().AddDate(0, 0, 7),
		TargetCount:    10,
		ParticipantIDs: []uuid.UUID{friendID, friendID, userID},
	}

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: userID}, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txChallengeRepo := mockRepo.NewMockChallengeRepository(t)

	mockFactory.EXPECT().NewChallengeRepository().Return(txChallengeRepo)

	txChallengeRepo.EXPECT().
		CreateChallenge(ctx, mock.AnythingOfType("*entity.Challenge")).
		Run(func(ctx context.Context, challenge *entity.Challenge) {
			challenge.ID = uuid.New()
		}).
		Return(nil)
	// Creator plus the deduplicated invitee.
	txChallengeRepo.EXPECT().
		AddParticipant(ctx, mock.AnythingOfType("*entity.ChallengeParticipant")).
		Return(nil).
		Times(2)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	fx.notifications.EXPECT().
		Notify(ctx, mock.AnythingOfType("usecase.NotifyInput")).
		Return(&entity.Notification{}, nil)

	challenge, err := fx.service.CreateChallenge(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ChallengeActive, challenge.Status)
	assert.Equal(t, 10, challenge.TargetCount)
}

func TestSocialService_CreateChallenge_InvalidDates(t *testing.T) {
	fx := createTestSocialService(t)

	challenge, err := fx.service.CreateChallenge(context.Background(), uuid.New(), usecase.CreateChallengeInput{
		HabitID:        uuid.New(),
		Name:           "Backwards",
		StartDate:      time.Now(),
		EndDate:        time.Now().AddDate(0, 0, -1),
		ParticipantIDs: []uuid.UUID{uuid.New()},
	})

	assert.Nil(t, challenge)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDates))
}

func TestSocialService_CreateChallenge_NoParticipants(t *testing.T) {
	fx := createTestSocialService(t)

	challenge, err := fx.service.CreateChallenge(context.Background(), uuid.New(), usecase.CreateChallengeInput{
		HabitID:   uuid.New(),
		Name:      "Solo",
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 0, 7),
	})

	assert.Nil(t, challenge)
	assert.True(t, errors.Is(err, domainerrors.ErrNoParticipants))
}

func TestSocialService_CreateChallenge_NotHabitOwner(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: uuid.New()}, nil)

	challenge, err := fx.service.CreateChallenge(ctx, uuid.New(), usecase.CreateChallengeInput{
		HabitID:        habitID,
		Name:           "Not mine",
		StartDate:      time.Now(),
		EndDate:        time.Now().AddDate(0, 0, 7),
		ParticipantIDs: []uuid.UUID{uuid.New()},
	})

	assert.Nil(t, challenge)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSocialService_JoinChallenge_AlreadyParticipating(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	challengeID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, Status: entity.ChallengeActive}, nil)
	fx.challengeRepo.EXPECT().
		AddParticipant(ctx, mock.AnythingOfType("*entity.ChallengeParticipant")).
		Return(repository.ErrDuplicateParticipant)

	err := fx.service.JoinChallenge(ctx, userID, challengeID)

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyParticipating))
}

func TestSocialService_JoinChallenge_NotYetActive(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	challengeID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, Status: entity.ChallengePending}, nil)

	err := fx.service.JoinChallenge(ctx, uuid.New(), challengeID)

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestSocialService_LeaveChallenge_Success(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	challengeID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, Status: entity.ChallengeActive}, nil)
	fx.challengeRepo.EXPECT().RemoveParticipant(ctx, challengeID, userID).Return(nil)

	err := fx.service.LeaveChallenge(ctx, userID, challengeID)

	assert.NoError(t, err)
}

func TestSocialService_LeaveChallenge_Completed(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	challengeID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, Status: entity.ChallengeCompleted}, nil)

	err := fx.service.LeaveChallenge(ctx, uuid.New(), challengeID)

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestSocialService_LeaveChallenge_NotAParticipant(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	challengeID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, Status: entity.ChallengeActive}, nil)
	fx.challengeRepo.EXPECT().
		RemoveParticipant(ctx, challengeID, userID).
		Return(repository.ErrParticipantNotFound)

	err := fx.service.LeaveChallenge(ctx, userID, challengeID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSocialService_UpdateChallengeProgress_BelowTarget(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	challengeID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, Status: entity.ChallengeActive, TargetCount: 10}, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txChallengeRepo := mockRepo.NewMockChallengeRepository(t)

	mockFactory.EXPECT().NewChallengeRepository().Return(txChallengeRepo)

	txChallengeRepo.EXPECT().
		IncrementParticipantProgress(ctx, challengeID, userID, 2).
		Return(&entity.ChallengeParticipant{
			ChallengeID:   challengeID,
			UserID:        userID,
			ProgressCount: 5,
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	participant, err := fx.service.UpdateChallengeProgress(ctx, userID, challengeID, 2)

	require.NoError(t, err)
	assert.Equal(t, 5, participant.ProgressCount)
}

func TestSocialService_UpdateChallengeProgress_ReachesTarget(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	winnerID := uuid.New()
	rivalID := uuid.New()
	challengeID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{
			ID:          challengeID,
			Name:        "Spring sprint",
			Status:      entity.ChallengeActive,
			TargetCount: 10,
		}, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txChallengeRepo := mockRepo.NewMockChallengeRepository(t)

	mockFactory.EXPECT().NewChallengeRepository().Return(txChallengeRepo)

	txChallengeRepo.EXPECT().
		IncrementParticipantProgress(ctx, challengeID, winnerID, 1).
		Return(&entity.ChallengeParticipant{
			ChallengeID:   challengeID,
			UserID:        winnerID,
			ProgressCount: 10,
		}, nil)
	txChallengeRepo.EXPECT().MarkParticipantCompleted(ctx, challengeID, winnerID).Return(nil)
	txChallengeRepo.EXPECT().
		UpdateChallengeStatus(ctx, challengeID, entity.ChallengeCompleted).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	fx.challengeRepo.EXPECT().
		ListParticipants(ctx, challengeID).
		Return([]*entity.ChallengeParticipant{
			{ChallengeID: challengeID, UserID: winnerID},
			{ChallengeID: challengeID, UserID: rivalID},
		}, nil)
	// Only the rival is told; the winner just made it happen.
	fx.notifications.EXPECT().
		Notify(ctx, mock.AnythingOfType("usecase.NotifyInput")).
		Run(func(ctx context.Context, input usecase.NotifyInput) {
			assert.Equal(t, rivalID, input.UserID)
			assert.Equal(t, winnerID.String(), input.Data["winner_id"])
		}).
		Return(&entity.Notification{}, nil)

	participant, err := fx.service.UpdateChallengeProgress(ctx, winnerID, challengeID, 1)

	require.NoError(t, err)
	assert.Equal(t, 10, participant.ProgressCount)
}

func TestSocialService_UpdateChallengeProgress_AlreadyCompletedParticipantKeepsStatus(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	challengeID := uuid.New()
	completedAt := time.Now().Add(-time.Hour)

	fx.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, Status: entity.ChallengeActive, TargetCount: 10}, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txChallengeRepo := mockRepo.NewMockChallengeRepository(t)

	mockFactory.EXPECT().NewChallengeRepository().Return(txChallengeRepo)

	// Counting past the target after completion must not re-fire the finish.
	txChallengeRepo.EXPECT().
		IncrementParticipantProgress(ctx, challengeID, userID, 1).
		Return(&entity.ChallengeParticipant{
			ChallengeID:   challengeID,
			UserID:        userID,
			ProgressCount: 11,
			CompletedAt:   &completedAt,
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	participant, err := fx.service.UpdateChallengeProgress(ctx, userID, challengeID, 1)

	require.NoError(t, err)
	assert.Equal(t, 11, participant.ProgressCount)
}

func TestSocialService_UpdateChallengeProgress_InvalidIncrement(t *testing.T) {
	fx := createTestSocialService(t)

	participant, err := fx.service.UpdateChallengeProgress(context.Background(), uuid.New(), uuid.New(), 0)

	assert.Nil(t, participant)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestSocialService_UpdateChallengeProgress_InactiveChallenge(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	challengeID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, Status: entity.ChallengePending, TargetCount: 10}, nil)

	participant, err := fx.service.UpdateChallengeProgress(ctx, uuid.New(), challengeID, 1)

	assert.Nil(t, participant)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestSocialService_GetChallenge_NonParticipant(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	challengeID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, CreatorID: uuid.New()}, nil)
	fx.challengeRepo.EXPECT().
		ListParticipants(ctx, challengeID).
		Return([]*entity.ChallengeParticipant{{ChallengeID: challengeID, UserID: uuid.New()}}, nil)

	detail, err := fx.service.GetChallenge(ctx, uuid.New(), challengeID)

	assert.Nil(t, detail)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSocialService_GetActivityFeed_ClampsLimit(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.activityRepo.EXPECT().
		ListFeedForUser(ctx, userID, defaultFeedLimit, 0).
		Return([]*entity.Activity{}, nil)

	_, err := fx.service.GetActivityFeed(ctx, userID, 1000, -5)

	assert.NoError(t, err)
}
