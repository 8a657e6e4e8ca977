// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

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

const defaultFeedLimit = 50

// socialService implements the SocialUsecase interface.
type socialService struct {
	txManager      repository.TransactionManager
	friendshipRepo repository.FriendshipRepository
	challengeRepo  repository.ChallengeRepository
	habitRepo      repository.HabitRepository
	userRepo       repository.UserRepository
	activityRepo   repository.ActivityRepository
	qrcodeService  service.QRCodeService
	notifications  usecase.NotificationUsecase
	logger         *slog.Logger
}

// SocialServiceParams holds dependencies for SocialService, injected by Fx.
type SocialServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	FriendshipRepo repository.FriendshipRepository
	ChallengeRepo  repository.ChallengeRepository
	HabitRepo      repository.HabitRepository
	UserRepo       repository.UserRepository
	ActivityRepo   repository.ActivityRepository
	QRCodeService  service.QRCodeService
	Notifications  usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NewSocialService is the constructor for socialService.
func NewSocialService(params SocialServiceParams) usecase.SocialUsecase {
	return &socialService{
		txManager:      params.TxManager,
		friendshipRepo: params.FriendshipRepo,
		challengeRepo:  params.ChallengeRepo,
		habitRepo:      params.HabitRepo,
		userRepo:       params.UserRepo,
		activityRepo:   params.ActivityRepo,
		qrcodeService:  params.QRCodeService,
		notifications:  params.Notifications,
		logger:         params.Logger,
	}
}

func (srv *socialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendFriendRequest creates a pending friendship toward the recipient. At
// most one edge exists per pair: the either-direction lookup rejects a
// request when any edge already connects the two, and the directed unique
// index settles same-direction races at the database.
func (srv *socialService) SendFriendRequest(ctx context.Context, userID, recipientID uuid.UUID) (*entity.Friendship, error) {
	if userID == recipientID {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("cannot friend yourself")
	}

	recipientProfile, err := srv.userRepo.FindProfileByUserID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) || errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("friend request recipient lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load recipient profile")
	}

	if !recipientProfile.Privacy.AllowFriendRequests {
		return nil, domainerrors.ErrForbidden.WrapMessage("recipient does not accept friend requests")
	}

	blocked, err := srv.friendshipRepo.IsBlocked(ctx, userID, recipientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check block relation")
	}
	if blocked {
		return nil, domainerrors.ErrForbidden.WrapMessage("friend request blocked")
	}

	existing, err := srv.friendshipRepo.FindFriendshipBetween(ctx, userID, recipientID)
	if err != nil && !errors.Is(err, repository.ErrFriendshipNotFound) {
		return nil, errors.Wrap(err, "failed to check existing friendship")
	}
	if existing != nil {
		return nil, domainerrors.ErrRequestExists.WrapMessage("an edge already connects these users")
	}

	friendship := &entity.Friendship{
		UserID:   userID,
		FriendID: recipientID,
		Status:   entity.FriendshipPending,
	}

	if err := srv.friendshipRepo.CreateFriendRequest(ctx, friendship); err != nil {
		if errors.Is(err, repository.ErrDuplicateFriendship) {
			return nil, domainerrors.ErrRequestExists.WrapMessage("friend request rejected")
		}

		return nil, errors.Wrap(err, "failed to create friend request")
	}

	srv.notify(ctx, recipientID, entity.NotificationFriendRequest, "New friend request",
		"Someone wants to be your friend",
		map[string]string{"friendship_id": friendship.ID.String(), "from_user_id": userID.String()})

	return friendship, nil
}

// RespondFriendRequest accepts or rejects a pending request addressed to
// the caller. Rejection keeps the edge with status rejected, so the
// requester cannot immediately re-send; removing the friend deletes it.
func (srv *socialService) RespondFriendRequest(ctx context.Context, userID, requestID uuid.UUID, accept bool) error {
	friendship, err := srv.friendshipRepo.FindFriendshipByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return domainerrors.ErrFriendRequestNotFound.WrapMessage("friend request lookup failed")
		}

		return errors.Wrap(err, "failed to load friend request")
	}

	if friendship.FriendID != userID {
		return domainerrors.ErrForbidden.WrapMessage("only the recipient may respond to a friend request")
	}
	if friendship.Status != entity.FriendshipPending {
		return domainerrors.ErrConflict.WrapMessage("friend request already handled")
	}

	if !accept {
		if err := srv.friendshipRepo.UpdateFriendshipStatus(ctx, friendship.ID, entity.FriendshipRejected); err != nil {
			return errors.Wrap(err, "failed to reject friend request")
		}

		return nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendshipRepo := repoFactory.NewFriendshipRepository()
		activityRepo := repoFactory.NewActivityRepository()

		if updateErr := friendshipRepo.UpdateFriendshipStatus(ctx, friendship.ID, entity.FriendshipAccepted); updateErr != nil {
			return errors.Wrap(updateErr, "failed to accept friend request")
		}

		activity := &entity.Activity{
			UserID: userID,
			Type:   "friend_added",
			Payload: map[string]string{
				"friend_id": friendship.UserID.String(),
			},
		}

		return errors.Wrap(activityRepo.CreateActivity(ctx, activity), "failed to record friend activity")
	})

	if err != nil {
		return err
	}

	srv.notify(ctx, friendship.UserID, entity.NotificationSocial, "Friend request accepted",
		"Your friend request was accepted",
		map[string]string{"friend_id": userID.String()})

	return nil
}

// RemoveFriend deletes an accepted friendship between the caller and friend.
func (srv *socialService) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	friendship, err := srv.friendshipRepo.FindFriendshipBetween(ctx, userID, friendID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("friendship lookup failed")
		}

		return errors.Wrap(err, "failed to load friendship")
	}

	if friendship.Status != entity.FriendshipAccepted {
		return domainerrors.ErrNotFound.WrapMessage("no accepted friendship between users")
	}

	return errors.Wrap(srv.friendshipRepo.DeleteFriendship(ctx, friendship.ID), "failed to remove friend")
}

// ListFriends retrieves the caller's accepted friends.
func (srv *socialService) ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error) {
	friends, err := srv.friendshipRepo.ListFriends(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list friends")
	}

	return friends, nil
}

// ListFriendRequests retrieves pending requests addressed to the caller.
func (srv *socialService) ListFriendRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	requests, err := srv.friendshipRepo.ListPendingRequests(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list friend requests")
	}

	return requests, nil
}

// BlockUser blocks another user. Any existing friendship between the pair
// is severed in the same transaction, so there is no window where both a
// block and a friendship exist.
func (srv *socialService) BlockUser(ctx context.Context, userID, blockedID uuid.UUID) error {
	if userID == blockedID {
		return domainerrors.ErrInvalidInput.WrapMessage("cannot block yourself")
	}

	if _, err := srv.userRepo.FindByID(ctx, blockedID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("block target lookup failed")
		}

		return errors.Wrap(err, "failed to load block target")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendshipRepo := repoFactory.NewFriendshipRepository()

		block := &entity.Block{BlockerID: userID, BlockedID: blockedID}
		if err := friendshipRepo.CreateBlock(ctx, block); err != nil {
			if errors.Is(err, repository.ErrDuplicateBlock) {
				return domainerrors.ErrAlreadyBlocked.WrapMessage("block rejected")
			}

			return errors.Wrap(err, "failed to create block")
		}

		friendship, findErr := friendshipRepo.FindFriendshipBetween(ctx, userID, blockedID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrFriendshipNotFound) {
				return nil
			}

			return errors.Wrap(findErr, "failed to check friendship while blocking")
		}

		return errors.Wrap(friendshipRepo.DeleteFriendship(ctx, friendship.ID), "failed to sever friendship while blocking")
	})
}

// UnblockUser removes a block the caller placed.
func (srv *socialService) UnblockUser(ctx context.Context, userID, blockedID uuid.UUID) error {
	if err := srv.friendshipRepo.DeleteBlock(ctx, userID, blockedID); err != nil {
		if errors.Is(err, repository.ErrBlockNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("block lookup failed")
		}

		return errors.Wrap(err, "failed to remove block")
	}

	return nil
}

// ListBlocked retrieves the users the caller has blocked.
func (srv *socialService) ListBlocked(ctx context.Context, userID uuid.UUID) ([]*entity.Block, error) {
	blocks, err := srv.friendshipRepo.ListBlocked(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blocks")
	}

	return blocks, nil
}

// GenerateInviteQR renders a QR code other users can scan to friend the caller.
func (srv *socialService) GenerateInviteQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	png, err := srv.qrcodeService.GenerateInviteQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR code")
	}

	srv.log(ctx).Debug("Invite QR generated", slog.Any("userID", userID))

	return png, nil
}

// AcceptInviteQR turns scanned invite data into a friend request from the caller.
func (srv *socialService) AcceptInviteQR(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Friendship, error) {
	inviterID, err := srv.qrcodeService.ParseInviteQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("invite QR data is not valid")
	}

	return srv.SendFriendRequest(ctx, userID, inviterID)
}

// CreateChallenge creates a challenge on one of the caller's habits and
// enrolls the listed participants. Challenge and memberships are written in
// one transaction; a failed invite rolls back the whole challenge.
func (srv *socialService) CreateChallenge(ctx context.Context, userID uuid.UUID, input usecase.CreateChallengeInput) (*entity.Challenge, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("challenge name is required")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, domainerrors.ErrInvalidDates.WrapMessage("challenge creation rejected")
	}
	if len(input.ParticipantIDs) == 0 {
		return nil, domainerrors.ErrNoParticipants.WrapMessage("challenge creation rejected")
	}

	habit, err := srv.habitRepo.FindHabitByID(ctx, input.HabitID)
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			return nil, domainerrors.ErrHabitNotFound.WrapMessage("challenge habit lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load challenge habit")
	}
	if habit.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("challenges can only be created on own habits")
	}

	targetCount := input.TargetCount
	if targetCount <= 0 {
		targetCount = 1
	}

	status := entity.ChallengeActive
	if input.StartDate.After(time.Now()) {
		status = entity.ChallengePending
	}

	challenge := &entity.Challenge{
		CreatorID:   userID,
		HabitID:     habit.ID,
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TargetCount: targetCount,
		Status:      status,
	}

	invited := dedupeParticipants(userID, input.ParticipantIDs)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		challengeRepo := repoFactory.NewChallengeRepository()

		if createErr := challengeRepo.CreateChallenge(ctx, challenge); createErr != nil {
			return errors.Wrap(createErr, "failed to create challenge")
		}

		// The creator always participates.
		creatorRow := &entity.ChallengeParticipant{ChallengeID: challenge.ID, UserID: userID}
		if addErr := challengeRepo.AddParticipant(ctx, creatorRow); addErr != nil {
			return errors.Wrap(addErr, "failed to add challenge creator")
		}

		for _, participantID := range invited {
			row := &entity.ChallengeParticipant{ChallengeID: challenge.ID, UserID: participantID}
			if addErr := challengeRepo.AddParticipant(ctx, row); addErr != nil {
				return errors.Wrap(addErr, "failed to add challenge participant")
			}
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Challenge creation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	for _, participantID := range invited {
		srv.notify(ctx, participantID, entity.NotificationChallenge, "Challenge invitation",
			"You were invited to "+challenge.Name,
			map[string]string{"challenge_id": challenge.ID.String()})
	}

	return challenge, nil
}

// JoinChallenge adds the caller to a challenge they were not yet part of.
// Joining is only valid while the challenge is active.
func (srv *socialService) JoinChallenge(ctx context.Context, userID, challengeID uuid.UUID) error {
	challenge, err := srv.loadChallenge(ctx, challengeID)
	if err != nil {
		return err
	}

	if challenge.Status != entity.ChallengeActive {
		return domainerrors.ErrConflict.WrapMessage("challenge is not active")
	}

	participant := &entity.ChallengeParticipant{ChallengeID: challengeID, UserID: userID}
	if err := srv.challengeRepo.AddParticipant(ctx, participant); err != nil {
		if errors.Is(err, repository.ErrDuplicateParticipant) {
			return domainerrors.ErrAlreadyParticipating.WrapMessage("challenge join rejected")
		}

		return errors.Wrap(err, "failed to join challenge")
	}

	return nil
}

// LeaveChallenge removes the caller from a challenge. The record of a
// completed challenge is immutable, so leaving one is rejected.
func (srv *socialService) LeaveChallenge(ctx context.Context, userID, challengeID uuid.UUID) error {
	challenge, err := srv.loadChallenge(ctx, challengeID)
	if err != nil {
		return err
	}

	if challenge.Status == entity.ChallengeCompleted {
		return domainerrors.ErrConflict.WrapMessage("cannot leave a completed challenge")
	}

	if err := srv.challengeRepo.RemoveParticipant(ctx, challengeID, userID); err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("challenge membership lookup failed")
		}

		return errors.Wrap(err, "failed to leave challenge")
	}

	return nil
}

// UpdateChallengeProgress adds increment to the caller's progress counter.
// Increment and completion check run in one transaction; reaching the target
// stamps the caller's completion and flips the challenge to completed, and
// the other participants are notified afterwards.
func (srv *socialService) UpdateChallengeProgress(ctx context.Context, userID, challengeID uuid.UUID, increment int) (*entity.ChallengeParticipant, error) {
	if increment <= 0 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("progress increment must be positive")
	}

	challenge, err := srv.loadChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge.Status != entity.ChallengeActive {
		return nil, domainerrors.ErrConflict.WrapMessage("challenge is not active")
	}

	var participant *entity.ChallengeParticipant
	completed := false

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		challengeRepo := repoFactory.NewChallengeRepository()

		updated, incErr := challengeRepo.IncrementParticipantProgress(ctx, challengeID, userID, increment)
		if incErr != nil {
			if errors.Is(incErr, repository.ErrParticipantNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("challenge membership lookup failed")
			}

			return errors.Wrap(incErr, "failed to update challenge progress")
		}
		participant = updated

		if updated.CompletedAt != nil || updated.ProgressCount < challenge.TargetCount {
			return nil
		}

		if markErr := challengeRepo.MarkParticipantCompleted(ctx, challengeID, userID); markErr != nil {
			return errors.Wrap(markErr, "failed to mark participant completed")
		}
		if statusErr := challengeRepo.UpdateChallengeStatus(ctx, challengeID, entity.ChallengeCompleted); statusErr != nil {
			return errors.Wrap(statusErr, "failed to complete challenge")
		}
		completed = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	if completed {
		srv.notifyChallengeFinished(ctx, challenge, userID)
	}

	return participant, nil
}

func (srv *socialService) notifyChallengeFinished(ctx context.Context, challenge *entity.Challenge, winnerID uuid.UUID) {
	participants, err := srv.challengeRepo.ListParticipants(ctx, challenge.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to list participants for completion notice", slog.Any("challengeID", challenge.ID), slog.Any("error", err))

		return
	}

	for _, p := range participants {
		if p.UserID == winnerID {
			continue
		}
		srv.notify(ctx, p.UserID, entity.NotificationChallenge, "Challenge completed",
			challenge.Name+" has been completed",
			map[string]string{"challenge_id": challenge.ID.String(), "winner_id": winnerID.String()})
	}
}

// GetChallenge retrieves a challenge with its leaderboard. Only
// participants and the creator may view it.
func (srv *socialService) GetChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*usecase.ChallengeDetail, error) {
	challenge, err := srv.loadChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	participants, err := srv.challengeRepo.ListParticipants(ctx, challengeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list challenge participants")
	}

	if challenge.CreatorID != userID && !containsParticipant(participants, userID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("not a challenge participant")
	}

	return &usecase.ChallengeDetail{Challenge: challenge, Participants: participants}, nil
}

// ListChallenges retrieves the challenges the caller participates in.
func (srv *socialService) ListChallenges(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error) {
	challenges, err := srv.challengeRepo.ListChallengesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list challenges")
	}

	return challenges, nil
}

// GetActivityFeed retrieves feed entries visible to the caller.
func (srv *socialService) GetActivityFeed(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Activity, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	feed, err := srv.activityRepo.ListFeedForUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load activity feed")
	}

	return feed, nil
}

func (srv *socialService) loadChallenge(ctx context.Context, challengeID uuid.UUID) (*entity.Challenge, error) {
	challenge, err := srv.challengeRepo.FindChallengeByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrChallengeNotFound.WrapMessage("challenge lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load challenge")
	}

	return challenge, nil
}

func (srv *socialService) notify(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, title, message string, data map[string]string) {
	_, err := srv.notifications.Notify(ctx, usecase.NotifyInput{
		UserID:  userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
		Data:    data,
	})
	if err != nil && !errors.Is(err, domainerrors.ErrNotificationsDisabled) {
		srv.log(ctx).Warn("Failed to dispatch notification", slog.Any("userID", userID), slog.Any("error", err))
	}
}

func dedupeParticipants(creatorID uuid.UUID, ids []uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]struct{}{creatorID: {}}
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

func containsParticipant(participants []*entity.ChallengeParticipant, userID uuid.UUID) bool {
	for _, p := range participants {
		if p.UserID == userID {
			return true
		}
	}

	return false
}
