// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	"habitude/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// friendshipRepository implements the domain.FriendshipRepository interface using GORM.
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{db: db}
}

// CreateFriendRequest persists a pending friendship. The directed
// (user_id, friend_id) unique index surfaces a same-direction duplicate as
// ErrDuplicateFriendship; the reverse direction is rejected by the
// service's either-direction lookup before the insert.
func (repo *friendshipRepository) CreateFriendRequest(ctx context.Context, friendship *entity.Friendship) error {
	friendshipM := fromFriendshipDomain(friendship)

	if err := repo.db.WithContext(ctx).Create(friendshipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFriendship
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid friendship participant")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create friend request")
	}

	friendship.ID = friendshipM.ID
	friendship.CreatedAt = friendshipM.CreatedAt
	friendship.UpdatedAt = friendshipM.UpdatedAt

	return nil
}

// FindFriendshipByID retrieves a friendship row by its unique ID.
func (repo *friendshipRepository) FindFriendshipByID(ctx context.Context, id uuid.UUID) (*entity.Friendship, error) {
	var friendshipM model.FriendshipModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&friendshipM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find friendship by id")
	}

	return toFriendshipDomain(&friendshipM), nil
}

// FindFriendshipBetween retrieves the friendship row between two users, in either direction.
func (repo *friendshipRepository) FindFriendshipBetween(ctx context.Context, userID, otherID uuid.UUID) (*entity.Friendship, error) {
	var friendshipM model.FriendshipModel
	err := repo.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, otherID, otherID, userID).
		First(&friendshipM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find friendship between users")
	}

	return toFriendshipDomain(&friendshipM), nil
}

// UpdateFriendshipStatus transitions a friendship to a new status.
func (repo *friendshipRepository) UpdateFriendshipStatus(ctx context.Context, id uuid.UUID, status entity.FriendshipStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FriendshipModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update friendship status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFriendshipNotFound
	}

	return nil
}

// DeleteFriendship removes a friendship row entirely.
func (repo *friendshipRepository) DeleteFriendship(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FriendshipModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrFriendshipNotFound
	}

	return nil
}

// ListFriends retrieves the profiles of all accepted friends of a user.
// The join resolves the friend's side of each edge in SQL.
func (repo *friendshipRepository) ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error) {
	var profileModels []model.ProfileModel
	err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Joins(`JOIN friendships f ON f.status = ?
			AND ((f.user_id = ? AND f.friend_id = profiles.user_id)
			  OR (f.friend_id = ? AND f.user_id = profiles.user_id))`,
			string(entity.FriendshipAccepted), userID, userID).
		Order("profiles.username").
		Find(&profileModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list friends")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, toProfileDomain(&profileModels[i]))
	}

	return profiles, nil
}

// ListPendingRequests retrieves incoming pending requests addressed to a user.
func (repo *friendshipRepository) ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	var friendshipModels []model.FriendshipModel
	err := repo.db.WithContext(ctx).
		Where("friend_id = ? AND status = ?", userID, string(entity.FriendshipPending)).
		Order("created_at DESC").
		Find(&friendshipModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending friend requests")
	}

	friendships := make([]*entity.Friendship, 0, len(friendshipModels))
	for i := range friendshipModels {
		friendships = append(friendships, toFriendshipDomain(&friendshipModels[i]))
	}

	return friendships, nil
}

// CountFriends returns the number of accepted friendships a user has.
func (repo *friendshipRepository) CountFriends(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FriendshipModel{}).
		Where("status = ? AND (user_id = ? OR friend_id = ?)", string(entity.FriendshipAccepted), userID, userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}

// CreateBlock persists a block relation.
func (repo *friendshipRepository) CreateBlock(ctx context.Context, block *entity.Block) error {
	blockM := fromBlockDomain(block)

	if err := repo.db.WithContext(ctx).Create(blockM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBlock
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid block participant")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create block")
	}

	block.ID = blockM.ID
	block.CreatedAt = blockM.CreatedAt

	return nil
}

// DeleteBlock removes a block relation.
func (repo *friendshipRepository) DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&model.BlockModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlockNotFound
	}

	return nil
}

// IsBlocked reports whether a block exists between two users in either direction.
func (repo *friendshipRepository) IsBlocked(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BlockModel{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			userID, otherID, otherID, userID).
		Count(&count).Error
	if err != nil {
		return false, errors.WithStack(err)
	}

	return count > 0, nil
}

// ListBlocked retrieves the users blocked by the given user.
func (repo *friendshipRepository) ListBlocked(ctx context.Context, blockerID uuid.UUID) ([]*entity.Block, error) {
	var blockModels []model.BlockModel
	err := repo.db.WithContext(ctx).
		Where("blocker_id = ?", blockerID).
		Order("created_at DESC").
		Find(&blockModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blocked users")
	}

	blocks := make([]*entity.Block, 0, len(blockModels))
	for i := range blockModels {
		blocks = append(blocks, toBlockDomain(&blockModels[i]))
	}

	return blocks, nil
}

// --- Mapper Functions ---

// toFriendshipDomain converts a GORM FriendshipModel to a domain Friendship entity.
func toFriendshipDomain(data *model.FriendshipModel) *entity.Friendship {
	if data == nil {
		return nil
	}

	return &entity.Friendship{
		ID:        data.ID,
		UserID:    data.UserID,
		FriendID:  data.FriendID,
		Status:    entity.FriendshipStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromFriendshipDomain converts a domain Friendship entity to a GORM FriendshipModel.
func fromFriendshipDomain(data *entity.Friendship) *model.FriendshipModel {
	if data == nil {
		return nil
	}

	return &model.FriendshipModel{
		ID:       data.ID,
		UserID:   data.UserID,
		FriendID: data.FriendID,
		Status:   string(data.Status),
	}
}

// toBlockDomain converts a GORM BlockModel to a domain Block entity.
func toBlockDomain(data *model.BlockModel) *entity.Block {
	if data == nil {
		return nil
	}

	return &entity.Block{
		ID:        data.ID,
		BlockerID: data.BlockerID,
		BlockedID: data.BlockedID,
		CreatedAt: data.CreatedAt,
	}
}

// fromBlockDomain converts a domain Block entity to a GORM BlockModel.
func fromBlockDomain(data *entity.Block) *model.BlockModel {
	if data == nil {
		return nil
	}

	return &model.BlockModel{
		ID:        data.ID,
		BlockerID: data.BlockerID,
		BlockedID: data.BlockedID,
	}
}
