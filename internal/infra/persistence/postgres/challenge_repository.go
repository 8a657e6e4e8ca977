// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	"habitude/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// challengeRepository implements the domain.ChallengeRepository interface using GORM.
type challengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository is the constructor for challengeRepository.
func NewChallengeRepository(db *gorm.DB) repository.ChallengeRepository {
	return &challengeRepository{db: db}
}

// CreateChallenge persists a new challenge.
func (repo *challengeRepository) CreateChallenge(ctx context.Context, challenge *entity.Challenge) error {
	challengeM := fromChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Create(challengeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrHabitNotFound.WrapMessage("invalid challenge habit")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required challenge information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create challenge")
	}

	challenge.ID = challengeM.ID
	challenge.CreatedAt = challengeM.CreatedAt
	challenge.UpdatedAt = challengeM.UpdatedAt

	return nil
}

// FindChallengeByID retrieves a challenge by its unique ID.
func (repo *challengeRepository) FindChallengeByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var challengeM model.ChallengeModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge by id")
	}

	return toChallengeDomain(&challengeM), nil
}

// ListChallengesByUser retrieves all challenges the user participates in.
func (repo *challengeRepository) ListChallengesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error) {
	var challengeModels []model.ChallengeModel
	err := repo.db.WithContext(ctx).
		Model(&model.ChallengeModel{}).
		Joins("JOIN challenge_participants cp ON cp.challenge_id = challenges.id AND cp.user_id = ?", userID).
		Order("challenges.created_at DESC").
		Find(&challengeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list challenges by user")
	}

	challenges := make([]*entity.Challenge, 0, len(challengeModels))
	for i := range challengeModels {
		challenges = append(challenges, toChallengeDomain(&challengeModels[i]))
	}

	return challenges, nil
}

// ListActiveChallengesByHabit retrieves active challenges bound to a habit.
func (repo *challengeRepository) ListActiveChallengesByHabit(ctx context.Context, habitID uuid.UUID) ([]*entity.Challenge, error) {
	var challengeModels []model.ChallengeModel
	err := repo.db.WithContext(ctx).
		Where("habit_id = ? AND status = ?", habitID, string(entity.ChallengeActive)).
		Find(&challengeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active challenges by habit")
	}

	challenges := make([]*entity.Challenge, 0, len(challengeModels))
	for i := range challengeModels {
		challenges = append(challenges, toChallengeDomain(&challengeModels[i]))
	}

	return challenges, nil
}

// UpdateChallengeStatus transitions a challenge to a new status.
func (repo *challengeRepository) UpdateChallengeStatus(ctx context.Context, id uuid.UUID, status entity.ChallengeStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChallengeModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update challenge status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChallengeNotFound
	}

	return nil
}

// AddParticipant persists a challenge membership. A duplicate join loses on
// the (challenge_id, user_id) unique index.
func (repo *challengeRepository) AddParticipant(ctx context.Context, participant *entity.ChallengeParticipant) error {
	participantM := fromChallengeParticipantDomain(participant)

	if err := repo.db.WithContext(ctx).Create(participantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateParticipant
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrChallengeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add challenge participant")
	}

	participant.ID = participantM.ID
	participant.JoinedAt = participantM.JoinedAt
	participant.UpdatedAt = participantM.UpdatedAt

	return nil
}

// FindParticipant retrieves one user's membership row for a challenge.
func (repo *challengeRepository) FindParticipant(ctx context.Context, challengeID, userID uuid.UUID) (*entity.ChallengeParticipant, error) {
	var participantM model.ChallengeParticipantModel
	err := repo.db.WithContext(ctx).
		Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		First(&participantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParticipantNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge participant")
	}

	return toChallengeParticipantDomain(&participantM), nil
}

// ListParticipants retrieves all membership rows for a challenge, ordered by
// progress descending for leaderboard display.
func (repo *challengeRepository) ListParticipants(ctx context.Context, challengeID uuid.UUID) ([]*entity.ChallengeParticipant, error) {
	var participantModels []model.ChallengeParticipantModel
	err := repo.db.WithContext(ctx).
		Where("challenge_id = ?", challengeID).
		Order("progress_count DESC").
		Find(&participantModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list challenge participants")
	}

	participants := make([]*entity.ChallengeParticipant, 0, len(participantModels))
	for i := range participantModels {
		participants = append(participants, toChallengeParticipantDomain(&participantModels[i]))
	}

	return participants, nil
}

// IncrementParticipantProgress atomically adds delta to a participant's
// progress counter with a single UPDATE, then reloads the row. The counter
// never races because the add happens in SQL.
func (repo *challengeRepository) IncrementParticipantProgress(ctx context.Context, challengeID, userID uuid.UUID, delta int) (*entity.ChallengeParticipant, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ChallengeParticipantModel{}).
		Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		Update("progress_count", gorm.Expr("progress_count + ?", delta))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment participant progress")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrParticipantNotFound
	}

	return repo.FindParticipant(ctx, challengeID, userID)
}

// MarkParticipantCompleted stamps the participant's completion time if not already set.
func (repo *challengeRepository) MarkParticipantCompleted(ctx context.Context, challengeID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChallengeParticipantModel{}).
		Where("challenge_id = ? AND user_id = ? AND completed_at IS NULL", challengeID, userID).
		Update("completed_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark participant completed")
	}

	// Zero rows affected means the participant was already completed or is
	// not a member; both are harmless here.
	return nil
}

// RemoveParticipant deletes a user's membership row.
func (repo *challengeRepository) RemoveParticipant(ctx context.Context, challengeID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		Delete(&model.ChallengeParticipantModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove participant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrParticipantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toChallengeDomain converts a GORM ChallengeModel to a domain Challenge entity.
func toChallengeDomain(data *model.ChallengeModel) *entity.Challenge {
	if data == nil {
		return nil
	}

	return &entity.Challenge{
		ID:          data.ID,
		CreatorID:   data.CreatorID,
		HabitID:     data.HabitID,
		Name:        data.Name,
		Description: data.Description,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		TargetCount: data.TargetCount,
		Status:      entity.ChallengeStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromChallengeDomain converts a domain Challenge entity to a GORM ChallengeModel.
func fromChallengeDomain(data *entity.Challenge) *model.ChallengeModel {
	if data == nil {
		return nil
	}

	return &model.ChallengeModel{
		ID:          data.ID,
		CreatorID:   data.CreatorID,
		HabitID:     data.HabitID,
		Name:        data.Name,
		Description: data.Description,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		TargetCount: data.TargetCount,
		Status:      string(data.Status),
	}
}

// toChallengeParticipantDomain converts a GORM ChallengeParticipantModel to a domain entity.
func toChallengeParticipantDomain(data *model.ChallengeParticipantModel) *entity.ChallengeParticipant {
	if data == nil {
		return nil
	}

	return &entity.ChallengeParticipant{
		ID:            data.ID,
		ChallengeID:   data.ChallengeID,
		UserID:        data.UserID,
		ProgressCount: data.ProgressCount,
		CompletedAt:   data.CompletedAt,
		JoinedAt:      data.JoinedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromChallengeParticipantDomain converts a domain entity to a GORM ChallengeParticipantModel.
func fromChallengeParticipantDomain(data *entity.ChallengeParticipant) *model.ChallengeParticipantModel {
	if data == nil {
		return nil
	}

	return &model.ChallengeParticipantModel{
		ID:            data.ID,
		ChallengeID:   data.ChallengeID,
		UserID:        data.UserID,
		ProgressCount: data.ProgressCount,
		CompletedAt:   data.CompletedAt,
	}
}
