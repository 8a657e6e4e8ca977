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
	"gorm.io/gorm/clause"
)

// habitRepository implements the domain.HabitRepository interface using GORM.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository is the constructor for habitRepository.
func NewHabitRepository(db *gorm.DB) repository.HabitRepository {
	return &habitRepository{db: db}
}

// CreateHabit persists a new habit.
func (repo *habitRepository) CreateHabit(ctx context.Context, habit *entity.Habit) error {
	habitM := fromHabitDomain(habit)

	if err := repo.db.WithContext(ctx).Create(habitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid habit owner")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required habit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create habit")
	}

	habit.ID = habitM.ID
	habit.CreatedAt = habitM.CreatedAt
	habit.UpdatedAt = habitM.UpdatedAt

	return nil
}

// FindHabitByID retrieves a habit by its unique ID, active or not.
func (repo *habitRepository) FindHabitByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habitM model.HabitModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&habitM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHabitNotFound
		}

		return nil, errors.Wrap(err, "failed to find habit by id")
	}

	return toHabitDomain(&habitM), nil
}

// FindHabitsByUser retrieves all active habits owned by a user.
func (repo *habitRepository) FindHabitsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = true", userID).
		Order("created_at").
		Find(&habitModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}

	habits := make([]*entity.Habit, 0, len(habitModels))
	for i := range habitModels {
		habits = append(habits, toHabitDomain(&habitModels[i]))
	}

	return habits, nil
}

// UpdateHabit modifies an existing habit.
func (repo *habitRepository) UpdateHabit(ctx context.Context, habit *entity.Habit) error {
	habitM := fromHabitDomain(habit)

	result := repo.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("id = ?", habit.ID).
		Updates(map[string]any{
			"name":                  habitM.Name,
			"description":           habitM.Description,
			"frequency":             habitM.Frequency,
			"custom_frequency_days": habitM.CustomFrequencyDays,
			"target_count":          habitM.TargetCount,
			"category":              habitM.Category,
			"difficulty":            habitM.Difficulty,
			"reminder_time":         habitM.ReminderTime,
			"is_active":             habitM.IsActive,
			"is_public":             habitM.IsPublic,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update habit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHabitNotFound
	}

	return nil
}

// ArchiveHabit deactivates a habit, keeping its progress history.
func (repo *habitRepository) ArchiveHabit(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to archive habit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHabitNotFound
	}

	return nil
}

// DeleteHabit removes a habit and its progress rows. Runs inside the
// caller's transaction so both deletes commit together.
func (repo *habitRepository) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("habit_id = ?", id).
		Delete(&model.HabitProgressModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete habit progress")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.HabitModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete habit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHabitNotFound
	}

	return nil
}

// CountHabitsByUser returns the number of habits a user owns, archived ones
// included.
func (repo *habitRepository) CountHabitsByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}

// CountActiveHabitsByUser returns the number of active habits a user owns.
func (repo *habitRepository) CountActiveHabitsByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}

// AcquireHabitMutex takes a row-level lock on the user row, serializing
// concurrent habit creation against the per-user cap. Only meaningful
// inside a transaction.
func (repo *habitRepository) AcquireHabitMutex(ctx context.Context, userID uuid.UUID) error {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", userID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return errors.WithStack(err)
	}

	return nil
}

// UpsertProgress inserts or replaces the progress row for a habit and date
// in a single statement. The (habit_id, date) unique index settles
// concurrent logs for the same day; last write wins.
func (repo *habitRepository) UpsertProgress(ctx context.Context, progress *entity.HabitProgress) error {
	progressM := fromHabitProgressDomain(progress)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed_count", "notes", "updated_at"}),
		}).
		Create(progressM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrHabitNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert habit progress")
	}

	progress.ID = progressM.ID
	progress.CreatedAt = progressM.CreatedAt
	progress.UpdatedAt = progressM.UpdatedAt

	return nil
}

// FindProgress retrieves the progress row for a habit on one date.
func (repo *habitRepository) FindProgress(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitProgress, error) {
	var progressM model.HabitProgressModel
	err := repo.db.WithContext(ctx).
		Where("habit_id = ? AND date = ?", habitID, date).
		First(&progressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProgressNotFound
		}

		return nil, errors.Wrap(err, "failed to find habit progress")
	}

	return toHabitProgressDomain(&progressM), nil
}

// ListProgressByHabit retrieves progress rows for a habit within [from, to], newest first.
func (repo *habitRepository) ListProgressByHabit(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*entity.HabitProgress, error) {
	var progressModels []model.HabitProgressModel
	err := repo.db.WithContext(ctx).
		Where("habit_id = ? AND date BETWEEN ? AND ?", habitID, from, to).
		Order("date DESC").
		Find(&progressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habit progress")
	}

	progress := make([]*entity.HabitProgress, 0, len(progressModels))
	for i := range progressModels {
		progress = append(progress, toHabitProgressDomain(&progressModels[i]))
	}

	return progress, nil
}

// --- Mapper Functions ---

// toHabitDomain converts a GORM HabitModel to a domain Habit entity.
func toHabitDomain(data *model.HabitModel) *entity.Habit {
	if data == nil {
		return nil
	}

	return &entity.Habit{
		ID:                  data.ID,
		UserID:              data.UserID,
		Name:                data.Name,
		Description:         data.Description,
		Frequency:           entity.FrequencyType(data.Frequency),
		CustomFrequencyDays: data.CustomFrequencyDays,
		TargetCount:         data.TargetCount,
		Category:            data.Category,
		Difficulty:          data.Difficulty,
		ReminderTime:        data.ReminderTime,
		IsActive:            data.IsActive,
		IsPublic:            data.IsPublic,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromHabitDomain converts a domain Habit entity to a GORM HabitModel.
func fromHabitDomain(data *entity.Habit) *model.HabitModel {
	if data == nil {
		return nil
	}

	return &model.HabitModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Name:                data.Name,
		Description:         data.Description,
		Frequency:           string(data.Frequency),
		CustomFrequencyDays: data.CustomFrequencyDays,
		TargetCount:         data.TargetCount,
		Category:            data.Category,
		Difficulty:          data.Difficulty,
		ReminderTime:        data.ReminderTime,
		IsActive:            data.IsActive,
		IsPublic:            data.IsPublic,
	}
}

// toHabitProgressDomain converts a GORM HabitProgressModel to a domain HabitProgress entity.
func toHabitProgressDomain(data *model.HabitProgressModel) *entity.HabitProgress {
	if data == nil {
		return nil
	}

	return &entity.HabitProgress{
		ID:             data.ID,
		HabitID:        data.HabitID,
		UserID:         data.UserID,
		Date:           data.Date,
		CompletedCount: data.CompletedCount,
		Notes:          data.Notes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromHabitProgressDomain converts a domain HabitProgress entity to a GORM HabitProgressModel.
func fromHabitProgressDomain(data *entity.HabitProgress) *model.HabitProgressModel {
	if data == nil {
		return nil
	}

	return &model.HabitProgressModel{
		ID:             data.ID,
		HabitID:        data.HabitID,
		UserID:         data.UserID,
		Date:           data.Date,
		CompletedCount: data.CompletedCount,
		Notes:          data.Notes,
	}
}
