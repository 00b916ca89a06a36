package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/swipehired/jobtrack/internal/domain/models"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) Add(ctx context.Context, application *models.Application) error {
	return errors.Wrap(repo.db.WithContext(ctx).Create(application).Error, "failed to create application")
}

func (repo *Applications) GetByID(ctx context.Context, id int) (*models.Application, error) {
	var application models.Application
	if err := repo.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &application, nil
}

// UserOf resolves the applicant. Returns ErrNotFound when the user id
// dangles.
func (repo *Applications) UserOf(ctx context.Context, application *models.Application) (*models.User, error) {
	var user models.User
	if err := repo.db.WithContext(ctx).First(&user, "id = ?", application.UserID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

// JobOf resolves the applied-to job. Returns ErrNotFound when the job id
// dangles.
func (repo *Applications) JobOf(ctx context.Context, application *models.Application) (*models.Job, error) {
	var job models.Job
	if err := repo.db.WithContext(ctx).First(&job, "id = ?", application.JobID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &job, nil
}

func (repo *Applications) GetAll(ctx context.Context) ([]models.Application, error) {
	var applications []models.Application
	if err := repo.db.WithContext(ctx).Order("id").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) GetByUser(ctx context.Context, userID int) ([]models.Application, error) {
	var applications []models.Application
	if err := repo.db.WithContext(ctx).Order("id").Find(&applications, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) Update(ctx context.Context, id int, mutate func(*models.Application) error) (*models.Application, error) {
	var updated *models.Application
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var application models.Application
		if err := tx.First(&application, "id = ?", id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := mutate(&application); err != nil {
			return err
		}
		if err := tx.Save(&application).Error; err != nil {
			return errors.Wrap(err, "failed to save application")
		}
		updated = &application
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (repo *Applications) Remove(ctx context.Context, id int) error {
	res := repo.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to delete application")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDangling removes applications whose user or job no longer exists.
// Invoked explicitly through the prune-applications command.
func (repo *Applications) DeleteDangling(ctx context.Context) (int64, error) {
	res := repo.db.WithContext(ctx).
		Where("user_id NOT IN (?)", repo.db.Model(&models.User{}).Select("id")).
		Or("job_id NOT IN (?)", repo.db.Model(&models.Job{}).Select("id")).
		Delete(&models.Application{})
	return res.RowsAffected, res.Error
}
