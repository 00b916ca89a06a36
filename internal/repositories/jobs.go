package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/swipehired/jobtrack/internal/domain/models"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *models.Job) error {
	return errors.Wrap(repo.db.WithContext(ctx).Create(job).Error, "failed to create job")
}

func (repo *Jobs) GetByID(ctx context.Context, id int) (*models.Job, error) {
	var job models.Job
	if err := repo.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &job, nil
}

// CompanyOf resolves the job's owning company. Returns ErrNotFound when the
// company id dangles.
func (repo *Jobs) CompanyOf(ctx context.Context, job *models.Job) (*models.Company, error) {
	var company models.Company
	if err := repo.db.WithContext(ctx).First(&company, "id = ?", job.CompanyID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &company, nil
}

func (repo *Jobs) GetAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := repo.db.WithContext(ctx).Order("id").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) Update(ctx context.Context, id int, mutate func(*models.Job) error) (*models.Job, error) {
	var updated *models.Job
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, "id = ?", id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := mutate(&job); err != nil {
			return err
		}
		if err := tx.Save(&job).Error; err != nil {
			return errors.Wrap(err, "failed to save job")
		}
		updated = &job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (repo *Jobs) Remove(ctx context.Context, id int) error {
	res := repo.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to delete job")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
