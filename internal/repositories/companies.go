package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/swipehired/jobtrack/internal/domain/models"
	"gorm.io/gorm"
)

type Companies struct {
	db *gorm.DB
}

func NewCompaniesRepository(db *gorm.DB) *Companies {
	return &Companies{db: db}
}

func (repo *Companies) Add(ctx context.Context, company *models.Company) error {
	return errors.Wrap(repo.db.WithContext(ctx).Create(company).Error, "failed to create company")
}

func (repo *Companies) GetByID(ctx context.Context, id int) (*models.Company, error) {
	var company models.Company
	if err := repo.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &company, nil
}

// NameOf resolves a company name by id, returning "" when the company is
// gone. Listings map "" to their N/A placeholder.
func (repo *Companies) NameOf(ctx context.Context, id int) (string, error) {
	var company models.Company
	if err := repo.db.WithContext(ctx).Select("name").First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return company.Name, nil
}

func (repo *Companies) GetAll(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := repo.db.WithContext(ctx).Order("id").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (repo *Companies) Update(ctx context.Context, id int, mutate func(*models.Company) error) (*models.Company, error) {
	var updated *models.Company
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var company models.Company
		if err := tx.First(&company, "id = ?", id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := mutate(&company); err != nil {
			return err
		}
		if err := tx.Save(&company).Error; err != nil {
			return errors.Wrap(err, "failed to save company")
		}
		updated = &company
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (repo *Companies) Remove(ctx context.Context, id int) error {
	res := repo.db.WithContext(ctx).Delete(&models.Company{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to delete company")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
