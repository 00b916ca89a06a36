package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/swipehired/jobtrack/internal/domain/models"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) Add(ctx context.Context, user *models.User) error {
	if err := repo.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return &DuplicateEmailError{Email: user.Email}
		}
		return errors.Wrap(err, "failed to create user")
	}
	return nil
}

func (repo *Users) GetByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := repo.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

func (repo *Users) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := repo.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update loads the user, applies mutate, and saves inside one transaction.
// Any error from mutate abandons the whole update.
func (repo *Users) Update(ctx context.Context, id int, mutate func(*models.User) error) (*models.User, error) {
	var updated *models.User
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := mutate(&user); err != nil {
			return err
		}
		if err := tx.Save(&user).Error; err != nil {
			if isUniqueViolation(err) {
				return &DuplicateEmailError{Email: user.Email}
			}
			return errors.Wrap(err, "failed to save user")
		}
		updated = &user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (repo *Users) Remove(ctx context.Context, id int) error {
	res := repo.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to delete user")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
