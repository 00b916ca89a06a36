package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/swipehired/jobtrack/internal/domain/models"
	"gorm.io/gorm"
)

// PlaceholderNA marks a dangling reference in a joined listing.
const PlaceholderNA = "N/A"

type JobRow struct {
	Job         models.Job
	CompanyName string
}

type ApplicationRow struct {
	Application models.Application
	UserName    string
	JobName     string
	CompanyName string
	Salary      *float64
}

// Listings builds the read-only composite views. Dangling references never
// fail a listing; the missing side renders as N/A.
type Listings struct {
	db        *gorm.DB
	companies companyNameSource
}

func NewListings(db *gorm.DB, companies companyNameSource) *Listings {
	return &Listings{db: db, companies: companies}
}

func (l *Listings) JobsWithCompany(ctx context.Context) ([]JobRow, error) {
	var jobs []models.Job
	if err := l.db.WithContext(ctx).Order("id").Find(&jobs).Error; err != nil {
		return nil, err
	}

	rows := make([]JobRow, 0, len(jobs))
	for _, job := range jobs {
		name, err := l.companies.NameOf(ctx, job.CompanyID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve company name")
		}
		if name == "" {
			name = PlaceholderNA
		}
		rows = append(rows, JobRow{Job: job, CompanyName: name})
	}
	return rows, nil
}

func (l *Listings) ApplicationsDetailed(ctx context.Context) ([]ApplicationRow, error) {
	var applications []models.Application
	if err := l.db.WithContext(ctx).Order("id").Find(&applications).Error; err != nil {
		return nil, err
	}
	return l.detailRows(ctx, applications)
}

// ApplicationsForUser returns the detailed rows for one user's
// applications. The caller checks the user exists first.
func (l *Listings) ApplicationsForUser(ctx context.Context, userID int) ([]ApplicationRow, error) {
	var applications []models.Application
	if err := l.db.WithContext(ctx).Order("id").Find(&applications, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return l.detailRows(ctx, applications)
}

func (l *Listings) detailRows(ctx context.Context, applications []models.Application) ([]ApplicationRow, error) {
	rows := make([]ApplicationRow, 0, len(applications))
	for _, application := range applications {
		row := ApplicationRow{
			Application: application,
			UserName:    PlaceholderNA,
			JobName:     PlaceholderNA,
			CompanyName: PlaceholderNA,
		}

		var user models.User
		err := l.db.WithContext(ctx).Select("name").First(&user, "id = ?", application.UserID).Error
		if err == nil {
			row.UserName = user.Name
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		var job models.Job
		err = l.db.WithContext(ctx).First(&job, "id = ?", application.JobID).Error
		if err == nil {
			row.JobName = job.Name
			salary := job.Salary
			row.Salary = &salary

			name, err := l.companies.NameOf(ctx, job.CompanyID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to resolve company name")
			}
			if name != "" {
				row.CompanyName = name
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		rows = append(rows, row)
	}
	return rows, nil
}
