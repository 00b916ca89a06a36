package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/swipehired/jobtrack/internal/domain/models"
)

func newTestContext(t *testing.T) *DbContext {
	t.Helper()

	dbContext, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, dbContext.Migrate())
	t.Cleanup(func() { _ = dbContext.Close() })
	return dbContext
}

func mustCreateUser(t *testing.T, repo *Users, name, email string) *models.User {
	t.Helper()

	user, err := models.NewUser(name, email, "0759233322", "applicant")
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), user))
	return user
}

func mustCreateCompany(t *testing.T, repo *Companies, name string) *models.Company {
	t.Helper()

	company, err := models.NewCompany(name, "Tech", "https://"+name+".example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), company))
	return company
}

func mustCreateJob(t *testing.T, repo *Jobs, name string, companyID int) *models.Job {
	t.Helper()

	job, err := models.NewJob(name, "Nairobi", "Build things", 120000, "full-time", companyID)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), job))
	return job
}

func mustCreateApplication(t *testing.T, repo *Applications, userID, jobID int, status string) *models.Application {
	t.Helper()

	application, err := models.NewApplication(userID, jobID, status, time.Time{})
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), application))
	return application
}
