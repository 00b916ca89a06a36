package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipehired/jobtrack/internal/domain/models"
)

// The end-to-end shape of the store: company -> job -> user -> application,
// then the relationships resolve back by id.
func Test_Applications_RelationshipsResolve(t *testing.T) {
	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)
	companies := NewCompaniesRepository(dbCtx.DB)
	jobs := NewJobsRepository(dbCtx.DB)
	applications := NewApplicationsRepository(dbCtx.DB)

	company, err := models.NewCompany("Google", "Tech", "https://google.com")
	require.NoError(t, err)
	require.NoError(t, companies.Add(context.Background(), company))

	job, err := models.NewJob("Software Engineer", "Nairobi", "Build search", 120000, "full-time", company.ID)
	require.NoError(t, err)
	require.NoError(t, jobs.Add(context.Background(), job))

	user, err := models.NewUser("Alice", "alice@example.com", "0759233322", "applicant")
	require.NoError(t, err)
	require.NoError(t, users.Add(context.Background(), user))

	application := mustCreateApplication(t, applications, user.ID, job.ID, "applied")

	fetched, err := applications.GetByID(context.Background(), application.ID)
	assert.NoError(t, err)

	applicant, err := applications.UserOf(context.Background(), fetched)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", applicant.Name)

	applied, err := applications.JobOf(context.Background(), fetched)
	assert.NoError(t, err)
	assert.Equal(t, "Software Engineer", applied.Name)

	owner, err := jobs.CompanyOf(context.Background(), applied)
	assert.NoError(t, err)
	assert.Equal(t, "Google", owner.Name)
}

func Test_Applications_StatusIsStoredLowercase(t *testing.T) {
	dbCtx := newTestContext(t)
	applications := NewApplicationsRepository(dbCtx.DB)

	created := mustCreateApplication(t, applications, 1, 1, "Interviewing")

	fetched, err := applications.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusInterviewing, fetched.Status)
}

func Test_Applications_GetByUser_FiltersByApplicant(t *testing.T) {
	dbCtx := newTestContext(t)
	applications := NewApplicationsRepository(dbCtx.DB)

	mustCreateApplication(t, applications, 1, 1, "applied")
	mustCreateApplication(t, applications, 2, 1, "applied")
	mustCreateApplication(t, applications, 1, 2, "rejected")

	mine, err := applications.GetByUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)
}

func Test_Applications_UpdateStatus(t *testing.T) {
	dbCtx := newTestContext(t)
	applications := NewApplicationsRepository(dbCtx.DB)

	created := mustCreateApplication(t, applications, 1, 1, "applied")

	updated, err := applications.Update(context.Background(), created.ID, func(application *models.Application) error {
		return application.SetStatus("OFFERED")
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusOffered, updated.Status)
}

func Test_Applications_DeleteThenGetReturnsNotFound(t *testing.T) {
	dbCtx := newTestContext(t)
	applications := NewApplicationsRepository(dbCtx.DB)

	created := mustCreateApplication(t, applications, 1, 1, "applied")
	assert.NoError(t, applications.Remove(context.Background(), created.ID))

	_, err := applications.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_Listings_ApplicationsDetailed_FallsBackToNA(t *testing.T) {
	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)
	companies := NewCompaniesRepository(dbCtx.DB)
	jobs := NewJobsRepository(dbCtx.DB)
	applications := NewApplicationsRepository(dbCtx.DB)
	listings := NewListings(dbCtx.DB, NewCachedCompanies(companies))

	company := mustCreateCompany(t, companies, "google")
	job := mustCreateJob(t, jobs, "Software Engineer", company.ID)
	user := mustCreateUser(t, users, "Alice", "alice@example.com")
	mustCreateApplication(t, applications, user.ID, job.ID, "applied")
	mustCreateApplication(t, applications, 999, job.ID, "applied")
	mustCreateApplication(t, applications, user.ID, 999, "rejected")

	rows, err := listings.ApplicationsDetailed(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, "Alice", rows[0].UserName)
	assert.Equal(t, "Software Engineer", rows[0].JobName)
	assert.Equal(t, company.Name, rows[0].CompanyName)
	assert.NotNil(t, rows[0].Salary)

	assert.Equal(t, PlaceholderNA, rows[1].UserName)
	assert.Equal(t, "Software Engineer", rows[1].JobName)

	assert.Equal(t, "Alice", rows[2].UserName)
	assert.Equal(t, PlaceholderNA, rows[2].JobName)
	assert.Equal(t, PlaceholderNA, rows[2].CompanyName)
	assert.Nil(t, rows[2].Salary)
}

func Test_Listings_ApplicationsForUser_ReturnsOnlyTheirs(t *testing.T) {
	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)
	companies := NewCompaniesRepository(dbCtx.DB)
	applications := NewApplicationsRepository(dbCtx.DB)
	listings := NewListings(dbCtx.DB, NewCachedCompanies(companies))

	alice := mustCreateUser(t, users, "Alice", "alice@example.com")
	bob := mustCreateUser(t, users, "Bob", "bob@example.com")
	mustCreateApplication(t, applications, alice.ID, 1, "applied")
	mustCreateApplication(t, applications, bob.ID, 1, "applied")

	rows, err := listings.ApplicationsForUser(context.Background(), alice.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].UserName)
}

func Test_Applications_DeleteDangling_RemovesOnlyOrphans(t *testing.T) {
	dbCtx := newTestContext(t)
	users := NewUsersRepository(dbCtx.DB)
	jobs := NewJobsRepository(dbCtx.DB)
	applications := NewApplicationsRepository(dbCtx.DB)

	user := mustCreateUser(t, users, "Alice", "alice@example.com")
	job := mustCreateJob(t, jobs, "Engineer", 1)
	intact := mustCreateApplication(t, applications, user.ID, job.ID, "applied")
	mustCreateApplication(t, applications, 999, job.ID, "applied")
	mustCreateApplication(t, applications, user.ID, 999, "applied")

	removed, err := applications.DeleteDangling(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	remaining, err := applications.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, intact.ID, remaining[0].ID)
}
