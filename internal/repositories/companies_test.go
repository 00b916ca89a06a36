package repositories

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/swipehired/jobtrack/internal/domain/models"
	"github.com/swipehired/jobtrack/internal/events"
)

func Test_Companies_CreateThenGetRoundTrips(t *testing.T) {
	dbCtx := newTestContext(t)
	repo := NewCompaniesRepository(dbCtx.DB)

	created := mustCreateCompany(t, repo, "google")

	fetched, err := repo.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Industry, fetched.Industry)
	assert.Equal(t, created.Website, fetched.Website)
}

func Test_Companies_GetByID_MissingReturnsNotFound(t *testing.T) {
	dbCtx := newTestContext(t)
	repo := NewCompaniesRepository(dbCtx.DB)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_Companies_NameOf_MissingReturnsEmpty(t *testing.T) {
	dbCtx := newTestContext(t)
	repo := NewCompaniesRepository(dbCtx.DB)

	name, err := repo.NameOf(context.Background(), 42)
	assert.NoError(t, err)
	assert.Empty(t, name)
}

func Test_Companies_Update_InvalidWebsiteLeavesRecordUnchanged(t *testing.T) {
	dbCtx := newTestContext(t)
	repo := NewCompaniesRepository(dbCtx.DB)

	created := mustCreateCompany(t, repo, "google")

	_, err := repo.Update(context.Background(), created.ID, func(company *models.Company) error {
		return company.SetWebsite("google.com")
	})

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	fetched, err := repo.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.Website, fetched.Website)
}

func Test_CachedCompanies_SecondLookupSkipsStore(t *testing.T) {
	dbCtx := newTestContext(t)
	repo := NewCompaniesRepository(dbCtx.DB)
	cached := NewCachedCompanies(repo)

	company := mustCreateCompany(t, repo, "google")

	name, err := cached.NameOf(context.Background(), company.ID)
	assert.NoError(t, err)
	assert.Equal(t, company.Name, name)

	// remove the row; the cached name must still resolve
	assert.NoError(t, repo.Remove(context.Background(), company.ID))

	name, err = cached.NameOf(context.Background(), company.ID)
	assert.NoError(t, err)
	assert.Equal(t, company.Name, name)
}

func Test_CachedCompanies_RenameEventInvalidatesEntry(t *testing.T) {
	dbCtx := newTestContext(t)
	repo := NewCompaniesRepository(dbCtx.DB)
	cached := NewCachedCompanies(repo)

	bus := EventBus.New()
	assert.NoError(t, cached.Attach(bus))

	company := mustCreateCompany(t, repo, "google")

	name, err := cached.NameOf(context.Background(), company.ID)
	assert.NoError(t, err)
	assert.Equal(t, "google", name)

	_, err = repo.Update(context.Background(), company.ID, func(c *models.Company) error {
		return c.SetName("alphabet")
	})
	assert.NoError(t, err)
	bus.Publish(events.RecordChangedTopic, events.RecordChanged{
		Entity: events.EntityCompany,
		Action: events.ActionUpdated,
		ID:     company.ID,
		Label:  "alphabet",
	})

	name, err = cached.NameOf(context.Background(), company.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alphabet", name)
}

func Test_CachedCompanies_DeleteEventInvalidatesEntry(t *testing.T) {
	dbCtx := newTestContext(t)
	repo := NewCompaniesRepository(dbCtx.DB)
	cached := NewCachedCompanies(repo)

	bus := EventBus.New()
	assert.NoError(t, cached.Attach(bus))

	company := mustCreateCompany(t, repo, "google")

	name, err := cached.NameOf(context.Background(), company.ID)
	assert.NoError(t, err)
	assert.Equal(t, "google", name)

	assert.NoError(t, repo.Remove(context.Background(), company.ID))
	bus.Publish(events.RecordChangedTopic, events.RecordChanged{
		Entity: events.EntityCompany,
		Action: events.ActionDeleted,
		ID:     company.ID,
		Label:  "google",
	})

	name, err = cached.NameOf(context.Background(), company.ID)
	assert.NoError(t, err)
	assert.Empty(t, name)
}
