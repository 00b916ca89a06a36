package repositories

import (
	"context"
	"strconv"
	"time"

	"github.com/asaskevich/EventBus"
	gocache "github.com/patrickmn/go-cache"
	"github.com/swipehired/jobtrack/internal/events"
)

type companyNameSource interface {
	NameOf(ctx context.Context, id int) (string, error)
}

// CachedCompanies is a read-through cache over company-name resolution,
// used by the joined listings so one listing does not hit the same company
// row per job. Renames and deletes invalidate through the record-changed
// events the command layer publishes.
type CachedCompanies struct {
	source companyNameSource
	cache  *gocache.Cache
}

func NewCachedCompanies(source companyNameSource) *CachedCompanies {
	return &CachedCompanies{source: source, cache: gocache.New(time.Minute, 5*time.Minute)}
}

func (c *CachedCompanies) Attach(bus EventBus.Bus) error {
	return bus.Subscribe(events.RecordChangedTopic, c.onRecordChanged)
}

func (c *CachedCompanies) onRecordChanged(event events.RecordChanged) {
	if event.Entity != events.EntityCompany || event.Action == events.ActionCreated {
		return
	}
	c.Forget(event.ID)
}

func (c *CachedCompanies) Forget(id int) {
	c.cache.Delete(strconv.Itoa(id))
}

func (c *CachedCompanies) NameOf(ctx context.Context, id int) (string, error) {
	key := strconv.Itoa(id)
	if value, found := c.cache.Get(key); found {
		return value.(string), nil
	}

	name, err := c.source.NameOf(ctx, id)
	if name != "" {
		if err = c.cache.Add(key, name, gocache.DefaultExpiration); err != nil {
			return name, err
		}
	}

	return name, err
}
