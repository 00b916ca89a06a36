package main

import (
	"io"
	"os"

	"github.com/asaskevich/EventBus"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/swipehired/jobtrack/internal/audit"
	"github.com/swipehired/jobtrack/internal/cli"
	"github.com/swipehired/jobtrack/internal/config"
	"github.com/swipehired/jobtrack/internal/logger"
	"github.com/swipehired/jobtrack/internal/repositories"
)

func main() {

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	bus := EventBus.New()
	if err := audit.Attach(bus); err != nil {
		log.Fatalf("can't attach audit subscriber: %v", err)
	}

	users := repositories.NewUsersRepository(dbContext.DB)
	companies := repositories.NewCompaniesRepository(dbContext.DB)
	jobs := repositories.NewJobsRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)

	cachedCompanies := repositories.NewCachedCompanies(companies)
	if err := cachedCompanies.Attach(bus); err != nil {
		log.Fatalf("can't attach company cache: %v", err)
	}
	listings := repositories.NewListings(dbContext.DB, cachedCompanies)

	app, err := cli.New(cli.Repositories{
		Users:        users,
		Companies:    companies,
		Jobs:         jobs,
		Applications: applications,
		Listings:     listings,
	}, bus, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("can't create cli: %v", err)
	}

	if err := app.Execute(); err != nil && !errors.Is(err, io.EOF) {
		log.Fatalf("command failed: %v", err)
	}
}
