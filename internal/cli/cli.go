// Package cli is the interactive command surface of the tracker. Every
// command gathers its inputs from flags or prompts, performs exactly one
// repository operation and renders the result. Domain errors are printed
// and the process keeps its zero exit status.
package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/swipehired/jobtrack/internal/domain/models"
	"github.com/swipehired/jobtrack/internal/events"
	"github.com/swipehired/jobtrack/internal/repositories"
)

type Repositories struct {
	Users        *repositories.Users
	Companies    *repositories.Companies
	Jobs         *repositories.Jobs
	Applications *repositories.Applications
	Listings     *repositories.Listings
}

type App struct {
	repos Repositories
	bus   EventBus.Bus
	in    *bufio.Reader
	out   io.Writer
}

func New(repos Repositories, bus EventBus.Bus, in io.Reader, out io.Writer) (*App, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	if repos.Users == nil || repos.Companies == nil || repos.Jobs == nil ||
		repos.Applications == nil || repos.Listings == nil {
		return nil, errors.New("missing repository")
	}

	return &App{repos: repos, bus: bus, in: bufio.NewReader(in), out: out}, nil
}

func (a *App) RootCommand() *cobra.Command {

	root := &cobra.Command{
		Use:           "jobtrack",
		Short:         "Job application tracker",
		Long:          "Track users, companies, job postings and the applications linking them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd.Context())
		},
	}

	root.AddCommand(
		a.createUserCommand(),
		a.updateUserCommand(),
		a.fetchUserCommand(),
		a.deleteUserCommand(),
		a.listUsersCommand(),
		a.listUserApplicationsCommand(),

		a.createCompanyCommand(),
		a.updateCompanyCommand(),
		a.fetchCompanyCommand(),
		a.deleteCompanyCommand(),
		a.listCompaniesCommand(),

		a.createJobCommand(),
		a.updateJobCommand(),
		a.fetchJobCommand(),
		a.deleteJobCommand(),
		a.listJobsCommand(),

		a.createApplicationCommand(),
		a.updateApplicationCommand(),
		a.fetchApplicationCommand(),
		a.deleteApplicationCommand(),
		a.listApplicationsCommand(),
		a.pruneApplicationsCommand(),

		a.seedCommand(),
	)

	return root
}

func (a *App) Execute() error {
	return a.RootCommand().Execute()
}

// printError reports a failed operation to the operator. Domain errors are
// shown as-is; anything else is a store failure and also goes to the log.
func (a *App) printError(err error) {
	var validationErr *models.ValidationError
	var duplicateErr *repositories.DuplicateEmailError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &duplicateErr):
		fmt.Fprintf(a.out, "Error: %v\n", err)
	case errors.Is(err, repositories.ErrNotFound):
		fmt.Fprintf(a.out, "Error: %v\n", err)
	default:
		log.Errorf("store operation failed: %v", err)
		fmt.Fprintf(a.out, "Unexpected error: %v\n", err)
	}
}

func (a *App) printNotFound(entity string, id int) {
	fmt.Fprintf(a.out, "%s with ID %d not found.\n", entity, id)
}

func (a *App) publish(entity string, action events.Action, id int, label string) {
	a.bus.Publish(events.RecordChangedTopic, events.RecordChanged{
		Entity: entity,
		Action: action,
		ID:     id,
		Label:  label,
	})
}
