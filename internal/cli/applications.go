package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/swipehired/jobtrack/internal/domain/models"
	"github.com/swipehired/jobtrack/internal/events"
	"github.com/swipehired/jobtrack/internal/repositories"
)

func (a *App) createApplicationCommand() *cobra.Command {
	var userID, jobID int
	var status, date string
	cmd := &cobra.Command{
		Use:   "create-application",
		Short: "Create a job application",
		RunE: func(cmd *cobra.Command, args []string) error {
			var userArg, jobArg *int
			var dateArg *string
			if cmd.Flags().Changed("user-id") {
				userArg = &userID
			}
			if cmd.Flags().Changed("job-id") {
				jobArg = &jobID
			}
			if cmd.Flags().Changed("date") {
				dateArg = &date
			}
			return a.runCreateApplication(cmd.Context(), userArg, jobArg, status, dateArg)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&userID, "user-id", 0, "applicant user ID")
	flags.IntVar(&jobID, "job-id", 0, "job ID")
	flags.StringVar(&status, "status", "", "applied, interviewing, rejected, offered or accepted")
	flags.StringVar(&date, "date", "", "application date as YYYY-MM-DD, empty for today")
	return cmd
}

func (a *App) updateApplicationCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "update-application",
		Short: "Update an application",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdateApplication(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "application ID")
	return cmd
}

func (a *App) fetchApplicationCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "fetch-application",
		Short: "Fetch and display application details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFetchApplication(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "application ID")
	return cmd
}

func (a *App) deleteApplicationCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "delete-application",
		Short: "Delete an application",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeleteApplication(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "application ID")
	return cmd
}

func (a *App) listApplicationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-applications",
		Short: "List all applications with user and job names",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runListApplications(cmd.Context())
		},
	}
}

func (a *App) pruneApplicationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune-applications",
		Short: "Delete applications whose user or job no longer exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPruneApplications(cmd.Context())
		},
	}
}

func (a *App) runCreateApplication(ctx context.Context, userID, jobID *int, status string, dateArg *string) error {
	var err error
	interactive := false
	if userID == nil {
		interactive = true
		value, err := a.askInt("User ID")
		if err != nil {
			a.printError(err)
			return nil
		}
		userID = &value
	}
	if jobID == nil {
		interactive = true
		value, err := a.askInt("Job ID")
		if err != nil {
			a.printError(err)
			return nil
		}
		jobID = &value
	}
	if status == "" {
		interactive = true
		if status, err = a.ask("Status (applied/interviewing/rejected/offered/accepted)"); err != nil {
			return err
		}
	}

	// with --date and the other flags set the command never touches stdin
	var date time.Time
	switch {
	case dateArg != nil && *dateArg != "":
		if date, err = time.Parse("2006-01-02", *dateArg); err != nil {
			a.printError(fmt.Errorf("%q is not a date in YYYY-MM-DD form", *dateArg))
			return nil
		}
	case dateArg == nil && interactive:
		if date, err = a.askDate("Date"); err != nil {
			a.printError(err)
			return nil
		}
	}

	application, err := models.NewApplication(*userID, *jobID, status, date)
	if err != nil {
		a.printError(err)
		return nil
	}
	if err := a.repos.Applications.Add(ctx, application); err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityApplication, events.ActionCreated, application.ID,
		fmt.Sprintf("user %d -> job %d", application.UserID, application.JobID))
	fmt.Fprintf(a.out, "Application submitted by user %d for job %d (ID: %d)\n",
		application.UserID, application.JobID, application.ID)
	return nil
}

func (a *App) runUpdateApplication(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("Application ID to update"); err != nil {
			a.printError(err)
			return nil
		}
	}

	current, err := a.repos.Applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("Application", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	fmt.Fprintf(a.out, "Updating application %d (user %d -> job %d)\n",
		current.ID, current.UserID, current.JobID)

	userAnswer, err := a.askDefault("New user ID", strconv.Itoa(current.UserID))
	if err != nil {
		return err
	}
	userID, err := strconv.Atoi(userAnswer)
	if err != nil {
		a.printError(fmt.Errorf("%q is not a number", userAnswer))
		return nil
	}
	jobAnswer, err := a.askDefault("New job ID", strconv.Itoa(current.JobID))
	if err != nil {
		return err
	}
	jobID, err := strconv.Atoi(jobAnswer)
	if err != nil {
		a.printError(fmt.Errorf("%q is not a number", jobAnswer))
		return nil
	}
	status, err := a.askDefault("New status (applied/interviewing/rejected/offered/accepted)",
		string(current.Status))
	if err != nil {
		return err
	}
	dateAnswer, err := a.askDefault("New date (YYYY-MM-DD)", formatDate(current.Date))
	if err != nil {
		return err
	}
	// keeping the default must not strip the stored time of day
	date := current.Date
	if dateAnswer != formatDate(current.Date) {
		if date, err = time.Parse("2006-01-02", dateAnswer); err != nil {
			a.printError(fmt.Errorf("%q is not a date in YYYY-MM-DD form", dateAnswer))
			return nil
		}
	}

	updated, err := a.repos.Applications.Update(ctx, id, func(application *models.Application) error {
		if err := application.SetUserID(userID); err != nil {
			return err
		}
		if err := application.SetJobID(jobID); err != nil {
			return err
		}
		if err := application.SetStatus(status); err != nil {
			return err
		}
		application.Date = date
		return nil
	})
	if err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityApplication, events.ActionUpdated, updated.ID,
		fmt.Sprintf("user %d -> job %d", updated.UserID, updated.JobID))
	fmt.Fprintf(a.out, "Application %d updated successfully.\n", updated.ID)
	return nil
}

func (a *App) runFetchApplication(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("Application ID to fetch"); err != nil {
			a.printError(err)
			return nil
		}
	}

	application, err := a.repos.Applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("Application", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	userName := repositories.PlaceholderNA
	if user, err := a.repos.Applications.UserOf(ctx, application); err == nil {
		userName = user.Name
	} else if !errors.Is(err, repositories.ErrNotFound) {
		a.printError(err)
		return nil
	}

	jobName := repositories.PlaceholderNA
	if job, err := a.repos.Applications.JobOf(ctx, application); err == nil {
		jobName = job.Name
	} else if !errors.Is(err, repositories.ErrNotFound) {
		a.printError(err)
		return nil
	}

	a.renderDetail([][]string{
		{"ID", strconv.Itoa(application.ID)},
		{"User", fmt.Sprintf("%s (ID: %d)", userName, application.UserID)},
		{"Job", fmt.Sprintf("%s (ID: %d)", jobName, application.JobID)},
		{"Status", string(application.Status)},
		{"Date", formatDate(application.Date)},
	})
	return nil
}

func (a *App) runDeleteApplication(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("Application ID to delete"); err != nil {
			a.printError(err)
			return nil
		}
	}

	application, err := a.repos.Applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("Application", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	ok, err := a.confirm(fmt.Sprintf("Delete application %d (user %d -> job %d)?",
		application.ID, application.UserID, application.JobID))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return nil
	}

	if err := a.repos.Applications.Remove(ctx, id); err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityApplication, events.ActionDeleted, application.ID,
		fmt.Sprintf("user %d -> job %d", application.UserID, application.JobID))
	fmt.Fprintf(a.out, "Application %d deleted successfully.\n", application.ID)
	return nil
}

func (a *App) runListApplications(ctx context.Context) error {
	rows, err := a.repos.Listings.ApplicationsDetailed(ctx)
	if err != nil {
		a.printError(err)
		return nil
	}
	a.renderApplications(rows)
	return nil
}

func (a *App) runPruneApplications(ctx context.Context) error {
	ok, err := a.confirm("Delete all applications whose user or job is gone?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Prune cancelled.")
		return nil
	}

	removed, err := a.repos.Applications.DeleteDangling(ctx)
	if err != nil {
		a.printError(err)
		return nil
	}
	fmt.Fprintf(a.out, "Removed %d dangling application(s).\n", removed)
	return nil
}
