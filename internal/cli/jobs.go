package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/swipehired/jobtrack/internal/domain/models"
	"github.com/swipehired/jobtrack/internal/events"
	"github.com/swipehired/jobtrack/internal/repositories"
)

func (a *App) createJobCommand() *cobra.Command {
	var name, location, description, jobType string
	var salary float64
	var companyID int
	cmd := &cobra.Command{
		Use:   "create-job",
		Short: "Create a job listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			var salaryArg *float64
			if cmd.Flags().Changed("salary") {
				salaryArg = &salary
			}
			var companyArg *int
			if cmd.Flags().Changed("company-id") {
				companyArg = &companyID
			}
			return a.runCreateJob(cmd.Context(), name, location, description, jobType, salaryArg, companyArg)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&name, "title", "", "job title")
	flags.StringVar(&location, "location", "", "job location")
	flags.StringVar(&description, "description", "", "job description")
	flags.StringVar(&jobType, "type", "", "full-time, part-time, contract or internship")
	flags.Float64Var(&salary, "salary", 0, "salary")
	flags.IntVar(&companyID, "company-id", 0, "owning company ID")
	return cmd
}

func (a *App) updateJobCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "update-job",
		Short: "Update a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdateJob(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "job ID")
	return cmd
}

func (a *App) fetchJobCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "fetch-job",
		Short: "Fetch and display job details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFetchJob(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "job ID")
	return cmd
}

func (a *App) deleteJobCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "delete-job",
		Short: "Delete a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeleteJob(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "job ID")
	return cmd
}

func (a *App) listJobsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-jobs",
		Short: "List all jobs with their company",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runListJobs(cmd.Context())
		},
	}
}

func (a *App) runCreateJob(ctx context.Context, name, location, description, jobType string,
	salary *float64, companyID *int) error {

	var err error
	if name == "" {
		if name, err = a.ask("Job title"); err != nil {
			return err
		}
	}
	if location == "" {
		if location, err = a.ask("Location"); err != nil {
			return err
		}
	}
	if description == "" {
		if description, err = a.ask("Description"); err != nil {
			return err
		}
	}
	if salary == nil {
		value, err := a.askFloat("Salary")
		if err != nil {
			a.printError(err)
			return nil
		}
		salary = &value
	}
	if jobType == "" {
		if jobType, err = a.ask("Type (full-time/part-time/contract/internship)"); err != nil {
			return err
		}
	}
	if companyID == nil {
		value, err := a.askInt("Company ID")
		if err != nil {
			a.printError(err)
			return nil
		}
		companyID = &value
	}

	job, err := models.NewJob(name, location, description, *salary, jobType, *companyID)
	if err != nil {
		a.printError(err)
		return nil
	}
	if err := a.repos.Jobs.Add(ctx, job); err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityJob, events.ActionCreated, job.ID, job.Name)
	fmt.Fprintf(a.out, "Job %q created with ID %d\n", job.Name, job.ID)
	return nil
}

func (a *App) runUpdateJob(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("Job ID to update"); err != nil {
			a.printError(err)
			return nil
		}
	}

	current, err := a.repos.Jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("Job", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	fmt.Fprintf(a.out, "Updating job: %s\n", current.Name)

	name, err := a.askDefault("New title", current.Name)
	if err != nil {
		return err
	}
	location, err := a.askDefault("New location", current.Location)
	if err != nil {
		return err
	}
	description, err := a.askDefault("New description", current.Description)
	if err != nil {
		return err
	}
	salaryAnswer, err := a.askDefault("New salary", strconv.FormatFloat(current.Salary, 'f', -1, 64))
	if err != nil {
		return err
	}
	salary, err := strconv.ParseFloat(salaryAnswer, 64)
	if err != nil {
		a.printError(fmt.Errorf("%q is not a number", salaryAnswer))
		return nil
	}
	jobType, err := a.askDefault("New type (full-time/part-time/contract/internship)", string(current.Type))
	if err != nil {
		return err
	}
	companyAnswer, err := a.askDefault("New company ID", strconv.Itoa(current.CompanyID))
	if err != nil {
		return err
	}
	companyID, err := strconv.Atoi(companyAnswer)
	if err != nil {
		a.printError(fmt.Errorf("%q is not a number", companyAnswer))
		return nil
	}

	updated, err := a.repos.Jobs.Update(ctx, id, func(job *models.Job) error {
		if err := job.SetName(name); err != nil {
			return err
		}
		if err := job.SetLocation(location); err != nil {
			return err
		}
		if err := job.SetDescription(description); err != nil {
			return err
		}
		if err := job.SetSalary(salary); err != nil {
			return err
		}
		if err := job.SetType(jobType); err != nil {
			return err
		}
		job.CompanyID = companyID
		return nil
	})
	if err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityJob, events.ActionUpdated, updated.ID, updated.Name)
	fmt.Fprintf(a.out, "Job %q updated successfully.\n", updated.Name)
	return nil
}

func (a *App) runFetchJob(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("Job ID to fetch"); err != nil {
			a.printError(err)
			return nil
		}
	}

	job, err := a.repos.Jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("Job", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	companyName := repositories.PlaceholderNA
	company, err := a.repos.Jobs.CompanyOf(ctx, job)
	if err == nil {
		companyName = company.Name
	} else if !errors.Is(err, repositories.ErrNotFound) {
		a.printError(err)
		return nil
	}

	a.renderDetail([][]string{
		{"ID", strconv.Itoa(job.ID)},
		{"Title", job.Name},
		{"Location", job.Location},
		{"Description", job.Description},
		{"Salary", formatSalary(job.Salary)},
		{"Type", string(job.Type)},
		{"Company", companyName},
		{"Created", formatDate(job.CreatedAt)},
		{"Updated", formatDate(job.UpdatedAt)},
	})
	return nil
}

func (a *App) runDeleteJob(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("Job ID to delete"); err != nil {
			a.printError(err)
			return nil
		}
	}

	job, err := a.repos.Jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("Job", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	ok, err := a.confirm(fmt.Sprintf("Delete job %q (ID: %d)?", job.Name, job.ID))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return nil
	}

	if err := a.repos.Jobs.Remove(ctx, id); err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityJob, events.ActionDeleted, job.ID, job.Name)
	fmt.Fprintf(a.out, "Job %q deleted successfully.\n", job.Name)
	return nil
}

func (a *App) runListJobs(ctx context.Context) error {
	rows, err := a.repos.Listings.JobsWithCompany(ctx)
	if err != nil {
		a.printError(err)
		return nil
	}
	a.renderJobs(rows)
	return nil
}
