package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/swipehired/jobtrack/internal/domain/models"
)

var seedIndustries = []string{"Tech", "Finance", "Healthcare", "Logistics", "Education", "Media"}

func (a *App) seedCommand() *cobra.Command {
	var users, companies, jobs, applications int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with fake records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSeed(cmd.Context(), users, companies, jobs, applications)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&users, "users", 10, "number of users")
	flags.IntVar(&companies, "companies", 5, "number of companies")
	flags.IntVar(&jobs, "jobs", 8, "number of jobs")
	flags.IntVar(&applications, "applications", 15, "number of applications")
	return cmd
}

func (a *App) runSeed(ctx context.Context, userCount, companyCount, jobCount, applicationCount int) error {

	companyIDs := make([]int, 0, companyCount)
	for i := 0; i < companyCount; i++ {
		company, err := models.NewCompany(
			gofakeit.Company(),
			lo.Sample(seedIndustries),
			gofakeit.URL(),
		)
		if err != nil {
			return err
		}
		if err := a.repos.Companies.Add(ctx, company); err != nil {
			a.printError(err)
			return nil
		}
		companyIDs = append(companyIDs, company.ID)
	}

	userIDs := make([]int, 0, userCount)
	for i := 0; i < userCount; i++ {
		// numbered local part keeps seeded emails unique
		email := fmt.Sprintf("%s.%d@%s", gofakeit.Username(), i, gofakeit.DomainName())
		user, err := models.NewUser(
			gofakeit.Name(),
			email,
			gofakeit.Numerify("2547########"),
			string(lo.Sample([]models.Role{models.RoleApplicant, models.RoleEmployer})),
		)
		if err != nil {
			return err
		}
		if err := a.repos.Users.Add(ctx, user); err != nil {
			a.printError(err)
			return nil
		}
		userIDs = append(userIDs, user.ID)
	}

	jobIDs := make([]int, 0, jobCount)
	for i := 0; i < jobCount; i++ {
		job, err := models.NewJob(
			gofakeit.JobTitle(),
			gofakeit.City(),
			gofakeit.Sentence(8),
			float64(gofakeit.Number(40000, 220000)),
			string(lo.Sample([]models.JobType{models.FullTime, models.PartTime, models.Contract, models.Internship})),
			lo.Sample(companyIDs),
		)
		if err != nil {
			return err
		}
		if err := a.repos.Jobs.Add(ctx, job); err != nil {
			a.printError(err)
			return nil
		}
		jobIDs = append(jobIDs, job.ID)
	}

	for i := 0; i < applicationCount; i++ {
		application, err := models.NewApplication(
			lo.Sample(userIDs),
			lo.Sample(jobIDs),
			string(lo.Sample([]models.Status{
				models.StatusApplied, models.StatusInterviewing,
				models.StatusRejected, models.StatusOffered, models.StatusAccepted,
			})),
			gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now()),
		)
		if err != nil {
			return err
		}
		if err := a.repos.Applications.Add(ctx, application); err != nil {
			a.printError(err)
			return nil
		}
	}

	fmt.Fprintf(a.out, "Seeded %d users, %d companies, %d jobs, %d applications.\n",
		userCount, companyCount, jobCount, applicationCount)
	return nil
}
