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

func (a *App) createCompanyCommand() *cobra.Command {
	var name, industry, website string
	cmd := &cobra.Command{
		Use:   "create-company",
		Short: "Create a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCreateCompany(cmd.Context(), name, industry, website)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "company name")
	flags.StringVar(&industry, "industry", "", "industry")
	flags.StringVar(&website, "website", "", "website, with http:// or https://")
	return cmd
}

func (a *App) updateCompanyCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "update-company",
		Short: "Update a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdateCompany(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "company ID")
	return cmd
}

func (a *App) fetchCompanyCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "fetch-company",
		Short: "Fetch and display company details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFetchCompany(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "company ID")
	return cmd
}

func (a *App) deleteCompanyCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "delete-company",
		Short: "Delete a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeleteCompany(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "company ID")
	return cmd
}

func (a *App) listCompaniesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-companies",
		Short: "List all companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runListCompanies(cmd.Context())
		},
	}
}

func (a *App) runCreateCompany(ctx context.Context, name, industry, website string) error {
	var err error
	if name == "" {
		if name, err = a.ask("Company name"); err != nil {
			return err
		}
	}
	if industry == "" {
		if industry, err = a.ask("Industry"); err != nil {
			return err
		}
	}
	if website == "" {
		if website, err = a.ask("Website"); err != nil {
			return err
		}
	}

	company, err := models.NewCompany(name, industry, website)
	if err != nil {
		a.printError(err)
		return nil
	}
	if err := a.repos.Companies.Add(ctx, company); err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityCompany, events.ActionCreated, company.ID, company.Name)
	fmt.Fprintf(a.out, "Company %q created with ID %d\n", company.Name, company.ID)
	return nil
}

func (a *App) runUpdateCompany(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("Company ID to update"); err != nil {
			a.printError(err)
			return nil
		}
	}

	current, err := a.repos.Companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("Company", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	fmt.Fprintf(a.out, "Updating company: %s\n", current.Name)

	name, err := a.askDefault("New name", current.Name)
	if err != nil {
		return err
	}
	industry, err := a.askDefault("New industry", current.Industry)
	if err != nil {
		return err
	}
	website, err := a.askDefault("New website", current.Website)
	if err != nil {
		return err
	}

	updated, err := a.repos.Companies.Update(ctx, id, func(company *models.Company) error {
		if err := company.SetName(name); err != nil {
			return err
		}
		if err := company.SetIndustry(industry); err != nil {
			return err
		}
		return company.SetWebsite(website)
	})
	if err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityCompany, events.ActionUpdated, updated.ID, updated.Name)
	fmt.Fprintf(a.out, "Company %q updated successfully.\n", updated.Name)
	return nil
}

func (a *App) runFetchCompany(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("Company ID to fetch"); err != nil {
			a.printError(err)
			return nil
		}
	}

	company, err := a.repos.Companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("Company", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	a.renderDetail([][]string{
		{"ID", strconv.Itoa(company.ID)},
		{"Name", company.Name},
		{"Industry", company.Industry},
		{"Website", company.Website},
		{"Created", formatDate(company.CreatedAt)},
		{"Updated", formatDate(company.UpdatedAt)},
	})
	return nil
}

func (a *App) runDeleteCompany(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("Company ID to delete"); err != nil {
			a.printError(err)
			return nil
		}
	}

	company, err := a.repos.Companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("Company", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	ok, err := a.confirm(fmt.Sprintf("Delete company %q (ID: %d)?", company.Name, company.ID))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return nil
	}

	if err := a.repos.Companies.Remove(ctx, id); err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityCompany, events.ActionDeleted, company.ID, company.Name)
	fmt.Fprintf(a.out, "Company %q deleted successfully.\n", company.Name)
	return nil
}

func (a *App) runListCompanies(ctx context.Context) error {
	companies, err := a.repos.Companies.GetAll(ctx)
	if err != nil {
		a.printError(err)
		return nil
	}
	a.renderCompanies(companies)
	return nil
}
