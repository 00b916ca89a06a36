package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/swipehired/jobtrack/internal/domain/models"
	"github.com/swipehired/jobtrack/internal/repositories"
)

func (a *App) renderTable(header []string, rows [][]string) {
	table := tablewriter.NewWriter(a.out)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

// renderDetail prints a single record as Field/Value rows, as the original
// fetch views do.
func (a *App) renderDetail(fields [][]string) {
	a.renderTable([]string{"Field", "Value"}, fields)
}

func (a *App) renderUsers(users []models.User) {
	a.renderTable(
		[]string{"ID", "Name", "Email", "Role", "Mobile"},
		lo.Map(users, func(u models.User, _ int) []string {
			return []string{strconv.Itoa(u.ID), u.Name, u.Email, string(u.Role), u.Mobile}
		}))
}

func (a *App) renderCompanies(companies []models.Company) {
	a.renderTable(
		[]string{"ID", "Name", "Industry", "Website"},
		lo.Map(companies, func(c models.Company, _ int) []string {
			return []string{strconv.Itoa(c.ID), c.Name, c.Industry, c.Website}
		}))
}

func (a *App) renderJobs(rows []repositories.JobRow) {
	a.renderTable(
		[]string{"ID", "Title", "Location", "Type", "Salary", "Company"},
		lo.Map(rows, func(r repositories.JobRow, _ int) []string {
			return []string{
				strconv.Itoa(r.Job.ID), r.Job.Name, r.Job.Location,
				string(r.Job.Type), formatSalary(r.Job.Salary), r.CompanyName,
			}
		}))
}

func (a *App) renderApplications(rows []repositories.ApplicationRow) {
	a.renderTable(
		[]string{"ID", "User", "Job", "Company", "Salary", "Status", "Date"},
		lo.Map(rows, func(r repositories.ApplicationRow, _ int) []string {
			salary := repositories.PlaceholderNA
			if r.Salary != nil {
				salary = formatSalary(*r.Salary)
			}
			return []string{
				strconv.Itoa(r.Application.ID), r.UserName, r.JobName, r.CompanyName,
				salary, string(r.Application.Status), formatDate(r.Application.Date),
			}
		}))
}

func formatSalary(salary float64) string {
	return fmt.Sprintf("$%.2f", salary)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
