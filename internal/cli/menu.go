package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type menuEntry struct {
	label string
	run   func(ctx context.Context) error
}

// runMenu is the no-subcommand mode: a numbered loop over the same
// operations the subcommands expose. Domain errors print and loop.
func (a *App) runMenu(ctx context.Context) error {

	entries := []menuEntry{
		{"Create user", func(ctx context.Context) error { return a.runCreateUser(ctx, "", "", "", "") }},
		{"List users", a.runListUsers},
		{"Update user", func(ctx context.Context) error { return a.runUpdateUser(ctx, 0) }},
		{"Fetch user", func(ctx context.Context) error { return a.runFetchUser(ctx, 0) }},
		{"Delete user", func(ctx context.Context) error { return a.runDeleteUser(ctx, 0) }},
		{"Create company", func(ctx context.Context) error { return a.runCreateCompany(ctx, "", "", "") }},
		{"List companies", a.runListCompanies},
		{"Update company", func(ctx context.Context) error { return a.runUpdateCompany(ctx, 0) }},
		{"Fetch company", func(ctx context.Context) error { return a.runFetchCompany(ctx, 0) }},
		{"Delete company", func(ctx context.Context) error { return a.runDeleteCompany(ctx, 0) }},
		{"Create job", func(ctx context.Context) error { return a.runCreateJob(ctx, "", "", "", "", nil, nil) }},
		{"List jobs", a.runListJobs},
		{"Update job", func(ctx context.Context) error { return a.runUpdateJob(ctx, 0) }},
		{"Fetch job", func(ctx context.Context) error { return a.runFetchJob(ctx, 0) }},
		{"Delete job", func(ctx context.Context) error { return a.runDeleteJob(ctx, 0) }},
		{"Create application", func(ctx context.Context) error { return a.runCreateApplication(ctx, nil, nil, "", nil) }},
		{"List applications", a.runListApplications},
		{"Update application", func(ctx context.Context) error { return a.runUpdateApplication(ctx, 0) }},
		{"Fetch application", func(ctx context.Context) error { return a.runFetchApplication(ctx, 0) }},
		{"Delete application", func(ctx context.Context) error { return a.runDeleteApplication(ctx, 0) }},
		{"List applications for a user", func(ctx context.Context) error { return a.runListUserApplications(ctx, 0) }},
		{"Prune dangling applications", a.runPruneApplications},
	}

	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "==== Job Application Tracker ====")
		for i, entry := range entries {
			fmt.Fprintf(a.out, "%2d. %s\n", i+1, entry.label)
		}
		fmt.Fprintf(a.out, "%2d. Exit\n", len(entries)+1)

		choice, err := a.askInt(fmt.Sprintf("Enter your choice (1-%d)", len(entries)+1))
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out, "Bye.")
				return nil
			}
			fmt.Fprintln(a.out, "Invalid option. Try again.")
			continue
		}

		if choice == len(entries)+1 {
			fmt.Fprintln(a.out, "Bye.")
			return nil
		}
		if choice < 1 || choice > len(entries) {
			fmt.Fprintln(a.out, "Invalid option. Try again.")
			continue
		}

		if err := entries[choice-1].run(ctx); err != nil {
			return err
		}
	}
}
