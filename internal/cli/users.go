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

func (a *App) createUserCommand() *cobra.Command {
	var name, email, mobile, role string
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCreateUser(cmd.Context(), name, email, mobile, role)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "user name")
	flags.StringVar(&email, "email", "", "email address")
	flags.StringVar(&mobile, "mobile", "", "mobile number")
	flags.StringVar(&role, "role", "", "applicant or employer")
	return cmd
}

func (a *App) updateUserCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "update-user",
		Short: "Update a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdateUser(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "user ID")
	return cmd
}

func (a *App) fetchUserCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "fetch-user",
		Short: "Fetch and display user details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFetchUser(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "user ID")
	return cmd
}

func (a *App) deleteUserCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "delete-user",
		Short: "Delete a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeleteUser(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "user ID")
	return cmd
}

func (a *App) listUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runListUsers(cmd.Context())
		},
	}
}

func (a *App) listUserApplicationsCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "list-user-applications",
		Short: "List all applications of one user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runListUserApplications(cmd.Context(), id)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "user ID")
	return cmd
}

func (a *App) runCreateUser(ctx context.Context, name, email, mobile, role string) error {
	var err error
	if name == "" {
		if name, err = a.ask("User name"); err != nil {
			return err
		}
	}
	if email == "" {
		if email, err = a.ask("Email"); err != nil {
			return err
		}
	}
	if mobile == "" {
		if mobile, err = a.ask("Mobile number"); err != nil {
			return err
		}
	}
	if role == "" {
		if role, err = a.ask("Role (applicant/employer)"); err != nil {
			return err
		}
	}

	user, err := models.NewUser(name, email, mobile, role)
	if err != nil {
		a.printError(err)
		return nil
	}
	if err := a.repos.Users.Add(ctx, user); err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityUser, events.ActionCreated, user.ID, user.Name)
	fmt.Fprintf(a.out, "User %q created with ID %d\n", user.Name, user.ID)
	return nil
}

func (a *App) runUpdateUser(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("User ID to update"); err != nil {
			a.printError(err)
			return nil
		}
	}

	current, err := a.repos.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("User", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	fmt.Fprintf(a.out, "Updating user: %s (%s)\n", current.Name, current.Email)

	name, err := a.askDefault("New name", current.Name)
	if err != nil {
		return err
	}
	email, err := a.askDefault("New email", current.Email)
	if err != nil {
		return err
	}
	mobile, err := a.askDefault("New mobile number", current.Mobile)
	if err != nil {
		return err
	}
	role, err := a.askDefault("New role (applicant/employer)", string(current.Role))
	if err != nil {
		return err
	}

	updated, err := a.repos.Users.Update(ctx, id, func(user *models.User) error {
		if err := user.SetName(name); err != nil {
			return err
		}
		if err := user.SetEmail(email); err != nil {
			return err
		}
		if err := user.SetMobile(mobile); err != nil {
			return err
		}
		return user.SetRole(role)
	})
	if err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityUser, events.ActionUpdated, updated.ID, updated.Name)
	fmt.Fprintf(a.out, "User %q updated successfully.\n", updated.Name)
	return nil
}

func (a *App) runFetchUser(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("User ID to fetch"); err != nil {
			a.printError(err)
			return nil
		}
	}

	user, err := a.repos.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("User", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	a.renderDetail([][]string{
		{"ID", strconv.Itoa(user.ID)},
		{"Name", user.Name},
		{"Email", user.Email},
		{"Mobile", user.Mobile},
		{"Role", string(user.Role)},
		{"Created", formatDate(user.CreatedAt)},
		{"Updated", formatDate(user.UpdatedAt)},
	})
	return nil
}

func (a *App) runDeleteUser(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("User ID to delete"); err != nil {
			a.printError(err)
			return nil
		}
	}

	user, err := a.repos.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("User", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	ok, err := a.confirm(fmt.Sprintf("Delete user %q (ID: %d)?", user.Name, user.ID))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return nil
	}

	if err := a.repos.Users.Remove(ctx, id); err != nil {
		a.printError(err)
		return nil
	}

	a.publish(events.EntityUser, events.ActionDeleted, user.ID, user.Name)
	fmt.Fprintf(a.out, "User %q deleted successfully.\n", user.Name)
	return nil
}

func (a *App) runListUsers(ctx context.Context) error {
	users, err := a.repos.Users.GetAll(ctx)
	if err != nil {
		a.printError(err)
		return nil
	}
	a.renderUsers(users)
	return nil
}

func (a *App) runListUserApplications(ctx context.Context, id int) error {
	var err error
	if id == 0 {
		if id, err = a.askInt("User ID"); err != nil {
			a.printError(err)
			return nil
		}
	}

	user, err := a.repos.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.printNotFound("User", id)
			return nil
		}
		a.printError(err)
		return nil
	}

	rows, err := a.repos.Listings.ApplicationsForUser(ctx, id)
	if err != nil {
		a.printError(err)
		return nil
	}
	if len(rows) == 0 {
		fmt.Fprintf(a.out, "No applications found for user %q (ID: %d)\n", user.Name, id)
		return nil
	}
	a.renderApplications(rows)
	return nil
}
