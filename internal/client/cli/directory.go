package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/models"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/validation"
	"github.com/dmitrijs2005/emergencyhelp/internal/common"
)

var (
	errUsageID   = errors.New("missing id")
	errUsagePage = errors.New("invalid page")
)

// parsePage reads an optional 1-indexed page argument.
func parsePage(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page < 1 {
		return 0, errUsagePage
	}
	return page, nil
}

func (a *App) requireID(args []string, usage string) (string, error) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return "", errUsageID
	}
	return args[0], nil
}

// reportFailure prints either the per-field validation messages or the
// directory store error.
func (a *App) reportFailure(err error) {
	if verrs, ok := validation.AsErrors(err); ok {
		printError(a.out, "invalid user")
		printValidation(a.out, verrs)
		return
	}
	msg := a.dirStore.State().Error
	if msg == "" {
		msg = err.Error()
	}
	printError(a.out, msg)
}

// Users lists one page of the directory with resolved addresses.
func (a *App) Users(ctx context.Context, args []string) error {
	page, err := parsePage(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: users [page]")
		return err
	}

	if err := a.dir.List(ctx, page); err != nil {
		a.reportFailure(err)
		return err
	}

	all := a.dirStore.State().AllUsers
	users := a.resolver.Enrich(ctx, all.Users)
	return renderDirectory(a.out, users, all)
}

// Show fetches one user and makes it the edit target.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.requireID(args, "show <id>")
	if err != nil {
		return err
	}

	u, err := a.selectUser(ctx, id)
	if err != nil {
		return err
	}
	u.Address = a.resolver.Resolve(ctx, u.Location.Latitude(), u.Location.Longitude())
	return renderUser(a.out, u)
}

func (a *App) selectUser(ctx context.Context, id string) (models.User, error) {
	if err := a.dir.GetByID(ctx, id); err != nil {
		a.reportFailure(err)
		return models.User{}, err
	}
	selected := a.dirStore.State().SelectedUser
	if selected == nil {
		return models.User{}, common.ErrNotFound
	}
	return *selected, nil
}

// Add creates a user. The directory is not refreshed; run users to see it.
func (a *App) Add(ctx context.Context) error {
	a.dir.ClearSelected()

	form, err := a.promptForm(models.UserForm{})
	if err != nil {
		return err
	}

	created, err := a.dir.Create(ctx, form)
	if err != nil {
		a.reportFailure(err)
		return err
	}

	printSuccess(a.out, fmt.Sprintf("User %s created. Run 'users' to refresh the list.", created.ID))
	return nil
}

// Edit loads a user, pre-fills the form from it and submits the update.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.requireID(args, "edit <id>")
	if err != nil {
		return err
	}

	u, err := a.selectUser(ctx, id)
	if err != nil {
		return err
	}

	form, err := a.promptForm(models.FormFromUser(&u))
	if err != nil {
		return err
	}

	if err := a.dir.UpdateByID(ctx, id, form); err != nil {
		a.reportFailure(err)
		return err
	}

	printSuccess(a.out, fmt.Sprintf("User %s updated", id))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.requireID(args, "delete <id>")
	if err != nil {
		return err
	}

	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete user %s?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.dir.DeleteByID(ctx, id); err != nil {
		a.reportFailure(err)
		return err
	}

	printSuccess(a.out, fmt.Sprintf("User %s deleted", id))
	return nil
}

// promptForm asks for every form field; an empty answer keeps current.
func (a *App) promptForm(current models.UserForm) (models.UserForm, error) {
	fields := []struct {
		prompt string
		value  *string
	}{
		{"Title", &current.Title},
		{"Username", &current.Username},
		{"Description", &current.Description},
		{"Phone number", &current.PhoneNumber},
		{"Role", &current.Role},
	}

	for _, f := range fields {
		v, err := GetTextWithDefault(a.reader, f.prompt, *f.value, a.out)
		if err != nil {
			return models.UserForm{}, err
		}
		*f.value = v
	}
	return current, nil
}
