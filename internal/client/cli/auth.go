package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/emergencyhelp/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// credentials prompts for a username and password. The caller owns the
// returned password bytes and should wipe them.
func (a *App) credentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

// Register prompts for credentials and creates an account. The backend
// answers with a token, so a successful registration is also a login.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Register(ctx, userName, string(password)); err != nil {
		printError(a.out, a.authStore.State().Error)
		return err
	}

	printSuccess(a.out, "Registration successful")
	a.landing(ctx)
	return nil
}

// Login prompts for credentials and, on success, opens the landing view of
// the session's role. On failure the session error is shown and the user
// may simply try again.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Login(ctx, userName, string(password)); err != nil {
		printError(a.out, a.authStore.State().Error)
		return err
	}

	printSuccess(a.out, "Login successful")
	a.landing(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printError(a.out, err.Error())
		return err
	}
	printSuccess(a.out, "Logged out")
	return nil
}

// WhoAmI shows the role claimed by the session token. The claim is not
// verified locally; the backend decides what the session may do.
func (a *App) WhoAmI(ctx context.Context) error {
	role := a.auth.Role()
	if role == "" {
		role = "(none)"
	}
	fmt.Fprintf(a.out, "Role: %s\n", role)
	return nil
}
