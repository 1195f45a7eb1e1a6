package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/emergencyhelp/internal/common"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Nearby(ctx context.Context, args []string) error
	Locate(ctx context.Context) error

	Users(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: register, login, nearby [page], locate, exit"
	helpUser      = "Available commands: nearby [page], locate, whoami, logout, exit"
	helpAdmin     = "Available commands: users [page], show <id>, add, edit <id>, delete <id>, nearby [page], locate, whoami, logout, exit"
)

// runREPL starts the read–eval–print loop of the emergency help CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments. The
// loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Anyone:
//	  - help           - show available commands
//	  - register       - create an account and log in
//	  - login          - authenticate
//	  - nearby [page]  - list users near your position
//	  - locate         - share your position again
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - whoami         - show the session role
//	  - logout         - end the session
//
//	Admin role:
//	  - users [page]   - list the user directory
//	  - show <id>      - show one user
//	  - add            - create a user
//	  - edit <id>      - update a user
//	  - delete <id>    - delete a user
//
// Errors returned by command handlers are not printed here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("eh %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if err := permission(a, cmd); err != nil {
			if errors.Is(err, common.ErrForbidden) {
				printlnFn("Admin role required")
			} else {
				printlnFn("Please log in first")
			}
			continue
		}

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn(helpAdmin)
			case a.isLoggedIn():
				printlnFn(helpUser)
			default:
				printlnFn(helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "nearby":
			_ = a.Nearby(ctx, args)

		case "locate":
			_ = a.Locate(ctx)

		case "users", "l":
			_ = a.Users(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// permission reports whether cmd may run in the current session. It gates the
// UI only; the backend enforces authorization on every request.
func permission(a execIface, cmd string) error {
	switch cmd {
	case "logout", "whoami":
		if !a.isLoggedIn() {
			return common.ErrNotAuthenticated
		}
	case "users", "l", "show", "add", "edit", "delete":
		if !a.isLoggedIn() {
			return common.ErrNotAuthenticated
		}
		if !a.isAdmin() {
			return common.ErrForbidden
		}
	}
	return nil
}
