package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/client"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/models"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/store"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/tokens"
	"github.com/dmitrijs2005/emergencyhelp/internal/common"
	"github.com/dmitrijs2005/emergencyhelp/internal/dbx"
	"github.com/dmitrijs2005/emergencyhelp/internal/logging"
)

const (
	msgLoginFailed        = "Login failed"
	msgRegistrationFailed = "Registration failed"
)

// AuthService defines session operations for the CLI.
//
// Contract:
//   - Login/Register: authenticate against the backend, record the session in
//     the auth store and persist token and role locally. They return the role
//     claim of the new token ("" when it has none).
//   - Logout: drop the session and its persisted copy.
//   - Restore: seed the auth store from the persisted token at start-up.
//   - Role: role of the current token, for UI gating only.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	Role() string
}

type authService struct {
	client client.Client
	db     *sql.DB
	store  *store.AuthStore
	logger logging.Logger
}

func NewAuthService(c client.Client, db *sql.DB, s *store.AuthStore, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &authService{client: c, db: db, store: s, logger: logger}
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (a *authService) Login(ctx context.Context, username, password string) (string, error) {
	token, err := a.client.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return "", a.fail(ctx, err, msgLoginFailed)
	}
	return a.succeed(ctx, token), nil
}

func (a *authService) Register(ctx context.Context, username, password string) (string, error) {
	token, err := a.client.Register(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return "", a.fail(ctx, err, msgRegistrationFailed)
	}
	return a.succeed(ctx, token), nil
}

// fail records the backend message, or fallback when there is none.
func (a *authService) fail(ctx context.Context, err error, fallback string) error {
	msg := client.BackendMessage(err)
	if msg == "" {
		msg = fallback
	}
	a.store.Dispatch(store.LoginFailure{Message: msg})
	a.logger.Warn(ctx, "authentication failed", "error", err)
	return fmt.Errorf("%s: %w", fallback, err)
}

// succeed records the session. A persistence failure only costs the session
// surviving a restart, so it is logged rather than returned.
func (a *authService) succeed(ctx context.Context, token string) string {
	a.store.Dispatch(store.LoginSuccess{Token: token})

	role, _ := tokens.RoleFromToken(token)
	if err := a.saveSession(ctx, token, role); err != nil {
		a.logger.Warn(ctx, "session was not persisted", "error", err)
	}
	return role
}

// saveSession persists token and role in a single transaction.
func (a *authService) saveSession(ctx context.Context, token, role string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getMetadataRepo(tx)
		if err := repo.Set(ctx, common.MetadataKeyToken, token); err != nil {
			return err
		}
		if role == "" {
			return repo.Delete(ctx, common.MetadataKeyRole)
		}
		return repo.Set(ctx, common.MetadataKeyRole, role)
	})
}

func (a *authService) Logout(ctx context.Context) error {
	a.store.Dispatch(store.Logout{})
	if err := a.getMetadataRepo(a.db).Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *authService) Restore(ctx context.Context) error {
	token, err := a.getMetadataRepo(a.db).Get(ctx, common.MetadataKeyToken)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if token == "" {
		return nil
	}
	a.store.Dispatch(store.LoginSuccess{Token: token})
	a.logger.Debug(ctx, "session restored")
	return nil
}

func (a *authService) Role() string {
	role, _ := tokens.RoleFromToken(a.store.Token())
	return role
}
