package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/client"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/config"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/geo"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/geocode"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/services"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/store"
	"github.com/dmitrijs2005/emergencyhelp/internal/common"
	"github.com/dmitrijs2005/emergencyhelp/internal/logging"
)

// Deps is everything App needs. Reader is shared with any prompt-based
// Locator so that both consume the same input stream.
type Deps struct {
	Config         *config.Config
	Auth           services.AuthService
	Directory      services.DirectoryService
	AuthStore      *store.AuthStore
	DirectoryStore *store.DirectoryStore
	Resolver       *geocode.Resolver
	Locator        geo.Locator
	Logger         logging.Logger
	Reader         *bufio.Reader
	Out            io.Writer
}

type App struct {
	config    *config.Config
	auth      services.AuthService
	dir       services.DirectoryService
	authStore *store.AuthStore
	dirStore  *store.DirectoryStore
	resolver  *geocode.Resolver
	locator   geo.Locator
	logger    logging.Logger
	reader    *bufio.Reader
	out       io.Writer

	// position is nil until a Locate succeeds.
	position *geo.Position
	located  bool
	loading  bool
}

func NewApp(d Deps) *App {
	logger := d.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	a := &App{
		config:    d.Config,
		auth:      d.Auth,
		dir:       d.Directory,
		authStore: d.AuthStore,
		dirStore:  d.DirectoryStore,
		resolver:  d.Resolver,
		locator:   d.Locator,
		logger:    logger,
		reader:    d.Reader,
		out:       d.Out,
	}
	a.dirStore.Subscribe(a.onDirectoryChange)
	return a
}

// Bootstrap wires the production graph: stores, the REST client bound to the
// auth store, services, the cached OpenCage resolver and a prompt locator
// reading from reader.
func Bootstrap(cfg *config.Config, db *sql.DB, logger logging.Logger, reader *bufio.Reader, out io.Writer) (*App, error) {
	authStore := store.NewAuthStore(store.AuthState{})
	dirStore := store.NewDirectoryStore()

	api, err := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout, authStore)
	if err != nil {
		return nil, err
	}

	geocoder := geocode.NewOpenCage(cfg.GeocodingURL, cfg.GeocodingKey, cfg.RequestTimeout)
	cache := geocode.NewCache(cfg.AddressCacheSize, cfg.AddressCacheTTL)

	return NewApp(Deps{
		Config:         cfg,
		Auth:           services.NewAuthService(api, db, authStore, logger),
		Directory:      services.NewDirectoryService(api, dirStore, logger),
		AuthStore:      authStore,
		DirectoryStore: dirStore,
		Resolver:       geocode.NewResolver(geocoder, cache, logger, cfg.GeocodeConcurrency),
		Locator:        geo.NewPromptLocator(reader, out),
		Logger:         logger,
		Reader:         reader,
		Out:            out,
	}), nil
}

// onDirectoryChange prints the loading indicator once per busy period.
func (a *App) onDirectoryChange(st store.DirectoryState) {
	if st.Loading && !a.loading {
		printStatus(a.out, "Loading...")
	}
	a.loading = st.Loading
}

// Run restores the persisted session, shows the landing view and blocks in
// the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if err := a.auth.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
	}

	fmt.Fprintln(a.out, "Welcome to Emergency Help CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		a.landing(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// landing opens the view for the session's role: admins manage the
// directory, everyone else sees nearby users.
func (a *App) landing(ctx context.Context) {
	if a.isAdmin() {
		_ = a.Users(ctx, nil)
		return
	}
	_ = a.Nearby(ctx, nil)
}

func (a *App) isLoggedIn() bool {
	return a.authStore.State().IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.isLoggedIn() && a.auth.Role() == common.RoleAdmin
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(guest) "
	}
	role := a.auth.Role()
	if role == "" {
		role = "user"
	}
	return fmt.Sprintf("(%s) ", role)
}
