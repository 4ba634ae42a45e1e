package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/redsocial/redsocial-cli/internal/client/api"
	"github.com/redsocial/redsocial-cli/internal/client/config"
	"github.com/redsocial/redsocial-cli/internal/client/identity"
	"github.com/redsocial/redsocial-cli/internal/client/posts"
	"github.com/redsocial/redsocial-cli/internal/client/profile"
	"github.com/redsocial/redsocial-cli/internal/client/repositories/localstore"
	"github.com/redsocial/redsocial-cli/internal/client/session"
	"github.com/redsocial/redsocial-cli/internal/client/users"
	"github.com/redsocial/redsocial-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// localStoreDSN is the on-disk session database in the working directory.
const localStoreDSN = "redsocial.db"

// App wires the client services together and drives the REPL.
type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	session  *session.Manager
	profiles *profile.Gateway
	posts    *posts.Service
	users    *users.Service
	reader   *bufio.Reader

	// email of the logged-in user, "" when unauthenticated. Display only;
	// the session store is the source of truth.
	email string
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localstore.Open(ctx, localStoreDSN)
	if err != nil {
		logger.Error(ctx, "error initializing local storage", "error", err)
		return nil, err
	}

	store := localstore.NewSessionStore(db)
	apiClient := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, store)

	sess := session.NewManager(apiClient, store)
	resolver := identity.NewResolver(sess, apiClient)

	return &App{
		config:   cfg,
		logger:   logger,
		db:       db,
		session:  sess,
		profiles: profile.NewGateway(resolver, apiClient),
		posts:    posts.NewService(apiClient),
		users:    users.NewService(apiClient),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the local storage handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) status() string {
	if a.email == "" {
		return "(guest)"
	}
	return "(" + a.email + ")"
}

// Run restores the stored session (discarding it when expired) and starts
// the REPL. It blocks until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.Close() }()

	a.logger.Info(ctx, "starting client", "base_url", a.config.BaseURL)

	cleared, err := a.session.Restore(ctx)
	if err != nil {
		a.logger.Error(ctx, "session restore failed", "error", err)
	}
	if cleared {
		a.logger.Info(ctx, "discarded expired session")
		fmt.Println("Your stored session has expired, please log in again.")
	}

	if user, err := a.session.CurrentUser(ctx); err == nil && user != nil {
		a.email = user.Email
	}

	fmt.Println("red-social CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
