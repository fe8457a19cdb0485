// Package cli implements the interactive Smart Trace terminal client:
// a REPL for reporting lost/found devices, browsing listings with search
// and paging, and the admin views over users, matches and contact
// messages.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/smarttrace/smarttrace-cli/internal/client/api"
	"github.com/smarttrace/smarttrace-cli/internal/client/cache"
	"github.com/smarttrace/smarttrace-cli/internal/client/config"
	"github.com/smarttrace/smarttrace-cli/internal/client/services"
	"github.com/smarttrace/smarttrace-cli/internal/client/session"
	"github.com/smarttrace/smarttrace-cli/internal/logging"
)

// App wires the services behind the REPL.
type App struct {
	config *config.Config
	log    logging.Logger

	auth     services.AuthService
	lost     services.LostService
	found    services.FoundService
	contacts services.ContactService
	users    services.UserService
	matches  services.MatchService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the full dependency graph: session file, gateway, local
// cache, services.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	sess, err := session.NewFileStore(cfg.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	db, err := cache.InitDatabase(ctx, cfg.CacheDSN)
	if err != nil {
		return nil, fmt.Errorf("initializing cache: %w", err)
	}
	repo := cache.NewSQLiteRepository(db)

	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	gw := api.NewGateway(cfg.APIBaseURL, cfg.RequestTimeout, sess, limiter, log)

	return &App{
		config:   cfg,
		log:      log,
		auth:     services.NewAuthService(gw.Auth(), sess),
		lost:     services.NewLostService(gw.Lost(), sess, repo, log),
		found:    services.NewFoundService(gw.Found(), sess, repo, log),
		contacts: services.NewContactService(gw.Contacts(), repo, log),
		users:    services.NewUserService(gw.Users(), repo, log),
		matches:  services.NewMatchService(gw.Matches(), repo, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Smart Trace Device CLI (type 'help' for commands)")

	if a.auth.IsAuthenticated() && a.auth.TokenExpired(time.Now()) {
		fmt.Fprintln(a.out, "Your saved session has expired; please log in again.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

// status is the prompt suffix: the logged-in email, or "guest".
func (a *App) status() string {
	if email := a.auth.CurrentEmail(); email != "" {
		return email
	}
	return "guest"
}

// printErr renders any failure as a single line. Gateway errors carry
// their own user-facing wording; everything else prints as-is. Nothing
// here ever terminates the program.
func (a *App) printErr(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		fmt.Fprintln(a.out, apiErr.UserMessage())
		for field, msg := range apiErr.Fields {
			fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
		}
		return
	}
	fmt.Fprintf(a.out, "Error: %v\n", err)
}
