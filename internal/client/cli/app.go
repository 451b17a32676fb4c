package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
	"github.com/dmitrijs2005/jobboard/internal/client/config"
	"github.com/dmitrijs2005/jobboard/internal/client/services"
	"github.com/dmitrijs2005/jobboard/internal/client/session"
	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type App struct {
	config *config.Config
	store  session.Store
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	list    *services.ListLoader
	detail  *services.EntityLoader
	mutator *services.Mutator
	auth    *services.AuthFlow

	mu            sync.Mutex
	authenticated bool
	route         string
	navigated     bool
}

// NewApp wires the services around api and store. The authenticated view
// state starts out as "a non-empty token is stored".
func NewApp(ctx context.Context, c *config.Config, api client.Client, store session.Store, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	token, err := store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	a := &App{
		config:        c,
		store:         store,
		log:           log,
		reader:        bufio.NewReader(in),
		out:           out,
		authenticated: token != "",
		route:         common.RouteRoot,
	}
	a.list = services.NewListLoader(api, log)
	a.detail = services.NewEntityLoader(api, log)
	a.mutator = services.NewMutator(api, store, a, log)
	a.auth = services.NewAuthFlow(api, store, a, log, services.OnAuthenticated(a.setAuthenticated))

	// Runs under the loader lock: log only, never call back into the loader.
	a.list.OnChange(func(s services.ListState) {
		log.Debug(ctx, "view state changed", "view", "list", "state", s.Tag().String(), "settled", s.IsSettled())
	})
	a.detail.OnChange(func(s services.EntityState) {
		log.Debug(ctx, "view state changed", "view", "detail", "state", s.Tag().String(), "settled", s.IsSettled())
	})
	return a, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.list.Deactivate()
	defer a.detail.Close()

	fmt.Fprintln(a.out, "Job board CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authenticated
}

func (a *App) setAuthenticated(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.authenticated = v
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "logged in"
	}
	return "guest"
}

// Confirm implements services.Confirmer with a y/N prompt.
func (a *App) Confirm(prompt string) bool {
	return GetYesNo(a.reader, prompt, a.out)
}
