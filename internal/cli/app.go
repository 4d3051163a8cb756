// Package cli is backofficectl: the dashboard screens as cobra commands over
// the API or a local SQLite file.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/MrSnakeDoc/backoffice/internal/apiclient"
	"github.com/MrSnakeDoc/backoffice/internal/cache"
	"github.com/MrSnakeDoc/backoffice/internal/config"
	"github.com/MrSnakeDoc/backoffice/internal/dashboard"
	"github.com/MrSnakeDoc/backoffice/internal/kv/sqlite"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
	"github.com/MrSnakeDoc/backoffice/internal/notify"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
	"github.com/MrSnakeDoc/backoffice/internal/repository/local"
	"github.com/MrSnakeDoc/backoffice/internal/repository/remote"
	"github.com/MrSnakeDoc/backoffice/internal/session"
	"github.com/MrSnakeDoc/backoffice/internal/utils"
)

var (
	ErrNotLoggedIn     = errors.New("not signed in, run `backofficectl login` first")
	ErrAlreadyLoggedIn = errors.New("already signed in, run `backofficectl logout` first")
	ErrLocalAuth       = errors.New("accounts are only available with the api backend")
)

// App holds everything a command needs. It is built once per invocation.
type App struct {
	cfg      *config.ClientConfig
	in       *bufio.Reader
	tty      bool // in is the terminal, passwords are read without echo
	out      io.Writer
	log      logger.Logger
	notifier notify.Notifier
	session  *session.Session // nil on the local backend
	auth     *apiclient.Auth  // nil on the local backend
	registry *dashboard.Registry
	closers  []io.Closer
}

// NewApp opens the configured backend.
func NewApp(ctx context.Context, cfg *config.ClientConfig, in io.Reader, out io.Writer) (*App, error) {
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	a := &App{
		cfg:      cfg,
		in:       bufio.NewReader(in),
		tty:      in == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())),
		out:      out,
		log:      log,
		notifier: notify.Multi{notify.NewPrinter(out), notify.NewLogNotifier(log)},
	}

	c, err := cache.New(cfg.CacheSize, cache.WithLogger(log))
	if err != nil {
		return nil, err
	}

	var set repository.Set
	switch cfg.Backend {
	case config.BackendAPI:
		set, err = a.openAPI(ctx)
	case config.BackendLocal:
		set, err = a.openLocal(ctx)
	default:
		err = fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if err != nil {
		a.Close()
		return nil, err
	}

	a.registry = dashboard.NewRegistry(set, c, time.Now, log)
	return a, nil
}

func (a *App) openAPI(ctx context.Context) (repository.Set, error) {
	store, err := sqlite.Open(ctx, a.cfg.SessionDSN)
	if err != nil {
		return repository.Set{}, fmt.Errorf("open session store: %w", err)
	}
	a.closers = append(a.closers, store)

	sess, err := session.Open(ctx, store)
	if err != nil {
		return repository.Set{}, err
	}
	client, err := apiclient.New(apiclient.Options{
		BaseURL:  a.cfg.APIBaseURL,
		Timeout:  a.cfg.APITimeout,
		Tokens:   sess,
		Notifier: a.notifier,
		Logger:   a.log,
	})
	if err != nil {
		return repository.Set{}, err
	}
	a.session = sess
	a.auth = apiclient.NewAuth(client, sess)
	a.log.Debug("api backend ready", logger.String("url", client.BaseURL()))
	return remote.NewSet(client), nil
}

func (a *App) openLocal(ctx context.Context) (repository.Set, error) {
	store, err := sqlite.Open(ctx, a.cfg.LocalDSN)
	if err != nil {
		return repository.Set{}, fmt.Errorf("open local store: %w", err)
	}
	a.closers = append(a.closers, store)
	a.log.Debug("local backend ready", logger.String("dsn", a.cfg.LocalDSN))
	return local.NewSet(store).Notifying(a.notifier), nil
}

// guard applies the route guard to path. The local backend has no
// accounts, so everything but the auth screens is open there.
func (a *App) guard(path string) error {
	if a.session == nil {
		if session.IsAuthRoute(path) {
			return ErrLocalAuth
		}
		return nil
	}
	redirect, ok := session.Guard(a.session.Authenticated(), path)
	switch {
	case ok:
		return nil
	case redirect == session.LoginPath:
		return ErrNotLoggedIn
	default:
		return ErrAlreadyLoggedIn
	}
}

func (a *App) controller(name string) (dashboard.Controller, error) {
	return a.registry.Get(name)
}

// Close releases the stores. Safe to call more than once.
func (a *App) Close() {
	for _, c := range a.closers {
		utils.CloseLogged(c, "store", a.log)
	}
	a.closers = nil
	_ = a.log.Sync()
}
