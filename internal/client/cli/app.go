package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/lumina/internal/client/client"
	"github.com/dmitrijs2005/lumina/internal/client/config"
	"github.com/dmitrijs2005/lumina/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/lumina/internal/client/services"
	"github.com/dmitrijs2005/lumina/internal/client/session"
	"github.com/dmitrijs2005/lumina/internal/filex"
	"github.com/dmitrijs2005/lumina/internal/logging"
)

type App struct {
	baseURL string
	log     logging.Logger
	db      *sql.DB

	session   *session.Manager
	api       client.Doer
	catalog   *services.Catalog
	community *services.Community
	users     *services.Users
	admin     *services.Admin

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp opens the local database named in cfg and wires the client stack.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	path, err := filex.EnsureParentDir(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	t := client.NewTransport(cfg.APIBaseURL, client.WithTimeout(cfg.RequestTimeout), client.WithLogger(log))
	app := newApp(t, credentials.NewSQLiteStore(db), log)
	app.db = db
	return app, nil
}

func newApp(t *client.Transport, store credentials.Store, log logging.Logger) *App {
	m := session.NewManager(t, store, log)
	api := client.NewAPIClient(t, m, log)

	return &App{
		baseURL:   t.BaseURL(),
		log:       log,
		session:   m,
		api:       api,
		catalog:   services.NewCatalog(api),
		community: services.NewCommunity(api),
		users:     services.NewUsers(api),
		admin:     services.NewAdmin(api, m),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		now:       time.Now,
	}
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
