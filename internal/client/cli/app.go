package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jcsoftlabs/Yeng-client/internal/client/api"
	"github.com/jcsoftlabs/Yeng-client/internal/client/config"
	"github.com/jcsoftlabs/Yeng-client/internal/client/repositories/state"
	"github.com/jcsoftlabs/Yeng-client/internal/client/services"
	"github.com/jcsoftlabs/Yeng-client/internal/client/session"
	"github.com/jcsoftlabs/Yeng-client/internal/client/storage"
	"github.com/jcsoftlabs/Yeng-client/internal/logging"
)

// App wires the API client, session store, and page services behind the REPL.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	session      *session.Store
	parcels      services.ParcelService
	profile      services.ProfileService
	registration services.RegistrationService
	invoices     services.InvoiceService

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.StorageDSN)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	tokens := state.NewTokenStore(state.NewSQLiteRepository(db))
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, tokens, log)
	sess := session.NewStore(apiClient, db, log)

	return &App{
		config:       c,
		log:          log,
		db:           db,
		session:      sess,
		parcels:      services.NewParcelService(apiClient, sess),
		profile:      services.NewProfileService(apiClient, sess),
		registration: services.NewRegistrationService(apiClient, sess),
		invoices:     services.NewInvoiceService(apiClient),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// Run hydrates the session and hands control to the REPL. It blocks until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.session.Hydrate(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if snap := a.session.Snapshot(); snap.IsAuthenticated {
		printlnFn(fmt.Sprintf("Bonjou %s! Session restored.", snap.Customer.FirstName))
	} else {
		printlnFn("Welcome to Yeng (type 'help' for commands)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "close storage", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Phase() == session.PhaseAuthenticated
}

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	if snap.IsAuthenticated {
		return fmt.Sprintf("(%s)", snap.Customer.Email)
	}
	return ""
}
