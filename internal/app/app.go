package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/catalog"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/config"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/repositories"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/services"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App struct holds references to config & services.
type App struct {
	Config       *config.Config
	DB           *pgxpool.Pool
	Catalog      *catalog.Catalog
	QuoteService services.QuoteService
}

// NewApp sets up the core application context. The database is optional;
// without DATABASE_URL quotes are not archived.
func NewApp(cfg *config.Config) (*App, error) {
	utils.Logger.Info("Initializing quote-service App")

	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Catalog: cat}

	if cfg.DBUrl != "" {
		a.DB, err = connectWithRetry(cfg.DBUrl)
		if err != nil {
			return nil, err
		}
	}

	sink, err := a.buildSink()
	if err != nil {
		a.Close()
		return nil, err
	}

	// A nil sink makes the form fall back to simulated delivery.
	if sink.Empty() {
		utils.Logger.Warn("No quote sinks configured; submissions will only be logged")
		a.QuoteService = services.NewQuoteService(nil, cat)
	} else {
		a.QuoteService = services.NewQuoteService(sink, cat)
	}
	return a, nil
}

func (a *App) buildSink() (*services.CompositeSink, error) {
	cfg := a.Config
	sink := &services.CompositeSink{}

	if a.DB != nil {
		repo := repositories.NewQuoteRequestRepository(a.DB)
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure quote_requests schema: %w", err)
		}
		sink.Required = append(sink.Required, services.NamedSink{Name: "archive", Sink: services.NewArchiveSink(repo)})
	}

	if cfg.SendgridAPIKey != "" {
		emailSink := services.NewEmailSink(cfg.SendgridAPIKey, services.EmailSinkConfig{
			OrganizationName: cfg.OrganizationName,
			FromEmail:        cfg.LDFlag_SendgridFromEmail,
			RoutingEmail:     cfg.QuoteRoutingEmail,
			SandboxMode:      cfg.LDFlag_SendgridSandboxMode,
			SendAck:          cfg.SendQuoteAck,
		}, a.Catalog)
		sink.Required = append(sink.Required, services.NamedSink{Name: "email", Sink: emailSink})
	}

	if cfg.CRMWebhookURL != "" {
		webhook := services.NewWebhookSink(cfg.CRMWebhookURL, cfg.CRMWebhookToken, cfg.CRMWebhookTimeout)
		sink.Required = append(sink.Required, services.NamedSink{Name: "crm_webhook", Sink: webhook})
	}

	if cfg.LDFlag_QuoteSMSAlerts && cfg.TwilioAccountSID != "" && cfg.SalesAlertPhone != "" {
		sms := services.NewSMSAlertSink(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromPhone, cfg.SalesAlertPhone)
		sink.BestEffort = append(sink.BestEffort, services.NamedSink{Name: "sms_alert", Sink: sms})
	}

	for _, s := range sink.Required {
		utils.Logger.Infof("Quote sink enabled: %s (required)", s.Name)
	}
	for _, s := range sink.BestEffort {
		utils.Logger.Infof("Quote sink enabled: %s (best effort)", s.Name)
	}
	return sink, nil
}

// Close releases the database pool, if any.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("quote-service DB connection closed.")
	}
	utils.Logger.Info("quote-service app shutting down.")
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(utils.SystemClock), nil
	}
	cat, err := catalog.LoadFile(cfg.CatalogFile, utils.SystemClock)
	if err != nil {
		return nil, err
	}
	utils.Logger.Infof("Loaded quote catalog from %s", cfg.CatalogFile)
	return cat, nil
}

func connectWithRetry(databaseURL string) (*pgxpool.Pool, error) {
	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		dbPool, err = newDBPool(ctx, databaseURL)
		cancel()
		if err == nil {
			utils.Logger.Infof("quote-service connected to DB on attempt %d", i)
			return dbPool, nil
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			break
		}
		time.Sleep(backoff)
		backoff *= 2
	}
	return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	return pgxpool.ConnectConfig(ctx, cfg)
}
