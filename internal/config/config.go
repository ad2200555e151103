package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

// EnvConfig is the runtime environment block.
type EnvConfig struct {
	Env     string `env:"ENV"                  envDefault:"dev"`
	AppPort string `env:"APP_PORT"             envDefault:"8080"`
	AppUrl  string `env:"APP_URL_FROM_ANYWHERE" envDefault:"http://localhost:3000"`

	CatalogFile string `env:"CATALOG_FILE"`

	SendgridAPIKey    string `env:"SENDGRID_API_KEY"`
	SendgridFromEmail string `env:"SENDGRID_FROM_EMAIL"`
	QuoteRoutingEmail string `env:"QUOTE_ROUTING_EMAIL" envDefault:"quotes@sangabrielsigns.com"`
	SendQuoteAck      bool   `env:"SEND_QUOTE_ACK"      envDefault:"true"`

	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromPhone  string `env:"TWILIO_FROM_PHONE"`
	SalesAlertPhone  string `env:"SALES_ALERT_PHONE"`

	CRMWebhookURL     string        `env:"CRM_WEBHOOK_URL"`
	CRMWebhookToken   string        `env:"CRM_WEBHOOK_TOKEN"`
	CRMWebhookTimeout time.Duration `env:"CRM_WEBHOOK_TIMEOUT" envDefault:"10s"`

	DBUrl string `env:"DATABASE_URL"`

	LDSDKKey string `env:"LD_SDK_KEY"`
}

type Config struct {
	EnvConfig

	OrganizationName string
	AppName          string

	// Feature-flag snapshots
	LDFlag_SendgridFromEmail   string
	LDFlag_SendgridSandboxMode bool
	LDFlag_QuoteSMSAlerts      bool
}

const (
	OrganizationName    = constants.OrganizationName
	LDConnectionTimeout = 5 * time.Second
	defaultAppName      = "quote-service"
)

// build-time overrides, set with -ldflags
var (
	AppName             string
	LDServerContextKey  string
	LDServerContextKind string
)

// AppNameOrDefault is the ldflag app name, or the service's own name when
// built without one.
func AppNameOrDefault() string {
	if AppName == "" {
		return defaultAppName
	}
	return AppName
}

// LoadConfig reads ldflags, an optional .env file and the environment, then
// snapshots LaunchDarkly flags when an SDK key is configured.
func LoadConfig() *Config {
	//----------------------------------------------------------------------
	// 1) ldflags
	//----------------------------------------------------------------------
	AppName = AppNameOrDefault()
	utils.Logger.Info("Loading config for app: ", AppName)

	//----------------------------------------------------------------------
	// 2) Runtime environment vars
	//----------------------------------------------------------------------
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		utils.Logger.WithError(err).Fatal("Failed to read .env file")
	}

	var envCfg EnvConfig
	if err := env.Parse(&envCfg); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse environment")
	}

	cfg := &Config{
		EnvConfig:                  envCfg,
		OrganizationName:           OrganizationName,
		AppName:                    AppName,
		LDFlag_SendgridFromEmail:   envCfg.SendgridFromEmail,
		LDFlag_SendgridSandboxMode: envCfg.Env != "prod",
		LDFlag_QuoteSMSAlerts:      envCfg.TwilioAccountSID != "",
	}

	//----------------------------------------------------------------------
	// 3) LaunchDarkly flags
	//----------------------------------------------------------------------
	if envCfg.LDSDKKey == "" {
		utils.Logger.Warn("LD_SDK_KEY not set; using environment defaults for feature flags")
	} else {
		loadFlags(cfg)
	}

	if cfg.SendgridAPIKey != "" && cfg.LDFlag_SendgridFromEmail == "" {
		utils.Logger.Fatal("SENDGRID_API_KEY is set but no sender address is configured")
	}

	utils.Logger.Infof("Loaded config for %s (%s)", AppName, envCfg.Env)
	return cfg
}

func loadFlags(cfg *Config) {
	if LDServerContextKey == "" {
		LDServerContextKey = cfg.AppName
	}
	if LDServerContextKind == "" {
		LDServerContextKind = "service"
	}

	ldClient, err := ld.MakeClient(cfg.LDSDKKey, LDConnectionTimeout)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to create LaunchDarkly client")
	}
	defer ldClient.Close()
	if !ldClient.Initialized() {
		utils.Logger.Fatal("LaunchDarkly client failed to initialize")
	}

	ctx := ldcontext.NewWithKind(ldcontext.Kind(LDServerContextKind), LDServerContextKey)

	fromEmail, err := ldClient.StringVariation("sendgrid_from_email", ctx, cfg.LDFlag_SendgridFromEmail)
	if err != nil {
		utils.Logger.WithError(err).Fatal("sendgrid_from_email flag error")
	}
	utils.Logger.Debugf("sendgrid_from_email flag: %s", fromEmail)

	sandbox, err := ldClient.BoolVariation("sendgrid_sandbox_mode", ctx, cfg.LDFlag_SendgridSandboxMode)
	if err != nil {
		utils.Logger.WithError(err).Fatal("sendgrid_sandbox_mode flag error")
	}
	utils.Logger.Debugf("sendgrid_sandbox_mode flag: %t", sandbox)

	smsAlerts, err := ldClient.BoolVariation("quote_sms_alerts", ctx, cfg.LDFlag_QuoteSMSAlerts)
	if err != nil {
		utils.Logger.WithError(err).Fatal("quote_sms_alerts flag error")
	}
	utils.Logger.Debugf("quote_sms_alerts flag: %t", smsAlerts)

	cfg.LDFlag_SendgridFromEmail = fromEmail
	cfg.LDFlag_SendgridSandboxMode = sandbox
	cfg.LDFlag_QuoteSMSAlerts = smsAlerts
}

func (c *Config) Close() {
}
