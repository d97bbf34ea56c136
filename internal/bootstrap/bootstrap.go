package bootstrap

import (
	"context"
	"net/http"

	"github.com/muhammadchandra19/wb-report/internal/credential"
	"github.com/muhammadchandra19/wb-report/internal/infrastructure/wildberries"
	"github.com/muhammadchandra19/wb-report/pkg/config"
	"github.com/muhammadchandra19/wb-report/pkg/errors"
	"github.com/muhammadchandra19/wb-report/pkg/logger"
)

// Bootstrap holds the wired components of a command.
type Bootstrap struct {
	Config  *config.Config
	Logger  logger.Interface
	Client  wildberries.StatisticsClient
	Usecase Usecase

	// TokenSource names the credential provider that supplied the token.
	TokenSource string
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config *config.Config
	Logger logger.Interface

	// Token is an explicitly supplied API token, it wins over every other source.
	Token string
	// Providers replaces the default credential chain when set.
	Providers  []credential.Provider
	HTTPClient *http.Client
}

// Init resolves the API token and wires the client and usecases.
func (b *Bootstrap) Init(ctx context.Context, cfg BootstrapConfig) error {
	if cfg.Config == nil {
		return errors.New(errors.ConfigError, "bootstrap: missing configuration")
	}
	b.Config = cfg.Config
	b.Logger = cfg.Logger
	if b.Logger == nil {
		b.Logger = logger.NewNop()
	}

	providers := cfg.Providers
	if providers == nil {
		providers = credential.DefaultChain(cfg.Token, cfg.Config.TokenFile)
	}

	token, source, err := credential.Resolve(ctx, providers...)
	if err != nil {
		return errors.TracerFromError(err)
	}
	b.TokenSource = source
	b.Logger.Debug("api token resolved", logger.NewField("source", source))

	if err := b.registerClient(token, cfg.HTTPClient); err != nil {
		return errors.TracerFromError(err)
	}
	b.registerUsecase()

	return nil
}

// NewLogger builds the logger described by the app configuration.
func NewLogger(app config.AppConfig) (*logger.Logger, error) {
	return logger.NewLogger(
		logger.WithLoggingLevel(logger.Level(app.LogLevel)),
		logger.WithOutputPaths([]string{app.LogOutput}),
		logger.WithEncoding(app.LogEncoding),
	)
}

// Load reads the configuration from envFile (the default dotenv file when
// empty), builds the logger and initializes a Bootstrap. A non-empty token
// takes precedence over every other credential source.
func Load(ctx context.Context, envFile, token string) (*Bootstrap, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	if envFile != "" {
		cfg.TokenFile = envFile
	}

	log, err := NewLogger(cfg.App)
	if err != nil {
		return nil, errors.Wrap(err, errors.ConfigError, "failed to build logger")
	}

	b := &Bootstrap{}
	if err := b.Init(ctx, BootstrapConfig{Config: cfg, Logger: log, Token: token}); err != nil {
		return nil, err
	}
	return b, nil
}
