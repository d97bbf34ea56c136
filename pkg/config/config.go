package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/muhammadchandra19/wb-report/internal/infrastructure/wildberries"
	"github.com/muhammadchandra19/wb-report/pkg/errors"
)

// DefaultEnvFile is the dotenv file read when no other path is given.
const DefaultEnvFile = ".env"

// tokenKey is left out of the dotenv preload. The credential chain reads it
// from the file itself.
const tokenKey = "WB_API_TOKEN"

// Config represents the application configuration.
type Config struct {
	App         AppConfig          `envPrefix:"APP_"`
	Wildberries wildberries.Config `envPrefix:"WB_"`

	// TokenFile is read by the credential chain. The token itself is never
	// part of Config so that its source stays known.
	TokenFile string `env:"WB_TOKEN_FILE" envDefault:".env"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"wb-report"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogOutput   string `env:"LOG_OUTPUT" envDefault:"stderr"`
	LogEncoding string `env:"LOG_ENCODING" envDefault:"console"`

	// OutputDir is where reports are written when no explicit path is given.
	OutputDir string `env:"OUTPUT_DIR"`
	// OutputDatedDir adds a DD.MM.YYYY sub-folder under OutputDir.
	OutputDatedDir bool `env:"OUTPUT_DATED_DIR" envDefault:"false"`

	SummaryDays int `env:"SUMMARY_DAYS" envDefault:"7"`
	ReportLimit int `env:"REPORT_LIMIT" envDefault:"100000"`
}

// Load loads the configuration from the environment, after applying the
// first existing dotenv file among envFiles (DefaultEnvFile when none given).
// Variables already set in the environment are not overridden.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		// Load .env file if it exists
		if preload(f) {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ConfigError, "failed to parse config")
	}

	if cfg.App.SummaryDays < 1 {
		return nil, errors.Newf(errors.ConfigError, "APP_SUMMARY_DAYS must be at least 1, got %d", cfg.App.SummaryDays)
	}
	if cfg.App.ReportLimit < 1 {
		return nil, errors.Newf(errors.ConfigError, "APP_REPORT_LIMIT must be at least 1, got %d", cfg.App.ReportLimit)
	}

	return cfg, nil
}

// preload copies the variables of a dotenv file into the environment,
// except the API token. Variables already set are kept.
func preload(filename string) bool {
	values, err := godotenv.Read(filename)
	if err != nil {
		return false
	}
	for k, v := range values {
		if k == tokenKey {
			continue
		}
		if _, ok := os.LookupEnv(k); !ok {
			_ = os.Setenv(k, v)
		}
	}
	return true
}
