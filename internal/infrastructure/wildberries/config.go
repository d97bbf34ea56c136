package wildberries

import "time"

// Config is the statistics API client configuration.
type Config struct {
	BaseURL   string `env:"BASE_URL" envDefault:"https://statistics-api.wildberries.ru"`
	UserAgent string `env:"USER_AGENT" envDefault:"wb-report/1.0"`

	// Per-endpoint request timeouts. The detailed report can be large, so it
	// gets more time than the sales list.
	SalesTimeout  time.Duration `env:"SALES_TIMEOUT" envDefault:"30s"`
	ReportTimeout time.Duration `env:"REPORT_TIMEOUT" envDefault:"60s"`
	StocksTimeout time.Duration `env:"STOCKS_TIMEOUT" envDefault:"60s"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		BaseURL:       "https://statistics-api.wildberries.ru",
		UserAgent:     "wb-report/1.0",
		SalesTimeout:  30 * time.Second,
		ReportTimeout: 60 * time.Second,
		StocksTimeout: 60 * time.Second,
	}
}
