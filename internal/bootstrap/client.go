package bootstrap

import (
	"net/http"

	"github.com/muhammadchandra19/wb-report/internal/infrastructure/wildberries"
)

// registerClient registers the statistics API client.
func (b *Bootstrap) registerClient(token string, hc *http.Client) error {
	var opts []wildberries.Option
	if hc != nil {
		opts = append(opts, wildberries.WithHTTPClient(hc))
	}

	client, err := wildberries.NewClient(b.Config.Wildberries, token, opts...)
	if err != nil {
		return err
	}
	b.Client = client
	return nil
}
