package wildberries

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
	"github.com/muhammadchandra19/wb-report/pkg/errors"
	"github.com/muhammadchandra19/wb-report/pkg/util"
)

// Client is the statistics API client. It holds the bearer token for its
// whole lifetime and never persists it.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	token      string
	config     Config
}

// Ensure Client implements StatisticsClient interface
var _ StatisticsClient = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new statistics API client.
func NewClient(config Config, token string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New(errors.ConfigError, "statistics api token is empty")
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultConfig().BaseURL
	}
	baseURL, err := url.Parse(strings.TrimRight(config.BaseURL, "/"))
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Newf(errors.ConfigError, "invalid statistics api base url %q", config.BaseURL)
	}

	c := &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		token:      token,
		config:     config,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetSales fetches the sales list for the given range in a single request.
func (c *Client) GetSales(ctx context.Context, params SalesParams) (*recordv1.SalesResult, error) {
	q := url.Values{}
	q.Set("dateFrom", params.DateFrom)
	if params.DateTo != "" {
		q.Set("dateTo", params.DateTo)
	}
	q.Set("flag", strconv.Itoa(int(params.Flag)))

	body, status, err := c.get(ctx, SalesPath, q, c.config.SalesTimeout)
	if err != nil {
		return nil, err
	}

	recs, err := decode(body, SalesPath)
	if err != nil {
		return nil, err
	}

	return &recordv1.SalesResult{
		Records:    recs,
		Count:      len(recs),
		Truncated:  len(recs) >= SalesRowCap,
		StatusCode: status,
	}, nil
}

// GetReportDetail fetches one page of the detailed report.
func (c *Client) GetReportDetail(ctx context.Context, params ReportParams) (*recordv1.Page, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultReportLimit
	}

	q := url.Values{}
	q.Set("dateFrom", params.DateFrom)
	q.Set("dateTo", params.DateTo)
	q.Set("limit", strconv.Itoa(limit))
	if params.RRDID > 0 {
		q.Set("rrdid", strconv.FormatInt(params.RRDID, 10))
	}

	body, _, err := c.get(ctx, ReportDetailPath, q, c.config.ReportTimeout)
	if err != nil {
		return nil, err
	}

	recs, err := decode(body, ReportDetailPath)
	if err != nil {
		return nil, err
	}
	return recordv1.NewPage(recs), nil
}

// GetStocks fetches warehouse stock rows changed since dateFrom.
func (c *Client) GetStocks(ctx context.Context, dateFrom string) (recordv1.Records, error) {
	q := url.Values{}
	q.Set("dateFrom", dateFrom)

	body, _, err := c.get(ctx, StocksPath, q, c.config.StocksTimeout)
	if err != nil {
		return nil, err
	}
	return decode(body, StocksPath)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, timeout time.Duration) ([]byte, int, error) {
	ctx = util.EnsureRequestID(ctx)
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	u := *c.baseURL
	u.Path = u.Path + path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, errors.ConfigError, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-Request-Id", util.GetRequestID(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, transportError(err, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, transportError(err, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, errors.NewAPIError(resp.StatusCode, body)
	}
	return body, resp.StatusCode, nil
}

func decode(body []byte, path string) (recordv1.Records, error) {
	recs, err := recordv1.DecodeRecords(body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ParseError, fmt.Sprintf("failed to decode %s response", path))
	}
	return recs, nil
}

func transportError(err error, path string) error {
	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.Wrap(err, errors.TimeoutError, fmt.Sprintf("request to %s timed out", path))
	}
	return errors.Wrap(err, errors.NetworkError, fmt.Sprintf("request to %s failed", path))
}
