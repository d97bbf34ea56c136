package sales

import (
	"context"
	"time"

	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
	salesDomain "github.com/muhammadchandra19/wb-report/internal/domain/sales"
	"github.com/muhammadchandra19/wb-report/internal/infrastructure/wildberries"
	"github.com/muhammadchandra19/wb-report/pkg/errors"
	"github.com/muhammadchandra19/wb-report/pkg/logger"
	"github.com/muhammadchandra19/wb-report/pkg/util"
)

// Usecase is the usecase for seller sales.
type Usecase struct {
	client wildberries.StatisticsClient
	logger logger.Interface
	now    func() time.Time
}

var _ salesDomain.Usecase = (*Usecase)(nil)

// Option configures the Usecase.
type Option func(*Usecase)

// WithClock overrides the clock used to compute relative date ranges.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

// NewUsecase creates a new sales usecase.
func NewUsecase(client wildberries.StatisticsClient, logger logger.Interface, opts ...Option) *Usecase {
	u := &Usecase{client: client, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GetSales fetches sales in the given range. An empty dateTo leaves the
// range open-ended.
func (u *Usecase) GetSales(ctx context.Context, dateFrom, dateTo string, flag wildberries.SalesFlag) (*recordv1.SalesResult, error) {
	ctx = util.WithOperation(util.EnsureRequestID(ctx), "get_sales")

	u.logger.InfoContext(ctx, "requesting sales",
		logger.NewField("date_from", dateFrom),
		logger.NewField("date_to", dateTo),
		logger.NewField("flag", int(flag)),
	)

	res, err := u.client.GetSales(ctx, wildberries.SalesParams{DateFrom: dateFrom, DateTo: dateTo, Flag: flag})
	if err != nil {
		u.logger.ErrorContext(ctx, err)
		return nil, errors.TracerFromError(err)
	}

	u.logger.InfoContext(ctx, "sales received", logger.NewField("count", res.Count))
	if res.Truncated {
		u.logger.WarnContext(ctx, "sales response reached the row cap, narrow the range",
			logger.NewField("cap", wildberries.SalesRowCap),
		)
	}
	return res, nil
}

// GetSalesLastDays fetches the sales of the trailing days ending today.
func (u *Usecase) GetSalesLastDays(ctx context.Context, days int, flag wildberries.SalesFlag) (*recordv1.SalesResult, error) {
	if days < 1 {
		return nil, errors.Newf(errors.GeneralBadRequestError, "days must be at least 1, got %d", days)
	}
	from, to := util.LastDays(u.now(), days)
	return u.GetSales(ctx, from, to, flag)
}

// GetSalesYesterday fetches all sales of the previous calendar day.
func (u *Usecase) GetSalesYesterday(ctx context.Context) (*recordv1.SalesResult, error) {
	day := util.Yesterday(u.now())
	return u.GetSales(ctx, day, day, wildberries.FlagAll)
}

// GetStocks fetches warehouse stocks changed since dateFrom, yesterday when empty.
func (u *Usecase) GetStocks(ctx context.Context, dateFrom string) (recordv1.Records, error) {
	ctx = util.WithOperation(util.EnsureRequestID(ctx), "get_stocks")
	if dateFrom == "" {
		dateFrom = util.Yesterday(u.now())
	}

	u.logger.InfoContext(ctx, "requesting stocks", logger.NewField("date_from", dateFrom))

	recs, err := u.client.GetStocks(ctx, dateFrom)
	if err != nil {
		u.logger.ErrorContext(ctx, err)
		return nil, errors.TracerFromError(err)
	}

	u.logger.InfoContext(ctx, "stocks received", logger.NewField("count", len(recs)))
	return recs, nil
}
