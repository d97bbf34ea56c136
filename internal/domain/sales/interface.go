package sales

import (
	"context"

	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
	"github.com/muhammadchandra19/wb-report/internal/infrastructure/wildberries"
)

// Usecase is the interface for the sales usecase.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type Usecase interface {
	GetSales(ctx context.Context, dateFrom, dateTo string, flag wildberries.SalesFlag) (*recordv1.SalesResult, error)
	GetSalesLastDays(ctx context.Context, days int, flag wildberries.SalesFlag) (*recordv1.SalesResult, error)
	GetSalesYesterday(ctx context.Context) (*recordv1.SalesResult, error)
	GetStocks(ctx context.Context, dateFrom string) (recordv1.Records, error)
}
