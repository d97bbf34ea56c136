package report

import (
	"context"
	"iter"

	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
)

// Download describes a written report file.
type Download struct {
	Path  string
	Count int
}

// Usecase is the interface for the detailed report usecase.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type Usecase interface {
	GetReportDetail(ctx context.Context, dateFrom, dateTo string, limit int, rrdid int64) (*recordv1.Page, error)
	Pages(ctx context.Context, dateFrom, dateTo string, limit int) iter.Seq2[*recordv1.Page, error]
	FetchAll(ctx context.Context, dateFrom, dateTo string, limit int) (recordv1.Records, error)
	DownloadReportToExcel(ctx context.Context, dateFrom, dateTo, filename string) (*Download, error)
}
