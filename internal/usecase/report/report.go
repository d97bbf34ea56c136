package report

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"time"

	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
	reportDomain "github.com/muhammadchandra19/wb-report/internal/domain/report"
	"github.com/muhammadchandra19/wb-report/internal/infrastructure/export"
	"github.com/muhammadchandra19/wb-report/internal/infrastructure/wildberries"
	"github.com/muhammadchandra19/wb-report/pkg/errors"
	"github.com/muhammadchandra19/wb-report/pkg/logger"
	"github.com/muhammadchandra19/wb-report/pkg/util"
)

// Config controls where downloaded reports are written.
type Config struct {
	// OutputDir receives reports saved under a bare file name.
	OutputDir string
	// DatedDir adds a DD.MM.YYYY sub-folder of today under OutputDir.
	DatedDir bool
	// Limit is the page size used by DownloadReportToExcel.
	Limit int
}

// Usecase is the usecase for the detailed sales report.
type Usecase struct {
	client wildberries.StatisticsClient
	logger logger.Interface
	config Config
	now    func() time.Time
}

var _ reportDomain.Usecase = (*Usecase)(nil)

// Option configures the Usecase.
type Option func(*Usecase)

// WithClock overrides the clock used for dated output folders.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

// NewUsecase creates a new report usecase.
func NewUsecase(client wildberries.StatisticsClient, logger logger.Interface, config Config, opts ...Option) *Usecase {
	u := &Usecase{client: client, logger: logger, config: config, now: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GetReportDetail fetches one page of the detailed report starting after rrdid.
func (u *Usecase) GetReportDetail(ctx context.Context, dateFrom, dateTo string, limit int, rrdid int64) (*recordv1.Page, error) {
	page, err := u.client.GetReportDetail(ctx, wildberries.ReportParams{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Limit:    limit,
		RRDID:    rrdid,
	})
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	u.logger.DebugContext(ctx, "report page fetched",
		logger.NewField("rrdid", rrdid),
		logger.NewField("count", page.Len()),
		logger.NewField("last_rrdid", page.LastRRDID),
	)
	return page, nil
}

// Pages returns the report as a lazy sequence of pages. Each step resumes
// from the last rrd_id of the previous page. The sequence ends after a
// short page, or when the continuation id stops advancing. Empty pages are
// not yielded. An error is yielded once and ends the sequence.
func (u *Usecase) Pages(ctx context.Context, dateFrom, dateTo string, limit int) iter.Seq2[*recordv1.Page, error] {
	if limit <= 0 {
		limit = wildberries.DefaultReportLimit
	}

	return func(yield func(*recordv1.Page, error) bool) {
		var rrdid int64
		for {
			page, err := u.GetReportDetail(ctx, dateFrom, dateTo, limit, rrdid)
			if err != nil {
				yield(nil, err)
				return
			}
			if page.Len() == 0 {
				return
			}
			if !yield(page, nil) {
				return
			}
			if page.Len() < limit {
				return
			}
			if page.LastRRDID <= rrdid {
				u.logger.WarnContext(ctx, "report continuation id did not advance, stopping",
					logger.NewField("rrdid", rrdid),
				)
				return
			}
			rrdid = page.LastRRDID
		}
	}
}

// FetchAll collects every page of the report. Nothing is returned when any
// page fails.
func (u *Usecase) FetchAll(ctx context.Context, dateFrom, dateTo string, limit int) (recordv1.Records, error) {
	all := recordv1.Records{}
	pages := 0
	for page, err := range u.Pages(ctx, dateFrom, dateTo, limit) {
		if err != nil {
			return nil, err
		}
		pages++
		all = append(all, page.Records...)
	}

	u.logger.InfoContext(ctx, "report fetched",
		logger.NewField("pages", pages),
		logger.NewField("count", len(all)),
	)
	return all, nil
}

// DownloadReportToExcel fetches the whole report for the range and writes it
// as a spreadsheet. An empty filename becomes wb_report_<from>_to_<to>.xlsx.
// An empty report still produces a file with the header row.
func (u *Usecase) DownloadReportToExcel(ctx context.Context, dateFrom, dateTo, filename string) (*reportDomain.Download, error) {
	ctx = util.WithOperation(util.EnsureRequestID(ctx), "download_report")

	u.logger.InfoContext(ctx, "downloading report",
		logger.NewField("date_from", dateFrom),
		logger.NewField("date_to", dateTo),
	)

	recs, err := u.FetchAll(ctx, dateFrom, dateTo, u.config.Limit)
	if err != nil {
		u.logger.ErrorContext(ctx, err)
		return nil, errors.TracerFromError(err)
	}

	path, err := u.outputPath(dateFrom, dateTo, filename)
	if err != nil {
		u.logger.ErrorContext(ctx, err)
		return nil, errors.TracerFromError(err)
	}

	if err := export.SaveExcel(recs, path, export.WithColumns(wildberries.ReportDetailColumns...)); err != nil {
		u.logger.ErrorContext(ctx, err, logger.NewField("path", path))
		return nil, errors.TracerFromError(err)
	}

	if len(recs) == 0 {
		u.logger.WarnContext(ctx, "report is empty, wrote header only", logger.NewField("path", path))
	}
	u.logger.InfoContext(ctx, "report written",
		logger.NewField("path", path),
		logger.NewField("count", len(recs)),
	)
	return &reportDomain.Download{Path: path, Count: len(recs)}, nil
}

// outputPath places a bare file name under the configured output directory,
// creating it when needed. Names with a directory part are used as given.
func (u *Usecase) outputPath(dateFrom, dateTo, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("wb_report_%s_to_%s.xlsx", dateFrom, dateTo)
	}
	if filepath.Dir(filename) != "." {
		return filename, nil
	}

	dir := u.config.OutputDir
	if u.config.DatedDir {
		dir = filepath.Join(dir, u.now().Format(util.FolderDateLayout))
	}
	if dir == "" {
		return filename, nil
	}
	if err := export.EnsureDir(dir); err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}
