package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
	reportDomain "github.com/muhammadchandra19/wb-report/internal/domain/report"
	"github.com/muhammadchandra19/wb-report/internal/infrastructure/export"
	"github.com/muhammadchandra19/wb-report/internal/infrastructure/wildberries"
	wbMock "github.com/muhammadchandra19/wb-report/internal/infrastructure/wildberries/mock"
	"github.com/muhammadchandra19/wb-report/pkg/errors"
	"github.com/muhammadchandra19/wb-report/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

const (
	dateFrom = "2024-12-01"
	dateTo   = "2024-12-03"
)

var fixedNow = time.Date(2024, 12, 7, 9, 0, 0, 0, time.UTC)

// page builds n report rows with rrd_id values first, first+1, ...
func page(t *testing.T, first int64, n int) *recordv1.Page {
	t.Helper()
	recs := make(recordv1.Records, n)
	for i := range recs {
		rec, err := recordv1.NewRecord(
			"realizationreport_id", 1,
			"rrd_id", first+int64(i),
			"nm_id", 1001,
			"sale_dt", "2024-12-01T10:00:00",
		)
		require.NoError(t, err)
		recs[i] = rec
	}
	return recordv1.NewPage(recs)
}

func reportParams(limit int, rrdid int64) wildberries.ReportParams {
	return wildberries.ReportParams{DateFrom: dateFrom, DateTo: dateTo, Limit: limit, RRDID: rrdid}
}

func TestUsecase_FetchAll(t *testing.T) {
	const limit = 50

	testCases := []struct {
		name     string
		mockFn   func(t *testing.T, client *wbMock.MockStatisticsClient)
		assertFn func(t *testing.T, recs recordv1.Records, err error)
	}{
		{
			name: "pages accumulate until a short page",
			mockFn: func(t *testing.T, client *wbMock.MockStatisticsClient) {
				gomock.InOrder(
					client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 0)).Return(page(t, 1, limit), nil),
					client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 50)).Return(page(t, 51, limit), nil),
					client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 100)).Return(page(t, 101, 37), nil),
				)
			},
			assertFn: func(t *testing.T, recs recordv1.Records, err error) {
				require.NoError(t, err)
				assert.Len(t, recs, 2*limit+37)
				last, ok := recs[len(recs)-1].Int(recordv1.RRDIDField)
				assert.True(t, ok)
				assert.Equal(t, int64(137), last)
			},
		},
		{
			name: "empty first page",
			mockFn: func(t *testing.T, client *wbMock.MockStatisticsClient) {
				client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 0)).Return(recordv1.NewPage(recordv1.Records{}), nil)
			},
			assertFn: func(t *testing.T, recs recordv1.Records, err error) {
				require.NoError(t, err)
				assert.NotNil(t, recs)
				assert.Empty(t, recs)
			},
		},
		{
			name: "full page followed by empty page",
			mockFn: func(t *testing.T, client *wbMock.MockStatisticsClient) {
				gomock.InOrder(
					client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 0)).Return(page(t, 1, limit), nil),
					client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 50)).Return(recordv1.NewPage(recordv1.Records{}), nil),
				)
			},
			assertFn: func(t *testing.T, recs recordv1.Records, err error) {
				require.NoError(t, err)
				assert.Len(t, recs, limit)
			},
		},
		{
			name: "continuation id that does not advance stops the walk",
			mockFn: func(t *testing.T, client *wbMock.MockStatisticsClient) {
				gomock.InOrder(
					client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 0)).Return(page(t, 1, limit), nil),
					client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 50)).Return(page(t, 1, limit), nil),
				)
			},
			assertFn: func(t *testing.T, recs recordv1.Records, err error) {
				require.NoError(t, err)
				assert.Len(t, recs, 2*limit)
			},
		},
		{
			name: "error on a later page discards earlier pages",
			mockFn: func(t *testing.T, client *wbMock.MockStatisticsClient) {
				gomock.InOrder(
					client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 0)).Return(page(t, 1, limit), nil),
					client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 50)).Return(nil, errors.NewAPIError(502, []byte("bad gateway"))),
				)
			},
			assertFn: func(t *testing.T, recs recordv1.Records, err error) {
				assert.Nil(t, recs)
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.APIError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := wbMock.NewMockStatisticsClient(ctrl)
			tc.mockFn(t, client)

			uc := NewUsecase(client, logger.NewNop(), Config{})
			recs, err := uc.FetchAll(context.Background(), dateFrom, dateTo, limit)
			tc.assertFn(t, recs, err)
		})
	}
}

func TestUsecase_PagesDefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := wbMock.NewMockStatisticsClient(ctrl)
	client.EXPECT().
		GetReportDetail(gomock.Any(), reportParams(wildberries.DefaultReportLimit, 0)).
		Return(page(t, 1, 3), nil)

	uc := NewUsecase(client, logger.NewNop(), Config{})
	count := 0
	for p, err := range uc.Pages(context.Background(), dateFrom, dateTo, 0) {
		require.NoError(t, err)
		count += p.Len()
	}
	assert.Equal(t, 3, count)
}

func TestUsecase_PagesStopsWhenConsumerBreaks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := wbMock.NewMockStatisticsClient(ctrl)
	client.EXPECT().GetReportDetail(gomock.Any(), reportParams(10, 0)).Return(page(t, 1, 10), nil).Times(1)

	uc := NewUsecase(client, logger.NewNop(), Config{})
	for p, err := range uc.Pages(context.Background(), dateFrom, dateTo, 10) {
		require.NoError(t, err)
		assert.Equal(t, 10, p.Len())
		break
	}
}

func TestUsecase_PagesYieldsErrorOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := wbMock.NewMockStatisticsClient(ctrl)
	client.EXPECT().GetReportDetail(gomock.Any(), gomock.Any()).Return(nil, errors.New(errors.NetworkError, "connection refused"))

	uc := NewUsecase(client, logger.NewNop(), Config{})
	var errs []error
	for p, err := range uc.Pages(context.Background(), dateFrom, dateTo, 10) {
		assert.Nil(t, p)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.True(t, errors.IsCode(errs[0], errors.NetworkError))
}

func TestUsecase_DownloadReportToExcel(t *testing.T) {
	const limit = 20

	testCases := []struct {
		name     string
		filename string
		config   func(dir string) Config
		mockFn   func(t *testing.T, client *wbMock.MockStatisticsClient)
		assertFn func(t *testing.T, dir string, res *reportDomain.Download, err error)
	}{
		{
			name:     "writes every row under the given name",
			filename: "report.xlsx",
			config:   func(dir string) Config { return Config{OutputDir: dir, Limit: limit} },
			mockFn: func(t *testing.T, client *wbMock.MockStatisticsClient) {
				gomock.InOrder(
					client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 0)).Return(page(t, 1, limit), nil),
					client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 20)).Return(page(t, 21, 5), nil),
				)
			},
			assertFn: func(t *testing.T, dir string, res *reportDomain.Download, err error) {
				require.NoError(t, err)
				assert.Equal(t, filepath.Join(dir, "report.xlsx"), res.Path)
				assert.Equal(t, 25, res.Count)

				rows, err := readSheet(res.Path)
				require.NoError(t, err)
				assert.Len(t, rows, 26)
				assert.Equal(t, wildberries.ReportDetailColumns, rows[0])
			},
		},
		{
			name:     "empty report writes a header-only file",
			filename: "",
			config:   func(dir string) Config { return Config{OutputDir: dir, Limit: limit} },
			mockFn: func(t *testing.T, client *wbMock.MockStatisticsClient) {
				client.EXPECT().GetReportDetail(gomock.Any(), reportParams(limit, 0)).Return(recordv1.NewPage(recordv1.Records{}), nil)
			},
			assertFn: func(t *testing.T, dir string, res *reportDomain.Download, err error) {
				require.NoError(t, err)
				assert.Equal(t, filepath.Join(dir, "wb_report_2024-12-01_to_2024-12-03.xlsx"), res.Path)
				assert.Zero(t, res.Count)

				rows, err := readSheet(res.Path)
				require.NoError(t, err)
				require.Len(t, rows, 1)
				assert.Equal(t, wildberries.ReportDetailColumns, rows[0])
			},
		},
		{
			name:     "dated folder is created under the output dir",
			filename: "",
			config:   func(dir string) Config { return Config{OutputDir: dir, DatedDir: true, Limit: limit} },
			mockFn: func(t *testing.T, client *wbMock.MockStatisticsClient) {
				client.EXPECT().GetReportDetail(gomock.Any(), gomock.Any()).Return(page(t, 1, 2), nil)
			},
			assertFn: func(t *testing.T, dir string, res *reportDomain.Download, err error) {
				require.NoError(t, err)
				assert.Equal(t, filepath.Join(dir, "07.12.2024", "wb_report_2024-12-01_to_2024-12-03.xlsx"), res.Path)
				assert.FileExists(t, res.Path)
			},
		},
		{
			name:     "unauthorized writes no file",
			filename: "report.xlsx",
			config:   func(dir string) Config { return Config{OutputDir: dir, Limit: limit} },
			mockFn: func(t *testing.T, client *wbMock.MockStatisticsClient) {
				client.EXPECT().GetReportDetail(gomock.Any(), gomock.Any()).Return(nil, errors.NewAPIError(401, []byte(`{"title":"unauthorized"}`)))
			},
			assertFn: func(t *testing.T, dir string, res *reportDomain.Download, err error) {
				assert.Nil(t, res)
				require.Error(t, err)
				assert.True(t, errors.IsAuth(err))

				entries, readErr := os.ReadDir(dir)
				require.NoError(t, readErr)
				assert.Empty(t, entries)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dir := t.TempDir()
			client := wbMock.NewMockStatisticsClient(ctrl)
			tc.mockFn(t, client)

			uc := NewUsecase(client, logger.NewNop(), tc.config(dir), WithClock(func() time.Time { return fixedNow }))
			res, err := uc.DownloadReportToExcel(context.Background(), dateFrom, dateTo, tc.filename)
			tc.assertFn(t, dir, res, err)
		})
	}
}

func TestUsecase_OutputPath(t *testing.T) {
	uc := NewUsecase(nil, logger.NewNop(), Config{OutputDir: "reports"})

	path, err := uc.outputPath(dateFrom, dateTo, filepath.Join(t.TempDir(), "custom.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "custom.xlsx", filepath.Base(path))
	assert.NotContains(t, path, "reports")

	uc = NewUsecase(nil, logger.NewNop(), Config{})
	path, err = uc.outputPath(dateFrom, dateTo, "")
	require.NoError(t, err)
	assert.Equal(t, "wb_report_2024-12-01_to_2024-12-03.xlsx", path)
}

// readSheet returns the rows of the report sheet, header first.
func readSheet(filename string) ([][]string, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetRows(export.SheetName)
}
