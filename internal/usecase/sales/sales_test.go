package sales

import (
	"context"
	"testing"
	"time"

	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
	"github.com/muhammadchandra19/wb-report/internal/infrastructure/wildberries"
	wbMock "github.com/muhammadchandra19/wb-report/internal/infrastructure/wildberries/mock"
	"github.com/muhammadchandra19/wb-report/pkg/errors"
	loggerMock "github.com/muhammadchandra19/wb-report/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 12, 7, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func salesResult(count int) *recordv1.SalesResult {
	recs := make(recordv1.Records, count)
	for i := range recs {
		rec, err := recordv1.NewRecord("date", "2024-12-01T10:00:00", "nmId", 1001+i)
		if err != nil {
			panic(err)
		}
		recs[i] = rec
	}
	return &recordv1.SalesResult{Records: recs, Count: count, StatusCode: 200}
}

func TestUsecase_GetSales(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(client *wbMock.MockStatisticsClient, log *loggerMock.MockInterface)
		assertFn func(t *testing.T, res *recordv1.SalesResult, err error)
	}{
		{
			name: "success",
			mockFn: func(client *wbMock.MockStatisticsClient, log *loggerMock.MockInterface) {
				client.EXPECT().
					GetSales(gomock.Any(), wildberries.SalesParams{DateFrom: "2024-12-01", DateTo: "2024-12-03", Flag: wildberries.FlagNew}).
					Return(salesResult(2), nil)
				log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
			},
			assertFn: func(t *testing.T, res *recordv1.SalesResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, res.Count)
			},
		},
		{
			name: "truncated response is logged",
			mockFn: func(client *wbMock.MockStatisticsClient, log *loggerMock.MockInterface) {
				res := salesResult(1)
				res.Truncated = true
				client.EXPECT().GetSales(gomock.Any(), gomock.Any()).Return(res, nil)
				log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
				log.EXPECT().WarnContext(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
			},
			assertFn: func(t *testing.T, res *recordv1.SalesResult, err error) {
				require.NoError(t, err)
				assert.True(t, res.Truncated)
			},
		},
		{
			name: "client error keeps its code",
			mockFn: func(client *wbMock.MockStatisticsClient, log *loggerMock.MockInterface) {
				client.EXPECT().GetSales(gomock.Any(), gomock.Any()).Return(nil, errors.NewAPIError(401, []byte("unauthorized")))
				log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
				log.EXPECT().ErrorContext(gomock.Any(), gomock.Any()).Times(1)
			},
			assertFn: func(t *testing.T, res *recordv1.SalesResult, err error) {
				assert.Nil(t, res)
				require.Error(t, err)
				assert.True(t, errors.IsAuth(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := wbMock.NewMockStatisticsClient(ctrl)
			log := loggerMock.NewMockInterface(ctrl)
			tc.mockFn(client, log)

			uc := NewUsecase(client, log, WithClock(fixedClock))
			res, err := uc.GetSales(context.Background(), "2024-12-01", "2024-12-03", wildberries.FlagNew)
			tc.assertFn(t, res, err)
		})
	}
}

func TestUsecase_GetSalesLastDays(t *testing.T) {
	testCases := []struct {
		name     string
		days     int
		flag     wildberries.SalesFlag
		mockFn   func(client *wbMock.MockStatisticsClient)
		assertFn func(t *testing.T, res *recordv1.SalesResult, err error)
	}{
		{
			name: "seven days end today",
			days: 7,
			mockFn: func(client *wbMock.MockStatisticsClient) {
				client.EXPECT().
					GetSales(gomock.Any(), wildberries.SalesParams{DateFrom: "2024-12-01", DateTo: "2024-12-07", Flag: wildberries.FlagAll}).
					Return(salesResult(3), nil)
			},
			assertFn: func(t *testing.T, res *recordv1.SalesResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 3, res.Count)
			},
		},
		{
			name: "new sales share the window",
			days: 3,
			flag: wildberries.FlagNew,
			mockFn: func(client *wbMock.MockStatisticsClient) {
				client.EXPECT().
					GetSales(gomock.Any(), wildberries.SalesParams{DateFrom: "2024-12-05", DateTo: "2024-12-07", Flag: wildberries.FlagNew}).
					Return(salesResult(1), nil)
			},
			assertFn: func(t *testing.T, res *recordv1.SalesResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, res.Count)
			},
		},
		{
			name: "zero days with new sales is rejected",
			days: 0,
			flag: wildberries.FlagNew,
			mockFn: func(client *wbMock.MockStatisticsClient) {},
			assertFn: func(t *testing.T, res *recordv1.SalesResult, err error) {
				assert.True(t, errors.IsCode(err, errors.GeneralBadRequestError))
			},
		},
		{
			name: "one day is today only",
			days: 1,
			mockFn: func(client *wbMock.MockStatisticsClient) {
				client.EXPECT().
					GetSales(gomock.Any(), wildberries.SalesParams{DateFrom: "2024-12-07", DateTo: "2024-12-07"}).
					Return(salesResult(0), nil)
			},
			assertFn: func(t *testing.T, res *recordv1.SalesResult, err error) {
				require.NoError(t, err)
				assert.Zero(t, res.Count)
			},
		},
		{
			name:   "zero days is rejected without a request",
			days:   0,
			mockFn: func(client *wbMock.MockStatisticsClient) {},
			assertFn: func(t *testing.T, res *recordv1.SalesResult, err error) {
				assert.Nil(t, res)
				assert.True(t, errors.IsCode(err, errors.GeneralBadRequestError))
				assert.Equal(t, errors.CategoryValidation, errors.CategoryOf(errors.CodeOf(err)))
			},
		},
		{
			name:   "negative days is rejected",
			days:   -3,
			mockFn: func(client *wbMock.MockStatisticsClient) {},
			assertFn: func(t *testing.T, res *recordv1.SalesResult, err error) {
				assert.True(t, errors.IsCode(err, errors.GeneralBadRequestError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := wbMock.NewMockStatisticsClient(ctrl)
			log := loggerMock.NewMockInterface(ctrl)
			log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
			tc.mockFn(client)

			uc := NewUsecase(client, log, WithClock(fixedClock))
			res, err := uc.GetSalesLastDays(context.Background(), tc.days, tc.flag)
			tc.assertFn(t, res, err)
		})
	}
}

func TestUsecase_GetSalesLastDaysMatchesExplicitRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := salesResult(4)
	client := wbMock.NewMockStatisticsClient(ctrl)
	client.EXPECT().
		GetSales(gomock.Any(), wildberries.SalesParams{DateFrom: "2024-12-01", DateTo: "2024-12-07"}).
		Return(want, nil).
		Times(2)
	log := loggerMock.NewMockInterface(ctrl)
	log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	uc := NewUsecase(client, log, WithClock(fixedClock))

	relative, err := uc.GetSalesLastDays(context.Background(), 7, wildberries.FlagAll)
	require.NoError(t, err)
	explicit, err := uc.GetSales(context.Background(), "2024-12-01", "2024-12-07", wildberries.FlagAll)
	require.NoError(t, err)

	assert.Equal(t, explicit, relative)
}

func TestUsecase_GetSalesYesterday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := wbMock.NewMockStatisticsClient(ctrl)
	client.EXPECT().
		GetSales(gomock.Any(), wildberries.SalesParams{DateFrom: "2024-12-06", DateTo: "2024-12-06"}).
		Return(salesResult(1), nil)
	log := loggerMock.NewMockInterface(ctrl)
	log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	res, err := NewUsecase(client, log, WithClock(fixedClock)).GetSalesYesterday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
}

func TestUsecase_GetStocks(t *testing.T) {
	testCases := []struct {
		name     string
		dateFrom string
		mockFn   func(client *wbMock.MockStatisticsClient, log *loggerMock.MockInterface)
		assertFn func(t *testing.T, recs recordv1.Records, err error)
	}{
		{
			name:     "defaults to yesterday",
			dateFrom: "",
			mockFn: func(client *wbMock.MockStatisticsClient, log *loggerMock.MockInterface) {
				client.EXPECT().GetStocks(gomock.Any(), "2024-12-06").Return(salesResult(2).Records, nil)
			},
			assertFn: func(t *testing.T, recs recordv1.Records, err error) {
				require.NoError(t, err)
				assert.Len(t, recs, 2)
			},
		},
		{
			name:     "explicit date",
			dateFrom: "2024-11-01",
			mockFn: func(client *wbMock.MockStatisticsClient, log *loggerMock.MockInterface) {
				client.EXPECT().GetStocks(gomock.Any(), "2024-11-01").Return(recordv1.Records{}, nil)
			},
			assertFn: func(t *testing.T, recs recordv1.Records, err error) {
				require.NoError(t, err)
				assert.Empty(t, recs)
			},
		},
		{
			name:     "timeout",
			dateFrom: "2024-11-01",
			mockFn: func(client *wbMock.MockStatisticsClient, log *loggerMock.MockInterface) {
				client.EXPECT().GetStocks(gomock.Any(), gomock.Any()).
					Return(nil, errors.New(errors.TimeoutError, "request timed out"))
				log.EXPECT().ErrorContext(gomock.Any(), gomock.Any()).Times(1)
			},
			assertFn: func(t *testing.T, recs recordv1.Records, err error) {
				assert.Nil(t, recs)
				assert.True(t, errors.IsCode(err, errors.TimeoutError))
				assert.Equal(t, errors.CategoryNetwork, errors.CategoryOf(errors.CodeOf(err)))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := wbMock.NewMockStatisticsClient(ctrl)
			log := loggerMock.NewMockInterface(ctrl)
			log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
			tc.mockFn(client, log)

			recs, err := NewUsecase(client, log, WithClock(fixedClock)).GetStocks(context.Background(), tc.dateFrom)
			tc.assertFn(t, recs, err)
		})
	}
}
