package bootstrap

import (
	reportDomain "github.com/muhammadchandra19/wb-report/internal/domain/report"
	salesDomain "github.com/muhammadchandra19/wb-report/internal/domain/sales"
	reportUc "github.com/muhammadchandra19/wb-report/internal/usecase/report"
	salesUc "github.com/muhammadchandra19/wb-report/internal/usecase/sales"
)

// Usecase groups the usecases exposed to the commands.
type Usecase struct {
	SalesUsecase  salesDomain.Usecase
	ReportUsecase reportDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.SalesUsecase = salesUc.NewUsecase(b.Client, b.Logger)
	b.Usecase.ReportUsecase = reportUc.NewUsecase(b.Client, b.Logger, reportUc.Config{
		OutputDir: b.Config.App.OutputDir,
		DatedDir:  b.Config.App.OutputDatedDir,
		Limit:     b.Config.App.ReportLimit,
	})
}
