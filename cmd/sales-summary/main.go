package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/muhammadchandra19/wb-report/internal/bootstrap"
	"github.com/muhammadchandra19/wb-report/internal/cli"
	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
	salesDomain "github.com/muhammadchandra19/wb-report/internal/domain/sales"
	"github.com/muhammadchandra19/wb-report/internal/infrastructure/export"
	"github.com/muhammadchandra19/wb-report/internal/infrastructure/wildberries"
	"github.com/muhammadchandra19/wb-report/internal/summary"
	"github.com/muhammadchandra19/wb-report/pkg/util"
)

type options struct {
	days       int
	flag       wildberries.SalesFlag
	jsonOut    string
	excelOut   string
	stocksOut  string
	stocksFrom string
	token      string
	envFile    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	app, err := bootstrap.Load(ctx, opts.envFile, opts.token)
	if err != nil {
		return cli.Fail(stderr, err)
	}
	defer func() { _ = app.Logger.Sync() }()

	if opts.days == 0 {
		opts.days = app.Config.App.SummaryDays
	}
	return summarize(ctx, app.Usecase.SalesUsecase, opts, stdout, stderr)
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("sales-summary", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: sales-summary [--days N] [--flag 0|1] [--json file] [--xlsx file] [--stocks file [--stocks-from date]]")
		fs.PrintDefaults()
	}

	var opts options
	var salesFlag int
	fs.IntVar(&opts.days, "days", 0, "number of trailing days including today, default APP_SUMMARY_DAYS")
	fs.IntVar(&salesFlag, "flag", 0, "0 for all sales, 1 for new sales only")
	fs.StringVar(&opts.jsonOut, "json", "", "also save the sales as JSON to this file")
	fs.StringVar(&opts.excelOut, "xlsx", "", "also save the sales as a spreadsheet to this file")
	fs.StringVar(&opts.stocksOut, "stocks", "", "also save warehouse stocks to this file, .xlsx or JSON")
	fs.StringVar(&opts.stocksFrom, "stocks-from", "", "stocks changed since this YYYY-MM-DD date, default yesterday")
	fs.StringVar(&opts.token, "token", "", "API token, overrides every other source")
	fs.StringVar(&opts.envFile, "env-file", "", "configuration file, default .env")

	rest, err := cli.ParseArgs(fs, args)
	if err != nil {
		if err == flag.ErrHelp {
			return opts, err
		}
		return opts, cli.Usage("%v", err)
	}
	if len(rest) > 0 {
		return opts, cli.Usage("unexpected arguments %q", rest)
	}
	if opts.days < 0 {
		return opts, cli.Usage("--days must be positive, got %d", opts.days)
	}
	if salesFlag != int(wildberries.FlagAll) && salesFlag != int(wildberries.FlagNew) {
		return opts, cli.Usage("--flag must be 0 or 1, got %d", salesFlag)
	}
	if opts.stocksFrom != "" {
		if opts.stocksOut == "" {
			return opts, cli.Usage("--stocks-from needs --stocks")
		}
		if _, err := util.ParseDate(opts.stocksFrom); err != nil {
			return opts, cli.Usage("%v", err)
		}
	}
	opts.flag = wildberries.SalesFlag(salesFlag)
	return opts, nil
}

func summarize(ctx context.Context, uc salesDomain.Usecase, opts options, stdout, stderr io.Writer) int {
	res, err := uc.GetSalesLastDays(ctx, opts.days, opts.flag)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	fmt.Fprintf(stdout, "Last %d days\n", opts.days)
	if err := summary.PrintSalesSummary(stdout, res.Records); err != nil {
		return cli.Fail(stderr, err)
	}
	if res.Truncated {
		fmt.Fprintf(stderr, "warning: the response reached the %d row limit, sales may be missing\n", wildberries.SalesRowCap)
	}

	if opts.jsonOut != "" {
		if err := export.SaveJSON(res.Records, opts.jsonOut); err != nil {
			return cli.Fail(stderr, err)
		}
		fmt.Fprintf(stdout, "Saved JSON to %s\n", opts.jsonOut)
	}
	if opts.excelOut != "" {
		if err := export.SaveExcel(res.Records, opts.excelOut); err != nil {
			return cli.Fail(stderr, err)
		}
		fmt.Fprintf(stdout, "Saved spreadsheet to %s\n", opts.excelOut)
	}

	if opts.stocksOut != "" {
		stocks, err := uc.GetStocks(ctx, opts.stocksFrom)
		if err != nil {
			return cli.Fail(stderr, err)
		}
		if err := save(stocks, opts.stocksOut); err != nil {
			return cli.Fail(stderr, err)
		}
		fmt.Fprintf(stdout, "Saved %d stock rows to %s\n", len(stocks), opts.stocksOut)
	}
	return cli.ExitOK
}

// save picks the writer from the file extension.
func save(records recordv1.Records, filename string) error {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return export.SaveExcel(records, filename)
	}
	return export.SaveJSON(records, filename)
}
