package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhammadchandra19/wb-report/internal/bootstrap"
	"github.com/muhammadchandra19/wb-report/internal/cli"
	reportDomain "github.com/muhammadchandra19/wb-report/internal/domain/report"
	"github.com/muhammadchandra19/wb-report/pkg/util"
)

type options struct {
	dateFrom string
	dateTo   string
	out      string
	token    string
	envFile  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, time.Now(), stderr)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	app, err := bootstrap.Load(ctx, opts.envFile, opts.token)
	if err != nil {
		return cli.Fail(stderr, err)
	}
	defer func() { _ = app.Logger.Sync() }()

	return download(ctx, app.Usecase.ReportUsecase, opts, stdout, stderr)
}

func parseArgs(args []string, now time.Time, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("report-downloader", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: report-downloader [--yesterday | --period <start> <end>] [--out file.xlsx]")
		fs.PrintDefaults()
	}

	var opts options
	yesterday := fs.Bool("yesterday", false, "download the report for yesterday (default)")
	period := fs.Bool("period", false, "download the report for <start> <end>, dates as YYYY-MM-DD")
	fs.StringVar(&opts.out, "out", "", "output file, default wb_report_<from>_to_<to>.xlsx")
	fs.StringVar(&opts.token, "token", "", "API token, overrides every other source")
	fs.StringVar(&opts.envFile, "env-file", "", "configuration file, default .env")

	rest, err := cli.ParseArgs(fs, args)
	if err != nil {
		if err == flag.ErrHelp {
			return opts, err
		}
		return opts, cli.Usage("%v", err)
	}

	switch {
	case *yesterday && *period:
		return opts, cli.Usage("--yesterday and --period cannot be combined")
	case *period:
		if len(rest) != 2 {
			return opts, cli.Usage("--period needs exactly two dates, got %d", len(rest))
		}
		from, err := util.ParseDate(rest[0])
		if err != nil {
			return opts, cli.Usage("%v", err)
		}
		to, err := util.ParseDate(rest[1])
		if err != nil {
			return opts, cli.Usage("%v", err)
		}
		if from.After(to) {
			return opts, cli.Usage("period start %s is after its end %s", rest[0], rest[1])
		}
		opts.dateFrom, opts.dateTo = rest[0], rest[1]
	default:
		if len(rest) > 0 {
			return opts, cli.Usage("unexpected arguments %q", rest)
		}
		day := util.Yesterday(now)
		opts.dateFrom, opts.dateTo = day, day
	}
	return opts, nil
}

func download(ctx context.Context, uc reportDomain.Usecase, opts options, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "Downloading report for %s .. %s\n", opts.dateFrom, opts.dateTo)

	res, err := uc.DownloadReportToExcel(ctx, opts.dateFrom, opts.dateTo, opts.out)
	if err != nil {
		return cli.Fail(stderr, err)
	}

	if res.Count == 0 {
		fmt.Fprintf(stdout, "No report rows in range, wrote header only to %s\n", res.Path)
		return cli.ExitOK
	}
	fmt.Fprintf(stdout, "Saved %d rows to %s\n", res.Count, res.Path)
	return cli.ExitOK
}
