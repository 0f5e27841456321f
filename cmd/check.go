package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/KasumiMercury/primind-timebomb/internal/domain"
	"github.com/KasumiMercury/primind-timebomb/internal/infra/evalrecorder"
	"github.com/KasumiMercury/primind-timebomb/internal/manifest"
	"github.com/KasumiMercury/primind-timebomb/internal/service/audit"
)

const exitExpired = 2

func runCheck(cctx *cli.Context) error {
	ctx := cctx.Context

	m, err := manifest.LoadFromYAML(cctx.String("manifest"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var recorder domain.EvaluationRecorder
	if cctx.Bool("record") {
		recorder, err = evalrecorder.NewRecorder(ctx, evalrecorder.LoadConfig())
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to initialize result recorder: %v", err), 1)
		}
		defer closeRecorder(recorder)
	}

	report, err := audit.NewService(nil, recorder, nil, nil).Evaluate(ctx, m.Resolve())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	writeReport(cctx.App.Writer, report)

	return checkResult(report, cctx.Bool("strict"))
}

func checkResult(report *audit.Report, strict bool) error {
	failing := report.Failing(strict)
	if len(failing) == 0 {
		return nil
	}

	names := make([]string, 0, len(failing))
	for _, item := range failing {
		names = append(names, item.Name)
	}

	return cli.Exit(fmt.Sprintf("%d expired deadline(s): %v", len(failing), names), exitExpired)
}

func writeReport(w io.Writer, report *audit.Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tPOLICY\tWINDOW\tDEADLINE\tREMAINING\tDELAY")

	for _, item := range report.Items {
		delay := "-"
		if item.DelayMs > 0 {
			delay = strconv.FormatFloat(item.DelayMs, 'f', -1, 64) + "ms"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.Name,
			item.Policy,
			item.Window,
			item.Deadline.Format(time.RFC3339),
			item.Remaining.Round(time.Minute),
			delay,
		)
	}
	_ = tw.Flush()

	_, _ = fmt.Fprintf(w, "\nexpired=%d approaching=%d dormant=%d run_id=%s\n",
		report.ExpiredCount, report.ApproachingCount, report.DormantCount, report.RunID)
}

func closeRecorder(recorder domain.EvaluationRecorder) {
	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := recorder.Flush(flushCtx); err != nil {
		slog.Warn("failed to flush result recorder", slog.String("error", err.Error()))
	}
	if err := recorder.Close(); err != nil {
		slog.Warn("failed to close result recorder", slog.String("error", err.Error()))
	}
}
