package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	app := &cli.App{
		Name:    "timebomb",
		Usage:   "audit and serve deprecation deadlines",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "path to the deadline manifest",
				Value:   "timebomb.yaml",
				EnvVars: []string{"TIMEBOMB_MANIFEST"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "check",
				Usage:  "evaluate the manifest and exit non-zero when a fail deadline has expired",
				Action: runCheck,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "treat every expired deadline as fatal, whatever its policy",
					},
					&cli.BoolFlag{
						Name:    "record",
						Usage:   "write evaluation records to the configured result store",
						EnvVars: []string{"TIMEBOMB_CHECK_RECORD"},
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "run the deadline HTTP API",
				Action: runServe,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
