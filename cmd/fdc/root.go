package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jsamuelsen/go-fdc/internal/bootstrap"
	"github.com/jsamuelsen/go-fdc/internal/platform/config"
	"github.com/jsamuelsen/go-fdc/internal/platform/logging"
	"github.com/jsamuelsen/go-fdc/internal/platform/output"
	"github.com/jsamuelsen/go-fdc/internal/ports"
)

const name = "fdc"

// session is the per-invocation state built from the global flags.
type session struct {
	stdout io.Writer
	stderr io.Writer

	svc    ports.FoodDataClient
	writer *output.Writer
	raw    bool
}

func newRootCommand(stdout, stderr io.Writer) *cli.Command {
	s := &session{stdout: stdout, stderr: stderr}

	return &cli.Command{
		Name:    name,
		Usage:   "query the USDA FoodData Central API",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Description: `fdc fetches food reports, lists and searches from FoodData Central.

An API key is required. Pass --api-key, set FDC_API_KEY or put it in a
.env file in the working directory. Results go to stdout; logs go to stderr.`,
		Writer:    stdout,
		ErrWriter: stderr,
		// Errors are printed once by run.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "data.gov API key",
				Sources: cli.EnvVars("FDC_API_KEY"),
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "API root",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-request timeout",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   string(output.FormatJSON),
				Usage:   fmt.Sprintf("output format (%s)", strings.Join(output.SupportedFormats(), ", ")),
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "print the API body without mapping",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "log level (trace, debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: "pretty",
				Usage: "log format (pretty, text, json)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config file",
			},
		},
		Commands: []*cli.Command{
			getCommand(s),
			foodsCommand(s),
			listCommand(s),
			searchCommand(s),
		},
	}
}

// open loads configuration, applies the global flags and builds the
// service. It runs inside each subcommand so that help never needs a key.
func (s *session) open(cmd *cli.Command) error {
	var opts []config.LoadOption
	if path := cmd.String("config"); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	cfg, err := config.Load("", opts...)
	if err != nil {
		return err
	}

	if cmd.IsSet("api-key") {
		cfg.FDC.APIKey = cmd.String("api-key")
	}

	if cmd.IsSet("base-url") {
		cfg.FDC.BaseURL = cmd.String("base-url")
	}

	if cmd.IsSet("timeout") {
		cfg.FDC.Timeout = cmd.Duration("timeout")
	}

	cfg.Log.Level = cmd.String("log-level")
	cfg.Log.Format = cmd.String("log-format")

	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := output.ParseFormat(cmd.String("output"))
	if err != nil {
		return err
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: name,
		Version: version,
	}, s.stderr)

	stack, err := bootstrap.NewFDC(&cfg.FDC, logger)
	if err != nil {
		return err
	}

	logger.Debug("fdc ready", slog.String("base_url", stack.Client.BaseURL()))

	s.svc = stack.Service
	s.writer = output.NewWriter(format, s.stdout)
	s.raw = cmd.Bool("raw")

	return nil
}

func (s *session) write(v any) error {
	return s.writer.Write(v)
}
