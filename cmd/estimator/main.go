package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"golang.org/x/term"

	"github.com/eugenenazirov/paint-estimator/internal/application"
	"github.com/eugenenazirov/paint-estimator/internal/config"
	"github.com/eugenenazirov/paint-estimator/internal/logging"
)

func main() {
	terminal := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(os.Args[1:], os.Stdin, os.Stdout, terminal); err != nil {
		fmt.Fprintf(os.Stderr, "paint-estimator: error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, terminal bool) error {
	kingpinApp := kingpin.New("paint-estimator", "Paint Estimator - computes the paint needed for a set of walls and the cheapest cans to buy")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()
	logEncoding := kingpinApp.Flag("log-encoding", "Log encoding (json, console)").String()
	locale := kingpinApp.Flag("locale", "Locale used to format numbers, e.g. pt-BR or en-US").String()
	currency := kingpinApp.Flag("currency", "Currency symbol printed before prices").String()
	output := kingpinApp.Flag("output", "Result format (auto, text, box, json)").String()

	kingpinApp.Command("interactive", "Ask for walls, openings and coats on the terminal").Default()
	quoteCmd := kingpinApp.Command("quote", "Estimate walls given on the command line")
	walls := quoteCmd.Flag("wall", "Wall as AREA or HEIGHTxWIDTH, optionally followed by :OPENINGS (repeatable)").Required().Strings()
	coats := quoteCmd.Flag("coats", "Number of coats").Default("1").Int()

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(&config.CLIOverrides{
		ConfigFile:  *configFile,
		LogLevel:    logLevel,
		LogEncoding: logEncoding,
		Locale:      locale,
		Currency:    currency,
		Output:      output,
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger, application.WithTerminal(terminal))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if command == quoteCmd.FullCommand() {
		return app.Quote(stdout, *walls, *coats)
	}
	return app.Run(stdin, stdout)
}
