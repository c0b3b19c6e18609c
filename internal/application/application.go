package application

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eugenenazirov/paint-estimator/internal/config"
	"github.com/eugenenazirov/paint-estimator/internal/dialog"
	"github.com/eugenenazirov/paint-estimator/internal/estimator"
	"github.com/eugenenazirov/paint-estimator/internal/job"
	"github.com/eugenenazirov/paint-estimator/internal/report"
)

// ErrNoWalls is returned when a quote is requested without any wall.
var ErrNoWalls = errors.New("at least one wall is required")

const (
	menuStart = "1"
	menuQuit  = "2"
)

// App encapsulates the estimator, the report renderer and the logger.
type App struct {
	estimator estimator.Estimator
	renderer  *report.Renderer
	format    report.Format
	logger    *zap.Logger
	newID     func() string
}

// Option configures App behaviour.
type Option func(*options)

type options struct {
	terminal bool
	newID    func() string
}

// WithTerminal reports whether output goes to an interactive terminal. It
// decides the "auto" output format.
func WithTerminal(terminal bool) Option {
	return func(o *options) {
		o.terminal = terminal
	}
}

// WithIDGenerator overrides the estimate session ID source, primarily for tests.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	o := options{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}

	format, err := ResolveFormat(cfg.Output, o.terminal)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output format: %w", err)
	}

	return &App{
		estimator: estimator.New(),
		renderer:  report.New(cfg.LocaleTag(), cfg.Currency),
		format:    format,
		logger:    logger,
		newID:     o.newID,
	}, nil
}

// ResolveFormat maps the configured output to a report format. "auto" picks
// boxed output on a terminal and plain text otherwise.
func ResolveFormat(output string, terminal bool) (report.Format, error) {
	if strings.EqualFold(strings.TrimSpace(output), config.OutputAuto) {
		if terminal {
			return report.FormatBox, nil
		}
		return report.FormatText, nil
	}
	return report.ParseFormat(output)
}

// Run shows the start menu until the user quits or input ends. A cancelled
// estimate returns to the start menu without showing partial results.
func (a *App) Run(in io.Reader, out io.Writer) error {
	p := dialog.NewPrompter(in, out, dialog.WithPrinter(a.renderer.Printer()))
	fmt.Fprintln(out, "Welcome to the painting assistant!")

	for {
		choice, err := p.Option("What do you want to do?\n(1) Start a new estimate\n(2) Quit", menuStart, menuQuit)
		if errors.Is(err, dialog.ErrCancelled) || choice == menuQuit {
			fmt.Fprintln(out, "Goodbye.")
			return nil
		}
		if err != nil {
			return err
		}

		if err := a.session(p, out); err != nil {
			return err
		}
	}
}

// Quote estimates the walls given in job.ParseWall notation without prompting.
func (a *App) Quote(out io.Writer, walls []string, coats int) error {
	if len(walls) == 0 {
		return ErrNoWalls
	}

	paint := &job.PaintJob{Coats: coats}
	for i, raw := range walls {
		gross, openings, err := job.ParseWall(raw)
		if err != nil {
			return fmt.Errorf("wall %d: %w", i+1, err)
		}
		if _, err := paint.AddWall(gross, openings); err != nil {
			return fmt.Errorf("wall %d: %w", i+1, err)
		}
	}

	return a.estimate(out, paint, a.logger.With(zap.String("session_id", a.newID())))
}

func (a *App) session(p *dialog.Prompter, out io.Writer) error {
	logger := a.logger.With(zap.String("session_id", a.newID()))
	logger.Info("estimate started")

	paint, err := dialog.CollectJob(p, logger)
	if errors.Is(err, dialog.ErrCancelled) {
		logger.Info("estimate cancelled")
		p.Notify("Estimate cancelled", "You cancelled the estimate. Returning to the start screen.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("collect paint job: %w", err)
	}

	err = a.estimate(out, paint, logger)
	if isInputError(err) {
		logger.Warn("estimate rejected", zap.Error(err))
		p.Notify("Invalid entry", "%v. Returning to the start screen.", errors.Unwrap(err))
		return nil
	}
	return err
}

// isInputError reports whether err comes from estimator input validation
// rather than from writing the result.
func isInputError(err error) bool {
	return errors.Is(err, estimator.ErrInvalidArea) ||
		errors.Is(err, estimator.ErrInvalidCoats) ||
		errors.Is(err, estimator.ErrAreaTooLarge)
}

func (a *App) estimate(out io.Writer, paint *job.PaintJob, logger *zap.Logger) error {
	est, err := a.estimator.Estimate(paint.TotalArea(), paint.Coats)
	if err != nil {
		return fmt.Errorf("estimate paint: %w", err)
	}

	logger.Info("estimate computed",
		zap.Int("walls", paint.Len()),
		zap.Float64("area_m2", est.Area),
		zap.Int("coats", est.Coats),
		zap.Float64("liters", est.Liters),
		zap.Stringer("strategy", est.Plan.Strategy),
		zap.Int("cost", est.Plan.Cost),
	)

	if err := a.renderer.Render(out, est, a.format); err != nil {
		return fmt.Errorf("render estimate: %w", err)
	}
	return nil
}
