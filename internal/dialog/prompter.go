package dialog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eugenenazirov/paint-estimator/internal/job"
)

// CancelWord aborts the running dialog when typed at any prompt.
const CancelWord = "cancel"

// ErrCancelled is returned when the user dismisses a prompt or input ends.
var ErrCancelled = errors.New("dialog cancelled")

// Prompter asks questions on a line-oriented terminal and re-prompts until
// the answer is valid.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	printer *message.Printer
}

// PrompterOption configures Prompter behaviour.
type PrompterOption func(*Prompter)

// WithPrinter sets the printer used to format numbers in notices.
func WithPrinter(printer *message.Printer) PrompterOption {
	return func(p *Prompter) {
		p.printer = printer
	}
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer, opts ...PrompterOption) *Prompter {
	p := &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Float asks for a non-negative decimal number written with a dot or a comma.
func (p *Prompter) Float(msg string) (float64, error) {
	for {
		answer, err := p.ask(msg)
		if err != nil {
			return 0, err
		}
		value, err := job.ParseNumber(answer)
		if err == nil && value >= 0 {
			return value, nil
		}
		p.warn("Invalid entry", "Type a non-negative number, e.g. 2.5 or 2,5.")
	}
}

// Int asks for a whole number not below min.
func (p *Prompter) Int(msg string, min int) (int, error) {
	for {
		answer, err := p.ask(msg)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(answer)
		if err == nil && value >= min {
			return value, nil
		}
		p.warn("Invalid entry", fmt.Sprintf("Type a whole number of at least %d.", min))
	}
}

// Option asks the user to pick one of options. Matching ignores case and
// surrounding spaces; the canonical option is returned.
func (p *Prompter) Option(msg string, options ...string) (string, error) {
	for {
		answer, err := p.ask(msg)
		if err != nil {
			return "", err
		}
		idx := slices.IndexFunc(options, func(option string) bool {
			return strings.EqualFold(option, answer)
		})
		if idx >= 0 {
			return options[idx], nil
		}
		p.warn("Invalid option", "Choose one of: "+strings.Join(options, ", "))
	}
}

// Notify shows an informational message. Arguments are formatted with the
// prompter's locale.
func (p *Prompter) Notify(title, format string, args ...any) {
	p.printer.Fprintf(p.out, "[%s] ", title)
	p.printer.Fprintf(p.out, format, args...)
	fmt.Fprintln(p.out)
}

func (p *Prompter) ask(msg string) (string, error) {
	fmt.Fprintf(p.out, "%s\n> ", msg)
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrCancelled
	}
	answer := strings.TrimSpace(p.scanner.Text())
	if strings.EqualFold(answer, CancelWord) {
		return "", ErrCancelled
	}
	return answer, nil
}

func (p *Prompter) warn(title, details string) {
	fmt.Fprintf(p.out, "[%s] %s\n", title, details)
}
