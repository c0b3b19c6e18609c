package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eugenenazirov/paint-estimator/internal/estimator"
)

// Format selects how an estimate is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatBox  Format = "box"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for an output format that is not supported.
var ErrUnknownFormat = errors.New("output format must be one of text, box, json")

const title = "Final result"

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// ParseFormat validates a format name.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatText, FormatBox, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// Renderer turns estimates into user-facing summaries.
type Renderer struct {
	printer  *message.Printer
	currency string
}

// New creates a Renderer that formats numbers for locale and prefixes prices with currency.
func New(locale language.Tag, currency string) *Renderer {
	return &Renderer{
		printer:  message.NewPrinter(locale),
		currency: currency,
	}
}

// Printer exposes the locale-aware printer so prompts format numbers the same way.
func (r *Renderer) Printer() *message.Printer {
	return r.printer
}

// Render writes est to w in the requested format.
func (r *Renderer) Render(w io.Writer, est estimator.Estimate, format Format) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, title+"\n\n"+r.Text(est)+"\n")
		return err
	case FormatBox:
		body := titleStyle.Render(title) + "\n\n" + r.Text(est)
		_, err := io.WriteString(w, boxStyle.Render(body)+"\n")
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.document(est))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// Text returns the plain summary of est.
func (r *Renderer) Text(est estimator.Estimate) string {
	var b strings.Builder
	p := r.printer
	plan := est.Plan

	p.Fprintf(&b, "Total area to paint: %.2f m²\n", est.Area)
	p.Fprintf(&b, "Coats: %d\n", est.Coats)
	p.Fprintf(&b, "Paint required: %.2f L\n\n", est.Liters)

	large := r.canLabel(estimator.LargeCan)
	small := r.canLabel(estimator.SmallCan)

	switch plan.Strategy {
	case estimator.StrategySingleLarge:
		p.Fprintf(&b, "One %s can is the better buy!\n", large)
		p.Fprintf(&b, "Leftover: %.2f L\n", plan.Leftover)
		p.Fprintf(&b, "Cost: %s\n", r.money(plan.LargeOnlyCost))
		p.Fprintf(&b, "Cost with %s cans: %s\n", small, r.money(plan.SmallOnlyCost))
		p.Fprintf(&b, "Savings: %s", r.money(plan.Savings))
	case estimator.StrategySmallOnly:
		p.Fprintf(&b, "Buying only %s cans is cheaper.\n", small)
		p.Fprintf(&b, "%s cans: %d\n", small, plan.SmallCans)
		p.Fprintf(&b, "Cost: %s", r.money(plan.SmallOnlyCost))
	default:
		p.Fprintf(&b, "%s cans: %d\n", large, plan.LargeCans)
		p.Fprintf(&b, "%s cans: %d\n", small, plan.SmallCans)
		p.Fprintf(&b, "Total invested: %s", r.money(plan.Cost))
	}

	return b.String()
}

func (r *Renderer) money(amount int) string {
	return r.printer.Sprintf("%s%.2f", r.currency, float64(amount))
}

func (r *Renderer) canLabel(c estimator.Can) string {
	if c.Liters == math.Trunc(c.Liters) {
		return r.printer.Sprintf("%.0f L", c.Liters)
	}
	return r.printer.Sprintf("%.1f L", c.Liters)
}

// document is the JSON form of an estimate. The comparison fields are
// pointers so a zero saving on a tie is still written for small jobs and
// the fields are omitted for mixed purchases.
type document struct {
	AreaM2              float64  `json:"areaM2"`
	Coats               int      `json:"coats"`
	Liters              float64  `json:"liters"`
	Strategy            string   `json:"strategy"`
	LargeCans           int      `json:"largeCans"`
	SmallCans           int      `json:"smallCans"`
	Cost                int      `json:"cost"`
	LeftoverLiters      float64  `json:"leftoverLiters"`
	LargeOnlyCost       *int     `json:"largeOnlyCost,omitempty"`
	SmallOnlyCost       *int     `json:"smallOnlyCost,omitempty"`
	Savings             *int     `json:"savings,omitempty"`
	LargeLeftoverLiters *float64 `json:"largeLeftoverLiters,omitempty"`
	Currency            string   `json:"currency"`
}

func (r *Renderer) document(est estimator.Estimate) document {
	plan := est.Plan
	doc := document{
		AreaM2:         est.Area,
		Coats:          est.Coats,
		Liters:         est.Liters,
		Strategy:       plan.Strategy.String(),
		LargeCans:      plan.LargeCans,
		SmallCans:      plan.SmallCans,
		Cost:           plan.Cost,
		LeftoverLiters: plan.Leftover,
		Currency:       r.currency,
	}
	if plan.Compared() {
		doc.LargeOnlyCost = &plan.LargeOnlyCost
		doc.SmallOnlyCost = &plan.SmallOnlyCost
		doc.Savings = &plan.Savings
		doc.LargeLeftoverLiters = &plan.LargeLeftover
	}
	return doc
}
