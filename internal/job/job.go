package job

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidNumber indicates the text is not a finite decimal number.
	ErrInvalidNumber = errors.New("value must be a finite decimal number")
	// ErrNegativeValue indicates a dimension or area below zero.
	ErrNegativeValue = errors.New("value must not be negative")
	// ErrInvalidWall indicates a malformed wall specification.
	ErrInvalidWall = errors.New("wall must be AREA or HEIGHTxWIDTH, optionally followed by :OPENINGS")
	// ErrAreaOverflow indicates an area, or the job total, too large to represent.
	ErrAreaOverflow = errors.New("area is too large to represent")
)

// WallArea is the paintable area of one wall in square meters.
type WallArea float64

// PaintJob accumulates the usable area of every wall to be painted and the
// number of coats to apply.
type PaintJob struct {
	Coats int

	walls []WallArea
	total float64
}

// UsableArea subtracts the openings from the gross wall area, floored at zero.
// An undefined difference such as Inf-Inf also yields zero.
func UsableArea(gross, openings float64) float64 {
	usable := gross - openings
	if math.IsNaN(usable) || usable < 0 {
		return 0
	}
	return usable
}

// RectArea returns the area of a height by width rectangle.
func RectArea(height, width float64) float64 {
	return height * width
}

// AddWall records a wall and returns the usable area it contributed. The job
// is left unchanged when either area or the new total is not finite.
func (j *PaintJob) AddWall(gross, openings float64) (WallArea, error) {
	if !finite(gross) || !finite(openings) {
		return 0, ErrAreaOverflow
	}
	usable := UsableArea(gross, openings)
	if !finite(j.total + usable) {
		return 0, ErrAreaOverflow
	}

	j.walls = append(j.walls, WallArea(usable))
	j.total += usable
	return WallArea(usable), nil
}

// TotalArea returns the usable area summed over every wall.
func (j *PaintJob) TotalArea() float64 {
	return j.total
}

// Walls returns a copy of the recorded wall areas in entry order.
func (j *PaintJob) Walls() []WallArea {
	out := make([]WallArea, len(j.walls))
	copy(out, j.walls)
	return out
}

// Len reports how many walls were added.
func (j *PaintJob) Len() int {
	return len(j.walls)
}

// ParseNumber parses a decimal number written with either a dot or a comma separator.
func ParseNumber(raw string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return value, nil
}

// ParseWall reads a wall written as GROSS[:OPENINGS], where each side is an
// area such as "12,5" or a rectangle such as "2.5x4". It returns the gross
// and opening areas.
func ParseWall(raw string) (gross, openings float64, err error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWall, raw)
	}

	gross, err = parseSurface(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("gross area: %w", err)
	}
	if len(parts) == 2 {
		openings, err = parseSurface(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("openings: %w", err)
		}
	}
	return gross, openings, nil
}

func parseSurface(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidWall
	}

	sides := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return r == 'x' || r == '×'
	})
	switch {
	case len(sides) == 1 && !strings.ContainsAny(strings.ToLower(raw), "x×"):
		return parseNonNegative(sides[0])
	case len(sides) == 2:
		height, err := parseNonNegative(sides[0])
		if err != nil {
			return 0, err
		}
		width, err := parseNonNegative(sides[1])
		if err != nil {
			return 0, err
		}
		return RectArea(height, width), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidWall, raw)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseNonNegative(raw string) (float64, error) {
	value, err := ParseNumber(raw)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeValue, value)
	}
	return value, nil
}
