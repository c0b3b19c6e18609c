package dialog

import (
	"math"

	"go.uber.org/zap"

	"github.com/eugenenazirov/paint-estimator/internal/job"
)

const (
	optionDimensions = "1"
	optionArea       = "2"
	optionYes        = "y"
	optionNo         = "n"
)

// CollectJob walks the user through one or more walls and the number of
// coats. Any cancelled prompt aborts the whole job with ErrCancelled.
func CollectJob(p *Prompter, logger *zap.Logger) (*job.PaintJob, error) {
	paint := &job.PaintJob{}

	for {
		gross, err := wallArea(p)
		if err != nil {
			return nil, err
		}

		openings, err := openingArea(p)
		if err != nil {
			return nil, err
		}

		usable, err := paint.AddWall(gross, openings)
		if err != nil {
			logger.Debug("wall rejected", zap.Error(err))
			p.warn("Invalid entry", "The total area is too large. Enter this wall again.")
			continue
		}
		logger.Debug("wall added",
			zap.Int("wall", paint.Len()),
			zap.Float64("gross_m2", gross),
			zap.Float64("openings_m2", openings),
			zap.Float64("usable_m2", float64(usable)),
		)
		p.Notify("Area calculated", "Usable wall area added: %.2f m²", float64(usable))

		more, err := p.Option("Add another wall to paint? (y/n)", optionYes, optionNo)
		if err != nil {
			return nil, err
		}
		if more != optionYes {
			break
		}
	}

	coats, err := p.Int("How many coats of paint will be applied?", 1)
	if err != nil {
		return nil, err
	}
	paint.Coats = coats

	return paint, nil
}

func wallArea(p *Prompter) (float64, error) {
	mode, err := p.Option("How do you want to enter the wall?\n(1) Height and length\n(2) Total area in m²",
		optionDimensions, optionArea)
	if err != nil {
		return 0, err
	}

	if mode == optionArea {
		return p.Float("Total wall area in m²:")
	}

	return rectArea(p, "Wall height (m):", "Wall length (m):")
}

func openingArea(p *Prompter) (float64, error) {
	has, err := p.Option("Does the wall have openings (doors, windows)? (y/n)", optionYes, optionNo)
	if err != nil {
		return 0, err
	}
	if has == optionNo {
		return 0, nil
	}

	mode, err := p.Option("How do you want to enter the openings?\n(1) Height and width\n(2) Total area in m²",
		optionDimensions, optionArea)
	if err != nil {
		return 0, err
	}

	if mode == optionArea {
		return p.Float("Total openings area in m²:")
	}

	return rectArea(p, "Opening height (m):", "Opening width (m):")
}

// rectArea asks for both sides until their product is a finite area.
func rectArea(p *Prompter, heightMsg, widthMsg string) (float64, error) {
	for {
		height, err := p.Float(heightMsg)
		if err != nil {
			return 0, err
		}
		width, err := p.Float(widthMsg)
		if err != nil {
			return 0, err
		}
		if area := job.RectArea(height, width); !math.IsInf(area, 0) {
			return area, nil
		}
		p.warn("Invalid entry", "The resulting area is too large. Enter both sides again.")
	}
}
