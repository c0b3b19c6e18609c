package job

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"
)

func TestUsableAreaNeverNegative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		gross    float64
		openings float64
		want     float64
	}{
		{gross: 12, openings: 0, want: 12},
		{gross: 12, openings: 2.5, want: 9.5},
		{gross: 4, openings: 4, want: 0},
		{gross: 4, openings: 9, want: 0},
		{gross: 0, openings: 1, want: 0},
		{gross: math.Inf(1), openings: math.Inf(1), want: 0},
		{gross: math.NaN(), openings: 0, want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("%v-%v", tc.gross, tc.openings), func(t *testing.T) {
			if got := UsableArea(tc.gross, tc.openings); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPaintJobAccumulatesWalls(t *testing.T) {
	t.Parallel()

	var j PaintJob
	if j.TotalArea() != 0 || j.Len() != 0 {
		t.Fatalf("expected empty job, got total %v with %d walls", j.TotalArea(), j.Len())
	}

	if got := mustAddWall(t, &j, RectArea(2.5, 4), 2); got != 8 {
		t.Fatalf("expected 8 m² usable, got %v", got)
	}
	if got := mustAddWall(t, &j, 3, 5); got != 0 {
		t.Fatalf("expected openings larger than wall to contribute 0, got %v", got)
	}
	mustAddWall(t, &j, 12, 0)

	if j.TotalArea() != 20 {
		t.Fatalf("expected total 20, got %v", j.TotalArea())
	}
	if j.Len() != 3 {
		t.Fatalf("expected 3 walls, got %d", j.Len())
	}

	walls := j.Walls()
	if want := []WallArea{8, 0, 12}; !slices.Equal(walls, want) {
		t.Fatalf("expected walls %v, got %v", want, walls)
	}

	// ensure mutation safety
	walls[0] = 999
	if again := j.Walls(); again[0] != 8 {
		t.Fatalf("expected defensive copy, got %v", again)
	}
}

func TestAddWallRejectsNonFiniteAreas(t *testing.T) {
	t.Parallel()

	var j PaintJob
	mustAddWall(t, &j, 10, 0)

	cases := []struct {
		name     string
		gross    float64
		openings float64
	}{
		{name: "InfiniteWall", gross: RectArea(1e308, 1e308), openings: 0},
		{name: "InfiniteWallAndOpenings", gross: math.Inf(1), openings: math.Inf(1)},
		{name: "InfiniteOpenings", gross: 10, openings: RectArea(1e308, 1e308)},
		{name: "NaNWall", gross: math.NaN(), openings: 0},
		{name: "TotalOverflows", gross: math.MaxFloat64, openings: 0},
	}

	mustAddWall(t, &j, math.MaxFloat64/2, 0)
	before := j.TotalArea()

	for _, tc := range cases {
		if _, err := j.AddWall(tc.gross, tc.openings); !errors.Is(err, ErrAreaOverflow) {
			t.Fatalf("%s: expected ErrAreaOverflow, got %v", tc.name, err)
		}
	}
	if j.Len() != 2 || j.TotalArea() != before {
		t.Fatalf("expected rejected walls to leave the job unchanged, got %d walls totalling %v", j.Len(), j.TotalArea())
	}
}

func mustAddWall(t *testing.T, j *PaintJob, gross, openings float64) WallArea {
	t.Helper()

	usable, err := j.AddWall(gross, openings)
	if err != nil {
		t.Fatalf("AddWall(%v, %v) returned error: %v", gross, openings, err)
	}
	return usable
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		cases := map[string]float64{
			"2.5":   2.5,
			"2,5":   2.5,
			" 12 ":  12,
			"-1,25": -1.25,
			"0":     0,
		}
		for raw, want := range cases {
			got, err := ParseNumber(raw)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", raw, err)
			}
			if got != want {
				t.Fatalf("expected %v for %q, got %v", want, raw, got)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "1,2,3", "NaN", "Inf", "2.5m"} {
			if _, err := ParseNumber(raw); !errors.Is(err, ErrInvalidNumber) {
				t.Fatalf("expected ErrInvalidNumber for %q, got %v", raw, err)
			}
		}
	})
}

func TestParseWall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw          string
		wantGross    float64
		wantOpenings float64
	}{
		{raw: "12", wantGross: 12},
		{raw: "12,5", wantGross: 12.5},
		{raw: "2.5x4", wantGross: 10},
		{raw: "2,5X4", wantGross: 10},
		{raw: "2.5x4:1.2x1", wantGross: 10, wantOpenings: 1.2},
		{raw: "20 : 3,5", wantGross: 20, wantOpenings: 3.5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			gross, openings, err := ParseWall(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(gross-tc.wantGross) > 1e-9 || math.Abs(openings-tc.wantOpenings) > 1e-9 {
				t.Fatalf("expected %v:%v, got %v:%v", tc.wantGross, tc.wantOpenings, gross, openings)
			}
		})
	}
}

func TestParseWallRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := map[string]error{
		"":         ErrInvalidWall,
		"1:2:3":    ErrInvalidWall,
		"2x":       ErrInvalidWall,
		"2x3x4":    ErrInvalidWall,
		"12:":      ErrInvalidWall,
		"abc":      ErrInvalidNumber,
		"-3":       ErrNegativeValue,
		"2x-1":     ErrNegativeValue,
		"10:-1x1":  ErrNegativeValue,
		"2.5xfour": ErrInvalidNumber,
	}

	for raw, wantErr := range tests {
		raw, wantErr := raw, wantErr
		t.Run(raw, func(t *testing.T) {
			if _, _, err := ParseWall(raw); !errors.Is(err, wantErr) {
				t.Fatalf("expected %v for %q, got %v", wantErr, raw, err)
			}
		})
	}
}
