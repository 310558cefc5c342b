package wuyun

import (
	"errors"
	"math"
	"testing"
)

func TestSpan(t *testing.T) {
	tests := []struct {
		name         string
		start, count int
		last         int
		err          error
	}{
		{"one year", 2024, 1, 2024, nil},
		{"full cycle", 1984, CycleLength, 2043, nil},
		{"negative start", -10, 12, 1, nil},
		{"ends at MaxInt", math.MaxInt - 1, 2, math.MaxInt, nil},
		{"starts at MinInt", math.MinInt, 3, math.MinInt + 2, nil},
		{"past MaxInt", math.MaxInt, 2, 0, ErrSpanOverflow},
		{"zero count", 2024, 0, 0, ErrSpanLength},
		{"too long", 2024, CycleLength + 1, 0, ErrSpanLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last, err := Span(tt.start, tt.count)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Span(%d, %d) error = %v, want %v", tt.start, tt.count, err, tt.err)
			}
			if err == nil && last != tt.last {
				t.Errorf("Span(%d, %d) = %d, want %d", tt.start, tt.count, last, tt.last)
			}
		})
	}
}

func TestNewReport(t *testing.T) {
	r := NewReport(2026, Compute(2026))

	if r.Year != 2026 || r.StemBranch != "丙午" {
		t.Errorf("report = %d %s, want 2026 丙午", r.Year, r.StemBranch)
	}
	if r.MovementZH != "水运太过" || r.GoverningQiZH != "少阴君火" || r.ComplementaryQiZH != "阳明燥金" {
		t.Errorf("report = %s / %s / %s", r.MovementZH, r.GoverningQiZH, r.ComplementaryQiZH)
	}
	if len(r.SpecialPatterns) != 1 || r.SpecialPatterns[0] != "Year-Meeting" || r.SpecialZH != "岁会" {
		t.Errorf("patterns = %v %q, want [Year-Meeting] 岁会", r.SpecialPatterns, r.SpecialZH)
	}
	if r.Advice != AdviceFor(Water) {
		t.Errorf("advice = %+v, want Water advice", r.Advice)
	}
}

func TestNewReport_BalancedYearHasEmptyPatterns(t *testing.T) {
	r := NewReport(2024, Compute(2024))

	if r.SpecialPatterns == nil || len(r.SpecialPatterns) != 0 {
		t.Errorf("SpecialPatterns = %#v, want empty non-nil slice", r.SpecialPatterns)
	}
	if r.Special != BalancedYear || r.SpecialZH != BalancedYearZH {
		t.Errorf("special = %q / %q", r.Special, r.SpecialZH)
	}
}
