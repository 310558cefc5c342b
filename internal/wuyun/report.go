package wuyun

import (
	"errors"
	"math"
)

// CycleLength is the period of the stem-branch cycle, and the longest run of
// consecutive years listed at once.
const CycleLength = 60

// ErrSpanOverflow is returned by Span when the last year would pass math.MaxInt.
var ErrSpanOverflow = errors.New("year span overflows int")

// ErrSpanLength is returned by Span for a count outside [1, CycleLength].
var ErrSpanLength = errors.New("span length out of range")

// Span validates count consecutive years starting at start and returns the
// last year of the run.
func Span(start, count int) (int, error) {
	if count < 1 || count > CycleLength {
		return 0, ErrSpanLength
	}
	if start > math.MaxInt-(count-1) {
		return 0, ErrSpanOverflow
	}
	return start + count - 1, nil
}

// Report is the display form of a profile for a specific year, shared by the
// JSON API, the HTML page and the CLI.
type Report struct {
	Year        int    `json:"year"`
	StemBranch  string `json:"stem_branch"`
	StemIndex   int    `json:"stem_index"`
	BranchIndex int    `json:"branch_index"`

	Element   string `json:"element"`
	ElementZH string `json:"element_zh"`
	Phase     string `json:"phase"`
	PhaseZH   string `json:"phase_zh"`

	Movement   string `json:"movement"`
	MovementZH string `json:"movement_zh"`

	GoverningQi       string `json:"governing_qi"`
	GoverningQiZH     string `json:"governing_qi_zh"`
	ComplementaryQi   string `json:"complementary_qi"`
	ComplementaryQiZH string `json:"complementary_qi_zh"`

	SpecialPatterns []string `json:"special_patterns"`
	Special         string   `json:"special"`
	SpecialZH       string   `json:"special_zh"`

	Advice Advice `json:"advice"`
}

// NewReport formats p, computed for year.
func NewReport(year int, p Profile) Report {
	patterns := make([]string, 0, 2)
	for _, pat := range p.Patterns.List() {
		patterns = append(patterns, pat.String())
	}

	return Report{
		Year:              year,
		StemBranch:        p.StemBranch,
		StemIndex:         p.StemIndex,
		BranchIndex:       p.BranchIndex,
		Element:           p.Element.String(),
		ElementZH:         p.Element.Chinese(),
		Phase:             p.Phase.String(),
		PhaseZH:           p.Phase.Chinese(),
		Movement:          p.Movement(),
		MovementZH:        p.MovementZH(),
		GoverningQi:       p.Governing.String(),
		GoverningQiZH:     p.Governing.Chinese(),
		ComplementaryQi:   p.Complementary.String(),
		ComplementaryQiZH: p.Complementary.Chinese(),
		SpecialPatterns:   patterns,
		Special:           p.SpecialPatterns(),
		SpecialZH:         p.SpecialPatternsZH(),
		Advice:            AdviceFor(p.Element),
	}
}
