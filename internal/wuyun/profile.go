package wuyun

import "strings"

// cycleOffset aligns year 4 CE with the first pair of the sexagenary cycle (甲子).
const cycleOffset = 4

// PatternSet holds zero or more special patterns.
type PatternSet uint8

// Has reports whether p is in the set.
func (s PatternSet) Has(p Pattern) bool {
	return s&PatternSet(p) != 0
}

// Empty reports whether no pattern applies.
func (s PatternSet) Empty() bool {
	return s == 0
}

// List returns the patterns in display order.
func (s PatternSet) List() []Pattern {
	out := make([]Pattern, 0, len(allPatterns))
	for _, p := range allPatterns {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Profile is the computed annual profile. It does not record the year it was
// computed from, so two years sixty apart yield equal values.
type Profile struct {
	StemBranch    string
	StemIndex     int
	BranchIndex   int
	Element       Element
	Phase         Phase
	Governing     Qi
	Complementary Qi
	Patterns      PatternSet
}

// Compute returns the profile of year. It is defined for every integer,
// including zero and negative years.
func Compute(year int) Profile {
	// Reduce first so the offset never overflows near math.MinInt.
	stem := mod(mod(year, len(Stems))-cycleOffset, len(Stems))
	branch := mod(mod(year, len(Branches))-cycleOffset, len(Branches))
	pair := Stems[stem] + Branches[branch]

	phase := Excess
	if stem%2 != 0 {
		phase = Deficient
	}

	governing := Qi(branch % QiCount)

	var patterns PatternSet
	if heavenMatchingPairs[pair] {
		patterns |= PatternSet(HeavenMatching)
	}
	if yearMeetingPairs[pair] {
		patterns |= PatternSet(YearMeeting)
	}

	return Profile{
		StemBranch:    pair,
		StemIndex:     stem,
		BranchIndex:   branch,
		Element:       Element(stem % ElementCount),
		Phase:         phase,
		Governing:     governing,
		Complementary: governing.Opposite(),
		Patterns:      patterns,
	}
}

// Movement formats the annual movement, e.g. "Earth movement, Excess".
func (p Profile) Movement() string {
	return p.Element.String() + " movement, " + p.Phase.String()
}

// MovementZH formats the annual movement in Chinese, e.g. "土运太过".
func (p Profile) MovementZH() string {
	return p.Element.Chinese() + "运" + p.Phase.Chinese()
}

// SpecialPatterns returns the pattern tags joined by ", ", or BalancedYear.
func (p Profile) SpecialPatterns() string {
	if p.Patterns.Empty() {
		return BalancedYear
	}
	var names []string
	for _, pat := range p.Patterns.List() {
		names = append(names, pat.String())
	}
	return strings.Join(names, ", ")
}

// SpecialPatternsZH returns the Chinese tags joined by "、", or BalancedYearZH.
func (p Profile) SpecialPatternsZH() string {
	if p.Patterns.Empty() {
		return BalancedYearZH
	}
	var names []string
	for _, pat := range p.Patterns.List() {
		names = append(names, pat.Chinese())
	}
	return strings.Join(names, "、")
}

// mod returns a mod n in [0, n) for n > 0.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
