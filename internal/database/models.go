package database

import "github.com/zapponejosh/wuyun-api/internal/wuyun"

// SeasonalStep is one row of the static six-step host-qi table.
type SeasonalStep struct {
	Step      int      `json:"step"`
	Name      string   `json:"name"`
	StartTerm string   `json:"start_term"`
	EndTerm   string   `json:"end_term"`
	MainQi    wuyun.Qi `json:"-"`
}

// Range formats the bounding solar terms, e.g. "立春-清明".
func (s SeasonalStep) Range() string {
	return s.StartTerm + "-" + s.EndTerm
}

// Label formats the step the way the reference table shows it,
// e.g. "初之气 (立春-清明)".
func (s SeasonalStep) Label() string {
	return s.Name + " (" + s.Range() + ")"
}
