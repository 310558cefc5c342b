package api

import (
	"github.com/zapponejosh/wuyun-api/internal/database"
	"github.com/zapponejosh/wuyun-api/internal/wuyun"
)

// ProfileResponse is the JSON shape of one annual profile.
type ProfileResponse = wuyun.Report

// CycleResponse lists consecutive profiles.
type CycleResponse struct {
	Start    int               `json:"start"`
	Count    int               `json:"count"`
	Profiles []ProfileResponse `json:"profiles"`
}

// SeasonalStepResponse is one row of the six-step reference table.
type SeasonalStepResponse struct {
	Step     int    `json:"step"`
	Name     string `json:"name"`
	Range    string `json:"range"`
	Label    string `json:"label"`
	MainQi   string `json:"main_qi"`
	MainQiZH string `json:"main_qi_zh"`
}

func newSeasonalStepResponse(s database.SeasonalStep) SeasonalStepResponse {
	return SeasonalStepResponse{
		Step:     s.Step,
		Name:     s.Name,
		Range:    s.Range(),
		Label:    s.Label(),
		MainQi:   s.MainQi.String(),
		MainQiZH: s.MainQi.Chinese(),
	}
}

func newSeasonalStepResponses(steps []database.SeasonalStep) []SeasonalStepResponse {
	out := make([]SeasonalStepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, newSeasonalStepResponse(s))
	}
	return out
}
