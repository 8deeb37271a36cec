package zing

import (
	"strconv"

	"zing/internal/core"
)

const paramSpeed = "speed_ms"

// Parameters reports the world settings and the running statistics.
func (s *Sim) Parameters() core.ParameterSnapshot {
	deaths := s.grid.Deaths()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.seed),
				intParam(paramSpeed, "Speed (ms)", s.cfg.SpeedMS),
				boolParam("random", "Random start", s.cfg.Random),
				intParam("workers", "Workers", s.cfg.Workers),
			},
		},
		{
			Name: "Deaths",
			Params: []core.Parameter{
				intParam("deaths_fire", "Fire", deaths.Fire),
				intParam("deaths_sickness", "Sickness", deaths.Sickness),
				intParam("deaths_drowning", "Drowning", deaths.Drowning),
			},
			Summary: "total " + strconv.Itoa(deaths.Total()),
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", s.generation),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramSpeed, Label: "Speed (ms)", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true, Max: 2000, HasMax: true},
	}
}

// SetIntParameter updates an adjustable integer parameter.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case paramSpeed:
		if value < 0 {
			value = 0
		}
		s.cfg.SpeedMS = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
