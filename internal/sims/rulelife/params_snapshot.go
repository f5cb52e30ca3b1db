package rulelife

import (
	"strconv"

	"rulelife/internal/core"
)

// Parameters describes the world for HUDs and status lines.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.size.W),
				intParam("h", "Height", w.size.H),
				stringParam("boundary", "Boundary", w.boundary.String()),
				stringParam("storage", "Storage", w.cfg.Storage.String()),
				stringParam("strategy", "Strategy", w.strategy.String()),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				stringParam("rule", "Rule", w.rule.String()),
				intParam("rule_bits", "Rule bits", w.rule.BitLen()),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", w.generation),
				intParam("population", "Population", w.cur.Len()),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: v}
}
