package elementary

import (
	"strconv"

	"eca/internal/core"
)

// Parameters describes the settings for presentation.
func (s Settings) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Value: strconv.Itoa(int(s.Rule))},
				{Key: "table", Label: "Table", Type: core.ParamTypeString, Value: s.Rule.Table()},
				{Key: "edges", Label: "Edges", Type: core.ParamTypeString, Value: s.Edges.String()},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "generations", Label: "Generations", Type: core.ParamTypeInt, Value: strconv.Itoa(s.Generations)},
				{Key: "delay", Label: "Delay", Type: core.ParamTypeDuration, Value: s.Delay.String()},
			},
		},
	}}
}
