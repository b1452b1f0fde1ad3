package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form or enumerated parameters.
	ParamTypeString ParamType = "string"
	// ParamTypeDuration denotes time.Duration parameters.
	ParamTypeDuration ParamType = "duration"
)

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}
