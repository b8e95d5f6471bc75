package core

// Parameter describes a single value a simulation was configured with.
type Parameter struct {
	Key         string
	Label       string
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of parameters exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that can describe their setup.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
