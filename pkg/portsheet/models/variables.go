package models

// Variable is a named scalar that formulas may reference.
type Variable struct {
	// Name is the variable name.
	Name string `json:"-"`
	// Value is the scalar value.
	Value any `json:"value"`
	// Description is a free text description.
	Description string `json:"description"`
}

// VariableSet is an ordered collection of variables keyed by name.
type VariableSet struct {
	order []string
	vars  map[string]Variable
}

// NewVariableSet creates an empty variable set.
func NewVariableSet() *VariableSet {
	return &VariableSet{vars: make(map[string]Variable)}
}

// Set adds or replaces a variable, keeping the position of an existing name.
func (s *VariableSet) Set(name string, value any, description string) {
	if s.vars == nil {
		s.vars = make(map[string]Variable)
	}
	if _, ok := s.vars[name]; !ok {
		s.order = append(s.order, name)
	}
	s.vars[name] = Variable{Name: name, Value: value, Description: description}
}

// Get returns the variable with the given name.
func (s *VariableSet) Get(name string) (Variable, bool) {
	if s == nil {
		return Variable{}, false
	}
	v, ok := s.vars[name]
	return v, ok
}

// Empty reports whether the set has no variables.
func (s *VariableSet) Empty() bool {
	return s == nil || len(s.order) == 0
}

// Len returns the number of variables.
func (s *VariableSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// All returns the variables in insertion order.
func (s *VariableSet) All() []Variable {
	if s == nil {
		return nil
	}
	out := make([]Variable, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.vars[name])
	}
	return out
}
