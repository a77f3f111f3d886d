package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/tomsch420/random-events/interval"
	"github.com/tomsch420/random-events/sets"
	"github.com/tomsch420/random-events/symbolic"
	"github.com/tomsch420/random-events/variable"
)

// variableDTO is the wire form of a variable.Variable. Domain is kept as
// raw JSON because its shape depends on Kind: an interval.Set payload
// for Integer/Continuous, a symbolic.Set payload for Symbolic.
type variableDTO struct {
	Name   string          `json:"name"`
	Kind   string          `json:"kind"`
	Domain json.RawMessage `json:"domain"`
}

// compositeToJSON marshals any sets.CompositeSet by its concrete kind.
// Returns an error for kinds this package doesn't know how to serialize.
func compositeToJSON(domain sets.CompositeSet) ([]byte, error) {
	switch d := domain.(type) {
	case *interval.Set:
		return IntervalSetToJSON(d)
	case *symbolic.Set:
		return SymbolicSetToJSON(d)
	default:
		return nil, fmt.Errorf("serialize: unsupported composite kind %q", domain.Kind())
	}
}

// VariableToJSON marshals a variable.Variable, including its domain.
func VariableToJSON(v *variable.Variable) ([]byte, error) {
	domainJSON, err := compositeToJSON(v.Domain)
	if err != nil {
		return nil, errors.Wrapf(err, "serialize: marshaling domain of variable %q", v.Name)
	}

	data, err := json.Marshal(variableDTO{Name: v.Name, Kind: v.Kind.String(), Domain: domainJSON})

	return data, errors.Wrapf(err, "serialize: marshaling variable %q", v.Name)
}

// VariableFromJSON reconstructs a variable.Variable from bytes produced
// by VariableToJSON.
func VariableFromJSON(data []byte) (*variable.Variable, error) {
	var dto variableDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, errors.Wrap(err, "serialize: unmarshaling variable")
	}

	switch dto.Kind {
	case "symbolic":
		set, _, err := SymbolicSetFromJSON(dto.Domain)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize: rebuilding domain of variable %q", dto.Name)
		}

		return variable.Symbolic(dto.Name, set), nil
	case "integer":
		set, err := IntervalSetFromJSON(dto.Domain)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize: rebuilding domain of variable %q", dto.Name)
		}

		return variable.Integer(dto.Name, variable.WithDomain(set)), nil
	case "continuous":
		set, err := IntervalSetFromJSON(dto.Domain)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize: rebuilding domain of variable %q", dto.Name)
		}

		return variable.Continuous(dto.Name, variable.WithDomain(set)), nil
	default:
		return nil, fmt.Errorf("serialize: unknown variable kind %q", dto.Kind)
	}
}
