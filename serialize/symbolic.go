package serialize

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/tomsch420/random-events/symbolic"
)

// symbolicSetDTO is the wire form of a symbolic.Set: the universe is
// carried alongside the membership symbols so the Set can be
// reconstructed without an externally supplied Universe.
type symbolicSetDTO struct {
	Universe []string `json:"universe"`
	Symbols  []string `json:"symbols"`
}

// SymbolicSetToJSON marshals a symbolic.Set to its canonical JSON form.
func SymbolicSetToJSON(s *symbolic.Set) ([]byte, error) {
	dto := symbolicSetDTO{Universe: s.Universe().Symbols()}
	for _, raw := range s.Simples() {
		e := raw.(symbolic.Element)
		dto.Symbols = append(dto.Symbols, e.Symbol())
	}

	data, err := json.Marshal(dto)

	return data, errors.Wrap(err, "serialize: marshaling symbolic.Set")
}

// SymbolicSetFromJSON reconstructs a symbolic.Set, and the symbolic.Universe
// it is drawn from, from bytes produced by SymbolicSetToJSON.
func SymbolicSetFromJSON(data []byte) (*symbolic.Set, *symbolic.Universe, error) {
	var dto symbolicSetDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, nil, errors.Wrap(err, "serialize: unmarshaling symbolic.Set")
	}

	universe := symbolic.NewUniverse(dto.Universe...)

	elements := make([]symbolic.Element, 0, len(dto.Symbols))
	for _, sym := range dto.Symbols {
		elements = append(elements, symbolic.NewElement(universe, sym))
	}

	set, err := symbolic.NewSet(universe, elements...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "serialize: rebuilding symbolic.Set")
	}

	return set, universe, nil
}
