package serialize

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/tomsch420/random-events/interval"
)

// simpleDTO is the wire form of one interval.Simple atom.
type simpleDTO struct {
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
	LowerBound string  `json:"lower_bound"`
	UpperBound string  `json:"upper_bound"`
}

// intervalSetDTO is the wire form of an interval.Set.
type intervalSetDTO struct {
	Atoms []simpleDTO `json:"atoms"`
}

func boundToString(b interval.Bound) string {
	if b == interval.Closed {
		return "closed"
	}

	return "open"
}

func boundFromString(s string) interval.Bound {
	if s == "closed" {
		return interval.Closed
	}

	return interval.Open
}

// IntervalSetToJSON marshals an interval.Set to its canonical JSON form.
func IntervalSetToJSON(s *interval.Set) ([]byte, error) {
	dto := intervalSetDTO{}
	for _, raw := range s.Simples() {
		simple := raw.(interval.Simple)
		dto.Atoms = append(dto.Atoms, simpleDTO{
			Lower:      simple.Lower,
			Upper:      simple.Upper,
			LowerBound: boundToString(simple.LowerBound),
			UpperBound: boundToString(simple.UpperBound),
		})
	}

	data, err := json.Marshal(dto)

	return data, errors.Wrap(err, "serialize: marshaling interval.Set")
}

// IntervalSetFromJSON reconstructs an interval.Set from bytes produced
// by IntervalSetToJSON. The result is re-disjointified and re-simplified
// by interval.NewSet, so an already-canonical input round-trips exactly.
func IntervalSetFromJSON(data []byte) (*interval.Set, error) {
	var dto intervalSetDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, errors.Wrap(err, "serialize: unmarshaling interval.Set")
	}

	simples := make([]interval.Simple, 0, len(dto.Atoms))
	for _, a := range dto.Atoms {
		simples = append(simples, interval.NewSimple(a.Lower, a.Upper, boundFromString(a.LowerBound), boundFromString(a.UpperBound)))
	}

	return interval.NewSet(simples...), nil
}
