package serialize

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/tomsch420/random-events/event"
	"github.com/tomsch420/random-events/sets"
	"github.com/tomsch420/random-events/variable"
)

// entryDTO pairs a serialized Variable with the atom it is constrained
// to within one SimpleEvent.
type entryDTO struct {
	Variable json.RawMessage `json:"variable"`
	Atom     json.RawMessage `json:"atom"`
}

type simpleEventDTO struct {
	Entries []entryDTO `json:"entries"`
}

type eventDTO struct {
	Simples []simpleEventDTO `json:"simples"`
}

// SimpleEventToJSON marshals a SimpleEvent as its explicitly constrained
// variable/atom pairs. Variables absent from the event (bound to their
// full domain) are not serialized, matching the in-memory convention.
func SimpleEventToJSON(se *event.SimpleEvent) ([]byte, error) {
	dto := simpleEventDTO{}

	for _, v := range se.Variables() {
		varJSON, err := VariableToJSON(v)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize: marshaling variable %q of simple event", v.Name)
		}

		atomJSON, err := compositeToJSON(se.Atom(v))
		if err != nil {
			return nil, errors.Wrapf(err, "serialize: marshaling atom for variable %q", v.Name)
		}

		dto.Entries = append(dto.Entries, entryDTO{Variable: varJSON, Atom: atomJSON})
	}

	data, err := json.Marshal(dto)

	return data, errors.Wrap(err, "serialize: marshaling simple event")
}

// SimpleEventFromJSON reconstructs a SimpleEvent from bytes produced by
// SimpleEventToJSON.
func SimpleEventFromJSON(data []byte) (*event.SimpleEvent, error) {
	var dto simpleEventDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, errors.Wrap(err, "serialize: unmarshaling simple event")
	}

	assignment := make(map[*variable.Variable]sets.CompositeSet, len(dto.Entries))

	for _, entry := range dto.Entries {
		v, err := VariableFromJSON(entry.Variable)
		if err != nil {
			return nil, errors.Wrap(err, "serialize: rebuilding variable of simple event")
		}

		atom, err := compositeFromJSON(v.Kind, entry.Atom)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize: rebuilding atom for variable %q", v.Name)
		}

		assignment[v] = atom
	}

	se, err := event.NewSimpleEvent(assignment)

	return se, errors.Wrap(err, "serialize: reconstructing simple event")
}

// compositeFromJSON reconstructs a sets.CompositeSet of the kind implied
// by a variable.Kind.
func compositeFromJSON(kind variable.Kind, data []byte) (sets.CompositeSet, error) {
	if kind == variable.KindSymbolic {
		set, _, err := SymbolicSetFromJSON(data)

		return set, err
	}

	return IntervalSetFromJSON(data)
}

// EventToJSON marshals a full Event as its canonical SimpleEvents.
func EventToJSON(ev *event.Event) ([]byte, error) {
	dto := eventDTO{}

	for i, se := range ev.Simples() {
		seJSON, err := SimpleEventToJSON(se)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize: marshaling simple event %d", i)
		}

		var seDTO simpleEventDTO
		if err := json.Unmarshal(seJSON, &seDTO); err != nil {
			return nil, errors.Wrapf(err, "serialize: re-decoding simple event %d", i)
		}

		dto.Simples = append(dto.Simples, seDTO)
	}

	data, err := json.Marshal(dto)

	return data, errors.Wrap(err, "serialize: marshaling event")
}

// EventFromJSON reconstructs an Event from bytes produced by
// EventToJSON. The result is re-disjointified by event.NewEvent, so an
// already-canonical input round-trips exactly.
func EventFromJSON(data []byte) (*event.Event, error) {
	var dto eventDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, errors.Wrap(err, "serialize: unmarshaling event")
	}

	simples := make([]*event.SimpleEvent, 0, len(dto.Simples))

	for i, seDTO := range dto.Simples {
		seJSON, err := json.Marshal(seDTO)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize: re-encoding simple event %d", i)
		}

		se, err := SimpleEventFromJSON(seJSON)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize: rebuilding simple event %d", i)
		}

		simples = append(simples, se)
	}

	ev2, err := event.NewEvent(simples)

	return ev2, errors.Wrap(err, "serialize: reconstructing event")
}
