package variable

import (
	"github.com/tomsch420/random-events/interval"
	"github.com/tomsch420/random-events/sets"
	"github.com/tomsch420/random-events/symbolic"
)

// Kind distinguishes the three variable flavors spec.md §4.4 defines.
type Kind uint8

const (
	// KindSymbolic variables range over a finite enumerated universe.
	KindSymbolic Kind = iota
	// KindInteger variables range over an interval domain, semantically
	// restricted to integers by convention rather than by a distinct
	// representation (see DESIGN.md Open Question 2).
	KindInteger
	// KindContinuous variables range over a full interval domain.
	KindContinuous
)

// String names the Kind for debugging and error messages.
func (k Kind) String() string {
	switch k {
	case KindSymbolic:
		return "symbolic"
	case KindInteger:
		return "integer"
	case KindContinuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// Variable is a typed, totally-ordered dimension identifier. Two
// Variables are equal iff their names are equal; they order
// lexicographically by name.
type Variable struct {
	Name   string
	Kind   Kind
	Domain sets.CompositeSet
}

// Option configures a Variable at construction time.
type Option func(*Variable)

// WithDomain overrides a variable's default full domain with a narrower
// one. The supplied domain's concrete kind must match the variable's
// Kind (symbolic.Set for KindSymbolic, *interval.Set otherwise); a
// mismatched domain is caught at first use by sets.ErrTypeMismatch, the
// same way mismatched CompositeSet operands are everywhere else in this
// module.
func WithDomain(domain sets.CompositeSet) Option {
	return func(v *Variable) { v.Domain = domain }
}

// Symbolic builds a Symbolic-kind Variable. domain is required since a
// symbolic variable's universe cannot be inferred.
func Symbolic(name string, domain *symbolic.Set) *Variable {
	return &Variable{Name: name, Kind: KindSymbolic, Domain: domain}
}

// Integer builds an Integer-kind Variable. By default its domain is
// (−∞,+∞); pass WithDomain to restrict it to a finite range.
func Integer(name string, opts ...Option) *Variable {
	v := &Variable{Name: name, Kind: KindInteger, Domain: interval.RealLine()}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Continuous builds a Continuous-kind Variable with default domain
// (−∞,+∞).
func Continuous(name string, opts ...Option) *Variable {
	v := &Variable{Name: name, Kind: KindContinuous, Domain: interval.RealLine()}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Less orders variables lexicographically by name.
func (v *Variable) Less(other *Variable) bool { return v.Name < other.Name }

// Equal reports whether two variables share the same name.
func (v *Variable) Equal(other *Variable) bool {
	if v == nil || other == nil {
		return v == other
	}

	return v.Name == other.Name
}

// EmptyDomain returns the empty composite of the variable's domain kind.
func (v *Variable) EmptyDomain() sets.CompositeSet {
	return v.Domain.FromSimples(nil)
}
