package variable

import (
	"testing"

	"github.com/tomsch420/random-events/interval"
	"github.com/tomsch420/random-events/symbolic"
)

func TestEqualByNameNotPointer(t *testing.T) {
	a := Continuous("x")
	b := Continuous("x")

	if a == b {
		t.Fatalf("expected distinct pointers")
	}
	if !a.Equal(b) {
		t.Errorf("expected same-named variables to be Equal")
	}
}

func TestLessOrdersByName(t *testing.T) {
	a := Continuous("a")
	z := Continuous("z")

	if !a.Less(z) || z.Less(a) {
		t.Errorf("expected a < z by name")
	}
}

func TestIntegerAndContinuousDefaultToRealLine(t *testing.T) {
	i := Integer("n")
	c := Continuous("x")

	if i.Kind != KindInteger {
		t.Errorf("expected KindInteger, got %v", i.Kind)
	}
	if c.Kind != KindContinuous {
		t.Errorf("expected KindContinuous, got %v", c.Kind)
	}
	if !i.Domain.Equal(interval.RealLine()) {
		t.Errorf("expected default Integer domain to be the real line")
	}
	if !c.Domain.Equal(interval.RealLine()) {
		t.Errorf("expected default Continuous domain to be the real line")
	}
}

func TestWithDomainOverridesDefault(t *testing.T) {
	narrow := interval.NewSet(interval.ClosedInterval(0, 10))
	v := Continuous("x", WithDomain(narrow))

	if !v.Domain.Equal(narrow) {
		t.Errorf("expected WithDomain to override the default domain")
	}
}

func TestSymbolicRequiresExplicitDomain(t *testing.T) {
	universe := symbolic.NewUniverse("a", "b", "c")
	domain, err := symbolic.NewSet(universe, symbolic.NewElement(universe, "a"), symbolic.NewElement(universe, "b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := Symbolic("color", domain)
	if v.Kind != KindSymbolic {
		t.Errorf("expected KindSymbolic, got %v", v.Kind)
	}
	if v.Domain.Kind() != "symbolic" {
		t.Errorf("expected symbolic domain kind, got %q", v.Domain.Kind())
	}
}

func TestEmptyDomainMatchesVariableKind(t *testing.T) {
	v := Continuous("x", WithDomain(interval.NewSet(interval.ClosedInterval(0, 1))))

	empty := v.EmptyDomain()
	if !empty.IsEmpty() {
		t.Errorf("expected EmptyDomain to be empty")
	}
	if empty.Kind() != "interval" {
		t.Errorf("expected interval kind, got %q", empty.Kind())
	}
}
