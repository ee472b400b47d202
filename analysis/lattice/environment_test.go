package lattice

import "testing"

func parityEnv(bindings map[string]Element) AbstractEnv {
	lat := Create().Lattice().AbstractEnv(Create().Lattice().Parity())
	return MakeAbstractEnv(lat)(bindings)
}

func TestAbstractEnvGetOrTop(t *testing.T) {
	env := parityEnv(map[string]Element{"a": even})

	if v := env.GetOrTop("a"); !v.Eq(even) {
		t.Errorf("a reads back as %s, expected %s", v, even)
	}
	if v := env.GetOrTop("untracked"); !v.Eq(either) {
		t.Errorf("untracked variable reads back as %s, expected ⊤", v)
	}
}

func TestAbstractEnvMonoJoin(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AbstractEnv
		expected AbstractEnv
	}{
		{
			"per-key join",
			parityEnv(map[string]Element{"a": even, "b": even}),
			parityEnv(map[string]Element{"a": even, "b": odd}),
			parityEnv(map[string]Element{"a": even, "b": either}),
		},
		{
			// A variable tracked on one side only is dropped: absence
			// already means ⊤ and ⊤ absorbs any join.
			"asymmetric keys",
			parityEnv(map[string]Element{"a": even, "b": even}),
			parityEnv(map[string]Element{"a": odd}),
			parityEnv(map[string]Element{"a": either}),
		},
		{
			"empty operand",
			parityEnv(map[string]Element{"a": even}),
			parityEnv(nil),
			parityEnv(nil),
		},
	}

	for _, test := range tests {
		res := test.a.MonoJoin(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s: %s ⊔ %s = %s, expected %s",
				test.name, test.a, test.b, res, test.expected)
		}
	}
}

func TestAbstractEnvLeq(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AbstractEnv
		expected bool
	}{
		{
			"reflexive",
			parityEnv(map[string]Element{"a": even}),
			parityEnv(map[string]Element{"a": even}),
			true,
		},
		{
			"value subsumption",
			parityEnv(map[string]Element{"a": even}),
			parityEnv(map[string]Element{"a": either}),
			true,
		},
		{
			"value refinement",
			parityEnv(map[string]Element{"a": either}),
			parityEnv(map[string]Element{"a": even}),
			false,
		},
		{
			// A fact about a variable the right side does not track is
			// new information, not subsumed.
			"missing key on the right",
			parityEnv(map[string]Element{"a": even, "b": odd}),
			parityEnv(map[string]Element{"a": even}),
			false,
		},
		{
			"missing key on the left",
			parityEnv(map[string]Element{"a": even}),
			parityEnv(map[string]Element{"a": even, "b": odd}),
			true,
		},
		{
			"empty is below everything",
			parityEnv(nil),
			parityEnv(map[string]Element{"a": even}),
			true,
		},
	}

	for _, test := range tests {
		if res := test.a.Leq(test.b); res != test.expected {
			t.Errorf("%s: %s ⊑ %s = %v, expected %v",
				test.name, test.a, test.b, res, test.expected)
		}
	}
}

func TestAbstractEnvWiden(t *testing.T) {
	intervals := Create().Lattice().Interval()
	lat := Create().Lattice().AbstractEnv(intervals)
	mk := MakeAbstractEnv(lat)
	int := Create().Element().IntervalFinite

	a := mk(map[string]Element{"x": int(7, 7), "y": int(1, 2)})
	b := mk(map[string]Element{"x": int(10, 10), "y": int(1, 2)})

	res := a.MonoWiden(b)
	x := res.GetOrTop("x").Interval()
	if x.Low() != 7 || !x.HighBound().IsInfinite() {
		t.Errorf("x widened to %s, expected [7, ∞]", x)
	}
	if y := res.GetOrTop("y"); !y.Eq(int(1, 2)) {
		t.Errorf("y widened to %s, expected [1, 2]", y)
	}
}

func TestAbstractEnvUpdateIsPersistent(t *testing.T) {
	env := parityEnv(map[string]Element{"a": even})
	updated := env.Update("a", odd)

	if v := env.GetOrTop("a"); !v.Eq(even) {
		t.Errorf("original environment changed: a = %s", v)
	}
	if v := updated.GetOrTop("a"); !v.Eq(odd) {
		t.Errorf("updated environment has a = %s, expected %s", v, odd)
	}
}
