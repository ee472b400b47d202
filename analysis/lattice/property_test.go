package lattice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleParities returns every element of the parity lattice.
func sampleParities() []Element {
	return []Element{even, odd, either}
}

// sampleIntervals draws a mix of canonical and random intervals.
func sampleIntervals(r *rand.Rand, n int) []Element {
	lat := Create().Lattice().Interval()
	mk := Create().Element().Interval

	samples := []Element{lat.Bot(), lat.Top()}
	for i := 0; i < n; i++ {
		low := r.Intn(16)
		if r.Intn(4) == 0 {
			samples = append(samples, mk(low, PlusInfinity{}))
		} else {
			samples = append(samples, mk(low, FiniteBound(low+r.Intn(16))))
		}
	}
	return samples
}

func checkPartialOrder(t *testing.T, samples []Element) {
	t.Helper()

	for _, x := range samples {
		require.Truef(t, x.Leq(x), "⊑ not reflexive at %s", x)
	}

	for _, x := range samples {
		for _, y := range samples {
			if x.Leq(y) && y.Leq(x) {
				require.Truef(t, x.Eq(y), "%s and %s mutually ⊑ but not equal", x, y)
			}
			for _, z := range samples {
				if x.Leq(y) && y.Leq(z) {
					require.Truef(t, x.Leq(z),
						"⊑ not transitive: %s ⊑ %s ⊑ %s", x, y, z)
				}
			}
		}
	}
}

func checkJoinLaws(t *testing.T, samples []Element) {
	t.Helper()

	for _, x := range samples {
		require.Truef(t, x.Join(x).Eq(x), "⊔ not idempotent at %s", x)
	}

	for _, x := range samples {
		for _, y := range samples {
			j := x.Join(y)
			require.Truef(t, x.Leq(j), "%s ⋢ %s ⊔ %s", x, x, y)
			require.Truef(t, y.Leq(j), "%s ⋢ %s ⊔ %s", y, x, y)
			require.Truef(t, j.Eq(y.Join(x)), "⊔ not commutative at %s, %s", x, y)
		}
	}
}

// checkJoinMonotone verifies x ⊑ x' ∧ y ⊑ y' ⟹ x ⊔ y ⊑ x' ⊔ y'.
func checkJoinMonotone(t *testing.T, samples []Element) {
	t.Helper()

	for _, x := range samples {
		for _, x1 := range samples {
			if !x.Leq(x1) {
				continue
			}
			for _, y := range samples {
				for _, y1 := range samples {
					if !y.Leq(y1) {
						continue
					}
					require.Truef(t, x.Join(y).Leq(x1.Join(y1)),
						"⊔ not monotone: (%s ⊔ %s) ⋢ (%s ⊔ %s)", x, y, x1, y1)
				}
			}
		}
	}
}

func TestParityLatticeLaws(t *testing.T) {
	samples := sampleParities()
	checkPartialOrder(t, samples)
	checkJoinLaws(t, samples)
	checkJoinMonotone(t, samples)
}

func TestIntervalLatticeLaws(t *testing.T) {
	samples := sampleIntervals(rand.New(rand.NewSource(1)), 14)
	checkPartialOrder(t, samples)
	checkJoinLaws(t, samples)
	checkJoinMonotone(t, samples)
}

// Widening must still be an upper bound of its operands, even though it
// overshoots the join.
func TestWidenUpperBound(t *testing.T) {
	lat := Create().Lattice().Interval()
	samples := sampleIntervals(rand.New(rand.NewSource(2)), 14)

	for _, x := range samples {
		for _, y := range samples {
			if x.Interval().IsImpossible() || y.Interval().IsImpossible() {
				continue
			}
			w := lat.Widen(x, y)
			require.Truef(t, x.Leq(w) && y.Leq(w),
				"%s ∇ %s = %s is not an upper bound", x, y, w)
			require.Truef(t, x.Join(y).Leq(w),
				"%s ∇ %s = %s undershoots the join", x, y, w)
		}
	}
}

func TestEnvPartialOrder(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	parities := sampleParities()

	samples := []Element{}
	for i := 0; i < 20; i++ {
		bindings := map[string]Element{}
		for _, x := range []string{"a", "b", "c"} {
			if r.Intn(3) > 0 {
				bindings[x] = parities[r.Intn(len(parities))]
			}
		}
		samples = append(samples, parityEnv(bindings))
	}

	checkPartialOrder(t, samples)
}

// The join laws hold for environments over a fixed variable set. They
// deliberately do not hold across differing key sets, where the merge
// drops one-sided variables instead of producing an upper bound.
func TestEnvJoinLawsUniformKeys(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	parities := sampleParities()

	samples := []Element{}
	for i := 0; i < 12; i++ {
		bindings := map[string]Element{}
		for _, x := range []string{"a", "b"} {
			bindings[x] = parities[r.Intn(len(parities))]
		}
		samples = append(samples, parityEnv(bindings))
	}

	checkJoinLaws(t, samples)
}
