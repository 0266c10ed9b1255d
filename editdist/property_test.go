package editdist_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/lvedit/editdist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classicLevenshtein is the textbook unit-cost reference.
func classicLevenshtein(a, b []byte) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// randomSeq draws a sequence over a small alphabet so ties are frequent.
func randomSeq(r *rand.Rand, maxLen int) []byte {
	n := r.Intn(maxLen + 1)
	s := make([]byte, n)
	for i := range s {
		s[i] = "abc"[r.Intn(3)]
	}
	return s
}

// dyadicModels use weights that add exactly in float64.
func dyadicModels(t *testing.T) []*editdist.CostModel {
	t.Helper()
	specs := [][3]float64{{1, 1, 1}, {2, 1, 5}, {0.5, 1.5, 0.75}, {1, 3, 2}, {0, 1, 1}}
	out := make([]*editdist.CostModel, 0, len(specs))
	for _, s := range specs {
		cm, err := editdist.NewCostModel(editdist.WithWeights(s[0], s[1], s[2]))
		require.NoError(t, err)
		out = append(out, cm)
	}
	return out
}

// TestProperty_UnitWeightsMatchClassic compares against the textbook algorithm.
func TestProperty_UnitWeightsMatchClassic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for k := 0; k < 300; k++ {
		a, b := randomSeq(r, 9), randomSeq(r, 9)
		d, err := editdist.Distance(a, b, nil)
		require.NoError(t, err)
		assert.Equal(t, float64(classicLevenshtein(a, b)), d, "%q vs %q", a, b)
	}
}

// TestProperty_SymmetricWhenDelEqualsIns checks distance(A,B)==distance(B,A).
func TestProperty_SymmetricWhenDelEqualsIns(t *testing.T) {
	cm, err := editdist.NewCostModel(editdist.WithWeights(1.5, 1.5, 2.25))
	require.NoError(t, err)
	r := rand.New(rand.NewSource(11))
	for k := 0; k < 300; k++ {
		a, b := randomSeq(r, 8), randomSeq(r, 8)
		ab, err := editdist.Distance(a, b, cm)
		require.NoError(t, err)
		ba, err := editdist.Distance(b, a, cm)
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "%q vs %q", a, b)
	}
}

// TestProperty_PipelineInvariants checks, for many random pairs and models:
//   - rolling Distance equals the full matrix corner;
//   - the path cost equals the distance;
//   - path length lies in [max(N,M), N+M];
//   - aligned sides have equal length and strip back to the inputs;
//   - MATCH positions hold equal elements, SUBSTITUTE positions differ.
func TestProperty_PipelineInvariants(t *testing.T) {
	const pad = '_'
	r := rand.New(rand.NewSource(2024))
	for _, cm := range dyadicModels(t) {
		for k := 0; k < 150; k++ {
			a, b := randomSeq(r, 10), randomSeq(r, 10)

			m, err := editdist.Build(a, b, cm)
			require.NoError(t, err)
			d, err := editdist.Distance(a, b, cm)
			require.NoError(t, err)
			require.Equal(t, m.Distance(), d, "%s: %q vs %q", cm, a, b)

			ops, err := editdist.Reconstruct(a, b, m, cm, editdist.NewRand(int64(k)))
			require.NoError(t, err)
			assert.Equal(t, d, editdist.PathCost(ops, cm), "%s: %q vs %q", cm, a, b)
			assert.GreaterOrEqual(t, len(ops), max(len(a), len(b)))
			assert.LessOrEqual(t, len(ops), len(a)+len(b))

			al, err := editdist.Align(a, b, ops, byte(pad))
			require.NoError(t, err)
			require.Len(t, al.Source, len(ops))
			require.Len(t, al.Target, len(ops))

			var gotA, gotB []byte
			for i, op := range al.Ops {
				if !al.SourcePadded(i) {
					gotA = append(gotA, al.Source[i])
				}
				if !al.TargetPadded(i) {
					gotB = append(gotB, al.Target[i])
				}
				switch op {
				case editdist.Match:
					assert.Equal(t, al.Source[i], al.Target[i])
				case editdist.Substitute:
					assert.NotEqual(t, al.Source[i], al.Target[i])
				}
			}
			assert.Equal(t, string(a), string(gotA))
			assert.Equal(t, string(b), string(gotB))
		}
	}
}

// TestProperty_AllOptimalPathsReachable enumerates seeds on a pair with many
// optimal paths and checks every sampled path is optimal and several differ.
func TestProperty_AllOptimalPathsReachable(t *testing.T) {
	a, b := []byte("abab"), []byte("baba")
	cm := editdist.DefaultCostModel()
	d, err := editdist.Distance(a, b, cm)
	require.NoError(t, err)

	seen := map[string]struct{}{}
	for seed := int64(1); seed <= 200; seed++ {
		ops, err := editdist.ManipulationSequence(a, b, cm, editdist.NewRand(seed))
		require.NoError(t, err)
		require.Equal(t, d, editdist.PathCost(ops, cm))
		key := ""
		for _, s := range editdist.Strings(ops) {
			key += s
		}
		seen[key] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "tie-breaking should explore distinct optimal paths")
}

// TestLockedRand_SharedAcrossGoroutines exercises the synchronized source.
func TestLockedRand_SharedAcrossGoroutines(t *testing.T) {
	shared := editdist.NewLockedRand(nil)
	cm := editdist.DefaultCostModel()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				ops, err := editdist.ManipulationSequence([]rune("sunday"), []rune("saturday"), cm, shared)
				assert.NoError(t, err)
				assert.Equal(t, 3.0, editdist.PathCost(ops, cm))
			}
		}()
	}
	wg.Wait()
}

// TestDeriveRand_Deterministic checks stream derivation is a pure function.
func TestDeriveRand_Deterministic(t *testing.T) {
	a := editdist.DeriveRand(5, 3)
	b := editdist.DeriveRand(5, 3)
	c := editdist.DeriveRand(5, 4)
	x, y, z := a.Float64(), b.Float64(), c.Float64()
	assert.Equal(t, x, y)
	assert.NotEqual(t, x, z)

	assert.Equal(t, editdist.NewRand(0).Int63(), editdist.NewRand(editdist.DefaultSeed).Int63())
	assert.NotEqual(t, editdist.DeriveSeed(1, 0), editdist.DeriveSeed(1, 1))
}
