package swiss

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestSetMatchesReferenceMapModel runs randomized sequences of
// Insert/Erase/Contains and checks the set against a plain Go map acting
// as the reference model — the property-based analogue of spec.md §8's
// algebraic laws (idempotent insert, idempotent erase, post-condition
// membership).
func TestSetMatchesReferenceMapModel(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := NewSet[int]()
		model := map[int]bool{}

		ops := rapid.SliceOfN(rapid.IntRange(0, 40), 1, 300).Draw(rt, "keys")
		kinds := rapid.SliceOfN(rapid.IntRange(0, 2), len(ops), len(ops)).Draw(rt, "kinds")

		for i, key := range ops {
			switch kinds[i] {
			case 0: // insert
				wantNew := !model[key]
				got := s.Insert(key)
				require.Equal(rt, wantNew, got)
				model[key] = true
			case 1: // erase
				wantPresent := model[key]
				got := s.Erase(key)
				require.Equal(rt, wantPresent, got)
				delete(model, key)
			case 2: // contains
				require.Equal(rt, model[key], s.Contains(key))
			}
		}

		require.Equal(rt, len(model), s.Len())
		for k, present := range model {
			require.Equal(rt, present, s.Contains(k))
		}
		seen := map[int]bool{}
		for v := range s.All() {
			require.False(rt, seen[v], "duplicate element in iteration")
			require.True(rt, model[v], "iteration produced an element not in the model")
			seen[v] = true
		}
		require.Equal(rt, len(model), len(seen))
	})
}

// TestMapMatchesReferenceMapModel is TestSetMatchesReferenceMapModel's
// Map counterpart, additionally checking that InsertOrAssign always wins
// over a prior value.
func TestMapMatchesReferenceMapModel(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := NewMap[int, int]()
		model := map[int]int{}

		n := rapid.IntRange(1, 300).Draw(rt, "n")
		for i := 0; i < n; i++ {
			key := rapid.IntRange(0, 40).Draw(rt, "key")
			switch rapid.IntRange(0, 2).Draw(rt, "kind") {
			case 0:
				value := rapid.Int().Draw(rt, "value")
				m.InsertOrAssign(key, value)
				model[key] = value
			case 1:
				wantPresent := false
				if _, ok := model[key]; ok {
					wantPresent = true
				}
				got := m.Erase(key)
				require.Equal(rt, wantPresent, got)
				delete(model, key)
			case 2:
				want, wantOK := model[key]
				got, err := m.Get(key)
				if wantOK {
					require.NoError(rt, err)
					require.Equal(rt, want, got)
				} else {
					require.ErrorIs(rt, err, ErrNotFound)
				}
			}
		}

		require.Equal(rt, len(model), m.Len())
		for k, v := range m.All() {
			mv, ok := model[k]
			require.True(rt, ok)
			require.Equal(rt, mv, v)
		}
	})
}
