package quadrature

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep_OrderAndValues(t *testing.T) {
	got, err := Sweep(context.Background(), square, 0, 1,
		[]Strategy{Trapezoidal{}, Simpson{}}, []int{10, 3, 2})
	require.NoError(t, err)

	want := []Estimate{
		{Strategy: "trapezoidal", N: 10, EffectiveN: 10, Value: 0.335},
		{Strategy: "trapezoidal", N: 3, EffectiveN: 3, Value: 0.351851851851852},
		{Strategy: "trapezoidal", N: 2, EffectiveN: 2, Value: 0.375},
		{Strategy: "simpson", N: 10, EffectiveN: 10, Value: 1.0 / 3},
		{Strategy: "simpson", N: 3, EffectiveN: 4, Value: 1.0 / 3},
		{Strategy: "simpson", N: 2, EffectiveN: 2, Value: 1.0 / 3},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("Sweep mismatch (-want +got):\n%s", diff)
	}
}

func TestSweep_MatchesDirectCalls(t *testing.T) {
	in := sine()
	strategies := []Strategy{Simpson{}, Trapezoidal{}}
	ns := []int{1, 5, 8}
	got, err := Sweep(context.Background(), in.F, in.A, in.B, strategies, ns)
	require.NoError(t, err)
	require.Len(t, got, 6)

	for i, e := range got {
		s := strategies[i/len(ns)]
		want, err := s.Integrate(in.F, in.A, in.B, ns[i%len(ns)])
		require.NoError(t, err)
		assert.Equal(t, want, e.Value)
		assert.Equal(t, s.Name(), e.Strategy)
	}
}

func TestSweep_InvalidPartition(t *testing.T) {
	_, err := Sweep(context.Background(), square, 0, 1, []Strategy{Simpson{}}, []int{4, 0})
	assert.ErrorIs(t, err, ErrInvalidPartition)
}

func TestSweep_NilStrategy(t *testing.T) {
	_, err := Sweep(context.Background(), square, 0, 1, []Strategy{Simpson{}, nil}, []int{4})
	assert.ErrorIs(t, err, ErrNoStrategy)
}

func TestSweep_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, square, 0, 1, []Strategy{Trapezoidal{}}, []int{1, 2, 3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweep_Empty(t *testing.T) {
	got, err := Sweep(context.Background(), square, 0, 1, nil, []int{1})
	require.NoError(t, err)
	assert.Empty(t, got)
}
