package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestDetLU_AgreesWithCofactor cross-checks the opt-in LU kernel against the
// default expansion on random inputs.
func TestDetLU_AgreesWithCofactor(t *testing.T) {
	for n := 1; n <= 7; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandFilledDense(t, n, n, int64(100+n))

			cof, err := a.Det()
			require.NoError(t, err)
			lu, err := a.DetLU()
			require.NoError(t, err)
			require.InDelta(t, cof, lu, 1e-9)

			viaOpt, err := a.DetWith(matrix.WithDetAlgorithm(matrix.DetLU))
			require.NoError(t, err)
			require.Equal(t, lu, viaOpt)
		})
	}
}

// TestDetLU_MatchesGonumDirect pins DetLU to gonum's own answer on the same data.
func TestDetLU_MatchesGonumDirect(t *testing.T) {
	a := SeqDense(t, 3, 3)
	var flat []float64
	for _, row := range a.ToRows() {
		flat = append(flat, row...)
	}

	want := mat.Det(mat.NewDense(3, 3, flat))
	got, err := a.DetLU()
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.InDelta(t, -1.0, got, 1e-12)
}

// TestDetLU_DoesNotAliasStorage ensures the gonum copy leaves the receiver intact.
func TestDetLU_DoesNotAliasStorage(t *testing.T) {
	a := RandFilledDense(t, 4, 4, 3)
	before := a.Clone()

	_, err := a.DetLU()
	require.NoError(t, err)
	CompareExact(t, before.ToRows(), a)
}

func TestDetLU_NonSquare(t *testing.T) {
	_, err := MustDense(t, 2, 3).DetLU()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.NewEmpty().DetWith(matrix.WithDetAlgorithm(matrix.DetLU))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
