package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultSingularTol, o.SingularTol())
	require.Equal(t, matrix.DetCofactor, o.DetAlgorithm())
}

func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(
		matrix.WithEpsilon(1e-3),
		matrix.WithEpsilon(1e-5),
		matrix.WithDetAlgorithm(matrix.DetLU),
		matrix.WithSingularTol(0),
		nil, // ignored
	)
	require.Equal(t, 1e-5, o.Epsilon())
	require.Equal(t, 0.0, o.SingularTol())
	require.Equal(t, matrix.DetLU, o.DetAlgorithm())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithSingularTol(math.Inf(1)) })
	require.Panics(t, func() { matrix.WithDetAlgorithm(matrix.DetAlgorithm(42)) })
}

func TestDetAlgorithm_String(t *testing.T) {
	require.Equal(t, "cofactor", matrix.DetCofactor.String())
	require.Equal(t, "lu", matrix.DetLU.String())
	require.Equal(t, "unknown", matrix.DetAlgorithm(-1).String())
}
