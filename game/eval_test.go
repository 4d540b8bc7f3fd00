package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateStartPosition(t *testing.T) {
	b, err := NewBoard(8)
	require.NoError(t, err)

	require.Zero(t, Evaluate(b, Black), "the start position is balanced for Black")
	require.Zero(t, Evaluate(b, White), "the start position is balanced for White")
}

func TestEvaluateIsPure(t *testing.T) {
	b, err := NewBoard(8)
	require.NoError(t, err)
	next, _, ok, err := b.Apply(Move{2, 4}, Black)
	require.NoError(t, err)
	require.True(t, ok)

	for _, perspective := range []Cell{Black, White} {
		first := Evaluate(next, perspective)
		second := Evaluate(next, perspective)
		require.Equal(t, first, second, "evaluation must be deterministic for %s", perspective)
	}
}

func TestEvaluateCorner(t *testing.T) {
	b := boardFrom(t, []string{
		"B.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})
	// One Black corner: (50/30)*30 corner + 2*1 material, no mobility for
	// either side on a one-disc board.
	require.InDelta(t, 52.0, Evaluate(b, Black), 1e-9)
	require.InDelta(t, -52.0, Evaluate(b, White), 1e-9)
}

func TestEvaluateEdge(t *testing.T) {
	b := boardFrom(t, []string{
		"...B....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})
	// One Black edge disc: 5*4 edge + 2*1 material.
	require.InDelta(t, 22.0, Evaluate(b, Black), 1e-9)
}

func TestEvaluateXSquare(t *testing.T) {
	b := boardFrom(t, []string{
		"........",
		".B......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})
	// Occupying an X-square costs its owner: 2*1 material - 8 penalty.
	require.InDelta(t, -6.0, Evaluate(b, Black), 1e-9)
	// And rewards the opponent's perspective.
	require.InDelta(t, 6.0, Evaluate(b, White), 1e-9)
}

func TestEvaluateEndgameFactor(t *testing.T) {
	// 5 empty cells: the material term doubles.
	b := boardFrom(t, []string{
		"BBBB",
		"BBBB",
		"BBB.",
		"....",
	})
	// edge 5*(5*4) + corner (50/30)*(2*30) + material 2*2*11 + X 4*(-8),
	// no mobility on a one-color board.
	want := 100.0 + (50.0/30.0)*60.0 + 44.0 - 32.0
	require.InDelta(t, want, Evaluate(b, Black), 1e-9)
}

func TestEvaluateMobility(t *testing.T) {
	// White has the only legal move, Black none.
	b := boardFrom(t, []string{
		"WB..",
		"....",
		"....",
		"....",
	})
	require.Empty(t, b.LegalMoves(Black))
	require.Len(t, b.LegalMoves(White), 1)

	// From Black's perspective: mobility 10*(0-1), material 0, one Black
	// edge disc 5*4, one White corner -(50/30)*30.
	want := -10.0 + 20.0 - (50.0 / 30.0 * 30.0)
	require.InDelta(t, want, Evaluate(b, Black), 1e-9)
}
