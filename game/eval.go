package game

// Heuristic weights. Corners dominate because they can never be recaptured;
// X-squares are penalized because occupying one early typically surrenders
// the adjacent corner.
const (
	mobilityWeight = 10.0
	edgeWeight     = 5.0
	cornerWeight   = 50.0 / 30.0
	materialWeight = 2.0

	cornerValue = 30
	edgeValue   = 4
	xValue      = 8

	// Material counts double once the board is nearly full.
	endgameEmpties = 12
	endgameFactor  = 2.0
)

// Evaluate scores a board from one side's perspective: positive favors
// perspective, negative favors the opponent. The function is pure - the same
// (board, perspective) pair always evaluates to the same value. Note that
// the weighting is not antisymmetric between the two sides, so the
// perspective must always be passed explicitly.
func Evaluate(b Board, perspective Cell) float64 {
	n := b.Size()
	last := n - 1

	pieceDiff := 0
	cornerScore := 0
	edgeScore := 0
	xScore := 0
	empties := 0

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cell := b.At(row, col)
			if cell == Empty {
				empties++
				continue
			}
			sign := 1
			if cell != perspective {
				sign = -1
			}
			pieceDiff += sign

			isRowEdge := row == 0 || row == last
			isColEdge := col == 0 || col == last
			switch {
			case isRowEdge && isColEdge:
				cornerScore += sign * cornerValue
			case isRowEdge || isColEdge:
				edgeScore += sign * edgeValue
			}
			if (row == 1 || row == last-1) && (col == 1 || col == last-1) {
				xScore -= sign * xValue
			}
		}
	}

	mobility := len(b.LegalMoves(perspective)) - len(b.LegalMoves(perspective.Opponent()))

	endgame := 1.0
	if empties <= endgameEmpties {
		endgame = endgameFactor
	}

	return mobilityWeight*float64(mobility) +
		edgeWeight*float64(edgeScore) +
		cornerWeight*float64(cornerScore) +
		materialWeight*endgame*float64(pieceDiff) +
		float64(xScore)
}
