package searcher

import (
	"math"

	"github.com/DChartrain-3dArtist/OthelloAi/game"
)

// FindBestMove runs a depth-bounded minimax search with alpha-beta pruning
// and returns the best move for rootSide, or false when rootSide has no legal
// move (the caller must pass). Ties keep the first-seen move, so the result
// is deterministic: moves are enumerated in row-major order.
func FindBestMove(b game.Board, rootSide game.Cell, depth int) (game.Move, bool) {
	moves := b.LegalMoves(rootSide)
	if len(moves) == 0 {
		return game.Move{}, false
	}

	best := moves[0]
	bestValue := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, mv := range moves {
		next, _, ok, err := b.Apply(mv, rootSide)
		if err != nil || !ok {
			// LegalMoves only yields applicable moves.
			continue
		}
		value := alphabeta(next, rootSide.Opponent(), rootSide, depth-1, alpha, beta)
		if value > bestValue {
			bestValue = value
			best = mv
		}
		if value > alpha {
			alpha = value
		}
	}
	return best, true
}

// alphabeta evaluates a node keyed to rootSide: nodes where toMove equals
// rootSide maximize, the rest minimize. A forced pass recurses at the same
// depth - passing consumes no depth budget. Depth <= 0 and terminal positions
// are both leaves.
func alphabeta(b game.Board, toMove, rootSide game.Cell, depth int, alpha, beta float64) float64 {
	if depth <= 0 || b.Terminal() {
		return game.Evaluate(b, rootSide)
	}

	moves := b.LegalMoves(toMove)
	if len(moves) == 0 {
		// Not terminal, so the opponent must have a move: forced pass.
		return alphabeta(b, toMove.Opponent(), rootSide, depth, alpha, beta)
	}

	if toMove == rootSide {
		value := math.Inf(-1)
		for _, mv := range moves {
			next, _, _, _ := b.Apply(mv, toMove)
			child := alphabeta(next, toMove.Opponent(), rootSide, depth-1, alpha, beta)
			if child > value {
				value = child
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, mv := range moves {
		next, _, _, _ := b.Apply(mv, toMove)
		child := alphabeta(next, toMove.Opponent(), rootSide, depth-1, alpha, beta)
		if child < value {
			value = child
		}
		if value < beta {
			beta = value
		}
		if alpha >= beta {
			break
		}
	}
	return value
}
