package searcher

import (
	"sort"

	"golang.org/x/exp/rand"

	"github.com/DChartrain-3dArtist/OthelloAi/game"
)

// Difficulty names one of the four playing-strength tiers.
type Difficulty int

const (
	Facile Difficulty = iota
	Moyen
	Difficile
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Facile:
		return "facile"
	case Moyen:
		return "moyen"
	case Difficile:
		return "difficile"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// Profile holds the search depth and randomization probability of a tier.
type Profile struct {
	Depth      int
	RandomProb float64
}

func (d Difficulty) Profile() Profile {
	switch d {
	case Facile:
		return Profile{Depth: 1, RandomProb: 0.90}
	case Moyen:
		return Profile{Depth: 2, RandomProb: 0.30}
	case Difficile:
		return Profile{Depth: 3, RandomProb: 0.08}
	case Expert:
		return Profile{Depth: 5, RandomProb: 0.0}
	default:
		return Profile{Depth: 1, RandomProb: 1.0}
	}
}

// Moyen's non-random branch plays greedily most of the time and only
// occasionally spends a full search.
const moyenGreedyProb = 0.80

// Difficile's random branch samples among the strongest few moves instead of
// the whole move list.
const topSampleSize = 3

// ChooseMove picks a move for side according to the difficulty tier. It
// returns false when side has no legal move, which the caller must read as a
// forced pass, not a failure. All randomness comes from rng, so a seeded
// source makes every tier reproducible.
func ChooseMove(b game.Board, side game.Cell, difficulty Difficulty, rng *rand.Rand) (game.Move, bool) {
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	profile := difficulty.Profile()

	switch difficulty {
	case Facile:
		if rng.Float64() < profile.RandomProb {
			return moves[rng.Intn(len(moves))], true
		}
		return greedyMove(b, side, moves), true

	case Moyen:
		if rng.Float64() < profile.RandomProb {
			return moves[rng.Intn(len(moves))], true
		}
		// Independent second draw: mostly greedy, sometimes a real search.
		if rng.Float64() < moyenGreedyProb {
			return greedyMove(b, side, moves), true
		}
		return FindBestMove(b, side, profile.Depth)

	case Difficile:
		if rng.Float64() < profile.RandomProb {
			return topSample(b, side, moves, rng), true
		}
		return FindBestMove(b, side, profile.Depth)

	default: // Expert: RandomProb is 0, the search always decides.
		return FindBestMove(b, side, profile.Depth)
	}
}

// greedyMove picks the move with the largest immediate capture count, ties
// broken by enumeration order.
func greedyMove(b game.Board, side game.Cell, moves []game.Move) game.Move {
	best := moves[0]
	bestCaptures := -1
	for _, mv := range moves {
		captured, err := b.Captures(mv, side)
		if err != nil {
			continue
		}
		if len(captured) > bestCaptures {
			bestCaptures = len(captured)
			best = mv
		}
	}
	return best
}

// topSample evaluates each move by the static score of its resulting position
// (one ply, not the tier's search depth) and samples uniformly among the top
// few.
func topSample(b game.Board, side game.Cell, moves []game.Move, rng *rand.Rand) game.Move {
	type scored struct {
		mv    game.Move
		score float64
	}
	ranked := make([]scored, 0, len(moves))
	for _, mv := range moves {
		next, _, ok, err := b.Apply(mv, side)
		if err != nil || !ok {
			continue
		}
		ranked = append(ranked, scored{mv: mv, score: game.Evaluate(next, side)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	k := topSampleSize
	if len(ranked) < k {
		k = len(ranked)
	}
	return ranked[rng.Intn(k)].mv
}
