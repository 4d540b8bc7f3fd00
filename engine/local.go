package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/DChartrain-3dArtist/OthelloAi/game"
	"github.com/DChartrain-3dArtist/OthelloAi/searcher"
)

// Agent picks a move for the side to move, or reports false to pass.
type Agent interface {
	FindMove(state game.TurnState) (game.Move, bool)
}

// SearchAgent plays at a fixed difficulty tier with its own random source.
type SearchAgent struct {
	Difficulty searcher.Difficulty
	Rng        *rand.Rand
}

func (a *SearchAgent) FindMove(state game.TurnState) (game.Move, bool) {
	return searcher.ChooseMove(state.Board, state.ToMove, a.Difficulty, a.Rng)
}

// RandomAgent plays a uniformly random legal move. Useful as a baseline and
// in tests.
type RandomAgent struct {
	Rng *rand.Rand
}

func (a *RandomAgent) FindMove(state game.TurnState) (game.Move, bool) {
	moves := state.Board.LegalMoves(state.ToMove)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[a.Rng.Intn(len(moves))], true
}

// Update records one applied move so a caller can render the flips.
type Update struct {
	Move     game.Move
	Captured game.CaptureSet
	State    game.TurnState
}

// Engine drives a local game between two agents. It owns the TurnState and
// handles forced passes and terminal detection; the agents only pick moves.
type Engine struct {
	State   game.TurnState
	Agents  map[game.Cell]Agent
	Updates []Update
}

func LocalEngine(size int, black, white Agent) (*Engine, error) {
	state, err := game.NewTurnState(size)
	if err != nil {
		return nil, fmt.Errorf("failed to set up game: %w", err)
	}
	return &Engine{
		State:  state,
		Agents: map[game.Cell]Agent{game.Black: black, game.White: white},
	}, nil
}

// Run executes the game loop until neither side has a legal move, then
// returns the winning side (Empty for a draw).
func (e *Engine) Run() (game.Cell, error) {
	// Passes make a strict upper bound on turns hard to state exactly, so
	// guard with twice the cell count.
	maxTurns := 2 * e.State.Board.Size() * e.State.Board.Size()

	log.Info().Msgf("%s is starting", e.State.ToMove)

	for turn := 0; turn < maxTurns && !e.State.Terminal(); turn++ {
		mover := e.State.ToMove
		mv, ok := e.Agents[mover].FindMove(e.State)
		if !ok {
			log.Info().Msgf("%s has no move, passing", mover)
			e.State = e.State.Pass()
			continue
		}

		next, captured, ok, err := e.State.Play(mv)
		if err != nil {
			return game.Empty, fmt.Errorf("agent for %s returned %s: %w", mover, mv, err)
		}
		if !ok {
			return game.Empty, fmt.Errorf("agent for %s returned illegal move %s", mover, mv)
		}
		e.Updates = append(e.Updates, Update{Move: mv, Captured: captured, State: next})
		e.State = next

		black, white := e.State.Board.Score()
		log.Debug().Msgf("%s played %s flipping %d, score %d-%d",
			mover, mv, len(captured), black, white)
	}

	if !e.State.Terminal() {
		return game.Empty, fmt.Errorf("game did not finish within %d turns", maxTurns)
	}

	winner := e.State.Winner()
	black, white := e.State.Board.Score()
	log.Info().Msgf("game over, %d-%d, winner: %s", black, white, winner)
	return winner, nil
}
