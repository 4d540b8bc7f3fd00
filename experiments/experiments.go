package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/DChartrain-3dArtist/OthelloAi/engine"
	"github.com/DChartrain-3dArtist/OthelloAi/experiments/metrics"
	"github.com/DChartrain-3dArtist/OthelloAi/game"
	"github.com/DChartrain-3dArtist/OthelloAi/searcher"
)

const (
	NumGames  = 20 // Per match up
	BoardSize = 8
	BaseSeed  = 20240901
)

var tiers = []searcher.Difficulty{
	searcher.Facile,
	searcher.Moyen,
	searcher.Difficile,
	searcher.Expert,
}

// RunTierLadder plays every difficulty tier against every other tier and
// writes the results as CSV for later analysis. Each game alternates the
// starting color between the two agents.
func RunTierLadder() error {
	configs := make([]metrics.AgentConfig, len(tiers))
	for i, tier := range tiers {
		profile := tier.Profile()
		configs[i] = metrics.AgentConfig{
			ID:         i + 1,
			Difficulty: tier.String(),
			Depth:      profile.Depth,
			RandomProb: profile.RandomProb,
			Seed:       BaseSeed + uint64(i),
		}
	}

	matchUps := [][2]int{}
	for i := range tiers {
		for j := i + 1; j < len(tiers); j++ {
			matchUps = append(matchUps, [2]int{i, j})
		}
	}

	writer, err := metrics.NewWriter("tier_ladder")
	if err != nil {
		return fmt.Errorf("failed to create results writer: %w", err)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	gameID := 0

	for _, matchUp := range matchUps {
		first, second := matchUp[0], matchUp[1]
		log.Info().Msgf("match up: %s vs %s", tiers[first], tiers[second])

		for i := 0; i < NumGames; i++ {
			// Alternate which tier plays Black.
			black, white := first, second
			if i%2 == 1 {
				black, white = second, first
			}

			gameID++
			gameMetric, moveMetrics, err := runGame(tiers[black], tiers[white], configs[black].Seed, configs[white].Seed)
			if err != nil {
				return fmt.Errorf("game %d failed: %w", gameID, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         gameID,
				Agent1:     configs[black].ID,
				Agent2:     configs[white].ID,
				GameMetric: gameMetric,
			})
			for _, moveMetric := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameID,
					MoveMetric: moveMetric,
				})
			}
		}
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}

	log.Info().Msgf("finished %d games over %d match ups", gameID, len(matchUps))
	return nil
}

// runGame plays one game between two tiers, Black moving first, and collects
// per-move and per-game metrics.
func runGame(black, white searcher.Difficulty, blackSeed, whiteSeed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := map[game.Cell]engine.Agent{
		game.Black: &engine.SearchAgent{Difficulty: black, Rng: rand.New(rand.NewSource(blackSeed))},
		game.White: &engine.SearchAgent{Difficulty: white, Rng: rand.New(rand.NewSource(whiteSeed))},
	}

	state, err := game.NewTurnState(BoardSize)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	collector := metrics.NewCollector()
	collector.Start(state.ToMove.String())

	for !state.Terminal() {
		mover := state.ToMove
		start := time.Now()
		mv, ok := agents[mover].FindMove(state)
		elapsed := time.Since(start)
		if !ok {
			state = state.Pass()
			continue
		}

		next, captured, ok, err := state.Play(mv)
		if err != nil || !ok {
			return metrics.GameMetric{}, nil, fmt.Errorf("agent for %s returned illegal move %s", mover, mv)
		}
		collector.AddMove(mover.String(), mv.String(), len(captured), elapsed)
		state = next
	}

	blackScore, whiteScore := state.Board.Score()
	winner := state.Winner().String()
	if state.Winner() == game.Empty {
		winner = "draw"
	}
	gameMetric, moveMetrics := collector.Complete(winner, blackScore, whiteScore)
	return gameMetric, moveMetrics, nil
}
