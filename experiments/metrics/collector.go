package metrics

import (
	"time"
)

// AgentConfig identifies one configured player in an experiment.
type AgentConfig struct {
	ID         int
	Difficulty string
	Depth      int
	RandomProb float64
	Seed       uint64
}

// MoveMetric captures one decision made during a game.
type MoveMetric struct {
	Step     int
	Player   string
	Move     string
	Captured int
	Duration time.Duration
}

// GameMetric captures the outcome of one game.
type GameMetric struct {
	StartingPlayer string
	Winner         string
	BlackScore     int
	WhiteScore     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates per-move metrics over a single game.
type Collector interface {
	Start(startingPlayer string)
	AddMove(player, move string, captured int, duration time.Duration)
	Complete(winner string, black, white int) (GameMetric, []MoveMetric)
}

type collector struct {
	startingPlayer string
	startTime      time.Time
	moves          []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(startingPlayer string) {
	c.startingPlayer = startingPlayer
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(player, move string, captured int, duration time.Duration) {
	c.moves = append(c.moves, MoveMetric{
		Step:     len(c.moves) + 1,
		Player:   player,
		Move:     move,
		Captured: captured,
		Duration: duration,
	})
}

func (c *collector) Complete(winner string, black, white int) (GameMetric, []MoveMetric) {
	endTime := time.Now()
	return GameMetric{
		StartingPlayer: c.startingPlayer,
		Winner:         winner,
		BlackScore:     black,
		WhiteScore:     white,
		StartTime:      c.startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(c.startTime),
		TotalMoves:     len(c.moves),
	}, c.moves
}

// dummyCollector discards everything; used when metrics are not wanted.
type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(startingPlayer string) {}
func (c *dummyCollector) AddMove(player, move string, captured int, duration time.Duration) {
}
func (c *dummyCollector) Complete(winner string, black, white int) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
