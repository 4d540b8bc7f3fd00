package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DChartrain-3dArtist/OthelloAi/experiments"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	err := experiments.RunTierLadder()
	if err != nil {
		log.Fatal().Err(err).Msg("tier ladder experiment failed")
	}
}
