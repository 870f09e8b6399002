package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"
	"xiangqi/internal/xiangqi"
)

func main() {
	seed := flag.Uint64("seed", 1, "random seed")
	maxMoves := flag.Int("maxmoves", 300, "max plies per game")
	games := flag.Int("games", 0, "play a random-vs-greedy match of this many games instead of one verbose game")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	if *games > 0 {
		runMatch(rng, *games, *maxMoves)
		return
	}

	g := xiangqi.NewGame(xiangqi.WithLogger(logger))
	random := randomPlayer(rng)
	for i := 0; i < *maxMoves && !g.GameOver(); i++ {
		moves := g.LegalMoves(g.SideToMove())
		m := random.Pick(g, moves)
		if !g.AttemptMove(m.FromRow, m.FromCol, m.ToRow, m.ToCol) {
			logger.Fatal("legal move rejected", zap.Any("move", m), zap.String("fen", pos(g)))
		}
		h := g.History()
		fmt.Printf("%3d. %s\n", i+1, h[len(h)-1])
	}
	logger.Info("selfplay finished",
		zap.Stringer("result", g.Result()),
		zap.String("reason", string(g.EndReason())),
		zap.Int("plies", len(g.History())),
		zap.String("fen", pos(g)))
}

func pos(g *xiangqi.Game) string {
	p := g.Position()
	return p.Encode()
}
