package main

import (
	"fmt"
	"math/rand/v2"

	"xiangqi/internal/xiangqi"
)

type Player struct {
	Name string
	Pick func(g *xiangqi.Game, moves []xiangqi.Move) xiangqi.Move
}

func randomPlayer(rng *rand.Rand) Player {
	return Player{
		Name: "Random",
		Pick: func(_ *xiangqi.Game, moves []xiangqi.Move) xiangqi.Move {
			return moves[rng.IntN(len(moves))]
		},
	}
}

// 子力价值，只给贪心玩家用
var pieceValue = [...]int{
	xiangqi.General:  1000,
	xiangqi.Chariot:  9,
	xiangqi.Cannon:   5,
	xiangqi.Horse:    4,
	xiangqi.Elephant: 2,
	xiangqi.Advisor:  2,
	xiangqi.Soldier:  1,
}

// greedyPlayer 绝杀优先，其次吃最大的子，再次将军，否则随机
func greedyPlayer(rng *rand.Rand) Player {
	return Player{
		Name: "Greedy",
		Pick: func(g *xiangqi.Game, moves []xiangqi.Move) xiangqi.Move {
			best, bestScore := moves[rng.IntN(len(moves))], 0
			for _, m := range moves {
				if g.CausesCheckmate(m.FromRow, m.FromCol, m.ToRow, m.ToCol) {
					return m
				}
				score := 0
				if pc, ok := g.PieceAt(m.ToRow, m.ToCol); ok {
					score = 10 * pieceValue[pc.Kind()]
				}
				if g.CausesCheck(m.FromRow, m.FromCol, m.ToRow, m.ToCol) {
					score++
				}
				if score > bestScore {
					best, bestScore = m, score
				}
			}
			return best
		},
	}
}

func runMatch(rng *rand.Rand, totalGames, maxMoves int) {
	a, b := randomPlayer(rng), greedyPlayer(rng)
	aWins, bWins, draws := 0, 0, 0

	for n := 0; n < totalGames; n++ {
		red, black := a, b
		if n%2 == 1 {
			red, black = b, a
		}
		res, reason := playGame(red, black, maxMoves)
		fmt.Printf("Game %d: Red [%s] vs Black [%s] -> %s %s\n", n+1, red.Name, black.Name, res, reason)

		switch res {
		case xiangqi.RedWin:
			if red.Name == a.Name {
				aWins++
			} else {
				bWins++
			}
		case xiangqi.BlackWin:
			if black.Name == a.Name {
				aWins++
			} else {
				bWins++
			}
		default:
			draws++
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", a.Name, aWins)
	fmt.Printf("%s: %d\n", b.Name, bWins)
	fmt.Printf("Draws / unfinished: %d\n", draws)
}

func playGame(red, black Player, maxMoves int) (xiangqi.Result, xiangqi.EndReason) {
	g := xiangqi.NewGame()
	for i := 0; i < maxMoves && !g.GameOver(); i++ { // 防止死循环
		p := red
		if g.SideToMove() == xiangqi.Black {
			p = black
		}
		m := p.Pick(g, g.LegalMoves(g.SideToMove()))
		if !g.AttemptMove(m.FromRow, m.FromCol, m.ToRow, m.ToCol) {
			panic(fmt.Sprintf("legal move rejected: %+v", m))
		}
	}
	return g.Result(), g.EndReason()
}
