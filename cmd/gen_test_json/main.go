package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"xiangqi/internal/xiangqi"
)

// TestCase 给前端/其他实现对拍用的走子数据
// Board 按行优先存 90 格，值为带符号棋子（红正黑负）
type TestCase struct {
	FEN     string `json:"fen"`
	Board   []int8 `json:"board"`
	Red     bool   `json:"red_to_move"`
	InCheck bool   `json:"in_check"`
	Stage   int    `json:"stage"` // 0=选子, 1=选落点
	From    int    `json:"from"`  // stage 1 选中的格子，stage 0 为 -1
	Mask    []int8 `json:"mask"`  // 可选格子为 1
}

func square(row, col int) int { return row*xiangqi.Cols + col }

func encodeBoard(pos *xiangqi.Position) []int8 {
	board := make([]int8, xiangqi.NumSquares)
	for i, pc := range pos.Board.Squares {
		board[i] = int8(pc)
	}
	return board
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxMoves := flag.Int("maxmoves", 300, "max plies per game")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seed, *seed+1))
	var testCases []TestCase

	for n := 0; n < *numGames; n++ {
		g := xiangqi.NewGame()
		for ply := 0; ply < *maxMoves && !g.GameOver(); ply++ {
			pos := g.Position()
			legalMoves := pos.LegalMoves(pos.SideToMove)
			board := encodeBoard(&pos)
			base := TestCase{
				FEN:     pos.Encode(),
				Board:   board,
				Red:     pos.SideToMove == xiangqi.Red,
				InCheck: pos.GeneralInCheck(pos.SideToMove),
			}

			mask0 := make([]int8, xiangqi.NumSquares)
			for _, mv := range legalMoves {
				mask0[square(mv.FromRow, mv.FromCol)] = 1
			}
			tc0 := base
			tc0.Stage, tc0.From, tc0.Mask = 0, -1, mask0
			testCases = append(testCases, tc0)

			// 随机选一步
			chosen := legalMoves[rng.IntN(len(legalMoves))]

			mask1 := make([]int8, xiangqi.NumSquares)
			for _, mv := range legalMoves {
				if mv.FromRow == chosen.FromRow && mv.FromCol == chosen.FromCol {
					mask1[square(mv.ToRow, mv.ToCol)] = 1
				}
			}
			tc1 := base
			tc1.Stage, tc1.From, tc1.Mask = 1, square(chosen.FromRow, chosen.FromCol), mask1
			testCases = append(testCases, tc1)

			if !g.AttemptMove(chosen.FromRow, chosen.FromCol, chosen.ToRow, chosen.ToCol) {
				fmt.Fprintf(os.Stderr, "legal move rejected: %+v at %s\n", chosen, pos.Encode())
				os.Exit(1)
			}
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
