package main

import (
	"flag"
	"fmt"
	"os"

	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: start position)")
	flag.Parse()

	pos := xiangqi.NewInitialPosition()
	if *fen != "" {
		var err error
		if pos, err = xiangqi.DecodePosition(*fen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Println("FEN:", pos.Encode())
	side := pos.SideToMove
	moves := pos.LegalMoves(side)
	fmt.Println("Side to move:", side)
	fmt.Println("In check:", pos.GeneralInCheck(side))
	fmt.Println("Legal moves:", len(moves))
	switch {
	case len(moves) == 0 && pos.GeneralInCheck(side):
		fmt.Println("Checkmated")
	case pos.IsStalemate(side):
		fmt.Println("Stalemate")
	}
	for _, m := range moves {
		pc := pos.Board.At(m.FromRow, m.FromCol)
		tag := ""
		if pos.CausesCheckmate(m.FromRow, m.FromCol, m.ToRow, m.ToCol) {
			tag = " #"
		} else if pos.CausesCheck(m.FromRow, m.FromCol, m.ToRow, m.ToCol) {
			tag = " +"
		}
		fmt.Printf("  %s (%d,%d)-(%d,%d)%s\n", pc.Name(), m.FromRow, m.FromCol, m.ToRow, m.ToCol, tag)
	}
}
