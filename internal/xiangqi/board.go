package xiangqi

import (
	"strings"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 河界：红方在 5..9 行，黑方在 0..4 行
	RiverRow = 5
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func pawnDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func crossedRiver(side Side, row int) bool {
	if side == Red {
		return row < RiverRow
	}
	if side == Black {
		return row >= RiverRow
	}
	return false
}

// 是否在己方半场（象不能过河）
func onOwnHalf(side Side, row int) bool {
	if side == Red {
		return row >= RiverRow
	}
	if side == Black {
		return row < RiverRow
	}
	return false
}

// 是否在九宫
func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if side == Black {
		return row >= 0 && row <= 2
	}
	if side == Red {
		return row >= 7 && row <= 9
	}
	return false
}

const initialBoardString = `rheakaehr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RHEAKAEHR`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString: expected 10 rows")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString: expected 9 columns")
		}
		for c := 0; c < Cols; c++ {
			ch := lines[r][c]
			if ch == '.' {
				continue
			}
			k, ok := kindFromLetter(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Black
			if ch >= 'A' && ch <= 'Z' {
				side = Red
			}
			b.Squares[indexOf(r, c)] = MakePiece(side, k)
		}
	}
	return b
}

func NewInitialPosition() *Position {
	return &Position{
		Board:      parseInitialBoard(),
		SideToMove: Red, // 红先
	}
}

// IsValidPosition reports whether (row, col) lies on the 10x9 board.
func IsValidPosition(row, col int) bool {
	return onBoard(row, col)
}

// At returns the piece on (row, col), or 0 when empty or off the board.
func (b *Board) At(row, col int) Piece {
	if !onBoard(row, col) {
		return 0
	}
	return b.Squares[indexOf(row, col)]
}

func (b *Board) set(row, col int, pc Piece) {
	b.Squares[indexOf(row, col)] = pc
}

// countBetween counts pieces strictly between two squares on the same line.
// Callers guarantee the squares share a row or a column.
func (b *Board) countBetween(fr, fc, tr, tc int) int {
	n := 0
	if fr == tr {
		lo, hi := fc, tc
		if lo > hi {
			lo, hi = hi, lo
		}
		for c := lo + 1; c < hi; c++ {
			if b.At(fr, c) != 0 {
				n++
			}
		}
		return n
	}
	lo, hi := fr, tr
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		if b.At(r, fc) != 0 {
			n++
		}
	}
	return n
}

// Pieces lists every piece in row-major order.
func (b *Board) Pieces() []PlacedPiece {
	out := make([]PlacedPiece, 0, 32)
	for sq, pc := range b.Squares {
		if pc == 0 {
			continue
		}
		out = append(out, PlacedPiece{Piece: pc, Row: rowOf(sq), Col: colOf(sq)})
	}
	return out
}

// FindGeneral locates side's General.
func (b *Board) FindGeneral(side Side) (row, col int, ok bool) {
	want := MakePiece(side, General)
	if want == 0 {
		return -1, -1, false
	}
	for sq, pc := range b.Squares {
		if pc == want {
			return rowOf(sq), colOf(sq), true
		}
	}
	return -1, -1, false
}

// FindOtherGeneral locates the General opposing the piece on (row, col).
func (b *Board) FindOtherGeneral(row, col int) (int, int, bool) {
	pc := b.At(row, col)
	if pc == 0 {
		return -1, -1, false
	}
	return b.FindGeneral(opposite(pc.Side()))
}
