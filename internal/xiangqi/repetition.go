package xiangqi

import "strings"

// ThreefoldCount is the number of occurrences that draws a game.
const ThreefoldCount = 3

// Key serializes the position row by row (row 0..9, col 0..8) followed by
// " r" or " b" for the side to move.
func (p *Position) Key() string {
	var sb strings.Builder
	sb.Grow(NumSquares + 2)
	for sq := 0; sq < NumSquares; sq++ {
		sb.WriteByte(p.Board.Squares[sq].Char())
	}
	if p.SideToMove == Red {
		sb.WriteString(" r")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}

// RepetitionTable counts how often each position key has occurred in one game.
type RepetitionTable struct {
	counts map[string]int
}

func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[string]int)}
}

// Record bumps the counter for key and returns the new count.
func (t *RepetitionTable) Record(key string) int {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	t.counts[key]++
	return t.counts[key]
}

func (t *RepetitionTable) Count(key string) int {
	return t.counts[key]
}

// IsThreefold reports whether key has been seen at least ThreefoldCount times.
func (t *RepetitionTable) IsThreefold(key string) bool {
	return t.Count(key) >= ThreefoldCount
}

func (t *RepetitionTable) Reset() {
	t.counts = make(map[string]int)
}

// Len is the number of distinct positions recorded.
func (t *RepetitionTable) Len() int {
	return len(t.counts)
}
