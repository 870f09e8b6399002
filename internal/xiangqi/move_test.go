package xiangqi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startFEN = "rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR r"

func mustDecode(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := DecodePosition(fen)
	require.NoError(t, err, "decode %q", fen)
	return pos
}

type moveCase struct {
	name           string
	fen            string
	fr, fc, tr, tc int
	want           bool
}

func runMoveCases(t *testing.T, cases []moveCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustDecode(t, tc.fen)
			got := pos.Board.CanMoveTo(tc.fr, tc.fc, tc.tr, tc.tc)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanMoveToCommonPreconditions(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"same square", startFEN, 9, 0, 9, 0, false},
		{"empty origin", startFEN, 4, 4, 5, 4, false},
		{"target off board", startFEN, 9, 0, 10, 0, false},
		{"origin off board", startFEN, -1, 0, 0, 0, false},
	})
}

func TestGeneralMoves(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"one step forward", startFEN, 9, 4, 8, 4, true},
		{"two squares sideways", startFEN, 9, 4, 9, 6, false},
		{"diagonal", "3k5/9/9/9/9/9/9/9/4K4/9 r", 8, 4, 7, 5, false},
		{"leaves palace", "3k5/9/9/9/9/9/9/4K4/9/9 r", 7, 4, 6, 4, false},
		{"black stays in own palace", "9/9/4k4/9/9/9/9/9/9/3K5 b", 2, 4, 3, 4, false},
		{"flying general into open file", "3k5/9/9/9/9/9/9/9/9/4K4 r", 9, 4, 9, 3, false},
		{"blocked file is fine", "3k5/9/9/9/9/3p5/9/9/9/4K4 r", 9, 4, 9, 3, true},
	})
}

func TestAdvisorMoves(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"diagonal into palace centre", startFEN, 9, 3, 8, 4, true},
		{"diagonal out of palace", startFEN, 9, 3, 8, 2, false},
		{"orthogonal", "3k5/9/9/9/9/9/9/9/4A4/4K4 r", 8, 4, 8, 3, false},
		{"centre to corner", "3k5/9/9/9/9/9/9/9/4A4/3K5 r", 8, 4, 7, 5, true},
		{"black advisor", startFEN, 0, 5, 1, 4, true},
	})
}

func TestElephantMoves(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"two diagonal", startFEN, 9, 2, 7, 0, true},
		{"two diagonal other way", startFEN, 9, 2, 7, 4, true},
		{"blocked eye", "3k5/9/9/9/9/9/9/9/1P7/2E1K4 r", 9, 2, 7, 0, false},
		{"red cannot cross river", "3k5/9/9/9/9/2E6/9/9/9/4K4 r", 5, 2, 3, 0, false},
		{"black cannot cross river", "3k5/9/9/9/2e6/9/9/9/9/4K4 b", 4, 2, 6, 0, false},
		{"one diagonal", startFEN, 9, 2, 8, 1, false},
	})
}

func TestHorseMoves(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"opening jump", startFEN, 9, 7, 7, 6, true},
		{"jump to edge", startFEN, 9, 1, 7, 0, true},
		{"hobbled leg", startFEN, 9, 1, 8, 3, false},
		{"straight line", startFEN, 9, 1, 7, 1, false},
		{"diagonal", startFEN, 9, 1, 8, 2, false},
	})
}

func TestChariotMoves(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"open file", startFEN, 9, 0, 7, 0, true},
		{"blocked file", startFEN, 9, 0, 5, 0, false},
		{"first blocker reachable regardless of side", startFEN, 9, 0, 6, 0, true},
		{"diagonal", startFEN, 9, 0, 8, 1, false},
	})
}

func TestCannonCaptureNeedsExactlyOneScreen(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"one screen", "3k5/9/9/9/9/9/9/1C2p3r/9/4K4 r", 7, 1, 7, 8, true},
		{"no screen", "3k5/9/9/9/9/9/9/1C6r/9/4K4 r", 7, 1, 7, 8, false},
		{"two screens", "3k5/9/9/9/9/9/9/1C1p1p2r/9/4K4 r", 7, 1, 7, 8, false},
		{"own piece as screen", "3k5/9/9/9/9/9/9/1C2P3r/9/4K4 r", 7, 1, 7, 8, true},
		{"quiet move along clear row", "3k5/9/9/9/9/9/9/1C6r/9/4K4 r", 7, 1, 7, 7, true},
		{"quiet move cannot jump", "3k5/9/9/9/9/9/9/1C2p3r/9/4K4 r", 7, 1, 7, 6, false},
		{"opening cannon to centre", startFEN, 7, 1, 7, 4, true},
		{"opening cannon takes horse", startFEN, 7, 1, 0, 1, true},
	})
}

func TestSoldierMoves(t *testing.T) {
	runMoveCases(t, []moveCase{
		{"red forward before river", startFEN, 6, 0, 5, 0, true},
		{"red sideways before river", startFEN, 6, 0, 6, 1, false},
		{"red backward", startFEN, 6, 0, 7, 0, false},
		{"red forward after river", "3k5/9/9/9/4P4/9/9/9/9/4K4 r", 4, 4, 3, 4, true},
		{"red sideways after river", "3k5/9/9/9/4P4/9/9/9/9/4K4 r", 4, 4, 4, 3, true},
		{"red backward after river", "3k5/9/9/9/4P4/9/9/9/9/4K4 r", 4, 4, 5, 4, false},
		{"red diagonal after river", "3k5/9/9/9/4P4/9/9/9/9/4K4 r", 4, 4, 3, 3, false},
		{"red two steps", startFEN, 6, 0, 4, 0, false},
		{"black forward", startFEN, 3, 0, 4, 0, true},
		{"black sideways before river", startFEN, 3, 0, 3, 1, false},
		{"black sideways after river", "3k5/9/9/9/9/4p4/9/9/9/4K4 b", 5, 4, 5, 3, true},
		{"black backward after river", "3k5/9/9/9/9/4p4/9/9/9/4K4 b", 5, 4, 4, 4, false},
	})
}

func TestCanMoveToIsPure(t *testing.T) {
	pos := mustDecode(t, startFEN)
	before := *pos
	for _, pp := range pos.Board.Pieces() {
		for to := 0; to < NumSquares; to++ {
			first := pos.Board.CanMoveTo(pp.Row, pp.Col, rowOf(to), colOf(to))
			second := pos.Board.CanMoveTo(pp.Row, pp.Col, rowOf(to), colOf(to))
			require.Equal(t, first, second, "%s at (%d,%d) -> %d", pp.Piece, pp.Row, pp.Col, to)
		}
	}
	assert.Equal(t, before, *pos)
}
