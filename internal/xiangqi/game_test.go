package xiangqi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewGameStartPosition(t *testing.T) {
	g := NewGame()
	assert.Len(t, g.Pieces(), 32)
	assert.True(t, g.IsRedTurn())
	assert.False(t, g.HasLastMove())
	assert.False(t, g.GameOver())
	assert.Equal(t, ResultNone, g.Result())

	r, c, ok := g.FindGeneral(Red)
	require.True(t, ok)
	assert.Equal(t, [2]int{9, 4}, [2]int{r, c})
	r, c, ok = g.FindOtherGeneral(9, 4)
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 4}, [2]int{r, c})

	pc, ok := g.PieceAt(0, 4)
	require.True(t, ok)
	assert.Equal(t, "将", pc.Name())
	_, ok = g.PieceAt(4, 4)
	assert.False(t, ok)

	assert.True(t, g.IsValidPosition(9, 8))
	assert.False(t, g.IsValidPosition(10, 0))
	assert.False(t, g.IsValidPosition(0, 9))
}

func TestAttemptMoveHorseOpening(t *testing.T) {
	g := NewGame()
	require.True(t, g.AttemptMove(9, 7, 7, 6))

	pc, ok := g.PieceAt(7, 6)
	require.True(t, ok)
	assert.Equal(t, MakePiece(Red, Horse), pc)
	_, ok = g.PieceAt(9, 7)
	assert.False(t, ok)
	assert.Equal(t, Black, g.SideToMove())

	last, ok := g.LastMove()
	require.True(t, ok)
	assert.Equal(t, Move{FromRow: 9, FromCol: 7, ToRow: 7, ToCol: 6}, last)

	hist := g.History()
	require.Len(t, hist, 1)
	assert.False(t, hist[0].Capture())
	assert.Equal(t, MakePiece(Red, Horse), hist[0].Piece)
}

func TestAttemptMoveRejections(t *testing.T) {
	cases := []struct {
		name           string
		fr, fc, tr, tc int
	}{
		{"general two squares", 9, 4, 9, 6},
		{"empty source", 4, 4, 5, 4},
		{"destination off board", 9, 0, 10, 0},
		{"wrong side to move", 0, 7, 2, 6},
		{"friendly capture", 9, 0, 6, 0},
		{"blocked horse", 9, 1, 8, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame()
			before := g.Position()
			for i := 0; i < 2; i++ {
				assert.False(t, g.AttemptMove(tc.fr, tc.fc, tc.tr, tc.tc))
				assert.Equal(t, before, g.Position())
				assert.Empty(t, g.History())
				assert.False(t, g.HasLastMove())
			}
		})
	}
}

func TestAttemptMoveRejectsSelfExposure(t *testing.T) {
	// 红车被黑车牵制在中线上，离开中线黑车就能直接吃帅
	pos := mustDecode(t, "4k4/4r4/9/9/9/9/9/4R4/9/4K4 r")
	g := NewGame(WithPosition(pos))
	before := g.Position()
	assert.False(t, g.AttemptMove(7, 4, 7, 0))
	assert.Equal(t, before, g.Position())
	assert.True(t, g.AttemptMove(7, 4, 5, 4), "sliding along the file keeps the block")
}

func TestAttemptMoveOpensFileBetweenGenerals(t *testing.T) {
	g := NewGame(WithPosition(mustDecode(t, "4k4/9/9/9/9/9/9/4R4/9/4K4 r")))
	require.True(t, g.AttemptMove(7, 4, 7, 0))
	assert.False(t, g.GeneralInCheck(Red))
	assert.False(t, g.GeneralInCheck(Black))
	assert.False(t, g.GameOver())

	// 黑将在中线上不能前进，横走照常
	assert.True(t, g.HasLegalMove(Black))
	assert.False(t, g.AttemptMove(0, 4, 1, 4), "black general stays on the open file")
	assert.True(t, g.AttemptMove(0, 4, 0, 3))
}

func TestAttemptMoveStalemateEndsGame(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	// 红车进到中路牵住黑马，黑方困毙
	g := NewGame(WithPosition(mustDecode(t, "4k4/4h4/9/9/9/3R1R3/9/9/4R4/3K5 r")), WithLogger(zap.New(core)))

	require.True(t, g.AttemptMove(8, 4, 5, 4))
	assert.False(t, g.LastMoveCausedCheck())
	assert.False(t, g.LastMoveCausedCheckmate())
	assert.True(t, g.IsStalemate(Black))
	assert.True(t, g.GameOver())
	assert.Equal(t, Draw, g.Result())
	assert.Equal(t, ReasonStalemate, g.EndReason())

	ended := logs.FilterMessage("game ended").All()
	require.Len(t, ended, 1)
	assert.Equal(t, "stalemate", ended[0].ContextMap()["reason"])
}

func TestCannonCaptureThroughGame(t *testing.T) {
	g := NewGame(WithPosition(mustDecode(t, "3k5/9/9/9/9/9/9/1C2p3r/9/4K4 r")))
	require.True(t, g.AttemptMove(7, 1, 7, 8))
	hist := g.History()
	require.Len(t, hist, 1)
	assert.True(t, hist[0].Capture())
	assert.Equal(t, MakePiece(Black, Chariot), hist[0].Captured)
	assert.Len(t, g.Pieces(), 4)
}

func TestAttemptMoveCheckmateEndsGame(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	g := NewGame(WithPosition(mustDecode(t, mateInOneFEN)), WithLogger(zap.New(core)))

	require.True(t, g.AttemptMove(5, 7, 0, 7))
	assert.True(t, g.LastMoveCausedCheck())
	assert.True(t, g.LastMoveCausedCheckmate())
	assert.True(t, g.GameOver())
	assert.Equal(t, RedWin, g.Result())
	assert.Equal(t, ReasonCheckmate, g.EndReason())
	assert.True(t, g.History()[0].Checkmate)

	res, reason := g.CheckEndGame()
	assert.Equal(t, RedWin, res)
	assert.Equal(t, ReasonCheckmate, reason)

	assert.Equal(t, 1, logs.FilterMessage("game ended").Len())

	assert.False(t, g.AttemptMove(0, 3, 1, 3), "no moves after the game is over")
}

func TestCheckEndGame(t *testing.T) {
	cases := []struct {
		name   string
		fen    string
		result Result
		reason EndReason
	}{
		{"ongoing", startFEN, ResultNone, ReasonNone},
		{"black mated", matedFEN, RedWin, ReasonCheckmate},
		{"black stalemated", pinnedStalemateFEN, Draw, ReasonStalemate},
		{"red mated", "4k4/9/9/9/9/9/9/9/r8/r2K5 r", BlackWin, ReasonCheckmate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame(WithPosition(mustDecode(t, tc.fen)))
			res, reason := g.CheckEndGame()
			assert.Equal(t, tc.result, res)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

func TestThreefoldRepetitionDraws(t *testing.T) {
	g := NewGame()
	shuffle := [][4]int{
		{9, 7, 7, 6},
		{0, 7, 2, 6},
		{7, 6, 9, 7},
		{2, 6, 0, 7},
	}
	// 第 1、5、9 手后局面相同
	for ply := 0; ply < 8; ply++ {
		m := shuffle[ply%len(shuffle)]
		require.True(t, g.AttemptMove(m[0], m[1], m[2], m[3]), "ply %d", ply)
		require.False(t, g.GameOver(), "ply %d", ply)
	}
	assert.False(t, g.IsThreefoldRepetition())

	m := shuffle[0]
	require.True(t, g.AttemptMove(m[0], m[1], m[2], m[3]))
	assert.True(t, g.IsThreefoldRepetition())
	assert.True(t, g.GameOver())
	assert.Equal(t, Draw, g.Result())
	assert.Equal(t, ReasonRepetition, g.EndReason())

	res, reason := g.CheckEndGame()
	assert.Equal(t, Draw, res)
	assert.Equal(t, ReasonRepetition, reason)
}

func TestResign(t *testing.T) {
	g := NewGame()
	g.Resign(Red)
	assert.True(t, g.GameOver())
	assert.Equal(t, BlackWin, g.Result())
	assert.Equal(t, ReasonResign, g.EndReason())

	g.Resign(Black)
	assert.Equal(t, BlackWin, g.Result(), "resign after game over is a no-op")

	g.Reset()
	require.True(t, g.AttemptMove(9, 7, 7, 6))
	g.ResignCurrentPlayer()
	assert.Equal(t, RedWin, g.Result())
}

func TestResetClearsState(t *testing.T) {
	g := NewGame()
	require.True(t, g.AttemptMove(9, 7, 7, 6))
	g.Reset()
	assert.Equal(t, *NewInitialPosition(), g.Position())
	assert.Empty(t, g.History())
	assert.False(t, g.HasLastMove())
	assert.False(t, g.IsThreefoldRepetition())
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "NONE", ResultNone.String())
	assert.Equal(t, "RED_WIN", RedWin.String())
	assert.Equal(t, "BLACK_WIN", BlackWin.String())
	assert.Equal(t, "DRAW", Draw.String())
}
