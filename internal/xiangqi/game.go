package xiangqi

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// A Result is the outcome of a game.
type Result int8

const (
	ResultNone Result = iota
	RedWin
	BlackWin
	Draw
)

func (r Result) String() string {
	switch r {
	case RedWin:
		return "RED_WIN"
	case BlackWin:
		return "BLACK_WIN"
	case Draw:
		return "DRAW"
	default:
		return "NONE"
	}
}

// MarshalText encodes the result as its String form.
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func winnerOf(side Side) Result {
	switch side {
	case Red:
		return RedWin
	case Black:
		return BlackWin
	}
	return ResultNone
}

// An EndReason says how a finished game ended.
type EndReason string

const (
	ReasonNone       EndReason = ""
	ReasonCheckmate  EndReason = "checkmate"
	ReasonStalemate  EndReason = "stalemate"
	ReasonRepetition EndReason = "threefold_repetition"
	ReasonResign     EndReason = "resign"
)

// MoveRecord is one entry of the move history.
type MoveRecord struct {
	Move
	Piece     Piece
	Captured  Piece
	Check     bool
	Checkmate bool
}

func (r MoveRecord) Capture() bool { return r.Captured != 0 }

func (r MoveRecord) String() string {
	s := fmt.Sprintf("%s (%d,%d)-(%d,%d)", r.Piece, r.FromRow, r.FromCol, r.ToRow, r.ToCol)
	if r.Capture() {
		s += " x " + r.Captured.String()
	}
	switch {
	case r.Checkmate:
		s += " #"
	case r.Check:
		s += " +"
	}
	return s
}

// Game is the board model of one session: placement, turn, last move,
// history, repetition counts and end-of-game state.
// A Game is not safe for concurrent use; callers serialize access.
type Game struct {
	pos     Position
	reps    *RepetitionTable
	history []MoveRecord

	lastMove    Move
	hasLastMove bool
	lastCheck   bool
	lastMate    bool

	gameOver bool
	result   Result
	reason   EndReason

	logger *zap.Logger
}

type Option func(*Game)

func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithPosition starts the game from pos instead of the standard setup.
func WithPosition(pos *Position) Option {
	return func(g *Game) {
		if pos != nil {
			g.pos = *pos
		}
	}
}

func NewGame(opts ...Option) *Game {
	g := &Game{
		pos:    *NewInitialPosition(),
		reps:   NewRepetitionTable(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset restores the standard starting position and clears all game state.
func (g *Game) Reset() {
	g.replace(*NewInitialPosition())
}

func (g *Game) replace(pos Position) {
	g.pos = pos
	g.reps.Reset()
	g.history = nil
	g.lastMove = Move{}
	g.hasLastMove = false
	g.lastCheck = false
	g.lastMate = false
	g.gameOver = false
	g.result = ResultNone
	g.reason = ReasonNone
}

// Position returns a copy of the current position.
func (g *Game) Position() Position { return g.pos }

func (g *Game) Pieces() []PlacedPiece { return g.pos.Board.Pieces() }

// PieceAt returns the piece on (row, col) and whether the square is occupied.
func (g *Game) PieceAt(row, col int) (Piece, bool) {
	pc := g.pos.Board.At(row, col)
	return pc, pc != 0
}

func (g *Game) IsValidPosition(row, col int) bool { return onBoard(row, col) }

func (g *Game) IsRedTurn() bool { return g.pos.SideToMove == Red }

func (g *Game) SideToMove() Side { return g.pos.SideToMove }

func (g *Game) FindGeneral(side Side) (row, col int, ok bool) {
	return g.pos.Board.FindGeneral(side)
}

func (g *Game) FindOtherGeneral(row, col int) (int, int, bool) {
	return g.pos.Board.FindOtherGeneral(row, col)
}

func (g *Game) GeneralInCheck(side Side) bool { return g.pos.GeneralInCheck(side) }

func (g *Game) HasLastMove() bool { return g.hasLastMove }

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (Move, bool) { return g.lastMove, g.hasLastMove }

func (g *Game) LastMoveCausedCheck() bool     { return g.lastCheck }
func (g *Game) LastMoveCausedCheckmate() bool { return g.lastMate }

func (g *Game) MoveLeavesOwnGeneralInCheck(fr, fc, tr, tc int) bool {
	return g.pos.MoveLeavesOwnGeneralInCheck(fr, fc, tr, tc)
}

func (g *Game) CausesCheck(fr, fc, tr, tc int) bool {
	return g.pos.CausesCheck(fr, fc, tr, tc)
}

func (g *Game) CausesCheckmate(fr, fc, tr, tc int) bool {
	return g.pos.CausesCheckmate(fr, fc, tr, tc)
}

func (g *Game) HasLegalMove(side Side) bool { return g.pos.HasLegalMove(side) }

func (g *Game) LegalMoves(side Side) []Move { return g.pos.LegalMoves(side) }

func (g *Game) IsStalemate(side Side) bool { return g.pos.IsStalemate(side) }

func (g *Game) IsThreefoldRepetition() bool {
	return g.reps.IsThreefold(g.pos.Key())
}

// History returns a copy of the moves played so far.
func (g *Game) History() []MoveRecord { return slices.Clone(g.history) }

func (g *Game) GameOver() bool       { return g.gameOver }
func (g *Game) Result() Result       { return g.result }
func (g *Game) EndReason() EndReason { return g.reason }

// CheckEndGame evaluates the position for the side about to move.
// Precedence: checkmate, then stalemate, then threefold repetition.
func (g *Game) CheckEndGame() (Result, EndReason) {
	side := g.pos.SideToMove
	if !g.pos.HasLegalMove(side) {
		if g.pos.GeneralInCheck(side) {
			return winnerOf(opposite(side)), ReasonCheckmate
		}
		return Draw, ReasonStalemate
	}
	if g.IsThreefoldRepetition() {
		return Draw, ReasonRepetition
	}
	return ResultNone, ReasonNone
}

// Resign ends the game in favour of side's opponent. No-op once the game is over.
func (g *Game) Resign(side Side) {
	if g.gameOver || side == NoSide {
		return
	}
	g.end(winnerOf(opposite(side)), ReasonResign)
}

// ResignCurrentPlayer resigns on behalf of the side to move.
func (g *Game) ResignCurrentPlayer() {
	g.Resign(g.pos.SideToMove)
}

func (g *Game) end(result Result, reason EndReason) {
	g.gameOver = true
	g.result = result
	g.reason = reason
	g.logger.Info("game ended",
		zap.Stringer("result", result),
		zap.String("reason", string(reason)),
		zap.Int("moves", len(g.history)),
	)
}

// AttemptMove validates and plays a move for the side to move.
// An illegal move returns false and leaves the game untouched.
func (g *Game) AttemptMove(fr, fc, tr, tc int) bool {
	if g.gameOver {
		return false
	}
	side := g.pos.SideToMove
	m := Move{FromRow: fr, FromCol: fc, ToRow: tr, ToCol: tc}
	if !g.pos.IsLegalFor(side, m) {
		return false
	}

	// 落子前用副本判断将军 / 绝杀
	check := g.pos.CausesCheck(fr, fc, tr, tc)
	mate := check && g.pos.CausesCheckmate(fr, fc, tr, tc)

	mover := g.pos.Board.At(fr, fc)
	captured := g.pos.Board.At(tr, tc)
	g.pos = g.pos.simulate(fr, fc, tr, tc)
	g.pos.SideToMove = opposite(side)

	g.lastMove = m
	g.hasLastMove = true
	g.lastCheck = check
	g.lastMate = mate
	g.history = append(g.history, MoveRecord{
		Move:      m,
		Piece:     mover,
		Captured:  captured,
		Check:     check,
		Checkmate: mate,
	})
	g.reps.Record(g.pos.Key())

	if result, reason := g.CheckEndGame(); result != ResultNone {
		g.end(result, reason)
	}
	return true
}
