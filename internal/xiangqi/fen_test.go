package xiangqi

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeInitialPosition(t *testing.T) {
	pos := NewInitialPosition()
	if got := pos.Encode(); got != startFEN {
		t.Fatalf("encode mismatch: got=%q want=%q", got, startFEN)
	}

	fen := strings.ReplaceAll(initialBoardString, "\n", "/") + " r"
	decoded, err := DecodePosition(fen)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if *decoded != *pos {
		t.Fatalf("decoded position differs from initial position")
	}
}

func TestEncodeDecodeAlongGame(t *testing.T) {
	g := NewGame()
	for ply := 0; ply < 24; ply++ {
		pos := g.Position()
		moves := pos.LegalMoves(pos.SideToMove)
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		if !g.AttemptMove(mv.FromRow, mv.FromCol, mv.ToRow, mv.ToCol) {
			t.Fatalf("legal move rejected at ply %d: %+v", ply, mv)
		}
		next := g.Position()
		decoded, err := DecodePosition(next.Encode())
		if err != nil {
			t.Fatalf("decode failed at ply %d: %v", ply, err)
		}
		if *decoded != next {
			t.Fatalf("round trip mismatch at ply %d: %s", ply, next.Encode())
		}
		if g.GameOver() {
			return
		}
	}
}

func TestDecodePositionErrors(t *testing.T) {
	for _, fen := range []string{
		"",
		"rheakaehr/9 r",
		"rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR",
		"rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR x",
		"rheakaehrr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR r",
		"rheakaeh/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR r",
		"rheakaehq/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR r",
	} {
		if _, err := DecodePosition(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("DecodePosition(%q): want ErrInvalidFEN, got %v", fen, err)
		}
	}
}

func TestPositionKey(t *testing.T) {
	pos := NewInitialPosition()
	key := pos.Key()
	if len(key) != NumSquares+2 {
		t.Fatalf("key length = %d", len(key))
	}
	if !strings.HasPrefix(key, "rheakaehr.........") {
		t.Fatalf("unexpected key prefix: %q", key[:18])
	}
	if !strings.HasSuffix(key, "RHEAKAEHR r") {
		t.Fatalf("unexpected key suffix: %q", key[len(key)-11:])
	}
	pos.SideToMove = Black
	if pos.Key() == key {
		t.Fatalf("side to move must be part of the key")
	}
}
