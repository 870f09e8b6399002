package xiangqi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const saveHeader = "# Xiangqi Save File"

// WriteSave writes pos in the line-based save format:
//
//	# Xiangqi Save File
//	PIECE <code> <row> <col> <isRed>
//	TURN <isRedToMove>
func WriteSave(w io.Writer, pos *Position) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, saveHeader)
	for _, pp := range pos.Board.Pieces() {
		fmt.Fprintf(bw, "PIECE %c %d %d %t\n", pp.Kind().Letter(), pp.Row, pp.Col, pp.Side() == Red)
	}
	fmt.Fprintf(bw, "TURN %t\n", pos.SideToMove == Red)
	return bw.Flush()
}

// ReadSave parses the save format. Blank lines and lines starting with '#'
// are skipped; a missing TURN line means Red to move.
func ReadSave(r io.Reader) (*Position, error) {
	pos := &Position{SideToMove: Red}
	sc := bufio.NewScanner(r)
	lineNo := 0
	turnSeen := false
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "PIECE":
			if err := readPieceLine(&pos.Board, fields); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case "TURN":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: %w: TURN wants 1 field", lineNo, ErrMalformedSave)
			}
			if turnSeen {
				return nil, fmt.Errorf("line %d: %w: duplicate TURN", lineNo, ErrMalformedSave)
			}
			turnSeen = true
			red, err := parseSaveBool(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			pos.SideToMove = Black
			if red {
				pos.SideToMove = Red
			}
		default:
			return nil, fmt.Errorf("line %d: %w: unknown record %q", lineNo, ErrMalformedSave, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d: %w: %v", lineNo+1, ErrMalformedSave, err)
		}
		return nil, fmt.Errorf("read save: %w", err)
	}
	return pos, nil
}

func readPieceLine(b *Board, fields []string) error {
	if len(fields) != 5 {
		return fmt.Errorf("%w: PIECE wants 4 fields, got %d", ErrMalformedSave, len(fields)-1)
	}
	code := fields[1]
	if len(code) != 1 || code[0] < 'A' || code[0] > 'Z' {
		return fmt.Errorf("%w: bad piece code %q", ErrMalformedSave, code)
	}
	k, ok := kindFromLetter(code[0])
	if !ok {
		return fmt.Errorf("%w: bad piece code %q", ErrMalformedSave, code)
	}
	row, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("%w: bad row %q", ErrMalformedSave, fields[2])
	}
	col, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("%w: bad col %q", ErrMalformedSave, fields[3])
	}
	if !onBoard(row, col) {
		return fmt.Errorf("%w: square (%d,%d) off the board", ErrMalformedSave, row, col)
	}
	red, err := parseSaveBool(fields[4])
	if err != nil {
		return err
	}
	if b.At(row, col) != 0 {
		return fmt.Errorf("%w: square (%d,%d) occupied twice", ErrMalformedSave, row, col)
	}
	side := Black
	if red {
		side = Red
	}
	b.set(row, col, MakePiece(side, k))
	return nil
}

func parseSaveBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: bad boolean %q", ErrMalformedSave, s)
}

// Save writes the current position to path. The file is written to a
// temporary sibling first and renamed over path, so a failed save keeps the
// previous contents.
func (g *Game) Save(path string) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	if err := WriteSave(f, &g.pos); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	g.logger.Info("game saved", zap.String("path", path), zap.Int("pieces", len(g.pos.Board.Pieces())))
	return nil
}

// Load replaces the game with the position stored at path and clears the
// move history and repetition counts. On failure the game is left as it was.
func (g *Game) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		g.logger.Warn("load game failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("load game: %w", err)
	}
	defer f.Close()

	pos, err := ReadSave(f)
	if err != nil {
		g.logger.Warn("load game failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("load game %s: %w", path, err)
	}
	for _, side := range []Side{Red, Black} {
		if _, _, ok := pos.Board.FindGeneral(side); !ok {
			g.logger.Warn("loaded position has no general", zap.String("path", path), zap.Stringer("side", side))
		}
	}
	g.replace(*pos)
	g.logger.Info("game loaded", zap.String("path", path), zap.Int("pieces", len(pos.Board.Pieces())))
	return nil
}
