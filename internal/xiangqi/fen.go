package xiangqi

import (
	"fmt"
	"strings"
)

// Encode 简单 FEN-like：10 行用“/”隔开，空位用数字压缩；空格后 r/b 表示轮到谁走
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.At(r, c)
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Red {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: missing side to move", ErrInvalidFEN)
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidFEN, Rows, len(rows))
	}
	var b Board
	for r := 0; r < Rows; r++ {
		row := rows[r]
		c := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if c >= Cols {
				return nil, fmt.Errorf("%w: row %d too long", ErrInvalidFEN, r)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			k, ok := kindFromLetter(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			side := Black
			if ch >= 'A' && ch <= 'Z' {
				side = Red
			}
			b.set(r, c, MakePiece(side, k))
			c++
		}
		if c != Cols {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrInvalidFEN, r, c)
		}
	}
	var stm Side
	switch parts[1] {
	case "r", "w":
		stm = Red
	case "b":
		stm = Black
	default:
		return nil, fmt.Errorf("%w: bad side %q", ErrInvalidFEN, parts[1])
	}
	return &Position{Board: b, SideToMove: stm}, nil
}
