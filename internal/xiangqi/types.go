package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Opposite returns the other side; NoSide stays NoSide.
func (s Side) Opposite() Side {
	return opposite(s)
}

type Kind int8

const (
	KindNone Kind = iota
	General       // 帅 / 将
	Advisor       // 仕 / 士
	Elephant      // 相 / 象
	Horse         // 马
	Chariot       // 车
	Cannon        // 炮
	Soldier       // 兵 / 卒
)

var kindLetters = [...]byte{
	KindNone: '.',
	General:  'K',
	Advisor:  'A',
	Elephant: 'E',
	Horse:    'H',
	Chariot:  'R',
	Cannon:   'C',
	Soldier:  'P',
}

// Letter is the uppercase code used by the save format and position keys.
func (k Kind) Letter() byte {
	if k < KindNone || int(k) >= len(kindLetters) {
		return '?'
	}
	return kindLetters[k]
}

func (k Kind) String() string {
	switch k {
	case General:
		return "general"
	case Advisor:
		return "advisor"
	case Elephant:
		return "elephant"
	case Horse:
		return "horse"
	case Chariot:
		return "chariot"
	case Cannon:
		return "cannon"
	case Soldier:
		return "soldier"
	default:
		return "none"
	}
}

func kindFromLetter(ch byte) (Kind, bool) {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	for k := General; k <= Soldier; k++ {
		if kindLetters[k] == ch {
			return k, true
		}
	}
	return KindNone, false
}

// Piece 0=空；>0 红；<0 黑；abs=Kind
type Piece int8

func MakePiece(side Side, k Kind) Piece {
	if k == KindNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(k)
	}
	return -Piece(k)
}

func (p Piece) Kind() Kind {
	if p < 0 {
		return Kind(-p)
	}
	return Kind(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

// Char is the position-key character: uppercase for Red, lowercase for Black.
func (p Piece) Char() byte {
	if p == 0 {
		return '.'
	}
	ch := p.Kind().Letter()
	if p.Side() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// Name is the side-specific display name.
func (p Piece) Name() string {
	red := p.Side() == Red
	switch p.Kind() {
	case General:
		if red {
			return "帅"
		}
		return "将"
	case Advisor:
		if red {
			return "仕"
		}
		return "士"
	case Elephant:
		if red {
			return "相"
		}
		return "象"
	case Horse:
		return "马"
	case Chariot:
		return "车"
	case Cannon:
		return "炮"
	case Soldier:
		if red {
			return "兵"
		}
		return "卒"
	}
	return ""
}

func (p Piece) String() string {
	if p == 0 {
		return "empty"
	}
	return p.Side().String() + " " + p.Kind().String()
}

type Board struct {
	Squares [NumSquares]Piece
}

// Position = 棋盘 + 轮到谁走
type Position struct {
	Board      Board
	SideToMove Side
}

type Move struct {
	FromRow int `json:"from_row"`
	FromCol int `json:"from_col"`
	ToRow   int `json:"to_row"`
	ToCol   int `json:"to_col"`
}

// PlacedPiece is a read-only view of a piece and its square.
type PlacedPiece struct {
	Piece Piece
	Row   int
	Col   int
}

func (pp PlacedPiece) Kind() Kind { return pp.Piece.Kind() }
func (pp PlacedPiece) Side() Side { return pp.Piece.Side() }
func (pp PlacedPiece) Name() string {
	return pp.Piece.Name()
}
