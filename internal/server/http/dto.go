package httpserver

import "xiangqi/internal/xiangqi"

// 前端用的招法结构：行 0..9（黑方底线为 0），列 0..8
type MoveDTO struct {
	FromRow int `json:"from_row"`
	FromCol int `json:"from_col"`
	ToRow   int `json:"to_row"`
	ToCol   int `json:"to_col"`
}

func dtoToMove(m MoveDTO) xiangqi.Move {
	return xiangqi.Move{FromRow: m.FromRow, FromCol: m.FromCol, ToRow: m.ToRow, ToCol: m.ToCol}
}

func moveToDTO(m xiangqi.Move) MoveDTO {
	return MoveDTO{FromRow: m.FromRow, FromCol: m.FromCol, ToRow: m.ToRow, ToCol: m.ToCol}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

type PieceDTO struct {
	Code string `json:"code"` // 单字母，红大写黑小写
	Name string `json:"name"` // 帅/将 等
	Side string `json:"side"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

func piecesToDTO(ps []xiangqi.PlacedPiece) []PieceDTO {
	out := make([]PieceDTO, len(ps))
	for i, pp := range ps {
		out[i] = PieceDTO{
			Code: string(pp.Piece.Char()),
			Name: pp.Name(),
			Side: pp.Side().String(),
			Row:  pp.Row,
			Col:  pp.Col,
		}
	}
	return out
}

func sideToInt(s xiangqi.Side) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

// GameRequest 只带 game_id 的请求：state / legal_moves / delete_game
type GameRequest struct {
	GameID string `json:"game_id"`
}

// Play 请求
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// Resign 请求；side 为空表示当前行棋方认输
type ResignRequest struct {
	GameID string `json:"game_id"`
	Side   string `json:"side"`
}

// Save / Load 请求
type SlotRequest struct {
	GameID string `json:"game_id"`
	Slot   string `json:"slot"`
}

// StateResponse 所有接口共用的局面快照
type StateResponse struct {
	GameID        string     `json:"game_id"`
	Position      string     `json:"position"` // FEN-like 字符串
	Pieces        []PieceDTO `json:"pieces"`
	ToMove        int        `json:"to_move"` // 0=红, 1=黑
	LastMove      *MoveDTO   `json:"last_move,omitempty"`
	LastMoveCheck bool       `json:"last_move_check"`
	LastMoveMate  bool       `json:"last_move_checkmate"`
	InCheck       bool       `json:"in_check"`
	Status        string     `json:"status"` // "ongoing" / "over"
	Result        string     `json:"result"`
	Reason        string     `json:"reason,omitempty"`
	MoveCount     int        `json:"move_count"`
	LegalMoves    []MoveDTO  `json:"legal_moves"`
}

// Play 返回：非法着法 ok=false，局面不变
type PlayResponse struct {
	OK bool `json:"ok"`
	StateResponse
}

type SaveResponse struct {
	OK   bool   `json:"ok"`
	Slot string `json:"slot"`
}

type LegalMovesResponse struct {
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
}

func snapshot(id string, g *xiangqi.Game) StateResponse {
	pos := g.Position()
	resp := StateResponse{
		GameID:        id,
		Position:      pos.Encode(),
		Pieces:        piecesToDTO(g.Pieces()),
		ToMove:        sideToInt(pos.SideToMove),
		LastMoveCheck: g.LastMoveCausedCheck(),
		LastMoveMate:  g.LastMoveCausedCheckmate(),
		InCheck:       g.GeneralInCheck(pos.SideToMove),
		Status:        "ongoing",
		Result:        g.Result().String(),
		Reason:        string(g.EndReason()),
		MoveCount:     len(g.History()),
		LegalMoves:    []MoveDTO{},
	}
	if m, ok := g.LastMove(); ok {
		dto := moveToDTO(m)
		resp.LastMove = &dto
	}
	if g.GameOver() {
		resp.Status = "over"
	} else {
		resp.LegalMoves = movesToDTO(g.LegalMoves(pos.SideToMove))
	}
	return resp
}
