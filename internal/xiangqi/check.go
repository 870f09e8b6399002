package xiangqi

// GeneralInCheck 判断 side 这一方的将帅是否被将军。
// 对方任何一个子能按走法“走到”将帅所在格即为将军。
// 两将照面只约束将帅自己的走法（见 canGeneralMove），不算将军。
// 找不到将帅时按未被将军处理。
func (p *Position) GeneralInCheck(side Side) bool {
	gr, gc, ok := p.Board.FindGeneral(side)
	if !ok {
		return false
	}
	enemy := opposite(side)
	for sq, pc := range p.Board.Squares {
		if pc == 0 || pc.Side() != enemy {
			continue
		}
		if p.Board.CanMoveTo(rowOf(sq), colOf(sq), gr, gc) {
			return true
		}
	}
	return false
}

// simulate 返回走完这一步之后的局面副本（不换边），原局面不变。
func (p *Position) simulate(fr, fc, tr, tc int) Position {
	np := *p
	pc := np.Board.At(fr, fc)
	np.Board.set(tr, tc, pc)
	np.Board.set(fr, fc, 0)
	return np
}

func (p *Position) simulatable(fr, fc, tr, tc int) (Piece, bool) {
	if !onBoard(fr, fc) || !onBoard(tr, tc) {
		return 0, false
	}
	pc := p.Board.At(fr, fc)
	return pc, pc != 0
}

// MoveLeavesOwnGeneralInCheck reports whether moving the piece on (fr,fc) to
// (tr,tc) would expose its own General. An empty origin reports false.
func (p *Position) MoveLeavesOwnGeneralInCheck(fr, fc, tr, tc int) bool {
	pc, ok := p.simulatable(fr, fc, tr, tc)
	if !ok {
		return false
	}
	np := p.simulate(fr, fc, tr, tc)
	return np.GeneralInCheck(pc.Side())
}

// CausesCheck reports whether the move puts the opponent's General in check.
func (p *Position) CausesCheck(fr, fc, tr, tc int) bool {
	pc, ok := p.simulatable(fr, fc, tr, tc)
	if !ok {
		return false
	}
	np := p.simulate(fr, fc, tr, tc)
	return np.GeneralInCheck(opposite(pc.Side()))
}

// CausesCheckmate reports whether the move checks the opponent and leaves
// them no move that escapes the check.
func (p *Position) CausesCheckmate(fr, fc, tr, tc int) bool {
	pc, ok := p.simulatable(fr, fc, tr, tc)
	if !ok {
		return false
	}
	np := p.simulate(fr, fc, tr, tc)
	opp := opposite(pc.Side())
	if !np.GeneralInCheck(opp) {
		return false
	}
	return !np.HasLegalMove(opp)
}

// IsLegalFor reports whether side may play m: own piece, movement rule,
// no friendly capture, no self-exposure.
func (p *Position) IsLegalFor(side Side, m Move) bool {
	if !onBoard(m.FromRow, m.FromCol) || !onBoard(m.ToRow, m.ToCol) {
		return false
	}
	pc := p.Board.At(m.FromRow, m.FromCol)
	if pc == 0 || pc.Side() != side {
		return false
	}
	if dst := p.Board.At(m.ToRow, m.ToCol); dst != 0 && dst.Side() == side {
		return false
	}
	if !p.Board.CanMoveTo(m.FromRow, m.FromCol, m.ToRow, m.ToCol) {
		return false
	}
	return !p.MoveLeavesOwnGeneralInCheck(m.FromRow, m.FromCol, m.ToRow, m.ToCol)
}

// eachLegalMove 遍历 side 所有合法走法（每个子 × 90 格），fn 返回 false 时提前结束。
func (p *Position) eachLegalMove(side Side, fn func(Move) bool) {
	for sq, pc := range p.Board.Squares {
		if pc == 0 || pc.Side() != side {
			continue
		}
		fr, fc := rowOf(sq), colOf(sq)
		for to := 0; to < NumSquares; to++ {
			m := Move{FromRow: fr, FromCol: fc, ToRow: rowOf(to), ToCol: colOf(to)}
			if !p.IsLegalFor(side, m) {
				continue
			}
			if !fn(m) {
				return
			}
		}
	}
}

// HasLegalMove short-circuits on the first legal move found for side.
func (p *Position) HasLegalMove(side Side) bool {
	found := false
	p.eachLegalMove(side, func(Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMoves 生成 side 的全部合法走法
func (p *Position) LegalMoves(side Side) []Move {
	var out []Move
	p.eachLegalMove(side, func(m Move) bool {
		out = append(out, m)
		return true
	})
	return out
}

// IsStalemate 困毙：未被将军但无棋可走（本规则下判和）。
func (p *Position) IsStalemate(side Side) bool {
	if p.GeneralInCheck(side) {
		return false
	}
	return !p.HasLegalMove(side)
}
