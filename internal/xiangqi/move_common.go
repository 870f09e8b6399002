package xiangqi

// moveRule 判断一个子能否从 (fr,fc) 走到 (tr,tc)。
// 只看棋形和占位，不管轮到谁走、不管目标是不是己方子、也不管走完后是否被将军。
type moveRule func(b *Board, side Side, fr, fc, tr, tc int) bool

var moveRules = [...]moveRule{
	KindNone: nil,
	General:  canGeneralMove,
	Advisor:  canAdvisorMove,
	Elephant: canElephantMove,
	Horse:    canHorseMove,
	Chariot:  canChariotMove,
	Cannon:   canCannonMove,
	Soldier:  canSoldierMove,
}

// CanMoveTo reports whether the piece on (fromRow, fromCol) may reach
// (toRow, toCol) by its own movement rule. It never mutates b.
func (b *Board) CanMoveTo(fromRow, fromCol, toRow, toCol int) bool {
	if !onBoard(fromRow, fromCol) || !onBoard(toRow, toCol) {
		return false
	}
	if fromRow == toRow && fromCol == toCol {
		return false
	}
	pc := b.At(fromRow, fromCol)
	if pc == 0 {
		return false
	}
	k := pc.Kind()
	if int(k) >= len(moveRules) || moveRules[k] == nil {
		return false
	}
	return moveRules[k](b, pc.Side(), fromRow, fromCol, toRow, toCol)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// 将：九宫内上下左右一格，且走完后不能与对方将帅照面
func canGeneralMove(b *Board, side Side, fr, fc, tr, tc int) bool {
	if !inPalace(side, tr, tc) {
		return false
	}
	if abs(tr-fr)+abs(tc-fc) != 1 {
		return false
	}
	or, oc, ok := b.FindGeneral(opposite(side))
	if !ok || oc != tc {
		return true
	}
	after := *b
	after.set(tr, tc, after.At(fr, fc))
	after.set(fr, fc, 0)
	return after.countBetween(tr, tc, or, oc) > 0
}

// 士：九宫内斜走一格
func canAdvisorMove(b *Board, side Side, fr, fc, tr, tc int) bool {
	if !inPalace(side, tr, tc) {
		return false
	}
	return abs(tr-fr) == 1 && abs(tc-fc) == 1
}

// 相：田字，不过河，塞象眼
func canElephantMove(b *Board, side Side, fr, fc, tr, tc int) bool {
	if abs(tr-fr) != 2 || abs(tc-fc) != 2 {
		return false
	}
	if !onOwnHalf(side, tr) {
		return false
	}
	return b.At((fr+tr)/2, (fc+tc)/2) == 0
}

// 车：横竖走，中间无子
func canChariotMove(b *Board, side Side, fr, fc, tr, tc int) bool {
	if fr != tr && fc != tc {
		return false
	}
	return b.countBetween(fr, fc, tr, tc) == 0
}

// 炮：不吃子时同车；吃子时中间恰好隔一个子（炮架不分红黑）
func canCannonMove(b *Board, side Side, fr, fc, tr, tc int) bool {
	if fr != tr && fc != tc {
		return false
	}
	between := b.countBetween(fr, fc, tr, tc)
	if b.At(tr, tc) == 0 {
		return between == 0
	}
	return between == 1
}
