package xiangqi

// 兵：未过河只能前进一格；过河后可前进或左右一格；永远不能后退或斜走
func canSoldierMove(b *Board, side Side, fr, fc, tr, tc int) bool {
	dir := pawnDir(side)
	if dir == 0 {
		return false
	}
	dr, dc := tr-fr, tc-fc
	if dr == dir && dc == 0 {
		return true
	}
	if !crossedRiver(side, fr) {
		return false
	}
	return dr == 0 && abs(dc) == 1
}
