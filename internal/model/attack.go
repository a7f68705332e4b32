package model

var (
	rookDirs   = []Position{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	bishopDirs = []Position{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	queenDirs  = append(append([]Position{}, rookDirs...), bishopDirs...)
	knightDirs = []Position{{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1}, {Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2}}
)

// IsSquareAttacked reports whether any piece of byColor could reach square in one
// pseudo-legal step. Whether that capture would be legal for the attacker is
// deliberately not considered.
func IsSquareAttacked(board *Board, square Position, byColor Color) bool {
	isAttacker := func(p Position, types ...PieceType) bool {
		piece := board.At(p)
		if piece == nil || piece.Color != byColor {
			return false
		}
		for _, t := range types {
			if piece.Type == t {
				return true
			}
		}
		return false
	}

	for _, dir := range knightDirs {
		if isAttacker(square.offset(dir.Row, dir.Col), Knight) {
			return true
		}
	}
	if rayAttacked(board, square, rookDirs, byColor, Rook) || rayAttacked(board, square, bishopDirs, byColor, Bishop) {
		return true
	}
	// Pawns attack toward the opposite back rank, so look one row behind the square
	// from the attacker's point of view.
	pawnRow := 1
	if byColor == Black {
		pawnRow = -1
	}
	for _, dCol := range []int{-1, 1} {
		if isAttacker(square.offset(pawnRow, dCol), Pawn) {
			return true
		}
	}
	for _, dir := range queenDirs {
		if isAttacker(square.offset(dir.Row, dir.Col), King) {
			return true
		}
	}
	return false
}

// rayAttacked walks each direction until the first piece. A blocking enemy slider
// (or queen) counts; any other blocker ends the ray.
func rayAttacked(board *Board, square Position, dirs []Position, byColor Color, slider PieceType) bool {
	for _, dir := range dirs {
		target := square.offset(dir.Row, dir.Col)
		for target.InBounds() {
			if piece := board.At(target); piece != nil {
				if piece.Color == byColor && (piece.Type == slider || piece.Type == Queen) {
					return true
				}
				break
			}
			target = target.offset(dir.Row, dir.Col)
		}
	}
	return false
}

// FindKing scans the board for color's king.
func FindKing(board *Board, color Color) (Position, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := board[row][col]
			if piece != nil && piece.Type == King && piece.Color == color {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// IsInCheck reports whether color's king is attacked. A board without that king
// is treated as not in check.
func IsInCheck(board *Board, color Color) bool {
	king, ok := FindKing(board, color)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, color.Opposite())
}
