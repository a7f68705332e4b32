package model

// RawMoves returns the pseudo-legal destinations for the piece at position. Moves
// that leave the mover's own king attacked are still included, except castling,
// which is only offered when the king's path is safe.
func RawMoves(board *Board, position Position, enPassantTarget *Position) []Position {
	piece := board.At(position)
	if piece == nil {
		return []Position{}
	}
	switch piece.Type {
	case Pawn:
		return pawnMoves(board, position, piece, enPassantTarget)
	case Knight:
		return stepMoves(board, position, piece.Color, knightDirs)
	case Bishop:
		return slidingMoves(board, position, piece.Color, bishopDirs)
	case Rook:
		return slidingMoves(board, position, piece.Color, rookDirs)
	case Queen:
		return slidingMoves(board, position, piece.Color, queenDirs)
	case King:
		return append(stepMoves(board, position, piece.Color, queenDirs), castleMoves(board, position, piece)...)
	default:
		return []Position{}
	}
}

func slidingMoves(board *Board, from Position, color Color, dirs []Position) []Position {
	moves := []Position{}
	for _, dir := range dirs {
		target := from.offset(dir.Row, dir.Col)
		for target.InBounds() {
			occupant := board.At(target)
			if occupant == nil {
				moves = append(moves, target)
			} else {
				if occupant.Color != color {
					moves = append(moves, target)
				}
				break
			}
			target = target.offset(dir.Row, dir.Col)
		}
	}
	return moves
}

// stepMoves handles the single-step pieces: knight offsets and king neighbours.
func stepMoves(board *Board, from Position, color Color, offsets []Position) []Position {
	moves := []Position{}
	for _, dir := range offsets {
		target := from.offset(dir.Row, dir.Col)
		if !target.InBounds() {
			continue
		}
		if occupant := board.At(target); occupant == nil || occupant.Color != color {
			moves = append(moves, target)
		}
	}
	return moves
}

func pawnDirection(color Color) int {
	if color == White {
		return -1
	}
	return 1
}

func pawnStartRow(color Color) int {
	if color == White {
		return 6
	}
	return 1
}

func pawnMoves(board *Board, from Position, piece *Piece, enPassantTarget *Position) []Position {
	moves := []Position{}
	dir := pawnDirection(piece.Color)

	forward := from.offset(dir, 0)
	if forward.InBounds() && board.At(forward) == nil {
		moves = append(moves, forward)
		double := from.offset(2*dir, 0)
		if from.Row == pawnStartRow(piece.Color) && board.At(double) == nil {
			moves = append(moves, double)
		}
	}

	for _, dCol := range []int{-1, 1} {
		target := from.offset(dir, dCol)
		if !target.InBounds() {
			continue
		}
		if occupant := board.At(target); occupant != nil && occupant.Color != piece.Color {
			moves = append(moves, target)
		}
		if enPassantTarget != nil && *enPassantTarget == target {
			moves = append(moves, target)
		}
	}
	return moves
}

// castleMoves offers the two-file king move when the king and rook are unmoved,
// the squares between them are empty and none of the king's current, crossed or
// landing squares is attacked.
func castleMoves(board *Board, from Position, king *Piece) []Position {
	moves := []Position{}
	rank := king.Color.backRank()
	if king.HasMoved || from.Row != rank {
		return moves
	}
	enemy := king.Color.Opposite()

	sides := []struct {
		rookCol  int
		empty    []int
		kingPath []int
		landing  int
	}{
		{rookCol: 7, empty: []int{5, 6}, kingPath: []int{4, 5, 6}, landing: 6},
		{rookCol: 0, empty: []int{1, 2, 3}, kingPath: []int{4, 3, 2}, landing: 2},
	}
	for _, side := range sides {
		rook := board[rank][side.rookCol]
		if rook == nil || rook.Type != Rook || rook.Color != king.Color || rook.HasMoved {
			continue
		}
		if !squaresEmpty(board, rank, side.empty) {
			continue
		}
		safe := true
		for _, col := range side.kingPath {
			if IsSquareAttacked(board, Position{Row: rank, Col: col}, enemy) {
				safe = false
				break
			}
		}
		if safe {
			moves = append(moves, Position{Row: rank, Col: side.landing})
		}
	}
	return moves
}

func squaresEmpty(board *Board, row int, cols []int) bool {
	for _, col := range cols {
		if board[row][col] != nil {
			return false
		}
	}
	return true
}
