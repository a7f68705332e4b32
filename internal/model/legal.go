package model

// ValidMoves returns the legal destinations for the piece at position: each
// pseudo-legal move is played on a throwaway copy of the board and dropped if it
// leaves the mover's king attacked.
func ValidMoves(board *Board, position Position, enPassantTarget *Position) []Position {
	piece := board.At(position)
	if piece == nil {
		return []Position{}
	}
	legal := []Position{}
	for _, to := range RawMoves(board, position, enPassantTarget) {
		sim := board.Clone()
		placeMove(sim, position, to, false)
		if !IsInCheck(sim, piece.Color) {
			legal = append(legal, to)
		}
	}
	return legal
}

// HasLegalMoves reports whether any piece of color has at least one legal move.
func HasLegalMoves(board *Board, color Color, enPassantTarget *Position) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := board[row][col]
			if piece == nil || piece.Color != color {
				continue
			}
			if len(ValidMoves(board, Position{Row: row, Col: col}, enPassantTarget)) > 0 {
				return true
			}
		}
	}
	return false
}

type placement struct {
	captured  *Piece
	enPassant bool
	castling  bool
}

// placeMove plays from->to on board in place. A pawn moving diagonally onto an
// empty square is an en passant capture and removes the pawn beside its origin; a
// king moving two files also moves the matching rook. With markMoved the moved
// pieces are replaced by copies flagged HasMoved.
func placeMove(board *Board, from, to Position, markMoved bool) placement {
	piece := board.At(from)
	var result placement
	if piece == nil {
		return result
	}
	result.captured = board.At(to)

	moved := piece
	if markMoved {
		cp := *piece
		cp.HasMoved = true
		moved = &cp
	}
	board.set(to, moved)
	board.set(from, nil)

	if piece.Type == Pawn && from.Col != to.Col && result.captured == nil {
		victim := Position{Row: from.Row, Col: to.Col}
		result.captured = board.At(victim)
		result.enPassant = true
		board.set(victim, nil)
	}

	if piece.Type == King && abs(to.Col-from.Col) == 2 {
		result.castling = true
		rookFrom, rookTo := Position{Row: from.Row, Col: 7}, Position{Row: from.Row, Col: 5}
		if to.Col == 2 {
			rookFrom, rookTo = Position{Row: from.Row, Col: 0}, Position{Row: from.Row, Col: 3}
		}
		if rook := board.At(rookFrom); rook != nil {
			if markMoved {
				cp := *rook
				cp.HasMoved = true
				rook = &cp
			}
			board.set(rookTo, rook)
			board.set(rookFrom, nil)
		}
	}
	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
