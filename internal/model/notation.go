package model

import "fmt"

// MoveToNotation renders a move in simplified algebraic notation. Disambiguation
// and check/mate suffixes are not produced.
func MoveToNotation(move Move) string {
	if move.IsCastling {
		if move.To.Col == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	capture := ""
	pawnFile := ""
	if move.Captured != nil {
		capture = "x"
		if move.Piece.Type == Pawn {
			pawnFile = move.From.FileNotation()
		}
	}
	promotion := ""
	if move.IsPromotion && move.PromotedTo != "" {
		promotion = "=" + move.PromotedTo.Letter()
	}
	return fmt.Sprintf("%s%s%s%s%s", move.Piece.Type.Letter(), pawnFile, capture, move.To.SquareNotation(), promotion)
}
