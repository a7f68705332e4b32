package model

// Move is a committed move. Piece is the mover as it was before the move.
// Recorded moves are never modified.
type Move struct {
	From        Position  `json:"from"`
	To          Position  `json:"to"`
	Piece       Piece     `json:"piece"`
	Captured    *Piece    `json:"captured,omitempty"`
	IsEnPassant bool      `json:"isEnPassant,omitempty"`
	IsCastling  bool      `json:"isCastling,omitempty"`
	IsPromotion bool      `json:"isPromotion,omitempty"`
	PromotedTo  PieceType `json:"promotedTo,omitempty"`
}

// PendingPromotion parks a pawn move onto the last rank until a piece is chosen.
type PendingPromotion struct {
	From     Position `json:"from"`
	To       Position `json:"to"`
	Piece    Piece    `json:"piece"`
	Captured *Piece   `json:"captured,omitempty"`
}

// CapturedPieces files each captured piece under its own color.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

// with returns a copy of the ledger including piece. The receiver's slices are
// not appended to, so earlier snapshots keep their contents.
func (c CapturedPieces) with(piece *Piece) CapturedPieces {
	if piece == nil {
		return c
	}
	switch piece.Color {
	case White:
		c.White = appendCopy(c.White, *piece)
	case Black:
		c.Black = appendCopy(c.Black, *piece)
	}
	return c
}

func appendCopy[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

// PromotionRequest carries the piece chosen for a pending promotion.
type PromotionRequest struct {
	PieceType PieceType `json:"pieceType"`
}
