package model

import "fmt"

const BoardSize = 8

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Letter returns the algebraic notation letter for the piece type. Pawns have none.
func (p PieceType) Letter() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

// IsPromotionChoice reports whether a pawn may promote to this piece type.
func (p PieceType) IsPromotionChoice() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// backRank is the row holding the color's king and rooks at the start of the game.
func (c Color) backRank() int {
	if c == White {
		return 7
	}
	return 0
}

type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

// Position is a (row, col) pair. Row 0 is black's back rank, row 7 is white's.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (p Position) offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// SquareNotation renders the position as file letter plus rank digit, e.g. "e4".
func (p Position) SquareNotation() string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, BoardSize-p.Row)
}

func (p Position) FileNotation() string {
	return fmt.Sprintf("%c", 'a'+p.Col)
}

// Board is an 8x8 grid of optional pieces indexed [row][col].
type Board [BoardSize][BoardSize]*Piece

// At returns the piece at p, or nil for an empty or off-board square.
func (b *Board) At(p Position) *Piece {
	if !p.InBounds() {
		return nil
	}
	return b[p.Row][p.Col]
}

func (b *Board) set(p Position, piece *Piece) {
	b[p.Row][p.Col] = piece
}

// Clone returns a deep copy of the board. No piece is shared with the source.
func (b *Board) Clone() *Board {
	clone := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if piece := b[row][col]; piece != nil {
				cp := *piece
				clone[row][col] = &cp
			}
		}
	}
	return clone
}

// Pieces returns every piece on the board, scanning row by row.
func (b *Board) Pieces() []Piece {
	pieces := []Piece{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if piece := b[row][col]; piece != nil {
				pieces = append(pieces, *piece)
			}
		}
	}
	return pieces
}

var backRankOrder = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position: black on rows 0-1, white on rows 6-7.
func NewBoard() *Board {
	board := &Board{}
	for col := 0; col < BoardSize; col++ {
		board[0][col] = &Piece{Type: backRankOrder[col], Color: Black}
		board[1][col] = &Piece{Type: Pawn, Color: Black}
		board[6][col] = &Piece{Type: Pawn, Color: White}
		board[7][col] = &Piece{Type: backRankOrder[col], Color: White}
	}
	return board
}
