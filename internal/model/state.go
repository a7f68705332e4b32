package model

// GameState is one immutable snapshot of a game. Transitions return a new value;
// the board, history and captured slices of a published snapshot are never
// written to again, so callers must treat them as read-only as well.
type GameState struct {
	Board            *Board            `json:"board"`
	CurrentTurn      Color             `json:"currentTurn"`
	SelectedPosition *Position         `json:"selectedPosition"`
	ValidMoves       []Position        `json:"validMoves"`
	MoveHistory      []Move            `json:"moveHistory"`
	CapturedPieces   CapturedPieces    `json:"capturedPieces"`
	GameStatus       GameStatus        `json:"gameStatus"`
	LastMove         *Move             `json:"lastMove"`
	EnPassantTarget  *Position         `json:"enPassantTarget"`
	PendingPromotion *PendingPromotion `json:"pendingPromotion"`
}

// NewGameState returns the canonical starting snapshot.
func NewGameState() GameState {
	return GameState{
		Board:            NewBoard(),
		CurrentTurn:      White,
		SelectedPosition: nil,
		ValidMoves:       make([]Position, 0),
		MoveHistory:      make([]Move, 0),
		CapturedPieces:   newCapturedPieces(),
		GameStatus:       StatusPlaying,
		LastMove:         nil,
		EnPassantTarget:  nil,
		PendingPromotion: nil,
	}
}

// MoveNumber is the full-move counter: it advances after black moves.
func (s GameState) MoveNumber() int {
	return len(s.MoveHistory)/2 + 1
}

// Winner returns the side that delivered mate.
func (s GameState) Winner() (Color, bool) {
	if s.GameStatus != StatusCheckmate {
		return "", false
	}
	return s.CurrentTurn.Opposite(), true
}

func (s GameState) isValidDestination(p Position) bool {
	for _, m := range s.ValidMoves {
		if m == p {
			return true
		}
	}
	return false
}

func (s GameState) withSelection(p *Position, moves []Position) GameState {
	s.SelectedPosition = p
	s.ValidMoves = moves
	return s
}

// SelectSquare applies one click on position. Input while the game is over or a
// promotion is pending, and any out-of-turn or off-board click, changes nothing.
func (s GameState) SelectSquare(position Position) GameState {
	if s.GameStatus.IsTerminal() || s.PendingPromotion != nil || !position.InBounds() {
		return s
	}
	clicked := s.Board.At(position)
	ownPiece := clicked != nil && clicked.Color == s.CurrentTurn

	if s.SelectedPosition != nil {
		if s.isValidDestination(position) {
			return s.executeMove(*s.SelectedPosition, position)
		}
		if ownPiece {
			return s.withSelection(&position, ValidMoves(s.Board, position, s.EnPassantTarget))
		}
		return s.withSelection(nil, make([]Position, 0))
	}

	if ownPiece {
		return s.withSelection(&position, ValidMoves(s.Board, position, s.EnPassantTarget))
	}
	return s
}

func (s GameState) executeMove(from, to Position) GameState {
	piece := *s.Board.At(from)

	if piece.Type == Pawn && (to.Row == 0 || to.Row == BoardSize-1) {
		pending := &PendingPromotion{From: from, To: to, Piece: piece}
		if target := s.Board.At(to); target != nil {
			captured := *target
			pending.Captured = &captured
		}
		s.PendingPromotion = pending
		return s
	}

	board := s.Board.Clone()
	placed := placeMove(board, from, to, true)

	var enPassantTarget *Position
	if piece.Type == Pawn && abs(to.Row-from.Row) == 2 {
		enPassantTarget = &Position{Row: (from.Row + to.Row) / 2, Col: to.Col}
	}

	move := Move{
		From:        from,
		To:          to,
		Piece:       piece,
		Captured:    placed.captured,
		IsEnPassant: placed.enPassant,
		IsCastling:  placed.castling,
	}
	return s.commit(board, move, enPassantTarget)
}

// PromotePawn resolves a pending promotion with pieceType. Without a pending
// promotion, or with a piece type a pawn cannot become, nothing changes.
func (s GameState) PromotePawn(pieceType PieceType) GameState {
	pending := s.PendingPromotion
	if pending == nil || !pieceType.IsPromotionChoice() {
		return s
	}

	board := s.Board.Clone()
	board.set(pending.To, &Piece{Type: pieceType, Color: pending.Piece.Color, HasMoved: true})
	board.set(pending.From, nil)

	move := Move{
		From:        pending.From,
		To:          pending.To,
		Piece:       pending.Piece,
		Captured:    pending.Captured,
		IsPromotion: true,
		PromotedTo:  pieceType,
	}
	return s.commit(board, move, nil)
}

// commit records move played on board and hands the turn to the opponent. The en
// passant target is always replaced, never carried over.
func (s GameState) commit(board *Board, move Move, enPassantTarget *Position) GameState {
	nextTurn := move.Piece.Color.Opposite()
	return GameState{
		Board:            board,
		CurrentTurn:      nextTurn,
		SelectedPosition: nil,
		ValidMoves:       make([]Position, 0),
		MoveHistory:      appendCopy(s.MoveHistory, move),
		CapturedPieces:   s.CapturedPieces.with(move.Captured),
		GameStatus:       DetermineGameStatus(board, nextTurn, enPassantTarget),
		LastMove:         &move,
		EnPassantTarget:  enPassantTarget,
		PendingPromotion: nil,
	}
}
