package chess

// castleRooks[color][kind-KingCastle] gives the rook's from/to squares.
var castleRooks = [2][2][2]Square{
	{{H1, F1}, {A1, D1}},
	{{H8, F8}, {A8, D8}},
}

func castleRook(c Color, kind MoveKind) (from, to Square) {
	sqs := castleRooks[c][kind-KingCastle]
	return sqs[0], sqs[1]
}

// enPassantVictim returns the square of the pawn captured en passant when
// color c lands on to.
func enPassantVictim(c Color, to Square) Square {
	if c == White {
		return to - 8
	}
	return to + 8
}

func (p *Position) movePiece(c Color, pc Piece, from, to Square, hash bool) {
	p.RemovePiece(c, pc, from, hash)
	p.PlacePiece(c, pc, to, hash)
}

func (p *Position) pushHistory(m Move) {
	p.history = append(p.history, snapshot{
		castling:       p.castling,
		enPassant:      p.enPassant,
		fiftyMoveClock: p.fiftyMoveClock,
		move:           m,
		hash:           p.hash,
	})
}

// popHistory drops the newest snapshot and restores the scalar state of
// the one beneath it. It returns the dropped snapshot's move.
func (p *Position) popHistory() Move {
	n := len(p.history)
	if n < 2 {
		panic("chess: undo past the root position")
	}
	m := p.history[n-1].move
	p.history = p.history[:n-1]
	prev := &p.history[n-2]
	p.castling = prev.castling
	p.enPassant = prev.enPassant
	p.fiftyMoveClock = prev.fiftyMoveClock
	p.hash = prev.hash
	p.side = p.side.Other()
	return m
}

// MakeMove plays m, which must have been generated for this position.
// Every MakeMove must be paired with an UndoMove in stack order.
func (p *Position) MakeMove(m Move) {
	us := p.side
	them := us.Other()
	from, to := m.From(), m.To()
	kind := m.Kind()
	piece := m.Piece()
	captured := m.Captured()

	p.hash ^= enPassantKey(p.enPassant)
	p.enPassant = NoSquare

	switch kind {
	case Quiet:
		p.movePiece(us, piece, from, to, true)
	case DoublePawnPush:
		p.movePiece(us, Pawn, from, to, true)
		p.enPassant = (from + to) / 2
		p.hash ^= enPassantKey(p.enPassant)
	case KingCastle, QueenCastle:
		p.movePiece(us, King, from, to, true)
		rookFrom, rookTo := castleRook(us, kind)
		p.movePiece(us, Rook, rookFrom, rookTo, true)
	case Capture:
		p.RemovePiece(us, piece, from, true)
		p.ReplacePiece(us, piece, captured, to, true)
	case EnPassant:
		p.RemovePiece(them, Pawn, enPassantVictim(us, to), true)
		p.movePiece(us, Pawn, from, to, true)
	default:
		promo := kind.PromotionPiece()
		p.RemovePiece(us, Pawn, from, true)
		if kind.IsCapture() {
			p.ReplacePiece(us, promo, captured, to, true)
		} else {
			p.PlacePiece(us, promo, to, true)
		}
	}

	if rights := p.castling & castlingMask[from] & castlingMask[to]; rights != p.castling {
		p.hash ^= castlingKey(p.castling) ^ castlingKey(rights)
		p.castling = rights
	}

	if piece == Pawn || kind.IsCapture() {
		p.fiftyMoveClock = 0
	} else {
		p.fiftyMoveClock++
	}

	p.side = them
	p.hash ^= zobristSide
	p.pushHistory(m)
}

// UndoMove takes back the last move played with MakeMove. The hash and
// scalar state come from the history; pieces are put back unhashed.
func (p *Position) UndoMove() {
	m := p.popHistory()
	if m == NoMove {
		panic("chess: UndoMove called for a null move")
	}
	us := p.side
	them := us.Other()
	from, to := m.From(), m.To()
	kind := m.Kind()
	piece := m.Piece()
	captured := m.Captured()

	switch kind {
	case Quiet, DoublePawnPush:
		p.movePiece(us, piece, to, from, false)
	case KingCastle, QueenCastle:
		p.movePiece(us, King, to, from, false)
		rookFrom, rookTo := castleRook(us, kind)
		p.movePiece(us, Rook, rookTo, rookFrom, false)
	case Capture:
		p.ReplacePiece(them, captured, piece, to, false)
		p.PlacePiece(us, piece, from, false)
	case EnPassant:
		p.movePiece(us, Pawn, to, from, false)
		p.PlacePiece(them, Pawn, enPassantVictim(us, to), false)
	default:
		promo := kind.PromotionPiece()
		if kind.IsCapture() {
			p.ReplacePiece(them, captured, promo, to, false)
		} else {
			p.RemovePiece(us, promo, to, false)
		}
		p.PlacePiece(us, Pawn, from, false)
	}
}

// MakeNullMove passes the turn without moving a piece. Used for search
// pruning; undo with UndoNullMove.
func (p *Position) MakeNullMove() {
	p.hash ^= zobristSide ^ enPassantKey(p.enPassant)
	p.enPassant = NoSquare
	p.fiftyMoveClock++
	p.side = p.side.Other()
	p.pushHistory(NoMove)
}

// UndoNullMove restores the position prior to MakeNullMove.
func (p *Position) UndoNullMove() {
	p.popHistory()
}

// Apply plays a move and returns the closure that undoes it.
func (p *Position) Apply(m Move) func() {
	p.MakeMove(m)
	return p.UndoMove
}
