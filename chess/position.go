package chess

// castlingMask[sq] is ANDed into the rights whenever a piece leaves or
// lands on sq, clearing exactly the rights that depend on that square.
var castlingMask = [64]CastlingRights{
	13, 15, 15, 15, 12, 15, 15, 14,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	7, 15, 15, 15, 3, 15, 15, 11,
}

// snapshot holds the state that cannot be rebuilt from the bitboards,
// recorded after each ply (and once for the root).
type snapshot struct {
	castling       CastlingRights
	enPassant      Square
	fiftyMoveClock int
	move           Move
	hash           uint64
}

// Position represents the board state, including piece placement, game
// state and the undo history. A Position must not be shared between
// goroutines; use Clone to give each worker its own copy.
type Position struct {
	// Mailbox, kept in sync with the bitboards.
	pieces [64]Piece

	// Piece bitboards indexed by [color][piece].
	bitboards [2][6]uint64

	// Occupancy per side and overall.
	sideOccupancy [2]uint64
	occupancy     uint64

	side           Color
	castling       CastlingRights
	enPassant      Square
	fiftyMoveClock int

	// Zobrist hash key, updated incrementally.
	hash uint64

	history []snapshot
}

// Clone returns an independent deep copy, including the history.
func (p *Position) Clone() *Position {
	c := *p
	c.history = make([]snapshot, len(p.history), cap(p.history))
	copy(c.history, p.history)
	return &c
}

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.side }

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EnPassant returns the en passant target square or NoSquare.
func (p *Position) EnPassant() Square { return p.enPassant }

// FiftyMoveClock returns the half-moves since the last pawn move or capture.
func (p *Position) FiftyMoveClock() int { return p.fiftyMoveClock }

// Hash returns the current Zobrist hash key.
func (p *Position) Hash() uint64 { return p.hash }

// LastMove returns the move that produced this position, NoMove at the
// root or after a null move.
func (p *Position) LastMove() Move { return p.history[len(p.history)-1].move }

// Ply returns the number of plies played since the position was loaded.
func (p *Position) Ply() int { return len(p.history) - 1 }

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece { return p.pieces[sq] }

// ColorAt returns the owner of the piece on sq. The result is meaningless
// for empty squares.
func (p *Position) ColorAt(sq Square) Color {
	if p.sideOccupancy[Black]&bb(sq) != 0 {
		return Black
	}
	return White
}

// Pieces returns the bitboard of color c's pieces of type pc.
func (p *Position) Pieces(c Color, pc Piece) uint64 { return p.bitboards[c][pc] }

// Occupancy returns all occupied squares.
func (p *Position) Occupancy() uint64 { return p.occupancy }

// SideOccupancy returns the squares occupied by color c.
func (p *Position) SideOccupancy(c Color) uint64 { return p.sideOccupancy[c] }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return LSB(p.bitboards[c][King]) }

// PawnEndgame reports whether the side to move has only king and pawns.
func (p *Position) PawnEndgame() bool {
	return p.sideOccupancy[p.side] == p.bitboards[p.side][Pawn]|p.bitboards[p.side][King]
}

// ==========================
// Placement primitives
// ==========================

// PlacePiece puts color c's piece pc on the empty square sq. When hash is
// set the piece key is folded into the Zobrist hash.
func (p *Position) PlacePiece(c Color, pc Piece, sq Square, hash bool) {
	bit := bb(sq)
	p.pieces[sq] = pc
	p.bitboards[c][pc] |= bit
	p.sideOccupancy[c] |= bit
	p.occupancy |= bit
	if hash {
		p.hash ^= pieceKey(c, pc, sq)
	}
}

// RemovePiece takes color c's piece pc off sq.
func (p *Position) RemovePiece(c Color, pc Piece, sq Square, hash bool) {
	mask := ^bb(sq)
	p.pieces[sq] = NoPiece
	p.bitboards[c][pc] &= mask
	p.sideOccupancy[c] &= mask
	p.occupancy &= mask
	if hash {
		p.hash ^= pieceKey(c, pc, sq)
	}
}

// ReplacePiece swaps the opponent's captured piece on sq for color c's
// piece pc. Overall occupancy is unchanged.
func (p *Position) ReplacePiece(c Color, pc, captured Piece, sq Square, hash bool) {
	them := c.Other()
	bit := bb(sq)
	p.pieces[sq] = pc
	p.bitboards[them][captured] &^= bit
	p.sideOccupancy[them] &^= bit
	p.bitboards[c][pc] |= bit
	p.sideOccupancy[c] |= bit
	if hash {
		p.hash ^= pieceKey(c, pc, sq)
		p.hash ^= pieceKey(them, captured, sq)
	}
}

// ==========================
// Attack queries
// ==========================

// Attackers returns every piece of color 'by' that attacks sq.
func (p *Position) Attackers(sq Square, by Color) uint64 {
	return p.AttackersWithOccupancy(sq, by, p.occupancy)
}

// AttackersWithOccupancy is Attackers with sliding attacks computed
// against occ instead of the current occupancy.
func (p *Position) AttackersWithOccupancy(sq Square, by Color, occ uint64) uint64 {
	pieces := &p.bitboards[by]
	return (RookAttacks(sq, occ) & (pieces[Rook] | pieces[Queen])) |
		(BishopAttacks(sq, occ) & (pieces[Bishop] | pieces[Queen])) |
		(kingAttacks[sq] & pieces[King]) |
		(knightAttacks[sq] & pieces[Knight]) |
		// A pawn of 'by' attacks sq iff a pawn of the other color on sq would attack it.
		(pawnAttacks[by.Other()][sq] & pieces[Pawn])
}

// IsSquareAttacked reports whether sq is attacked by color 'by'.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return p.Attackers(sq, by) != 0
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.Attackers(p.KingSquare(p.side), p.side.Other()) != 0
}

// ==========================
// Draw detection
// ==========================

// IsDrawBy50 reports a fifty-move rule draw (the clock counts half-moves).
func (p *Position) IsDrawBy50() bool { return p.fiftyMoveClock >= 100 }

// IsRepetition reports whether the current position occurred at least
// twice before with the same side to move since the last irreversible
// move, making this the third occurrence.
func (p *Position) IsRepetition() bool {
	end := len(p.history) - 1 - p.fiftyMoveClock
	if end < 0 {
		end = 0
	}
	repetitions := 0
	for i := len(p.history) - 3; i >= end; i -= 2 {
		if p.history[i].hash == p.hash {
			repetitions++
			if repetitions >= 2 {
				return true
			}
		}
	}
	return false
}

// IsDraw combines the fifty-move rule and threefold repetition.
func (p *Position) IsDraw() bool { return p.IsDrawBy50() || p.IsRepetition() }

// Validate checks internal consistency between the mailbox, bitboards,
// occupancy and hash. Returns true if consistent.
func (p *Position) Validate() bool {
	var side [2]uint64
	for c := White; c <= Black; c++ {
		for pc := Pawn; pc <= King; pc++ {
			pieces := p.bitboards[c][pc]
			if side[c]&pieces != 0 || side[c.Other()]&pieces != 0 {
				return false
			}
			side[c] |= pieces
			for pieces != 0 {
				if p.pieces[PopLSB(&pieces)] != pc {
					return false
				}
			}
		}
	}
	if side != p.sideOccupancy || p.occupancy != side[White]|side[Black] {
		return false
	}
	for sq := Square(0); sq < 64; sq++ {
		if p.pieces[sq] != NoPiece && p.occupancy&bb(sq) == 0 {
			return false
		}
	}
	return p.hash == p.ComputeHash()
}
