package chess

// Move encodes a chess move in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift     = 0  // 6 bits
	moveToShift       = 6  // 6 bits
	moveKindShift     = 12 // 4 bits
	movePieceShift    = 16 // 3 bits
	moveCapturedShift = 19 // 3 bits

	moveSquareMask = 0x3F
	moveKindMask   = 0xF
	movePieceMask  = 0x7
)

// NoMove is the zero move, recorded for the root and for null moves.
const NoMove Move = 0

// MoveKind distinguishes special moves. Bit 2 marks captures and bit 3
// marks promotions; the low two bits of a promotion select the piece.
type MoveKind uint8

const (
	Quiet                  MoveKind = 0
	DoublePawnPush         MoveKind = 1
	KingCastle             MoveKind = 2
	QueenCastle            MoveKind = 3
	Capture                MoveKind = 4
	EnPassant              MoveKind = 5
	KnightPromotion        MoveKind = 8
	BishopPromotion        MoveKind = 9
	RookPromotion          MoveKind = 10
	QueenPromotion         MoveKind = 11
	KnightPromotionCapture MoveKind = 12
	BishopPromotionCapture MoveKind = 13
	RookPromotionCapture   MoveKind = 14
	QueenPromotionCapture  MoveKind = 15
)

const (
	kindCaptureFlag   MoveKind = 4
	kindPromotionFlag MoveKind = 8
)

// IsCapture reports whether the kind removes an enemy piece.
func (k MoveKind) IsCapture() bool { return k&kindCaptureFlag != 0 }

// IsPromotion reports whether the kind promotes a pawn.
func (k MoveKind) IsPromotion() bool { return k&kindPromotionFlag != 0 }

// PromotionPiece returns the piece a promotion kind creates, NoPiece otherwise.
func (k MoveKind) PromotionPiece() Piece {
	if !k.IsPromotion() {
		return NoPiece
	}
	return Knight + Piece(k&3)
}

// promotionKind builds the kind for promoting to piece (Knight..Queen).
func promotionKind(piece Piece, capture bool) MoveKind {
	k := kindPromotionFlag | MoveKind(piece-Knight)
	if capture {
		k |= kindCaptureFlag
	}
	return k
}

// NewMove packs a move. Non-captures should pass NoPiece as captured.
func NewMove(from, to Square, kind MoveKind, piece, captured Piece) Move {
	return Move(uint32(from&moveSquareMask)<<moveFromShift |
		uint32(to&moveSquareMask)<<moveToShift |
		uint32(kind&moveKindMask)<<moveKindShift |
		uint32(piece&movePieceMask)<<movePieceShift |
		uint32(captured&movePieceMask)<<moveCapturedShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & moveSquareMask) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & moveSquareMask) }

// Kind returns the move kind.
func (m Move) Kind() MoveKind { return MoveKind((uint32(m) >> moveKindShift) & moveKindMask) }

// Piece returns the moved piece.
func (m Move) Piece() Piece { return Piece((uint32(m) >> movePieceShift) & movePieceMask) }

// Captured returns the captured piece, NoPiece for non-captures.
func (m Move) Captured() Piece { return Piece((uint32(m) >> moveCapturedShift) & movePieceMask) }

func (m Move) IsQuiet() bool     { return !m.Kind().IsCapture() }
func (m Move) IsCapture() bool   { return m.Kind().IsCapture() }
func (m Move) IsPromotion() bool { return m.Kind().IsPromotion() }

// String returns coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	from, to := m.From(), m.To()
	buf := []byte{
		'a' + byte(from.File()), '1' + byte(from.Rank()),
		'a' + byte(to.File()), '1' + byte(to.Rank()),
	}
	if promo := m.Kind().PromotionPiece(); promo != NoPiece {
		buf = append(buf, promo.Char())
	}
	return string(buf)
}
