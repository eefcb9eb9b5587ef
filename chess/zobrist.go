package chess

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [2][6][64]uint64 // per (color, piece, square)
var zobristCastling [16]uint64    // xor of the per-bit keys for each rights mask
var zobristEnPassant [8]uint64    // per en passant file
var zobristSide uint64            // black to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are reproducible across runs and in tests.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := 0; c < 2; c++ {
		for p := 0; p < 6; p++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][p][sq] = rnd.Uint64()
			}
		}
	}

	var bitKeys [4]uint64
	for i := range bitKeys {
		bitKeys[i] = rnd.Uint64()
	}
	for cr := 0; cr < 16; cr++ {
		var key uint64
		for i := 0; i < 4; i++ {
			if cr&(1<<i) != 0 {
				key ^= bitKeys[i]
			}
		}
		zobristCastling[cr] = key
	}

	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}

	zobristSide = rnd.Uint64()
}

func pieceKey(c Color, p Piece, sq Square) uint64 { return zobristPiece[c][p][sq] }

func castlingKey(cr CastlingRights) uint64 { return zobristCastling[cr&CastleAll] }

// enPassantKey returns the file key for sq, or 0 for NoSquare.
func enPassantKey(sq Square) uint64 {
	if sq == NoSquare {
		return 0
	}
	return zobristEnPassant[sq.File()]
}

// ComputeHash recalculates the Zobrist hash from scratch.
func (p *Position) ComputeHash() uint64 {
	var key uint64

	for c := White; c <= Black; c++ {
		for pc := Pawn; pc <= King; pc++ {
			pieces := p.bitboards[c][pc]
			for pieces != 0 {
				key ^= pieceKey(c, pc, PopLSB(&pieces))
			}
		}
	}

	if p.side == Black {
		key ^= zobristSide
	}
	key ^= castlingKey(p.castling)
	key ^= enPassantKey(p.enPassant)

	return key
}
