package chess

import "github.com/dylhunn/dragontoothmg"

// Precomputed attack masks for knights and kings from each square.
var knightAttacks [64]uint64
var kingAttacks [64]uint64

// pawnAttacks[color][sq] gives the squares a pawn of 'color' on 'sq' attacks.
var pawnAttacks [2][64]uint64

// between[a][b] holds the squares strictly between a and b plus b itself
// when the two share a rank, file or diagonal; otherwise just b.
var between [64][64]uint64

func init() {
	initAttackTables()
	initBetween()
}

// initAttackTables precomputes attack bitboards for knights, kings and pawn captures.
func initAttackTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		knightAttacks[sq] = offsetMask(sq, knightOffsets[:])
		kingAttacks[sq] = offsetMask(sq, kingOffsets[:])

		file, rank := sq%8, sq/8
		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= uint64(1) << ((rank+1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[White][sq] |= uint64(1) << ((rank+1)*8 + file + 1)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= uint64(1) << ((rank-1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= uint64(1) << ((rank-1)*8 + file + 1)
			}
		}
	}
}

func offsetMask(sq int, offsets [][2]int) uint64 {
	file, rank := sq%8, sq/8
	var mask uint64
	for _, off := range offsets {
		rf := rank + off[0]
		ff := file + off[1]
		if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
			mask |= uint64(1) << (rf*8 + ff)
		}
	}
	return mask
}

// initBetween walks the eight ray directions from every square.
func initBetween() {
	dirs := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			between[from][to] = uint64(1) << to
		}
		for _, d := range dirs {
			var ray uint64
			r, f := from/8+d[0], from%8+d[1]
			for r >= 0 && r < 8 && f >= 0 && f < 8 {
				to := r*8 + f
				ray |= uint64(1) << to
				between[from][to] = ray
				r += d[0]
				f += d[1]
			}
		}
	}
}

// KnightAttacks returns the knight attack mask from sq.
func KnightAttacks(sq Square) uint64 { return knightAttacks[sq] }

// KingAttacks returns the king attack mask from sq.
func KingAttacks(sq Square) uint64 { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) uint64 { return pawnAttacks[c][sq] }

// Between returns the inclusive ray from a (exclusive) to b (inclusive).
// For squares that are not aligned it returns just b.
func Between(a, b Square) uint64 { return between[a][b] }

// RookAttacks returns rook attacks from sq for the given occupancy. The
// first blocker on each ray is included regardless of its color.
func RookAttacks(sq Square, occ uint64) uint64 {
	return dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ)
}

// BishopAttacks returns bishop attacks from sq for the given occupancy.
func BishopAttacks(sq Square, occ uint64) uint64 {
	return dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ)
}

// QueenAttacks combines rook and bishop attacks.
func QueenAttacks(sq Square, occ uint64) uint64 {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// pieceAttacks returns the attack set of a non-pawn piece.
func pieceAttacks(p Piece, sq Square, occ uint64) uint64 {
	switch p {
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return kingAttacks[sq]
	}
	return 0
}
