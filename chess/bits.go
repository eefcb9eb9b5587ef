package chess

import "math/bits"

// Full board and rank/file masks.
const (
	FullBoard uint64 = 0xFFFFFFFFFFFFFFFF

	FileA uint64 = 0x0101010101010101
	FileH uint64 = FileA << 7

	Rank1 uint64 = 0xFF
	Rank2 uint64 = Rank1 << 8
	Rank3 uint64 = Rank1 << 16
	Rank6 uint64 = Rank1 << 40
	Rank7 uint64 = Rank1 << 48
	Rank8 uint64 = Rank1 << 56
)

// bb returns a bitboard with only the given square set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// SetBit adds sq to the bitboard.
func SetBit(bitboard *uint64, sq Square) { *bitboard |= bb(sq) }

// ClearBit removes sq from the bitboard.
func ClearBit(bitboard *uint64, sq Square) { *bitboard &^= bb(sq) }

// TestBit reports whether sq is a member of the bitboard.
func TestBit(bitboard uint64, sq Square) bool { return bitboard&bb(sq) != 0 }

// LSB returns the lowest set square. An empty bitboard yields NoSquare.
func LSB(bitboard uint64) Square { return Square(bits.TrailingZeros64(bitboard)) }

// PopLSB removes and returns the least significant set square.
func PopLSB(bitboard *uint64) Square {
	idx := bits.TrailingZeros64(*bitboard)
	*bitboard &= *bitboard - 1
	return Square(idx)
}

// PopCount returns the number of set squares.
func PopCount(bitboard uint64) int { return bits.OnesCount64(bitboard) }

// direction is a board step expressed as a square delta.
type direction int

const (
	north     direction = 8
	south     direction = -8
	northEast direction = 9
	northWest direction = 7
	southEast direction = -7
	southWest direction = -9
)

// shift moves every square of the bitboard one step in dir, dropping
// squares that would wrap around the a/h files.
func shift(bitboard uint64, dir direction) uint64 {
	switch dir {
	case north:
		return bitboard << 8
	case south:
		return bitboard >> 8
	case northEast:
		return (bitboard &^ FileH) << 9
	case northWest:
		return (bitboard &^ FileA) << 7
	case southEast:
		return (bitboard &^ FileH) >> 7
	case southWest:
		return (bitboard &^ FileA) >> 9
	}
	return 0
}
