package chess

// Square represents a board position (0-63), a1=0 ... h8=63.
type Square uint8

// NoSquare is the "no square" sentinel (e.g. no en-passant target).
const NoSquare Square = 64

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// File returns the file index (0 = a).
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the rank index (0 = first rank).
func (sq Square) Rank() int { return int(sq) >> 3 }

// String returns the algebraic name of the square, or "-" for NoSquare.
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// SquareFromString parses an algebraic square ("e3"). Anything else,
// including "-", maps to NoSquare.
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare
	}
	return Square(int(file-'a') + int(rank-'1')*8)
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Piece is a colorless piece type. The color lives in the bitboard index.
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPiece
)

// Char returns the lower-case FEN letter of the piece, '.' for NoPiece.
func (p Piece) Char() byte {
	switch p {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return '.'
	}
}

// PieceFromChar converts a FEN character to its color and piece.
// Unrecognized characters map to (White, NoPiece).
func PieceFromChar(ch byte) (Color, Piece) {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return color, Pawn
	case 'N':
		return color, Knight
	case 'B':
		return color, Bishop
	case 'R':
		return color, Rook
	case 'Q':
		return color, Queen
	case 'K':
		return color, King
	default:
		return White, NoPiece
	}
}

// CastlingRights is a 4-bit mask of the remaining castling options.
type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside

	CastleNone CastlingRights = 0
	CastleAll  CastlingRights = 0xF
)

// castlingRightFromChar maps a FEN castling letter to its bit; unknown
// letters (and '-') contribute nothing.
func castlingRightFromChar(ch byte) CastlingRights {
	switch ch {
	case 'K':
		return CastleWhiteKingside
	case 'Q':
		return CastleWhiteQueenside
	case 'k':
		return CastleBlackKingside
	case 'q':
		return CastleBlackQueenside
	default:
		return CastleNone
	}
}

func (cr CastlingRights) String() string {
	if cr&CastleAll == 0 {
		return "-"
	}
	s := make([]byte, 0, 4)
	if cr&CastleWhiteKingside != 0 {
		s = append(s, 'K')
	}
	if cr&CastleWhiteQueenside != 0 {
		s = append(s, 'Q')
	}
	if cr&CastleBlackKingside != 0 {
		s = append(s, 'k')
	}
	if cr&CastleBlackQueenside != 0 {
		s = append(s, 'q')
	}
	return string(s)
}
