package chess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrMalformedFEN    = errors.New("malformed FEN")
	ErrInvalidSquare   = errors.New("invalid square")
	ErrInvalidPiece    = errors.New("invalid piece character")
	ErrInvalidCastling = errors.New("invalid castling character")
)

// NewPosition parses a FEN string and returns a new Position.
func NewPosition(fen string) (*Position, error) {
	p := &Position{}
	if err := p.SetFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// StartPosition returns the standard initial position.
func StartPosition() *Position {
	p, err := NewPosition(FENStartPos)
	if err != nil {
		panic(err)
	}
	return p
}

// SetFEN resets the position to the one described by fen. On error the
// position is left unchanged.
func (p *Position) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return fmt.Errorf("%w: expected 4 to 6 fields, got %d", ErrMalformedFEN, len(fields))
	}

	var next Position
	next.enPassant = NoSquare
	for sq := range next.pieces {
		next.pieces[sq] = NoPiece
	}

	// 1. Piece placement, rank 8 down to rank 1.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: %d ranks in placement", ErrMalformedFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			color, piece := PieceFromChar(ch)
			if piece == NoPiece {
				return fmt.Errorf("%w: %q", ErrInvalidPiece, ch)
			}
			if file >= 8 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrMalformedFEN, rank+1)
			}
			next.PlacePiece(color, piece, Square(rank*8+file), true)
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d does not have 8 files", ErrMalformedFEN, rank+1)
		}
	}
	for c := White; c <= Black; c++ {
		if PopCount(next.bitboards[c][King]) != 1 {
			return fmt.Errorf("%w: %s must have exactly one king", ErrMalformedFEN, c)
		}
	}
	if (next.bitboards[White][Pawn]|next.bitboards[Black][Pawn])&(Rank1|Rank8) != 0 {
		return fmt.Errorf("%w: pawn on a back rank", ErrMalformedFEN)
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		next.side = White
	case "b":
		next.side = Black
		next.hash ^= zobristSide
	default:
		return fmt.Errorf("%w: side to move %q", ErrMalformedFEN, fields[1])
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			right := castlingRightFromChar(fields[2][j])
			if right == CastleNone {
				return fmt.Errorf("%w: %q", ErrInvalidCastling, fields[2][j])
			}
			next.castling |= right
		}
	}
	next.hash ^= castlingKey(next.castling)

	// 4. En passant target square
	if fields[3] != "-" {
		sq := SquareFromString(fields[3])
		if sq == NoSquare {
			return fmt.Errorf("%w: en passant %q", ErrInvalidSquare, fields[3])
		}
		if want := epRank(next.side); sq.Rank() != want {
			return fmt.Errorf("%w: en passant %q not on rank %d", ErrInvalidSquare, fields[3], want+1)
		}
		next.enPassant = sq
		next.hash ^= enPassantKey(sq)
	}

	// 5. Halfmove clock; the fullmove number is accepted but not kept.
	if len(fields) > 4 {
		clock, err := strconv.Atoi(fields[4])
		if err != nil || clock < 0 {
			return fmt.Errorf("%w: halfmove clock %q", ErrMalformedFEN, fields[4])
		}
		next.fiftyMoveClock = clock
	}
	if len(fields) > 5 {
		if _, err := strconv.Atoi(fields[5]); err != nil {
			return fmt.Errorf("%w: fullmove number %q", ErrMalformedFEN, fields[5])
		}
	}

	next.history = make([]snapshot, 0, 256)
	next.history = append(next.history, snapshot{
		castling:       next.castling,
		enPassant:      next.enPassant,
		fiftyMoveClock: next.fiftyMoveClock,
		move:           NoMove,
		hash:           next.hash,
	})
	*p = next
	return nil
}

// epRank returns the rank index an en passant target lies on when 'side'
// is to move.
func epRank(side Color) int {
	if side == White {
		return 5
	}
	return 2
}

// FEN produces the FEN string of the current state. The fullmove number is
// not tracked, so only the first five fields are written.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			pc := p.pieces[sq]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			ch := pc.Char()
			if p.ColorAt(sq) == White {
				ch -= 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.side.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fiftyMoveClock))
	return sb.String()
}
