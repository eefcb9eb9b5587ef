package chess

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIllegalMove is returned by ParseMove for strings that do not name a
// legal move in the position.
var ErrIllegalMove = errors.New("illegal move")

// step returns sq moved by dir. The caller guarantees the result is on the board.
func (sq Square) step(dir direction) Square { return Square(int(sq) + int(dir)) }

// Castling path masks for White; Black's are the same shifted to rank 8.
const (
	kingsideSafeMask   uint64 = 0x70 // e1 f1 g1
	kingsideEmptyMask  uint64 = 0x60 // f1 g1
	queensideSafeMask  uint64 = 0x1C // c1 d1 e1
	queensideEmptyMask uint64 = 0x0E // b1 c1 d1
)

// generator carries the per-call state of one Generate invocation.
type generator struct {
	p            *Position
	ml           *MoveList
	capturesOnly bool

	us, them Color
	king     Square

	occ, enemy, empty uint64

	// safe holds the squares the king may step to, computed with the king
	// lifted off the board so sliders see through it.
	safe uint64

	// checkmask is FullBoard when not in check, the inclusive ray to the
	// checker in single check, and empty in double check.
	checkmask uint64

	// pinRay[sq] is the inclusive ray from the king to the pinner for
	// every square in pinned.
	pinned uint64
	pinRay [64]uint64
}

// Generate fills ml with the legal moves of the side to move. With
// capturesOnly it emits captures, en passant and promotions only (push
// promotions to a queen only) and skips castling. It returns true when
// the side to move is not in check.
func Generate(p *Position, ml *MoveList, capturesOnly bool) bool {
	g := generator{
		p:            p,
		ml:           ml,
		capturesOnly: capturesOnly,
		us:           p.side,
		them:         p.side.Other(),
		occ:          p.occupancy,
	}
	g.king = p.KingSquare(g.us)
	g.enemy = p.sideOccupancy[g.them]
	g.empty = ^g.occ

	g.safe = ^p.attackedSquares(g.them, g.occ&^bb(g.king))
	g.checkmask = p.checkmask(g.king, g.them)

	g.kingMoves()
	if g.checkmask == 0 {
		// Double check: only the king may move.
		return false
	}

	g.findPins()
	g.pieceMoves(Rook)
	g.pieceMoves(Bishop)
	g.pieceMoves(Queen)
	g.pieceMoves(Knight)

	pawns := p.bitboards[g.us][Pawn]
	g.pawnMoves(pawns&^g.pinned, g.checkmask)
	pinnedPawns := pawns & g.pinned
	for pinnedPawns != 0 {
		sq := PopLSB(&pinnedPawns)
		g.pawnMoves(bb(sq), g.checkmask&g.pinRay[sq])
	}

	if !capturesOnly {
		g.castleMoves()
	}
	return g.checkmask == FullBoard
}

// GenerateMoves fills ml with every legal move.
func GenerateMoves(p *Position, ml *MoveList) bool { return Generate(p, ml, false) }

// GenerateCaptures fills ml with the moves quiescence search considers.
func GenerateCaptures(p *Position, ml *MoveList) bool { return Generate(p, ml, true) }

// attackedSquares returns every square attacked by color 'by' when the
// board occupancy is occ.
func (p *Position) attackedSquares(by Color, occ uint64) uint64 {
	pieces := &p.bitboards[by]
	var attacked uint64

	pawns := pieces[Pawn]
	for pawns != 0 {
		attacked |= pawnAttacks[by][PopLSB(&pawns)]
	}
	knights := pieces[Knight]
	for knights != 0 {
		attacked |= knightAttacks[PopLSB(&knights)]
	}
	diagonal := pieces[Bishop] | pieces[Queen]
	for diagonal != 0 {
		attacked |= BishopAttacks(PopLSB(&diagonal), occ)
	}
	orthogonal := pieces[Rook] | pieces[Queen]
	for orthogonal != 0 {
		attacked |= RookAttacks(PopLSB(&orthogonal), occ)
	}
	attacked |= kingAttacks[LSB(pieces[King])]
	return attacked
}

// checkmask returns the squares non-king moves must land on given the
// checks against the king on ks by color 'by'.
func (p *Position) checkmask(ks Square, by Color) uint64 {
	checkers := p.Attackers(ks, by)
	if checkers == 0 {
		return FullBoard
	}
	checker := PopLSB(&checkers)
	if checkers != 0 {
		return 0
	}
	return between[ks][checker]
}

// findPins records every own piece that is the only piece between the king
// and an enemy slider moving along that line.
func (g *generator) findPins() {
	enemy := &g.p.bitboards[g.them]
	snipers := (RookAttacks(g.king, 0) & (enemy[Rook] | enemy[Queen])) |
		(BishopAttacks(g.king, 0) & (enemy[Bishop] | enemy[Queen]))
	ours := g.p.sideOccupancy[g.us]
	for snipers != 0 {
		sniper := PopLSB(&snipers)
		ray := between[g.king][sniper]
		blockers := ray &^ bb(sniper) & g.occ
		if blockers != 0 && blockers&(blockers-1) == 0 && blockers&ours != 0 {
			g.pinned |= blockers
			g.pinRay[LSB(blockers)] = ray
		}
	}
}

// addTargets emits captures and, unless capturesOnly, quiet moves from
// 'from' to each square in targets.
func (g *generator) addTargets(from Square, pc Piece, targets uint64) {
	captures := targets & g.enemy
	for captures != 0 {
		to := PopLSB(&captures)
		g.ml.Add(NewMove(from, to, Capture, pc, g.p.pieces[to]))
	}
	if g.capturesOnly {
		return
	}
	quiets := targets & g.empty
	for quiets != 0 {
		g.ml.Add(NewMove(from, PopLSB(&quiets), Quiet, pc, NoPiece))
	}
}

func (g *generator) kingMoves() {
	g.addTargets(g.king, King, kingAttacks[g.king]&g.safe)
}

// pieceMoves generates knight and slider moves for every piece of type pc.
func (g *generator) pieceMoves(pc Piece) {
	pieces := g.p.bitboards[g.us][pc]
	for pieces != 0 {
		from := PopLSB(&pieces)
		target := g.checkmask
		if g.pinned&bb(from) != 0 {
			target &= g.pinRay[from]
		}
		g.addTargets(from, pc, pieceAttacks(pc, from, g.occ)&target)
	}
}

// pawnMoves generates moves for the given pawns, whose destinations are
// restricted to mask (checkmask, narrowed by the pin ray for pinned pawns).
func (g *generator) pawnMoves(pawns, mask uint64) {
	if pawns == 0 {
		return
	}
	up, left, right := north, northWest, northEast
	penultimate, pushRank := Rank7, Rank3
	if g.us == Black {
		up, left, right = south, southEast, southWest
		penultimate, pushRank = Rank2, Rank6
	}

	promoting := pawns & penultimate
	normal := pawns &^ penultimate
	blocking := g.empty & mask
	targets := g.enemy & mask

	if !g.capturesOnly {
		push1 := shift(normal, up) & g.empty
		push2 := shift(push1&pushRank, up) & blocking
		push1 &= mask
		for push1 != 0 {
			to := PopLSB(&push1)
			g.ml.Add(NewMove(to.step(-up), to, Quiet, Pawn, NoPiece))
		}
		for push2 != 0 {
			to := PopLSB(&push2)
			g.ml.Add(NewMove(to.step(-2*up), to, DoublePawnPush, Pawn, NoPiece))
		}
	}

	if promoting != 0 {
		pushes := shift(promoting, up) & blocking
		for pushes != 0 {
			to := PopLSB(&pushes)
			g.addPromotions(to.step(-up), to, NoPiece)
		}
		for _, dir := range [2]direction{left, right} {
			captures := shift(promoting, dir) & targets
			for captures != 0 {
				to := PopLSB(&captures)
				g.addPromotions(to.step(-dir), to, g.p.pieces[to])
			}
		}
	}

	for _, dir := range [2]direction{left, right} {
		captures := shift(normal, dir) & targets
		for captures != 0 {
			to := PopLSB(&captures)
			g.ml.Add(NewMove(to.step(-dir), to, Capture, Pawn, g.p.pieces[to]))
		}
	}

	if ep := g.p.enPassant; ep != NoSquare {
		for _, dir := range [2]direction{left, right} {
			if shift(normal, dir)&bb(ep) == 0 {
				continue
			}
			from := ep.step(-dir)
			if g.enPassantLegal(from, ep) {
				g.ml.Add(NewMove(from, ep, EnPassant, Pawn, Pawn))
			}
		}
	}
}

// addPromotions emits the promotion moves for one pawn. Push promotions
// are reduced to the queen when only captures are requested.
func (g *generator) addPromotions(from, to Square, captured Piece) {
	capture := captured != NoPiece
	g.ml.Add(NewMove(from, to, promotionKind(Queen, capture), Pawn, captured))
	if g.capturesOnly && !capture {
		return
	}
	for _, pc := range [3]Piece{Rook, Bishop, Knight} {
		g.ml.Add(NewMove(from, to, promotionKind(pc, capture), Pawn, captured))
	}
}

// enPassantLegal plays the capture on a scratch occupancy and checks the
// king. This covers checks by the double-pushed pawn, pins, and the rank
// where both pawns leave the king's line at once.
func (g *generator) enPassantLegal(from, to Square) bool {
	victim := enPassantVictim(g.us, to)
	occ := (g.occ &^ bb(from) &^ bb(victim)) | bb(to)
	return g.p.AttackersWithOccupancy(g.king, g.them, occ)&^bb(victim) == 0
}

func (g *generator) castleMoves() {
	var rankShift uint
	kingside, queenside := CastleWhiteKingside, CastleWhiteQueenside
	home := E1
	if g.us == Black {
		rankShift = 56
		kingside, queenside = CastleBlackKingside, CastleBlackQueenside
		home = E8
	}
	rights := g.p.castling
	if g.king != home || rights&(kingside|queenside) == 0 {
		return
	}
	rooks := g.p.bitboards[g.us][Rook]

	safeK, emptyK := kingsideSafeMask<<rankShift, kingsideEmptyMask<<rankShift
	if rights&kingside != 0 && rooks&bb(home+3) != 0 &&
		g.safe&safeK == safeK && g.empty&emptyK == emptyK {
		g.ml.Add(NewMove(home, home+2, KingCastle, King, NoPiece))
	}

	safeQ, emptyQ := queensideSafeMask<<rankShift, queensideEmptyMask<<rankShift
	if rights&queenside != 0 && rooks&bb(home-4) != 0 &&
		g.safe&safeQ == safeQ && g.empty&emptyQ == emptyQ {
		g.ml.Add(NewMove(home, home-2, QueenCastle, King, NoPiece))
	}
}

// ==========================
// Convenience wrappers
// ==========================

// LegalMoves returns a newly allocated slice of legal moves.
func (p *Position) LegalMoves() []Move {
	var ml MoveList
	GenerateMoves(p, &ml)
	moves := make([]Move, ml.Len())
	for i := range moves {
		moves[i] = ml.At(i).Move
	}
	return moves
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (p *Position) HasLegalMoves() bool {
	var ml MoveList
	GenerateMoves(p, &ml)
	return ml.Len() > 0
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool { return p.InCheck() && !p.HasLegalMoves() }

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool { return !p.InCheck() && !p.HasLegalMoves() }

// ParseMove resolves a coordinate move string ("e2e4", "e7e8q") against
// the legal moves of the position.
func (p *Position) ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("%w: %q has invalid length", ErrIllegalMove, s)
	}
	if SquareFromString(s[0:2]) == NoSquare || SquareFromString(s[2:4]) == NoSquare {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	var ml MoveList
	GenerateMoves(p, &ml)
	for i := 0; i < ml.Len(); i++ {
		if m := ml.At(i).Move; m.String() == s {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%w: %s", ErrIllegalMove, s)
}
