package chess_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chesscore/chess"
)

// boardState is the observable state compared across make/undo.
type boardState struct {
	FEN       string
	Hash      uint64
	Occupancy uint64
	White     uint64
	Black     uint64
	Pieces    [2][6]uint64
	Ply       int
}

func stateOf(p *chess.Position) boardState {
	s := boardState{
		FEN:       p.FEN(),
		Hash:      p.Hash(),
		Occupancy: p.Occupancy(),
		White:     p.SideOccupancy(chess.White),
		Black:     p.SideOccupancy(chess.Black),
		Ply:       p.Ply(),
	}
	for c := chess.White; c <= chess.Black; c++ {
		for pc := chess.Pawn; pc <= chess.King; pc++ {
			s.Pieces[c][pc] = p.Pieces(c, pc)
		}
	}
	return s
}

func TestMakeUndoRestoresEveryMove(t *testing.T) {
	for _, fen := range []string{chess.FENStartPos, kiwipeteFEN, position3, position4, position5} {
		p := mustPosition(t, fen)
		before := stateOf(p)
		for _, m := range p.LegalMoves() {
			p.MakeMove(m)
			if !p.Validate() {
				t.Fatalf("%s: inconsistent after %v", fen, m)
			}
			if p.LastMove() != m {
				t.Fatalf("%s: LastMove = %v, want %v", fen, p.LastMove(), m)
			}
			p.UndoMove()
			if diff := cmp.Diff(before, stateOf(p)); diff != "" {
				t.Fatalf("%s: undo of %v mismatch (-want +got):\n%s", fen, m, diff)
			}
		}
	}
}

func TestRandomPlayoutUndo(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		p := chess.StartPosition()
		var states []boardState
		for ply := 0; ply < 120; ply++ {
			moves := p.LegalMoves()
			if len(moves) == 0 {
				break
			}
			states = append(states, stateOf(p))
			p.MakeMove(moves[rng.Intn(len(moves))])
			if p.Hash() != p.ComputeHash() {
				t.Fatalf("game %d ply %d: incremental hash diverged after %v", game, ply, p.LastMove())
			}
		}
		for i := len(states) - 1; i >= 0; i-- {
			p.UndoMove()
			if diff := cmp.Diff(states[i], stateOf(p)); diff != "" {
				t.Fatalf("game %d: undo to ply %d mismatch (-want +got):\n%s", game, i, diff)
			}
		}
	}
}

func TestMakeMoveSpecialMoves(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{"double push sets en passant", chess.FENStartPos, []string{"e2e4"},
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0"},
		{"en passant capture", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []string{"e5d6"},
			"k7/8/3P4/8/8/8/8/7K b - - 0"},
		{"white kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 1", []string{"e1g1"},
			"r3k2r/8/8/8/8/8/8/R4RK1 b kq - 4"},
		{"black queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"e8c8"},
			"2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1"},
		{"promotion", "1n5k/P7/8/8/8/8/8/7K w - - 5 1", []string{"a7a8q"},
			"Qn5k/8/8/8/8/8/8/7K b - - 0"},
		{"capture promotion", "1n5k/P7/8/8/8/8/8/7K w - - 5 1", []string{"a7b8n"},
			"1N5k/8/8/8/8/8/8/7K b - - 0"},
		{"rook capture clears both rights", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"a1a8"},
			"R3k2r/8/8/8/8/8/8/4K2R b Kk - 0"},
		{"king move clears both rights", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1e2"},
			"r3k2r/8/8/8/8/8/4K3/R6R b kq - 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPosition(t, tt.fen)
			start := stateOf(p)
			playMoves(t, p, tt.moves...)
			if got := p.FEN(); got != tt.want {
				t.Fatalf("FEN after %v = %q, want %q", tt.moves, got, tt.want)
			}
			if !p.Validate() {
				t.Fatalf("inconsistent after %v", tt.moves)
			}
			for range tt.moves {
				p.UndoMove()
			}
			if diff := cmp.Diff(start, stateOf(p)); diff != "" {
				t.Fatalf("undo mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCastlingRightsNeverReappear(t *testing.T) {
	p := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	playMoves(t, p, "a1a8")
	if got := p.CastlingRights(); got != chess.CastleWhiteKingside|chess.CastleBlackKingside {
		t.Fatalf("rights after Rxa8 = %v, want Kk", got)
	}
	// Bringing a rook back to a1 must not restore the queenside right.
	playMoves(t, p, "e8f7", "a8a1", "f7e8")
	if p.CastlingRights()&chess.CastleWhiteQueenside != 0 {
		t.Fatalf("white queenside right reappeared: %v", p.CastlingRights())
	}
	var ml chess.MoveList
	chess.GenerateMoves(p, &ml)
	for _, sm := range ml.Moves() {
		if sm.Move.Kind() == chess.QueenCastle {
			t.Fatalf("queenside castle generated without the right")
		}
	}
}

func TestApplyReturnsUndo(t *testing.T) {
	p := chess.StartPosition()
	before := stateOf(p)
	m, err := p.ParseMove("g1f3")
	if err != nil {
		t.Fatal(err)
	}
	undo := p.Apply(m)
	if p.PieceAt(chess.F3) != chess.Knight {
		t.Fatalf("Apply did not move the knight")
	}
	undo()
	if diff := cmp.Diff(before, stateOf(p)); diff != "" {
		t.Fatalf("undo closure mismatch (-want +got):\n%s", diff)
	}
}
