package chess_test

import (
	"testing"

	"chesscore/chess"
)

func playMoves(t *testing.T, p *chess.Position, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := p.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q) in %s: %v", s, p.FEN(), err)
		}
		p.MakeMove(m)
	}
}

func TestPlaceRemoveReplace(t *testing.T) {
	p := mustPosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	p.PlacePiece(chess.White, chess.Knight, chess.D4, true)
	if p.PieceAt(chess.D4) != chess.Knight || p.ColorAt(chess.D4) != chess.White {
		t.Fatalf("d4 = %d/%v after PlacePiece", p.PieceAt(chess.D4), p.ColorAt(chess.D4))
	}
	if !chess.TestBit(p.Pieces(chess.White, chess.Knight), chess.D4) || !chess.TestBit(p.Occupancy(), chess.D4) {
		t.Fatalf("bitboards not updated by PlacePiece")
	}
	if !p.Validate() {
		t.Fatalf("inconsistent after PlacePiece")
	}

	p.PlacePiece(chess.Black, chess.Rook, chess.D8, true)
	occ := p.Occupancy()
	p.ReplacePiece(chess.Black, chess.Queen, chess.Knight, chess.D4, true)
	if p.PieceAt(chess.D4) != chess.Queen || p.ColorAt(chess.D4) != chess.Black {
		t.Fatalf("d4 = %d/%v after ReplacePiece", p.PieceAt(chess.D4), p.ColorAt(chess.D4))
	}
	if p.Pieces(chess.White, chess.Knight) != 0 {
		t.Fatalf("white knight still present after ReplacePiece")
	}
	if p.Occupancy() != occ {
		t.Fatalf("ReplacePiece changed overall occupancy")
	}
	if !p.Validate() {
		t.Fatalf("inconsistent after ReplacePiece")
	}

	p.RemovePiece(chess.Black, chess.Queen, chess.D4, true)
	p.RemovePiece(chess.Black, chess.Rook, chess.D8, true)
	if p.PieceAt(chess.D4) != chess.NoPiece || chess.TestBit(p.Occupancy(), chess.D4) {
		t.Fatalf("d4 not empty after RemovePiece")
	}
	if !p.Validate() {
		t.Fatalf("inconsistent after RemovePiece")
	}
	if p.Hash() != mustPosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1").Hash() {
		t.Fatalf("hash did not return to its initial value")
	}
}

func TestAttackers(t *testing.T) {
	// White: Kg1, Rd1, Nf3, Pc3, Bb2. Black: Ke8, Qd8.
	p := mustPosition(t, "3qk3/8/8/8/8/2P2N2/1B6/3R2K1 w - - 0 1")

	got := p.Attackers(chess.D4, chess.White)
	var want uint64
	chess.SetBit(&want, chess.D1)
	chess.SetBit(&want, chess.F3)
	chess.SetBit(&want, chess.C3)
	if got != want {
		t.Fatalf("white attackers of d4 = %x, want %x", got, want)
	}
	if !p.IsSquareAttacked(chess.D5, chess.Black) {
		t.Fatalf("d5 should be attacked by the queen")
	}
	// The bishop on b2 is blocked by the pawn on c3.
	if chess.TestBit(p.Attackers(chess.D4, chess.White), chess.B2) {
		t.Fatalf("blocked bishop reported as attacker")
	}
	// Removing c3 from the occupancy opens the diagonal.
	occ := p.Occupancy()
	chess.ClearBit(&occ, chess.C3)
	if !chess.TestBit(p.AttackersWithOccupancy(chess.D4, chess.White, occ), chess.B2) {
		t.Fatalf("bishop not seen through a cleared occupancy")
	}
	if p.InCheck() {
		t.Fatalf("white should not be in check")
	}
}

func TestInCheck(t *testing.T) {
	tests := []struct {
		fen   string
		check bool
	}{
		{chess.FENStartPos, false},
		{"4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", true},
		{"4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", false},
		{"4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/r3K3 w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/rN2K3 w - - 0 1", false},
		{"4k3/8/8/8/8/8/8/4K2R b - - 0 1", false},
		{"4k2R/8/8/8/8/8/8/4K3 b - - 0 1", true},
	}
	for _, tt := range tests {
		if got := mustPosition(t, tt.fen).InCheck(); got != tt.check {
			t.Errorf("%s: InCheck = %v, want %v", tt.fen, got, tt.check)
		}
	}
}

func TestRepetitionByKnightShuffle(t *testing.T) {
	p := chess.StartPosition()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	playMoves(t, p, shuffle...)
	if p.IsRepetition() {
		t.Fatalf("second occurrence reported as threefold repetition")
	}
	playMoves(t, p, shuffle...)
	if !p.IsRepetition() || !p.IsDraw() {
		t.Fatalf("third occurrence not reported as a draw")
	}
	p.UndoMove()
	if p.IsRepetition() {
		t.Fatalf("repetition still reported after undo")
	}
}

func TestRepetitionResetByPawnMove(t *testing.T) {
	p := chess.StartPosition()
	playMoves(t, p, "g1f3", "g8f6", "f3g1", "f6g8", "e2e4", "e7e5")
	playMoves(t, p, "g1f3", "g8f6", "f3g1", "f6g8")
	if p.IsRepetition() {
		t.Fatalf("positions before the pawn moves counted toward repetition")
	}
	playMoves(t, p, "g1f3", "g8f6", "f3g1", "f6g8")
	if !p.IsRepetition() {
		t.Fatalf("threefold repetition after the pawn moves not detected")
	}
}

func TestFiftyMoveRule(t *testing.T) {
	p := mustPosition(t, "4k3/8/8/8/8/8/8/4K2R w K - 99 60")
	if p.IsDrawBy50() {
		t.Fatalf("draw at clock 99")
	}
	playMoves(t, p, "e1d1")
	if p.FiftyMoveClock() != 100 || !p.IsDrawBy50() || !p.IsDraw() {
		t.Fatalf("no draw at clock %d", p.FiftyMoveClock())
	}
	p.UndoMove()
	if p.FiftyMoveClock() != 99 {
		t.Fatalf("clock = %d after undo, want 99", p.FiftyMoveClock())
	}

	p = mustPosition(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 42 60")
	playMoves(t, p, "e2e4")
	if p.FiftyMoveClock() != 0 {
		t.Fatalf("pawn move left clock at %d", p.FiftyMoveClock())
	}
}

func TestNullMove(t *testing.T) {
	p := mustPosition(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	fen, hash := p.FEN(), p.Hash()

	p.MakeNullMove()
	if p.SideToMove() != chess.Black || p.EnPassant() != chess.NoSquare {
		t.Fatalf("null move: side %v ep %v", p.SideToMove(), p.EnPassant())
	}
	if p.Hash() != p.ComputeHash() || p.Hash() == hash {
		t.Fatalf("null move hash not updated")
	}
	if p.LastMove() != chess.NoMove {
		t.Fatalf("LastMove after null move = %v", p.LastMove())
	}
	p.UndoNullMove()
	if p.FEN() != fen || p.Hash() != hash {
		t.Fatalf("UndoNullMove gave %s", p.FEN())
	}
}

func TestUndoPastRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("UndoMove at the root did not panic")
		}
	}()
	chess.StartPosition().UndoMove()
}

func TestCloneIsIndependent(t *testing.T) {
	p := chess.StartPosition()
	playMoves(t, p, "e2e4")
	c := p.Clone()
	playMoves(t, c, "e7e5", "g1f3")
	if p.Ply() != 1 || p.FEN() == c.FEN() {
		t.Fatalf("clone shares state with the original")
	}
	c.UndoMove()
	c.UndoMove()
	if c.FEN() != p.FEN() || c.Hash() != p.Hash() {
		t.Fatalf("clone diverged after undo: %s vs %s", c.FEN(), p.FEN())
	}
}

func TestPawnEndgame(t *testing.T) {
	if !mustPosition(t, "4k3/pp6/8/8/8/8/PP6/4K2R b - - 0 1").PawnEndgame() {
		t.Fatalf("black has only king and pawns")
	}
	if mustPosition(t, "4k3/pp6/8/8/8/8/PP6/4K2R w - - 0 1").PawnEndgame() {
		t.Fatalf("white has a rook")
	}
}
