package bench

import (
	"testing"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"

	"chesscore/chess"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func benchPerft(b *testing.B, fen string, depth int) {
	p, err := chess.NewPosition(fen)
	if err != nil {
		b.Fatalf("NewPosition: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = chess.Perft(p, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, chess.FENStartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipete, 3)
}

// Same workloads through goosemg for a side-by-side baseline.
func benchGoosePerft(b *testing.B, fen string, depth int) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = goosemg.Perft(board, depth)
	}
}

func BenchmarkGoosePerft_Initial_D4(b *testing.B) {
	benchGoosePerft(b, goosemg.FENStartPos, 4)
}

func BenchmarkGoosePerft_Kiwipete_D3(b *testing.B) {
	benchGoosePerft(b, kiwipete, 3)
}
