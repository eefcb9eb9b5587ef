package chess

// Perft counts leaf nodes (move sequences) from the position for a given depth.
// It reuses one move list per depth to avoid allocations.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	lists := make([]MoveList, depth+1)
	return perftRec(p, depth, lists)
}

func perftRec(p *Position, depth int, lists []MoveList) uint64 {
	ml := &lists[depth]
	ml.Clear()
	GenerateMoves(p, ml)
	if depth == 1 {
		return uint64(ml.Len())
	}
	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		p.MakeMove(ml.At(i).Move)
		nodes += perftRec(p, depth-1, lists)
		p.UndoMove()
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.LegalMoves() {
		p.MakeMove(m)
		result[m] = Perft(p, depth-1)
		p.UndoMove()
	}
	return result
}
