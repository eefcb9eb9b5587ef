package chess

// MaxMoves bounds the number of moves in any reachable position (the known
// maximum is 218).
const MaxMoves = 256

// ScoredMove pairs a move with its ordering score.
type ScoredMove struct {
	Move  Move
	Score int32
}

// MoveList is a fixed-capacity move buffer filled by Generate. The zero
// value is an empty list ready for use.
type MoveList struct {
	moves [MaxMoves]ScoredMove
	count int
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int { return ml.count }

// Clear empties the list without releasing storage.
func (ml *MoveList) Clear() { ml.count = 0 }

// Add appends a move with a zero score.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = ScoredMove{Move: m}
	ml.count++
}

// At returns the i-th entry.
func (ml *MoveList) At(i int) ScoredMove { return ml.moves[i] }

// SetScore assigns the ordering score of the i-th entry.
func (ml *MoveList) SetScore(i int, score int32) { ml.moves[i].Score = score }

// Moves returns the filled portion of the buffer. The slice aliases the
// list and is invalidated by the next Add or Clear.
func (ml *MoveList) Moves() []ScoredMove { return ml.moves[:ml.count] }

// NextMove performs one selection-sort pass over entries i..Len()-1: the
// highest-scored entry is swapped into position i and returned. Calling it
// with i = 0, 1, 2, ... yields moves best first without a full sort.
func (ml *MoveList) NextMove(i int) ScoredMove {
	best := i
	for j := i + 1; j < ml.count; j++ {
		if ml.moves[j].Score > ml.moves[best].Score {
			best = j
		}
	}
	ml.moves[i], ml.moves[best] = ml.moves[best], ml.moves[i]
	return ml.moves[i]
}

// Contains reports whether m is in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i].Move == m {
			return true
		}
	}
	return false
}
