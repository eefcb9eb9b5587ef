package chess

// Most Valuable Victim - Least Valuable Aggressor, indexed [victim][attacker].
var mvvLva = [6][6]int32{
	{15, 14, 13, 12, 11, 10}, // victim Pawn
	{25, 24, 23, 22, 21, 20}, // victim Knight
	{35, 34, 33, 32, 31, 30}, // victim Bishop
	{45, 44, 43, 42, 41, 40}, // victim Rook
	{55, 54, 53, 52, 51, 50}, // victim Queen
	{0, 0, 0, 0, 0, 0},       // victim King
}

// Score offset so captures and promotions always sort above quiet moves.
const captureScoreOffset int32 = 20000

// ScoreMoves assigns MVV-LVA scores to captures and a promotion bonus to
// promotions; quiet moves keep score 0. Pair with MoveList.NextMove.
func ScoreMoves(ml *MoveList) {
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i).Move
		var score int32
		if m.IsCapture() {
			score = captureScoreOffset + mvvLva[m.Captured()][m.Piece()]
		}
		if promo := m.Kind().PromotionPiece(); promo != NoPiece {
			score += captureScoreOffset + int32(promo)*100
		}
		ml.SetScore(i, score)
	}
}
