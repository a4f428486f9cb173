// Package game implements the word game itself: scoring a guess against the
// hidden answer, and the session that owns the answer while a player works
// towards it.
//
// # Scoring
//
// Score compares a guess with the answer and labels every letter:
//
//	res := game.Score("REACT", "CRANE")
//	// R PresentElsewhere, E PresentElsewhere, A Correct, C PresentElsewhere, T Absent
//	res.IsWinning() // false
//
// Exact matches are credited first. Remaining guess letters then claim the
// leftmost answer letter that has not been credited yet, so a repeated letter
// never earns more marks than the answer has copies of it.
//
// # Sessions
//
// A Game holds one answer for its whole lifetime and counts accepted guesses:
//
//	g, _ := game.New(game.VariantNormal, answer, quartz.NewReal())
//	res := g.Guess(word)
//	if g.Won() {
//	    fmt.Println("solved in", g.Tries())
//	}
//
// There is no attempt limit; Tries is informational. Callers validate length
// and dictionary membership before calling Guess.
package game
