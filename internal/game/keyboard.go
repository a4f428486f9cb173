package game

// Keyboard tracks the best score seen for each letter A-Z over a game.
type Keyboard struct {
	known [26]bool
	best  [26]LetterScore
}

// Record folds a result into the keyboard. A letter only ever moves up:
// Absent, then PresentElsewhere, then Correct.
func (k *Keyboard) Record(res GuessResult) {
	for i, score := range res.Scores {
		idx, ok := letterIndex(res.Guess[i])
		if !ok {
			continue
		}
		if !k.known[idx] || score > k.best[idx] {
			k.best[idx] = score
		}
		k.known[idx] = true
	}
}

// Lookup returns the best score for letter and whether it has been guessed.
func (k *Keyboard) Lookup(letter byte) (LetterScore, bool) {
	idx, ok := letterIndex(letter)
	if !ok || !k.known[idx] {
		return Absent, false
	}
	return k.best[idx], true
}

// Reset forgets every recorded letter.
func (k *Keyboard) Reset() {
	*k = Keyboard{}
}

func letterIndex(letter byte) (int, bool) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return 0, false
	}
	return int(letter - 'A'), true
}
