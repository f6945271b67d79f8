package helpers

// CountWords returns the number of tokens in text. Tokens are separated by
// runs of space, tab or newline characters; every other byte, punctuation
// included, belongs to a token.
func CountWords(text string) int {
	count := 0
	inWord := false

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\n':
			inWord = false
		default:
			if !inWord {
				count++
				inWord = true
			}
		}
	}

	return count
}
