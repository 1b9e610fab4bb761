package llm

// CharBudget converts a model's token context size into the character budget
// applied before submission, on the heuristic that a token averages two
// characters.
func CharBudget(ctxTokens int) int {
	return 2 * ctxTokens
}

// TruncateChars returns the longest prefix of s containing at most max
// codepoints. Multi-byte codepoints are never split; input already within the
// budget is returned unchanged.
func TruncateChars(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
