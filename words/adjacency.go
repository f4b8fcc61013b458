package words

// EditDistanceOne reports whether a and b are word-ladder neighbors:
// either they have the same length and differ in exactly one position,
// or their lengths differ by one and the longer is the shorter with a
// single character inserted.
//
// The rule is pure and symmetric, and a word is never adjacent to
// itself — exactly the contract the ladder processor expects of an
// adjacency rule. Comparison is byte-wise.
func EditDistanceOne(a, b string) bool {
	switch {
	case a == b:
		return false
	case len(a) == len(b):
		return oneSubstitution(a, b)
	case len(a) == len(b)+1:
		return oneInsertion(b, a)
	case len(b) == len(a)+1:
		return oneInsertion(a, b)
	default:
		return false
	}
}

// oneSubstitution reports whether the equal-length a and b differ in
// exactly one position.
func oneSubstitution(a, b string) bool {
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}

	return diff == 1
}

// oneInsertion reports whether long equals short with exactly one extra
// character inserted somewhere; len(long) == len(short)+1 is assumed.
func oneInsertion(short, long string) bool {
	i, j := 0, 0
	skipped := false
	for i < len(short) {
		if short[i] == long[j] {
			i++
			j++
			continue
		}
		if skipped {
			return false
		}
		// Skip the inserted character in the longer word.
		skipped = true
		j++
	}

	// Either the insertion was consumed mid-word, or the extra character
	// sits at the end of long. Both are a single insertion.
	return true
}
