// Package codes decodes the compact reference and lookup codes embedded
// in KANJIDIC records: kuten coordinates, Morohashi and O'Neill
// dictionary indices, Busy People chapter references, and the SKIP,
// Four Corner, De Roo and Spahn-Hadamitzky query systems.
//
// Every decoder is a pure function of its input text: the same input
// always yields the same structured value or the same error kind. The
// errors are kderr values without a position; callers working from a
// document tree attach one with kderr.At.
package codes

// splitDigits splits s into its leading decimal run and the remainder.
func splitDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// alphabetic reports whether s is entirely ASCII letters.
func alphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}
