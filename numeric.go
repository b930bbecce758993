package marc21

import "strconv"

// atoi parses b as an ASCII decimal integer, the way every fixed-width
// MARC21 numeric field (record length, base address, directory entries)
// is encoded. Any non-digit byte, including a leading sign that
// strconv.Atoi would otherwise accept, is rejected.
func atoi(b []byte) (int, error) {
	if !isAllDigits(b) {
		return 0, &strconv.NumError{Func: "Atoi", Num: string(b), Err: strconv.ErrSyntax}
	}
	return strconv.Atoi(string(b))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// isAllDigits reports whether every byte in b is an ASCII decimal digit.
func isAllDigits(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
