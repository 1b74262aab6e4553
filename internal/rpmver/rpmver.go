// Package rpmver compares RPM epoch:version-release strings using the
// same segment rules rpm itself applies: alternating numeric and
// alphabetic segments, numeric segments compared as integers, and a
// tilde sorting before everything including the empty string.
package rpmver

import "strings"

// CompareEVR compares two (epoch, version, release) triples.
// It returns -1, 0 or 1.
func CompareEVR(e1, v1, r1, e2, v2, r2 string) int {
	if c := Compare(normalizeEpoch(e1), normalizeEpoch(e2)); c != 0 {
		return c
	}
	if c := Compare(v1, v2); c != 0 {
		return c
	}
	return Compare(r1, r2)
}

func normalizeEpoch(e string) string {
	if e == "" {
		return "0"
	}
	return e
}

// Compare compares two version fragments per rpmvercmp semantics.
func Compare(a, b string) int {
	if a == b {
		return 0
	}
	ia, ib := 0, 0
	for ia < len(a) || ib < len(b) {
		// skip separators
		for ia < len(a) && !isAlnum(a[ia]) && a[ia] != '~' {
			ia++
		}
		for ib < len(b) && !isAlnum(b[ib]) && b[ib] != '~' {
			ib++
		}

		// tilde sorts before everything, including end of string
		aTilde := ia < len(a) && a[ia] == '~'
		bTilde := ib < len(b) && b[ib] == '~'
		if aTilde || bTilde {
			if !bTilde {
				return -1
			}
			if !aTilde {
				return 1
			}
			ia++
			ib++
			continue
		}

		if ia >= len(a) || ib >= len(b) {
			break
		}

		// grab the next segment of the same character class
		numeric := isDigit(a[ia])
		var sa, sb string
		if numeric {
			sa, ia = takeWhile(a, ia, isDigit)
			sb, ib = takeWhile(b, ib, isDigit)
		} else {
			sa, ia = takeWhile(a, ia, isAlpha)
			sb, ib = takeWhile(b, ib, isAlpha)
		}

		// a numeric segment always beats an alphabetic one
		if sb == "" {
			if numeric {
				return 1
			}
			return -1
		}

		if numeric {
			sa = strings.TrimLeft(sa, "0")
			sb = strings.TrimLeft(sb, "0")
			if len(sa) != len(sb) {
				if len(sa) > len(sb) {
					return 1
				}
				return -1
			}
		}
		if c := strings.Compare(sa, sb); c != 0 {
			if c > 0 {
				return 1
			}
			return -1
		}
	}

	if ia >= len(a) && ib >= len(b) {
		return 0
	}
	if ia < len(a) {
		return 1
	}
	return -1
}

func takeWhile(s string, i int, pred func(byte) bool) (string, int) {
	start := i
	for i < len(s) && pred(s[i]) {
		i++
	}
	return s[start:i], i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool { return isDigit(c) || isAlpha(c) }
