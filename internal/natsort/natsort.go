// Package natsort implements the number-aware filename ordering used for
// the save-file dropdown: "bf2savefile9" sorts before "bf2savefile10".
package natsort

import "unicode"

func isSep(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Less reports whether a orders before b. Separator runs (space,
// underscore, hyphen, period) are skipped on both sides; digit runs are
// compared by numeric value, with shorter runs winning value ties (so
// "7" < "07" < "007"); everything else compares case-insensitively.
// When one side runs out, the side with less remaining content wins.
//
// Digit runs accumulate into a uint64 and wrap on overflow; runs that
// long don't occur in real save names.
func Less(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0

	for i < len(ra) && j < len(rb) {
		for i < len(ra) && isSep(ra[i]) {
			i++
		}
		for j < len(rb) && isSep(rb[j]) {
			j++
		}
		if i >= len(ra) || j >= len(rb) {
			break
		}

		if isDigit(ra[i]) && isDigit(rb[j]) {
			var va, vb uint64
			ia, jb := i, j
			for ia < len(ra) && isDigit(ra[ia]) {
				va = va*10 + uint64(ra[ia]-'0')
				ia++
			}
			for jb < len(rb) && isDigit(rb[jb]) {
				vb = vb*10 + uint64(rb[jb]-'0')
				jb++
			}
			if va != vb {
				return va < vb
			}
			if lena, lenb := ia-i, jb-j; lena != lenb {
				return lena < lenb
			}
			i, j = ia, jb
			continue
		}

		ca := unicode.ToLower(ra[i])
		cb := unicode.ToLower(rb[j])
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}

	return len(ra)-i < len(rb)-j
}
