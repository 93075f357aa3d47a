// Package cpf validates Brazilian CPF numbers (11 digits, two trailing
// check digits).
package cpf

import "strings"

// Valid reports whether s is a well-formed CPF: exactly 11 digits, not
// all identical, with both check digits matching the mod-11 rule.
func Valid(s string) bool {
	if len(s) != 11 {
		return false
	}
	for i := 0; i < 11; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	// Sequences like "00000000000" pass the arithmetic but are not
	// issued CPFs.
	if strings.Count(s, s[:1]) == 11 {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(s[i]-'0') * (10 - i)
	}
	if int(s[9]-'0') != checkDigit(sum) {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(s[i]-'0') * (11 - i)
	}
	return int(s[10]-'0') == checkDigit(sum)
}

func checkDigit(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// Strip removes the usual "000.000.000-00" punctuation so callers can
// accept formatted input.
func Strip(s string) string {
	return strings.NewReplacer(".", "", "-", "", " ", "").Replace(s)
}
