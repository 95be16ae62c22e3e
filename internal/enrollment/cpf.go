package enrollment

import "strings"

// digitsOnly strips every non-digit rune.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF checks the 11-digit Brazilian CPF using its two weighted check
// digits. Non-digit characters are stripped before validation; anything that
// does not leave exactly 11 digits is rejected.
func ValidCPF(raw string) bool {
	cpf := digitsOnly(raw)
	if len(cpf) != 11 {
		return false
	}

	digits := make([]int, 11)
	for i, r := range cpf {
		digits[i] = int(r - '0')
	}

	if checkDigit(digits[:9], 10) != digits[9] {
		return false
	}
	return checkDigit(digits[:10], 11) == digits[10]
}

// checkDigit computes one verification digit: a descending-weight sum mod 11,
// with remainders 10 and 11 mapped to 0.
func checkDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (firstWeight - i)
	}
	rest := (sum * 10) % 11
	if rest >= 10 {
		return 0
	}
	return rest
}
