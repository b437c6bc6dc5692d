package domain

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// mod11Digit computes one check digit over digits using the given weights:
// remainder < 2 yields 0, otherwise 11 - remainder.
func mod11Digit(digits string, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}

func descending(from, to int) []int {
	weights := make([]int, 0, from-to+1)
	for w := from; w >= to; w-- {
		weights = append(weights, w)
	}
	return weights
}
