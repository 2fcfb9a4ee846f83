package card

// ValidateLuhn reports whether a normalized card number passes the Luhn
// mod-10 checksum. Non-digit characters or a length outside 13-19 return
// false.
//
// Digits are processed right to left: every second digit is doubled, and a
// doubled value above 9 has 9 subtracted (the digit sum of the product). The
// number is valid when the total is divisible by 10.
func ValidateLuhn(number string) bool {
	length := len(number)
	if length < 13 || length > 19 {
		return false
	}

	sum := 0
	double := false
	for i := length - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}
