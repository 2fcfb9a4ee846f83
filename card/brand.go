package card

import (
	"strconv"

	"git.thinkinpower.net/cardsrv/mod"
)

// Brand classifies a normalized card number by its leading digits. Rules run
// in a fixed precedence order and the first match wins. The input is not
// assumed valid: short prefixes are compared as-is and a non-numeric prefix
// simply fails the range rules.
func Brand(number string) mod.CardBrand {
	if number == "" {
		return mod.BrandUnknown
	}
	firstTwo := prefix(number, 2)
	firstFour := prefix(number, 4)

	switch {
	case number[0] == '4':
		return mod.BrandVisa
	case inNumericRange(firstTwo, 51, 55):
		return mod.BrandMastercard
	case firstTwo == "34" || firstTwo == "37":
		return mod.BrandAmex
	case firstFour == "6011" || firstFour == "622126" || firstFour == "622925" || firstTwo == "65":
		return mod.BrandDiscover
	case firstTwo == "36" || firstTwo == "38" || firstTwo == "39" || firstFour == "3010":
		return mod.BrandDinersClub
	case inNumericRange(firstFour, 3528, 3589):
		return mod.BrandJCB
	}
	return mod.BrandUnknown
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func inNumericRange(s string, lo, hi int) bool {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}
