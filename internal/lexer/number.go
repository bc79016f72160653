package lexer

// NumberRule matches integer, decimal and exponent literals:
//
//	2  -42  .9  3.  .9e2  1e-5
//
// A literal needs at least one digit before or after the decimal point; a
// bare "-" or "." is not a number. An exponent is only taken when the literal
// has no decimal point or has digits after it, and only when the marker is
// followed by digits. Otherwise the marker is left for the next token, so
// "2e" is the number "2" followed by whatever "e" becomes.
//
// With Suffixes set, integers may end in an optional u/U then an optional
// l/L, and non-integers in an optional f/F, as in C.
type NumberRule struct {
	Suffixes bool
}

// BasicNumber is the number rule without suffixes.
var BasicNumber Rule = NumberRule{}

// CNumber accepts C literal suffixes: 2.5e-3f, -51UL.
var CNumber Rule = NumberRule{Suffixes: true}

// Match implements Rule.
func (r NumberRule) Match(src string, idx int, _ *Cursor) (int, error) {
	start := idx
	end := len(src)

	if src[idx] == '-' {
		idx++
	}

	digitsStart := idx
	idx = skipDigits(src, idx)
	digits := idx - digitsStart

	integer := true
	decimalPoint := false
	decimals := 0
	if idx < end && src[idx] == '.' {
		integer = false
		decimalPoint = true
		idx++
		decimalsStart := idx
		idx = skipDigits(src, idx)
		decimals = idx - decimalsStart
		digits += decimals
	}

	if digits == 0 {
		return 0, nil
	}

	if idx < end && (src[idx] == 'e' || src[idx] == 'E') && (!decimalPoint || decimals > 0) {
		// Save position in case there are no exponent digits.
		marker := idx
		idx++
		if idx < end && src[idx] == '-' {
			idx++
		}
		expStart := idx
		idx = skipDigits(src, idx)
		if idx == expStart {
			idx = marker
		} else {
			integer = false
		}
	}

	if r.Suffixes {
		if integer {
			if idx < end && (src[idx] == 'u' || src[idx] == 'U') {
				idx++
			}
			if idx < end && (src[idx] == 'l' || src[idx] == 'L') {
				idx++
			}
		} else if idx < end && (src[idx] == 'f' || src[idx] == 'F') {
			idx++
		}
	}

	return idx - start, nil
}

func skipDigits(src string, idx int) int {
	for idx < len(src) && isDigit(src[idx]) {
		idx++
	}
	return idx
}
