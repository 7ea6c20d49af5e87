package template

const (
	vowelsUpper     = "AEIOU"
	consonantsUpper = "BCDFGHJKLMNPQRSTVWXYZ"
	vowelsLower     = "aeiou"
	consonantsLower = "bcdfghjklmnpqrstvwxyz"
	digits          = "0123456789"
	symbols         = "@&%?,=[]_:-+*$#!'^~;()/."

	letters      = vowelsUpper + vowelsLower + consonantsUpper + consonantsLower
	anyPrintable = letters + digits + "!@#$%^&*()"
)

// classAlphabets maps each character-class code to its ordered alphabet.
// 'x' is the explicit wildcard; unknown codes fall back to it as well.
var classAlphabets = map[byte]string{
	'V': vowelsUpper,
	'C': consonantsUpper,
	'v': vowelsLower,
	'c': consonantsLower,
	'A': vowelsUpper + consonantsUpper,
	'a': letters,
	'n': digits,
	'o': symbols,
	'x': anyPrintable,
}

// Alphabet returns the characters class may render to.
func Alphabet(class byte) string {
	if alphabet, ok := classAlphabets[class]; ok {
		return alphabet
	}
	return anyPrintable
}
