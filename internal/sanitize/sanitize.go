// Package sanitize strips characters that console XML parsers cannot handle
// from post fields before they are placed in a response tree.
package sanitize

import (
	"strings"
	"unicode"
)

// Punctuation allowed in free-text fields besides letters, digits and whitespace.
const textPunctuation = `-_!@#$%^&*(){}+=,./?;:'"[]`

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// Base64 keeps only the Base64 alphabet. Used for mii and app_data blobs.
func Base64(s string) string {
	s = strings.Map(func(r rune) rune {
		if isBase64(r) {
			return r
		}
		return -1
	}, s)
	return strings.TrimSpace(lineBreaks.Replace(s))
}

// Text keeps letters, digits, whitespace and a fixed punctuation set, then
// drops line breaks. Angle brackets are never kept. The result is not trimmed.
func Text(s string) string {
	s = strings.Map(func(r rune) rune {
		if isASCIILetter(r) || isDigit(r) || isSpace(r) || strings.ContainsRune(textPunctuation, r) {
			return r
		}
		return -1
	}, s)
	return lineBreaks.Replace(s)
}

// Painting only removes line breaks and surrounding whitespace; the content is
// an encoded image and is otherwise passed through.
func Painting(s string) string {
	return strings.TrimSpace(lineBreaks.Replace(s))
}

func isBase64(r rune) bool {
	return isASCIILetter(r) || isDigit(r) || r == '+' || r == '/' || r == '='
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
