package scraper

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// voivodeships are the 16 Polish administrative regions the location
// helper recognizes in article text.
var voivodeships = []string{
	"pomorskie", "zachodniopomorskie", "wielkopolskie", "kujawsko-pomorskie",
	"warmińsko-mazurskie", "podlaskie", "mazowieckie", "łódzkie", "lubelskie",
	"podkarpackie", "małopolskie", "śląskie", "opolskie", "dolnośląskie",
	"lubuskie", "świętokrzyskie",
}

// ExtractVoivodeship returns the capitalized name of the first Polish
// voivodeship mentioned in the text, or "" when none matches. No
// extractor wires this into ingestion yet.
func ExtractVoivodeship(text string) string {
	lower := strings.ToLower(text)
	for _, v := range voivodeships {
		if strings.Contains(lower, v) {
			return capitalize(v)
		}
	}
	return ""
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
