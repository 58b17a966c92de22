package utils

import "strings"

var (
	frenchUnits = []string{"", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf"}
	frenchTeens = []string{"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize", "dix-sept", "dix-huit", "dix-neuf"}
	frenchTens  = []string{"", "", "vingt", "trente", "quarante", "cinquante", "soixante", "soixante-dix", "quatre-vingt", "quatre-vingt-dix"}
)

func frenchLessThanThousand(n int) string {
	if n == 0 {
		return ""
	}
	if n < 10 {
		return frenchUnits[n]
	}
	if n < 20 {
		return frenchTeens[n-10]
	}
	if n < 100 {
		ten := n / 10
		unit := n % 10
		// 70-79 and 90-99 compose on the lower ten with a teen
		if ten == 7 || ten == 9 {
			return frenchTens[ten-1] + "-" + frenchTeens[unit]
		}
		if unit != 0 {
			return frenchTens[ten] + "-" + frenchUnits[unit]
		}
		return frenchTens[ten]
	}

	hundred := n / 100
	rest := n % 100
	var result string
	if hundred == 1 {
		result = "cent"
	} else {
		result = frenchUnits[hundred] + " cent"
	}
	if rest != 0 {
		result += " " + frenchLessThanThousand(rest)
	}
	return result
}

// FrenchWords spells out a non-negative integer in French, following the
// invoice wording used on the printed documents ("mille cent", "vingt-un").
func FrenchWords(n int) string {
	if n <= 0 {
		return "zéro"
	}
	if n < 1000 {
		return frenchLessThanThousand(n)
	}
	if n < 1_000_000 {
		thousand := n / 1000
		rest := n % 1000
		var result string
		if thousand == 1 {
			result = "mille"
		} else {
			result = frenchLessThanThousand(thousand) + " mille"
		}
		if rest != 0 {
			result += " " + frenchLessThanThousand(rest)
		}
		return result
	}

	million := n / 1_000_000
	rest := n % 1_000_000
	var result string
	if million == 1 {
		result = "un million"
	} else {
		result = frenchLessThanThousand(million) + " millions"
	}
	if rest != 0 {
		result += " " + FrenchWords(rest)
	}
	return result
}

// FrenchWordsCapitalized upper-cases the first letter, for the
// "arrêtée à la somme de" line on invoices.
func FrenchWordsCapitalized(n int) string {
	words := FrenchWords(n)
	// first rune may be multi-byte ("zéro" never is, but stay safe)
	r := []rune(words)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
