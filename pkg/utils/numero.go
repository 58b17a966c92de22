package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumero renders a document number as NNN-YYYY, zero padded to
// three digits. Sequences past 999 keep growing without truncation.
func FormatNumero(seq, year int) string {
	return fmt.Sprintf("%03d-%d", seq, year)
}

// NextNumero computes the number following latest within a year's
// sequence. An empty or unparseable latest restarts the sequence at 1.
func NextNumero(latest string, year int) string {
	if latest == "" {
		return FormatNumero(1, year)
	}
	head, _, found := strings.Cut(latest, "-")
	if !found {
		return FormatNumero(1, year)
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return FormatNumero(1, year)
	}
	return FormatNumero(n+1, year)
}
