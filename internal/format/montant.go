package format

import (
	"fmt"
	"math"
	"strings"
)

// Montant renders an FCFA amount for tables and documents. Large amounts are
// compacted ("1,5 M FCFA", "2 Md FCFA"); below one million the amount is
// grouped by thousands with spaces ("850 000 FCFA"). ASCII only, so the PDF
// fonts render it without artefacts.
func Montant(montant float64) string {
	abs := math.Abs(montant)
	sign := ""
	if montant < 0 {
		sign = "-"
	}

	switch {
	case abs >= 1_000_000_000:
		return sign + compact(abs/1_000_000_000) + " Md FCFA"
	case abs >= 1_000_000:
		return sign + compact(abs/1_000_000) + " M FCFA"
	}

	return sign + groupThousands(int64(math.Round(abs))) + " FCFA"
}

func compact(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if strings.HasSuffix(s, ".0") {
		return s[:len(s)-2]
	}
	return strings.ReplaceAll(s, ".", ",")
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
