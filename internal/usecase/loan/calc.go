package loan

import "github.com/shopspring/decimal"

// ComputeBalance returns principal plus simple (non-compounding) interest over
// the whole term:
//
//	balance = principal + principal * (annualRatePercent/100) * (termMonths/12)
//
// All arithmetic stays in decimal space; the result is rounded to 2 places to
// match decimal(15,2) storage. A zero rate yields the principal unchanged.
func ComputeBalance(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		// terms are validated upstream as positive; never divide on a
		// degenerate term
		return principal.Round(2)
	}
	// percent and months-per-year folded into one divisor: 100 * 12
	interest := principal.
		Mul(annualRatePercent).
		Mul(decimal.NewFromInt(int64(termMonths))).
		Div(decimal.NewFromInt(1200))
	return principal.Add(interest).Round(2)
}
