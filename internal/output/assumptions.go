package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs
// when a comparison carries none of its own.
var DefaultAssumptions = []string{
	"Production month: 30 days",
	"Year-one deductions: IDC 70% and depletion 15% of the investment",
	"Monthly cash flow held constant over the term (no decline curve, no price escalation)",
	"Annualized return is simple: total profit / net investment / years",
}

func assumptionsFor(assumptions []string) []string {
	if len(assumptions) == 0 {
		return DefaultAssumptions
	}
	return assumptions
}
