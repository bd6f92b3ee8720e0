package domain

// Commodities is the fixed symbol list every run loads: crude oil, gold, silver.
var Commodities = []string{"CL=F", "GC=F", "SI=F"}

// Symbols returns the distinct symbols of qs in first-seen order.
func Symbols(qs []Quote) []string {
	seen := make(map[string]bool, len(qs))
	var out []string
	for _, q := range qs {
		if seen[q.Symbol] {
			continue
		}
		seen[q.Symbol] = true
		out = append(out, q.Symbol)
	}
	return out
}
