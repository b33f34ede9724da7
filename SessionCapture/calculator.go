package SessionCapture

import "EnasClinic/Models"

const (
	PaymentStatusFull    = "full"
	PaymentStatusPartial = "partial"
)

// ComputeTotal sums the price of every selected region. A region absent from
// the table contributes zero.
func ComputeTotal(selection *Selection, table Models.PriceTable) float64 {
	var total float64
	for _, region := range selection.Members() {
		total += table[region]
	}
	return total
}

func ApplyDiscount(total, percentage float64) float64 {
	return total * ((100 - percentage) / 100)
}

// ComputeRemaining is total minus paid, unclamped. Overpayment yields a
// negative remaining; it is surfaced as-is so the consumer can decide how to
// present it.
func ComputeRemaining(total, paid float64) float64 {
	return total - paid
}

// PaymentStatusFor tags a remaining amount: anything still owed is "partial",
// zero or overpaid is "full".
func PaymentStatusFor(remaining float64) string {
	if remaining > 0 {
		return PaymentStatusPartial
	}
	return PaymentStatusFull
}
