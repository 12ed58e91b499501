package record

import (
	"math"
	"math/rand"
	"time"
)

var (
	billingStatuses      = []string{"open", "paid", "overdue", "refunded"}
	billingStatusWeights = []int{40, 45, 10, 5}

	billingEventTypes = []string{"invoice_issued", "invoice_paid", "refund_issued"}
	dueDayOffsets     = []int{7, 14, 30}
	taxRates          = []float64{0, 0.05, 0.07, 0.1}
	partialFractions  = []float64{0, 0.25, 0.5, 0.75}
)

// InvoiceEvent is a billing lifecycle event. Refunds carry a negative amount.
type InvoiceEvent struct {
	Base
	InvoiceID   string    `json:"invoice_id"`
	InvoiceDate time.Time `json:"invoice_date"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	AmountDue   float64   `json:"amount_due"`
	AmountPaid  float64   `json:"amount_paid"`
	TaxRate     float64   `json:"tax_rate"`
	LineCount   int       `json:"line_count"`
}

// NewBilling generates one billing event.
func NewBilling(r *rand.Rand, v Vocab, day time.Time) Record {
	base := newBase(r, v, day, Billing)
	status := weighted(r, billingStatuses, billingStatusWeights)
	issued := tsWithin(r, day)
	due := issued.AddDate(0, 0, dueDayOffsets[r.Intn(len(dueDayOffsets))])

	amt := amount(r, 20, 2000)
	paid := amt
	if status != "paid" && status != "refunded" {
		paid = round2(amt * partialFractions[r.Intn(len(partialFractions))])
	}

	base.EventType = billingEventTypes[r.Intn(len(billingEventTypes))]
	base.Amount = amt
	if base.EventType == "refund_issued" {
		base.Amount = -paid
	}

	return &InvoiceEvent{
		Base:        base,
		InvoiceID:   "INV-" + shortID(8),
		InvoiceDate: issued,
		DueDate:     due,
		Status:      status,
		AmountDue:   math.Max(0, round2(amt-paid)),
		AmountPaid:  paid,
		TaxRate:     taxRates[r.Intn(len(taxRates))],
		LineCount:   1 + r.Intn(5),
	}
}
