package record

import (
	"math/rand"
	"time"
)

// Factory produces one synthetic event for the given UTC day (midnight).
// Generation cannot fail; the only shared state is the passed rand source.
type Factory func(r *rand.Rand, v Vocab, day time.Time) Record

var factories = map[Source]Factory{
	Payments: NewPayment,
	Billing:  NewBilling,
	CRM:      NewCRM,
	ERP:      NewERP,
	Support:  NewSupport,
}

// ForSource returns the factory for source, or nil if the source is unknown.
func ForSource(s Source) Factory {
	return factories[s]
}

// Known reports whether s names a simulated source.
func Known(s Source) bool {
	_, ok := factories[s]
	return ok
}
