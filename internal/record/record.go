package record

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Source identifies one of the simulated upstream systems.
type Source string

const (
	Payments Source = "payments"
	Billing  Source = "billing"
	CRM      Source = "crm"
	ERP      Source = "erp"
	Support  Source = "support"
)

// AllSources lists every simulated source in allocation order.
func AllSources() []Source {
	return []Source{Payments, Billing, CRM, ERP, Support}
}

// Base carries the fields present on every synthetic event.
type Base struct {
	EventID      string    `json:"event_id"`
	UserID       int       `json:"user_id"`
	Currency     string    `json:"currency"`
	SourceSystem Source    `json:"source_system"`
	Timestamp    time.Time `json:"timestamp"`
	EventType    string    `json:"event_type"`
	Amount       float64   `json:"amount"`
}

// Common exposes the shared fields of any event variant.
func (b *Base) Common() *Base { return b }

// Record is one synthetic event of any source-specific shape.
type Record interface {
	Common() *Base
}

// Vocab holds the categorical pools factories draw from. The config layer
// fills empty pools from DefaultVocab before generation starts.
type Vocab struct {
	Currencies     []string
	Countries      []string
	Merchants      []string
	Counterparties []string
	Aliases        []string
}

// DefaultVocab returns the built-in pools.
func DefaultVocab() Vocab {
	return Vocab{
		Currencies:     []string{"USD"},
		Countries:      []string{"US", "CA", "GB", "DE", "FR", "IN", "AU", "SG"},
		Merchants:      []string{"Acme Stores", "MetroMart", "Cafe Aurora", "TechHub", "TelcoMax", "Global ATM"},
		Counterparties: []string{"Payroll Inc", "Utility Co", "John Smith", "Jane Doe"},
		Aliases:        []string{"+1-202-555-0101", "friend@example.com", "$roommate"},
	}
}

func newBase(r *rand.Rand, v Vocab, day time.Time, src Source) Base {
	return Base{
		EventID:      uuid.New().String(),
		UserID:       1000 + r.Intn(499001),
		Currency:     choice(r, v.Currencies),
		SourceSystem: src,
		Timestamp:    tsWithin(r, day),
	}
}
