package record

import (
	"math/rand"
	"time"
)

var (
	erpJournals = []string{"payments_settlement", "card_interchange", "fees_accrual", "refunds", "chargebacks", "revenue_recognition"}
	glAccounts  = []string{"1000-Cash", "1100-Receivables", "2000-DepositsLiability", "4000-InterchangeRevenue", "5000-FeesExpense", "5100-Refunds"}
	erpEntities = []string{"HQ", "NYC", "SFO", "LON"}
	erpPosters  = []string{"batch_job", "integration", "analyst"}
)

// ERPEvent is a general-ledger posting. Exactly one of debit/credit is set;
// amount holds the positive magnitude either way.
type ERPEvent struct {
	Base
	JournalType string  `json:"journal_type"`
	GLAccount   string  `json:"gl_account"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Entity      string  `json:"entity"`
	PostedBy    string  `json:"posted_by"`
}

// NewERP generates one erp event.
func NewERP(r *rand.Rand, v Vocab, day time.Time) Record {
	base := newBase(r, v, day, ERP)
	base.EventType = "gl_posting"
	amt := amount(r, 5, 5000)
	base.Amount = amt

	ev := &ERPEvent{
		Base:        base,
		JournalType: choice(r, erpJournals),
		GLAccount:   choice(r, glAccounts),
		Entity:      choice(r, erpEntities),
		PostedBy:    choice(r, erpPosters),
	}
	if r.Intn(2) == 0 {
		ev.Debit = amt
	} else {
		ev.Credit = amt
	}
	return ev
}
