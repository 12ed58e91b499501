package record

import (
	"fmt"
	"math/rand"
	"time"
)

var (
	crmEventTypes   = []string{"kyc_verified", "kyc_pending", "kyc_refresh_due", "address_update", "phone_update", "account_locked", "login"}
	crmEventWeights = []int{25, 10, 5, 20, 15, 5, 20}

	kycStatuses = []string{"pending", "verified", "refresh_due", "blocked"}
)

// CRMEvent is a customer lifecycle or KYC event. Amount is always zero.
type CRMEvent struct {
	Base
	KYCStatus string `json:"kyc_status"`
	RiskScore int    `json:"risk_score"`
	PEPFlag   bool   `json:"pep_flag"`
	IP        string `json:"ip"`
	Country   string `json:"country"`
}

// NewCRM generates one crm event.
func NewCRM(r *rand.Rand, v Vocab, day time.Time) Record {
	base := newBase(r, v, day, CRM)
	base.EventType = weighted(r, crmEventTypes, crmEventWeights)
	base.Amount = 0

	return &CRMEvent{
		Base:      base,
		KYCStatus: choice(r, kycStatuses),
		RiskScore: 1 + r.Intn(99),
		PEPFlag:   r.Intn(4) == 0, // rare
		IP:        fmt.Sprintf("192.168.%d.%d", r.Intn(256), r.Intn(256)),
		Country:   choice(r, v.Countries),
	}
}
