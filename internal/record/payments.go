package record

import (
	"math/rand"
	"time"
)

var (
	paymentChannels       = []string{"ach_credit", "ach_debit", "wire_transfer", "card_auth", "card_settlement", "zelle"}
	paymentChannelWeights = []int{20, 20, 10, 25, 20, 5}

	paymentStatuses      = []string{"posted", "pending", "failed"}
	paymentStatusWeights = []int{80, 17, 3}

	cardNetworks   = []string{"VISA", "MASTERCARD", "AMEX"}
	posEntryModes  = []string{"chip", "contactless", "magstripe", "ecommerce"}
	declineReasons = []string{"insufficient_funds", "suspected_fraud", "do_not_honor"}
)

type merchantCategory struct {
	mcc      string
	category string
}

var merchantCategories = []merchantCategory{
	{"5411", "Grocery"},
	{"5812", "Restaurant"},
	{"5732", "Electronics"},
	{"4814", "Telecom"},
	{"5999", "Specialty Retail"},
	{"6011", "ATM"},
}

// CardEvent is a card authorization or settlement at a merchant.
type CardEvent struct {
	Base
	CardNetwork     string  `json:"card_network"`
	PANLast4        string  `json:"pan_last4"`
	CardPresent     bool    `json:"card_present"`
	POSEntryMode    string  `json:"pos_entry_mode"`
	MerchantID      string  `json:"merchant_id"`
	MerchantName    string  `json:"merchant_name"`
	MerchantCountry string  `json:"merchant_country"`
	MCC             string  `json:"mcc"`
	Category        string  `json:"category"`
	ApprovalCode    *string `json:"approval_code"`
	DeclineReason   *string `json:"decline_reason"`
	Status          string  `json:"status"`
}

// ACHEvent is an ACH credit or debit. Debits carry a negative amount.
type ACHEvent struct {
	Base
	RoutingNumber    string `json:"routing_number"`
	AccountLast4     string `json:"account_last4"`
	CounterpartyName string `json:"counterparty_name"`
	TraceNumber      string `json:"trace_number"`
	Status           string `json:"status"`
}

// WireEvent is an incoming or outgoing wire transfer.
type WireEvent struct {
	Base
	SwiftBIC        string  `json:"swift_bic"`
	IBANMasked      string  `json:"iban_masked"`
	IsInternational bool    `json:"is_international"`
	Fees            float64 `json:"fees"`
	Status          string  `json:"status"`
}

// ZelleEvent is a P2P transfer to an aliased counterparty.
type ZelleEvent struct {
	Base
	CounterpartyAlias string `json:"counterparty_alias"`
	Status            string `json:"status"`
}

// NewPayment generates one payments event, choosing a channel by weight.
func NewPayment(r *rand.Rand, v Vocab, day time.Time) Record {
	base := newBase(r, v, day, Payments)
	channel := weighted(r, paymentChannels, paymentChannelWeights)
	status := weighted(r, paymentStatuses, paymentStatusWeights)

	switch channel {
	case "card_auth", "card_settlement":
		base.EventType = channel
		base.Amount = purchaseAmount(r)
		m := merchantCategories[r.Intn(len(merchantCategories))]
		ev := &CardEvent{
			Base:            base,
			CardNetwork:     choice(r, cardNetworks),
			PANLast4:        digits(r, 4),
			CardPresent:     r.Intn(2) == 0,
			POSEntryMode:    choice(r, posEntryModes),
			MerchantID:      shortID(8),
			MerchantName:    choice(r, v.Merchants),
			MerchantCountry: choice(r, v.Countries),
			MCC:             m.mcc,
			Category:        m.category,
			Status:          status,
		}
		if status == "failed" {
			reason := choice(r, declineReasons)
			ev.DeclineReason = &reason
		} else {
			code := shortID(6)
			ev.ApprovalCode = &code
		}
		return ev

	case "ach_credit", "ach_debit":
		base.EventType = channel
		amt := amount(r, 5, 2000)
		if channel == "ach_debit" {
			amt = -amt
		}
		base.Amount = amt
		return &ACHEvent{
			Base:             base,
			RoutingNumber:    digits(r, 9),
			AccountLast4:     digits(r, 4),
			CounterpartyName: choice(r, v.Counterparties),
			TraceNumber:      shortID(12),
			Status:           status,
		}

	case "wire_transfer":
		base.EventType = "wire_transfer"
		amt := amount(r, 100, 10000)
		base.Amount = amt
		if r.Intn(2) == 1 { // incoming vs outgoing
			base.Amount = -amt
		}
		return &WireEvent{
			Base:            base,
			SwiftBIC:        swiftBIC(r),
			IBANMasked:      maskedIBAN(r),
			IsInternational: r.Intn(2) == 0,
			Fees:            round2(amt * 0.003),
			Status:          status,
		}

	default: // zelle
		base.EventType = "zelle_payment"
		amt := amount(r, 5, 500)
		base.Amount = amt
		if r.Intn(2) == 1 {
			base.Amount = -amt
		}
		return &ZelleEvent{
			Base:              base,
			CounterpartyAlias: choice(r, v.Aliases),
			Status:            status,
		}
	}
}
