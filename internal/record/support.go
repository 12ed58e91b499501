package record

import (
	"math/rand"
	"time"
)

var (
	supportCategories = []string{"chargeback", "card_stolen", "login_issue", "payment_failed", "address_change", "refund_request"}

	supportPriorities      = []string{"low", "medium", "high", "urgent"}
	supportPriorityWeights = []int{50, 30, 15, 5}

	ticketStatuses      = []string{"open", "in_progress", "resolved", "closed"}
	ticketStatusWeights = []int{20, 30, 35, 15}

	supportChannels = []string{"phone", "email", "in_app", "chat"}
)

// SupportEvent is a support ticket transition. Amount is always zero.
type SupportEvent struct {
	Base
	TicketID string `json:"ticket_id"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Channel  string `json:"channel"`
}

// NewSupport generates one support event.
func NewSupport(r *rand.Rand, v Vocab, day time.Time) Record {
	base := newBase(r, v, day, Support)
	status := weighted(r, ticketStatuses, ticketStatusWeights)
	base.EventType = "ticket_opened"
	if status == "resolved" || status == "closed" {
		base.EventType = "ticket_closed"
	}
	base.Amount = 0

	return &SupportEvent{
		Base:     base,
		TicketID: "TCK-" + shortID(8),
		Category: choice(r, supportCategories),
		Priority: weighted(r, supportPriorities, supportPriorityWeights),
		Status:   status,
		Channel:  choice(r, supportChannels),
	}
}
