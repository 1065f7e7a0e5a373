package freight

import "fmt"

// Quote lifecycle.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusPending  = "pending"
	QuoteStatusAccepted = "accepted"
	QuoteStatusExpired  = "expired"
	QuoteStatusDeclined = "declined"
)

// Dispatch lifecycle. Forward-only through the physical pickup-to-delivery
// sequence; cancelled is reachable from any non-terminal status.
const (
	DispatchStatusPending    = "pending"
	DispatchStatusDispatched = "dispatched"
	DispatchStatusAtPickup   = "at_pickup"
	DispatchStatusInTransit  = "in_transit"
	DispatchStatusAtDelivery = "at_delivery"
	DispatchStatusDelivered  = "delivered"
	DispatchStatusCompleted  = "completed"
	DispatchStatusCancelled  = "cancelled"
)

const (
	DriverStatusAvailable = "available"
	DriverStatusOnLoad    = "on_load"
	DriverStatusOffDuty   = "off_duty"
)

const (
	CarrierStatusActive   = "active"
	CarrierStatusInactive = "inactive"
	CarrierStatusPending  = "pending"
)

var quoteTransitions = map[string][]string{
	QuoteStatusDraft:   {QuoteStatusPending},
	QuoteStatusPending: {QuoteStatusAccepted, QuoteStatusExpired, QuoteStatusDeclined},
}

var dispatchSequence = []string{
	DispatchStatusPending,
	DispatchStatusDispatched,
	DispatchStatusAtPickup,
	DispatchStatusInTransit,
	DispatchStatusAtDelivery,
	DispatchStatusDelivered,
	DispatchStatusCompleted,
}

var dispatchOrder = func() map[string]int {
	order := make(map[string]int, len(dispatchSequence))
	for i, s := range dispatchSequence {
		order[s] = i
	}
	return order
}()

func IsQuoteStatus(status string) bool {
	switch status {
	case QuoteStatusDraft, QuoteStatusPending, QuoteStatusAccepted, QuoteStatusExpired, QuoteStatusDeclined:
		return true
	}
	return false
}

func IsDispatchStatus(status string) bool {
	if status == DispatchStatusCancelled {
		return true
	}
	_, ok := dispatchOrder[status]
	return ok
}

// ValidateQuoteTransition reports whether a quote may move from one status to
// the next. Accepted, expired and declined are terminal.
func ValidateQuoteTransition(from, to string) error {
	if !IsQuoteStatus(to) {
		return fmt.Errorf("unknown quote status %q", to)
	}
	for _, allowed := range quoteTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("illegal quote transition %s -> %s", from, to)
}

// ValidateDispatchTransition enforces the forward sequence one step at a
// time. Cancelled is allowed from every non-terminal status; completed and
// cancelled are terminal.
func ValidateDispatchTransition(from, to string) error {
	if !IsDispatchStatus(to) {
		return fmt.Errorf("unknown dispatch status %q", to)
	}
	if DispatchTerminal(from) {
		return fmt.Errorf("dispatch is already %s", from)
	}
	if to == DispatchStatusCancelled {
		return nil
	}
	fromIdx, ok := dispatchOrder[from]
	if !ok {
		return fmt.Errorf("unknown dispatch status %q", from)
	}
	if dispatchOrder[to] != fromIdx+1 {
		return fmt.Errorf("illegal dispatch transition %s -> %s", from, to)
	}
	return nil
}

// DispatchTerminal reports whether no further status changes are possible.
func DispatchTerminal(status string) bool {
	return status == DispatchStatusCompleted || status == DispatchStatusCancelled
}
