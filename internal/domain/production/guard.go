// Package production holds the pure rules governing deliverable production
// stages: the transition guard applied before a direct (kanban) move and the
// cascade applied after a guarded billing/price edit.
//
// Nothing in this package performs I/O or mutates shared state; callers pass a
// consistent snapshot of the deliverable and apply any result themselves.
package production

import "agencydesk/internal/domain/entities"

// DenialReason is a fixed, user-displayable explanation for a refused move.
// Each guard rule denies with its own reason so callers (and tests) can tell
// them apart.

type DenialReason string

const (
	// DenialCompletedGuardedOnly protects the completed stage: entering or
	// leaving it requires the guarded edit flow, never a direct move.
	DenialCompletedGuardedOnly DenialReason = "use the guarded edit flow to change a completed/to-complete item"

	// DenialAlreadyQuoted blocks reverting a priced deliverable to to_quote.
	DenialAlreadyQuoted DenialReason = "already quoted - cannot revert to to-quote"

	// DenialNeedsPriceOrProjectQuote blocks advancing an unpriced deliverable
	// out of to_quote when its project has no quote either.
	DenialNeedsPriceOrProjectQuote DenialReason = "add a price or attach to a quoted project"
)

// Decision is the outcome of a transition check. Denials are expected results,
// not errors: Reason is set only when Allowed is false.

type Decision struct {
	Allowed bool
	Reason  DenialReason
}

var allowed = Decision{Allowed: true}

func denied(reason DenialReason) Decision {
	return Decision{Reason: reason}
}

// TransitionContext is the snapshot a direct move is judged against. Price and
// ProjectQuoteAmount <= 0 mean "no price" / "no project quote".

type TransitionContext struct {
	Current            entities.DeliverableStatus
	Billing            entities.BillingStatus
	Price              float64
	ProjectQuoteAmount float64
}

// CanTransition decides whether a direct, unmediated status change may be
// committed. Rules are evaluated in order; the first that matches wins.
// Unlisted combinations are allowed: the only protected states are completed
// and the quoting boundary.
func CanTransition(ctx TransitionContext, target entities.DeliverableStatus) Decision {
	if target == ctx.Current {
		return allowed
	}
	if ctx.Current == entities.DeliverableStatusCompleted || target == entities.DeliverableStatusCompleted {
		return denied(DenialCompletedGuardedOnly)
	}
	if target == entities.DeliverableStatusToQuote && ctx.Price > 0 {
		return denied(DenialAlreadyQuoted)
	}
	if target == entities.DeliverableStatusPending && ctx.Current == entities.DeliverableStatusToQuote {
		if ctx.Price > 0 || ctx.ProjectQuoteAmount > 0 {
			return allowed
		}
		return denied(DenialNeedsPriceOrProjectQuote)
	}
	return allowed
}
