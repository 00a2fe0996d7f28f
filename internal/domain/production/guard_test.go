package production_test

import (
	"testing"

	"agencydesk/internal/domain/entities"
	"agencydesk/internal/domain/production"

	"github.com/stretchr/testify/require"
)

const (
	toQuote    = entities.DeliverableStatusToQuote
	pending    = entities.DeliverableStatusPending
	inProgress = entities.DeliverableStatusInProgress
	completed  = entities.DeliverableStatusCompleted
)

var allStatuses = []entities.DeliverableStatus{toQuote, pending, inProgress, completed}

// guardCases is the canonical rule table: every guard rule appears at least
// once with the context that triggers it and the decision it must produce.
var guardCases = []struct {
	name    string
	ctx     production.TransitionContext
	target  entities.DeliverableStatus
	allowed bool
	reason  production.DenialReason
}{
	{
		name:    "identity move is a no-op",
		ctx:     production.TransitionContext{Current: pending, Billing: entities.BillingStatusPending},
		target:  pending,
		allowed: true,
	},
	{
		name:    "identity wins even on completed",
		ctx:     production.TransitionContext{Current: completed, Billing: entities.BillingStatusBalance, Price: 900},
		target:  completed,
		allowed: true,
	},
	{
		name:   "cannot drag into completed",
		ctx:    production.TransitionContext{Current: inProgress, Billing: entities.BillingStatusProgress, Price: 1200},
		target: completed,
		reason: production.DenialCompletedGuardedOnly,
	},
	{
		name:   "cannot drag out of completed",
		ctx:    production.TransitionContext{Current: completed, Billing: entities.BillingStatusBalance, Price: 1200},
		target: inProgress,
		reason: production.DenialCompletedGuardedOnly,
	},
	{
		name:   "completed wall beats quoting rules",
		ctx:    production.TransitionContext{Current: completed, Billing: entities.BillingStatusBalance, Price: 1200},
		target: toQuote,
		reason: production.DenialCompletedGuardedOnly,
	},
	{
		name:   "priced item cannot revert to to_quote",
		ctx:    production.TransitionContext{Current: pending, Billing: entities.BillingStatusPending, Price: 500},
		target: toQuote,
		reason: production.DenialAlreadyQuoted,
	},
	{
		name:    "unpriced item may revert to to_quote",
		ctx:     production.TransitionContext{Current: pending, Billing: entities.BillingStatusPending},
		target:  toQuote,
		allowed: true,
	},
	{
		name:   "to_quote to pending without price or project quote",
		ctx:    production.TransitionContext{Current: toQuote, Billing: entities.BillingStatusPending},
		target: pending,
		reason: production.DenialNeedsPriceOrProjectQuote,
	},
	{
		name:    "to_quote to pending with own price",
		ctx:     production.TransitionContext{Current: toQuote, Billing: entities.BillingStatusPending, Price: 800},
		target:  pending,
		allowed: true,
	},
	{
		name:    "project quote unblocks unpriced deliverable",
		ctx:     production.TransitionContext{Current: toQuote, Billing: entities.BillingStatusPending, ProjectQuoteAmount: 10000},
		target:  pending,
		allowed: true,
	},
	{
		name:    "in_progress is always reachable from pending",
		ctx:     production.TransitionContext{Current: pending, Billing: entities.BillingStatusDeposit, Price: 800},
		target:  inProgress,
		allowed: true,
	},
	{
		name:    "to_quote straight to in_progress is permitted",
		ctx:     production.TransitionContext{Current: toQuote, Billing: entities.BillingStatusPending},
		target:  inProgress,
		allowed: true,
	},
	{
		name:    "in_progress back to pending is permitted",
		ctx:     production.TransitionContext{Current: inProgress, Billing: entities.BillingStatusDeposit, Price: 800},
		target:  pending,
		allowed: true,
	},
}

func TestCanTransition(t *testing.T) {
	for _, tc := range guardCases {
		t.Run(tc.name, func(t *testing.T) {
			d := production.CanTransition(tc.ctx, tc.target)
			require.Equal(t, tc.allowed, d.Allowed)
			if tc.allowed {
				require.Empty(t, d.Reason)
			} else {
				require.Equal(t, tc.reason, d.Reason)
			}
		})
	}
}

// Identity is always permitted, whatever the context.
func TestCanTransition_IdentityAlwaysAllowed(t *testing.T) {
	for _, status := range allStatuses {
		for _, price := range []float64{0, 250} {
			ctx := production.TransitionContext{Current: status, Price: price}
			require.True(t, production.CanTransition(ctx, status).Allowed,
				"identity denied for %s price=%v", status, price)
		}
	}
}

// completed can never be created or removed by a direct move.
func TestCanTransition_CompletedWall(t *testing.T) {
	for _, status := range allStatuses {
		for _, price := range []float64{0, 250} {
			ctx := production.TransitionContext{Current: status, Price: price, ProjectQuoteAmount: 5000}
			if status != completed {
				d := production.CanTransition(ctx, completed)
				require.False(t, d.Allowed)
				require.Equal(t, production.DenialCompletedGuardedOnly, d.Reason)
			}
			if status == completed {
				for _, target := range allStatuses {
					if target == completed {
						continue
					}
					d := production.CanTransition(ctx, target)
					require.False(t, d.Allowed)
					require.Equal(t, production.DenialCompletedGuardedOnly, d.Reason)
				}
			}
		}
	}
}

// to_quote -> pending is allowed iff a price or a project quote exists.
func TestCanTransition_QuotingBoundary(t *testing.T) {
	for _, price := range []float64{0, 300} {
		for _, projectQuote := range []float64{0, 10000} {
			ctx := production.TransitionContext{Current: toQuote, Price: price, ProjectQuoteAmount: projectQuote}
			d := production.CanTransition(ctx, pending)
			require.Equal(t, price > 0 || projectQuote > 0, d.Allowed,
				"price=%v projectQuote=%v", price, projectQuote)
		}
	}
}
