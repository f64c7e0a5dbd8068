// Package review holds the arithmetic shared by the application review
// engine and the consistency scanner: need-fulfillment thresholds and the
// project closure rule. Everything here is a pure function over values the
// caller already loaded, so the transactional handlers stay thin and the
// rules stay testable without a database.
package review

import (
	"github.com/mosala-labs/mosala-backend/dao/model"
)

// AcceptedTally aggregates the ACCEPTED applications of one need. It is
// recomputed from scratch on every acceptance rather than incrementally
// maintained, eliminating drift between a cached counter and the
// application table.
type AcceptedTally struct {
	// Amount is the sum of proposedAmount over accepted applications.
	Amount int64
	// Count is the number of accepted applications.
	Count int64
}

// NeedFilled reports whether a need's target is met by the accepted
// applications tallied in t.
//
// FINANCIAL needs fill when the accepted amounts reach the target amount;
// with no (or zero) target, any acceptance counts as filled. SKILL needs
// fill when the accepted count reaches the required headcount; when the
// deployment predates the required_count column (supportsRequiredCount is
// false) or the headcount is unset, any acceptance fills the need.
// MATERIAL and PARTNERSHIP needs fill on a single acceptance.
func NeedFilled(need *model.ProjectNeed, t AcceptedTally, supportsRequiredCount bool) bool {
	switch need.Type {
	case model.NeedFinancial:
		if need.Amount != nil && *need.Amount > 0 {
			return t.Amount >= *need.Amount
		}
		return t.Count >= 1
	case model.NeedSkill:
		if supportsRequiredCount && need.RequiredCount > 0 {
			return t.Count >= int64(need.RequiredCount)
		}
		return t.Count >= 1
	case model.NeedMaterial, model.NeedPartnership:
		return t.Count >= 1
	default:
		return false
	}
}

// Allocation summarizes a project's equity distribution and outstanding
// needs at one point in time.
type Allocation struct {
	// TotalAllocated is ownerEquityPercent plus the equity shares of every
	// need, filled or not.
	TotalAllocated int
	// OpenNeeds is the number of needs with isFilled = false.
	OpenNeeds int
}

// Summarize computes the allocation of a project from its owner equity and
// its needs.
func Summarize(ownerEquityPercent int, needs []model.ProjectNeed) Allocation {
	a := Allocation{TotalAllocated: ownerEquityPercent}
	for i := range needs {
		if needs[i].EquityShare != nil {
			a.TotalAllocated += *needs[i].EquityShare
		}
		if !needs[i].IsFilled {
			a.OpenNeeds++
		}
	}
	return a
}

// ShouldArchive reports whether the closure rule holds: every need filled
// and the equity allocation at exactly 100%. 99% or 101% must not archive.
func (a Allocation) ShouldArchive() bool {
	return a.OpenNeeds == 0 && a.TotalAllocated == 100
}

// Anomalous reports an over-allocation. Over 100% is a deliberate soft
// invariant: writes never reject it, the consistency scanner surfaces it to
// operators as a data-quality alert.
func (a Allocation) Anomalous() bool {
	return a.TotalAllocated > 100
}
