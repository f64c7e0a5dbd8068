package review

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/mosala-labs/mosala-backend/dao/model"
)

func financialNeed(amount *int64) *model.ProjectNeed {
	return &model.ProjectNeed{Type: model.NeedFinancial, Amount: amount, RequiredCount: 1}
}

func skillNeed(count int) *model.ProjectNeed {
	return &model.ProjectNeed{Type: model.NeedSkill, RequiredCount: count}
}

func TestNeedFilledFinancial(t *testing.T) {
	need := financialNeed(lo.ToPtr(int64(5_000_000)))

	assert.False(t, NeedFilled(need, AcceptedTally{Amount: 4_999_999, Count: 3}, true))
	assert.True(t, NeedFilled(need, AcceptedTally{Amount: 5_000_000, Count: 1}, true))
	assert.True(t, NeedFilled(need, AcceptedTally{Amount: 7_000_000, Count: 2}, true))

	// no target amount: any acceptance counts as filled
	assert.True(t, NeedFilled(financialNeed(nil), AcceptedTally{Count: 1}, true))
	assert.False(t, NeedFilled(financialNeed(nil), AcceptedTally{}, true))
	assert.True(t, NeedFilled(financialNeed(lo.ToPtr(int64(0))), AcceptedTally{Count: 1}, true))
}

func TestNeedFilledSkill(t *testing.T) {
	need := skillNeed(2)

	assert.False(t, NeedFilled(need, AcceptedTally{Count: 1}, true))
	assert.True(t, NeedFilled(need, AcceptedTally{Count: 2}, true))
	assert.True(t, NeedFilled(need, AcceptedTally{Count: 3}, true))

	// headcount unset: one acceptance is enough
	assert.True(t, NeedFilled(skillNeed(0), AcceptedTally{Count: 1}, true))

	// deployments without the required_count column fall back to
	// any-acceptance-fills
	assert.True(t, NeedFilled(need, AcceptedTally{Count: 1}, false))
	assert.False(t, NeedFilled(need, AcceptedTally{}, false))
}

func TestNeedFilledMaterialPartnership(t *testing.T) {
	for _, typ := range []model.NeedType{model.NeedMaterial, model.NeedPartnership} {
		need := &model.ProjectNeed{Type: typ}
		assert.False(t, NeedFilled(need, AcceptedTally{}, true))
		assert.True(t, NeedFilled(need, AcceptedTally{Count: 1}, true))
	}
}

func TestNeedFilledUnknownType(t *testing.T) {
	need := &model.ProjectNeed{Type: model.NeedType("EXOTIC")}
	assert.False(t, NeedFilled(need, AcceptedTally{Count: 10}, true))
}

func TestSummarize(t *testing.T) {
	needs := []model.ProjectNeed{
		{EquityShare: lo.ToPtr(30), IsFilled: true},
		{EquityShare: lo.ToPtr(20), IsFilled: false},
		{EquityShare: nil, IsFilled: false},
	}
	a := Summarize(40, needs)
	assert.Equal(t, 90, a.TotalAllocated)
	assert.Equal(t, 2, a.OpenNeeds)
}

func TestShouldArchiveExactHundredOnly(t *testing.T) {
	closed := func(total int, open int) bool {
		return Allocation{TotalAllocated: total, OpenNeeds: open}.ShouldArchive()
	}

	assert.True(t, closed(100, 0))
	assert.False(t, closed(99, 0))
	assert.False(t, closed(101, 0))
	assert.False(t, closed(100, 1))
}

func TestAnomalous(t *testing.T) {
	assert.False(t, Allocation{TotalAllocated: 100}.Anomalous())
	assert.True(t, Allocation{TotalAllocated: 101}.Anomalous())
	assert.False(t, Allocation{TotalAllocated: 60}.Anomalous())
}

// Scenario from the closure rule: owner keeps 40%, one SKILL need for two
// people carries 60%. The first acceptance leaves the need open; the second
// fills it and the project qualifies for archival.
func TestTwoPersonSkillClosureScenario(t *testing.T) {
	need := &model.ProjectNeed{Type: model.NeedSkill, RequiredCount: 2, EquityShare: lo.ToPtr(60)}

	assert.False(t, NeedFilled(need, AcceptedTally{Count: 1}, true))
	a := Summarize(40, []model.ProjectNeed{*need})
	assert.False(t, a.ShouldArchive())

	assert.True(t, NeedFilled(need, AcceptedTally{Count: 2}, true))
	need.IsFilled = true
	a = Summarize(40, []model.ProjectNeed{*need})
	assert.True(t, a.ShouldArchive())
}
