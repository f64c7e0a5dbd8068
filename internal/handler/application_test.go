package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosala-labs/mosala-backend/dao/model"
)

func TestValidateSubmissionFinancial(t *testing.T) {
	req := &SubmitApplicationReq{
		ProjectID:      1,
		ProjectNeedID:  2,
		NeedType:       model.NeedFinancial,
		Message:        "je souhaite investir",
		ProposedAmount: "1000000",
	}

	p, fields := validateSubmission(req)
	require.Nil(t, fields)
	require.NotNil(t, p.Amount)
	assert.Equal(t, int64(1000000), *p.Amount)
	// an unset contributor count defaults to one person
	require.NotNil(t, p.RequiredCount)
	assert.Equal(t, 1, *p.RequiredCount)
	assert.Nil(t, p.SkillTags)
}

func TestValidateSubmissionFinancialAmountRequired(t *testing.T) {
	req := &SubmitApplicationReq{
		ProjectID:     1,
		ProjectNeedID: 2,
		NeedType:      model.NeedFinancial,
	}

	_, fields := validateSubmission(req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "proposedAmount")
}

func TestValidateSubmissionFinancialRejectsNonPositive(t *testing.T) {
	for _, amount := range []string{"0", "-500"} {
		req := &SubmitApplicationReq{
			ProjectID:      1,
			ProjectNeedID:  2,
			NeedType:       model.NeedFinancial,
			ProposedAmount: amount,
		}
		_, fields := validateSubmission(req)
		require.NotNil(t, fields, "amount %s should be rejected", amount)
		assert.Contains(t, fields, "proposedAmount")
	}
}

func TestValidateSubmissionNumericParseErrorsAreFieldScoped(t *testing.T) {
	req := &SubmitApplicationReq{
		ProjectID:             1,
		ProjectNeedID:         2,
		NeedType:              model.NeedFinancial,
		ProposedAmount:        "beaucoup",
		ProposedRequiredCount: "deux",
		ProposedEquityPercent: "dix",
	}

	_, fields := validateSubmission(req)
	require.NotNil(t, fields)
	assert.Equal(t, "must be an integer", fields["proposedAmount"])
	assert.Equal(t, "must be an integer", fields["proposedRequiredCount"])
	assert.Equal(t, "must be an integer", fields["proposedEquityPercent"])
}

func TestValidateSubmissionSkill(t *testing.T) {
	req := &SubmitApplicationReq{
		ProjectID:             1,
		ProjectNeedID:         2,
		NeedType:              model.NeedSkill,
		ProposedRequiredCount: "2",
		ProposedEquityPercent: "15",
		ProposedSkillTags:     "plomberie, électricité; soudure",
	}

	p, fields := validateSubmission(req)
	require.Nil(t, fields)
	require.NotNil(t, p.RequiredCount)
	assert.Equal(t, 2, *p.RequiredCount)
	require.NotNil(t, p.EquityPercent)
	assert.Equal(t, 15, *p.EquityPercent)
	assert.Equal(t, []string{"plomberie", "électricité", "soudure"}, p.SkillTags)
}

func TestValidateSubmissionSkillCountRequired(t *testing.T) {
	req := &SubmitApplicationReq{
		ProjectID:     1,
		ProjectNeedID: 2,
		NeedType:      model.NeedSkill,
	}

	_, fields := validateSubmission(req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "proposedRequiredCount")
}

func TestValidateSubmissionMaterialNeedsDetail(t *testing.T) {
	req := &SubmitApplicationReq{
		ProjectID:     1,
		ProjectNeedID: 2,
		NeedType:      model.NeedMaterial,
		Message:       "ok",
	}
	_, fields := validateSubmission(req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "message")

	req.Message = "je peux fournir trois camions de gravier"
	p, fields := validateSubmission(req)
	require.Nil(t, fields)
	assert.Nil(t, p.Amount)
	assert.Nil(t, p.RequiredCount)
}

func TestValidateSubmissionMessageTooLong(t *testing.T) {
	req := &SubmitApplicationReq{
		ProjectID:      1,
		ProjectNeedID:  2,
		NeedType:       model.NeedFinancial,
		Message:        strings.Repeat("a", maxMessageLen+1),
		ProposedAmount: "100",
	}

	_, fields := validateSubmission(req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "message")
}

func TestValidateSubmissionMessageLimitCountsCharacters(t *testing.T) {
	req := &SubmitApplicationReq{
		ProjectID:      1,
		ProjectNeedID:  2,
		NeedType:       model.NeedFinancial,
		ProposedAmount: "100",
		// At the character limit while twice the bytes.
		Message: strings.Repeat("é", maxMessageLen),
	}

	_, fields := validateSubmission(req)
	assert.Nil(t, fields)
}

func TestValidateSubmissionMaterialDetailCountsCharacters(t *testing.T) {
	req := &SubmitApplicationReq{
		ProjectID:     1,
		ProjectNeedID: 2,
		NeedType:      model.NeedMaterial,
		// Enough bytes but one character short.
		Message: strings.Repeat("é", minDetailLen-1),
	}
	_, fields := validateSubmission(req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "message")

	req.Message = strings.Repeat("é", minDetailLen)
	_, fields = validateSubmission(req)
	assert.Nil(t, fields)
}

func TestValidateSubmissionEquityBounds(t *testing.T) {
	for _, equity := range []string{"-1", "101"} {
		req := &SubmitApplicationReq{
			ProjectID:             1,
			ProjectNeedID:         2,
			NeedType:              model.NeedSkill,
			ProposedRequiredCount: "1",
			ProposedEquityPercent: equity,
		}
		_, fields := validateSubmission(req)
		require.NotNil(t, fields, "equity %s should be rejected", equity)
		assert.Contains(t, fields, "proposedEquityPercent")
	}
}

func TestParseSkillTagsEmpty(t *testing.T) {
	assert.Empty(t, parseSkillTags(""))
	assert.Empty(t, parseSkillTags(" , ;, "))
}

func TestMarshalTags(t *testing.T) {
	assert.Nil(t, marshalTags(nil))
	assert.JSONEq(t, `["a","b"]`, string(marshalTags([]string{"a", "b"})))
}

func TestBuildApplicationNullsIrrelevantFields(t *testing.T) {
	need := &model.ProjectNeed{
		Type:      model.NeedPartnership,
		ProjectID: 7,
		Project:   model.Project{OwnerID: 3},
	}
	need.ID = 9
	req := &SubmitApplicationReq{
		ProjectID:     7,
		ProjectNeedID: 9,
		NeedType:      model.NeedPartnership,
		Message:       "partenariat de distribution régionale",
	}

	app := buildApplication(req, need, &proposal{Amount: nil}, 42)
	assert.Equal(t, model.ApplicationPending, app.Status)
	assert.Equal(t, uint(42), app.ApplicantUserID)
	assert.Equal(t, uint(3), app.OwnerUserID)
	assert.Nil(t, app.ProposedAmount)
	assert.Nil(t, app.ProposedRequiredCount)
	assert.Nil(t, app.ProposedEquityPercent)
	assert.Nil(t, app.ProposedSkillTags)
}
