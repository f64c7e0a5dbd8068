package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mosala-labs/mosala-backend/dao/model"
	"github.com/mosala-labs/mosala-backend/dao/query"
	"github.com/mosala-labs/mosala-backend/internal/resputil"
	"github.com/mosala-labs/mosala-backend/internal/util"
)

//nolint:gochecknoinits // gin must be in test mode before any handler runs.
func init() {
	gin.SetMode(gin.TestMode)
}

// newTestDB swaps the connection singleton for an in-memory database so the
// full transactional flow (guarded updates, the member upsert, the tally
// aggregates) runs against real SQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectNeed{},
		&model.ProjectNeedApplication{},
		&model.ProjectMember{},
		&model.Notification{},
	))
	query.SetDB(db)
	query.Capabilities = query.Capability{SupportsRequiredCount: true}
	return db
}

type stubAlert struct{}

func (stubAlert) ApplicationSubmitted(context.Context, uint) error { return nil }
func (stubAlert) ApplicationDecided(context.Context, uint, model.ReviewDecision, string) error {
	return nil
}
func (stubAlert) EquityAnomaly(context.Context, uint, int) error { return nil }

type reviewFixture struct {
	owner     model.User
	applicant model.User
	project   model.Project
	need      model.ProjectNeed
	app       model.ProjectNeedApplication
}

// seedReviewFixture creates a published public project at 40% owner equity
// with one open SKILL need worth 60%, and a pending application on it.
// Accepting the application fills the need and completes the allocation.
func seedReviewFixture(t *testing.T, db *gorm.DB) reviewFixture {
	t.Helper()
	owner := model.User{Name: "owner", Role: model.RoleUser}
	applicant := model.User{Name: "applicant", Role: model.RoleUser}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&applicant).Error)

	project := model.Project{
		OwnerID:            owner.ID,
		Title:              "Ferme avicole de Dolisie",
		Status:             model.ProjectPublished,
		Visibility:         model.VisibilityPublic,
		OwnerEquityPercent: 40,
	}
	require.NoError(t, db.Create(&project).Error)

	need := model.ProjectNeed{
		ProjectID:     project.ID,
		Type:          model.NeedSkill,
		Title:         "Technicien d'élevage",
		RequiredCount: 1,
		EquityShare:   lo.ToPtr(60),
	}
	require.NoError(t, db.Create(&need).Error)

	app := model.ProjectNeedApplication{
		ProjectID:       project.ID,
		ProjectNeedID:   need.ID,
		ApplicantUserID: applicant.ID,
		OwnerUserID:     owner.ID,
		NeedType:        model.NeedSkill,
		Message:         "dix ans d'expérience en élevage avicole",
		Status:          model.ApplicationPending,
	}
	require.NoError(t, db.Create(&app).Error)

	return reviewFixture{owner: owner, applicant: applicant, project: project, need: need, app: app}
}

func performReview(t *testing.T, appID uint, token util.JWTMessage, body string) resputil.Response[any] {
	t.Helper()
	mgr := &ApplicationMgr{name: "applications", alerter: stubAlert{}}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST",
		"/v1/applications/"+strconv.Itoa(int(appID))+"/review",
		strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(appID))}}
	util.SetJWTContext(c, token)

	mgr.Review(c)

	var resp resputil.Response[any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestReviewAcceptFillsNeedAndArchives(t *testing.T) {
	db := newTestDB(t)
	f := seedReviewFixture(t, db)
	token := util.JWTMessage{UserID: f.owner.ID, Username: f.owner.Name, Role: model.RoleUser}

	resp := performReview(t, f.app.ID, token, `{"decision":"ACCEPT","decisionNote":"bienvenue"}`)
	assert.Equal(t, resputil.OK, resp.Code)

	var app model.ProjectNeedApplication
	require.NoError(t, db.First(&app, f.app.ID).Error)
	assert.Equal(t, model.ApplicationAccepted, app.Status)
	require.NotNil(t, app.DecidedByUserID)
	assert.Equal(t, f.owner.ID, *app.DecidedByUserID)
	require.NotNil(t, app.DecidedAt)

	var member model.ProjectMember
	require.NoError(t, db.Where("project_id = ? AND user_id = ?", f.project.ID, f.applicant.ID).
		First(&member).Error)
	assert.Equal(t, model.MemberActive, member.Status)
	assert.Equal(t, f.app.ID, member.ApplicationID)
	assert.Equal(t, model.NeedSkill, member.EngagementType)

	var need model.ProjectNeed
	require.NoError(t, db.First(&need, f.need.ID).Error)
	assert.True(t, need.IsFilled)

	// 40% owner + 60% need = 100% with no open needs: the closure rule holds.
	var project model.Project
	require.NoError(t, db.First(&project, f.project.ID).Error)
	assert.Equal(t, model.ProjectArchived, project.Status)
}

func TestReviewSecondDecisionConflicts(t *testing.T) {
	db := newTestDB(t)
	f := seedReviewFixture(t, db)
	token := util.JWTMessage{UserID: f.owner.ID, Username: f.owner.Name, Role: model.RoleUser}

	first := performReview(t, f.app.ID, token, `{"decision":"ACCEPT"}`)
	assert.Equal(t, resputil.OK, first.Code)

	second := performReview(t, f.app.ID, token, `{"decision":"REJECT","decisionNote":"trop tard"}`)
	assert.Equal(t, resputil.InvalidState, second.Code)

	// The late decision must not overwrite the committed one.
	var app model.ProjectNeedApplication
	require.NoError(t, db.First(&app, f.app.ID).Error)
	assert.Equal(t, model.ApplicationAccepted, app.Status)
	assert.Nil(t, app.DecisionNote)
}

// A reviewer racing a concurrent decision holds a stale PENDING snapshot;
// the guarded update affects zero rows and the whole transaction rolls back
// without side effects.
func TestApplyDecisionStalePendingLoses(t *testing.T) {
	db := newTestDB(t)
	f := seedReviewFixture(t, db)

	require.NoError(t, db.Model(&model.ProjectNeedApplication{}).
		Where("id = ?", f.app.ID).
		Update("status", model.ApplicationRejected).Error)

	mgr := &ApplicationMgr{name: "applications", alerter: stubAlert{}}
	stale := f.app
	stale.ProjectNeed = f.need

	archived := false
	err := db.Transaction(func(tx *gorm.DB) error {
		return mgr.applyDecision(tx, &stale, &ReviewReq{Decision: model.DecisionAccept}, f.owner.ID, &archived)
	})
	require.ErrorIs(t, err, errNoLongerPending)
	assert.False(t, archived)

	var members int64
	require.NoError(t, db.Model(&model.ProjectMember{}).Count(&members).Error)
	assert.Zero(t, members)

	var app model.ProjectNeedApplication
	require.NoError(t, db.First(&app, f.app.ID).Error)
	assert.Equal(t, model.ApplicationRejected, app.Status)
	assert.Nil(t, app.DecidedByUserID)

	var need model.ProjectNeed
	require.NoError(t, db.First(&need, f.need.ID).Error)
	assert.False(t, need.IsFilled)
}

func TestReviewNonOwnerDenied(t *testing.T) {
	db := newTestDB(t)
	f := seedReviewFixture(t, db)

	stranger := model.User{Name: "stranger", Role: model.RoleUser}
	require.NoError(t, db.Create(&stranger).Error)

	resp := performReview(t, f.app.ID,
		util.JWTMessage{UserID: stranger.ID, Username: stranger.Name, Role: model.RoleUser},
		`{"decision":"REJECT"}`)
	assert.Equal(t, resputil.UserNotAllowed, resp.Code)

	var app model.ProjectNeedApplication
	require.NoError(t, db.First(&app, f.app.ID).Error)
	assert.Equal(t, model.ApplicationPending, app.Status)
	assert.Nil(t, app.DecidedByUserID)
}

func TestReviewGuestDenied(t *testing.T) {
	db := newTestDB(t)
	f := seedReviewFixture(t, db)

	resp := performReview(t, f.app.ID,
		util.JWTMessage{UserID: f.owner.ID, Username: f.owner.Name, Role: model.RoleGuest},
		`{"decision":"ACCEPT"}`)
	assert.Equal(t, resputil.UserNotAllowed, resp.Code)

	var app model.ProjectNeedApplication
	require.NoError(t, db.First(&app, f.app.ID).Error)
	assert.Equal(t, model.ApplicationPending, app.Status)
}

func TestReviewNoteLimitCountsCharacters(t *testing.T) {
	db := newTestDB(t)
	f := seedReviewFixture(t, db)
	token := util.JWTMessage{UserID: f.owner.ID, Username: f.owner.Name, Role: model.RoleUser}

	tooLong, err := json.Marshal(ReviewReq{
		Decision:     model.DecisionReject,
		DecisionNote: strings.Repeat("é", maxDecisionNoteLen+1),
	})
	require.NoError(t, err)
	resp := performReview(t, f.app.ID, token, string(tooLong))
	assert.Equal(t, resputil.InvalidRequest, resp.Code)

	// Exactly at the limit: twice the bytes, but within the character count.
	atLimit, err := json.Marshal(ReviewReq{
		Decision:     model.DecisionReject,
		DecisionNote: strings.Repeat("é", maxDecisionNoteLen),
	})
	require.NoError(t, err)
	resp = performReview(t, f.app.ID, token, string(atLimit))
	assert.Equal(t, resputil.OK, resp.Code)

	var app model.ProjectNeedApplication
	require.NoError(t, db.First(&app, f.app.ID).Error)
	assert.Equal(t, model.ApplicationRejected, app.Status)
	require.NotNil(t, app.DecisionNote)
	assert.Equal(t, maxDecisionNoteLen, len([]rune(*app.DecisionNote)))
}
