package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"k8s.io/klog/v2"

	"github.com/mosala-labs/mosala-backend/dao/model"
	"github.com/mosala-labs/mosala-backend/dao/query"
	"github.com/mosala-labs/mosala-backend/internal/resputil"
	"github.com/mosala-labs/mosala-backend/internal/util"
	"github.com/mosala-labs/mosala-backend/pkg/alert"
	"github.com/mosala-labs/mosala-backend/pkg/metrics"
	"github.com/mosala-labs/mosala-backend/pkg/review"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewApplicationMgr)
}

// schemaGuidance is returned when the marketplace tables are absent: a
// migration gap, not a user error.
const schemaGuidance = "marketplace tables are not initialized; run the database migrations and restart the server"

// Length limits count characters, not bytes; French text regularly runs
// more than one byte per character.
const (
	maxMessageLen      = 2500
	minDetailLen       = 10
	maxDecisionNoteLen = 1200
)

type ApplicationMgr struct {
	name    string
	alerter alert.AlertInterface
}

func NewApplicationMgr(conf *RegisterConfig) Manager {
	return &ApplicationMgr{
		name:    "applications",
		alerter: conf.Alert,
	}
}

func (mgr *ApplicationMgr) GetName() string { return mgr.name }

func (mgr *ApplicationMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ApplicationMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("", mgr.Submit)
	g.GET("/mine", mgr.ListMine)
	g.GET("/received", mgr.ListReceived)
	g.POST("/:id/review", mgr.Review)
	g.POST("/:id/withdraw", mgr.Withdraw)
}

func (mgr *ApplicationMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("", mgr.ListAll)
}

// SubmitApplicationReq carries the raw form fields of a candidacy. Numeric
// fields arrive as free text so that a non-integer input can be reported as
// a field-level error instead of a bind failure.
type SubmitApplicationReq struct {
	ProjectID             uint           `json:"projectID" binding:"required"`
	ProjectNeedID         uint           `json:"projectNeedID" binding:"required"`
	NeedType              model.NeedType `json:"needType" binding:"required,oneof=FINANCIAL SKILL MATERIAL PARTNERSHIP"`
	Message               string         `json:"message"`
	ProposedAmount        string         `json:"proposedAmount"`
	ProposedRequiredCount string         `json:"proposedRequiredCount"`
	ProposedEquityPercent string         `json:"proposedEquityPercent"`
	ProposedSkillTags     string         `json:"proposedSkillTags"`
}

// proposal is the validated, typed form of a submission.
type proposal struct {
	Amount        *int64
	RequiredCount *int
	EquityPercent *int
	SkillTags     []string
}

type ReviewReq struct {
	Decision     model.ReviewDecision `json:"decision" binding:"required,oneof=ACCEPT REJECT"`
	DecisionNote string               `json:"decisionNote"`
}

type ApplicationIDReq struct {
	ID uint `uri:"id" binding:"required"`
}

type ApplicationResp struct {
	ID                    uint                    `json:"id"`
	ProjectID             uint                    `json:"projectID"`
	ProjectTitle          string                  `json:"projectTitle"`
	ProjectNeedID         uint                    `json:"projectNeedID"`
	NeedTitle             string                  `json:"needTitle"`
	NeedType              model.NeedType          `json:"needType"`
	Applicant             model.UserInfo          `json:"applicant"`
	Message               string                  `json:"message"`
	ProposedAmount        *int64                  `json:"proposedAmount"`
	ProposedRequiredCount *int                    `json:"proposedRequiredCount"`
	ProposedEquityPercent *int                    `json:"proposedEquityPercent"`
	Status                model.ApplicationStatus `json:"status"`
	DecisionNote          *string                 `json:"decisionNote"`
	DecidedAt             *time.Time              `json:"decidedAt"`
	CreatedAt             time.Time               `json:"createdAt"`
}

func toApplicationResp(a *model.ProjectNeedApplication) ApplicationResp {
	return ApplicationResp{
		ID:                    a.ID,
		ProjectID:             a.ProjectID,
		ProjectTitle:          a.Project.Title,
		ProjectNeedID:         a.ProjectNeedID,
		NeedTitle:             a.ProjectNeed.Title,
		NeedType:              a.NeedType,
		Applicant:             a.Applicant.Info(),
		Message:               a.Message,
		ProposedAmount:        a.ProposedAmount,
		ProposedRequiredCount: a.ProposedRequiredCount,
		ProposedEquityPercent: a.ProposedEquityPercent,
		Status:                a.Status,
		DecisionNote:          a.DecisionNote,
		DecidedAt:             a.DecidedAt,
		CreatedAt:             a.CreatedAt,
	}
}

// parseOptionalInt reports a field error instead of a generic failure when
// the raw form value is not an integer.
func parseOptionalInt(raw string) (*int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func parseOptionalInt64(raw string) (*int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// parseSkillTags splits a free-text tag list on commas and semicolons.
func parseSkillTags(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func marshalTags(tags []string) datatypes.JSON {
	if len(tags) == 0 {
		return nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// validateSubmission applies the type-specific field rules and returns the
// typed proposal, or a field->message map when any input is invalid.
func validateSubmission(req *SubmitApplicationReq) (*proposal, map[string]string) {
	fields := map[string]string{}
	p := &proposal{}

	if utf8.RuneCountInString(req.Message) > maxMessageLen {
		fields["message"] = fmt.Sprintf("must be at most %d characters", maxMessageLen)
	}

	amount, amountOK := parseOptionalInt64(req.ProposedAmount)
	if !amountOK {
		fields["proposedAmount"] = "must be an integer"
	}
	count, countOK := parseOptionalInt(req.ProposedRequiredCount)
	if !countOK {
		fields["proposedRequiredCount"] = "must be an integer"
	}
	equity, equityOK := parseOptionalInt(req.ProposedEquityPercent)
	if !equityOK {
		fields["proposedEquityPercent"] = "must be an integer"
	}

	switch req.NeedType {
	case model.NeedFinancial:
		if amountOK {
			if amount == nil {
				fields["proposedAmount"] = "required for a financial application"
			} else if *amount <= 0 {
				fields["proposedAmount"] = "must be a positive amount"
			}
		}
		if countOK {
			if count == nil {
				count = lo.ToPtr(1)
			} else if *count < 1 {
				fields["proposedRequiredCount"] = "must be at least 1"
			}
		}
		p.Amount = amount
		p.RequiredCount = count
		p.EquityPercent = equity
	case model.NeedSkill:
		if countOK {
			if count == nil {
				fields["proposedRequiredCount"] = "required for a skill application"
			} else if *count < 1 {
				fields["proposedRequiredCount"] = "must be at least 1"
			}
		}
		p.RequiredCount = count
		p.EquityPercent = equity
		p.SkillTags = parseSkillTags(req.ProposedSkillTags)
	case model.NeedMaterial, model.NeedPartnership:
		if utf8.RuneCountInString(strings.TrimSpace(req.Message)) < minDetailLen {
			fields["message"] = fmt.Sprintf("please describe your offer in at least %d characters", minDetailLen)
		}
	}

	if equityOK && p.EquityPercent != nil && (*p.EquityPercent < 0 || *p.EquityPercent > 100) {
		fields["proposedEquityPercent"] = "must be between 0 and 100"
	}

	if len(fields) > 0 {
		return nil, fields
	}
	return p, nil
}

// Submit godoc
// @Summary Apply to a project need
// @Description Validates the type-specific form fields and creates a
// @Description PENDING application. The project owner is notified
// @Description best-effort.
// @Tags Application
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body SubmitApplicationReq true "application form"
// @Success 200 {object} resputil.Response[ApplicationResp] "the created application"
// @Failure 400 {object} resputil.Response[any] "field-scoped validation errors"
// @Router /v1/applications [post]
func (mgr *ApplicationMgr) Submit(c *gin.Context) {
	var req SubmitApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.Errorf("failed to bind request parameters: %v", err)
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	token := util.GetToken(c)
	if token.UserID == 0 {
		resputil.Error(c, "cannot get user id", resputil.TokenInvalid)
		return
	}

	p, fields := validateSubmission(&req)
	if fields != nil {
		resputil.BadRequestError(c, "invalid application", fields)
		return
	}

	db := query.GetDB().WithContext(c)

	var need model.ProjectNeed
	err := db.Preload("Project").
		Where("id = ? AND project_id = ?", req.ProjectNeedID, req.ProjectID).
		First(&need).Error
	if err != nil {
		if query.IsSchemaMissing(err) {
			resputil.Error(c, schemaGuidance, resputil.SchemaNotInitialized)
			return
		}
		resputil.Error(c, "project need not found", resputil.NotFound)
		return
	}

	// Defensive check against stale or tampered form state.
	if need.Type != req.NeedType {
		resputil.Error(c, "the need changed since the form was loaded", resputil.InconsistentType)
		return
	}
	if need.Project.OwnerID == token.UserID {
		resputil.Error(c, "you cannot apply to your own project", resputil.CannotApplyToOwnProject)
		return
	}
	if need.Project.Status != model.ProjectPublished || need.Project.Visibility != model.VisibilityPublic {
		resputil.Error(c, "this project is not accepting applications", resputil.NotAcceptingApplications)
		return
	}
	if need.IsFilled {
		resputil.Error(c, "this need is already filled", resputil.NeedAlreadyFilled)
		return
	}

	// Best-effort duplicate guard, checked right before the insert to keep
	// the race window small. There is deliberately no unique constraint.
	var pending int64
	err = db.Model(&model.ProjectNeedApplication{}).
		Where("applicant_user_id = ? AND project_need_id = ? AND status = ?",
			token.UserID, need.ID, model.ApplicationPending).
		Count(&pending).Error
	if err != nil {
		klog.Errorf("failed to check pending applications of user %d: %v", token.UserID, err)
		resputil.Error(c, "failed to submit application", resputil.NotSpecified)
		return
	}
	if pending > 0 {
		resputil.Error(c, "you already have a pending application on this need", resputil.DuplicatePending)
		return
	}

	app := buildApplication(&req, &need, p, token.UserID)
	if err := db.Create(app).Error; err != nil {
		klog.Errorf("failed to create application for user %d on need %d: %v", token.UserID, need.ID, err)
		resputil.Error(c, "failed to submit application", resputil.NotSpecified)
		return
	}
	metrics.ApplicationsSubmitted.Inc()
	klog.Infof("user %d applied to need %d of project %d (application %d)",
		token.UserID, need.ID, need.ProjectID, app.ID)

	appID := app.ID
	alert.FireAndForget("application-submitted", func(ctx context.Context) error {
		return mgr.alerter.ApplicationSubmitted(ctx, appID)
	})

	app.Project = need.Project
	app.ProjectNeed = need
	resputil.Success(c, toApplicationResp(app))
}

// buildApplication maps a validated proposal onto a PENDING row, nulling
// the fields that are irrelevant for the need type.
func buildApplication(req *SubmitApplicationReq, need *model.ProjectNeed, p *proposal, applicantID uint) *model.ProjectNeedApplication {
	app := &model.ProjectNeedApplication{
		ProjectID:       need.ProjectID,
		ProjectNeedID:   need.ID,
		ApplicantUserID: applicantID,
		OwnerUserID:     need.Project.OwnerID,
		NeedType:        need.Type,
		Message:         req.Message,
		Status:          model.ApplicationPending,
	}
	switch need.Type {
	case model.NeedFinancial:
		app.ProposedAmount = p.Amount
		app.ProposedRequiredCount = p.RequiredCount
		app.ProposedEquityPercent = p.EquityPercent
	case model.NeedSkill:
		app.ProposedRequiredCount = p.RequiredCount
		app.ProposedEquityPercent = p.EquityPercent
		app.ProposedSkillTags = marshalTags(p.SkillTags)
	case model.NeedMaterial, model.NeedPartnership:
		// message-only applications
	}
	return app
}

var errNoLongerPending = errors.New("application is no longer pending")

// Review godoc
// @Summary Accept or reject a pending application
// @Description The decision, the member upsert, the need-fulfillment
// @Description recompute and the project-closure recompute run in one
// @Description transaction. A concurrent duplicate decision loses on the
// @Description guarded status update and is reported as a conflict.
// @Tags Application
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "application ID"
// @Param body body ReviewReq true "decision"
// @Success 200 {object} resputil.Response[string] "decision applied"
// @Failure 400 {object} resputil.Response[any] "validation error"
// @Router /v1/applications/{id}/review [post]
//
//nolint:gocyclo // The precondition ladder mirrors the review contract.
func (mgr *ApplicationMgr) Review(c *gin.Context) {
	var uriReq ApplicationIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}
	var req ReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.Errorf("failed to bind request parameters: %v", err)
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	token := util.GetToken(c)
	if token.UserID == 0 {
		resputil.Error(c, "cannot get user id", resputil.TokenInvalid)
		return
	}
	if utf8.RuneCountInString(req.DecisionNote) > maxDecisionNoteLen {
		resputil.BadRequestError(c, "invalid decision", map[string]string{
			"decisionNote": fmt.Sprintf("must be at most %d characters", maxDecisionNoteLen),
		})
		return
	}
	if !model.HasPermission(token.Role, model.PermUpdateOwnProjects) &&
		!model.HasPermission(token.Role, model.PermUpdateAnyProject) {
		resputil.Error(c, "permission denied to review applications", resputil.UserNotAllowed)
		return
	}

	var app model.ProjectNeedApplication
	err := query.GetDB().WithContext(c).
		Preload("Project").
		Preload("ProjectNeed").
		First(&app, uriReq.ID).Error
	if err != nil {
		if query.IsSchemaMissing(err) {
			resputil.Error(c, schemaGuidance, resputil.SchemaNotInitialized)
			return
		}
		resputil.Error(c, "application not found", resputil.NotFound)
		return
	}

	if !model.HasPermission(token.Role, model.PermUpdateAnyProject) && app.OwnerUserID != token.UserID {
		klog.Warningf("user %d attempted to review application %d owned by %d",
			token.UserID, app.ID, app.OwnerUserID)
		resputil.Error(c, "permission denied to review this application", resputil.UserNotAllowed)
		return
	}
	if app.Status != model.ApplicationPending {
		resputil.Error(c, "application is no longer pending", resputil.InvalidState)
		return
	}

	archived := false
	err = query.GetDB().WithContext(c).Transaction(func(tx *gorm.DB) error {
		return mgr.applyDecision(tx, &app, &req, token.UserID, &archived)
	})
	if err != nil {
		if errors.Is(err, errNoLongerPending) {
			// A concurrent decision won the guarded update; this call is a
			// benign no-op but the caller must not believe it succeeded.
			resputil.Error(c, "application is no longer pending", resputil.InvalidState)
			return
		}
		if query.IsSchemaMissing(err) {
			resputil.Error(c, schemaGuidance, resputil.SchemaNotInitialized)
			return
		}
		klog.Errorf("failed to review application %d: %v", app.ID, err)
		resputil.Error(c, "failed to apply the decision", resputil.NotSpecified)
		return
	}

	metrics.ApplicationsReviewed.WithLabelValues(string(req.Decision)).Inc()
	if archived {
		metrics.ProjectsArchived.Inc()
		klog.Infof("project %d archived: all needs filled and equity at 100%%", app.ProjectID)
	}

	appID := app.ID
	decision := req.Decision
	note := req.DecisionNote
	alert.FireAndForget("application-decided", func(ctx context.Context) error {
		return mgr.alerter.ApplicationDecided(ctx, appID, decision, note)
	})

	if req.Decision == model.DecisionAccept {
		resputil.Success(c, "application accepted")
	} else {
		resputil.Success(c, "application rejected")
	}
}

// applyDecision runs the transactional body of a review: the guarded
// status transition and, on acceptance, the membership upsert, the
// need-fulfillment recompute and the project-closure recompute. Any error
// rolls back everything.
func (mgr *ApplicationMgr) applyDecision(
	tx *gorm.DB,
	app *model.ProjectNeedApplication,
	req *ReviewReq,
	reviewerID uint,
	archived *bool,
) error {
	newStatus := model.ApplicationRejected
	if req.Decision == model.DecisionAccept {
		newStatus = model.ApplicationAccepted
	}
	var note *string
	if req.DecisionNote != "" {
		note = &req.DecisionNote
	}

	// The status predicate makes a concurrent duplicate decision lose with
	// zero affected rows instead of double-applying.
	result := tx.Model(&model.ProjectNeedApplication{}).
		Where("id = ? AND status = ?", app.ID, model.ApplicationPending).
		Updates(map[string]any{
			"status":             newStatus,
			"decision_note":      note,
			"decided_by_user_id": reviewerID,
			"decided_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errNoLongerPending
	}

	if req.Decision != model.DecisionAccept {
		return nil
	}

	// Membership: insert, or refresh when the applicant re-applied to a
	// different need of the same project or is being reinstated.
	member := model.ProjectMember{
		ProjectID:      app.ProjectID,
		UserID:         app.ApplicantUserID,
		ApplicationID:  app.ID,
		EngagementType: app.NeedType,
		Status:         model.MemberActive,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"application_id":  app.ID,
			"engagement_type": app.NeedType,
			"status":          model.MemberActive,
		}),
	}).Create(&member).Error
	if err != nil {
		return err
	}

	// Need fulfillment is recomputed from the application table on every
	// acceptance; no cached counter to drift.
	tally, err := acceptedTallyForNeed(tx, app.ProjectNeedID)
	if err != nil {
		return err
	}
	if review.NeedFilled(&app.ProjectNeed, tally, query.Capabilities.SupportsRequiredCount) {
		err = tx.Model(&model.ProjectNeed{}).
			Where("id = ? AND is_filled = ?", app.ProjectNeedID, false).
			Update("is_filled", true).Error
		if err != nil {
			return err
		}
	}

	// Closure: archive when every need is filled and the allocation is at
	// exactly 100%. The status predicate leaves already-archived projects
	// untouched.
	var project model.Project
	if err := tx.First(&project, app.ProjectID).Error; err != nil {
		return err
	}
	var needs []model.ProjectNeed
	if err := tx.Where("project_id = ?", app.ProjectID).Find(&needs).Error; err != nil {
		return err
	}
	if review.Summarize(project.OwnerEquityPercent, needs).ShouldArchive() {
		result := tx.Model(&model.Project{}).
			Where("id = ? AND status <> ?", app.ProjectID, model.ProjectArchived).
			Update("status", model.ProjectArchived)
		if result.Error != nil {
			return result.Error
		}
		*archived = result.RowsAffected > 0
	}
	return nil
}

// Withdraw godoc
// @Summary Withdraw an own pending application
// @Tags Application
// @Produce json
// @Security Bearer
// @Param id path int true "application ID"
// @Success 200 {object} resputil.Response[string] "withdrawn"
// @Router /v1/applications/{id}/withdraw [post]
func (mgr *ApplicationMgr) Withdraw(c *gin.Context) {
	var uriReq ApplicationIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	token := util.GetToken(c)
	result := query.GetDB().WithContext(c).
		Model(&model.ProjectNeedApplication{}).
		Where("id = ? AND applicant_user_id = ? AND status = ?",
			uriReq.ID, token.UserID, model.ApplicationPending).
		Update("status", model.ApplicationWithdrawn)
	if result.Error != nil {
		klog.Errorf("failed to withdraw application %d: %v", uriReq.ID, result.Error)
		resputil.Error(c, "failed to withdraw application", resputil.NotSpecified)
		return
	}
	if result.RowsAffected == 0 {
		resputil.Error(c, "no pending application of yours matches", resputil.InvalidState)
		return
	}
	resputil.Success(c, "application withdrawn")
}

// ListMine godoc
// @Summary List the caller's applications
// @Tags Application
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[any] "applications submitted by the caller"
// @Router /v1/applications/mine [get]
func (mgr *ApplicationMgr) ListMine(c *gin.Context) {
	token := util.GetToken(c)

	var apps []model.ProjectNeedApplication
	err := query.GetDB().WithContext(c).
		Preload("Project").Preload("ProjectNeed").Preload("Applicant").
		Where("applicant_user_id = ?", token.UserID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		klog.Errorf("failed to list applications of user %d: %v", token.UserID, err)
		resputil.Error(c, "failed to list applications", resputil.NotSpecified)
		return
	}
	resputil.Success(c, lo.Map(apps, func(a model.ProjectNeedApplication, _ int) ApplicationResp {
		return toApplicationResp(&a)
	}))
}

// ListReceived godoc
// @Summary List applications on the caller's projects
// @Tags Application
// @Produce json
// @Security Bearer
// @Param status query string false "filter by status"
// @Success 200 {object} resputil.Response[any] "inbox of the project owner"
// @Router /v1/applications/received [get]
func (mgr *ApplicationMgr) ListReceived(c *gin.Context) {
	token := util.GetToken(c)

	db := query.GetDB().WithContext(c).
		Preload("Project").Preload("ProjectNeed").Preload("Applicant").
		Where("owner_user_id = ?", token.UserID)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var apps []model.ProjectNeedApplication
	if err := db.Order("created_at DESC").Find(&apps).Error; err != nil {
		klog.Errorf("failed to list received applications of user %d: %v", token.UserID, err)
		resputil.Error(c, "failed to list applications", resputil.NotSpecified)
		return
	}
	resputil.Success(c, lo.Map(apps, func(a model.ProjectNeedApplication, _ int) ApplicationResp {
		return toApplicationResp(&a)
	}))
}

// ListAll godoc
// @Summary List every application
// @Tags Application
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[any] "all applications"
// @Router /v1/admin/applications [get]
func (mgr *ApplicationMgr) ListAll(c *gin.Context) {
	var apps []model.ProjectNeedApplication
	err := query.GetDB().WithContext(c).
		Preload("Project").Preload("ProjectNeed").Preload("Applicant").
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		klog.Errorf("failed to list all applications: %v", err)
		resputil.Error(c, "failed to list applications", resputil.NotSpecified)
		return
	}
	resputil.Success(c, lo.Map(apps, func(a model.ProjectNeedApplication, _ int) ApplicationResp {
		return toApplicationResp(&a)
	}))
}

type needTallyRow struct {
	ProjectNeedID uint
	Amount        int64
	Count         int64
}

// acceptedTallyForNeed aggregates the ACCEPTED applications of one need.
func acceptedTallyForNeed(tx *gorm.DB, needID uint) (review.AcceptedTally, error) {
	var row needTallyRow
	err := tx.Model(&model.ProjectNeedApplication{}).
		Select("COALESCE(SUM(proposed_amount), 0) AS amount, COUNT(*) AS count").
		Where("project_need_id = ? AND status = ?", needID, model.ApplicationAccepted).
		Scan(&row).Error
	if err != nil {
		return review.AcceptedTally{}, err
	}
	return review.AcceptedTally{Amount: row.Amount, Count: row.Count}, nil
}

// acceptedTalliesByNeed aggregates the ACCEPTED applications of a whole
// project, grouped by need.
func acceptedTalliesByNeed(c *gin.Context, projectID uint) (map[uint]review.AcceptedTally, error) {
	var rows []needTallyRow
	err := query.GetDB().WithContext(c).
		Model(&model.ProjectNeedApplication{}).
		Select("project_need_id, COALESCE(SUM(proposed_amount), 0) AS amount, COUNT(*) AS count").
		Where("project_id = ? AND status = ?", projectID, model.ApplicationAccepted).
		Group("project_need_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	tallies := make(map[uint]review.AcceptedTally, len(rows))
	for _, r := range rows {
		tallies[r.ProjectNeedID] = review.AcceptedTally{Amount: r.Amount, Count: r.Count}
	}
	return tallies, nil
}
