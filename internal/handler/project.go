package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/mosala-labs/mosala-backend/dao/model"
	"github.com/mosala-labs/mosala-backend/dao/query"
	"github.com/mosala-labs/mosala-backend/internal/resputil"
	"github.com/mosala-labs/mosala-backend/internal/util"
	"github.com/mosala-labs/mosala-backend/pkg/review"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewProjectMgr)
}

type ProjectMgr struct {
	name string
}

func NewProjectMgr(_ *RegisterConfig) Manager {
	return &ProjectMgr{
		name: "projects",
	}
}

func (mgr *ProjectMgr) GetName() string { return mgr.name }

func (mgr *ProjectMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("", mgr.ListPublished)
}

func (mgr *ProjectMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("", mgr.CreateProject)
	g.GET("/mine", mgr.ListMine)
	g.GET("/:id", mgr.GetProject)
	g.PUT("/:id", mgr.UpdateProject)
	g.POST("/:id/publish", mgr.PublishProject)
	g.GET("/:id/allocation", mgr.GetAllocation)
	g.POST("/:id/needs", mgr.CreateNeed)
	g.PUT("/:id/needs/:needID", mgr.UpdateNeed)
	g.DELETE("/:id/needs/:needID", mgr.DeleteNeed)
}

func (mgr *ProjectMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("", mgr.ListAll)
}

type ProjectIDReq struct {
	ID uint `uri:"id" binding:"required"`
}

type NeedIDReq struct {
	ID     uint `uri:"id" binding:"required"`
	NeedID uint `uri:"needID" binding:"required"`
}

type CreateProjectReq struct {
	Title              string  `json:"title" binding:"required,max=160"`
	Summary            *string `json:"summary"`
	OwnerEquityPercent int     `json:"ownerEquityPercent" binding:"min=0,max=100"`
	TotalCapital       *int64  `json:"totalCapital"`
	OwnerContribution  *int64  `json:"ownerContribution"`
}

type PublishProjectReq struct {
	Visibility model.Visibility `json:"visibility" binding:"required,oneof=PUBLIC PRIVATE"`
}

type NeedReq struct {
	Type          model.NeedType `json:"type" binding:"required,oneof=FINANCIAL SKILL MATERIAL PARTNERSHIP"`
	Title         string         `json:"title" binding:"required,max=160"`
	Description   *string        `json:"description"`
	Amount        *int64         `json:"amount"`
	RequiredCount *int           `json:"requiredCount"`
	EquityShare   *int           `json:"equityShare"`
	SkillTags     []string       `json:"skillTags"`
}

type NeedResp struct {
	ID             uint           `json:"id"`
	Type           model.NeedType `json:"type"`
	Title          string         `json:"title"`
	Description    *string        `json:"description"`
	Amount         *int64         `json:"amount"`
	RequiredCount  int            `json:"requiredCount"`
	EquityShare    *int           `json:"equityShare"`
	IsFilled       bool           `json:"isFilled"`
	AcceptedAmount int64          `json:"acceptedAmount"`
	AcceptedCount  int64          `json:"acceptedCount"`
}

type ProjectResp struct {
	ID                 uint                `json:"id"`
	Title              string              `json:"title"`
	Summary            *string             `json:"summary"`
	Status             model.ProjectStatus `json:"status"`
	Visibility         model.Visibility    `json:"visibility"`
	OwnerEquityPercent int                 `json:"ownerEquityPercent"`
	TotalCapital       *int64              `json:"totalCapital"`
	Owner              model.UserInfo      `json:"owner"`
	Needs              []NeedResp          `json:"needs,omitempty"`
}

type AllocationResp struct {
	TotalAllocated int  `json:"totalAllocated"`
	OpenNeeds      int  `json:"openNeeds"`
	Anomalous      bool `json:"anomalous"`
}

// canEditProject enforces the ownership rule: the principal must own the
// project or hold the update-any permission.
func canEditProject(token util.JWTMessage, project *model.Project) bool {
	if model.HasPermission(token.Role, model.PermUpdateAnyProject) {
		return true
	}
	return model.HasPermission(token.Role, model.PermUpdateOwnProjects) && project.OwnerID == token.UserID
}

func (mgr *ProjectMgr) loadProject(c *gin.Context, id uint) (*model.Project, bool) {
	var project model.Project
	err := query.GetDB().WithContext(c).Preload("Owner").Preload("Needs").First(&project, id).Error
	if err != nil {
		if query.IsSchemaMissing(err) {
			resputil.Error(c, schemaGuidance, resputil.SchemaNotInitialized)
			return nil, false
		}
		resputil.Error(c, "project not found", resputil.NotFound)
		return nil, false
	}
	return &project, true
}

func toProjectResp(p *model.Project, tallies map[uint]review.AcceptedTally) ProjectResp {
	resp := ProjectResp{
		ID:                 p.ID,
		Title:              p.Title,
		Summary:            p.Summary,
		Status:             p.Status,
		Visibility:         p.Visibility,
		OwnerEquityPercent: p.OwnerEquityPercent,
		TotalCapital:       p.TotalCapital,
		Owner:              p.Owner.Info(),
	}
	for i := range p.Needs {
		n := p.Needs[i]
		tally := tallies[n.ID]
		resp.Needs = append(resp.Needs, NeedResp{
			ID:             n.ID,
			Type:           n.Type,
			Title:          n.Title,
			Description:    n.Description,
			Amount:         n.Amount,
			RequiredCount:  n.RequiredCount,
			EquityShare:    n.EquityShare,
			IsFilled:       n.IsFilled,
			AcceptedAmount: tally.Amount,
			AcceptedCount:  tally.Count,
		})
	}
	return resp
}

// ListPublished godoc
// @Summary List published public projects
// @Tags Project
// @Produce json
// @Success 200 {object} resputil.Response[any] "projects open for applications"
// @Router /v1/projects [get]
func (mgr *ProjectMgr) ListPublished(c *gin.Context) {
	var projects []model.Project
	err := query.GetDB().WithContext(c).
		Preload("Owner").Preload("Needs").
		Where("status = ? AND visibility = ?", model.ProjectPublished, model.VisibilityPublic).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		if query.IsSchemaMissing(err) {
			resputil.Error(c, schemaGuidance, resputil.SchemaNotInitialized)
			return
		}
		klog.Errorf("failed to list published projects: %v", err)
		resputil.Error(c, "failed to list projects", resputil.NotSpecified)
		return
	}

	result := lo.Map(projects, func(p model.Project, _ int) ProjectResp {
		return toProjectResp(&p, nil)
	})
	resputil.Success(c, result)
}

// ListMine godoc
// @Summary List the current user's projects
// @Tags Project
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[any] "projects owned by the caller"
// @Router /v1/projects/mine [get]
func (mgr *ProjectMgr) ListMine(c *gin.Context) {
	token := util.GetToken(c)

	var projects []model.Project
	err := query.GetDB().WithContext(c).
		Preload("Owner").Preload("Needs").
		Where("owner_id = ?", token.UserID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		klog.Errorf("failed to list projects of user %d: %v", token.UserID, err)
		resputil.Error(c, "failed to list projects", resputil.NotSpecified)
		return
	}

	result := lo.Map(projects, func(p model.Project, _ int) ProjectResp {
		return toProjectResp(&p, nil)
	})
	resputil.Success(c, result)
}

// ListAll godoc
// @Summary List every project
// @Tags Project
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[any] "all projects"
// @Router /v1/admin/projects [get]
func (mgr *ProjectMgr) ListAll(c *gin.Context) {
	var projects []model.Project
	err := query.GetDB().WithContext(c).
		Preload("Owner").Preload("Needs").
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		klog.Errorf("failed to list all projects: %v", err)
		resputil.Error(c, "failed to list projects", resputil.NotSpecified)
		return
	}

	result := lo.Map(projects, func(p model.Project, _ int) ProjectResp {
		return toProjectResp(&p, nil)
	})
	resputil.Success(c, result)
}

// GetProject godoc
// @Summary Get one project with per-need progress
// @Tags Project
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Success 200 {object} resputil.Response[ProjectResp] "project detail"
// @Router /v1/projects/{id} [get]
func (mgr *ProjectMgr) GetProject(c *gin.Context) {
	var uriReq ProjectIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	project, ok := mgr.loadProject(c, uriReq.ID)
	if !ok {
		return
	}

	token := util.GetToken(c)
	listed := project.Status == model.ProjectPublished && project.Visibility == model.VisibilityPublic
	if !listed && !canEditProject(token, project) {
		resputil.Error(c, "project not found", resputil.NotFound)
		return
	}

	tallies, err := acceptedTalliesByNeed(c, project.ID)
	if err != nil {
		klog.Errorf("failed to tally applications of project %d: %v", project.ID, err)
		resputil.Error(c, "failed to load project", resputil.NotSpecified)
		return
	}
	resputil.Success(c, toProjectResp(project, tallies))
}

// CreateProject godoc
// @Summary Create a draft project
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body CreateProjectReq true "project info"
// @Success 200 {object} resputil.Response[ProjectResp] "the created draft"
// @Router /v1/projects [post]
func (mgr *ProjectMgr) CreateProject(c *gin.Context) {
	var req CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.Errorf("failed to bind request parameters: %v", err)
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	token := util.GetToken(c)
	project := model.Project{
		OwnerID:            token.UserID,
		Title:              req.Title,
		Summary:            req.Summary,
		Status:             model.ProjectDraft,
		Visibility:         model.VisibilityPrivate,
		OwnerEquityPercent: req.OwnerEquityPercent,
		TotalCapital:       req.TotalCapital,
		OwnerContribution:  req.OwnerContribution,
	}
	if err := query.GetDB().WithContext(c).Create(&project).Error; err != nil {
		if query.IsSchemaMissing(err) {
			resputil.Error(c, schemaGuidance, resputil.SchemaNotInitialized)
			return
		}
		klog.Errorf("failed to create project for user %d: %v", token.UserID, err)
		resputil.Error(c, "failed to create project", resputil.NotSpecified)
		return
	}

	project.Owner = model.User{Model: gorm.Model{ID: token.UserID}, Name: token.Username}
	resputil.Success(c, toProjectResp(&project, nil))
}

// UpdateProject godoc
// @Summary Update an own project
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Param body body CreateProjectReq true "project info"
// @Success 200 {object} resputil.Response[string] "updated"
// @Router /v1/projects/{id} [put]
func (mgr *ProjectMgr) UpdateProject(c *gin.Context) {
	var uriReq ProjectIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}
	var req CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	project, ok := mgr.loadProject(c, uriReq.ID)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if !canEditProject(token, project) {
		resputil.Error(c, "permission denied to update this project", resputil.UserNotAllowed)
		return
	}
	if project.Status == model.ProjectArchived {
		resputil.Error(c, "archived projects are read-only", resputil.InvalidState)
		return
	}

	err := query.GetDB().WithContext(c).Model(project).Updates(map[string]any{
		"title":                req.Title,
		"summary":              req.Summary,
		"owner_equity_percent": req.OwnerEquityPercent,
		"total_capital":        req.TotalCapital,
		"owner_contribution":   req.OwnerContribution,
	}).Error
	if err != nil {
		klog.Errorf("failed to update project %d: %v", project.ID, err)
		resputil.Error(c, "failed to update project", resputil.NotSpecified)
		return
	}
	resputil.Success(c, "update project successfully")
}

// PublishProject godoc
// @Summary Publish a draft project
// @Description DRAFT -> PUBLISHED with the requested visibility. Only
// @Description PUBLISHED+PUBLIC projects accept applications.
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Param body body PublishProjectReq true "visibility"
// @Success 200 {object} resputil.Response[string] "published"
// @Router /v1/projects/{id}/publish [post]
func (mgr *ProjectMgr) PublishProject(c *gin.Context) {
	var uriReq ProjectIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}
	var req PublishProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	project, ok := mgr.loadProject(c, uriReq.ID)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if !canEditProject(token, project) {
		resputil.Error(c, "permission denied to publish this project", resputil.UserNotAllowed)
		return
	}

	result := query.GetDB().WithContext(c).
		Model(&model.Project{}).
		Where("id = ? AND status = ?", project.ID, model.ProjectDraft).
		Updates(map[string]any{"status": model.ProjectPublished, "visibility": req.Visibility})
	if result.Error != nil {
		klog.Errorf("failed to publish project %d: %v", project.ID, result.Error)
		resputil.Error(c, "failed to publish project", resputil.NotSpecified)
		return
	}
	if result.RowsAffected == 0 {
		resputil.Error(c, "project is not a draft", resputil.InvalidState)
		return
	}

	klog.Infof("project %d published by %d", project.ID, token.UserID)
	resputil.Success(c, "publish project successfully")
}

// GetAllocation godoc
// @Summary Equity allocation summary
// @Description Owner equity plus every need's equity share, with the
// @Description over-100% anomaly flag. Over-allocation is reported, never
// @Description rejected at write time.
// @Tags Project
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Success 200 {object} resputil.Response[AllocationResp] "allocation summary"
// @Router /v1/projects/{id}/allocation [get]
func (mgr *ProjectMgr) GetAllocation(c *gin.Context) {
	var uriReq ProjectIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	project, ok := mgr.loadProject(c, uriReq.ID)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if !canEditProject(token, project) {
		resputil.Error(c, "permission denied to view this allocation", resputil.UserNotAllowed)
		return
	}

	a := review.Summarize(project.OwnerEquityPercent, project.Needs)
	resputil.Success(c, AllocationResp{
		TotalAllocated: a.TotalAllocated,
		OpenNeeds:      a.OpenNeeds,
		Anomalous:      a.Anomalous(),
	})
}

// CreateNeed godoc
// @Summary Add a need to an own project
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Param body body NeedReq true "need info"
// @Success 200 {object} resputil.Response[NeedResp] "the created need"
// @Router /v1/projects/{id}/needs [post]
func (mgr *ProjectMgr) CreateNeed(c *gin.Context) {
	var uriReq ProjectIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}
	var req NeedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}
	if fields := validateNeedReq(&req); len(fields) > 0 {
		resputil.BadRequestError(c, "invalid need", fields)
		return
	}

	project, ok := mgr.loadProject(c, uriReq.ID)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if !canEditProject(token, project) {
		resputil.Error(c, "permission denied to edit this project", resputil.UserNotAllowed)
		return
	}
	if project.Status == model.ProjectArchived {
		resputil.Error(c, "archived projects are read-only", resputil.InvalidState)
		return
	}

	need := model.ProjectNeed{
		ProjectID:     project.ID,
		Type:          req.Type,
		Title:         req.Title,
		Description:   req.Description,
		Amount:        req.Amount,
		RequiredCount: lo.FromPtrOr(req.RequiredCount, 1),
		EquityShare:   req.EquityShare,
		SkillTags:     marshalTags(req.SkillTags),
	}
	if err := query.GetDB().WithContext(c).Create(&need).Error; err != nil {
		klog.Errorf("failed to create need on project %d: %v", project.ID, err)
		resputil.Error(c, "failed to create need", resputil.NotSpecified)
		return
	}

	// Over-allocation is allowed; the scanner and the allocation endpoint
	// surface it.
	a := review.Summarize(project.OwnerEquityPercent, append(project.Needs, need))
	if a.Anomalous() {
		klog.Warningf("project %d now allocates %d%% equity", project.ID, a.TotalAllocated)
	}

	resputil.Success(c, NeedResp{
		ID:            need.ID,
		Type:          need.Type,
		Title:         need.Title,
		Description:   need.Description,
		Amount:        need.Amount,
		RequiredCount: need.RequiredCount,
		EquityShare:   need.EquityShare,
	})
}

func validateNeedReq(req *NeedReq) map[string]string {
	fields := map[string]string{}
	switch req.Type {
	case model.NeedFinancial:
		if req.Amount != nil && *req.Amount <= 0 {
			fields["amount"] = "must be a positive amount"
		}
	case model.NeedSkill:
		if req.RequiredCount != nil && *req.RequiredCount < 1 {
			fields["requiredCount"] = "must be at least 1"
		}
	case model.NeedMaterial, model.NeedPartnership:
		// no numeric target
	}
	if req.EquityShare != nil && (*req.EquityShare < 0 || *req.EquityShare > 100) {
		fields["equityShare"] = "must be between 0 and 100"
	}
	if req.RequiredCount != nil && *req.RequiredCount < 1 {
		fields["requiredCount"] = "must be at least 1"
	}
	return fields
}

// UpdateNeed godoc
// @Summary Update a need
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Param needID path int true "need ID"
// @Param body body NeedReq true "need info"
// @Success 200 {object} resputil.Response[string] "updated"
// @Router /v1/projects/{id}/needs/{needID} [put]
func (mgr *ProjectMgr) UpdateNeed(c *gin.Context) {
	var uriReq NeedIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}
	var req NeedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}
	if fields := validateNeedReq(&req); len(fields) > 0 {
		resputil.BadRequestError(c, "invalid need", fields)
		return
	}

	project, ok := mgr.loadProject(c, uriReq.ID)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if !canEditProject(token, project) {
		resputil.Error(c, "permission denied to edit this project", resputil.UserNotAllowed)
		return
	}
	if project.Status == model.ProjectArchived {
		resputil.Error(c, "archived projects are read-only", resputil.InvalidState)
		return
	}

	// The type of a need is fixed once applications can reference it.
	result := query.GetDB().WithContext(c).
		Model(&model.ProjectNeed{}).
		Where("id = ? AND project_id = ? AND type = ?", uriReq.NeedID, project.ID, req.Type).
		Updates(map[string]any{
			"title":          req.Title,
			"description":    req.Description,
			"amount":         req.Amount,
			"required_count": lo.FromPtrOr(req.RequiredCount, 1),
			"equity_share":   req.EquityShare,
			"skill_tags":     marshalTags(req.SkillTags),
		})
	if result.Error != nil {
		klog.Errorf("failed to update need %d: %v", uriReq.NeedID, result.Error)
		resputil.Error(c, "failed to update need", resputil.NotSpecified)
		return
	}
	if result.RowsAffected == 0 {
		resputil.Error(c, "need not found or type mismatch", resputil.NotFound)
		return
	}
	resputil.Success(c, "update need successfully")
}

// DeleteNeed godoc
// @Summary Delete a need without applications
// @Tags Project
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Param needID path int true "need ID"
// @Success 200 {object} resputil.Response[string] "deleted"
// @Router /v1/projects/{id}/needs/{needID} [delete]
func (mgr *ProjectMgr) DeleteNeed(c *gin.Context) {
	var uriReq NeedIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	project, ok := mgr.loadProject(c, uriReq.ID)
	if !ok {
		return
	}
	token := util.GetToken(c)
	if !canEditProject(token, project) {
		resputil.Error(c, "permission denied to edit this project", resputil.UserNotAllowed)
		return
	}

	db := query.GetDB().WithContext(c)

	var pending int64
	err := db.Model(&model.ProjectNeedApplication{}).
		Where("project_need_id = ?", uriReq.NeedID).
		Count(&pending).Error
	if err != nil {
		klog.Errorf("failed to count applications of need %d: %v", uriReq.NeedID, err)
		resputil.Error(c, "failed to delete need", resputil.NotSpecified)
		return
	}
	if pending > 0 {
		resputil.Error(c, "need already has applications", resputil.InvalidState)
		return
	}

	result := db.Where("id = ? AND project_id = ?", uriReq.NeedID, project.ID).
		Delete(&model.ProjectNeed{})
	if result.Error != nil {
		klog.Errorf("failed to delete need %d: %v", uriReq.NeedID, result.Error)
		resputil.Error(c, "failed to delete need", resputil.NotSpecified)
		return
	}
	if result.RowsAffected == 0 {
		resputil.Error(c, "need not found", resputil.NotFound)
		return
	}
	resputil.Success(c, "delete need successfully")
}
