package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/mosala-labs/mosala-backend/dao/model"
	"github.com/mosala-labs/mosala-backend/dao/query"
	"github.com/mosala-labs/mosala-backend/internal/resputil"
	"github.com/mosala-labs/mosala-backend/internal/util"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewUserMgr)
}

type UserMgr struct {
	name string
}

func NewUserMgr(_ *RegisterConfig) Manager {
	return &UserMgr{
		name: "users",
	}
}

func (mgr *UserMgr) GetName() string { return mgr.name }

func (mgr *UserMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *UserMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/me", mgr.GetMe)
}

func (mgr *UserMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("", mgr.ListUsers)
	g.PUT("/:id/role", mgr.UpdateRole)
}

type UserResp struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Nickname  *string    `json:"nickname"`
	Email     *string    `json:"email"`
	Role      model.Role `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
}

type UpdateRoleReq struct {
	Role model.Role `json:"role" binding:"required,oneof=guest user admin"`
}

type UserIDReq struct {
	ID uint `uri:"id" binding:"required"`
}

func toUserResp(u *model.User) UserResp {
	return UserResp{
		ID:        u.ID,
		Name:      u.Name,
		Nickname:  u.Nickname,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// GetMe godoc
// @Summary Get the current user
// @Tags User
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[UserResp] "current user"
// @Router /v1/users/me [get]
func (mgr *UserMgr) GetMe(c *gin.Context) {
	token := util.GetToken(c)

	var user model.User
	if err := query.GetDB().WithContext(c).First(&user, token.UserID).Error; err != nil {
		resputil.Error(c, "user not found", resputil.NotFound)
		return
	}
	resputil.Success(c, toUserResp(&user))
}

// ListUsers godoc
// @Summary List all users
// @Tags User
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[any] "users"
// @Router /v1/admin/users [get]
func (mgr *UserMgr) ListUsers(c *gin.Context) {
	var users []model.User
	if err := query.GetDB().WithContext(c).Order("id").Find(&users).Error; err != nil {
		klog.Errorf("failed to list users: %v", err)
		resputil.Error(c, "failed to list users", resputil.NotSpecified)
		return
	}

	result := make([]UserResp, 0, len(users))
	for i := range users {
		result = append(result, toUserResp(&users[i]))
	}
	resputil.Success(c, result)
}

// UpdateRole godoc
// @Summary Update a user's platform role
// @Tags User
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "user ID"
// @Param body body UpdateRoleReq true "new role"
// @Success 200 {object} resputil.Response[string] "updated"
// @Router /v1/admin/users/{id}/role [put]
func (mgr *UserMgr) UpdateRole(c *gin.Context) {
	token := util.GetToken(c)
	if !model.HasPermission(token.Role, model.PermManageUsers) {
		resputil.Error(c, "permission denied to manage users", resputil.UserNotAllowed)
		return
	}

	var uriReq UserIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}
	var req UpdateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	result := query.GetDB().WithContext(c).
		Model(&model.User{}).
		Where("id = ?", uriReq.ID).
		Update("role", req.Role)
	if result.Error != nil {
		klog.Errorf("failed to update role of user %d: %v", uriReq.ID, result.Error)
		resputil.Error(c, "failed to update role", resputil.NotSpecified)
		return
	}
	if result.RowsAffected == 0 {
		resputil.Error(c, "user not found", resputil.NotFound)
		return
	}

	klog.Infof("user %d role updated to %s by %d", uriReq.ID, req.Role, token.UserID)
	resputil.Success(c, "update role successfully")
}
