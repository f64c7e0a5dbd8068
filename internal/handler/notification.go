package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"k8s.io/klog/v2"

	"github.com/mosala-labs/mosala-backend/dao/model"
	"github.com/mosala-labs/mosala-backend/dao/query"
	"github.com/mosala-labs/mosala-backend/internal/resputil"
	"github.com/mosala-labs/mosala-backend/internal/util"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewNotificationMgr)
}

type NotificationMgr struct {
	name string
}

func NewNotificationMgr(_ *RegisterConfig) Manager {
	return &NotificationMgr{
		name: "notifications",
	}
}

func (mgr *NotificationMgr) GetName() string { return mgr.name }

func (mgr *NotificationMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *NotificationMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListMine)
	g.POST("/:id/read", mgr.MarkRead)
	g.POST("/read-all", mgr.MarkAllRead)
}

func (mgr *NotificationMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type NotificationResp struct {
	ID        uint                   `json:"id"`
	Type      model.NotificationType `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	ProjectID *uint                  `json:"projectID"`
	ReadAt    *time.Time             `json:"readAt"`
	CreatedAt time.Time              `json:"createdAt"`
}

type NotificationIDReq struct {
	ID uint `uri:"id" binding:"required"`
}

// ListMine godoc
// @Summary List the caller's notifications
// @Tags Notification
// @Produce json
// @Security Bearer
// @Param unread query bool false "only unread notifications"
// @Success 200 {object} resputil.Response[any] "notifications, newest first"
// @Router /v1/notifications [get]
func (mgr *NotificationMgr) ListMine(c *gin.Context) {
	token := util.GetToken(c)

	db := query.GetDB().WithContext(c).Where("user_id = ?", token.UserID)
	if c.Query("unread") == "true" {
		db = db.Where("read_at IS NULL")
	}

	var notifications []model.Notification
	if err := db.Order("created_at DESC").Limit(100).Find(&notifications).Error; err != nil {
		klog.Errorf("failed to list notifications of user %d: %v", token.UserID, err)
		resputil.Error(c, "failed to list notifications", resputil.NotSpecified)
		return
	}
	resputil.Success(c, lo.Map(notifications, func(n model.Notification, _ int) NotificationResp {
		return NotificationResp{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			ProjectID: n.ProjectID,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		}
	}))
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags Notification
// @Produce json
// @Security Bearer
// @Param id path int true "notification ID"
// @Success 200 {object} resputil.Response[string] "marked"
// @Router /v1/notifications/{id}/read [post]
func (mgr *NotificationMgr) MarkRead(c *gin.Context) {
	var uriReq NotificationIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	token := util.GetToken(c)
	result := query.GetDB().WithContext(c).
		Model(&model.Notification{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", uriReq.ID, token.UserID).
		Update("read_at", time.Now())
	if result.Error != nil {
		klog.Errorf("failed to mark notification %d read: %v", uriReq.ID, result.Error)
		resputil.Error(c, "failed to mark notification read", resputil.NotSpecified)
		return
	}
	if result.RowsAffected == 0 {
		resputil.Error(c, "no unread notification of yours matches", resputil.NotFound)
		return
	}
	resputil.Success(c, "notification marked read")
}

// MarkAllRead godoc
// @Summary Mark every unread notification of the caller as read
// @Tags Notification
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[string] "marked"
// @Router /v1/notifications/read-all [post]
func (mgr *NotificationMgr) MarkAllRead(c *gin.Context) {
	token := util.GetToken(c)
	err := query.GetDB().WithContext(c).
		Model(&model.Notification{}).
		Where("user_id = ? AND read_at IS NULL", token.UserID).
		Update("read_at", time.Now()).Error
	if err != nil {
		klog.Errorf("failed to mark notifications of user %d read: %v", token.UserID, err)
		resputil.Error(c, "failed to mark notifications read", resputil.NotSpecified)
		return
	}
	resputil.Success(c, "notifications marked read")
}
