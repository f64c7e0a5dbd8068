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
	"github.com/mosala-labs/mosala-backend/pkg/objectstore"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewAttachmentMgr)
}

const maxAttachmentSize = 20 << 20 // 20 MiB

type AttachmentMgr struct {
	name  string
	store *objectstore.Store
}

func NewAttachmentMgr(conf *RegisterConfig) Manager {
	return &AttachmentMgr{
		name:  "projects",
		store: conf.ObjectStore,
	}
}

func (mgr *AttachmentMgr) GetName() string { return mgr.name }

func (mgr *AttachmentMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *AttachmentMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/:id/documents", mgr.ListDocuments)
	g.POST("/:id/documents", mgr.UploadDocument)
	g.DELETE("/:id/documents/:docID", mgr.DeleteDocument)
}

func (mgr *AttachmentMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type DocumentIDReq struct {
	ID    uint `uri:"id" binding:"required"`
	DocID uint `uri:"docID" binding:"required"`
}

type DocumentResp struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (mgr *AttachmentMgr) loadEditableProject(c *gin.Context, id uint) (*model.Project, bool) {
	var project model.Project
	if err := query.GetDB().WithContext(c).First(&project, id).Error; err != nil {
		if query.IsSchemaMissing(err) {
			resputil.Error(c, schemaGuidance, resputil.SchemaNotInitialized)
			return nil, false
		}
		resputil.Error(c, "project not found", resputil.NotFound)
		return nil, false
	}
	if !canEditProject(util.GetToken(c), &project) {
		resputil.Error(c, "permission denied to manage documents of this project", resputil.UserNotAllowed)
		return nil, false
	}
	return &project, true
}

// ListDocuments godoc
// @Summary List a project's documents
// @Tags Attachment
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Success 200 {object} resputil.Response[any] "documents"
// @Router /v1/projects/{id}/documents [get]
func (mgr *AttachmentMgr) ListDocuments(c *gin.Context) {
	var uriReq ProjectIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	project, ok := mgr.loadEditableProject(c, uriReq.ID)
	if !ok {
		return
	}

	var docs []model.ProjectDocument
	err := query.GetDB().WithContext(c).
		Where("project_id = ?", project.ID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		klog.Errorf("failed to list documents of project %d: %v", project.ID, err)
		resputil.Error(c, "failed to list documents", resputil.NotSpecified)
		return
	}
	resputil.Success(c, lo.Map(docs, func(d model.ProjectDocument, _ int) DocumentResp {
		return DocumentResp{
			ID:          d.ID,
			Name:        d.Name,
			ContentType: d.ContentType,
			Size:        d.Size,
			CreatedAt:   d.CreatedAt,
		}
	}))
}

// UploadDocument godoc
// @Summary Attach a file to an own project
// @Description Multipart upload. The object is stored first; the database
// @Description row is written only after the store accepted the object.
// @Tags Attachment
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Param file formData file true "document"
// @Success 200 {object} resputil.Response[DocumentResp] "the stored document"
// @Router /v1/projects/{id}/documents [post]
func (mgr *AttachmentMgr) UploadDocument(c *gin.Context) {
	var uriReq ProjectIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	project, ok := mgr.loadEditableProject(c, uriReq.ID)
	if !ok {
		return
	}
	if project.Status == model.ProjectArchived {
		resputil.Error(c, "archived projects are read-only", resputil.InvalidState)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		resputil.Error(c, "missing file field", resputil.InvalidRequest)
		return
	}
	if fileHeader.Size > maxAttachmentSize {
		resputil.BadRequestError(c, "invalid document", map[string]string{
			"file": "must be at most 20 MiB",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		klog.Errorf("failed to open uploaded file: %v", err)
		resputil.Error(c, "failed to read upload", resputil.NotSpecified)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	key, err := mgr.store.Upload(c, project.ID, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		klog.Errorf("failed to store document for project %d: %v", project.ID, err)
		resputil.Error(c, "failed to store document", resputil.NotSpecified)
		return
	}

	token := util.GetToken(c)
	doc := model.ProjectDocument{
		ProjectID:   project.ID,
		Name:        fileHeader.Filename,
		ObjectKey:   key,
		ContentType: contentType,
		Size:        fileHeader.Size,
		UploadedBy:  token.UserID,
	}
	if err := query.GetDB().WithContext(c).Create(&doc).Error; err != nil {
		klog.Errorf("failed to record document %s: %v", key, err)
		// Orphaned object cleanup, best-effort.
		if rmErr := mgr.store.Remove(c, []string{key}); rmErr != nil {
			klog.Warningf("failed to remove orphaned object %s: %v", key, rmErr)
		}
		resputil.Error(c, "failed to store document", resputil.NotSpecified)
		return
	}

	resputil.Success(c, DocumentResp{
		ID:          doc.ID,
		Name:        doc.Name,
		ContentType: doc.ContentType,
		Size:        doc.Size,
		CreatedAt:   doc.CreatedAt,
	})
}

// DeleteDocument godoc
// @Summary Delete a project document
// @Tags Attachment
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Param docID path int true "document ID"
// @Success 200 {object} resputil.Response[string] "deleted"
// @Router /v1/projects/{id}/documents/{docID} [delete]
func (mgr *AttachmentMgr) DeleteDocument(c *gin.Context) {
	var uriReq DocumentIDReq
	if err := c.ShouldBindUri(&uriReq); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	project, ok := mgr.loadEditableProject(c, uriReq.ID)
	if !ok {
		return
	}

	db := query.GetDB().WithContext(c)
	var doc model.ProjectDocument
	err := db.Where("id = ? AND project_id = ?", uriReq.DocID, project.ID).First(&doc).Error
	if err != nil {
		resputil.Error(c, "document not found", resputil.NotFound)
		return
	}

	if err := db.Delete(&doc).Error; err != nil {
		klog.Errorf("failed to delete document %d: %v", doc.ID, err)
		resputil.Error(c, "failed to delete document", resputil.NotSpecified)
		return
	}
	// The row is gone; a leftover object only wastes space.
	if err := mgr.store.Remove(c, []string{doc.ObjectKey}); err != nil {
		klog.Warningf("failed to remove object %s: %v", doc.ObjectKey, err)
	}
	resputil.Success(c, "delete document successfully")
}
