package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mosala-labs/mosala-backend/pkg/alert"
	"github.com/mosala-labs/mosala-backend/pkg/objectstore"
)

type Manager interface {
	GetName() string
	RegisterPublic(group *gin.RouterGroup)
	RegisterProtected(group *gin.RouterGroup)
	RegisterAdmin(group *gin.RouterGroup)
}

// RegisterConfig carries the shared collaborators injected into every
// manager at registration time.
type RegisterConfig struct {
	Alert       alert.AlertInterface
	ObjectStore *objectstore.Store
}

// Registers collects the manager constructors of this package; each
// manager appends itself from an init function.
var Registers []func(*RegisterConfig) Manager
