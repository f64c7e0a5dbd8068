package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/mosala-labs/mosala-backend/dao/model"
	"github.com/mosala-labs/mosala-backend/dao/query"
	"github.com/mosala-labs/mosala-backend/internal/resputil"
	"github.com/mosala-labs/mosala-backend/internal/util"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewAuthMgr)
}

type AuthMgr struct {
	name string
}

func NewAuthMgr(_ *RegisterConfig) Manager {
	return &AuthMgr{
		name: "auth",
	}
}

func (mgr *AuthMgr) GetName() string { return mgr.name }

func (mgr *AuthMgr) RegisterPublic(g *gin.RouterGroup) {
	g.POST("/signup", mgr.Signup)
	g.POST("/login", mgr.Login)
	g.POST("/refresh", mgr.Refresh)
}

func (mgr *AuthMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *AuthMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type SignupReq struct {
	Name     string  `json:"name" binding:"required,min=3,max=64"`
	Nickname *string `json:"nickname"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password string  `json:"password" binding:"required,min=8,max=72"`
}

type LoginReq struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type TokenResp struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	User         model.UserInfo `json:"user"`
}

// Signup godoc
// @Summary Register a new user
// @Description Create a local account with hashed credentials
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupReq true "account info"
// @Success 200 {object} resputil.Response[TokenResp] "tokens for the new account"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Router /v1/auth/signup [post]
func (mgr *AuthMgr) Signup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.Errorf("failed to bind request parameters: %v", err)
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	db := query.GetDB().WithContext(c)

	var existing model.User
	err := db.Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		resputil.Error(c, "username already taken", resputil.InvalidRequest)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		klog.Errorf("failed to check existing user %s: %v", req.Name, err)
		resputil.Error(c, "failed to create account", resputil.NotSpecified)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		klog.Errorf("failed to hash password: %v", err)
		resputil.Error(c, "failed to create account", resputil.NotSpecified)
		return
	}
	password := string(hashed)

	user := model.User{
		Name:     req.Name,
		Nickname: req.Nickname,
		Email:    req.Email,
		Password: &password,
		Role:     model.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		if query.IsSchemaMissing(err) {
			resputil.Error(c, schemaGuidance, resputil.SchemaNotInitialized)
			return
		}
		klog.Errorf("failed to create user %s: %v", req.Name, err)
		resputil.Error(c, "failed to create account", resputil.NotSpecified)
		return
	}

	mgr.respondWithTokens(c, &user)
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue access/refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginReq true "credentials"
// @Success 200 {object} resputil.Response[TokenResp] "tokens"
// @Failure 401 {object} resputil.Response[any] "invalid credentials"
// @Router /v1/auth/login [post]
func (mgr *AuthMgr) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		klog.Errorf("failed to bind request parameters: %v", err)
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	var user model.User
	if err := query.GetDB().WithContext(c).Where("name = ?", req.Name).First(&user).Error; err != nil {
		resputil.Error(c, "invalid username or password", resputil.InvalidCredentials)
		return
	}
	if user.Password == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)) != nil {
		resputil.Error(c, "invalid username or password", resputil.InvalidCredentials)
		return
	}

	mgr.respondWithTokens(c, &user)
}

// Refresh godoc
// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RefreshReq true "refresh token"
// @Success 200 {object} resputil.Response[TokenResp] "tokens"
// @Failure 401 {object} resputil.Response[any] "expired or invalid token"
// @Router /v1/auth/refresh [post]
func (mgr *AuthMgr) Refresh(c *gin.Context) {
	var req RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.Error(c, "invalid request parameters", resputil.InvalidRequest)
		return
	}

	msg, err := util.GetTokenMgr().CheckToken(req.RefreshToken)
	if err != nil {
		resputil.Error(c, "refresh token expired", resputil.TokenExpired)
		return
	}

	// Re-read the user so a role change invalidates old claims.
	var user model.User
	if err := query.GetDB().WithContext(c).First(&user, msg.UserID).Error; err != nil {
		resputil.Error(c, "user not found", resputil.TokenInvalid)
		return
	}

	mgr.respondWithTokens(c, &user)
}

func (mgr *AuthMgr) respondWithTokens(c *gin.Context, user *model.User) {
	access, refresh, err := util.GetTokenMgr().CreateTokens(&util.JWTMessage{
		UserID:   user.ID,
		Username: user.Name,
		Role:     user.Role,
	})
	if err != nil {
		klog.Errorf("failed to create tokens for user %d: %v", user.ID, err)
		resputil.Error(c, "failed to create tokens", resputil.NotSpecified)
		return
	}
	resputil.Success(c, TokenResp{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user.Info(),
	})
}
