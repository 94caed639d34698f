package controller

import (
	"course_backend/internal/model"
	"course_backend/internal/service"
	"course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// SignupRequest defines model for registration
// swagger:model SignupRequest
type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required,alpha"`
	LastName  string `json:"lastName" binding:"required,alpha"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	UserType  string `json:"userType" binding:"required,oneof=teacher user"`
	Skills    string `json:"skills" binding:"required_if=UserType teacher"`
}

// LoginRequest defines model for login
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary 注册账号
// @Description 教师（teacher）或学生（user）注册，教师需填写技能
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body SignupRequest true "注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	principal, err := c.AuthService.Signup(ctx.Request.Context(), service.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Kind:      model.AccountKind(req.UserType),
		Skills:    req.Skills,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": principal.ID, "userType": principal.Kind})
}

// Login godoc
// @Summary 登录
// @Description 先匹配教师账号，再匹配学生账号，返回 JWT
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录信息"
// @Success 200 {object} util.Response{data=service.LoginResult} "登录成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "邮箱或密码错误"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// Logout godoc
// @Summary 登出
// @Description 当前令牌加入黑名单（需启用 redis）
// @Tags 认证
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response "成功"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.AuthService.Logout(ctx.Request.Context(), util.GetClaimsFromContext(ctx)); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Profile godoc
// @Summary 当前账号信息
// @Tags 认证
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "未登录"
// @Router /profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	principal, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.AuthService.Profile(ctx.Request.Context(), principal)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"userType": principal.Kind, "profile": profile})
}
