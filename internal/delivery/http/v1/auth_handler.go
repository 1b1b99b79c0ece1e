package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the auth routes. strict is applied to every public
// auth route.
func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase, strict gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	publicAuth := public.Group("/auth", strict)
	{
		publicAuth.POST("/signup", handler.Signup)
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/forgot-password", handler.ForgotPassword)
		publicAuth.POST("/verify-reset-code", handler.VerifyResetCode)
		publicAuth.POST("/reset-password", handler.ResetPassword)
	}

	protected.GET("/auth/me", handler.Me)
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyResetCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

// Signup godoc
// @Summary      Register a user
// @Description  Create a candidate or recruiter account. Recruiters must name a company.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body      domain.SignupInput  true  "Signup JSON"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  response.ErrorResponse
// @Failure      409   {object}  response.ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req domain.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	user, err := h.authUC.Signup(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// Login godoc
// @Summary      Log in
// @Description  Exchange credentials for a bearer token. The role must match the account.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      domain.LoginInput  true  "Login JSON"
// @Success      200          {object}  map[string]interface{}
// @Failure      401          {object}  response.ErrorResponse
// @Failure      404          {object}  response.ErrorResponse
// @Failure      429          {object}  response.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	session, err := h.authUC.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", session.Token, maxAge, "/", "", c.Request.TLS != nil, true)

	response.Success(c, http.StatusOK, gin.H{
		"user":      session.User,
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
	})
}

// ForgotPassword godoc
// @Summary      Request a password reset code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      ForgotPasswordRequest  true  "Email"
// @Success      200      {object}  map[string]interface{}
// @Failure      404      {object}  response.ErrorResponse
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	if err := h.authUC.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Reset code sent to your email"})
}

// VerifyResetCode godoc
// @Summary      Check a password reset code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyResetCodeRequest  true  "Email and code"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorResponse
// @Router       /auth/verify-reset-code [post]
func (h *AuthHandler) VerifyResetCode(c *gin.Context) {
	var req VerifyResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	if err := h.authUC.VerifyResetCode(c.Request.Context(), req.Email, req.Code); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Code verified"})
}

// ResetPassword godoc
// @Summary      Set a new password with a reset code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      ResetPasswordRequest  true  "Email, code and new password"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorResponse
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	if err := h.authUC.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), subject(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}
