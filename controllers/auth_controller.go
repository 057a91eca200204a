package controllers

import (
	"net/http"

	"backend/configs"
	"backend/middlewares"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
	Cfg *configs.Config
}

func NewAuthController(svc *services.AuthService, cfg *configs.Config) *AuthController {
	return &AuthController{Svc: svc, Cfg: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func userSummary(id uint, username, displayName string) gin.H {
	return gin.H{"id": id, "username": username, "display_name": displayName}
}

// POST /api/login
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Username and password are required")
		return
	}
	if req.Username == "" || req.Password == "" {
		resp.BadRequest(c, "Username and password are required")
		return
	}

	user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, "Invalid username or password")
		return
	}

	token, err := utils.GenerateSessionToken(user.ID, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.SetCookie(middlewares.SessionCookie, token, int(a.Cfg.JWTTTL.Seconds()), "/", "", false, true)

	resp.OK(c, gin.H{
		"message": "Login successful",
		"user":    userSummary(user.ID, user.Username, user.DisplayName),
	})
}

// POST /api/logout
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	resp.OK(c, gin.H{"message": "Logged out successfully"})
}

type registerRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"display_name"`
}

// POST /api/register
func (a *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Username, req.Password, req.DisplayName)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{
		"message": "Registered successfully",
		"user":    userSummary(user.ID, user.Username, user.DisplayName),
	})
}

// GET /api/check-auth
func (a *AuthController) CheckAuth(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid != 0 {
		if user, err := a.Svc.UserByID(uid); err == nil {
			resp.OK(c, gin.H{
				"authenticated": true,
				"user":          userSummary(user.ID, user.Username, user.DisplayName),
			})
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
}
