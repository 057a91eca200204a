package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.AuthService
}

func NewUserController(svc *services.AuthService) *UserController {
	return &UserController{Svc: svc}
}

// GET /api/user/profile
func (u *UserController) Profile(c *gin.Context) {
	out, err := u.Svc.Profile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
}

// PUT /api/user/profile
func (u *UserController) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.DisplayName != nil {
		if err := u.Svc.UpdateDisplayName(utils.CurrentUserID(c), *req.DisplayName); err != nil {
			resp.Error(c, err)
			return
		}
	}
	resp.OK(c, gin.H{"message": "Profile updated"})
}
